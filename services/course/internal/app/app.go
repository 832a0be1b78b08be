package internal

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travel-journal/pkg/config"
	"travel-journal/pkg/directions"
	"travel-journal/pkg/jwt"
	"travel-journal/pkg/logger"
	"travel-journal/pkg/metrics"
	"travel-journal/pkg/middleware"
	"travel-journal/pkg/places"
	"travel-journal/pkg/queue"
	"travel-journal/pkg/validation"
	courseHTTP "travel-journal/services/course/internal/controller/http"
	"travel-journal/services/course/internal/repo/persistent"
	"travel-journal/services/course/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "travel-journal/services/docs" // Swagger docs
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, redisClient *redis.Client, queueClient *queue.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)
	serviceMetrics := metrics.NewMetrics("course", prometheus.DefaultRegisterer)

	var publisher queue.Publisher
	if queueClient != nil {
		publisher = queueClient
	}

	// Initialize repositories
	courseRepo := persistent.NewCourseRepository(db)

	// Initialize use cases
	courseUseCase := usecase.NewCourseUseCase(courseRepo, validation.New(), publisher, log)
	routeUseCase := usecase.NewRouteUseCase(courseRepo, directions.NewClient(cfg), places.NewClient(cfg), log)

	// Initialize HTTP handlers
	courseHandler := courseHTTP.NewCourseHandler(courseUseCase, log)
	routeHandler := courseHTTP.NewRouteHandler(routeUseCase, log)

	// Setup router
	r := gin.Default()
	r.Use(serviceMetrics.Middleware())

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	public := r.Group("/api/v1")
	public.Use(middleware.OptionalAuthMiddleware(jwtService))
	api := r.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(jwtService))
	if redisClient != nil {
		limiter := middleware.RateLimitMiddleware(redisClient, cfg.RateLimitPerMinute, time.Minute, log)
		public.Use(limiter)
		api.Use(limiter)
	}

	{
		api.POST("/courses", courseHandler.CreateCourse)
		api.GET("/courses/mine", courseHandler.ListMyCourses)
		api.PUT("/courses/:id", courseHandler.UpdateCourse)
		api.DELETE("/courses/:id", courseHandler.DeleteCourse)
	}

	{
		public.GET("/courses/:id", courseHandler.GetCourse)
		public.GET("/courses/:id/transportation", courseHandler.GetTransportation)
		public.GET("/courses/:id/regions", courseHandler.GetRegions)
		public.GET("/courses/:id/days/:day/route", routeHandler.GetDayRoute)
		public.POST("/routes", routeHandler.ComputeRoute)
		public.POST("/directions", routeHandler.Directions)
		public.GET("/places/search", routeHandler.SearchPlaces)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Course service starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down course service...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	// Close RabbitMQ connection
	if queueClient != nil {
		queueClient.Close()
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Course service exited")
}
