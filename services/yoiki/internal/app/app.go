package internal

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travel-journal/pkg/config"
	"travel-journal/pkg/jwt"
	"travel-journal/pkg/logger"
	"travel-journal/pkg/metrics"
	"travel-journal/pkg/middleware"
	"travel-journal/pkg/validation"
	yoikiHTTP "travel-journal/services/yoiki/internal/controller/http"
	"travel-journal/services/yoiki/internal/repo/persistent"
	"travel-journal/services/yoiki/internal/usecase"

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

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)
	serviceMetrics := metrics.NewMetrics("yoiki", prometheus.DefaultRegisterer)

	// Initialize repositories
	yoikiRepo := persistent.NewYoikiRepository(db)
	announcementRepo := persistent.NewAnnouncementRepository(db)
	scheduleRepo := persistent.NewScheduleRepository(db)

	// Initialize use case
	yoikiUseCase := usecase.NewYoikiUseCase(yoikiRepo, announcementRepo, scheduleRepo, validation.New(), log)

	// Initialize HTTP handler
	yoikiHandler := yoikiHTTP.NewYoikiHandler(yoikiUseCase, log)

	// Setup router
	r := gin.Default()
	r.Use(serviceMetrics.Middleware())

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
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

	public := r.Group("/api/v1/yoiki")
	public.Use(middleware.OptionalAuthMiddleware(jwtService))
	api := r.Group("/api/v1/yoiki")
	api.Use(middleware.AuthMiddleware(jwtService))
	if redisClient != nil {
		limiter := middleware.RateLimitMiddleware(redisClient, cfg.RateLimitPerMinute, time.Minute, log)
		public.Use(limiter)
		api.Use(limiter)
	}

	{
		public.GET("/posts", yoikiHandler.GetFeed)
		public.GET("/announcements", yoikiHandler.ListAnnouncements)
		public.GET("/schedule", yoikiHandler.ListSchedule)
	}

	{
		api.POST("/announcements", yoikiHandler.CreateAnnouncement)
		api.PUT("/announcements/:id", yoikiHandler.UpdateAnnouncement)
		api.DELETE("/announcements/:id", yoikiHandler.DeleteAnnouncement)
		api.POST("/schedule", yoikiHandler.CreateEvent)
		api.PUT("/schedule/:id", yoikiHandler.UpdateEvent)
		api.DELETE("/schedule/:id", yoikiHandler.DeleteEvent)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Yoiki service starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down yoiki service...")

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

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Yoiki service exited")
}
