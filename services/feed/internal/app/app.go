package internal

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travel-journal/pkg/cache"
	"travel-journal/pkg/config"
	"travel-journal/pkg/jwt"
	"travel-journal/pkg/logger"
	"travel-journal/pkg/metrics"
	"travel-journal/pkg/middleware"
	feedHTTP "travel-journal/services/feed/internal/controller/http"
	"travel-journal/services/feed/internal/repo/persistent"
	"travel-journal/services/feed/internal/usecase"

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

// newFeedCache returns the cache shared with the post service. Without redis the
// post service cannot reach this process to invalidate, so reads go uncached.
func newFeedCache(redisClient *redis.Client) cache.Cache {
	if redisClient == nil {
		return nil
	}
	return cache.NewRedisCache(redisClient)
}

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)
	serviceMetrics := metrics.NewMetrics("feed", prometheus.DefaultRegisterer)

	feedCache := newFeedCache(redisClient)

	// Initialize repository
	feedRepo := persistent.NewFeedRepository(db)

	// Initialize use case
	feedUseCase := usecase.NewFeedUseCase(feedRepo, feedCache, cfg.CacheTTL, serviceMetrics, log)

	// Initialize HTTP handler
	feedHandler := feedHTTP.NewFeedHandler(feedUseCase, log)

	// Setup router
	r := gin.Default()
	r.Use(serviceMetrics.Middleware())

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "OPTIONS"},
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
	if redisClient != nil {
		public.Use(middleware.RateLimitMiddleware(redisClient, cfg.RateLimitPerMinute, time.Minute, log))
	}
	{
		public.GET("/feed/home", feedHandler.GetHome)
		public.GET("/feed/hall-of-fame", feedHandler.GetHallOfFame)
		public.GET("/feed/weekly-best", feedHandler.GetWeeklyBest)
		public.GET("/feed/top-community", feedHandler.GetTopCommunity)
		public.GET("/feed/travel-courses", feedHandler.ListTravelCourses)
		public.GET("/feed/community", feedHandler.ListCommunity)
		public.GET("/search", feedHandler.Search)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Feed service starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down feed service...")

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

	log.Info("Feed service exited")
}
