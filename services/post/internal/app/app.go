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
	"travel-journal/pkg/queue"
	"travel-journal/pkg/s3"
	"travel-journal/pkg/validation"
	postHTTP "travel-journal/services/post/internal/controller/http"
	"travel-journal/services/post/internal/repo/persistent"
	"travel-journal/services/post/internal/usecase"

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

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, s3Client *s3.Client, queueClient *queue.Client, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)
	serviceMetrics := metrics.NewMetrics("post", prometheus.DefaultRegisterer)
	validator := validation.New()

	var publisher queue.Publisher
	if queueClient != nil {
		publisher = queueClient
	}
	var images usecase.ImageStore
	if s3Client != nil {
		images = s3Client
	}
	var feedCache cache.Cache
	if redisClient != nil {
		feedCache = cache.NewRedisCache(redisClient)
	}

	// Initialize repositories
	postRepo := persistent.NewPostRepository(db)
	interactionRepo := persistent.NewInteractionRepository(db)
	commentRepo := persistent.NewCommentRepository(db)

	// Initialize use cases
	postUseCase := usecase.NewPostUseCase(postRepo, interactionRepo, images, feedCache, validator, log)
	interactionUseCase := usecase.NewInteractionUseCase(postRepo, interactionRepo, feedCache, publisher, log)
	commentUseCase := usecase.NewCommentUseCase(postRepo, commentRepo, feedCache, publisher, validator, log)

	// Initialize HTTP handlers
	postHandler := postHTTP.NewPostHandler(postUseCase, log)
	interactionHandler := postHTTP.NewInteractionHandler(interactionUseCase, log)
	commentHandler := postHTTP.NewCommentHandler(commentUseCase, log)

	// Setup router
	r := gin.Default()
	r.Use(serviceMetrics.Middleware())

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Session-ID"},
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
		api.POST("/posts", postHandler.CreatePost)
		api.PUT("/posts/:id", postHandler.UpdatePost)
		api.DELETE("/posts/:id", postHandler.DeletePost)
		api.PUT("/posts/:id/course", postHandler.AttachCourse)
		api.GET("/me/courses", postHandler.GetMyCoursePosts)

		api.POST("/posts/:id/like", interactionHandler.LikePost)
		api.POST("/posts/:id/save", interactionHandler.SavePost)
		api.GET("/me/saved", interactionHandler.GetSavedPosts)

		api.POST("/posts/:id/comments", commentHandler.AddComment)
		api.DELETE("/comments/:id", commentHandler.DeleteComment)
		api.POST("/comments/:id/like", commentHandler.LikeComment)
	}

	{
		public.GET("/posts/:id", postHandler.GetPost)
		public.GET("/posts/:id/related", postHandler.GetRelated)
		public.GET("/users/:user_id/posts", postHandler.GetUserPosts)
		public.POST("/posts/:id/view", interactionHandler.TrackView)
		public.GET("/posts/:id/comments", commentHandler.GetComments)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Post service starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down post service...")

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

	log.Info("Post service exited")
}
