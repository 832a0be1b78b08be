package main

import (
	"os"

	"travel-journal/pkg/cache"
	"travel-journal/pkg/config"
	"travel-journal/pkg/database"
	"travel-journal/pkg/logger"
	"travel-journal/pkg/queue"
	"travel-journal/pkg/s3"
	postApp "travel-journal/services/post/internal/app"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.ReleaseMode)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if os.Getenv("SERVER_PORT") == "" {
		cfg.ServerPort = "8002"
	}

	log := logger.NewWithService("post")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Warn("S3 unavailable, image uploads disabled: %v", err)
		s3Client = nil
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Warn("RabbitMQ unavailable, events will not be published: %v", err)
		queueClient = nil
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Warn("Redis unavailable, feed cache invalidation disabled: %v", err)
		redisClient = nil
	}

	postApp.Run(cfg, log, db, s3Client, queueClient, redisClient)
}
