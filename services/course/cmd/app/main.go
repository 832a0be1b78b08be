package main

import (
	"os"

	"travel-journal/pkg/cache"
	"travel-journal/pkg/config"
	"travel-journal/pkg/database"
	"travel-journal/pkg/logger"
	"travel-journal/pkg/queue"
	courseApp "travel-journal/services/course/internal/app"

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
		cfg.ServerPort = "8001"
	}

	log := logger.NewWithService("course")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Warn("Redis unavailable, rate limiting disabled: %v", err)
		redisClient = nil
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Warn("RabbitMQ unavailable, events will not be published: %v", err)
		queueClient = nil
	}

	courseApp.Run(cfg, log, db, redisClient, queueClient)
}
