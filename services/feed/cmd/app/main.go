package main

import (
	"os"

	"travel-journal/pkg/cache"
	"travel-journal/pkg/config"
	"travel-journal/pkg/database"
	"travel-journal/pkg/logger"
	feedApp "travel-journal/services/feed/internal/app"

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
		cfg.ServerPort = "8003"
	}

	log := logger.NewWithService("feed")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Warn("Redis unavailable, feed reads are not cached: %v", err)
		redisClient = nil
	}

	feedApp.Run(cfg, log, db, redisClient)
}
