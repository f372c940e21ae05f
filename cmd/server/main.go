package main

import (
	"context" // context package is needed for Redis operations

	"emerge/internal/api"        // Custom package for API handlers
	"emerge/internal/config"     // Custom package for configuration
	"emerge/internal/db"         // Custom package for storage bootstrap
	"emerge/internal/domain"     // Domain constants
	"emerge/internal/middleware" // Custom package for middleware
	"emerge/internal/repository" // Storage capability
	"emerge/internal/service"    // Progress operations

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	setupLogger(cfg)

	// Open the store, then create tables and seed data before serving
	gdb, err := db.Open(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}
	if err := db.Bootstrap(gdb); err != nil {
		logrus.Fatalf("failed to initialize DB: %v", err)
	}

	// Setup Redis client when configured
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		// Test Redis connection
		if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
	} else {
		logrus.Info("REDIS_ADDR not set, profile cache disabled")
	}

	svc := service.NewProgressService(repository.NewGormRepository(gdb), redisClient, cfg.CacheTTL)

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(), middleware.CORS(), middleware.Identity(domain.DemoUserID))

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	api.RegisterRoutes(r, svc)

	addr := "0.0.0.0:" + cfg.AppPort
	logrus.WithField("addr", addr).Info("Server running") // Log server start
	if err := r.Run(addr); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}

// setupLogger applies format and level from the configuration
func setupLogger(cfg *config.Config) {
	if cfg.IsProd {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.WithField("log_level", cfg.LogLevel).Warn("Unknown log level, using info")
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}
