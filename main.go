package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"zain-site-backend/config"
	"zain-site-backend/database"
	"zain-site-backend/logger"
	"zain-site-backend/middleware"
	"zain-site-backend/routes"
)

func main() {
	if err := config.Load(); err != nil {
		logger.Fatal(logger.Fields{"error": err.Error()}, "failed to load configuration")
	}

	cfg := config.Get()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := database.Connect(cfg); err != nil {
		logger.Fatal(logger.Fields{"error": err.Error()}, "failed to connect to database")
	}
	defer database.Disconnect()

	redisClient := connectRedis(cfg)
	if redisClient != nil {
		defer redisClient.Close()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS(cfg.Security.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		status := "ok"
		if err := database.HealthCheck(); err != nil {
			status = "degraded"
		}
		c.JSON(200, gin.H{
			"status":    status,
			"timestamp": time.Now(),
		})
	})

	routes.SetupRoutes(router, redisClient, cfg.Redis.RateLimitPerMin)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info(logger.Fields{"port": cfg.Port}, "server starting")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal(logger.Fields{"error": err.Error()}, "failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info(nil, "shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error(logger.Fields{"error": err.Error()}, "server forced to shutdown")
	}

	logger.Info(nil, "server exited")
}

// connectRedis returns nil when Redis is unreachable; the rate limiter
// fails open without it.
func connectRedis(cfg *config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Address,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn(logger.Fields{"error": err.Error()}, "redis unavailable, rate limiting disabled")
		client.Close()
		return nil
	}

	logger.Info(logger.Fields{"address": cfg.Redis.Address}, "connected to redis")
	return client
}
