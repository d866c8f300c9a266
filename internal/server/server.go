// Package server provides HTTP server setup and configuration.
package server

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/sebasr/greeting-service/internal/config"
	"github.com/sebasr/greeting-service/internal/handlers"
	"github.com/sebasr/greeting-service/internal/middleware"
	"github.com/sebasr/greeting-service/internal/validation"
)

// HealthPath is the health check route, excluded from request logging
const HealthPath = "/api/v1/health"

// Dependencies holds all dependencies needed to create a server
type Dependencies struct {
	Config *config.Config
	Logger *slog.Logger
}

// New creates a new Gin router with all routes configured
func New(deps *Dependencies) (*gin.Engine, error) {
	if err := validation.Register(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	rateLimiter, err := middleware.NewRateLimitMiddleware(deps.Config.RateLimit.Rate)
	if err != nil {
		return nil, err
	}

	corsConfig := cors.Config{
		AllowOrigins:     deps.Config.CORS.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Encoding", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	// cors.New panics on an invalid config
	if err := corsConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid CORS configuration: %w", err)
	}
	corsMiddleware := cors.New(corsConfig)

	// Set Gin to release mode to disable ANSI colors and debug route output
	gin.SetMode(gin.ReleaseMode)

	// gin.New() instead of gin.Default(): logging goes through slog below
	router := gin.New()

	// Only listed proxies may set the client IP the rate limiter keys on
	if err := router.SetTrustedProxies(deps.Config.Proxy.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(deps.Logger, HealthPath))

	router.Use(corsMiddleware)

	router.Use(rateLimiter)
	router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithDecompressFn(gzip.DefaultDecompressHandle)))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", handlers.NewHealthHandler(deps.Config.Version))
	}

	router.GET("/", handlers.RootHandler)
	router.GET("/me", handlers.AuthorHandler)
	router.GET("/math-sum", handlers.MathSumHandler)
	router.GET("/:name", handlers.GreetingHandler)
	router.POST("/hello", handlers.GreetPersonHandler)

	return router, nil
}
