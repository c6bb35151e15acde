package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/JekaTruck/Jeka-Truck/apperrors"
	"github.com/JekaTruck/Jeka-Truck/config"
	"github.com/JekaTruck/Jeka-Truck/controllers"
	"github.com/JekaTruck/Jeka-Truck/database"
	"github.com/JekaTruck/Jeka-Truck/middleware"
	"github.com/JekaTruck/Jeka-Truck/repository"
	"github.com/JekaTruck/Jeka-Truck/routes"
	"github.com/JekaTruck/Jeka-Truck/services"
)

func main() {
	// Initialize structured logger
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	// Load .env file (optional, falls back to system env)
	_ = godotenv.Load()

	cfg := config.Load()

	// Persistence: Redis when reachable, otherwise an in-process store so the
	// service still serves the seed catalog.
	var kv database.KV
	redisClient, err := database.NewRedisClient(context.Background(), cfg.RedisURL)
	if err != nil {
		zap.L().Warn("Redis unavailable, falling back to in-memory storage", zap.Error(err))
		kv = database.NewMemoryKV()
	} else {
		kv = database.NewRedisKV(redisClient)
	}

	// Repositories
	catalogRepo := repository.NewCatalogRepository(kv)
	sessionRepo := repository.NewSessionRepository(kv)
	lookupRepo := repository.NewLookupRepository(kv)

	// Services
	tokenService := services.NewTokenService(cfg.JWTSecret)
	catalogService := services.NewCatalogService(catalogRepo)
	authService := services.NewAuthService(sessionRepo, tokenService)

	// Restore any persisted session from a previous run
	if user, err := authService.Current(context.Background()); err != nil {
		zap.L().Warn("Failed to restore session", zap.Error(err))
	} else if user != nil {
		zap.L().Info("Session restored", zap.String("username", user.Username), zap.String("role", user.Role))
	}

	// Controllers
	productController := controllers.NewProductController(catalogService)
	adminController := controllers.NewAdminController(catalogService, lookupRepo)
	authController := controllers.NewAuthController(authService)

	// HTTP server and middleware
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(apperrors.ErrorMiddleware())

	// Request timeout middleware
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	routes.RegisterRoutes(r, productController, adminController, authController, tokenService)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		zap.L().Info("Catalog service starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down catalog service...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Fatal("Server forced to shutdown", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			zap.L().Error("Failed to close Redis", zap.Error(err))
		}
	}

	zap.L().Info("Catalog service stopped gracefully")
}
