package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/tuanngd/tenant-notes-api/docs"
	"github.com/tuanngd/tenant-notes-api/internal/api"
	"github.com/tuanngd/tenant-notes-api/internal/auth"
	"github.com/tuanngd/tenant-notes-api/internal/config"
	"github.com/tuanngd/tenant-notes-api/internal/middleware"
	"github.com/tuanngd/tenant-notes-api/internal/repository/postgres"
	"github.com/tuanngd/tenant-notes-api/internal/service"
	"github.com/tuanngd/tenant-notes-api/pkg/logger"
)

// @title           Tenant Notes API
// @version         1.0
// @description     Multi-tenant notes service with schema-per-tenant isolation.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	// Initialize logger
	appLogger := logger.NewLogger(os.Getenv("APP_ENV"))

	// Missing JWT_SECRET_KEY is fatal here; there is no insecure fallback.
	cfg, err := config.Load()
	if err != nil {
		appLogger.Fatal("Failed to load config", err)
	}

	db, err := config.NewDatabase()
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer config.CloseDatabase(db)

	appLogger.Info("Database connection established")

	// Initialize Redis
	redisConfig := config.DefaultRedisConfig()
	redisClient, err := redisConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", err)
	}
	defer redisClient.Close()

	repo := postgres.NewPostgresRepository(db)

	// Initialize auth primitives
	tokenManager := auth.NewTokenManager(cfg.JWTSecretKey, time.Duration(cfg.JWTExpirationHours)*time.Hour)
	credStore := auth.NewStaticCredentialStore(auth.SeededCredentials())

	// Initialize services
	authService := service.NewAuthService(credStore, tokenManager)
	noteService := service.NewNoteService(repo, cfg.FreePlanNoteLimit)
	tenantService := service.NewTenantService()

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(tokenManager)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(redisClient, cfg, appLogger)
	validationMiddleware := middleware.NewValidationMiddleware(appLogger)

	// Initialize server
	server := api.NewServer(
		authService,
		noteService,
		tenantService,
		authMiddleware,
		rateLimitMiddleware,
		validationMiddleware,
	)

	// Initialize router
	router := gin.Default()

	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", cfg.ServerPort)

	// Swagger UI endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	server.SetupRoutes(router)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("Failed to start server", err)
		}
	}()

	appLogger.Info("Server started", zap.Int("port", cfg.ServerPort))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", err)
	}

	appLogger.Info("Server exiting")
	appLogger.Sync()
}
