package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"creator-pay.backend/internal/config"
	"creator-pay.backend/internal/infrastructure/jobs"
	"creator-pay.backend/internal/infrastructure/notifications"
	"creator-pay.backend/internal/infrastructure/recommender"
	"creator-pay.backend/internal/infrastructure/repositories"
	"creator-pay.backend/internal/infrastructure/vendorapi"
	"creator-pay.backend/internal/interfaces/http/handlers"
	"creator-pay.backend/internal/interfaces/http/middleware"
	"creator-pay.backend/internal/usecases"
	"creator-pay.backend/pkg/jwt"
	"creator-pay.backend/pkg/logger"
	"creator-pay.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	newSessionStore = redis.NewSessionStore
	runServer       = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB        = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	creatorRepo := repositories.NewCreatorRepository(db)
	termsRepo := repositories.NewTermsAgreementRepository(db)
	profileRepo := repositories.NewComplianceProfileRepository(db)
	infoRequestRepo := repositories.NewComplianceInfoRequestRepository(db)
	merchantRepo := repositories.NewMerchantAccountRepository(db)
	bankRepo := repositories.NewBankAccountRepository(db)
	productRepo := repositories.NewProductRepository(db)
	webhookEventRepo := repositories.NewWebhookEventRepository(db)

	// Initialize Session Store
	sessionStore, err := newSessionStore(cfg.Security.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	// Initialize outbound clients
	vendorClient := vendorapi.NewClient(cfg.Vendor.APIKey)
	scorer := recommender.NewClient(cfg.Recommender.URL)
	notifier := notifications.NewLogNotifier()

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(creatorRepo, jwtService, sessionStore)
	provisioningUsecase := usecases.NewProvisioningUsecase(creatorRepo, profileRepo, termsRepo, bankRepo, merchantRepo, vendorClient, notifier)
	webhookUsecase := usecases.NewWebhookUsecase(creatorRepo, merchantRepo, infoRequestRepo, webhookEventRepo, vendorClient, notifier, cfg.Notifications.ResendAfter)
	complianceUsecase := usecases.NewComplianceUsecase(merchantRepo, infoRequestRepo)
	productUsecase := usecases.NewProductUsecase(productRepo, creatorRepo, merchantRepo)
	recommendationUsecase := usecases.NewRecommendationUsecase(productRepo, scorer)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	merchantHandler := handlers.NewMerchantHandler(provisioningUsecase, complianceUsecase)
	webhookHandler := handlers.NewWebhookHandler(webhookUsecase, cfg.Vendor.WebhookSecret)
	productHandler := handlers.NewProductHandler(productUsecase, authUsecase)
	recommendationHandler := handlers.NewRecommendationHandler(recommendationUsecase)
	adminHandler := handlers.NewAdminHandler(provisioningUsecase, complianceUsecase)

	// Auth middleware
	authMiddleware := middleware.AuthMiddleware(jwtService)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	expiryJob := jobs.NewInfoRequestExpiryJob(infoRequestRepo)
	go expiryJob.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:           authHandler,
		merchantHandler:       merchantHandler,
		webhookHandler:        webhookHandler,
		productHandler:        productHandler,
		recommendationHandler: recommendationHandler,
		adminHandler:          adminHandler,
		authMiddleware:        authMiddleware,
	})

	// Print all registered routes for debugging
	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		expiryJob.Stop()
		cancel()
	}()

	// Start server
	log.Printf("🚀 Creator-Pay Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
