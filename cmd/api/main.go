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

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/johnquangdev/meeting-docgen/pkg/validator"

	"github.com/johnquangdev/meeting-docgen/internal/adapter/handler"
	"github.com/johnquangdev/meeting-docgen/internal/adapter/repository"
	"github.com/johnquangdev/meeting-docgen/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-docgen/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-docgen/internal/infrastructure/storage"
	docuse "github.com/johnquangdev/meeting-docgen/internal/usecase/document"
	prefuse "github.com/johnquangdev/meeting-docgen/internal/usecase/preference"
	pkgai "github.com/johnquangdev/meeting-docgen/pkg/ai"
	"github.com/johnquangdev/meeting-docgen/pkg/config"
)

// @title           Meeting Document Generator API
// @version         1.0
// @description     API for generating departmental meeting notices and Minutes of Meeting as RTF and plain text

// @host      localhost:8080
// @BasePath  /v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Run migrations only when explicitly enabled in config.
	// Production deployments should manage schema via sql-migrate.
	if cfg.Database.AutoMigrate {
		if cfg.Server.Environment == "production" {
			log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE or manage schema with sql-migrate.")
		}
		log.Println("🔄 Applying migrations (development only) ...")
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping migrations; use sql-migrate for schema migrations in CI/CD/production")
	}

	// Initialize preference store (Redis, with in-memory fallback for
	// development without a Redis instance)
	log.Println("📦 Connecting to Redis...")
	var store cache.Store
	redisStore, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Printf("⚠️  Redis unavailable (%v), falling back to in-memory preference store", err)
		store = cache.NewMemoryStore()
	} else {
		defer redisStore.Close()
		store = redisStore
	}

	// Initialize object storage for generated files (optional)
	var uploader docuse.Uploader
	if cfg.Storage.Enabled {
		log.Println("📦 Connecting to object storage...")
		minioClient, err := storage.NewMinIOClient(&cfg.Storage)
		if err != nil {
			log.Fatalf("Failed to connect to object storage: %v", err)
		}
		uploader = minioClient
	} else {
		log.Println("📦 Object storage disabled; documents archived in database only")
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	docRepo := repository.NewDocumentRepository(db)

	// Initialize AI clients
	log.Println("🤖 Initializing AI clients...")
	geminiClient := pkgai.NewGeminiClient(&cfg.AI)
	openaiClient := pkgai.NewOpenAIClient(&cfg.AI)

	// Initialize services
	log.Println("📝 Initializing document service...")
	docService := docuse.NewService(docRepo, geminiClient, openaiClient, uploader, cfg, logger)
	prefService := prefuse.NewService(store, cfg.AI.PreferenceTTL)

	// Initialize handlers
	log.Println("🚪 Initializing handlers...")
	docHandler := handler.NewDocumentHandler(docService, prefService, logger)
	prefHandler := handler.NewPreferenceHandler(prefService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, docHandler, prefHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
