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

	pkgvalidator "github.com/kina-health/kina/pkg/validator"

	_ "github.com/kina-health/kina/docs"
	"github.com/kina-health/kina/internal/adapter/handler"
	"github.com/kina-health/kina/internal/adapter/repository"
	"github.com/kina-health/kina/internal/infrastructure/cache"
	"github.com/kina-health/kina/internal/infrastructure/database"
	"github.com/kina-health/kina/internal/infrastructure/storage"
	"github.com/kina-health/kina/internal/usecase/analysis"
	"github.com/kina-health/kina/internal/usecase/scoring"
	pkgai "github.com/kina-health/kina/pkg/ai"
	"github.com/kina-health/kina/pkg/config"
	"github.com/kina-health/kina/pkg/jwt"
)

// @title           Kina API
// @version         1.0
// @description     Speech-based cognitive health screening API: recording ingestion, transcription, and signal scoring

// @contact.name   API Support
// @contact.email  support@kina.health

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath  /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

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
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

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

	log.Println("🔄 Running SQL migrations...")
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize cache. Redis is preferred; an in-process store keeps the
	// service functional when Redis is unreachable.
	log.Println("📦 Connecting to Redis...")
	var cacheStore cache.Store
	redisStore, err := cache.NewRedisStore(cfg.GetRedisAddr(), cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Printf("⚠️  Redis unavailable (%v), falling back to in-memory cache", err)
		cacheStore = cache.NewMemoryStore()
	} else {
		defer redisStore.Close()
		cacheStore = redisStore
	}

	// Initialize object storage
	log.Println("🗄️  Connecting to object storage...")
	storageClient, err := storage.NewMinIOClient(&cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to connect to object storage: %v", err)
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	recordingRepo := repository.NewRecordingRepository(db)
	transcriptRepo := repository.NewTranscriptRepository(db)
	assessmentRepo := repository.NewAssessmentRepository(db)
	jobRepo := repository.NewAnalysisJobRepository(db)

	// Initialize scoring engine with the configured sentiment provider
	log.Println("🧠 Initializing scoring engine...")
	var sentiment scoring.SentimentProvider
	switch cfg.Sentiment.Provider {
	case "huggingface":
		sentiment = pkgai.NewHuggingFaceSentiment(cfg.Sentiment.APIURL, cfg.Sentiment.APIKey, cfg.Sentiment.Model)
		log.Printf("💬 Sentiment provider: huggingface (%s)", cfg.Sentiment.Model)
	default:
		sentiment = pkgai.NewLexiconSentiment()
		log.Println("💬 Sentiment provider: lexicon")
	}
	engine, err := scoring.NewEngine(scoring.DefaultConfig(), sentiment)
	if err != nil {
		log.Fatalf("Failed to initialize scoring engine: %v", err)
	}

	// Initialize transcription client
	log.Println("🎙️  Initializing transcription client...")
	asmClient := pkgai.NewAssemblyAIClient(cfg.Assembly.APIKey)

	// Initialize analysis service
	log.Println("🧪 Initializing analysis service...")
	analysisService := analysis.NewService(
		cfg,
		logger,
		engine,
		asmClient,
		storageClient,
		cacheStore,
		recordingRepo,
		transcriptRepo,
		assessmentRepo,
		jobRepo,
	)

	// Start background workers for pending and stuck jobs
	log.Println("👷 Starting worker pool...")
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()
	analysisService.StartWorkerPool(workerCtx)

	// Initialize JWT manager
	log.Println("🔑 Initializing JWT manager...")
	jwtManager := jwt.NewManager(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	authHandler := handler.NewAuthController(cfg, jwtManager, logger)
	analysisHandler := handler.NewAnalysisController(analysisService, logger)
	recordingHandler := handler.NewRecordingController(analysisService, logger)
	webhookHandler := handler.NewWebhookController(analysisService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, jwtManager, storageClient, authHandler, analysisHandler, recordingHandler, webhookHandler)
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

	analysisService.StopWorkerPool()
	workerCancel()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
