package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pawhaven/shelter-api/docs"
	"github.com/pawhaven/shelter-api/internal/auth"
	"github.com/pawhaven/shelter-api/internal/config"
	"github.com/pawhaven/shelter-api/internal/database"
	"github.com/pawhaven/shelter-api/internal/http/handler"
	"github.com/pawhaven/shelter-api/internal/http/middleware"
	"github.com/pawhaven/shelter-api/internal/http/router"
	"github.com/pawhaven/shelter-api/internal/jobs"
	"github.com/pawhaven/shelter-api/internal/logger"
	"github.com/pawhaven/shelter-api/internal/repository"
	"github.com/pawhaven/shelter-api/internal/service"
	"github.com/pawhaven/shelter-api/internal/storage"
	"go.uber.org/zap"
)

// @title Animal Shelter API
// @version 1.0
// @description REST API for shelter cats with photo storage

// @contact.name API Support
// @contact.email support@pawhaven.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8000
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-api-key
// @description API Key for system operations

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Load basic configuration first (for logging setup)
	basicCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log, err := logger.NewLogger(&basicCfg.Logging, &basicCfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", basicCfg.App.Name),
		zap.String("env", basicCfg.App.Environment),
		zap.Int("port", basicCfg.App.Port),
	)

	// Configure Swagger host based on environment
	switch basicCfg.App.Environment {
	case "staging":
		docs.SwaggerInfo.Host = "shelter-api-staging.pawhaven.io"
	case "production":
		docs.SwaggerInfo.Host = "api.pawhaven.io"
	default:
		docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", basicCfg.App.Port)
	}

	// Load full configuration with secrets
	// In development: uses environment variables
	// In staging/production: fetches from Azure Key Vault
	cfg, err := config.LoadWithSecrets(ctx, log)
	if err != nil {
		return fmt.Errorf("failed to load secrets: %w", err)
	}

	// Connect to database
	db, err := database.NewDatabase(&cfg.Database, log)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Initialize storage
	fileStorage, err := storage.NewStorage(&cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	log.Info("Storage initialized", zap.String("mode", cfg.Storage.Mode))

	// Initialize repositories
	catRepo := repository.NewCatRepository(db)
	photoRepo := repository.NewPhotoRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	// Initialize services
	catService := service.NewCatService(catRepo, photoRepo, activityRepo, fileStorage, log)
	photoService := service.NewPhotoService(photoRepo, catRepo, activityRepo, fileStorage, log)

	// Initialize middleware
	authMiddleware := auth.NewMiddleware(cfg, log)
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	// Initialize handlers
	catHandler := handler.NewCatHandler(catService, photoService, cfg.Storage.MaxUploadSizeMB, log)
	photoHandler := handler.NewPhotoHandler(photoService, cfg.Storage.MaxUploadSizeMB, log)

	// Setup router
	rt := router.NewRouter(
		cfg,
		log,
		db,
		authMiddleware,
		rateLimiter,
		catHandler,
		photoHandler,
	)

	// Initialize and start scheduler for background jobs
	var scheduler *jobs.Scheduler
	if cfg.Jobs.StorageSweepEnabled {
		scheduler = jobs.NewScheduler(log)

		sweep := jobs.NewStorageSweep(fileStorage, photoRepo, cfg.Jobs.StorageSweepTimeoutDuration(), log)
		if err := sweep.Register(scheduler, &cfg.Jobs); err != nil {
			log.Error("Failed to register storage sweep job", zap.Error(err))
		} else {
			scheduler.Start()
			log.Info("Scheduler started with storage sweep job",
				zap.String("cron_expr", cfg.Jobs.StorageSweepCron),
				zap.Duration("timeout", cfg.Jobs.StorageSweepTimeoutDuration()),
			)
		}
	} else {
		log.Info("Storage sweep disabled",
			zap.Bool("enabled", cfg.Jobs.StorageSweepEnabled),
		)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	// Start server in goroutine
	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	// Wait for interrupt signal
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		// Stop scheduler if running
		if scheduler != nil {
			ctx := scheduler.Stop()
			<-ctx.Done()
			log.Info("Scheduler stopped")
		}

		// Graceful shutdown with timeout
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}
