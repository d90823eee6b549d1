package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/skyflying/vertical-datum/docs"
	"github.com/skyflying/vertical-datum/internal/auth"
	"github.com/skyflying/vertical-datum/internal/config"
	"github.com/skyflying/vertical-datum/internal/database"
	"github.com/skyflying/vertical-datum/internal/geodesy"
	"github.com/skyflying/vertical-datum/internal/http/handler"
	"github.com/skyflying/vertical-datum/internal/http/middleware"
	"github.com/skyflying/vertical-datum/internal/http/router"
	"github.com/skyflying/vertical-datum/internal/jobs"
	"github.com/skyflying/vertical-datum/internal/logger"
	"github.com/skyflying/vertical-datum/internal/repository"
	"github.com/skyflying/vertical-datum/internal/service"
	"github.com/skyflying/vertical-datum/internal/storage"
	"github.com/skyflying/vertical-datum/internal/tidewarehouse"
	"go.uber.org/zap"
)

// @title Taiwan Vertical Datum API
// @version 1.0
// @description Vertical datum transformation service for Taiwan waters: TWVD2001, TWCD2021 and tidal reference surfaces
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@skyflying.tw

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
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
		docs.SwaggerInfo.Host = "vertical-datum-staging.azurewebsites.net"
	case "production":
		docs.SwaggerInfo.Host = "datum.skyflying.tw"
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
	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.App.Environment == "development" {
		if err := database.AutoMigrate(db); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	// Load the surface models
	minLon, maxLon, minLat, maxLat := cfg.Surfaces.Region()
	region := geodesy.Region{MinLon: minLon, MaxLon: maxLon, MinLat: minLat, MaxLat: maxLat}
	store := geodesy.NewSurfaceStore(cfg.Surfaces.DataDir, region, log)
	if cfg.Surfaces.Preload {
		if err := store.Preload(); err != nil {
			return fmt.Errorf("failed to preload surface models: %w", err)
		}
	}
	transformer := geodesy.NewTransformer(store)

	// Initialize storage
	fileStorage, err := storage.NewStorage(&cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	log.Info("Storage initialized", zap.String("mode", cfg.Storage.Mode))

	// Initialize tide warehouse connection (optional - for station sync)
	// This connection is read-only and the app continues without it if not configured
	var whClient *tidewarehouse.Client
	if cfg.Warehouse.Enabled {
		whClient, err = tidewarehouse.NewClient(&cfg.Warehouse, log)
		if err != nil {
			log.Warn("Tide warehouse connection failed, continuing without it",
				zap.Error(err),
			)
		} else if whClient != nil {
			log.Info("Tide warehouse connected successfully",
				zap.Int("max_open_conns", cfg.Warehouse.MaxOpenConns),
				zap.Int("query_timeout_seconds", cfg.Warehouse.QueryTimeout),
			)
		}
	} else {
		log.Info("Tide warehouse not configured, skipping",
			zap.Bool("enabled", cfg.Warehouse.Enabled),
		)
	}

	// Initialize repositories
	jobRepo := repository.NewTransformJobRepository(db)
	benchmarkRepo := repository.NewBenchmarkRepository(db)
	gaugeRepo := repository.NewTideGaugeRepository(db)

	// Initialize services
	surfaceService := service.NewSurfaceService(store, log)
	transformService := service.NewTransformService(transformer, log)
	benchmarkService := service.NewBenchmarkService(benchmarkRepo, log)
	gaugeService := service.NewTideGaugeService(gaugeRepo, log)
	if whClient != nil {
		gaugeService.SetWarehouseClient(whClient)
	}
	jobService := service.NewJobService(jobRepo, fileStorage, transformer, cfg.Jobs.Workers, log)
	jobService.Start(ctx)

	// Initialize middleware
	authMiddleware := auth.NewMiddleware(&cfg.Auth, log)
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	// Initialize handlers
	surfaceHandler := handler.NewSurfaceHandler(surfaceService, log)
	transformHandler := handler.NewTransformHandler(transformService, log)
	jobHandler := handler.NewJobHandler(jobService, cfg.Storage.MaxUploadSizeMB, log)
	benchmarkHandler := handler.NewBenchmarkHandler(benchmarkService, log)
	tideGaugeHandler := handler.NewTideGaugeHandler(gaugeService, log)

	// Setup router
	rt := router.NewRouter(
		cfg,
		log,
		db,
		whClient,
		authMiddleware,
		rateLimiter,
		surfaceHandler,
		transformHandler,
		jobHandler,
		benchmarkHandler,
		tideGaugeHandler,
	)

	// Initialize and start scheduler for background jobs
	scheduler := jobs.NewScheduler(log)

	cleanupJob := jobs.NewCleanupJob(jobService, cfg.Jobs.RetentionDuration(), 5*time.Minute, log)
	if err := scheduler.AddJob(jobs.CleanupJobName, cfg.Jobs.CleanupCron, cleanupJob.Run); err != nil {
		log.Error("Failed to register cleanup job", zap.Error(err))
	}

	if cfg.Warehouse.SyncEnabled && whClient.IsEnabled() {
		syncJob := jobs.NewTideSyncJob(gaugeService, 10*time.Minute, log)
		if err := scheduler.AddJob(jobs.TideSyncJobName, cfg.Warehouse.SyncCron, syncJob.Run); err != nil {
			log.Error("Failed to register tide sync job", zap.Error(err))
		}
	}

	scheduler.Start()
	log.Info("Scheduler started", zap.Strings("jobs", scheduler.GetJobNames()))

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

		// Stop scheduler
		schedCtx := scheduler.Stop()
		<-schedCtx.Done()
		log.Info("Scheduler stopped")

		// Drain the transform worker pool
		jobService.Stop()
		log.Info("Job workers stopped")

		// Graceful shutdown with timeout
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		// Close tide warehouse connection if initialized
		if whClient != nil {
			if err := whClient.Close(); err != nil {
				log.Warn("Error closing tide warehouse connection", zap.Error(err))
			}
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}
