package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/skyflying/vertical-datum/internal/auth"
	"github.com/skyflying/vertical-datum/internal/config"
	"github.com/skyflying/vertical-datum/internal/database"
	"github.com/skyflying/vertical-datum/internal/http/handler"
	"github.com/skyflying/vertical-datum/internal/http/middleware"
	"github.com/skyflying/vertical-datum/internal/tidewarehouse"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "github.com/skyflying/vertical-datum/docs" // Import generated swagger docs
)

type Router struct {
	cfg              *config.Config
	logger           *zap.Logger
	db               *gorm.DB
	whClient         *tidewarehouse.Client
	authMiddleware   *auth.Middleware
	rateLimiter      *middleware.RateLimiter
	surfaceHandler   *handler.SurfaceHandler
	transformHandler *handler.TransformHandler
	jobHandler       *handler.JobHandler
	benchmarkHandler *handler.BenchmarkHandler
	tideGaugeHandler *handler.TideGaugeHandler
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	whClient *tidewarehouse.Client,
	authMiddleware *auth.Middleware,
	rateLimiter *middleware.RateLimiter,
	surfaceHandler *handler.SurfaceHandler,
	transformHandler *handler.TransformHandler,
	jobHandler *handler.JobHandler,
	benchmarkHandler *handler.BenchmarkHandler,
	tideGaugeHandler *handler.TideGaugeHandler,
) *Router {
	return &Router{
		cfg:              cfg,
		logger:           logger,
		db:               db,
		whClient:         whClient,
		authMiddleware:   authMiddleware,
		rateLimiter:      rateLimiter,
		surfaceHandler:   surfaceHandler,
		transformHandler: transformHandler,
		jobHandler:       jobHandler,
		benchmarkHandler: benchmarkHandler,
		tideGaugeHandler: tideGaugeHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(rt.rateLimiter.LimitByIP) // Apply IP-based rate limiting globally

	// Health check (basic liveness probe)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Database health check (readiness probe with detailed stats)
	r.Get("/health/db", func(w http.ResponseWriter, r *http.Request) {
		stats, err := database.HealthCheckWithStats(rt.db)
		if err != nil {
			rt.logger.Error("Database health check failed", zap.Error(err))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status":  "unhealthy",
				"error":   err.Error(),
				"service": "database",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  "healthy",
			"service": "database",
			"stats": map[string]interface{}{
				"max_open_connections": stats.MaxOpenConnections,
				"open_connections":     stats.OpenConnections,
				"in_use":               stats.InUse,
				"idle":                 stats.Idle,
				"wait_count":           stats.WaitCount,
				"wait_duration_ms":     stats.WaitDuration.Milliseconds(),
				"max_idle_closed":      stats.MaxIdleClosed,
				"max_lifetime_closed":  stats.MaxLifetimeClosed,
			},
		})
	})

	// Combined readiness check (checks all dependencies)
	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		checks := make(map[string]interface{})
		allHealthy := true

		// Check database
		if err := database.HealthCheck(rt.db); err != nil {
			rt.logger.Error("Database health check failed", zap.Error(err))
			checks["database"] = map[string]interface{}{
				"status": "unhealthy",
				"error":  err.Error(),
			}
			allHealthy = false
		} else {
			checks["database"] = map[string]interface{}{
				"status": "healthy",
			}
		}

		// Check the tide warehouse when configured; a degraded warehouse
		// does not fail readiness because syncs are best effort
		if rt.whClient.IsEnabled() {
			checks["tide_warehouse"] = rt.whClient.HealthCheck(r.Context())
		}

		w.Header().Set("Content-Type", "application/json")
		if allHealthy {
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status": "healthy",
				"checks": checks,
			})
		} else {
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status": "unhealthy",
				"checks": checks,
			})
		}
	})

	// Swagger documentation
	if rt.cfg.Server.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public read-only routes
		r.Get("/surfaces", rt.surfaceHandler.List)
		r.Get("/surfaces/{code}", rt.surfaceHandler.Get)

		r.Post("/transform", rt.transformHandler.Point)
		r.Post("/transform/batch", rt.transformHandler.Batch)

		r.Get("/benchmarks", rt.benchmarkHandler.List)
		r.Get("/benchmarks/nearest", rt.benchmarkHandler.Nearest)
		r.Get("/benchmarks/{id}", rt.benchmarkHandler.GetByID)

		r.Get("/tidegauges", rt.tideGaugeHandler.List)
		r.Get("/tidegauges/{id}", rt.tideGaugeHandler.GetByID)
		r.Get("/tidegauges/{id}/levels", rt.tideGaugeHandler.Levels)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(rt.authMiddleware.Authenticate)

			// File transform jobs
			r.Route("/jobs", func(r chi.Router) {
				r.Get("/", rt.jobHandler.List)
				r.Post("/", rt.jobHandler.Submit)
				r.Get("/{id}", rt.jobHandler.GetByID)
				r.Get("/{id}/result", rt.jobHandler.Result)
				r.Delete("/{id}", rt.jobHandler.Delete)
			})

			// Catalogue management
			r.Group(func(r chi.Router) {
				r.Use(rt.authMiddleware.RequireRole(auth.RoleAdmin, auth.RoleSurveyor, auth.RoleService))

				r.Post("/benchmarks", rt.benchmarkHandler.Create)
				r.Put("/benchmarks/{id}", rt.benchmarkHandler.Update)
			})

			r.Group(func(r chi.Router) {
				r.Use(rt.authMiddleware.RequireAdmin)

				r.Delete("/benchmarks/{id}", rt.benchmarkHandler.Delete)
				r.Post("/tidegauges/sync", rt.tideGaugeHandler.Sync)
			})
		})
	})

	return r
}
