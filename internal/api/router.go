package api

import (
	"encoding/json"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prooflab/resolute/internal/api/handlers"
	mw "github.com/prooflab/resolute/internal/api/middleware"
	"github.com/prooflab/resolute/internal/config"
	"github.com/prooflab/resolute/internal/domain"
	"github.com/prooflab/resolute/internal/service"
	"github.com/prooflab/resolute/internal/store"
	"go.uber.org/zap"
)

// App holds the router and background services for lifecycle management.
type App struct {
	Router *chi.Mux
	Reaper *service.ReaperService

	startTime    time.Time
	requestCount atomic.Int64
	errorCount   atomic.Int64
}

func NewApp(db *pgxpool.Pool, logger *zap.Logger) *App {
	// Stores
	workspaceStore := store.NewWorkspaceStore(db)
	theoryStore := store.NewTheoryStore(db)
	runStore := store.NewRunStore(db)

	// Services
	theorySvc := service.NewTheoryService(theoryStore, logger)
	proverSvc := service.NewProverService(theoryStore, runStore, config.MaxRounds(), logger)
	reaperSvc := service.NewReaperService(runStore, config.RunRetention(), logger)

	// Handlers
	workspaceHandler := handlers.NewWorkspaceHandler(workspaceStore)
	theoryHandler := handlers.NewTheoryHandler(theorySvc)
	runHandler := handlers.NewRunHandler(proverSvc)

	r := chi.NewRouter()

	app := &App{
		Router:    r,
		Reaper:    reaperSvc,
		startTime: time.Now(),
	}

	metricsCollector := mw.NewMetricsCollector(&app.requestCount, &app.errorCount)

	// Global middleware (order matters)
	r.Use(mw.RequestID)
	r.Use(middleware.RealIP)
	r.Use(metricsCollector.Middleware)
	r.Use(mw.Logging(logger))
	r.Use(middleware.Recoverer)
	r.Use(mw.RateLimit(config.RateLimitRPS(), config.RateLimitBurst()))

	// Health and metrics (no auth)
	r.Get("/health", healthHandler(db))
	r.Get("/metrics", app.metricsHandler())

	// Workspace creation (no auth — bootstrap endpoint)
	r.Post("/v1/workspaces", workspaceHandler.Create)

	// Authenticated routes
	r.Route("/v1", func(r chi.Router) {
		r.Use(mw.APIKeyAuth(workspaceStore))

		r.Route("/theories", func(r chi.Router) {
			r.Get("/", theoryHandler.List)
			r.Post("/", theoryHandler.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", theoryHandler.GetByID)
				r.Delete("/", theoryHandler.Delete)
				r.Post("/runs", runHandler.Create)
				r.Get("/runs", runHandler.ListByTheory)
			})
		})

		r.Get("/runs/{id}", runHandler.GetByID)
	})

	return app
}

func healthHandler(db *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := db.Ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]string{"status": "error", "error": err.Error()})
			return
		}
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}

func (app *App) metricsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)

		uptime := time.Since(app.startTime)

		response := map[string]any{
			"uptime_seconds": uptime.Seconds(),
			"uptime_human":   uptime.Round(time.Second).String(),
			"request_count":  app.requestCount.Load(),
			"error_count":    app.errorCount.Load(),
			"goroutines":     runtime.NumGoroutine(),
			"memory": map[string]any{
				"alloc_mb": float64(memStats.Alloc) / 1024 / 1024,
				"sys_mb":   float64(memStats.Sys) / 1024 / 1024,
				"num_gc":   memStats.NumGC,
			},
			"go_version": runtime.Version(),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

// Ensure stores satisfy the domain interfaces at compile time.
var (
	_ domain.WorkspaceStore = (*store.WorkspaceStore)(nil)
	_ domain.TheoryStore    = (*store.TheoryStore)(nil)
	_ domain.RunStore       = (*store.RunStore)(nil)
)
