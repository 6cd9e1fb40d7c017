package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"recruit-api/internal/applications"
	"recruit-api/internal/candidates"
	"recruit-api/internal/diagnostics"
	"recruit-api/internal/jobs"
	"recruit-api/internal/shared/config"
	"recruit-api/internal/shared/server"
	"recruit-api/internal/shared/storage/docstore"
	"recruit-api/internal/shared/telemetry"
)

// App holds shared dependencies.
type App struct {
	Config              config.Config
	Router              *gin.Engine
	DB                  docstore.Database
	// StoreFallback is why the in-memory store replaced the configured one;
	// empty when no fallback happened.
	StoreFallback       string
	JobsService         *jobs.Service
	CandidatesService   *candidates.Service
	ApplicationsService *applications.Service
	DiagnosticsService  *diagnostics.Service
}

// openStore is replaced in tests.
var openStore = docstore.Open

// Build connects the store and wires services, handlers and the router.
// Without DATABASE_URL, dev-like environments use the in-memory store and
// other environments run with no store at all.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	telemetry.SetLevel(cfg.LogLevel)
	ctx := context.Background()

	store, fallback, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:        cfg,
		DB:            docstore.Instrument(store),
		StoreFallback: fallback,
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:             cfg,
		DiagnosticsHandler: diagnostics.NewHandler(app.DiagnosticsService),
		JobsHandler:        jobs.NewHandler(app.JobsService),
		CandidatesHandler:  candidates.NewHandler(app.CandidatesService),
		ApplicationHandler: applications.NewHandler(app.ApplicationsService),
	})

	return app, nil
}

// Close releases the store connection.
func (a *App) Close(ctx context.Context) error {
	if a == nil || a.DB == nil {
		return nil
	}
	return a.DB.Close(ctx)
}

// buildStore returns the store and, when the in-memory store stands in for
// the configured one, the reason for the fallback.
func buildStore(ctx context.Context, cfg config.Config) (docstore.Database, string, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if cfg.IsDevLike() {
			telemetry.Info("bootstrap.memory_store", map[string]any{"env": cfg.Env})
			return docstore.NewMemory(), "DATABASE_URL not set", nil
		}
		telemetry.Warn("bootstrap.no_store", map[string]any{"env": cfg.Env})
		return nil, "", nil
	}

	store, err := openStore(ctx, cfg.DatabaseURL, cfg.DatabaseName)
	if err != nil {
		if cfg.IsDevLike() {
			telemetry.Warn("bootstrap.store_unavailable", map[string]any{"error": err, "fallback": docstore.KindMemory})
			return docstore.NewMemory(), err.Error(), nil
		}
		return nil, "", fmt.Errorf("open store: %w", err)
	}
	if err := store.EnsureSchema(ctx); err != nil {
		_ = store.Close(ctx)
		if cfg.IsDevLike() {
			telemetry.Warn("bootstrap.schema_failed", map[string]any{"error": err, "fallback": docstore.KindMemory})
			return docstore.NewMemory(), err.Error(), nil
		}
		return nil, "", fmt.Errorf("ensure schema: %w", err)
	}
	telemetry.Info("bootstrap.store_ready", map[string]any{
		"kind":     store.Kind(),
		"database": store.Name(),
	})
	return store, "", nil
}

func buildServices(app *App) {
	var (
		jobsRepo       jobs.Repo
		candidatesRepo candidates.Repo
		appsRepo       applications.Repo
	)
	if app.DB != nil {
		jobsRepo = &jobs.StoreRepo{Coll: app.DB.Collection(docstore.CollectionJob)}
		candidatesRepo = &candidates.StoreRepo{Coll: app.DB.Collection(docstore.CollectionCandidate)}
		appsRepo = &applications.StoreRepo{Coll: app.DB.Collection(docstore.CollectionApplication)}
	}

	app.JobsService = jobs.NewService(jobsRepo)
	app.CandidatesService = candidates.NewService(candidatesRepo)
	app.ApplicationsService = applications.NewService(appsRepo, app.JobsService, app.CandidatesService)
	app.DiagnosticsService = diagnostics.NewService(app.DB, strings.TrimSpace(app.Config.DatabaseURL), app.StoreFallback)
}
