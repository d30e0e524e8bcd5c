package container

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	database "github.com/FACorreiaa/go-yatra/app/db"
	"github.com/FACorreiaa/go-yatra/config"
	"github.com/FACorreiaa/go-yatra/internal/api/catalog"
	generativeAI "github.com/FACorreiaa/go-yatra/internal/api/generative_ai"
	"github.com/FACorreiaa/go-yatra/internal/api/recommendation"
	"github.com/FACorreiaa/go-yatra/internal/api/session"
	"github.com/FACorreiaa/go-yatra/internal/api/trip"
)

const (
	CatalogSourceSeed     = "seed"
	CatalogSourcePostgres = "postgres"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *slog.Logger
	// Pool is nil unless the catalog is read from postgres.
	Pool *pgxpool.Pool

	Catalog *catalog.Catalog

	CatalogHandler        *catalog.HandlerImpl
	RecommendationHandler *recommendation.HandlerImpl
	TripHandler           *trip.HandlerImpl
	SessionHandler        *session.HandlerImpl
}

// NewContainer loads the catalog, builds the completion backend and wires the handlers.
// A missing backend credential is not fatal: generation routes answer 503 instead.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	c := &Container{
		Config: cfg,
		Logger: logger,
	}

	repo, err := c.catalogRepository(ctx)
	if err != nil {
		c.Close()
		return nil, err
	}
	cat, err := repo.Load(ctx)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	c.Catalog = cat

	completer, err := generativeAI.NewCompleter(ctx, cfg.Generation)
	switch {
	case errors.Is(err, generativeAI.ErrUnconfigured):
		logger.Warn("Content generation disabled: no credential configured",
			slog.String("backend", cfg.Generation.Backend))
		completer = nil
	case err != nil:
		c.Close()
		return nil, fmt.Errorf("failed to create completion backend: %w", err)
	default:
		logger.Info("Content generation enabled",
			slog.String("backend", cfg.Generation.Backend),
			slog.String("model", cfg.Generation.Model))
	}

	model := cfg.Generation.Model
	if model == "" {
		model = trip.DefaultModel
	}

	engine := recommendation.NewEngine(cat)
	tripService := trip.NewServiceImpl(completer, model, cfg.Generation.MaxDays, logger)
	store := session.NewStore(cfg.Session.TTL, cfg.Session.CleanupInterval)
	sessionService := session.NewServiceImpl(store, cat, engine, tripService, logger)

	c.CatalogHandler = catalog.NewHandlerImpl(cat, logger)
	c.RecommendationHandler = recommendation.NewHandlerImpl(engine, cat, logger)
	c.TripHandler = trip.NewHandlerImpl(tripService, logger)
	c.SessionHandler = session.NewHandlerImpl(sessionService, logger)
	return c, nil
}

func (c *Container) catalogRepository(ctx context.Context) (catalog.Repository, error) {
	switch c.Config.Catalog.Source {
	case "", CatalogSourceSeed:
		c.Logger.Info("Using compiled-in catalog")
		return catalog.NewSeedRepository(), nil
	case CatalogSourcePostgres:
	default:
		return nil, fmt.Errorf("unknown catalog source %q", c.Config.Catalog.Source)
	}

	dbConfig, err := database.NewDatabaseConfig(c.Config, c.Logger)
	if err != nil {
		return nil, err
	}
	if err := database.RunMigrations(dbConfig.ConnectionURL, c.Logger); err != nil {
		return nil, err
	}
	pool, err := database.Init(ctx, dbConfig.ConnectionURL, c.Logger)
	if err != nil {
		return nil, err
	}
	c.Pool = pool
	if !database.WaitForDB(ctx, pool, c.Logger) {
		return nil, errors.New("database not ready after waiting")
	}
	return catalog.NewPostgresRepository(pool, c.Logger), nil
}

// Close releases all resources held by the container
func (c *Container) Close() {
	if c.Pool != nil {
		c.Pool.Close()
	}
}
