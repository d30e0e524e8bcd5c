package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/FACorreiaa/go-yatra/internal/types"
)

var (
	_ Repository = (*SeedRepository)(nil)
	_ Repository = (*PostgresRepository)(nil)
)

// Repository loads the reference catalog. It is called once at startup.
type Repository interface {
	Load(ctx context.Context) (*Catalog, error)
}

// SeedRepository serves the compiled-in catalog.
type SeedRepository struct{}

func NewSeedRepository() *SeedRepository {
	return &SeedRepository{}
}

func (SeedRepository) Load(_ context.Context) (*Catalog, error) {
	return New(seedPreferences(), seedStates(), seedCities(), seedPlaces())
}

// Querier is the subset of pgxpool.Pool used by PostgresRepository.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresRepository reads the catalog tables created by the seed migrations.
type PostgresRepository struct {
	logger *slog.Logger
	pgpool Querier
}

func NewPostgresRepository(pgpool Querier, logger *slog.Logger) *PostgresRepository {
	return &PostgresRepository{
		logger: logger,
		pgpool: pgpool,
	}
}

const (
	selectStatesQuery = `
        SELECT id, name, description, image, highlights
        FROM states
        ORDER BY position, id`
	selectCitiesQuery = `
        SELECT id, state_id, name, description, image, tags, best_for
        FROM cities
        ORDER BY position, id`
	selectPlacesQuery = `
        SELECT id, city_id, name, description, image, category, visit_duration
        FROM places
        ORDER BY position, id`
)

func (r *PostgresRepository) Load(ctx context.Context) (*Catalog, error) {
	ctx, span := otel.Tracer("CatalogRepository").Start(ctx, "Load")
	defer span.End()

	states, err := r.loadStates(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to load states")
		return nil, err
	}
	cities, err := r.loadCities(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to load cities")
		return nil, err
	}
	places, err := r.loadPlaces(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to load places")
		return nil, err
	}

	c, err := New(seedPreferences(), states, cities, places)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "catalog validation failed")
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("catalog.states", len(states)),
		attribute.Int("catalog.cities", len(cities)),
		attribute.Int("catalog.places", len(places)),
	)
	r.logger.InfoContext(ctx, "Catalog loaded from postgres",
		slog.Int("states", len(states)),
		slog.Int("cities", len(cities)),
		slog.Int("places", len(places)))
	return c, nil
}

func (r *PostgresRepository) loadStates(ctx context.Context) ([]types.State, error) {
	rows, err := r.pgpool.Query(ctx, selectStatesQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query states: %w", err)
	}
	defer rows.Close()

	var states []types.State
	for rows.Next() {
		var s types.State
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.Image, &s.Highlights); err != nil {
			return nil, fmt.Errorf("failed to scan state: %w", err)
		}
		states = append(states, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating states: %w", err)
	}
	return states, nil
}

func (r *PostgresRepository) loadCities(ctx context.Context) ([]types.City, error) {
	rows, err := r.pgpool.Query(ctx, selectCitiesQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query cities: %w", err)
	}
	defer rows.Close()

	var cities []types.City
	for rows.Next() {
		var (
			c       types.City
			bestFor []string
		)
		if err := rows.Scan(&c.ID, &c.StateID, &c.Name, &c.Description, &c.Image, &c.Tags, &bestFor); err != nil {
			return nil, fmt.Errorf("failed to scan city: %w", err)
		}
		c.BestFor = make([]types.PreferenceType, len(bestFor))
		for i, p := range bestFor {
			c.BestFor[i] = types.PreferenceType(p)
		}
		cities = append(cities, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating cities: %w", err)
	}
	return cities, nil
}

func (r *PostgresRepository) loadPlaces(ctx context.Context) ([]types.Place, error) {
	rows, err := r.pgpool.Query(ctx, selectPlacesQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query places: %w", err)
	}
	defer rows.Close()

	var places []types.Place
	for rows.Next() {
		var p types.Place
		if err := rows.Scan(&p.ID, &p.CityID, &p.Name, &p.Description, &p.Image, &p.Category, &p.VisitDuration); err != nil {
			return nil, fmt.Errorf("failed to scan place: %w", err)
		}
		places = append(places, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating places: %w", err)
	}
	return places, nil
}
