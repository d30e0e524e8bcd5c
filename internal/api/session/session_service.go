package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/FACorreiaa/go-yatra/internal/api/catalog"
	"github.com/FACorreiaa/go-yatra/internal/api/recommendation"
	"github.com/FACorreiaa/go-yatra/internal/api/trip"
	"github.com/FACorreiaa/go-yatra/internal/types"
)

var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrUnknownState      = errors.New("state not found")
	ErrUnknownCity       = errors.New("city not found")
	ErrUnknownPreference = errors.New("unknown preference")
	ErrNoState           = errors.New("no state selected")
	ErrCityNotInState    = errors.New("city does not belong to the selected state")
	ErrNoCity            = errors.New("no city selected")
	ErrNoRecommendation  = errors.New("no cities available for the selected state")
	ErrCityChanged       = errors.New("city changed while content was generated")
)

var _ Service = (*ServiceImpl)(nil)

// Service drives a single wizard visit: selections, recommendation and generated content.
type Service interface {
	Create(ctx context.Context) (types.TripSession, error)
	Get(ctx context.Context, id uuid.UUID) (types.TripSession, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SelectState(ctx context.Context, id uuid.UUID, stateID string) (types.TripSession, error)
	SelectCity(ctx context.Context, id uuid.UUID, cityID string) (types.TripSession, error)
	SelectPreferences(ctx context.Context, id uuid.UUID, prefs []types.PreferenceType) (types.TripSession, error)
	GenerateSchedule(ctx context.Context, id uuid.UUID, days int) (types.TripSession, error)
	GenerateGuide(ctx context.Context, id uuid.UUID) (types.TripSession, error)
}

type ServiceImpl struct {
	logger  *slog.Logger
	store   *Store
	catalog *catalog.Catalog
	engine  recommendation.Service
	trip    trip.Service
}

func NewServiceImpl(store *Store, c *catalog.Catalog, engine recommendation.Service, tripService trip.Service, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:  logger,
		store:   store,
		catalog: c,
		engine:  engine,
		trip:    tripService,
	}
}

func (s *ServiceImpl) Create(ctx context.Context) (types.TripSession, error) {
	sess := s.store.Create()
	s.logger.DebugContext(ctx, "Trip session created", slog.String("session", sess.ID.String()))
	return sess, nil
}

func (s *ServiceImpl) Get(_ context.Context, id uuid.UUID) (types.TripSession, error) {
	sess, ok := s.store.Get(id)
	if !ok {
		return types.TripSession{}, ErrSessionNotFound
	}
	return sess, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if !s.store.Delete(id) {
		return ErrSessionNotFound
	}
	s.logger.DebugContext(ctx, "Trip session deleted", slog.String("session", id.String()))
	return nil
}

// SelectState starts the wizard over in the given state.
func (s *ServiceImpl) SelectState(_ context.Context, id uuid.UUID, stateID string) (types.TripSession, error) {
	if _, ok := s.catalog.State(stateID); !ok {
		return types.TripSession{}, fmt.Errorf("%w: %q", ErrUnknownState, stateID)
	}
	return s.store.Update(id, func(sess *types.TripSession) error {
		sess.StateID = stateID
		sess.CityID = ""
		sess.Preferences = []types.PreferenceType{}
		sess.RecommendationNote = ""
		setCity(sess, "")
		return nil
	})
}

func (s *ServiceImpl) SelectCity(_ context.Context, id uuid.UUID, cityID string) (types.TripSession, error) {
	city, ok := s.catalog.City(cityID)
	if !ok {
		return types.TripSession{}, fmt.Errorf("%w: %q", ErrUnknownCity, cityID)
	}
	return s.store.Update(id, func(sess *types.TripSession) error {
		if sess.StateID == "" {
			return ErrNoState
		}
		if city.StateID != sess.StateID {
			return ErrCityNotInState
		}
		sess.CityID = city.ID
		sess.RecommendationNote = ""
		setCity(sess, city.ID)
		return nil
	})
}

// SelectPreferences stores the preferences and replaces the current city with the recommendation.
func (s *ServiceImpl) SelectPreferences(ctx context.Context, id uuid.UUID, prefs []types.PreferenceType) (types.TripSession, error) {
	for _, p := range prefs {
		if _, ok := s.catalog.Preference(p); !ok {
			return types.TripSession{}, fmt.Errorf("%w: %q", ErrUnknownPreference, p)
		}
	}
	return s.store.Update(id, func(sess *types.TripSession) error {
		if sess.StateID == "" {
			return ErrNoState
		}
		city, ok := s.engine.Recommend(sess.StateID, prefs)
		if !ok {
			return ErrNoRecommendation
		}
		sess.Preferences = append([]types.PreferenceType{}, prefs...)
		sess.CityID = ""
		sess.RecommendationNote = s.engine.Explanation(city, prefs)
		setCity(sess, city.ID)
		s.logger.DebugContext(ctx, "City recommended for session",
			slog.String("session", sess.ID.String()), slog.String("city", city.ID))
		return nil
	})
}

// setCity moves the session to cityID, dropping content generated for another city.
func setCity(sess *types.TripSession, cityID string) {
	if sess.RecommendedCityID != cityID {
		sess.Content = types.SessionContent{}
	}
	sess.RecommendedCityID = cityID
}

// currentCity returns the session and the city content should be generated for.
func (s *ServiceImpl) currentCity(id uuid.UUID) (types.TripSession, types.City, error) {
	sess, ok := s.store.Get(id)
	if !ok {
		return types.TripSession{}, types.City{}, ErrSessionNotFound
	}
	if sess.RecommendedCityID == "" {
		return types.TripSession{}, types.City{}, ErrNoCity
	}
	city, ok := s.catalog.City(sess.RecommendedCityID)
	if !ok {
		return types.TripSession{}, types.City{}, fmt.Errorf("%w: %q", ErrUnknownCity, sess.RecommendedCityID)
	}
	return sess, city, nil
}

func (s *ServiceImpl) GenerateSchedule(ctx context.Context, id uuid.UUID, days int) (types.TripSession, error) {
	ctx, span := otel.Tracer("SessionService").Start(ctx, "GenerateSchedule", trace.WithAttributes(
		attribute.String("session.id", id.String()),
		attribute.Int("trip.days", days),
	))
	defer span.End()

	_, city, err := s.currentCity(id)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return types.TripSession{}, err
	}

	content, err := s.trip.Generate(ctx, types.GenerateTripRequest{City: city.Name, Type: types.ContentSchedule, Days: days})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "schedule generation failed")
		return types.TripSession{}, err
	}

	return s.store.Update(id, func(sess *types.TripSession) error {
		if sess.RecommendedCityID != city.ID {
			return ErrCityChanged
		}
		sess.Content.Schedule = content
		sess.Content.ScheduleDays = days
		return nil
	})
}

// GenerateGuide fetches the history and traditions of the current city concurrently.
// Nothing is stored unless both succeed.
func (s *ServiceImpl) GenerateGuide(ctx context.Context, id uuid.UUID) (types.TripSession, error) {
	ctx, span := otel.Tracer("SessionService").Start(ctx, "GenerateGuide", trace.WithAttributes(
		attribute.String("session.id", id.String()),
	))
	defer span.End()

	_, city, err := s.currentCity(id)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return types.TripSession{}, err
	}

	var history, traditions string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		history, err = s.trip.Generate(gctx, types.GenerateTripRequest{City: city.Name, Type: types.ContentHistory})
		return err
	})
	g.Go(func() error {
		var err error
		traditions, err = s.trip.Generate(gctx, types.GenerateTripRequest{City: city.Name, Type: types.ContentTraditions})
		return err
	})
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "guide generation failed")
		return types.TripSession{}, err
	}

	return s.store.Update(id, func(sess *types.TripSession) error {
		if sess.RecommendedCityID != city.ID {
			return ErrCityChanged
		}
		sess.Content.History = history
		sess.Content.Traditions = traditions
		return nil
	})
}
