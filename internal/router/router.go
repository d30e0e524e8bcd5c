package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	appMiddleware "github.com/FACorreiaa/go-yatra/app/middleware"
	"github.com/FACorreiaa/go-yatra/internal/api/catalog"
	"github.com/FACorreiaa/go-yatra/internal/api/recommendation"
	"github.com/FACorreiaa/go-yatra/internal/api/session"
	"github.com/FACorreiaa/go-yatra/internal/api/trip"
)

// Config contains dependencies needed for the router setup
type Config struct {
	CatalogHandler        *catalog.HandlerImpl
	RecommendationHandler *recommendation.HandlerImpl
	TripHandler           *trip.HandlerImpl
	SessionHandler        *session.HandlerImpl

	AllowedOrigins []string
	AllowedHeaders []string

	// GenerationRateLimit caps requests per client address on the routes that
	// call the completion backend. Zero disables the limit.
	GenerationRateLimit  int
	GenerationRateWindow time.Duration
}

// SetupRouter initializes and configures the main application router.
// Server-wide middleware (logger, requestID, recoverer) are applied in main.go.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	headers := cfg.AllowedHeaders
	if len(headers) == 0 {
		headers = []string{"Authorization", "X-Client-Info", "Apikey", "Content-Type"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: headers,
		ExposedHeaders: []string{"Link"},
		MaxAge:         300,
	}))

	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("pong"))
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	limitGeneration := appMiddleware.RateLimitByIP(cfg.GenerationRateLimit, cfg.GenerationRateWindow)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/preferences", cfg.CatalogHandler.ListPreferences)

		r.Route("/states", func(r chi.Router) {
			r.Get("/", cfg.CatalogHandler.ListStates)
			r.Get("/suggested", cfg.RecommendationHandler.SuggestState)
			r.Get("/{stateID}", cfg.CatalogHandler.GetState)
			r.Get("/{stateID}/cities", cfg.CatalogHandler.ListCitiesForState)
		})

		r.Route("/cities", func(r chi.Router) {
			r.Get("/{cityID}", cfg.CatalogHandler.GetCity)
			r.Get("/{cityID}/places", cfg.CatalogHandler.ListPlacesForCity)
		})

		r.Post("/recommendations", cfg.RecommendationHandler.RecommendCity)

		r.With(limitGeneration).Post("/generate-trip", cfg.TripHandler.GenerateTrip)

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", cfg.SessionHandler.CreateSession)
			r.Route("/{sessionID}", func(r chi.Router) {
				r.Get("/", cfg.SessionHandler.GetSession)
				r.Delete("/", cfg.SessionHandler.DeleteSession)
				r.Put("/state", cfg.SessionHandler.SelectState)
				r.Put("/city", cfg.SessionHandler.SelectCity)
				r.Put("/preferences", cfg.SessionHandler.SelectPreferences)

				r.Group(func(r chi.Router) {
					r.Use(limitGeneration)
					r.Post("/schedule", cfg.SessionHandler.GenerateSchedule)
					r.Post("/guide", cfg.SessionHandler.GenerateGuide)
				})
			})
		})
	})

	return r
}
