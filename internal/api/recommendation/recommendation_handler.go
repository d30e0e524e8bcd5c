package recommendation

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-yatra/app/observability/metrics"
	"github.com/FACorreiaa/go-yatra/internal/api"
	"github.com/FACorreiaa/go-yatra/internal/api/catalog"
	"github.com/FACorreiaa/go-yatra/internal/types"
)

// globalRand draws from the concurrency-safe math/rand/v2 source.
type globalRand struct{}

func (globalRand) Intn(n int) int { return rand.IntN(n) }

type HandlerImpl struct {
	logger  *slog.Logger
	service Service
	catalog *catalog.Catalog
	rng     Rand
}

func NewHandlerImpl(service Service, c *catalog.Catalog, logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{
		logger:  logger,
		service: service,
		catalog: c,
		rng:     globalRand{},
	}
}

// WithRand replaces the random source used for state suggestions.
func (h *HandlerImpl) WithRand(rng Rand) *HandlerImpl {
	h.rng = rng
	return h
}

// RecommendCity godoc
// @Summary      Recommend a city for a set of preferences
// @Tags         recommendations
// @Accept       json
// @Produce      json
// @Param        request body types.RecommendationRequest true "State and preferences"
// @Success      200 {object} types.RecommendationResponse
// @Failure      400 {object} api.Error
// @Failure      404 {object} api.Error
// @Router       /recommendations [post]
func (h *HandlerImpl) RecommendCity(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("RecommendationHandler").Start(r.Context(), "RecommendCity", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/v1/recommendations"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "RecommendCity"))

	var req types.RecommendationRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Failed to decode request body", slog.Any("error", err))
		span.SetStatus(codes.Error, "Invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if req.StateID == "" {
		span.SetStatus(codes.Error, "Missing state")
		api.ErrorResponse(w, r, http.StatusBadRequest, "stateId is required")
		return
	}
	for _, p := range req.Preferences {
		if _, ok := h.catalog.Preference(p); !ok {
			l.WarnContext(ctx, "Unknown preference", slog.String("preference", string(p)))
			span.SetStatus(codes.Error, "Unknown preference")
			api.ErrorResponse(w, r, http.StatusBadRequest, "unknown preference: "+string(p))
			return
		}
	}
	span.SetAttributes(
		attribute.String("state.id", req.StateID),
		attribute.Int("preferences.count", len(req.Preferences)),
	)

	city, ok := h.service.Recommend(req.StateID, req.Preferences)
	if !ok {
		l.InfoContext(ctx, "No cities for state", slog.String("state", req.StateID))
		h.record(ctx, "none")
		span.SetStatus(codes.Error, "No recommendation")
		api.ErrorResponse(w, r, http.StatusNotFound, "No cities available for this state")
		return
	}

	h.record(ctx, "found")
	l.DebugContext(ctx, "City recommended", slog.String("state", req.StateID), slog.String("city", city.ID))
	span.SetStatus(codes.Ok, "City recommended")
	api.WriteJSONResponse(w, r, http.StatusOK, types.RecommendationResponse{
		City:        city,
		Explanation: h.service.Explanation(city, req.Preferences),
	})
}

// SuggestState godoc
// @Summary      Suggest a state to explore
// @Tags         recommendations
// @Produce      json
// @Success      200 {object} types.State
// @Failure      404 {object} api.Error
// @Router       /states/suggested [get]
func (h *HandlerImpl) SuggestState(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("RecommendationHandler").Start(r.Context(), "SuggestState")
	defer span.End()

	state, ok := h.service.SuggestState(h.rng)
	if !ok {
		span.SetStatus(codes.Error, "Catalog has no states")
		api.ErrorResponse(w, r, http.StatusNotFound, "No states available")
		return
	}
	h.logger.DebugContext(ctx, "State suggested", slog.String("state", state.ID))
	api.WriteJSONResponse(w, r, http.StatusOK, state)
}

func (h *HandlerImpl) record(ctx context.Context, outcome string) {
	metrics.Get().RecommendationsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}
