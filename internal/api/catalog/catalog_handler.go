package catalog

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-yatra/internal/api"
)

type HandlerImpl struct {
	logger  *slog.Logger
	catalog *Catalog
}

func NewHandlerImpl(catalog *Catalog, logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{
		logger:  logger,
		catalog: catalog,
	}
}

// ListStates godoc
// @Summary      List states
// @Tags         catalog
// @Produce      json
// @Success      200 {array} types.State
// @Router       /states [get]
func (h *HandlerImpl) ListStates(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("CatalogHandler").Start(r.Context(), "ListStates")
	defer span.End()

	states := h.catalog.States()
	h.logger.DebugContext(ctx, "Returning states", slog.Int("count", len(states)))
	span.SetStatus(codes.Ok, "States returned")
	api.WriteJSONResponse(w, r, http.StatusOK, states)
}

// GetState godoc
// @Summary      Get a state
// @Tags         catalog
// @Produce      json
// @Param        stateID path string true "State ID"
// @Success      200 {object} types.State
// @Failure      404 {object} api.Error
// @Router       /states/{stateID} [get]
func (h *HandlerImpl) GetState(w http.ResponseWriter, r *http.Request) {
	stateID := chi.URLParam(r, "stateID")
	_, span := otel.Tracer("CatalogHandler").Start(r.Context(), "GetState", trace.WithAttributes(
		attribute.String("state.id", stateID),
	))
	defer span.End()

	state, ok := h.catalog.State(stateID)
	if !ok {
		span.SetStatus(codes.Error, "State not found")
		api.ErrorResponse(w, r, http.StatusNotFound, "State not found")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, state)
}

// ListCitiesForState godoc
// @Summary      List the cities of a state
// @Tags         catalog
// @Produce      json
// @Param        stateID path string true "State ID"
// @Success      200 {array} types.City
// @Failure      404 {object} api.Error
// @Router       /states/{stateID}/cities [get]
func (h *HandlerImpl) ListCitiesForState(w http.ResponseWriter, r *http.Request) {
	stateID := chi.URLParam(r, "stateID")
	ctx, span := otel.Tracer("CatalogHandler").Start(r.Context(), "ListCitiesForState", trace.WithAttributes(
		attribute.String("state.id", stateID),
	))
	defer span.End()

	if _, ok := h.catalog.State(stateID); !ok {
		span.SetStatus(codes.Error, "State not found")
		api.ErrorResponse(w, r, http.StatusNotFound, "State not found")
		return
	}

	cities := h.catalog.CitiesForState(stateID)
	h.logger.DebugContext(ctx, "Returning cities", slog.String("state", stateID), slog.Int("count", len(cities)))
	api.WriteJSONResponse(w, r, http.StatusOK, cities)
}

// GetCity godoc
// @Summary      Get a city
// @Tags         catalog
// @Produce      json
// @Param        cityID path string true "City ID"
// @Success      200 {object} types.City
// @Failure      404 {object} api.Error
// @Router       /cities/{cityID} [get]
func (h *HandlerImpl) GetCity(w http.ResponseWriter, r *http.Request) {
	cityID := chi.URLParam(r, "cityID")
	_, span := otel.Tracer("CatalogHandler").Start(r.Context(), "GetCity", trace.WithAttributes(
		attribute.String("city.id", cityID),
	))
	defer span.End()

	city, ok := h.catalog.City(cityID)
	if !ok {
		span.SetStatus(codes.Error, "City not found")
		api.ErrorResponse(w, r, http.StatusNotFound, "City not found")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, city)
}

// ListPlacesForCity godoc
// @Summary      List places to visit in a city
// @Tags         catalog
// @Produce      json
// @Param        cityID path string true "City ID"
// @Success      200 {array} types.Place
// @Failure      404 {object} api.Error
// @Router       /cities/{cityID}/places [get]
func (h *HandlerImpl) ListPlacesForCity(w http.ResponseWriter, r *http.Request) {
	cityID := chi.URLParam(r, "cityID")
	_, span := otel.Tracer("CatalogHandler").Start(r.Context(), "ListPlacesForCity", trace.WithAttributes(
		attribute.String("city.id", cityID),
	))
	defer span.End()

	if _, ok := h.catalog.City(cityID); !ok {
		span.SetStatus(codes.Error, "City not found")
		api.ErrorResponse(w, r, http.StatusNotFound, "City not found")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, h.catalog.PlacesForCity(cityID))
}

// ListPreferences godoc
// @Summary      List travel preferences
// @Tags         catalog
// @Produce      json
// @Success      200 {array} types.Preference
// @Router       /preferences [get]
func (h *HandlerImpl) ListPreferences(w http.ResponseWriter, r *http.Request) {
	api.WriteJSONResponse(w, r, http.StatusOK, h.catalog.Preferences())
}
