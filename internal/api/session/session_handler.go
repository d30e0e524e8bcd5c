package session

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-yatra/internal/api"
	"github.com/FACorreiaa/go-yatra/internal/api/trip"
	"github.com/FACorreiaa/go-yatra/internal/types"
)

type HandlerImpl struct {
	logger  *slog.Logger
	service Service
}

func NewHandlerImpl(service Service, logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{
		logger:  logger,
		service: service,
	}
}

// errorStatus maps a session error to its HTTP status and client message.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, ErrSessionNotFound),
		errors.Is(err, ErrUnknownState),
		errors.Is(err, ErrUnknownCity),
		errors.Is(err, ErrNoRecommendation):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, ErrUnknownPreference):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, ErrNoState),
		errors.Is(err, ErrCityNotInState),
		errors.Is(err, ErrNoCity),
		errors.Is(err, ErrCityChanged):
		return http.StatusConflict, err.Error()
	default:
		return trip.ErrorStatus(err)
	}
}

func (h *HandlerImpl) fail(w http.ResponseWriter, r *http.Request, l *slog.Logger, span trace.Span, err error) {
	status, message := errorStatus(err)
	if status >= http.StatusInternalServerError {
		l.ErrorContext(r.Context(), "Session request failed", slog.Any("error", err), slog.Int("status", status))
	} else {
		l.WarnContext(r.Context(), "Session request rejected", slog.Any("error", err), slog.Int("status", status))
	}
	span.SetStatus(codes.Error, message)
	api.ErrorResponse(w, r, status, message)
}

func (h *HandlerImpl) sessionID(w http.ResponseWriter, r *http.Request, span trace.Span) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "sessionID"))
	if err != nil {
		span.SetStatus(codes.Error, "Invalid session ID")
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid session ID format")
		return uuid.Nil, false
	}
	span.SetAttributes(attribute.String("session.id", id.String()))
	return id, true
}

// CreateSession godoc
// @Summary      Start a trip session
// @Tags         sessions
// @Produce      json
// @Success      201 {object} types.TripSession
// @Router       /sessions [post]
func (h *HandlerImpl) CreateSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("SessionHandler").Start(r.Context(), "CreateSession", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/v1/sessions"),
	))
	defer span.End()

	sess, err := h.service.Create(ctx)
	if err != nil {
		h.fail(w, r, h.logger.With(slog.String("handler", "CreateSession")), span, err)
		return
	}
	span.SetStatus(codes.Ok, "Session created")
	api.WriteJSONResponse(w, r, http.StatusCreated, sess)
}

// GetSession godoc
// @Summary      Get a trip session
// @Tags         sessions
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Success      200 {object} types.TripSession
// @Failure      400 {object} api.Error
// @Failure      404 {object} api.Error
// @Router       /sessions/{sessionID} [get]
func (h *HandlerImpl) GetSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("SessionHandler").Start(r.Context(), "GetSession")
	defer span.End()

	id, ok := h.sessionID(w, r, span)
	if !ok {
		return
	}
	sess, err := h.service.Get(ctx, id)
	if err != nil {
		h.fail(w, r, h.logger.With(slog.String("handler", "GetSession")), span, err)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, sess)
}

// DeleteSession godoc
// @Summary      End a trip session
// @Tags         sessions
// @Param        sessionID path string true "Session ID"
// @Success      204
// @Failure      404 {object} api.Error
// @Router       /sessions/{sessionID} [delete]
func (h *HandlerImpl) DeleteSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("SessionHandler").Start(r.Context(), "DeleteSession")
	defer span.End()

	id, ok := h.sessionID(w, r, span)
	if !ok {
		return
	}
	if err := h.service.Delete(ctx, id); err != nil {
		h.fail(w, r, h.logger.With(slog.String("handler", "DeleteSession")), span, err)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusNoContent, nil)
}

// SelectState godoc
// @Summary      Choose the state to explore
// @Description  Selecting a state clears every later choice and all generated content.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Param        request body types.SelectStateRequest true "State"
// @Success      200 {object} types.TripSession
// @Failure      400 {object} api.Error
// @Failure      404 {object} api.Error
// @Router       /sessions/{sessionID}/state [put]
func (h *HandlerImpl) SelectState(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("SessionHandler").Start(r.Context(), "SelectState")
	defer span.End()

	l := h.logger.With(slog.String("handler", "SelectState"))
	id, ok := h.sessionID(w, r, span)
	if !ok {
		return
	}

	var req types.SelectStateRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		span.SetStatus(codes.Error, "Invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if req.StateID == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "stateId is required")
		return
	}

	sess, err := h.service.SelectState(ctx, id, req.StateID)
	if err != nil {
		h.fail(w, r, l, span, err)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, sess)
}

// SelectCity godoc
// @Summary      Choose a city directly
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Param        request body types.SelectCityRequest true "City"
// @Success      200 {object} types.TripSession
// @Failure      400 {object} api.Error
// @Failure      404 {object} api.Error
// @Failure      409 {object} api.Error
// @Router       /sessions/{sessionID}/city [put]
func (h *HandlerImpl) SelectCity(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("SessionHandler").Start(r.Context(), "SelectCity")
	defer span.End()

	l := h.logger.With(slog.String("handler", "SelectCity"))
	id, ok := h.sessionID(w, r, span)
	if !ok {
		return
	}

	var req types.SelectCityRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		span.SetStatus(codes.Error, "Invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if req.CityID == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "cityId is required")
		return
	}

	sess, err := h.service.SelectCity(ctx, id, req.CityID)
	if err != nil {
		h.fail(w, r, l, span, err)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, sess)
}

// SelectPreferences godoc
// @Summary      Choose preferences and get a recommended city
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Param        request body types.SelectPreferencesRequest true "Preferences"
// @Success      200 {object} types.TripSession
// @Failure      400 {object} api.Error
// @Failure      404 {object} api.Error
// @Failure      409 {object} api.Error
// @Router       /sessions/{sessionID}/preferences [put]
func (h *HandlerImpl) SelectPreferences(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("SessionHandler").Start(r.Context(), "SelectPreferences")
	defer span.End()

	l := h.logger.With(slog.String("handler", "SelectPreferences"))
	id, ok := h.sessionID(w, r, span)
	if !ok {
		return
	}

	var req types.SelectPreferencesRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		span.SetStatus(codes.Error, "Invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	sess, err := h.service.SelectPreferences(ctx, id, req.Preferences)
	if err != nil {
		h.fail(w, r, l, span, err)
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, sess)
}

// GenerateSchedule godoc
// @Summary      Generate a day-wise schedule for the session's city
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Param        request body types.ScheduleRequest true "Number of days"
// @Success      200 {object} types.TripSession
// @Failure      400 {object} api.Error
// @Failure      402 {object} api.Error
// @Failure      404 {object} api.Error
// @Failure      409 {object} api.Error
// @Failure      429 {object} api.Error
// @Failure      500 {object} api.Error
// @Failure      503 {object} api.Error
// @Router       /sessions/{sessionID}/schedule [post]
func (h *HandlerImpl) GenerateSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("SessionHandler").Start(r.Context(), "GenerateSchedule")
	defer span.End()

	l := h.logger.With(slog.String("handler", "GenerateSchedule"))
	id, ok := h.sessionID(w, r, span)
	if !ok {
		return
	}

	var req types.ScheduleRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		span.SetStatus(codes.Error, "Invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	sess, err := h.service.GenerateSchedule(ctx, id, req.Days)
	if err != nil {
		h.fail(w, r, l, span, err)
		return
	}
	span.SetStatus(codes.Ok, "Schedule generated")
	api.WriteJSONResponse(w, r, http.StatusOK, sess)
}

// GenerateGuide godoc
// @Summary      Generate the history and traditions of the session's city
// @Tags         sessions
// @Produce      json
// @Param        sessionID path string true "Session ID"
// @Success      200 {object} types.TripSession
// @Failure      402 {object} api.Error
// @Failure      404 {object} api.Error
// @Failure      409 {object} api.Error
// @Failure      429 {object} api.Error
// @Failure      500 {object} api.Error
// @Failure      503 {object} api.Error
// @Router       /sessions/{sessionID}/guide [post]
func (h *HandlerImpl) GenerateGuide(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("SessionHandler").Start(r.Context(), "GenerateGuide")
	defer span.End()

	l := h.logger.With(slog.String("handler", "GenerateGuide"))
	id, ok := h.sessionID(w, r, span)
	if !ok {
		return
	}

	sess, err := h.service.GenerateGuide(ctx, id)
	if err != nil {
		h.fail(w, r, l, span, err)
		return
	}
	span.SetStatus(codes.Ok, "Guide generated")
	api.WriteJSONResponse(w, r, http.StatusOK, sess)
}
