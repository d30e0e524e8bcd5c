package trip

import (
	"errors"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-yatra/internal/api"
	generativeAI "github.com/FACorreiaa/go-yatra/internal/api/generative_ai"
	"github.com/FACorreiaa/go-yatra/internal/types"
)

const (
	rateLimitedMessage = "Rate limit exceeded. Please try again in a moment."
	quotaMessage       = "Service temporarily unavailable. Please try again later."
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

// GenerateTrip godoc
// @Summary      Generate trip content
// @Description  Generates a day-wise schedule, a history or a traditions summary for a city.
// @Tags         trip
// @Accept       json
// @Produce      json
// @Param        request body types.GenerateTripRequest true "City, content type and day count"
// @Success      200 {object} types.GenerateTripResponse
// @Failure      400 {object} api.Error
// @Failure      402 {object} api.Error
// @Failure      429 {object} api.Error
// @Failure      500 {object} api.Error
// @Failure      503 {object} api.Error
// @Router       /generate-trip [post]
func (h *HandlerImpl) GenerateTrip(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("TripHandler").Start(r.Context(), "GenerateTrip", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/v1/generate-trip"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "GenerateTrip"))

	var req types.GenerateTripRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Failed to decode request body", slog.Any("error", err))
		span.SetStatus(codes.Error, "Invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	content, err := h.service.Generate(ctx, req)
	if err != nil {
		status, message := ErrorStatus(err)
		l.ErrorContext(ctx, "Error in generate-trip", slog.Any("error", err), slog.Int("status", status))
		span.SetStatus(codes.Error, message)
		api.ErrorResponse(w, r, status, message)
		return
	}

	span.SetStatus(codes.Ok, "Content generated")
	api.WriteJSONResponse(w, r, http.StatusOK, types.GenerateTripResponse{Content: content})
}

// ErrorStatus maps a generation error to its HTTP status and client message.
func ErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, generativeAI.ErrUnconfigured):
		return http.StatusServiceUnavailable, generativeAI.ErrUnconfigured.Error()
	case errors.Is(err, generativeAI.ErrRateLimited):
		return http.StatusTooManyRequests, rateLimitedMessage
	case errors.Is(err, generativeAI.ErrQuotaExceeded):
		return http.StatusPaymentRequired, quotaMessage
	default:
		var upErr *generativeAI.UpstreamError
		if errors.As(err, &upErr) {
			return http.StatusInternalServerError, upErr.Detail
		}
		return http.StatusInternalServerError, err.Error()
	}
}
