package trip

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-yatra/app/observability/metrics"
	generativeAI "github.com/FACorreiaa/go-yatra/internal/api/generative_ai"
	"github.com/FACorreiaa/go-yatra/internal/types"
)

// DefaultModel is the completion model requested from the gateway.
const DefaultModel = "google/gemini-2.5-flash"

// ErrInvalidRequest marks requests rejected before any upstream call.
var ErrInvalidRequest = errors.New("invalid request")

var _ Service = (*ServiceImpl)(nil)

// Service turns a trip content request into generated text.
type Service interface {
	Generate(ctx context.Context, req types.GenerateTripRequest) (string, error)
}

type ServiceImpl struct {
	logger    *slog.Logger
	completer generativeAI.Completer
	model     string
	maxDays   int
}

// NewServiceImpl builds the proxy service. A nil completer makes every call
// fail with generativeAI.ErrUnconfigured.
func NewServiceImpl(completer generativeAI.Completer, model string, maxDays int, logger *slog.Logger) *ServiceImpl {
	if model == "" {
		model = DefaultModel
	}
	return &ServiceImpl{
		logger:    logger,
		completer: completer,
		model:     model,
		maxDays:   maxDays,
	}
}

// Validate checks a request and resolves its content variant without calling upstream.
func (s *ServiceImpl) Validate(req types.GenerateTripRequest) (ContentKind, error) {
	if strings.TrimSpace(req.City) == "" {
		return nil, fmt.Errorf("%w: city is required", ErrInvalidRequest)
	}
	kind, ok := KindFor(req.Type)
	if !ok {
		return nil, fmt.Errorf("%w: Invalid type specified", ErrInvalidRequest)
	}
	if err := kind.Validate(req, s.maxDays); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return kind, nil
}

func (s *ServiceImpl) Generate(ctx context.Context, req types.GenerateTripRequest) (string, error) {
	ctx, span := otel.Tracer("TripService").Start(ctx, "Generate", trace.WithAttributes(
		attribute.String("trip.city", req.City),
		attribute.String("trip.type", string(req.Type)),
		attribute.Int("trip.days", req.Days),
	))
	defer span.End()

	l := s.logger.With(slog.String("city", req.City), slog.String("type", string(req.Type)))

	kind, err := s.Validate(req)
	if err != nil {
		s.fail(ctx, span, err)
		return "", err
	}
	if s.completer == nil {
		err = generativeAI.ErrUnconfigured
		l.ErrorContext(ctx, "No completion backend configured")
		s.fail(ctx, span, err)
		return "", err
	}

	req.City = strings.TrimSpace(req.City)
	prompt := kind.Prompt(req)

	l.InfoContext(ctx, "Generating content")
	start := time.Now()
	content, err := s.completer.Complete(ctx, s.model, prompt.System, prompt.User)
	metrics.Get().GenerationDurationSeconds.Record(ctx, time.Since(start).Seconds(),
		metric.WithAttributes(attribute.String("type", string(kind.Type()))))
	if err != nil {
		l.ErrorContext(ctx, "Upstream completion failed", slog.Any("error", err))
		s.fail(ctx, span, err)
		return "", err
	}

	metrics.Get().GenerationRequestsTotal.Add(ctx, 1,
		metric.WithAttributes(attribute.String("type", string(kind.Type()))))
	l.InfoContext(ctx, "Successfully generated content", slog.Int("length", len(content)))
	span.SetStatus(codes.Ok, "Content generated")
	return content, nil
}

func (s *ServiceImpl) fail(ctx context.Context, span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	metrics.Get().GenerationErrorsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", ErrorKind(err))))
}

// ErrorKind names the failure class of err for logs and metrics.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return "invalid_request"
	case errors.Is(err, generativeAI.ErrUnconfigured):
		return "unconfigured"
	case errors.Is(err, generativeAI.ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, generativeAI.ErrQuotaExceeded):
		return "quota_exceeded"
	default:
		return "upstream_error"
	}
}
