package generativeAI

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/FACorreiaa/go-yatra/config"
)

// Completer performs one chat-completion call and returns the generated text.
// Implementations never retry and never cache.
type Completer interface {
	Complete(ctx context.Context, model, system, user string) (string, error)
}

var (
	// ErrUnconfigured means no credential is available for the selected backend.
	ErrUnconfigured = errors.New("content generation is not configured")
	// ErrRateLimited means the upstream asked the caller to slow down.
	ErrRateLimited = errors.New("upstream rate limit exceeded")
	// ErrQuotaExceeded means the upstream refused the call for billing or quota reasons.
	ErrQuotaExceeded = errors.New("upstream quota exceeded")
	// ErrUpstream covers every other upstream failure, including empty completions.
	ErrUpstream = errors.New("upstream completion failed")
)

// UpstreamError is an ErrUpstream failure. Detail is the text shown to clients.
type UpstreamError struct {
	Detail string
	Err    error
}

func (e *UpstreamError) Error() string { return e.Detail }

func (e *UpstreamError) Is(target error) bool { return target == ErrUpstream }

func (e *UpstreamError) Unwrap() error { return e.Err }

func upstreamError(err error) error {
	return &UpstreamError{Detail: err.Error(), Err: err}
}

const (
	BackendGateway = "gateway"
	BackendGemini  = "gemini"
	BackendAzure   = "azure"
)

// NewCompleter builds the completer for cfg.Backend. It returns ErrUnconfigured
// when the backend has no credential.
func NewCompleter(ctx context.Context, cfg config.GenerationConfig) (Completer, error) {
	if cfg.APIKey == "" {
		return nil, ErrUnconfigured
	}
	switch cfg.Backend {
	case BackendGateway, "":
		return NewGatewayClient(cfg.BaseURL, cfg.APIKey), nil
	case BackendGemini:
		return NewGeminiClient(ctx, cfg.APIKey, cfg.BaseURL)
	case BackendAzure:
		return NewAzureClient(cfg.Azure.Endpoint, cfg.APIKey, cfg.Azure.Deployment)
	default:
		return nil, fmt.Errorf("unknown generation backend %q", cfg.Backend)
	}
}

// statusError maps an upstream HTTP status to the shared error taxonomy.
func statusError(status int, detail string) error {
	switch status {
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrRateLimited, detail)
	case http.StatusPaymentRequired:
		return fmt.Errorf("%w: %s", ErrQuotaExceeded, detail)
	default:
		return &UpstreamError{Detail: fmt.Sprintf("AI gateway error: %d", status)}
	}
}

func noContent() error {
	return &UpstreamError{Detail: "No content generated"}
}
