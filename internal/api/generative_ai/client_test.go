package generativeAI

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/FACorreiaa/go-yatra/config"
)

func TestStatusError(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"rate limit", http.StatusTooManyRequests, ErrRateLimited},
		{"payment", http.StatusPaymentRequired, ErrQuotaExceeded},
		{"server error", http.StatusInternalServerError, ErrUpstream},
		{"bad request", http.StatusBadRequest, ErrUpstream},
		{"unauthorized", http.StatusUnauthorized, ErrUpstream},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := statusError(tt.status, "detail")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUpstreamError(t *testing.T) {
	err := statusError(http.StatusBadGateway, "bad gateway")
	assert.ErrorIs(t, err, ErrUpstream)
	assert.EqualError(t, err, "AI gateway error: 502")

	assert.EqualError(t, noContent(), "No content generated")

	cause := errors.New("dial tcp: refused")
	err = upstreamError(cause)
	assert.ErrorIs(t, err, ErrUpstream)
	assert.ErrorIs(t, err, cause)
	assert.EqualError(t, err, "dial tcp: refused")
	assert.NotErrorIs(t, err, ErrRateLimited)
}

func TestNewCompleter(t *testing.T) {
	ctx := context.Background()

	t.Run("missing key is unconfigured", func(t *testing.T) {
		_, err := NewCompleter(ctx, config.GenerationConfig{Backend: BackendGateway})
		assert.ErrorIs(t, err, ErrUnconfigured)
	})

	t.Run("gateway", func(t *testing.T) {
		c, err := NewCompleter(ctx, config.GenerationConfig{Backend: BackendGateway, APIKey: "k"})
		require.NoError(t, err)
		assert.IsType(t, &GatewayClient{}, c)
	})

	t.Run("empty backend defaults to gateway", func(t *testing.T) {
		c, err := NewCompleter(ctx, config.GenerationConfig{APIKey: "k"})
		require.NoError(t, err)
		assert.IsType(t, &GatewayClient{}, c)
	})

	t.Run("azure without endpoint", func(t *testing.T) {
		_, err := NewCompleter(ctx, config.GenerationConfig{Backend: BackendAzure, APIKey: "k"})
		assert.ErrorIs(t, err, ErrUnconfigured)
	})

	t.Run("azure", func(t *testing.T) {
		cfg := config.GenerationConfig{Backend: BackendAzure, APIKey: "k"}
		cfg.Azure.Endpoint = "https://example.openai.azure.com"
		cfg.Azure.Deployment = "gpt-4o"
		c, err := NewCompleter(ctx, cfg)
		require.NoError(t, err)
		assert.IsType(t, &AzureClient{}, c)
	})

	t.Run("unknown backend", func(t *testing.T) {
		_, err := NewCompleter(ctx, config.GenerationConfig{Backend: "carrier-pigeon", APIKey: "k"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "carrier-pigeon")
	})
}

func TestGeminiError(t *testing.T) {
	assert.ErrorIs(t, geminiError(genai.APIError{Code: 429, Message: "RESOURCE_EXHAUSTED"}), ErrRateLimited)
	assert.ErrorIs(t, geminiError(genai.APIError{Code: 500, Message: "internal"}), ErrUpstream)
	assert.ErrorIs(t, geminiError(errors.New("dial tcp: refused")), ErrUpstream)
}

func TestGeminiModel(t *testing.T) {
	assert.Equal(t, "gemini-2.5-flash", geminiModel("google/gemini-2.5-flash"))
	assert.Equal(t, "gemini-2.0-flash", geminiModel("gemini-2.0-flash"))
}

func TestAzureError(t *testing.T) {
	assert.ErrorIs(t, azureError(&azcore.ResponseError{StatusCode: 429, ErrorCode: "TooManyRequests"}), ErrRateLimited)
	assert.ErrorIs(t, azureError(&azcore.ResponseError{StatusCode: 402, ErrorCode: "QuotaExceeded"}), ErrQuotaExceeded)
	assert.ErrorIs(t, azureError(&azcore.ResponseError{StatusCode: 503}), ErrUpstream)
	assert.ErrorIs(t, azureError(errors.New("tls handshake timeout")), ErrUpstream)
}
