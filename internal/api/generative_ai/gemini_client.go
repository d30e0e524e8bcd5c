package generativeAI

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

var _ Completer = (*GeminiClient)(nil)

// GeminiClient calls the Gemini API directly.
type GeminiClient struct {
	client *genai.Client
}

// NewGeminiClient creates a Gemini API client. baseURL is optional.
func NewGeminiClient(ctx context.Context, apiKey, baseURL string) (*GeminiClient, error) {
	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" && baseURL != DefaultGatewayURL {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiClient{client: client}, nil
}

// geminiModel strips the gateway vendor prefix ("google/gemini-2.5-flash").
func geminiModel(model string) string {
	return strings.TrimPrefix(model, "google/")
}

func (g *GeminiClient) Complete(ctx context.Context, model, system, user string) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx, geminiModel(model), genai.Text(user), &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: system}}},
	})
	if err != nil {
		return "", geminiError(err)
	}

	text := result.Text()
	if strings.TrimSpace(text) == "" {
		return "", noContent()
	}
	return text, nil
}

func geminiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return statusError(apiErr.Code, apiErr.Message)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) {
		return statusError(apiErrPtr.Code, apiErrPtr.Message)
	}
	return upstreamError(err)
}
