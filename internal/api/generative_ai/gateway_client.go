package generativeAI

import (
	"context"
	"errors"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// DefaultGatewayURL is the OpenAI-compatible gateway used when none is configured.
const DefaultGatewayURL = "https://ai.gateway.lovable.dev/v1/"

var _ Completer = (*GatewayClient)(nil)

// GatewayClient talks to an OpenAI-compatible chat completions gateway.
type GatewayClient struct {
	client openai.Client
}

func NewGatewayClient(baseURL, apiKey string, opts ...option.RequestOption) *GatewayClient {
	if baseURL == "" {
		baseURL = DefaultGatewayURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	opts = append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
	}, opts...)
	return &GatewayClient{client: openai.NewClient(opts...)}
}

func (g *GatewayClient) Complete(ctx context.Context, model, system, user string) (string, error) {
	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", statusError(apiErr.StatusCode, apiErr.Message)
		}
		return "", upstreamError(err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", noContent()
	}
	return resp.Choices[0].Message.Content, nil
}
