package generativeAI

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/ai/azopenai"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
)

var _ Completer = (*AzureClient)(nil)

// AzureClient sends completions to an Azure OpenAI deployment.
type AzureClient struct {
	client       *azopenai.Client
	deploymentID string
}

// NewAzureClient creates an Azure OpenAI client. When deploymentID is empty the
// model passed to Complete is used as the deployment name.
func NewAzureClient(endpoint, apiKey, deploymentID string) (*AzureClient, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("%w: azure endpoint is empty", ErrUnconfigured)
	}
	keyCredential := azcore.NewKeyCredential(apiKey)
	client, err := azopenai.NewClientWithKeyCredential(endpoint, keyCredential, &azopenai.ClientOptions{
		ClientOptions: azcore.ClientOptions{
			// Negative disables retries.
			Retry: policy.RetryOptions{MaxRetries: -1},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("error creating Azure OpenAI client: %w", err)
	}
	return &AzureClient{
		client:       client,
		deploymentID: deploymentID,
	}, nil
}

func (c *AzureClient) Complete(ctx context.Context, model, system, user string) (string, error) {
	deployment := c.deploymentID
	if deployment == "" {
		deployment = model
	}

	resp, err := c.client.GetChatCompletions(ctx, azopenai.ChatCompletionsOptions{
		DeploymentName: to.Ptr(deployment),
		Messages: []azopenai.ChatRequestMessageClassification{
			&azopenai.ChatRequestSystemMessage{
				Content: azopenai.NewChatRequestSystemMessageContent(system),
			},
			&azopenai.ChatRequestUserMessage{
				Content: azopenai.NewChatRequestUserMessageContent(user),
			},
		},
	}, nil)
	if err != nil {
		return "", azureError(err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message == nil || resp.Choices[0].Message.Content == nil ||
		strings.TrimSpace(*resp.Choices[0].Message.Content) == "" {
		return "", noContent()
	}
	return *resp.Choices[0].Message.Content, nil
}

func azureError(err error) error {
	var respErr *azcore.ResponseError
	if errors.As(err, &respErr) {
		return statusError(respErr.StatusCode, respErr.ErrorCode)
	}
	return upstreamError(err)
}
