// Package openai implements freelearn.Classifier with the OpenAI chat completions API.
package openai

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/freelearn"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-4o-mini"

// Ensure Classifier implements freelearn.Classifier at compile time.
var _ freelearn.Classifier = (*Classifier)(nil)

// Classifier asks an OpenAI chat model for book labels.
type Classifier struct {
	client openai.Client
	model  string
}

// NewClient creates an OpenAI client. An empty baseURL keeps the default endpoint.
func NewClient(apiKey, baseURL string, opts ...option.RequestOption) openai.Client {
	all := []option.RequestOption{
		option.WithAPIKey(apiKey),
	}
	if baseURL != "" {
		all = append(all, option.WithBaseURL(baseURL))
	}
	all = append(all, opts...)
	return openai.NewClient(all...)
}

// NewClassifier creates a new Classifier. An empty model selects DefaultModel.
func NewClassifier(client openai.Client, model string) *Classifier {
	if model == "" {
		model = DefaultModel
	}
	return &Classifier{client: client, model: model}
}

// Classify returns the labels suggested by the model, trimmed.
func (c *Classifier) Classify(ctx context.Context, title, author, description string) (string, error) {
	if title == "" {
		return "", freelearn.Errorf(freelearn.EINVALID, "title required")
	}

	resp, err := c.client.Chat.Completions.New(ctx, BuildParams(c.model, title, author, description))
	if err != nil {
		return "", fmt.Errorf("openai chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", freelearn.Errorf(freelearn.EUNAVAILABLE, "openai returned no choices")
	}

	labels := strings.TrimSpace(resp.Choices[0].Message.Content)
	if labels == "" {
		return "", freelearn.Errorf(freelearn.EUNAVAILABLE, "openai returned empty labels")
	}
	return labels, nil
}

// BuildParams returns the chat completion request for a book.
func BuildParams(model, title, author, description string) openai.ChatCompletionNewParams {
	return openai.ChatCompletionNewParams{
		Model: model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(freelearn.LabelInstruction),
			openai.UserMessage(freelearn.LabelPrompt(title, author, description)),
		},
	}
}
