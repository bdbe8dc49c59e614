package gemini

import (
	"context"
	"strings"

	"github.com/fwojciec/freelearn"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Classifier implements freelearn.Classifier at compile time.
var _ freelearn.Classifier = (*Classifier)(nil)

// Classifier implements freelearn.Classifier using Google Gemini.
type Classifier struct {
	client *genai.Client
	model  string
}

// NewClient creates a Gemini API client. An empty baseURL keeps the default endpoint.
func NewClient(ctx context.Context, apiKey, baseURL string) (*genai.Client, error) {
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: baseURL},
	})
}

// NewClassifier creates a new Classifier. An empty model selects DefaultModel.
func NewClassifier(client *genai.Client, model string) *Classifier {
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

	result, err := c.client.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{{
			Role:  genai.RoleUser,
			Parts: []*genai.Part{{Text: freelearn.LabelPrompt(title, author, description)}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", freelearn.Errorf(freelearn.EINTERNAL, "gemini returned nil result")
	}

	labels := strings.TrimSpace(result.Text())
	if labels == "" {
		return "", freelearn.Errorf(freelearn.EUNAVAILABLE, "gemini returned empty labels")
	}
	return labels, nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: freelearn.LabelInstruction}},
		},
		Temperature: &temp,
	}
}
