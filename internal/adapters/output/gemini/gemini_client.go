package gemini

import (
	"context"
	"errors"
	"fmt"

	"getcooked/configs"
	"getcooked/internal/ports/output"

	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

var _ output.TextGenerator = (*GeminiClientAdapter)(nil)

const defaultModel = "gemini-2.5-flash"

// ErrMissingAPIKey is returned when the adapter is built without credentials
var ErrMissingAPIKey = errors.New("gemini api key is required")

// GeminiClientAdapter struct - Output adapter for the Gemini generateContent API
type GeminiClientAdapter struct {
	client *genai.Client
	model  string
}

// NewGeminiClientAdapter func - Creates new Gemini adapter.
// opts may override the HTTP options, e.g. the base URL in tests.
func NewGeminiClientAdapter(ctx context.Context, config configs.Gemini, opts ...genai.HTTPOptions) (*GeminiClientAdapter, error) {
	if config.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	model := config.Model
	if model == "" {
		model = defaultModel
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if len(opts) > 0 {
		clientConfig.HTTPOptions = opts[0]
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	logrus.Infof("Gemini client adapter initialized with model: %s", model)

	return &GeminiClientAdapter{
		client: client,
		model:  model,
	}, nil
}

// GenerateText - Sends a single-turn prompt and returns the concatenated text parts.
// Deadlines come from ctx; the caller classifies timeouts.
func (a *GeminiClientAdapter) GenerateText(ctx context.Context, prompt string) (string, error) {
	result, err := a.client.Models.GenerateContent(ctx, a.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate content failed: %w", err)
	}

	if result.PromptFeedback != nil && result.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("gemini blocked the prompt: %s", result.PromptFeedback.BlockReason)
	}

	text := result.Text()
	logrus.Debugf("Gemini returned %d characters from model %s", len(text), a.model)

	return text, nil
}
