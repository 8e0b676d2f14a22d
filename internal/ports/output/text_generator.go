package output

import "context"

// TextGenerator interface - Output port
// A single-prompt text completion capability (Gemini, LM Studio, ...)
type TextGenerator interface {
	// GenerateText sends prompt to the model and returns the raw completion text.
	GenerateText(ctx context.Context, prompt string) (string, error)
}
