package generation

import (
	"context"
	"strings"
)

// Generator turns a prompt into generated text.
type Generator interface {
	// Generate sends prompt to the model and returns the concatenated text of
	// the first candidate. Implementations wrap provider failures with
	// ErrGenerationFailed or ErrInvalidResponse.
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeneratorFunc adapts an ordinary function to the Generator interface.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

// Generate calls f(ctx, prompt).
func (f GeneratorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// ValidatePrompt rejects prompts that contain only whitespace.
func ValidatePrompt(prompt string) error {
	if strings.TrimSpace(prompt) == "" {
		return ErrEmptyPrompt
	}
	return nil
}
