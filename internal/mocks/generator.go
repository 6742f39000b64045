package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/lingua-api/internal/generation"
)

// MockGenerator implements generation.Generator for testing.
type MockGenerator struct {
	// GenerateFn overrides the default behavior when set.
	GenerateFn func(ctx context.Context, prompt string) (string, error)

	// Response and Err are returned when GenerateFn is nil.
	Response string
	Err      error

	mu      sync.Mutex
	Prompts []string
}

var _ generation.Generator = (*MockGenerator)(nil)

// Generate records the prompt and returns the configured result.
func (m *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.Prompts = append(m.Prompts, prompt)
	m.mu.Unlock()

	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, prompt)
	}
	return m.Response, m.Err
}
