// Package proxy forwards translation and chat requests to an external text
// generator. Without a generator it answers with a deterministic local echo.
package proxy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/lingua-api/internal/generation"
	"github.com/phrazzld/lingua-api/internal/platform/logger"
)

// Default language codes applied when a translate request omits them.
const (
	DefaultSourceLanguage = "auto"
	DefaultTargetLanguage = "en"
)

// ErrUpstream wraps any failure returned by the generator.
var ErrUpstream = errors.New("upstream generation failed")

// Service is the proxy gateway.
type Service interface {
	// Translate translates text from src to tgt. Empty codes take the defaults.
	Translate(ctx context.Context, text, src, tgt string) (string, error)

	// Chat returns a reply to message.
	Chat(ctx context.Context, message string) (string, error)
}

type service struct {
	generator generation.Generator
	logger    *slog.Logger
}

// NewService creates a proxy Service. A nil generator selects the local
// fallback for every call.
func NewService(generator generation.Generator, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		generator: generator,
		logger:    logger.With(slog.String("component", "proxy_service")),
	}
}

// TranslationPrompt builds the prompt sent for a translation.
func TranslationPrompt(text, src, tgt string) string {
	return fmt.Sprintf("Translate the following text from %s to %s:\n\n%s", src, tgt, text)
}

// Translate implements Service.
func (s *service) Translate(ctx context.Context, text, src, tgt string) (string, error) {
	if src == "" {
		src = DefaultSourceLanguage
	}
	if tgt == "" {
		tgt = DefaultTargetLanguage
	}

	if s.generator == nil {
		return fmt.Sprintf("[translated (%s)] %s", tgt, text), nil
	}
	return s.forward(ctx, "translate", TranslationPrompt(text, src, tgt))
}

// Chat implements Service.
func (s *service) Chat(ctx context.Context, message string) (string, error) {
	if s.generator == nil {
		return fmt.Sprintf("Bot stub: I heard '%s'", message), nil
	}
	return s.forward(ctx, "chat", message)
}

func (s *service) forward(ctx context.Context, op, prompt string) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		log.WarnContext(ctx, "generator call failed",
			slog.String("operation", op),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	return strings.TrimSpace(text), nil
}
