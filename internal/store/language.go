package store

import (
	"context"

	"github.com/phrazzld/lingua-api/internal/domain"
)

// LanguageStore defines the interface for the language catalog.
type LanguageStore interface {
	// List returns all languages ordered by ID.
	List(ctx context.Context) ([]domain.Language, error)

	// GetByID retrieves a language.
	// Returns ErrLanguageNotFound if it does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Language, error)

	// Seed inserts the named languages, skipping names that already exist.
	// It is safe to call on every start.
	Seed(ctx context.Context, names []string) error
}
