package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/lingua-api/internal/domain"
)

// ExerciseResultStore defines the interface for the append-only result log.
type ExerciseResultStore interface {
	// Create appends a result.
	Create(ctx context.Context, result *domain.ExerciseResult) error

	// WithTx returns a new ExerciseResultStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) ExerciseResultStore
}
