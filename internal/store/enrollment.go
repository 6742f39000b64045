package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/lingua-api/internal/domain"
)

// EnrollmentStore defines the interface for user-language enrollments.
type EnrollmentStore interface {
	// Create saves a new enrollment.
	// Returns ErrEnrollmentExists if the pair is already enrolled and
	// ErrLanguageNotFound if the language does not exist.
	Create(ctx context.Context, enrollment *domain.Enrollment) error

	// Get retrieves the enrollment for a (user, language) pair.
	// Returns ErrEnrollmentNotFound if there is none.
	Get(ctx context.Context, userID uuid.UUID, languageID int64) (*domain.Enrollment, error)

	// ListByUser returns the user's enrollments joined with language names,
	// ordered by language ID.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.EnrollmentView, error)

	// GetOrCreateForUpdate returns the enrollment for the pair, creating it at
	// zero progress if absent, and locks the row for the rest of the
	// transaction. It must be called on a store bound to a transaction.
	GetOrCreateForUpdate(ctx context.Context, userID uuid.UUID, languageID int64) (*domain.Enrollment, error)

	// UpdateProgress persists the progress and updated_at of an enrollment.
	// Returns ErrEnrollmentNotFound if the row does not exist.
	UpdateProgress(ctx context.Context, enrollment *domain.Enrollment) error

	// WithTx returns a new EnrollmentStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) EnrollmentStore
}
