package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/lingua-api/internal/domain"
	"github.com/phrazzld/lingua-api/internal/platform/logger"
	"github.com/phrazzld/lingua-api/internal/store"
)

// PostgresExerciseResultStore implements store.ExerciseResultStore.
type PostgresExerciseResultStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresExerciseResultStore creates an exercise result store.
func NewPostgresExerciseResultStore(db store.DBTX, logger *slog.Logger) *PostgresExerciseResultStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresExerciseResultStore{
		db:     db,
		logger: logger.With(slog.String("component", "exercise_result_store")),
	}
}

var _ store.ExerciseResultStore = (*PostgresExerciseResultStore)(nil)

// WithTx implements store.ExerciseResultStore.WithTx
func (s *PostgresExerciseResultStore) WithTx(tx *sql.Tx) store.ExerciseResultStore {
	return &PostgresExerciseResultStore{db: tx, logger: s.logger}
}

// Create implements store.ExerciseResultStore.Create
func (s *PostgresExerciseResultStore) Create(ctx context.Context, r *domain.ExerciseResult) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO exercise_results (id, user_id, exercise_id, language_id, score, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, r.ID, r.UserID, r.ExerciseID, r.LanguageID, r.Score, r.CreatedAt)
	if err != nil {
		if r.LanguageID != nil && isLanguageReference(err) {
			return fmt.Errorf("%w: id %d", store.ErrLanguageNotFound, *r.LanguageID)
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to record exercise result",
			slog.String("error", err.Error()),
			slog.String("user_id", r.UserID.String()),
			slog.Int64("exercise_id", r.ExerciseID))
		return MapError(err)
	}
	return nil
}

const resultLanguageConstraint = "exercise_results_language_id_fkey"

// isLanguageReference reports whether err is the foreign key failure on
// exercise_results.language_id.
func isLanguageReference(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == foreignKeyViolationCode &&
		pgErr.ConstraintName == resultLanguageConstraint
}
