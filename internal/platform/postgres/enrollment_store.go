package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/lingua-api/internal/domain"
	"github.com/phrazzld/lingua-api/internal/platform/logger"
	"github.com/phrazzld/lingua-api/internal/store"
)

// PostgresEnrollmentStore implements store.EnrollmentStore.
type PostgresEnrollmentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresEnrollmentStore creates an enrollment store.
// If logger is nil, a default logger will be used.
func NewPostgresEnrollmentStore(db store.DBTX, logger *slog.Logger) *PostgresEnrollmentStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresEnrollmentStore{
		db:     db,
		logger: logger.With(slog.String("component", "enrollment_store")),
	}
}

var _ store.EnrollmentStore = (*PostgresEnrollmentStore)(nil)

// WithTx implements store.EnrollmentStore.WithTx
func (s *PostgresEnrollmentStore) WithTx(tx *sql.Tx) store.EnrollmentStore {
	return &PostgresEnrollmentStore{db: tx, logger: s.logger}
}

// Create implements store.EnrollmentStore.Create
func (s *PostgresEnrollmentStore) Create(ctx context.Context, e *domain.Enrollment) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := e.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO enrollments (id, user_id, language_id, progress, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, e.ID, e.UserID, e.LanguageID, e.Progress, e.CreatedAt, e.UpdatedAt)
	if err != nil {
		switch {
		case IsUniqueViolation(err):
			return store.ErrEnrollmentExists
		case IsForeignKeyViolation(err):
			return fmt.Errorf("%w: id %d", store.ErrLanguageNotFound, e.LanguageID)
		}
		log.Error("failed to create enrollment",
			slog.String("error", err.Error()),
			slog.String("user_id", e.UserID.String()),
			slog.Int64("language_id", e.LanguageID))
		return MapError(err)
	}

	log.Info("enrollment created",
		slog.String("user_id", e.UserID.String()),
		slog.Int64("language_id", e.LanguageID))
	return nil
}

const enrollmentColumns = `id, user_id, language_id, progress, created_at, updated_at`

func scanEnrollment(row *sql.Row) (*domain.Enrollment, error) {
	var e domain.Enrollment
	err := row.Scan(&e.ID, &e.UserID, &e.LanguageID, &e.Progress, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Get implements store.EnrollmentStore.Get
func (s *PostgresEnrollmentStore) Get(
	ctx context.Context,
	userID uuid.UUID,
	languageID int64,
) (*domain.Enrollment, error) {
	e, err := scanEnrollment(s.db.QueryRowContext(ctx,
		`SELECT `+enrollmentColumns+` FROM enrollments WHERE user_id = $1 AND language_id = $2`,
		userID, languageID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrEnrollmentNotFound
		}
		return nil, MapError(err)
	}
	return e, nil
}

// ListByUser implements store.EnrollmentStore.ListByUser
func (s *PostgresEnrollmentStore) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]domain.EnrollmentView, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT e.language_id, l.name, e.progress
		FROM enrollments e
		JOIN languages l ON l.id = e.language_id
		WHERE e.user_id = $1
		ORDER BY e.language_id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list enrollments: %w", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	views := []domain.EnrollmentView{}
	for rows.Next() {
		var v domain.EnrollmentView
		if err := rows.Scan(&v.LanguageID, &v.LanguageName, &v.Progress); err != nil {
			return nil, fmt.Errorf("failed to scan enrollment: %w", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate enrollments: %w", err)
	}
	return views, nil
}

// GetOrCreateForUpdate implements store.EnrollmentStore.GetOrCreateForUpdate
//
// The insert is a no-op when the row exists, so concurrent callers converge
// on the same row and then serialize on its lock.
func (s *PostgresEnrollmentStore) GetOrCreateForUpdate(
	ctx context.Context,
	userID uuid.UUID,
	languageID int64,
) (*domain.Enrollment, error) {
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO enrollments (id, user_id, language_id, progress, created_at, updated_at)
		VALUES ($1, $2, $3, 0, $4, $4)
		ON CONFLICT (user_id, language_id) DO NOTHING
	`, uuid.New(), userID, languageID, now)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("%w: id %d", store.ErrLanguageNotFound, languageID)
		}
		return nil, MapError(err)
	}

	e, err := scanEnrollment(s.db.QueryRowContext(ctx,
		`SELECT `+enrollmentColumns+` FROM enrollments
		WHERE user_id = $1 AND language_id = $2
		FOR UPDATE`,
		userID, languageID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrEnrollmentNotFound
		}
		return nil, MapError(err)
	}
	return e, nil
}

// UpdateProgress implements store.EnrollmentStore.UpdateProgress
func (s *PostgresEnrollmentStore) UpdateProgress(ctx context.Context, e *domain.Enrollment) error {
	if err := e.Validate(); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE enrollments SET progress = $1, updated_at = $2 WHERE id = $3`,
		e.Progress, e.UpdatedAt, e.ID)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to update progress",
			slog.String("error", err.Error()),
			slog.String("enrollment_id", e.ID.String()))
		return MapError(err)
	}
	return CheckRowsAffected(res, store.ErrEnrollmentNotFound)
}
