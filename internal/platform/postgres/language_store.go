package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/lingua-api/internal/domain"
	"github.com/phrazzld/lingua-api/internal/platform/logger"
	"github.com/phrazzld/lingua-api/internal/store"
)

// PostgresLanguageStore implements store.LanguageStore.
type PostgresLanguageStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresLanguageStore creates a language store.
func NewPostgresLanguageStore(db store.DBTX, logger *slog.Logger) *PostgresLanguageStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresLanguageStore{
		db:     db,
		logger: logger.With(slog.String("component", "language_store")),
	}
}

var _ store.LanguageStore = (*PostgresLanguageStore)(nil)

// List implements store.LanguageStore.List
func (s *PostgresLanguageStore) List(ctx context.Context) ([]domain.Language, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM languages ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list languages: %w", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	languages := []domain.Language{}
	for rows.Next() {
		var l domain.Language
		if err := rows.Scan(&l.ID, &l.Name); err != nil {
			return nil, fmt.Errorf("failed to scan language: %w", err)
		}
		languages = append(languages, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate languages: %w", err)
	}
	return languages, nil
}

// GetByID implements store.LanguageStore.GetByID
func (s *PostgresLanguageStore) GetByID(ctx context.Context, id int64) (*domain.Language, error) {
	var l domain.Language
	err := s.db.QueryRowContext(ctx, `SELECT id, name FROM languages WHERE id = $1`, id).Scan(&l.ID, &l.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrLanguageNotFound
		}
		return nil, MapError(err)
	}
	return &l, nil
}

// Seed implements store.LanguageStore.Seed
func (s *PostgresLanguageStore) Seed(ctx context.Context, names []string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	inserted := 0
	for _, name := range names {
		if name == "" {
			return domain.ErrEmptyLanguageName
		}
		res, err := s.db.ExecContext(ctx,
			`INSERT INTO languages (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name)
		if err != nil {
			log.Error("failed to seed language",
				slog.String("language", name),
				slog.String("error", err.Error()))
			return fmt.Errorf("failed to seed language %q: %w", name, MapError(err))
		}
		if n, err := res.RowsAffected(); err == nil {
			inserted += int(n)
		}
	}

	log.Info("language catalog seeded",
		slog.Int("requested", len(names)),
		slog.Int("inserted", inserted))
	return nil
}
