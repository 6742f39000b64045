package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/lingua-api/internal/domain"
	"github.com/phrazzld/lingua-api/internal/platform/logger"
	"github.com/phrazzld/lingua-api/internal/store"
)

// LedgerService exposes the language catalog and a user's enrollments.
type LedgerService interface {
	// ListLanguages returns every language ordered by id.
	ListLanguages(ctx context.Context) ([]domain.Language, error)

	// ListEnrollments returns the user's languages with progress, ordered by language id.
	ListEnrollments(ctx context.Context, userID uuid.UUID) ([]domain.EnrollmentView, error)

	// Enroll starts the user on a language at zero progress.
	// Returns ErrDuplicateEnrollment or ErrLanguageNotFound.
	Enroll(ctx context.Context, userID uuid.UUID, languageID int64) (*domain.Enrollment, error)
}

type ledgerService struct {
	languages   store.LanguageStore
	enrollments store.EnrollmentStore
	logger      *slog.Logger
}

// NewLedgerService creates a LedgerService.
func NewLedgerService(
	languages store.LanguageStore,
	enrollments store.EnrollmentStore,
	logger *slog.Logger,
) (LedgerService, error) {
	if languages == nil {
		return nil, errors.New("languages cannot be nil")
	}
	if enrollments == nil {
		return nil, errors.New("enrollments cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ledgerService{
		languages:   languages,
		enrollments: enrollments,
		logger:      logger.With(slog.String("component", "ledger_service")),
	}, nil
}

// ListLanguages implements LedgerService.
func (s *ledgerService) ListLanguages(ctx context.Context) ([]domain.Language, error) {
	languages, err := s.languages.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list languages: %w", err)
	}
	return languages, nil
}

// ListEnrollments implements LedgerService.
func (s *ledgerService) ListEnrollments(ctx context.Context, userID uuid.UUID) ([]domain.EnrollmentView, error) {
	views, err := s.enrollments.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list enrollments: %w", err)
	}
	return views, nil
}

// Enroll implements LedgerService.
func (s *ledgerService) Enroll(ctx context.Context, userID uuid.UUID, languageID int64) (*domain.Enrollment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	enrollment, err := domain.NewEnrollment(userID, languageID)
	if err != nil {
		return nil, err
	}

	if err := s.enrollments.Create(ctx, enrollment); err != nil {
		switch {
		case errors.Is(err, store.ErrEnrollmentExists):
			return nil, ErrDuplicateEnrollment
		case errors.Is(err, store.ErrLanguageNotFound):
			return nil, ErrLanguageNotFound
		}
		log.Error("failed to enroll",
			slog.String("user_id", userID.String()),
			slog.Int64("language_id", languageID),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to enroll: %w", err)
	}

	return enrollment, nil
}
