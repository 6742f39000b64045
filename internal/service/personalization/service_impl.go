package personalization

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/lingua-api/internal/domain"
	"github.com/phrazzld/lingua-api/internal/domain/mastery"
	"github.com/phrazzld/lingua-api/internal/platform/logger"
	"github.com/phrazzld/lingua-api/internal/store"
)

// Verify interface compliance at compile time
var _ Service = (*serviceImpl)(nil)

type serviceImpl struct {
	db          *sql.DB
	enrollments store.EnrollmentStore
	results     store.ExerciseResultStore
	mastery     mastery.Service
	timeFunc    func() time.Time
	logger      *slog.Logger
}

// NewService creates the personalization service.
func NewService(
	db *sql.DB,
	enrollments store.EnrollmentStore,
	results store.ExerciseResultStore,
	masteryService mastery.Service,
	logger *slog.Logger,
) (Service, error) {
	if db == nil {
		return nil, errors.New("db cannot be nil")
	}
	if enrollments == nil {
		return nil, errors.New("enrollments cannot be nil")
	}
	if results == nil {
		return nil, errors.New("results cannot be nil")
	}
	if masteryService == nil {
		return nil, errors.New("masteryService cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &serviceImpl{
		db:          db,
		enrollments: enrollments,
		results:     results,
		mastery:     masteryService,
		timeFunc:    func() time.Time { return time.Now().UTC() },
		logger:      logger.With(slog.String("component", "personalization_service")),
	}, nil
}

// Exercises implements Service.
func (s *serviceImpl) Exercises(ctx context.Context, userID uuid.UUID, languageID int64) (*ExerciseSet, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	progress := domain.MinProgress
	enrollment, err := s.enrollments.Get(ctx, userID, languageID)
	switch {
	case err == nil:
		progress = enrollment.Progress
	case errors.Is(err, store.ErrEnrollmentNotFound):
	default:
		log.Error("failed to read enrollment",
			slog.String("user_id", userID.String()),
			slog.Int64("language_id", languageID),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to read enrollment: %w", err)
	}

	tier := s.mastery.DifficultyFor(progress)
	log.Debug("selected exercise tier",
		slog.String("user_id", userID.String()),
		slog.Int64("language_id", languageID),
		slog.Float64("progress", progress),
		slog.Int("tier", int(tier)))

	return &ExerciseSet{Tier: tier, Exercises: exercisesAt(tier)}, nil
}

// Lessons implements Service.
func (s *serviceImpl) Lessons(_ context.Context, languageID int64) (*LessonSet, error) {
	return &LessonSet{LanguageID: languageID, Lessons: lessons()}, nil
}

// Submit implements Service.
func (s *serviceImpl) Submit(ctx context.Context, userID uuid.UUID, in SubmitInput) (*float64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := domain.NewExerciseResult(userID, in.ExerciseID, in.LanguageID, in.Score)
	if err != nil {
		return nil, err
	}

	var newProgress *float64
	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		results := s.results.WithTx(tx)
		if in.LanguageID == nil {
			if err := results.Create(ctx, result); err != nil {
				return fmt.Errorf("failed to record result: %w", err)
			}
			return nil
		}

		// An unknown language fails here with store.ErrLanguageNotFound,
		// before any row is written.
		enrollments := s.enrollments.WithTx(tx)
		current, err := enrollments.GetOrCreateForUpdate(ctx, userID, *in.LanguageID)
		if err != nil {
			return fmt.Errorf("failed to lock enrollment: %w", err)
		}

		if err := results.Create(ctx, result); err != nil {
			return fmt.Errorf("failed to record result: %w", err)
		}

		updated, err := s.mastery.ApplyScore(current, in.Score, s.timeFunc())
		if err != nil {
			return err
		}

		if err := enrollments.UpdateProgress(ctx, updated); err != nil {
			return fmt.Errorf("failed to update progress: %w", err)
		}

		p := updated.Progress
		newProgress = &p
		return nil
	})
	if err != nil {
		log.Error("failed to submit exercise result",
			slog.String("user_id", userID.String()),
			slog.Int64("exercise_id", in.ExerciseID),
			slog.String("error", err.Error()))
		return nil, err
	}

	attrs := []any{
		slog.String("user_id", userID.String()),
		slog.Int64("exercise_id", in.ExerciseID),
		slog.Int("score", in.Score),
	}
	if newProgress != nil {
		attrs = append(attrs, slog.Float64("new_progress", *newProgress))
	}
	log.Debug("exercise result recorded", attrs...)

	return newProgress, nil
}
