// Package personalization selects exercise difficulty from a user's progress
// in a language and folds submitted scores back into that progress.
package personalization

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/lingua-api/internal/domain"
)

// ExerciseSet is the response to an exercise request.
type ExerciseSet struct {
	Tier      domain.Tier       `json:"-"`
	Exercises []domain.Exercise `json:"exercises"`
}

// LessonSet is the response to a lesson request.
type LessonSet struct {
	LanguageID int64           `json:"language_id"`
	Lessons    []domain.Lesson `json:"lessons"`
}

// SubmitInput is one exercise submission.
type SubmitInput struct {
	ExerciseID int64
	Score      int
	// LanguageID is optional. When nil the result is logged and no
	// enrollment is touched.
	LanguageID *int64
}

// Service provides exercise delivery and progress updates.
type Service interface {
	// Exercises returns the sample exercises at the tier chosen from the
	// user's progress in the language. A user who is not enrolled is served
	// as progress 0.
	Exercises(ctx context.Context, userID uuid.UUID, languageID int64) (*ExerciseSet, error)

	// Lessons returns the sample lessons for a language.
	Lessons(ctx context.Context, languageID int64) (*LessonSet, error)

	// Submit records a result and, when a language is given, applies the
	// score to the enrollment (creating it at 0 if absent) in the same
	// transaction. It returns the new progress, or nil without a language.
	Submit(ctx context.Context, userID uuid.UUID, in SubmitInput) (*float64, error)
}
