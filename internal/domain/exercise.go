package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Tier is the discrete difficulty level (1, 2 or 3) of an exercise.
type Tier int

// Difficulty tiers, easiest first.
const (
	TierBeginner     Tier = 1
	TierIntermediate Tier = 2
	TierAdvanced     Tier = 3
)

// ExerciseType names the kind of exercise.
type ExerciseType string

// Exercise types served by the sample catalog.
const (
	ExerciseTypeQuiz        ExerciseType = "quiz"
	ExerciseTypeFlashcard   ExerciseType = "flashcard"
	ExerciseTypeListening   ExerciseType = "listening"
	ExerciseTypeTranslation ExerciseType = "translation"
)

// Exercise is a single practice item delivered to a user.
type Exercise struct {
	ID         int64             `json:"id"`
	Type       ExerciseType      `json:"type"`
	Content    map[string]string `json:"content"`
	Difficulty Tier              `json:"difficulty"`
}

// Lesson is a unit of reading material for a language.
type Lesson struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	AudioURL string `json:"audio_url"`
	VideoURL string `json:"video_url"`
}

// ErrEmptyExerciseID is returned when a result does not reference an exercise.
var ErrEmptyExerciseID = errors.New("exercise ID cannot be empty")

// ExerciseResult is an append-only record of one submitted exercise.
// LanguageID is nil when the submission did not name a language.
type ExerciseResult struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	ExerciseID int64     `json:"exercise_id"`
	LanguageID *int64    `json:"language_id,omitempty"`
	Score      int       `json:"score"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewExerciseResult records a score for an exercise, timestamped now.
func NewExerciseResult(userID uuid.UUID, exerciseID int64, languageID *int64, score int) (*ExerciseResult, error) {
	if userID == uuid.Nil {
		return nil, ErrEmptyUserID
	}
	if exerciseID == 0 {
		return nil, ErrEmptyExerciseID
	}
	return &ExerciseResult{
		ID:         uuid.New(),
		UserID:     userID,
		ExerciseID: exerciseID,
		LanguageID: languageID,
		Score:      score,
		CreatedAt:  time.Now().UTC(),
	}, nil
}
