package domain

import (
	"time"

	"github.com/google/uuid"
)

// Progress bounds for an Enrollment.
const (
	MinProgress = 0.0
	MaxProgress = 100.0
)

// Enrollment links a user to a language they study and tracks a single
// mastery value. There is at most one Enrollment per (user, language).
type Enrollment struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	LanguageID int64     `json:"language_id"`
	Progress   float64   `json:"progress"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewEnrollment creates an Enrollment at zero progress.
func NewEnrollment(userID uuid.UUID, languageID int64) (*Enrollment, error) {
	now := time.Now().UTC()
	e := &Enrollment{
		ID:         uuid.New(),
		UserID:     userID,
		LanguageID: languageID,
		Progress:   MinProgress,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// Validate checks the Enrollment invariants.
func (e *Enrollment) Validate() error {
	if e.UserID == uuid.Nil {
		return ErrEmptyUserID
	}
	if e.LanguageID <= 0 {
		return NewValidationError("language_id", "must be positive", ErrInvalidID)
	}
	if e.Progress < MinProgress || e.Progress > MaxProgress {
		return ErrInvalidProgress
	}
	return nil
}

// EnrollmentView is an Enrollment joined with its language name.
type EnrollmentView struct {
	LanguageID   int64   `json:"lang_id"`
	LanguageName string  `json:"lang_name"`
	Progress     float64 `json:"progress"`
}
