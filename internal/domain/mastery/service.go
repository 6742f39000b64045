// Package mastery implements the model that turns a user's progress in a
// language into a difficulty tier, and a submitted score into new progress.
package mastery

import (
	"errors"
	"time"

	"github.com/phrazzld/lingua-api/internal/domain"
)

// ErrNilEnrollment is returned when an operation receives no enrollment.
var ErrNilEnrollment = errors.New("enrollment cannot be nil")

// Service defines the interface for mastery model operations
type Service interface {
	// DifficultyFor selects the tier for a progress value.
	DifficultyFor(progress float64) domain.Tier

	// ApplyScore returns a copy of the enrollment with the score applied.
	ApplyScore(enrollment *domain.Enrollment, score int, now time.Time) (*domain.Enrollment, error)
}

// defaultService is the standard implementation of the Service interface
type defaultService struct {
	params *Params
}

// NewDefaultService creates a new mastery service with default parameters
func NewDefaultService() Service {
	return &defaultService{params: NewDefaultParams()}
}

// NewServiceWithParams creates a new mastery service with custom parameters
func NewServiceWithParams(params *Params) Service {
	return &defaultService{params: params}
}

// DifficultyFor implements Service.
func (s *defaultService) DifficultyFor(progress float64) domain.Tier {
	return tierFor(progress, s.params)
}

// ApplyScore implements Service.
func (s *defaultService) ApplyScore(
	enrollment *domain.Enrollment,
	score int,
	now time.Time,
) (*domain.Enrollment, error) {
	if enrollment == nil {
		return nil, ErrNilEnrollment
	}

	updated := *enrollment
	updated.Progress = nextProgress(enrollment.Progress, score, s.params)
	updated.UpdatedAt = now
	return &updated, nil
}
