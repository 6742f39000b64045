package mastery

import "github.com/phrazzld/lingua-api/internal/domain"

// Params defines the configurable parameters of the mastery model.
type Params struct {
	// IntermediateThreshold is the lowest progress that selects tier 2.
	IntermediateThreshold float64
	// AdvancedThreshold is the lowest progress that selects tier 3.
	AdvancedThreshold float64
	// ScoreWeight converts a raw score into a progress increment.
	ScoreWeight float64
	// Ceiling is the saturation point of the accumulator.
	Ceiling float64
}

// NewDefaultParams creates a new Params instance with default values
func NewDefaultParams() *Params {
	return &Params{
		IntermediateThreshold: 20.0,
		AdvancedThreshold:     50.0,
		ScoreWeight:           0.5,
		Ceiling:               domain.MaxProgress,
	}
}
