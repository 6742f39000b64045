package mastery

import (
	"math"

	"github.com/phrazzld/lingua-api/internal/domain"
)

// tierFor maps a progress value onto a difficulty tier.
//
// The mapping is a step function: below IntermediateThreshold is tier 1,
// below AdvancedThreshold is tier 2, anything else is tier 3.
func tierFor(progress float64, params *Params) domain.Tier {
	switch {
	case progress < params.IntermediateThreshold:
		return domain.TierBeginner
	case progress < params.AdvancedThreshold:
		return domain.TierIntermediate
	default:
		return domain.TierAdvanced
	}
}

// nextProgress applies a submitted score to the current progress.
//
// The result is min(Ceiling, current + score*ScoreWeight). Negative scores
// contribute nothing, so progress never decreases through a submission.
func nextProgress(current float64, score int, params *Params) float64 {
	increment := float64(score) * params.ScoreWeight
	if increment < 0 {
		increment = 0
	}
	return math.Min(params.Ceiling, current+increment)
}
