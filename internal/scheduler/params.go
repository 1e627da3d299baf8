package scheduler

import "github.com/avelis/mnemo/internal/card"

// Params holds the tunable constants of the review algorithm.
// The zero value is not useful; start from DefaultParams.
type Params struct {
	// Easiness adjustment per rating. Again and Hard lower easiness,
	// Good holds it, Easy raises it.
	EaseAgain float64
	EaseHard  float64
	EaseGood  float64
	EaseEasy  float64

	// MinIntervalDays is the shortest interval, used for first reviews
	// and after a failed or hard review.
	MinIntervalDays float64

	// SecondIntervalDays is the interval after the second consecutive
	// successful review.
	SecondIntervalDays float64

	// MaxIntervalDays caps interval growth.
	MaxIntervalDays float64

	// EasyBonus multiplies the interval on Easy ratings once the card is
	// past its fixed early intervals, so Easy never schedules sooner than
	// Good for an otherwise identical card.
	EasyBonus float64
}

// DefaultParams returns the standard algorithm constants.
func DefaultParams() Params {
	return Params{
		EaseAgain:          -0.20,
		EaseHard:           -0.15,
		EaseGood:           0.0,
		EaseEasy:           0.15,
		MinIntervalDays:    1.0,
		SecondIntervalDays: 6.0,
		MaxIntervalDays:    365.0,
		EasyBonus:          1.3,
	}
}

func (p Params) easeDelta(r card.Rating) float64 {
	switch r {
	case card.RatingAgain:
		return p.EaseAgain
	case card.RatingHard:
		return p.EaseHard
	case card.RatingEasy:
		return p.EaseEasy
	default:
		return p.EaseGood
	}
}
