// Package scheduler computes spaced repetition review schedules for
// flashcards using an SM-2 derived algorithm, and selects due and new
// cards into bounded study queues. All operations are pure: they never
// mutate their inputs.
package scheduler

import (
	"fmt"
	"time"

	"github.com/avelis/mnemo/internal/card"
)

// Scheduler applies the review algorithm. It holds only configuration
// and is safe to share.
type Scheduler struct {
	params Params
}

// New creates a scheduler with the given parameters.
func New(params Params) *Scheduler {
	return &Scheduler{params: params}
}

// NewDefault creates a scheduler with DefaultParams.
func NewDefault() *Scheduler {
	return New(DefaultParams())
}

// Review applies a recall rating to a card and returns the updated copy.
// The input card is never mutated.
//
// Easiness moves by a per-rating delta and is clamped at the 1.3 floor.
// A failed or hard review resets the repetition count and forces the card
// back to the minimum interval; successful reviews walk the
// 1 day / 6 days / interval*EF ladder, with an extra bonus multiplier for
// Easy once past the fixed early steps. The final interval is clamped to
// [MinIntervalDays, MaxIntervalDays].
func (s *Scheduler) Review(c card.Flashcard, rating card.Rating, now time.Time) (card.Flashcard, error) {
	if !rating.IsValid() {
		return card.Flashcard{}, fmt.Errorf("scheduler: %w: %d", card.ErrInvalidRating, int(rating))
	}

	p := s.params
	out := c

	ef := c.EasinessFactor + p.easeDelta(rating)
	if ef < card.MinEasiness {
		ef = card.MinEasiness
	}
	out.EasinessFactor = ef

	if rating.IsCorrect() {
		out.RepetitionCount = c.RepetitionCount + 1
		switch out.RepetitionCount {
		case 1:
			out.IntervalDays = p.MinIntervalDays
		case 2:
			out.IntervalDays = p.SecondIntervalDays
		default:
			interval := c.IntervalDays * ef
			if rating == card.RatingEasy {
				interval *= p.EasyBonus
			}
			out.IntervalDays = interval
		}
	} else {
		out.RepetitionCount = 0
		out.IntervalDays = p.MinIntervalDays
	}

	if out.IntervalDays < p.MinIntervalDays {
		out.IntervalDays = p.MinIntervalDays
	}
	if out.IntervalDays > p.MaxIntervalDays {
		out.IntervalDays = p.MaxIntervalDays
	}

	out.TotalReviews = c.TotalReviews + 1
	if rating.IsCorrect() {
		out.CorrectCount = c.CorrectCount + 1
	}
	out.NextReviewDate = now.Add(time.Duration(out.IntervalDays * 24 * float64(time.Hour)))

	return out, nil
}

// PreviewIntervals returns, for every rating, the interval in days that
// Review would produce for the card. The card is not modified.
func (s *Scheduler) PreviewIntervals(c card.Flashcard, now time.Time) map[card.Rating]float64 {
	out := make(map[card.Rating]float64, len(card.AllRatings()))
	for _, r := range card.AllRatings() {
		reviewed, err := s.Review(c, r, now)
		if err != nil {
			continue
		}
		out[r] = reviewed.IntervalDays
	}
	return out
}
