// Package card defines the immutable value types consumed by every engine
// component: flashcards, study events, and their ordered enums.
package card

import "time"

const (
	// DefaultEasiness is the starting easiness factor for a new card.
	DefaultEasiness = 2.5

	// MinEasiness is the floor the easiness factor never drops below.
	MinEasiness = 1.3
)

// Flashcard is a single study card with its scheduling state.
// Cards are value types: the scheduler's Review returns an updated copy
// and never mutates its input.
type Flashcard struct {
	ID              string     `json:"id"`
	SubjectID       string     `json:"subject_id"`
	Front           string     `json:"front"`
	Back            string     `json:"back"`
	Difficulty      Difficulty `json:"difficulty"`
	EasinessFactor  float64    `json:"easiness_factor"`
	RepetitionCount int        `json:"repetition_count"`
	IntervalDays    float64    `json:"interval_days"`
	NextReviewDate  time.Time  `json:"next_review_date"`
	TotalReviews    int        `json:"total_reviews"`
	CorrectCount    int        `json:"correct_count"`
	CreatedAt       time.Time  `json:"created_at"`
	Tags            []string   `json:"tags,omitempty"`
}

// New creates a flashcard with scheduling defaults, due immediately.
func New(id, subjectID, front, back string, difficulty Difficulty) Flashcard {
	now := time.Now()
	return Flashcard{
		ID:             id,
		SubjectID:      subjectID,
		Front:          front,
		Back:           back,
		Difficulty:     difficulty,
		EasinessFactor: DefaultEasiness,
		NextReviewDate: now,
		CreatedAt:      now,
	}
}

// IsNew reports whether the card has never been reviewed.
func (c Flashcard) IsNew() bool {
	return c.TotalReviews == 0
}

// IsLapsed reports whether the card was previously learned but has been
// reset by a failed or hard review.
func (c Flashcard) IsLapsed() bool {
	return c.RepetitionCount == 0 && c.TotalReviews > 0
}

// IsDue reports whether the card is due for review at the given time.
func (c Flashcard) IsDue(now time.Time) bool {
	return !now.Before(c.NextReviewDate)
}

// Accuracy returns the lifetime correct-answer ratio, 0 if never reviewed.
func (c Flashcard) Accuracy() float64 {
	if c.TotalReviews == 0 {
		return 0
	}
	return float64(c.CorrectCount) / float64(c.TotalReviews)
}
