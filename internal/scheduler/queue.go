package scheduler

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/avelis/mnemo/internal/card"
)

// ErrNegativeLimit is returned when a queue operation receives a negative cap.
var ErrNegativeLimit = errors.New("scheduler: negative limit")

// DueCards returns the cards due for review at the given time, most
// overdue first. Ties break on card ID for a stable order.
func DueCards(cards []card.Flashcard, now time.Time) []card.Flashcard {
	var due []card.Flashcard
	for _, c := range cards {
		if c.IsDue(now) {
			due = append(due, c)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if !due[i].NextReviewDate.Equal(due[j].NextReviewDate) {
			return due[i].NextReviewDate.Before(due[j].NextReviewDate)
		}
		return due[i].ID < due[j].ID
	})
	return due
}

// NewCards returns the cards that have never been reviewed, in input order.
func NewCards(cards []card.Flashcard) []card.Flashcard {
	var fresh []card.Flashcard
	for _, c := range cards {
		if c.IsNew() {
			fresh = append(fresh, c)
		}
	}
	return fresh
}

// StudyQueue builds a bounded study queue: up to maxReview previously
// seen due cards followed by up to maxNew unreviewed cards. Unreviewed
// cards only consume the new-card budget even when already due.
func StudyQueue(cards []card.Flashcard, maxNew, maxReview int, now time.Time) ([]card.Flashcard, error) {
	if maxNew < 0 || maxReview < 0 {
		return nil, fmt.Errorf("%w: maxNew=%d maxReview=%d", ErrNegativeLimit, maxNew, maxReview)
	}

	var due []card.Flashcard
	for _, c := range DueCards(cards, now) {
		if len(due) >= maxReview {
			break
		}
		if c.IsNew() {
			continue
		}
		due = append(due, c)
	}

	var fresh []card.Flashcard
	for _, c := range NewCards(cards) {
		if len(fresh) >= maxNew {
			break
		}
		fresh = append(fresh, c)
	}

	queue := make([]card.Flashcard, 0, len(due)+len(fresh))
	queue = append(queue, due...)
	queue = append(queue, fresh...)
	return queue, nil
}
