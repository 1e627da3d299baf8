// Package recommend scans the card pool and progress aggregates to emit
// prioritized, time-estimated study suggestions.
package recommend

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/avelis/mnemo/internal/card"
	"github.com/avelis/mnemo/internal/progress"
	"github.com/avelis/mnemo/internal/scheduler"
)

// Type identifies what kind of study activity is suggested.
type Type string

const (
	TypeOverdueReview Type = "overdue_review"
	TypeNewContent    Type = "new_content"
	TypeWeakArea      Type = "weak_area"
	TypeLapsedReview  Type = "lapsed_review"
)

// Priority orders recommendations; lower values sort first.
type Priority int

const (
	PriorityCritical Priority = iota + 1
	PriorityHigh
	PriorityMedium
	PriorityLow
)

var priorityNames = [...]string{PriorityCritical: "critical", PriorityHigh: "high", PriorityMedium: "medium", PriorityLow: "low"}

// String returns the lowercase priority name.
func (p Priority) String() string {
	if p >= PriorityCritical && p <= PriorityLow {
		return priorityNames[p]
	}
	return fmt.Sprintf("Priority(%d)", int(p))
}

// Recommendation is a single study suggestion.
type Recommendation struct {
	ID               string   `json:"id"`
	Type             Type     `json:"type"`
	Priority         Priority `json:"priority"`
	EstimatedMinutes int      `json:"estimated_minutes"`
	SubjectID        string   `json:"subject_id,omitempty"`
	Reason           string   `json:"reason"`
}

const (
	// DefaultLimit caps the recommendation list when the caller passes 0.
	DefaultLimit = 10

	// WeakAccuracyThreshold is the subject accuracy below which a
	// weak-area recommendation fires.
	WeakAccuracyThreshold = 0.60

	minutesPerReviewCard = 2
	minutesPerNewCard    = 2
	maxEstimatedMinutes  = 30
)

// Recommend generates up to limit suggestions, sorted critical-first.
// A limit of 0 applies DefaultLimit; an empty card pool yields an empty
// list, never an error.
func Recommend(cards []card.Flashcard, prog progress.LearningProgress, limit int, now time.Time) ([]Recommendation, error) {
	if limit < 0 {
		return nil, fmt.Errorf("recommend: negative limit %d", limit)
	}
	if limit == 0 {
		limit = DefaultLimit
	}

	var recs []Recommendation

	due := scheduler.DueCards(cards, now)
	var seenDue, lapsedDue []card.Flashcard
	for _, c := range due {
		if c.IsNew() {
			continue
		}
		seenDue = append(seenDue, c)
		if c.IsLapsed() {
			lapsedDue = append(lapsedDue, c)
		}
	}

	if len(seenDue) > 0 {
		recs = append(recs, Recommendation{
			ID:               uuid.NewString(),
			Type:             TypeOverdueReview,
			Priority:         PriorityCritical,
			EstimatedMinutes: estimateMinutes(len(seenDue), minutesPerReviewCard),
			SubjectID:        seenDue[0].SubjectID,
			Reason:           fmt.Sprintf("%d cards are due for review", len(seenDue)),
		})
	}

	// One weak-area suggestion per struggling subject, in stable order.
	var weak []string
	for id, sp := range prog.Subjects {
		if sp.ReviewedCards > 0 && sp.Accuracy < WeakAccuracyThreshold {
			weak = append(weak, id)
		}
	}
	sort.Strings(weak)
	for _, id := range weak {
		sp := prog.Subjects[id]
		recs = append(recs, Recommendation{
			ID:               uuid.NewString(),
			Type:             TypeWeakArea,
			Priority:         PriorityHigh,
			EstimatedMinutes: 15,
			SubjectID:        id,
			Reason:           fmt.Sprintf("accuracy in %s is %.0f%%", id, sp.Accuracy*100),
		})
	}

	if len(lapsedDue) > 0 {
		recs = append(recs, Recommendation{
			ID:               uuid.NewString(),
			Type:             TypeLapsedReview,
			Priority:         PriorityHigh,
			EstimatedMinutes: estimateMinutes(len(lapsedDue), minutesPerReviewCard),
			SubjectID:        lapsedDue[0].SubjectID,
			Reason:           fmt.Sprintf("%d previously learned cards need relearning", len(lapsedDue)),
		})
	}

	if fresh := scheduler.NewCards(cards); len(fresh) > 0 {
		recs = append(recs, Recommendation{
			ID:               uuid.NewString(),
			Type:             TypeNewContent,
			Priority:         PriorityMedium,
			EstimatedMinutes: estimateMinutes(len(fresh), minutesPerNewCard),
			SubjectID:        fresh[0].SubjectID,
			Reason:           fmt.Sprintf("%d new cards are waiting", len(fresh)),
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Priority < recs[j].Priority
	})
	if len(recs) > limit {
		recs = recs[:limit]
	}
	return recs, nil
}

func estimateMinutes(count, perCard int) int {
	minutes := count * perCard
	if minutes > maxEstimatedMinutes {
		return maxEstimatedMinutes
	}
	if minutes < 1 {
		return 1
	}
	return minutes
}
