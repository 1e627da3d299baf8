package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/avelis/mnemo/internal/card"
	"github.com/avelis/mnemo/internal/store"
)

// SnapshotKey is the storage key the tracker persists under.
const SnapshotKey = "progress"

// Tracker accumulates study events into a LearningProgress aggregate.
// State is loaded from storage at construction and saved after every
// mutation. Not safe for concurrent use; callers serialize access.
type Tracker struct {
	kv    store.KV
	state LearningProgress

	// Now is the clock used for day-based queries. Overridden in tests.
	Now func() time.Time
}

// NewTracker creates a tracker, restoring any previously saved state.
func NewTracker(ctx context.Context, kv store.KV) (*Tracker, error) {
	t := &Tracker{
		kv:    kv,
		state: LearningProgress{Subjects: make(map[string]SubjectProgress)},
		Now:   time.Now,
	}
	if kv != nil {
		var saved LearningProgress
		found, err := kv.Load(ctx, SnapshotKey, &saved)
		if err != nil {
			return nil, fmt.Errorf("load progress: %w", err)
		}
		if found {
			if saved.Subjects == nil {
				saved.Subjects = make(map[string]SubjectProgress)
			}
			t.state = saved
		}
	}
	return t, nil
}

// Record folds one study event into the aggregates and persists the result.
func (t *Tracker) Record(ctx context.Context, ev card.StudyEvent) error {
	if !ev.Rating.IsValid() {
		return fmt.Errorf("progress: %w: rating %d", card.ErrInvalidEvent, int(ev.Rating))
	}
	if ev.ResponseTime <= 0 {
		return fmt.Errorf("progress: %w: response time %.2f", card.ErrInvalidEvent, ev.ResponseTime)
	}

	t.state.TotalReviews++
	t.state.TotalStudyTime += ev.ResponseTime

	t.state.RecentEvents = append([]card.StudyEvent{ev}, t.state.RecentEvents...)
	if len(t.state.RecentEvents) > MaxRecentEvents {
		t.state.RecentEvents = t.state.RecentEvents[:MaxRecentEvents]
	}

	sp := t.state.Subjects[ev.SubjectID]
	sp.SubjectID = ev.SubjectID
	sp.ReviewedCards++
	if ev.IsCorrect() {
		sp.CorrectCount++
	}
	sp.Accuracy = float64(sp.CorrectCount) / float64(sp.ReviewedCards)
	sp.StudyTime += ev.ResponseTime
	at := ev.Timestamp
	sp.LastStudied = &at
	t.state.Subjects[ev.SubjectID] = sp

	return t.save(ctx)
}

// UpdateMastery sets a subject's card and mastery counts, independent of
// event recording. Mastery scoring itself is an external collaborator.
func (t *Tracker) UpdateMastery(ctx context.Context, subjectID string, totalCards, masteredCards int) error {
	if totalCards < 0 || masteredCards < 0 {
		return fmt.Errorf("progress: negative card counts %d/%d", masteredCards, totalCards)
	}
	if masteredCards > totalCards {
		return fmt.Errorf("progress: mastered cards %d exceed total %d", masteredCards, totalCards)
	}

	sp := t.state.Subjects[subjectID]
	sp.SubjectID = subjectID
	sp.TotalCards = totalCards
	sp.MasteredCards = masteredCards
	if totalCards > 0 {
		sp.MasteryScore = float64(masteredCards) / float64(totalCards)
	} else {
		sp.MasteryScore = 0
	}
	t.state.Subjects[subjectID] = sp

	return t.save(ctx)
}

// SubjectProgress returns a subject's aggregate and whether it exists.
func (t *Tracker) SubjectProgress(subjectID string) (SubjectProgress, bool) {
	sp, ok := t.state.Subjects[subjectID]
	return sp, ok
}

// Snapshot returns a copy of the full aggregate.
func (t *Tracker) Snapshot() LearningProgress {
	out := LearningProgress{
		Subjects:       make(map[string]SubjectProgress, len(t.state.Subjects)),
		RecentEvents:   append([]card.StudyEvent(nil), t.state.RecentEvents...),
		TotalReviews:   t.state.TotalReviews,
		TotalStudyTime: t.state.TotalStudyTime,
	}
	for id, sp := range t.state.Subjects {
		out.Subjects[id] = sp
	}
	return out
}

// TotalReviews returns the lifetime review count.
func (t *Tracker) TotalReviews() int {
	return t.state.TotalReviews
}

// OverallAccuracy returns the correct-answer ratio across all subjects.
func (t *Tracker) OverallAccuracy() float64 {
	return t.state.OverallAccuracy()
}

// GlobalMastery returns the mean subject mastery score.
func (t *Tracker) GlobalMastery() float64 {
	return t.state.GlobalMastery()
}

// TodayEvents returns the recorded events from the current UTC day,
// newest first.
func (t *Tracker) TodayEvents() []card.StudyEvent {
	today := t.Now().UTC().Truncate(24 * time.Hour)
	var out []card.StudyEvent
	for _, ev := range t.state.RecentEvents {
		if ev.Timestamp.UTC().Truncate(24 * time.Hour).Equal(today) {
			out = append(out, ev)
		}
	}
	return out
}

// StudyDays returns the number of distinct UTC days with recorded events
// within the last n days, counting today.
func (t *Tracker) StudyDays(n int) int {
	if n <= 0 {
		return 0
	}
	cutoff := t.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, -(n - 1))
	days := make(map[string]bool)
	for _, ev := range t.state.RecentEvents {
		day := ev.Timestamp.UTC().Truncate(24 * time.Hour)
		if day.Before(cutoff) {
			continue
		}
		days[day.Format("2006-01-02")] = true
	}
	return len(days)
}

// Reset clears all aggregates and persists the empty state.
func (t *Tracker) Reset(ctx context.Context) error {
	t.state = LearningProgress{Subjects: make(map[string]SubjectProgress)}
	return t.save(ctx)
}

func (t *Tracker) save(ctx context.Context) error {
	if t.kv == nil {
		return nil
	}
	if err := t.kv.Save(ctx, SnapshotKey, t.state); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}
