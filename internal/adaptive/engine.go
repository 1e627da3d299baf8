// Package adaptive recommends a per-subject difficulty level from a
// sliding window of recent study events. Each subject is tracked
// independently; difficulty steps are relative to the subject's current
// recommendation rather than recomputed from scratch.
package adaptive

import (
	"fmt"

	"github.com/avelis/mnemo/internal/card"
)

const (
	// DefaultWindowSize is the default number of recent events kept per subject.
	DefaultWindowSize = 20

	// DefaultSensitivity is the default step aggressiveness in [0, 1].
	DefaultSensitivity = 0.5

	// StepUpThreshold is the rolling accuracy at or above which difficulty
	// steps up one level.
	StepUpThreshold = 0.85

	// StepDownThreshold is the rolling accuracy below which difficulty
	// steps down one level.
	StepDownThreshold = 0.70
)

type subjectState struct {
	events     []card.StudyEvent // oldest first, bounded at windowSize
	difficulty card.Difficulty
}

// Engine holds the per-subject sliding windows and current recommendations.
// It is not safe for concurrent use; callers serialize access.
type Engine struct {
	windowSize  int
	sensitivity float64
	minEvents   int
	subjects    map[string]*subjectState
}

// NewEngine creates an adaptive difficulty engine. windowSize must be
// positive and sensitivity must lie in [0, 1]: higher sensitivity steps
// the recommendation after fewer observed events.
func NewEngine(windowSize int, sensitivity float64) (*Engine, error) {
	if windowSize <= 0 {
		return nil, fmt.Errorf("adaptive: window size %d must be positive", windowSize)
	}
	if sensitivity < 0 || sensitivity > 1 {
		return nil, fmt.Errorf("adaptive: sensitivity %.2f out of range [0, 1]", sensitivity)
	}

	minEvents := int(float64(windowSize) * (1.0 - sensitivity))
	if minEvents < 2 {
		minEvents = 2
	}

	return &Engine{
		windowSize:  windowSize,
		sensitivity: sensitivity,
		minEvents:   minEvents,
		subjects:    make(map[string]*subjectState),
	}, nil
}

// NewDefaultEngine creates an engine with the default window and sensitivity.
func NewDefaultEngine() *Engine {
	e, err := NewEngine(DefaultWindowSize, DefaultSensitivity)
	if err != nil {
		panic(err) // defaults are always valid
	}
	return e
}

// Ingest appends an event to its subject's window, evicting the oldest
// entry beyond the window size, and re-evaluates the subject's
// recommended difficulty.
func (e *Engine) Ingest(ev card.StudyEvent) error {
	if !ev.Rating.IsValid() {
		return fmt.Errorf("adaptive: %w: %d", card.ErrInvalidRating, int(ev.Rating))
	}
	if ev.ResponseTime <= 0 {
		return fmt.Errorf("adaptive: %w: response time %.2f", card.ErrInvalidEvent, ev.ResponseTime)
	}

	st := e.subjects[ev.SubjectID]
	if st == nil {
		st = &subjectState{difficulty: card.DifficultyMedium}
		e.subjects[ev.SubjectID] = st
	}

	st.events = append(st.events, ev)
	if len(st.events) > e.windowSize {
		st.events = st.events[len(st.events)-e.windowSize:]
	}

	if len(st.events) < e.minEvents {
		return nil
	}
	switch acc := windowAccuracy(st.events); {
	case acc >= StepUpThreshold:
		st.difficulty = st.difficulty.StepUp()
	case acc < StepDownThreshold:
		st.difficulty = st.difficulty.StepDown()
	}
	return nil
}

// RecommendedDifficulty returns the subject's current recommendation,
// Medium for a subject with no ingested events.
func (e *Engine) RecommendedDifficulty(subjectID string) card.Difficulty {
	st := e.subjects[subjectID]
	if st == nil {
		return card.DifficultyMedium
	}
	return st.difficulty
}

// Reset clears a single subject's window and recommendation.
func (e *Engine) Reset(subjectID string) {
	delete(e.subjects, subjectID)
}

// ResetAll clears every subject.
func (e *Engine) ResetAll() {
	e.subjects = make(map[string]*subjectState)
}

func windowAccuracy(events []card.StudyEvent) float64 {
	if len(events) == 0 {
		return 0
	}
	correct := 0
	for _, ev := range events {
		if ev.IsCorrect() {
			correct++
		}
	}
	return float64(correct) / float64(len(events))
}
