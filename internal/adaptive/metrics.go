package adaptive

import "github.com/avelis/mnemo/internal/card"

// Trend describes the accuracy direction across a subject's window.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendStable    Trend = "stable"
	TrendDeclining Trend = "declining"
)

// PerformanceMetrics is a point-in-time snapshot of a subject's window.
type PerformanceMetrics struct {
	Accuracy            float64         `json:"accuracy"`
	EventCount          int             `json:"event_count"`
	AverageResponseTime float64         `json:"average_response_time"`
	Difficulty          card.Difficulty `json:"difficulty"`
	Trend               Trend           `json:"trend"`
}

// Metrics returns the current performance snapshot for a subject.
// An unseen subject yields a zero-valued snapshot at Medium difficulty.
func (e *Engine) Metrics(subjectID string) PerformanceMetrics {
	st := e.subjects[subjectID]
	if st == nil || len(st.events) == 0 {
		return PerformanceMetrics{
			Difficulty: card.DifficultyMedium,
			Trend:      TrendStable,
		}
	}

	total := 0.0
	for _, ev := range st.events {
		total += ev.ResponseTime
	}

	return PerformanceMetrics{
		Accuracy:            windowAccuracy(st.events),
		EventCount:          len(st.events),
		AverageResponseTime: total / float64(len(st.events)),
		Difficulty:          st.difficulty,
		Trend:               windowTrend(st.events),
	}
}

// windowTrend splits the window chronologically and compares first-half
// accuracy against second-half accuracy.
func windowTrend(events []card.StudyEvent) Trend {
	if len(events) < 2 {
		return TrendStable
	}
	mid := len(events) / 2
	first := windowAccuracy(events[:mid])
	second := windowAccuracy(events[mid:])
	switch {
	case second > first:
		return TrendImproving
	case second < first:
		return TrendDeclining
	default:
		return TrendStable
	}
}
