// Package progress aggregates study events into per-subject and global
// statistics with a bounded recent-event history.
package progress

import (
	"time"

	"github.com/avelis/mnemo/internal/card"
)

// MaxRecentEvents bounds the recent-event ring. The newest event is
// always first; the oldest is dropped on overflow.
const MaxRecentEvents = 500

// SubjectProgress is the per-subject aggregate.
type SubjectProgress struct {
	SubjectID     string     `json:"subject_id"`
	TotalCards    int        `json:"total_cards"`
	ReviewedCards int        `json:"reviewed_cards"`
	CorrectCount  int        `json:"correct_count"`
	Accuracy      float64    `json:"accuracy"`
	StudyTime     float64    `json:"study_time"` // seconds
	LastStudied   *time.Time `json:"last_studied,omitempty"`
	MasteredCards int        `json:"mastered_cards"`
	MasteryScore  float64    `json:"mastery_score"`
}

// LearningProgress is the global aggregate for one learner.
type LearningProgress struct {
	Subjects       map[string]SubjectProgress `json:"subjects"`
	RecentEvents   []card.StudyEvent          `json:"recent_events"` // newest first
	TotalReviews   int                        `json:"total_reviews"`
	TotalStudyTime float64                    `json:"total_study_time"` // seconds
}

// OverallAccuracy returns the correct-answer ratio across all subjects,
// 0 with no recorded reviews.
func (p LearningProgress) OverallAccuracy() float64 {
	reviews, correct := 0, 0
	for _, sp := range p.Subjects {
		reviews += sp.ReviewedCards
		correct += sp.CorrectCount
	}
	if reviews == 0 {
		return 0
	}
	return float64(correct) / float64(reviews)
}

// GlobalMastery returns the mean of all subject mastery scores,
// 0 with no subjects.
func (p LearningProgress) GlobalMastery() float64 {
	if len(p.Subjects) == 0 {
		return 0
	}
	sum := 0.0
	for _, sp := range p.Subjects {
		sum += sp.MasteryScore
	}
	return sum / float64(len(p.Subjects))
}
