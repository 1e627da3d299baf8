package card

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidEvent is returned when a study event violates its contract.
var ErrInvalidEvent = errors.New("card: invalid study event")

// StudyEvent is an immutable fact describing one completed review.
type StudyEvent struct {
	CardID       string    `json:"card_id"`
	SubjectID    string    `json:"subject_id"`
	Rating       Rating    `json:"rating"`
	ResponseTime float64   `json:"response_time"` // seconds, > 0
	Timestamp    time.Time `json:"timestamp"`
}

// NewStudyEvent builds a validated study event.
// A non-positive response time or invalid rating is a caller bug and fails fast.
func NewStudyEvent(cardID, subjectID string, rating Rating, responseTime float64, at time.Time) (StudyEvent, error) {
	if !rating.IsValid() {
		return StudyEvent{}, fmt.Errorf("%w: rating %d", ErrInvalidEvent, int(rating))
	}
	if responseTime <= 0 {
		return StudyEvent{}, fmt.Errorf("%w: response time %.2f must be positive", ErrInvalidEvent, responseTime)
	}
	return StudyEvent{
		CardID:       cardID,
		SubjectID:    subjectID,
		Rating:       rating,
		ResponseTime: responseTime,
		Timestamp:    at,
	}, nil
}

// IsCorrect reports whether the event's rating counts as a successful recall.
func (e StudyEvent) IsCorrect() bool {
	return e.Rating.IsCorrect()
}
