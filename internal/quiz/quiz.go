// Package quiz synthesizes quizzes from a flashcard pool and scores
// submitted answers deterministically.
package quiz

import (
	"strings"
	"time"
)

// DefaultPassingScore is the score fraction required to pass a quiz.
const DefaultPassingScore = 0.7

// QuestionType identifies how a question is asked and answered.
type QuestionType string

const (
	MultipleChoice QuestionType = "multiple_choice"
	TrueFalse      QuestionType = "true_false"
	ShortAnswer    QuestionType = "short_answer"
)

// AllQuestionTypes returns every question type.
func AllQuestionTypes() []QuestionType {
	return []QuestionType{MultipleChoice, TrueFalse, ShortAnswer}
}

// IsValid reports whether t is a known question type.
func (t QuestionType) IsValid() bool {
	switch t {
	case MultipleChoice, TrueFalse, ShortAnswer:
		return true
	}
	return false
}

// Question is a single quiz question.
//
// Invariants: TrueFalse questions expose exactly the options
// ["True", "False"]; MultipleChoice questions have at least two options
// including every correct answer; ShortAnswer questions have none.
type Question struct {
	ID             string       `json:"id"`
	Text           string       `json:"text"`
	Type           QuestionType `json:"type"`
	Options        []string     `json:"options,omitempty"`
	CorrectAnswers []string     `json:"correct_answers"`
	Points         int          `json:"points"`
	SourceCardID   string       `json:"source_card_id,omitempty"`
}

// IsCorrect reports whether the submitted answer matches any correct
// answer, ignoring case and surrounding whitespace.
func (q Question) IsCorrect(answer string) bool {
	trimmed := strings.TrimSpace(answer)
	for _, correct := range q.CorrectAnswers {
		if strings.EqualFold(trimmed, strings.TrimSpace(correct)) {
			return true
		}
	}
	return false
}

// Quiz is a generated set of questions over one card pool.
type Quiz struct {
	ID           string     `json:"id"`
	SubjectID    string     `json:"subject_id"`
	Questions    []Question `json:"questions"`
	PassingScore float64    `json:"passing_score"`
	CreatedAt    time.Time  `json:"created_at"`
}

// TotalPoints returns the sum of all question points.
func (q Quiz) TotalPoints() int {
	total := 0
	for _, question := range q.Questions {
		total += question.Points
	}
	return total
}

// AnswerRecord is the scored outcome for one question.
type AnswerRecord struct {
	QuestionID string `json:"question_id"`
	Submitted  string `json:"submitted"`
	Correct    bool   `json:"correct"`
}

// Result is the outcome of scoring a quiz submission.
type Result struct {
	QuizID    string         `json:"quiz_id"`
	Score     float64        `json:"score"` // fraction in [0, 1]
	Passed    bool           `json:"passed"`
	TimeTaken float64        `json:"time_taken"` // seconds
	Answers   []AnswerRecord `json:"answers"`
}
