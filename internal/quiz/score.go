package quiz

import "fmt"

// Score grades a submission against a quiz. Answers are keyed by question
// ID; a missing submission counts as incorrect. A quiz with no questions
// scores 0 and does not pass.
func Score(q Quiz, answers map[string]string, timeTaken float64) (Result, error) {
	if timeTaken < 0 {
		return Result{}, fmt.Errorf("quiz: negative time taken %.2f", timeTaken)
	}

	result := Result{
		QuizID:    q.ID,
		TimeTaken: timeTaken,
	}

	earned := 0
	for _, question := range q.Questions {
		submitted, ok := answers[question.ID]
		correct := ok && question.IsCorrect(submitted)
		if correct {
			earned += question.Points
		}
		result.Answers = append(result.Answers, AnswerRecord{
			QuestionID: question.ID,
			Submitted:  submitted,
			Correct:    correct,
		})
	}

	if total := q.TotalPoints(); total > 0 {
		result.Score = float64(earned) / float64(total)
	}
	result.Passed = result.Score >= q.PassingScore
	return result, nil
}
