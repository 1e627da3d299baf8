package quiz

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelis/mnemo/internal/card"
)

func testPool() []card.Flashcard {
	return []card.Flashcard{
		card.New("c1", "geo", "Capital of France", "Paris", card.DifficultyEasy),
		card.New("c2", "geo", "Capital of Spain", "Madrid", card.DifficultyEasy),
		card.New("c3", "geo", "Capital of Italy", "Rome", card.DifficultyMedium),
		card.New("c4", "geo", "Capital of Japan", "Tokyo", card.DifficultyHard),
		card.New("c5", "geo", "Capital of Peru", "Lima", card.DifficultyExpert),
	}
}

func testGenerator() *Generator {
	return NewGenerator(rand.New(rand.NewSource(42)))
}

func TestGenerate_CountAndSourceCards(t *testing.T) {
	g := testGenerator()
	quiz, err := g.Generate(testPool(), DefaultGenerateOptions(3))
	require.NoError(t, err)

	assert.Len(t, quiz.Questions, 3)
	assert.Equal(t, "geo", quiz.SubjectID)
	assert.Equal(t, DefaultPassingScore, quiz.PassingScore)
	for _, q := range quiz.Questions {
		assert.NotEmpty(t, q.ID)
		assert.NotEmpty(t, q.SourceCardID)
		assert.NotEmpty(t, q.CorrectAnswers)
		assert.Positive(t, q.Points)
	}
}

func TestGenerate_SmallerPoolThanCount(t *testing.T) {
	g := testGenerator()
	quiz, err := g.Generate(testPool()[:2], DefaultGenerateOptions(10))
	require.NoError(t, err)
	assert.Len(t, quiz.Questions, 2)
}

func TestGenerate_EmptyPool(t *testing.T) {
	g := testGenerator()
	quiz, err := g.Generate(nil, DefaultGenerateOptions(5))
	require.NoError(t, err)
	assert.Empty(t, quiz.Questions)
	assert.Zero(t, quiz.TotalPoints())
}

func TestGenerate_DifficultyFilter(t *testing.T) {
	g := testGenerator()
	easy := card.DifficultyEasy
	opts := DefaultGenerateOptions(10)
	opts.Difficulty = &easy

	quiz, err := g.Generate(testPool(), opts)
	require.NoError(t, err)
	require.Len(t, quiz.Questions, 2)
	for _, q := range quiz.Questions {
		assert.Contains(t, []string{"c1", "c2"}, q.SourceCardID)
	}
}

func TestGenerate_NegativeCount(t *testing.T) {
	g := testGenerator()
	_, err := g.Generate(testPool(), GenerateOptions{Count: -1})
	assert.Error(t, err)
}

func TestGenerate_UnknownType(t *testing.T) {
	g := testGenerator()
	_, err := g.Generate(testPool(), GenerateOptions{Count: 1, Types: []QuestionType{"essay"}})
	assert.Error(t, err)
}

func TestGenerate_MultipleChoiceInvariants(t *testing.T) {
	g := testGenerator()
	opts := GenerateOptions{Count: 5, Types: []QuestionType{MultipleChoice}, Shuffle: true}

	quiz, err := g.Generate(testPool(), opts)
	require.NoError(t, err)
	require.Len(t, quiz.Questions, 5)

	for _, q := range quiz.Questions {
		require.Equal(t, MultipleChoice, q.Type)
		assert.GreaterOrEqual(t, len(q.Options), 2)
		assert.Contains(t, q.Options, q.CorrectAnswers[0])
	}
}

func TestGenerate_MultipleChoice_FallsBackWithoutDistractors(t *testing.T) {
	g := testGenerator()
	pool := testPool()[:1]
	opts := GenerateOptions{Count: 1, Types: []QuestionType{MultipleChoice}}

	quiz, err := g.Generate(pool, opts)
	require.NoError(t, err)
	require.Len(t, quiz.Questions, 1)
	assert.Equal(t, ShortAnswer, quiz.Questions[0].Type)
	assert.Empty(t, quiz.Questions[0].Options)
}

func TestGenerate_TrueFalseInvariants(t *testing.T) {
	g := testGenerator()
	opts := GenerateOptions{Count: 5, Types: []QuestionType{TrueFalse}, Shuffle: true}

	quiz, err := g.Generate(testPool(), opts)
	require.NoError(t, err)

	for _, q := range quiz.Questions {
		require.Equal(t, TrueFalse, q.Type)
		assert.Equal(t, []string{"True", "False"}, q.Options)
		assert.Contains(t, q.Options, q.CorrectAnswers[0])
	}
}

func TestGenerate_ShortAnswerHasNoOptions(t *testing.T) {
	g := testGenerator()
	opts := GenerateOptions{Count: 5, Types: []QuestionType{ShortAnswer}}

	quiz, err := g.Generate(testPool(), opts)
	require.NoError(t, err)

	for _, q := range quiz.Questions {
		assert.Equal(t, ShortAnswer, q.Type)
		assert.Empty(t, q.Options)
	}
}

func TestQuestionIsCorrect_CaseAndWhitespaceInsensitive(t *testing.T) {
	q := Question{CorrectAnswers: []string{"Paris"}}

	assert.True(t, q.IsCorrect("Paris"))
	assert.True(t, q.IsCorrect("  paris  "))
	assert.True(t, q.IsCorrect("PARIS"))
	assert.False(t, q.IsCorrect("London"))
	assert.False(t, q.IsCorrect(""))
}

func TestScore_AllCorrect(t *testing.T) {
	g := testGenerator()
	quiz, err := g.Generate(testPool(), GenerateOptions{Count: 5, Types: []QuestionType{ShortAnswer}})
	require.NoError(t, err)

	answers := make(map[string]string)
	for _, q := range quiz.Questions {
		answers[q.ID] = q.CorrectAnswers[0]
	}

	result, err := Score(quiz, answers, 60)
	require.NoError(t, err)
	assert.Equal(t, 1.0, result.Score)
	assert.True(t, result.Passed)
	assert.Len(t, result.Answers, len(quiz.Questions))
}

func TestScore_AllWrong(t *testing.T) {
	g := testGenerator()
	quiz, err := g.Generate(testPool(), GenerateOptions{Count: 5, Types: []QuestionType{ShortAnswer}})
	require.NoError(t, err)

	answers := make(map[string]string)
	for _, q := range quiz.Questions {
		answers[q.ID] = "wrong"
	}

	result, err := Score(quiz, answers, 60)
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Score)
	assert.False(t, result.Passed)
}

func TestScore_MissingAnswersCountAsWrong(t *testing.T) {
	g := testGenerator()
	quiz, err := g.Generate(testPool(), GenerateOptions{Count: 4, Types: []QuestionType{ShortAnswer}})
	require.NoError(t, err)
	require.Len(t, quiz.Questions, 4)

	// Answer only the first question.
	answers := map[string]string{
		quiz.Questions[0].ID: quiz.Questions[0].CorrectAnswers[0],
	}

	result, err := Score(quiz, answers, 30)
	require.NoError(t, err)
	assert.Less(t, result.Score, 1.0)
	assert.Len(t, result.Answers, 4)
	assert.True(t, result.Answers[0].Correct)
	for _, rec := range result.Answers[1:] {
		assert.False(t, rec.Correct)
	}
}

func TestScore_EmptyQuiz(t *testing.T) {
	result, err := Score(Quiz{ID: "q", PassingScore: DefaultPassingScore}, nil, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Score)
	assert.False(t, result.Passed)
}

func TestScore_NegativeTimeTaken(t *testing.T) {
	_, err := Score(Quiz{}, nil, -1)
	assert.Error(t, err)
}
