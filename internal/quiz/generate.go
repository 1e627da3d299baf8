package quiz

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/avelis/mnemo/internal/card"
)

const maxDistractors = 3

// GenerateOptions configures quiz generation.
type GenerateOptions struct {
	// Count is the maximum number of questions; fewer are produced when
	// the pool is smaller. Negative counts are a caller bug.
	Count int

	// Difficulty filters the card pool when non-nil.
	Difficulty *card.Difficulty

	// Types is the set of question types to draw from.
	// Nil means all types.
	Types []QuestionType

	// Shuffle randomizes card selection and option order.
	Shuffle bool
}

// DefaultGenerateOptions returns options producing a shuffled quiz of up
// to count questions across all question types.
func DefaultGenerateOptions(count int) GenerateOptions {
	return GenerateOptions{Count: count, Types: AllQuestionTypes(), Shuffle: true}
}

// Generator builds quizzes from a card pool. The random source is
// injected so generation is reproducible under test.
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

// NewGenerator creates a generator seeded from the given source.
// A nil rng falls back to a time-seeded source.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng, now: time.Now}
}

// Generate builds a quiz from the pool. An empty or fully filtered pool
// yields a zero-question quiz, never an error.
func (g *Generator) Generate(cards []card.Flashcard, opts GenerateOptions) (Quiz, error) {
	if opts.Count < 0 {
		return Quiz{}, fmt.Errorf("quiz: negative question count %d", opts.Count)
	}
	types := opts.Types
	if len(types) == 0 {
		types = AllQuestionTypes()
	}
	for _, qt := range types {
		if !qt.IsValid() {
			return Quiz{}, fmt.Errorf("quiz: unknown question type %q", qt)
		}
	}

	pool := filterByDifficulty(cards, opts.Difficulty)
	if opts.Shuffle {
		g.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	}
	if len(pool) > opts.Count {
		pool = pool[:opts.Count]
	}

	q := Quiz{
		ID:           uuid.NewString(),
		PassingScore: DefaultPassingScore,
		CreatedAt:    g.now(),
	}
	if len(pool) > 0 {
		q.SubjectID = pool[0].SubjectID
	}

	for _, c := range pool {
		qt := types[g.rng.Intn(len(types))]
		q.Questions = append(q.Questions, g.buildQuestion(c, cards, qt, opts.Shuffle))
	}
	return q, nil
}

func filterByDifficulty(cards []card.Flashcard, difficulty *card.Difficulty) []card.Flashcard {
	if difficulty == nil {
		return append([]card.Flashcard(nil), cards...)
	}
	var out []card.Flashcard
	for _, c := range cards {
		if c.Difficulty == *difficulty {
			out = append(out, c)
		}
	}
	return out
}

func (g *Generator) buildQuestion(c card.Flashcard, pool []card.Flashcard, qt QuestionType, shuffle bool) Question {
	switch qt {
	case MultipleChoice:
		return g.buildMultipleChoice(c, pool, shuffle)
	case TrueFalse:
		return g.buildTrueFalse(c, pool)
	default:
		return g.buildShortAnswer(c)
	}
}

// buildMultipleChoice synthesizes distractors from other cards' answers.
// With no usable distractor in the pool the question degrades to short
// answer, keeping the at-least-two-options invariant.
func (g *Generator) buildMultipleChoice(c card.Flashcard, pool []card.Flashcard, shuffle bool) Question {
	distractors := g.pickDistractors(c, pool)
	if len(distractors) == 0 {
		return g.buildShortAnswer(c)
	}

	options := append(distractors, c.Back)
	if shuffle {
		g.rng.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })
	}

	return Question{
		ID:             uuid.NewString(),
		Text:           c.Front,
		Type:           MultipleChoice,
		Options:        options,
		CorrectAnswers: []string{c.Back},
		Points:         pointsFor(c.Difficulty),
		SourceCardID:   c.ID,
	}
}

func (g *Generator) buildTrueFalse(c card.Flashcard, pool []card.Flashcard) Question {
	shown := c.Back
	answer := "True"
	if g.rng.Intn(2) == 0 {
		if wrong := g.pickDistractors(c, pool); len(wrong) > 0 {
			shown = wrong[g.rng.Intn(len(wrong))]
			answer = "False"
		}
	}

	return Question{
		ID:             uuid.NewString(),
		Text:           fmt.Sprintf("True or false: %s → %s", c.Front, shown),
		Type:           TrueFalse,
		Options:        []string{"True", "False"},
		CorrectAnswers: []string{answer},
		Points:         pointsFor(c.Difficulty),
		SourceCardID:   c.ID,
	}
}

func (g *Generator) buildShortAnswer(c card.Flashcard) Question {
	return Question{
		ID:             uuid.NewString(),
		Text:           c.Front,
		Type:           ShortAnswer,
		CorrectAnswers: []string{c.Back},
		Points:         pointsFor(c.Difficulty),
		SourceCardID:   c.ID,
	}
}

// pickDistractors returns up to maxDistractors answers from other cards,
// deduplicated and never equal to the card's own answer.
func (g *Generator) pickDistractors(c card.Flashcard, pool []card.Flashcard) []string {
	seen := map[string]bool{c.Back: true}
	var candidates []string
	for _, other := range pool {
		if other.ID == c.ID || seen[other.Back] {
			continue
		}
		seen[other.Back] = true
		candidates = append(candidates, other.Back)
	}
	g.rng.Shuffle(len(candidates), func(i, j int) { candidates[i], candidates[j] = candidates[j], candidates[i] })
	if len(candidates) > maxDistractors {
		candidates = candidates[:maxDistractors]
	}
	return candidates
}

func pointsFor(d card.Difficulty) int {
	if !d.IsValid() {
		return 1
	}
	return int(d)
}
