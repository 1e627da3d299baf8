package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/avelis/mnemo/internal/card"
	"github.com/avelis/mnemo/internal/quiz"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Take a quiz generated from your deck",
	Long: `Generate and interactively answer a quiz built from your flashcards.

Questions mix multiple choice, true/false, and short answer. For
multiple choice, answer with the option number or the option text.`,
	Args: cobra.NoArgs,
	RunE: runQuiz,
}

func init() {
	quizCmd.Flags().Int("count", 0, "Number of questions (0 = config default)")
	quizCmd.Flags().String("subject", "", "Limit questions to one subject")
	quizCmd.Flags().String("difficulty", "", "Limit questions to one difficulty")
}

func runQuiz(cmd *cobra.Command, args []string) error {
	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	count, _ := cmd.Flags().GetInt("count")
	if count <= 0 {
		count = app.cfg.QuizSize
	}

	subject, _ := cmd.Flags().GetString("subject")
	pool := app.deck.Cards()
	if subject != "" {
		pool = app.deck.Subject(subject)
	}

	opts := quiz.DefaultGenerateOptions(count)
	if diffVal, _ := cmd.Flags().GetString("difficulty"); diffVal != "" {
		d, err := card.ParseDifficulty(strings.ToLower(diffVal))
		if err != nil {
			return err
		}
		opts.Difficulty = &d
	}

	qz, err := quiz.NewGenerator(nil).Generate(pool, opts)
	if err != nil {
		return err
	}
	if len(qz.Questions) == 0 {
		fmt.Println("No cards match. Add some with `mnemo add` first.")
		return nil
	}

	answers, err := askQuestions(qz)
	if err != nil {
		return err
	}

	start := qz.CreatedAt
	res, err := quiz.Score(qz, answers, time.Since(start).Seconds())
	if err != nil {
		return err
	}

	correct := 0
	for _, a := range res.Answers {
		if a.Correct {
			correct++
		}
	}
	verdict := "failed"
	if res.Passed {
		verdict = "passed"
	}
	fmt.Printf("── Summary: %d/%d correct, score %.0f%% (%s) ──\n",
		correct, len(qz.Questions), res.Score*100, verdict)
	return nil
}

// askQuestions runs the interactive loop and returns the submitted
// answers keyed by question ID.
func askQuestions(qz quiz.Quiz) (map[string]string, error) {
	scanner := bufio.NewScanner(os.Stdin)
	answers := make(map[string]string, len(qz.Questions))

	for i, q := range qz.Questions {
		fmt.Printf("── Question %d/%d (%d pt) ──\n", i+1, len(qz.Questions), q.Points)
		fmt.Println(q.Text)
		for j, opt := range q.Options {
			fmt.Printf("  %d) %s\n", j+1, opt)
		}

		fmt.Print("\nYour answer: ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())

		// A bare number picks the numbered option.
		if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(q.Options) {
			answer = q.Options[n-1]
		}
		answers[q.ID] = answer

		if q.IsCorrect(answer) {
			fmt.Println("\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Printf("\033[31m✗ Wrong.\033[0m Answer: %s\n", strings.Join(q.CorrectAnswers, " / "))
		}
		fmt.Println()
	}
	return answers, scanner.Err()
}
