package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/avelis/mnemo/internal/card"
	"github.com/avelis/mnemo/internal/scheduler"
)

var queueCmd = &cobra.Command{
	Use:   "queue",
	Short: "Show the current study queue",
	Args:  cobra.NoArgs,
	RunE:  runQueue,
}

func runQueue(cmd *cobra.Command, args []string) error {
	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	now := time.Now()
	queue, err := scheduler.StudyQueue(app.deck.Cards(), app.cfg.MaxNewCards, app.cfg.MaxReviewCards, now)
	if err != nil {
		return err
	}
	if len(queue) == 0 {
		fmt.Println("Nothing to study. Come back later.")
		return nil
	}

	fmt.Printf("%d card(s) to study:\n\n", len(queue))
	for i, c := range queue {
		fmt.Printf("%2d. [%s] %s\n", i+1, queueStatus(c, now), c.Front)
		fmt.Printf("      id: %s  subject: %s  difficulty: %s\n", c.ID, c.SubjectID, c.Difficulty)
	}
	return nil
}

func queueStatus(c card.Flashcard, now time.Time) string {
	switch {
	case c.IsNew():
		return "new"
	case c.IsLapsed():
		return "lapsed"
	default:
		overdue := int(now.Sub(c.NextReviewDate).Hours() / 24)
		if overdue > 0 {
			return fmt.Sprintf("due %dd ago", overdue)
		}
		return "due"
	}
}
