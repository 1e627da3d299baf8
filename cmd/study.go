package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avelis/mnemo/internal/card"
)

var studyCmd = &cobra.Command{
	Use:   "study <card-id> <rating>",
	Short: "Record a review for a card",
	Long: `Record the outcome of studying one card.

Rating is one of: again, hard, good, easy. The scheduler reschedules
the card, progress and XP are updated, and any newly earned badges are
announced.`,
	Args: cobra.ExactArgs(2),
	RunE: runStudy,
}

func init() {
	studyCmd.Flags().Float64("seconds", 6, "Response time in seconds")
}

func runStudy(cmd *cobra.Command, args []string) error {
	rating, err := card.ParseRating(strings.ToLower(args[1]))
	if err != nil {
		return err
	}
	seconds, _ := cmd.Flags().GetFloat64("seconds")

	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx := cmd.Context()
	c, ok := app.deck.Get(args[0])
	if !ok {
		return fmt.Errorf("unknown card %q", args[0])
	}

	res, err := app.eng.RecordStudy(ctx, c, rating, seconds)
	if err != nil {
		return err
	}
	if err := app.deck.Put(ctx, res.UpdatedCard); err != nil {
		return err
	}

	badges, err := app.eng.Gamification().CheckBadges(ctx, app.eng.Tracker())
	if err != nil {
		return err
	}

	fmt.Printf("Rated %q: %s\n", c.Front, rating)
	fmt.Printf("  +%d XP (streak: %d days)\n", res.XPEarned, res.CurrentStreak)
	fmt.Printf("  next review in %.0f days (%s)\n",
		res.UpdatedCard.IntervalDays, res.NextReviewDate.Format("2006-01-02"))
	for _, b := range badges {
		fmt.Printf("  badge earned: %s — %s\n", b.Name, b.Description)
	}
	return nil
}
