package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	tracker := app.eng.Tracker()
	snap := tracker.Snapshot()
	state := app.eng.Gamification().State()

	fmt.Printf("Deck:      %d cards\n", app.deck.Len())
	fmt.Printf("Reviews:   %d total, %.0f%% accuracy\n", snap.TotalReviews, snap.OverallAccuracy()*100)
	fmt.Printf("Study:     %.0f min total, %d active days in last 30\n", snap.TotalStudyTime/60, tracker.StudyDays(30))
	fmt.Printf("Level:     %d (%d XP, %d to next level)\n", state.CurrentLevel, state.TotalXP, state.XPToNextLevel)
	fmt.Printf("Streak:    %d day(s), best %d\n", state.Streak.Current, state.Streak.Longest)

	if len(state.EarnedBadges) > 0 {
		fmt.Printf("Badges:    %d earned\n", len(state.EarnedBadges))
		for _, b := range state.EarnedBadges {
			fmt.Printf("  %s (%s) — %s\n", b.Name, b.Tier, b.Description)
		}
	}

	if len(snap.Subjects) == 0 {
		return nil
	}

	subjects := make([]string, 0, len(snap.Subjects))
	for id := range snap.Subjects {
		subjects = append(subjects, id)
	}
	sort.Strings(subjects)

	fmt.Println("\nSubjects:")
	for _, id := range subjects {
		sp := snap.Subjects[id]
		m := app.eng.Adaptive().Metrics(id)
		fmt.Printf("  %-20s %4d reviews  %3.0f%% accuracy  %s, %s\n",
			id, sp.ReviewedCards, sp.Accuracy*100,
			app.eng.Adaptive().RecommendedDifficulty(id), m.Trend)
	}
	return nil
}
