package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/avelis/mnemo/internal/recommend"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Suggest what to study next",
	Args:  cobra.NoArgs,
	RunE:  runRecommend,
}

func init() {
	recommendCmd.Flags().Int("limit", 0, "Maximum suggestions (0 = config default)")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	if limit <= 0 {
		limit = app.cfg.RecommendLimit
	}

	recs, err := recommend.Recommend(app.deck.Cards(), app.eng.Tracker().Snapshot(), limit, time.Now())
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		fmt.Println("All caught up. Nothing to recommend.")
		return nil
	}

	for _, r := range recs {
		fmt.Printf("[%s] %s", r.Priority, r.Reason)
		if r.SubjectID != "" {
			fmt.Printf(" (subject: %s)", r.SubjectID)
		}
		fmt.Printf(" — ~%d min\n", r.EstimatedMinutes)
	}
	return nil
}
