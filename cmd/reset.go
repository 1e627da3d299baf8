package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avelis/mnemo/internal/deck"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset learner data",
	Long:  "Clear progress, XP, streaks, and badges. Flashcards are kept unless --deck is given.",
	Args:  cobra.NoArgs,
	RunE:  runReset,
}

func init() {
	resetCmd.Flags().Bool("deck", false, "Also delete every flashcard")
}

func runReset(cmd *cobra.Command, args []string) error {
	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx := cmd.Context()
	if err := app.eng.Tracker().Reset(ctx); err != nil {
		return fmt.Errorf("reset progress: %w", err)
	}
	if err := app.eng.Gamification().Reset(ctx); err != nil {
		return fmt.Errorf("reset gamification: %w", err)
	}
	app.eng.Adaptive().ResetAll()
	fmt.Println("Progress, XP, streaks, and badges cleared.")

	if wipeDeck, _ := cmd.Flags().GetBool("deck"); wipeDeck {
		if err := app.st.Delete(ctx, deck.StorageKey); err != nil {
			return fmt.Errorf("delete deck: %w", err)
		}
		fmt.Println("Deck deleted.")
	}
	return nil
}
