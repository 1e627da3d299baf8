package cmd

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/avelis/mnemo/internal/card"
)

var addCmd = &cobra.Command{
	Use:   "add <subject> <front> <back>",
	Short: "Add a flashcard to the deck",
	Args:  cobra.ExactArgs(3),
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().String("difficulty", "medium", "Initial difficulty: easy, medium, hard, or expert")
	addCmd.Flags().StringSlice("tags", nil, "Comma-separated tags")
}

func runAdd(cmd *cobra.Command, args []string) error {
	diffVal, _ := cmd.Flags().GetString("difficulty")
	difficulty, err := card.ParseDifficulty(strings.ToLower(diffVal))
	if err != nil {
		return err
	}
	tags, _ := cmd.Flags().GetStringSlice("tags")

	app, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	c := card.New(uuid.NewString(), args[0], args[1], args[2], difficulty)
	c.Tags = tags
	if err := app.deck.Add(cmd.Context(), c); err != nil {
		return err
	}

	fmt.Printf("Added card %s\n", c.ID)
	fmt.Printf("  subject:    %s\n", c.SubjectID)
	fmt.Printf("  difficulty: %s\n", c.Difficulty)
	return nil
}
