package cmd

import (
	"github.com/spf13/cobra"

	"github.com/avelis/mnemo/internal/config"
	"github.com/avelis/mnemo/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "mnemo",
	Short: "Adaptive flashcard trainer",
	Long:  "Mnemo — terminal flashcard trainer with spaced repetition, adaptive difficulty, quizzes, and progress tracking.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MNEMO_DB env var)")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(studyCmd)
	rootCmd.AddCommand(queueCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then the config file, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}
