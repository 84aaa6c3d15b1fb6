package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/barristerapp/barrister/internal/engine"
	"github.com/barristerapp/barrister/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "barrister",
	Short: "Adaptive flashcard tutor for bar exam prep",
	Long:  "Barrister — spaced-repetition study engine for bar exam doctrine: import concept banks, review generated cards, and track mastery per subject.",
}

func Execute() error {
	// Pick up API keys and overrides from a local .env if present.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides BARRISTER_DB env var)")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(dueCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(weakCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(rebuildCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then BARRISTER_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openEngine resolves the database path and opens the study engine.
// Callers own the returned engine and must Close it.
func openEngine(cmd *cobra.Command) (*engine.Engine, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return engine.Open(dbPath)
}
