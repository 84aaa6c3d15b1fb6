package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rebuild mastery estimates by replaying the review log",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := openEngine(cmd)
		if err != nil {
			return fmt.Errorf("open engine: %w", err)
		}
		defer eng.Close()

		if err := eng.RebuildMastery(cmd.Context()); err != nil {
			return fmt.Errorf("rebuild mastery: %w", err)
		}
		fmt.Println("Mastery estimates rebuilt from the review log.")
		return nil
	},
}
