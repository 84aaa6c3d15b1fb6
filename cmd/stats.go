package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/barristerapp/barrister/internal/engine"
	"github.com/barristerapp/barrister/internal/ui/report"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show study statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		scope, _ := cmd.Flags().GetString("subject")
		days, _ := cmd.Flags().GetInt("window")

		subject, err := engine.ParseScope(scope)
		if err != nil {
			return err
		}

		eng, err := openEngine(cmd)
		if err != nil {
			return fmt.Errorf("open engine: %w", err)
		}
		defer eng.Close()

		stats, err := eng.Statistics(cmd.Context(), subject, time.Duration(days)*24*time.Hour, time.Now())
		if err != nil {
			return err
		}

		label := scope
		if label == "" {
			label = "all subjects"
		}
		fmt.Println(report.Statistics(label, stats))
		return nil
	},
}

func init() {
	statsCmd.Flags().StringP("subject", "s", "", "Subject scope (empty = all subjects)")
	statsCmd.Flags().IntP("window", "w", 0, "Window in days (0 = all time)")
}
