package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/barristerapp/barrister/internal/engine"
	"github.com/barristerapp/barrister/internal/ui/report"
)

var weakCmd = &cobra.Command{
	Use:   "weak",
	Short: "List topics with the lowest review accuracy",
	RunE: func(cmd *cobra.Command, args []string) error {
		scope, _ := cmd.Flags().GetString("subject")
		threshold, _ := cmd.Flags().GetFloat64("threshold")
		minSamples, _ := cmd.Flags().GetInt("min-samples")
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

		topics, err := eng.WeakTopics(cmd.Context(), subject, threshold, minSamples,
			time.Duration(days)*24*time.Hour, time.Now())
		if err != nil {
			return err
		}

		fmt.Println(report.WeakTopics(topics))
		return nil
	},
}

func init() {
	weakCmd.Flags().StringP("subject", "s", "", "Subject scope (empty = all subjects)")
	weakCmd.Flags().Float64P("threshold", "t", 0.7, "Accuracy below this counts as weak")
	weakCmd.Flags().Int("min-samples", 3, "Exclude topics with fewer reviews than this")
	weakCmd.Flags().IntP("window", "w", 30, "Window in days (0 = all time)")
}
