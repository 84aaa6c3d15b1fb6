package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/barristerapp/barrister/internal/engine"
	"github.com/barristerapp/barrister/internal/ui/report"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Select an interleaved practice set of concepts",
	RunE: func(cmd *cobra.Command, args []string) error {
		scope, _ := cmd.Flags().GetString("subject")
		count, _ := cmd.Flags().GetInt("count")

		subject, err := engine.ParseScope(scope)
		if err != nil {
			return err
		}

		eng, err := openEngine(cmd)
		if err != nil {
			return fmt.Errorf("open engine: %w", err)
		}
		defer eng.Close()

		res, err := eng.SelectPracticeSet(cmd.Context(), subject, count, time.Now())
		if err != nil {
			return err
		}

		label := scope
		if label == "" {
			label = "mixed"
		}
		fmt.Println(report.PracticeSet(label, res.ConceptIDs, res.Shortfall))
		return nil
	},
}

func init() {
	practiceCmd.Flags().StringP("subject", "s", "", "Subject scope (empty = mixed across subjects)")
	practiceCmd.Flags().IntP("count", "n", 10, "Number of concepts to select")
}
