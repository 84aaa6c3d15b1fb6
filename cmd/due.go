package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/barristerapp/barrister/internal/engine"
	"github.com/barristerapp/barrister/internal/ui/report"
)

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "List cards due for review",
	RunE: func(cmd *cobra.Command, args []string) error {
		scope, _ := cmd.Flags().GetString("subject")
		limit, _ := cmd.Flags().GetInt("limit")

		subject, err := engine.ParseScope(scope)
		if err != nil {
			return err
		}

		eng, err := openEngine(cmd)
		if err != nil {
			return fmt.Errorf("open engine: %w", err)
		}
		defer eng.Close()

		dueCards, err := eng.GetDueCards(cmd.Context(), subject, limit, time.Now())
		if err != nil {
			return err
		}

		fmt.Println(report.DueCards(dueCards))
		return nil
	},
}

func init() {
	dueCmd.Flags().StringP("subject", "s", "", "Subject scope (e.g. torts, evidence; empty = all)")
	dueCmd.Flags().IntP("limit", "n", 20, "Maximum cards to list (0 = no limit)")
}
