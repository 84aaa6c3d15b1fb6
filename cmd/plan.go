package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/barristerapp/barrister/internal/engine"
	"github.com/barristerapp/barrister/internal/llm"
	"github.com/barristerapp/barrister/internal/studyplan"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate an AI study plan from your current statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		scope, _ := cmd.Flags().GetString("subject")
		days, _ := cmd.Flags().GetInt("days")

		subject, err := engine.ParseScope(scope)
		if err != nil {
			return err
		}

		eng, err := openEngine(cmd)
		if err != nil {
			return fmt.Errorf("open engine: %w", err)
		}
		defer eng.Close()

		ctx := cmd.Context()
		now := time.Now()

		stats, err := eng.Statistics(ctx, subject, 0, now)
		if err != nil {
			return err
		}
		weakTopics, err := eng.WeakTopics(ctx, subject, 0.7, 3, 30*24*time.Hour, now)
		if err != nil {
			return err
		}

		provider, err := llm.NewProvider(ctx, llm.ConfigFromEnv(), eng.Store())
		if err != nil {
			return fmt.Errorf("configure LLM provider: %w", err)
		}

		svc := studyplan.NewService(provider)
		plan, err := svc.GeneratePlan(ctx, studyplan.PlanInput{
			Subject:       subject,
			Accuracy:      stats.Accuracy,
			AccuracyKnown: stats.AccuracyKnown,
			TotalReviews:  stats.TotalReviews,
			DueCount:      stats.DueCount,
			WeakTopics:    weakTopics,
			DaysAvailable: days,
		})
		if err != nil {
			return fmt.Errorf("generate plan: %w", err)
		}

		fmt.Println(plan)
		return nil
	},
}

func init() {
	planCmd.Flags().StringP("subject", "s", "", "Subject scope (empty = all subjects)")
	planCmd.Flags().IntP("days", "d", 7, "Days available to study")
}
