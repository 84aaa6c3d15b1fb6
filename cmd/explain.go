package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/barristerapp/barrister/internal/llm"
	"github.com/barristerapp/barrister/internal/store"
	"github.com/barristerapp/barrister/internal/studyplan"
)

var explainCmd = &cobra.Command{
	Use:   "explain <concept-id>",
	Short: "Ask the AI tutor to explain a concept in depth",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := openEngine(cmd)
		if err != nil {
			return fmt.Errorf("open engine: %w", err)
		}
		defer eng.Close()

		ctx := cmd.Context()
		concept, err := eng.Store().GetConcept(ctx, args[0])
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("concept %q not found", args[0])
			}
			return err
		}

		provider, err := llm.NewProvider(ctx, llm.ConfigFromEnv(), eng.Store())
		if err != nil {
			return fmt.Errorf("configure LLM provider: %w", err)
		}

		svc := studyplan.NewService(provider)
		text, err := svc.ExplainConcept(ctx, concept)
		if err != nil {
			return fmt.Errorf("explain concept: %w", err)
		}

		fmt.Println(text)
		return nil
	},
}
