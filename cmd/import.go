package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/barristerapp/barrister/internal/conceptgraph"
)

var importCmd = &cobra.Command{
	Use:   "import <bank.json> [bank.json...]",
	Short: "Import concept bank files and generate cards",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := openEngine(cmd)
		if err != nil {
			return fmt.Errorf("open engine: %w", err)
		}
		defer eng.Close()

		ctx := cmd.Context()
		for _, path := range args {
			raws, err := conceptgraph.LoadBank(path)
			if err != nil {
				return fmt.Errorf("load %s: %w", path, err)
			}

			res, err := eng.ImportConcepts(ctx, raws)
			if err != nil {
				return fmt.Errorf("import %s: %w", path, err)
			}

			fmt.Printf("%s: %d concept(s) imported, %d new card(s)\n",
				path, res.ConceptsImported, res.Created)
			for _, sk := range res.Skipped {
				fmt.Printf("  skipped %s: %s\n", sk.ConceptID, sk.Reason)
			}
		}
		return nil
	},
}
