package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/barristerapp/barrister/internal/spacedrep"
)

var reviewCmd = &cobra.Command{
	Use:   "review <card-id> <quality>",
	Short: "Record a review outcome (quality 1-5; below 3 counts as a lapse)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		q, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid quality %q: %w", args[1], err)
		}

		eng, err := openEngine(cmd)
		if err != nil {
			return fmt.Errorf("open engine: %w", err)
		}
		defer eng.Close()

		rec, err := eng.Review(cmd.Context(), args[0], spacedrep.Quality(q), time.Now())
		if err != nil {
			return err
		}

		fmt.Printf("Recorded. Next due %s (interval %dd, ease %.2f, reps %d)\n",
			rec.DueDate.Local().Format("2006-01-02"),
			rec.IntervalDays, rec.EaseFactor, rec.Repetitions)
		return nil
	},
}
