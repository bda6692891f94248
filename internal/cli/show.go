package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"daily-planner/internal/schedule"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the stored schedule and its timeline",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	return withPlanner(cmd, func(ctx context.Context, uc schedule.UseCase) error {
		out, err := uc.Current(ctx)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintln(w, dimStyle.Render("Phase: "+string(out.Phase)))
		printSchedule(w, out.State.FinalSchedule, out.Range, out.Rows)
		return nil
	})
}
