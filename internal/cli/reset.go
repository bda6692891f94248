package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"daily-planner/internal/schedule"
)

var resetCmd = &cobra.Command{
	Use:   "reset <password>",
	Short: "Developer reset: clear the schedule and its lock",
	Args:  cobra.ExactArgs(1),
	RunE:  runReset,
}

func runReset(cmd *cobra.Command, args []string) error {
	return withPlanner(cmd, func(ctx context.Context, uc schedule.UseCase) error {
		if err := uc.Reset(ctx, args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render(schedule.MessageResetOK))
		return nil
	})
}
