package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"daily-planner/internal/schedule"
	"daily-planner/pkg/chart"
	"daily-planner/pkg/timerange"
)

var (
	planText  string
	planAudio string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Submit a day plan as text or audio",
	Long: `Submit a day plan. The first submission is stored, the second replaces it
and locks the schedule. Audio wins when both --audio and --text are given.`,
	Example: `  planner plan --text "gym at 7, deep work until lunch, errands after"
  planner plan --audio morning.wav`,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVarP(&planText, "text", "t", "", "Typed plan")
	planCmd.Flags().StringVarP(&planAudio, "audio", "a", "", "Path to a recorded plan")
}

func runPlan(cmd *cobra.Command, args []string) error {
	return withPlanner(cmd, func(ctx context.Context, uc schedule.UseCase) error {
		out, err := uc.Submit(ctx, schedule.SubmitInput{AudioPath: planAudio, Text: planText})
		if err != nil {
			if errors.Is(err, schedule.ErrScheduleLocked) {
				fmt.Fprintln(cmd.OutOrStdout(), "Time range:", timerange.NotAvailable)
			}
			return err
		}

		w := cmd.OutOrStdout()
		if out.Transcription != "" {
			fmt.Fprintln(w, titleStyle.Render("Transcription"))
			fmt.Fprintln(w, out.Transcription)
			fmt.Fprintln(w)
		}
		printSchedule(w, out.Schedule, out.Range, out.Rows)

		style := okStyle
		if out.Status == schedule.StatusFinalEdit {
			style = warnStyle
		}
		fmt.Fprintln(w, style.Render(out.Message))
		return nil
	})
}

// printSchedule writes the schedule text, its range and the terminal timeline.
func printSchedule(w io.Writer, text string, r timerange.Range, rows []timerange.Line) {
	fmt.Fprintln(w, titleStyle.Render("Schedule"))
	if text == "" {
		fmt.Fprintln(w, dimStyle.Render("(none)"))
	} else {
		fmt.Fprintln(w, text)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Time range:", timerange.FormatRange(r))
	fmt.Fprintln(w)
	fmt.Fprintln(w, chart.RenderTerminal(chart.Build(rows), chart.DefaultTerminalWidth))
}
