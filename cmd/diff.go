package cmd

import (
	"io"
	"os"

	"github.com/chris-regnier/timectl/internal/clock"
	"github.com/chris-regnier/timectl/internal/mcptools"
	"github.com/chris-regnier/timectl/internal/ui"
	"github.com/spf13/cobra"
)

var diffMode string

var diffCmd = &cobra.Command{
	Use:   "diff <start-timestamp> <end-timestamp>",
	Short: "Calculate and break down the difference between two timestamps",
	Long: `Calculate end - start in seconds and break it down into calendar
units. Progressive mode ('p') partitions the duration from years down to
seconds; separate mode ('s') converts the whole duration into each unit
independently.`,
	Example: `  timectl diff 1700000000 1700090061
  timectl diff 1700000000 1700090061 --mode s`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return diffRun(os.Stdout, args[0], args[1], diffMode)
	},
}

func diffRun(w io.Writer, start, end, mode string) error {
	s, err := clock.CoerceInt64("start_timestamp", start)
	if err != nil {
		return err
	}
	e, err := clock.CoerceInt64("end_timestamp", end)
	if err != nil {
		return err
	}

	if mode == "" {
		mode = appConfig.DefaultMode
	}
	b := clock.Decompose(clock.Difference(s, e), resolveMode(mode))

	if jsonOutput {
		return ui.FormatJSON(w, mcptools.DecomposeOutput{
			TimeDifference: b.Duration,
			Years:          b.Years,
			Months:         b.Months,
			Days:           b.Days,
			Hours:          b.Hours,
			Minutes:        b.Minutes,
			Seconds:        b.Seconds,
		})
	}
	ui.FormatBreakdown(w, b)
	return nil
}

func init() {
	diffCmd.Flags().StringVar(&diffMode, "mode", "", "decomposition mode: p (progressive) or s (separate)")
	rootCmd.AddCommand(diffCmd)
}
