package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/chris-regnier/timectl/internal/clock"
	"github.com/chris-regnier/timectl/internal/mcptools"
	"github.com/chris-regnier/timectl/internal/ui"
	"github.com/spf13/cobra"
)

var untilTargets string

var untilCmd = &cobra.Command{
	Use:   "until [target]",
	Short: "Time remaining until a weekday, day of the month, or named targets",
	Long: `Calculate the time remaining until the next occurrence of a weekday
name or a day of the month (1-31), always at the target's midnight in the
active timezone.

With --targets, resolve a JSON object mapping names to targets instead. Each
value is a Unix timestamp or a 'next <weekday>' expression; a malformed entry
reports an error under its name without failing the others.`,
	Example: `  timectl until friday
  timectl until 31
  timectl until --targets '{"release":"1735689600","standup":"next monday"}'`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if untilTargets != "" {
			return targetsRun(os.Stdout, untilTargets)
		}
		if len(args) != 1 {
			return fmt.Errorf("requires a target argument or --targets")
		}
		return untilRun(os.Stdout, args[0])
	},
}

func untilRun(w io.Writer, target string) error {
	loc := resolveZone()

	t, err := clock.ParseNextTarget(target)
	if err != nil {
		return err
	}
	occ := clk.NextOccurrence(t, loc)

	if jsonOutput {
		return ui.FormatJSON(w, mcptools.NextDateOutput{
			TargetDay:            target,
			Timezone:             loc.String(),
			NextOccurrenceTime:   occ.Formatted,
			TimeRemainingSeconds: occ.Remaining,
		})
	}
	ui.FormatOccurrence(w, target, loc.String(), occ)
	return nil
}

func targetsRun(w io.Writer, raw string) error {
	loc := resolveZone()

	resolutions, err := clk.ResolveTargets(raw, loc)
	if err != nil {
		return err
	}

	if jsonOutput {
		results := make(map[string]mcptools.TargetEntry, len(resolutions))
		for name, res := range resolutions {
			results[name] = mcptools.NewTargetEntry(res)
		}
		return ui.FormatJSON(w, mcptools.TargetsOutput{
			Timezone: loc.String(),
			Results:  results,
		})
	}
	ui.FormatTargets(w, loc.String(), resolutions)
	return nil
}

func init() {
	untilCmd.Flags().StringVar(&untilTargets, "targets", "", "JSON object mapping names to targets")
	rootCmd.AddCommand(untilCmd)
}
