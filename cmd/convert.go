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

var convertFromTime bool

var convertCmd = &cobra.Command{
	Use:   "convert <value>",
	Short: "Convert between Unix timestamps and formatted time strings",
	Long: `Convert a Unix timestamp to a formatted time string in the active
timezone, or (with --from-time) a formatted time string back to a Unix
timestamp. The fixed format is YYYY-MM-DD HH:MM:SS.`,
	Example: `  timectl convert 1700000000
  timectl convert --from-time "2023-11-15 06:13:20" --timezone Asia/Shanghai`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return convertRun(os.Stdout, args[0], convertFromTime)
	},
}

func convertRun(w io.Writer, value string, fromTime bool) error {
	loc := resolveZone()

	if fromTime {
		ts, err := clock.ParseTime(value, loc)
		if err != nil {
			return err
		}
		if jsonOutput {
			return ui.FormatJSON(w, mcptools.TimeToTimestampOutput{
				Timezone:  loc.String(),
				Timestamp: ts,
			})
		}
		fmt.Fprintln(w, ts)
		return nil
	}

	ts, err := clock.CoerceInt64("timestamp", value)
	if err != nil {
		return err
	}
	formatted := clock.FormatTimestamp(ts, loc)
	if jsonOutput {
		return ui.FormatJSON(w, mcptools.TimestampToTimeOutput{
			Timezone: loc.String(),
			Time:     formatted,
		})
	}
	fmt.Fprintln(w, formatted)
	return nil
}

func init() {
	convertCmd.Flags().BoolVar(&convertFromTime, "from-time", false, "Treat the value as a formatted time string")
	rootCmd.AddCommand(convertCmd)
}
