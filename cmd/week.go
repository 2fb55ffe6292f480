package cmd

import (
	"io"
	"os"

	"github.com/chris-regnier/timectl/internal/clock"
	"github.com/chris-regnier/timectl/internal/mcptools"
	"github.com/chris-regnier/timectl/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var weekCmd = &cobra.Command{
	Use:   "week [timestamp]",
	Short: "Show the weekday timestamps of the week containing a timestamp",
	Long: `Show the zone-local midnight of every day, Monday through Sunday, of
the week containing the given timestamp (or now, when omitted).`,
	Example: `  timectl week
  timectl week 1700000000 --timezone UTC
  timectl week --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		arg := ""
		if len(args) == 1 {
			arg = args[0]
		}
		return weekRun(os.Stdout, arg, term.IsTerminal(int(os.Stdout.Fd())))
	},
}

func weekRun(w io.Writer, arg string, styled bool) error {
	loc := resolveZone()

	var ts int64
	if arg == "" {
		ts = clk.Now(loc).Timestamp
	} else {
		var err error
		ts, err = clock.CoerceInt64("timestamp", arg)
		if err != nil {
			return err
		}
	}

	week := clock.WeekTimestamps(ts, loc)

	if jsonOutput {
		entries := make(map[string]mcptools.WeekDayEntry, len(week))
		for _, d := range week {
			entries[d.Name] = mcptools.WeekDayEntry{Timestamp: d.Timestamp, Date: d.Formatted}
		}
		return ui.FormatJSON(w, mcptools.WeekTimestampsOutput{
			ReferenceTimestamp: ts,
			Timezone:           loc.String(),
			WeekTimestamps:     entries,
		})
	}

	ui.FormatWeek(w, week, ts, ui.ResolveTheme(appConfig.Theme), styled)
	return nil
}

func init() {
	rootCmd.AddCommand(weekCmd)
}
