package cmd

import (
	"io"
	"os"

	"github.com/chris-regnier/timectl/internal/mcptools"
	"github.com/chris-regnier/timectl/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var nowCmd = &cobra.Command{
	Use:   "now",
	Short: "Print the current time",
	Example: `  timectl now
  timectl now --timezone America/New_York
  timectl now --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return nowRun(os.Stdout, term.IsTerminal(int(os.Stdout.Fd())))
	},
}

func nowRun(w io.Writer, styled bool) error {
	ct := clk.Now(resolveZone())

	if jsonOutput {
		return ui.FormatJSON(w, mcptools.CurrentTimeOutput{
			Timestamp:   ct.Timestamp,
			Timezone:    ct.Zone,
			CurrentTime: ct.Formatted,
		})
	}

	if styled {
		ui.FormatCurrentTimeStyled(w, ct, ui.ResolveTheme(appConfig.Theme))
		return nil
	}
	ui.FormatCurrentTime(w, ct)
	return nil
}

func init() {
	rootCmd.AddCommand(nowCmd)
}
