package cmd

import (
	"fmt"
	"os"

	"github.com/chris-regnier/timectl/internal/clock"
	"github.com/chris-regnier/timectl/internal/config"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	cfgFile    string
	jsonOutput bool
	timezone   string
	appConfig  *config.Config
	clk        = clock.New()
)

var rootCmd = &cobra.Command{
	Use:   "timectl",
	Short: "A time and timezone utility toolbox",
	Long: "timectl answers time and timezone questions from the command line and " +
		"exposes the same operations as MCP tools for LLM clients.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load config
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		appConfig = cfg

		// --timezone beats the configured default
		if timezone == "" {
			timezone = appConfig.DefaultTimezone
		}

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Bare invocation prints the current time
		return nowRun(os.Stdout, term.IsTerminal(int(os.Stdout.Fd())))
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().StringVar(&timezone, "timezone", "", "IANA timezone name (default from config)")

	// Silence Cobra's built-in error and usage printing so we control stderr output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}
