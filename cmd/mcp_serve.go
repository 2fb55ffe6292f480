package cmd

import (
	"context"
	"log"
	"os"

	"github.com/chris-regnier/timectl/internal/mcptools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

var mcpServeCmd = &cobra.Command{
	Use:   "mcp-serve",
	Short: "Run MCP server on stdio",
	Long: `Starts a Model Context Protocol (MCP) server that exposes the time
tools over stdio transport. This allows MCP clients like Claude Desktop to
ask time and timezone questions.

Available tools:
  - get_current_time: Current time in a timezone
  - convert_timestamp_to_time: Unix timestamp to formatted time string
  - convert_time_to_timestamp: Formatted time string to Unix timestamp
  - time_difference: Difference in seconds between two timestamps
  - time_difference_caculate: Break a difference down into calendar units
  - get_day_of_week: Weekday of a timestamp
  - get_weekday_timestamps_for_week: Midnights of the containing week
  - time_until_next_date: Time until a weekday or day of the month
  - calculate_time_until_targets: Batch-resolve named time targets

Example usage in Claude Desktop config:
  {
    "mcpServers": {
      "timectl": {
        "command": "/path/to/timectl",
        "args": ["mcp-serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	rootCmd.AddCommand(mcpServeCmd)
}

func runMCPServe(cmd *cobra.Command, args []string) error {
	// Create MCP server with registered tools
	server := mcptools.CreateMCPServer(clk)

	// Log to stderr (stdout is reserved for MCP protocol)
	log.SetOutput(os.Stderr)
	log.Printf("Starting timectl MCP server (stdio transport)")
	log.Printf("Default timezone: %s", appConfig.DefaultTimezone)

	// Run server with stdio transport
	// This blocks until the transport is closed
	return server.Run(context.Background(), &mcp.StdioTransport{})
}
