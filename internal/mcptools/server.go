package mcptools

import (
	"context"

	"github.com/chris-regnier/timectl/internal/clock"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewTimeMCPServer creates an in-memory MCP server exposing the time tools.
// Returns the server and a client transport for connecting to it.
func NewTimeMCPServer(clk *clock.Clock) (*mcp.Server, mcp.Transport) {
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	server := CreateMCPServer(clk)

	go func() {
		_, _ = server.Connect(context.Background(), serverTransport, nil)
	}()

	return server, clientTransport
}

// CreateMCPServer creates an MCP server with the time tools registered.
func CreateMCPServer(clk *clock.Clock) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "timectl",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_current_time",
		Description: "Get the current time in the specified timezone",
	}, CurrentTimeHandler(clk))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert_timestamp_to_time",
		Description: "Convert a Unix timestamp to a formatted time string in the specified timezone",
	}, TimestampToTimeHandler())

	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert_time_to_timestamp",
		Description: "Convert a formatted time string (YYYY-MM-DD HH:MM:SS) to a Unix timestamp in the specified timezone",
	}, TimeToTimestampHandler())

	mcp.AddTool(server, &mcp.Tool{
		Name:        "time_difference",
		Description: "Calculate the difference in seconds between two Unix timestamps",
	}, TimeDifferenceHandler())

	mcp.AddTool(server, &mcp.Tool{
		Name:        "time_difference_caculate",
		Description: "Break a time difference in seconds down into years, months, days, hours, minutes and seconds",
	}, DecomposeHandler())

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_day_of_week",
		Description: "Get the day of the week of a Unix timestamp in the specified timezone",
	}, DayOfWeekHandler())

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_weekday_timestamps_for_week",
		Description: "Get the midnight timestamp of every weekday (Monday through Sunday) in the week containing a timestamp",
	}, WeekTimestampsHandler())

	mcp.AddTool(server, &mcp.Tool{
		Name:        "time_until_next_date",
		Description: "Calculate the time remaining until the next occurrence of a weekday or day of the month",
	}, NextDateHandler(clk))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "calculate_time_until_targets",
		Description: "Resolve a JSON object of named targets (timestamps or 'next <weekday>' expressions) to remaining times, isolating per-entry failures",
	}, TargetsHandler(clk))

	return server
}
