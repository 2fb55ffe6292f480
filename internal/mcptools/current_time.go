package mcptools

import (
	"context"

	"github.com/chris-regnier/timectl/internal/clock"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// CurrentTimeHandler returns the handler function for the get_current_time MCP tool.
func CurrentTimeHandler(clk *clock.Clock) func(ctx context.Context, req *mcp.CallToolRequest, input CurrentTimeInput) (*mcp.CallToolResult, CurrentTimeOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input CurrentTimeInput) (*mcp.CallToolResult, CurrentTimeOutput, error) {
		loc := resolveZone(input.Timezone)
		ct := clk.Now(loc)

		return nil, CurrentTimeOutput{
			Timestamp:   ct.Timestamp,
			Timezone:    ct.Zone,
			CurrentTime: ct.Formatted,
		}, nil
	}
}
