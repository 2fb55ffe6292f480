package mcptools

import (
	"context"
	"fmt"

	"github.com/chris-regnier/timectl/internal/clock"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NextDateHandler returns the handler function for the time_until_next_date MCP tool.
func NextDateHandler(clk *clock.Clock) func(ctx context.Context, req *mcp.CallToolRequest, input NextDateInput) (*mcp.CallToolResult, NextDateOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input NextDateInput) (*mcp.CallToolResult, NextDateOutput, error) {
		loc := resolveZone(input.Timezone)

		target, err := clock.ParseNextTarget(input.Target)
		if err != nil {
			return nil, NextDateOutput{}, err
		}

		occ := clk.NextOccurrence(target, loc)

		return nil, NextDateOutput{
			TargetDay:            fmt.Sprint(input.Target),
			Timezone:             loc.String(),
			NextOccurrenceTime:   occ.Formatted,
			TimeRemainingSeconds: occ.Remaining,
		}, nil
	}
}
