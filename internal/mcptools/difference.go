package mcptools

import (
	"context"

	"github.com/chris-regnier/timectl/internal/clock"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// TimeDifferenceHandler returns the handler function for the time_difference MCP tool.
func TimeDifferenceHandler() func(ctx context.Context, req *mcp.CallToolRequest, input TimeDifferenceInput) (*mcp.CallToolResult, TimeDifferenceOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input TimeDifferenceInput) (*mcp.CallToolResult, TimeDifferenceOutput, error) {
		start, err := clock.CoerceInt64("start_timestamp", input.StartTimestamp)
		if err != nil {
			return nil, TimeDifferenceOutput{}, err
		}
		end, err := clock.CoerceInt64("end_timestamp", input.EndTimestamp)
		if err != nil {
			return nil, TimeDifferenceOutput{}, err
		}

		return nil, TimeDifferenceOutput{
			TimeDifference: clock.Difference(start, end),
		}, nil
	}
}

// DecomposeHandler returns the handler function for the
// time_difference_caculate MCP tool. The tool name keeps its original
// published spelling.
func DecomposeHandler() func(ctx context.Context, req *mcp.CallToolRequest, input DecomposeInput) (*mcp.CallToolResult, DecomposeOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input DecomposeInput) (*mcp.CallToolResult, DecomposeOutput, error) {
		d, err := clock.CoerceInt64("time_difference", input.TimeDifference)
		if err != nil {
			return nil, DecomposeOutput{}, err
		}

		b := clock.Decompose(d, resolveMode(input.Mode))

		return nil, DecomposeOutput{
			TimeDifference: b.Duration,
			Years:          b.Years,
			Months:         b.Months,
			Days:           b.Days,
			Hours:          b.Hours,
			Minutes:        b.Minutes,
			Seconds:        b.Seconds,
		}, nil
	}
}
