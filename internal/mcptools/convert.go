package mcptools

import (
	"context"

	"github.com/chris-regnier/timectl/internal/clock"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// TimestampToTimeHandler returns the handler function for the
// convert_timestamp_to_time MCP tool.
func TimestampToTimeHandler() func(ctx context.Context, req *mcp.CallToolRequest, input TimestampToTimeInput) (*mcp.CallToolResult, TimestampToTimeOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input TimestampToTimeInput) (*mcp.CallToolResult, TimestampToTimeOutput, error) {
		loc := resolveZone(input.Timezone)

		ts, err := clock.CoerceInt64("timestamp", input.Timestamp)
		if err != nil {
			return nil, TimestampToTimeOutput{}, err
		}

		return nil, TimestampToTimeOutput{
			Timezone: loc.String(),
			Time:     clock.FormatTimestamp(ts, loc),
		}, nil
	}
}

// TimeToTimestampHandler returns the handler function for the
// convert_time_to_timestamp MCP tool.
func TimeToTimestampHandler() func(ctx context.Context, req *mcp.CallToolRequest, input TimeToTimestampInput) (*mcp.CallToolResult, TimeToTimestampOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input TimeToTimestampInput) (*mcp.CallToolResult, TimeToTimestampOutput, error) {
		loc := resolveZone(input.Timezone)

		ts, err := clock.ParseTime(input.Time, loc)
		if err != nil {
			return nil, TimeToTimestampOutput{}, err
		}

		return nil, TimeToTimestampOutput{
			Timezone:  loc.String(),
			Timestamp: ts,
		}, nil
	}
}
