package mcptools

import (
	"context"

	"github.com/chris-regnier/timectl/internal/clock"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// DayOfWeekHandler returns the handler function for the get_day_of_week MCP
// tool. The weekday is read in the resolved timezone, so results near local
// midnight differ between zones; pass "UTC" for a zone-independent reading.
func DayOfWeekHandler() func(ctx context.Context, req *mcp.CallToolRequest, input DayOfWeekInput) (*mcp.CallToolResult, DayOfWeekOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input DayOfWeekInput) (*mcp.CallToolResult, DayOfWeekOutput, error) {
		loc := resolveZone(input.Timezone)

		ts, err := clock.CoerceInt64("timestamp", input.Timestamp)
		if err != nil {
			return nil, DayOfWeekOutput{}, err
		}

		return nil, DayOfWeekOutput{
			Timestamp: ts,
			Timezone:  loc.String(),
			DayOfWeek: clock.DayOfWeek(ts, loc),
		}, nil
	}
}

// WeekTimestampsHandler returns the handler function for the
// get_weekday_timestamps_for_week MCP tool.
func WeekTimestampsHandler() func(ctx context.Context, req *mcp.CallToolRequest, input WeekTimestampsInput) (*mcp.CallToolResult, WeekTimestampsOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input WeekTimestampsInput) (*mcp.CallToolResult, WeekTimestampsOutput, error) {
		loc := resolveZone(input.Timezone)

		ts, err := clock.CoerceInt64("timestamp", input.Timestamp)
		if err != nil {
			return nil, WeekTimestampsOutput{}, err
		}

		week := clock.WeekTimestamps(ts, loc)
		entries := make(map[string]WeekDayEntry, len(week))
		for _, d := range week {
			entries[d.Name] = WeekDayEntry{
				Timestamp: d.Timestamp,
				Date:      d.Formatted,
			}
		}

		return nil, WeekTimestampsOutput{
			ReferenceTimestamp: ts,
			Timezone:           loc.String(),
			WeekTimestamps:     entries,
		}, nil
	}
}
