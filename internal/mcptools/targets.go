package mcptools

import (
	"context"

	"github.com/chris-regnier/timectl/internal/clock"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// TargetsHandler returns the handler function for the
// calculate_time_until_targets MCP tool. A malformed targets document fails
// the call; a malformed entry only fails that entry.
func TargetsHandler(clk *clock.Clock) func(ctx context.Context, req *mcp.CallToolRequest, input TargetsInput) (*mcp.CallToolResult, TargetsOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input TargetsInput) (*mcp.CallToolResult, TargetsOutput, error) {
		loc := resolveZone(input.Timezone)

		resolutions, err := clk.ResolveTargets(input.Targets, loc)
		if err != nil {
			return nil, TargetsOutput{}, err
		}

		results := make(map[string]TargetEntry, len(resolutions))
		for name, res := range resolutions {
			results[name] = NewTargetEntry(res)
		}

		return nil, TargetsOutput{
			Timezone: loc.String(),
			Results:  results,
		}, nil
	}
}

// NewTargetEntry converts a core target resolution into its wire shape.
func NewTargetEntry(res clock.TargetResolution) TargetEntry {
	if res.Err != nil {
		return TargetEntry{Error: res.Err.Error()}
	}

	remaining := res.Remaining
	entry := TargetEntry{
		Target:               res.Target,
		TimeRemainingSeconds: &remaining,
	}
	if res.Relative {
		entry.NextOccurrenceTime = res.Formatted
	} else {
		entry.TargetTime = res.Formatted
	}
	return entry
}
