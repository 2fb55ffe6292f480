package clock

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const nextPrefix = "next "

// TargetResolution is the per-entry outcome of ResolveTargets. Err is set for
// a malformed entry; otherwise Formatted and Remaining describe the resolved
// target, with Relative marking entries resolved from a "next <weekday>"
// expression.
type TargetResolution struct {
	Target    string
	Formatted string
	Remaining int64
	Relative  bool
	Err       error
}

// ResolveTargets parses raw as a JSON object mapping names to target specs
// and resolves every entry against the current instant in loc. A target spec
// is either a Unix timestamp (number or decimal string) or a
// "next <weekday>" expression. A document that is not a JSON object fails the
// call; a malformed entry only fails that entry, carried in its resolution's
// Err.
func (c *Clock) ResolveTargets(raw string, loc *time.Location) (map[string]TargetResolution, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var specs map[string]any
	if err := dec.Decode(&specs); err != nil {
		return nil, &InvalidArgumentError{Field: "targets", Value: raw}
	}

	now := c.now().In(loc)
	results := make(map[string]TargetResolution, len(specs))
	for name, spec := range specs {
		results[name] = c.resolveTarget(spec, now, loc)
	}
	return results, nil
}

func (c *Clock) resolveTarget(spec any, now time.Time, loc *time.Location) TargetResolution {
	if s, ok := spec.(string); ok {
		if rest, ok := cutNext(s); ok {
			wd, ok := ParseWeekday(rest)
			if !ok {
				return TargetResolution{
					Target: s,
					Err:    &InvalidArgumentError{Field: "target", Value: s},
				}
			}
			occ := c.NextOccurrence(WeekdayTarget(wd), loc)
			return TargetResolution{
				Target:    s,
				Formatted: occ.Formatted,
				Remaining: occ.Remaining,
				Relative:  true,
			}
		}
	}

	ts, err := CoerceInt64("target", spec)
	if err != nil {
		return TargetResolution{Target: fmt.Sprint(spec), Err: err}
	}
	return TargetResolution{
		Target:    fmt.Sprint(spec),
		Formatted: FormatTimestamp(ts, loc),
		Remaining: ts - now.Unix(),
	}
}

// cutNext splits off the "next " prefix of a relative weekday expression,
// case-insensitively.
func cutNext(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) > len(nextPrefix) && strings.EqualFold(trimmed[:len(nextPrefix)], nextPrefix) {
		return trimmed[len(nextPrefix):], true
	}
	return "", false
}
