package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/chris-regnier/timectl/internal/clock"
)

// FormatJSON writes any value as JSON to the writer.
func FormatJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// FormatCurrentTime writes the current time as plain text.
func FormatCurrentTime(w io.Writer, ct clock.CurrentTime) {
	fmt.Fprintf(w, "%s  %s  (%d)\n", ct.Formatted, ct.Zone, ct.Timestamp)
}

// FormatCurrentTimeStyled writes the current time with theme styling.
func FormatCurrentTimeStyled(w io.Writer, ct clock.CurrentTime, theme Theme) {
	fmt.Fprintf(w, "%s  %s\n",
		theme.Value.Render(ct.Formatted),
		theme.Muted.Render(fmt.Sprintf("%s (%d)", ct.Zone, ct.Timestamp)),
	)
}

// FormatBreakdown writes a duration breakdown, one unit per line.
func FormatBreakdown(w io.Writer, b clock.Breakdown) {
	fmt.Fprintf(w, "difference: %d seconds\n", b.Duration)
	fmt.Fprintf(w, "  years:   %g\n", b.Years)
	fmt.Fprintf(w, "  months:  %g\n", b.Months)
	fmt.Fprintf(w, "  days:    %g\n", b.Days)
	fmt.Fprintf(w, "  hours:   %g\n", b.Hours)
	fmt.Fprintf(w, "  minutes: %g\n", b.Minutes)
	fmt.Fprintf(w, "  seconds: %g\n", b.Seconds)
}

// FormatWeek writes the seven days of a week as a table. The day containing
// reference is highlighted when styled output is requested.
func FormatWeek(w io.Writer, week []clock.WeekDay, reference int64, theme Theme, styled bool) {
	for i, d := range week {
		isToday := reference >= d.Timestamp &&
			(i == len(week)-1 || reference < week[i+1].Timestamp)

		line := fmt.Sprintf("%-10s %s  %d", d.Name, d.Formatted, d.Timestamp)
		switch {
		case styled && isToday:
			line = theme.Today.Render(line)
		case styled:
			line = theme.Value.Render(line)
		}
		fmt.Fprintln(w, line)
	}
}

// FormatOccurrence writes a next-occurrence result.
func FormatOccurrence(w io.Writer, target, zone string, occ clock.Occurrence) {
	fmt.Fprintf(w, "next %s: %s (%s)\n", target, occ.Formatted, zone)
	fmt.Fprintf(w, "in %d seconds\n", occ.Remaining)
}

// FormatTargets writes batch target resolutions sorted by name, with
// per-entry errors inline.
func FormatTargets(w io.Writer, zone string, results map[string]clock.TargetResolution) {
	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintf(w, "timezone: %s\n", zone)
	for _, name := range names {
		res := results[name]
		if res.Err != nil {
			fmt.Fprintf(w, "%s: error: %v\n", name, res.Err)
			continue
		}
		fmt.Fprintf(w, "%s: %s in %d seconds\n", name, res.Formatted, res.Remaining)
	}
}
