// Package clock implements the calendar arithmetic behind timectl's tools:
// timezone-aware conversion between timestamps and formatted strings, duration
// decomposition, and next-occurrence searches. Every operation is a pure
// computation over its inputs apart from reading the injected clock.
package clock

import "time"

// TimeLayout is the fixed textual format used by every operation.
const TimeLayout = "2006-01-02 15:04:05"

// DefaultTimezone is substituted whenever a timezone name is absent or unknown.
const DefaultTimezone = "Asia/Shanghai"

// Second counts per unit. Month and year are calendar averages
// (30.4375 and 365.25 days).
const (
	SecondsPerMinute int64 = 60
	SecondsPerHour   int64 = 3600
	SecondsPerDay    int64 = 86400
	SecondsPerMonth  int64 = 2629800
	SecondsPerYear   int64 = 31557600
)

// Clock evaluates the operations that depend on the current instant.
type Clock struct {
	now func() time.Time // injectable for testing
}

// New returns a Clock backed by the system clock.
func New() *Clock {
	return &Clock{now: time.Now}
}

// NewFrom returns a Clock that reads the current instant from now.
func NewFrom(now func() time.Time) *Clock {
	return &Clock{now: now}
}

// CurrentTime is the result of Now.
type CurrentTime struct {
	Timestamp int64
	Zone      string
	Formatted string
}

// Now captures the current instant in UTC and renders it in loc.
func (c *Clock) Now(loc *time.Location) CurrentTime {
	local := c.now().UTC().In(loc)
	return CurrentTime{
		Timestamp: local.Unix(),
		Zone:      loc.String(),
		Formatted: local.Format(TimeLayout),
	}
}

// FormatTimestamp renders the epoch-seconds timestamp in loc.
func FormatTimestamp(ts int64, loc *time.Location) string {
	return time.Unix(ts, 0).In(loc).Format(TimeLayout)
}

// ParseTime interprets s, which must match TimeLayout exactly, as wall-clock
// fields already in loc and returns the epoch seconds. No conversion is
// applied beyond attaching the zone.
func ParseTime(s string, loc *time.Location) (int64, error) {
	t, err := time.ParseInLocation(TimeLayout, s, loc)
	if err != nil {
		return 0, &FormatMismatchError{Value: s}
	}
	return t.Unix(), nil
}

// Difference returns end - start in seconds.
func Difference(start, end int64) int64 {
	return end - start
}
