package clock

import (
	"errors"
	"testing"
	"time"
)

func fixedClock(t time.Time) *Clock {
	return NewFrom(func() time.Time { return t })
}

func mustZone(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("loading zone %s: %v", name, err)
	}
	return loc
}

func TestNow(t *testing.T) {
	// 2023-11-14 22:13:20 UTC
	c := fixedClock(time.Unix(1700000000, 0))
	shanghai := mustZone(t, "Asia/Shanghai")

	got := c.Now(shanghai)
	if got.Timestamp != 1700000000 {
		t.Errorf("timestamp = %d, want 1700000000", got.Timestamp)
	}
	if got.Zone != "Asia/Shanghai" {
		t.Errorf("zone = %q", got.Zone)
	}
	if got.Formatted != "2023-11-15 06:13:20" {
		t.Errorf("formatted = %q, want 2023-11-15 06:13:20", got.Formatted)
	}
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		ts   int64
		zone string
		want string
	}{
		{1700000000, "UTC", "2023-11-14 22:13:20"},
		{1700000000, "Asia/Shanghai", "2023-11-15 06:13:20"},
		{0, "UTC", "1970-01-01 00:00:00"},
		{-1, "UTC", "1969-12-31 23:59:59"},
	}
	for _, tt := range tests {
		got := FormatTimestamp(tt.ts, mustZone(t, tt.zone))
		if got != tt.want {
			t.Errorf("FormatTimestamp(%d, %s) = %q, want %q", tt.ts, tt.zone, got, tt.want)
		}
	}
}

func TestParseTimeRoundTrip(t *testing.T) {
	zones := []string{"UTC", "Asia/Shanghai", "America/New_York"}
	timestamps := []int64{0, 1700000000, 1136239445}

	for _, zone := range zones {
		loc := mustZone(t, zone)
		for _, ts := range timestamps {
			formatted := FormatTimestamp(ts, loc)
			back, err := ParseTime(formatted, loc)
			if err != nil {
				t.Fatalf("ParseTime(%q, %s): %v", formatted, zone, err)
			}
			if back != ts {
				t.Errorf("round trip in %s: %d -> %q -> %d", zone, ts, formatted, back)
			}
		}
	}
}

func TestParseTimeAttachesZone(t *testing.T) {
	// The parsed fields are treated as already being in the zone.
	utc, err := ParseTime("2023-11-15 06:13:20", time.UTC)
	if err != nil {
		t.Fatal(err)
	}
	shanghai, err := ParseTime("2023-11-15 06:13:20", mustZone(t, "Asia/Shanghai"))
	if err != nil {
		t.Fatal(err)
	}
	if utc-shanghai != 8*3600 {
		t.Errorf("zone offset = %d, want %d", utc-shanghai, 8*3600)
	}
	if shanghai != 1700000000 {
		t.Errorf("shanghai timestamp = %d, want 1700000000", shanghai)
	}
}

func TestParseTimeFormatMismatch(t *testing.T) {
	bad := []string{
		"2023-11-15",
		"2023/11/15 06:13:20",
		"15-11-2023 06:13:20",
		"not a time",
		"",
	}
	for _, s := range bad {
		_, err := ParseTime(s, time.UTC)
		if err == nil {
			t.Errorf("ParseTime(%q) succeeded, want format mismatch", s)
			continue
		}
		var fm *FormatMismatchError
		if !errors.As(err, &fm) {
			t.Errorf("ParseTime(%q) error = %T, want *FormatMismatchError", s, err)
		}
	}
}

func TestDifference(t *testing.T) {
	tests := []struct {
		start, end, want int64
	}{
		{0, 0, 0},
		{100, 250, 150},
		{250, 100, -150},
		{-50, 50, 100},
	}
	for _, tt := range tests {
		if got := Difference(tt.start, tt.end); got != tt.want {
			t.Errorf("Difference(%d, %d) = %d, want %d", tt.start, tt.end, got, tt.want)
		}
	}
}
