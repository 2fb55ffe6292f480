package clock

import "time"

// DayOfWeek returns the full weekday name of ts viewed in loc. The weekday is
// zone-sensitive near local midnight, so the resolved zone is part of the
// contract; pass UTC for a zone-independent reading.
func DayOfWeek(ts int64, loc *time.Location) string {
	return time.Unix(ts, 0).In(loc).Weekday().String()
}

// WeekDay is one day of a Monday-anchored week.
type WeekDay struct {
	Name      string
	Timestamp int64
	Formatted string
}

// WeekTimestamps returns the seven zone-local midnights, Monday through
// Sunday, of the week containing ts. Days advance by wall clock, so across a
// DST transition consecutive timestamps may not be exactly 86400 seconds
// apart.
func WeekTimestamps(ts int64, loc *time.Location) []WeekDay {
	ref := time.Unix(ts, 0).In(loc)

	// Monday=0 .. Sunday=6
	offset := (int(ref.Weekday()) + 6) % 7
	monday := time.Date(ref.Year(), ref.Month(), ref.Day()-offset, 0, 0, 0, 0, loc)

	week := make([]WeekDay, 7)
	for i := range week {
		d := monday.AddDate(0, 0, i)
		week[i] = WeekDay{
			Name:      d.Weekday().String(),
			Timestamp: d.Unix(),
			Formatted: d.Format(TimeLayout),
		}
	}
	return week
}
