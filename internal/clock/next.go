package clock

import (
	"strings"
	"time"
)

// Target of a next-occurrence search: either a weekday or a day of the month.
type Target struct {
	weekday  time.Weekday
	day      int
	relative bool
}

// WeekdayTarget targets the next occurrence of a weekday.
func WeekdayTarget(wd time.Weekday) Target {
	return Target{weekday: wd, relative: true}
}

// DayOfMonthTarget targets the next month whose calendar contains day.
func DayOfMonthTarget(day int) Target {
	return Target{day: day}
}

// ParseWeekday maps a full English weekday name onto a time.Weekday,
// case-insensitively.
func ParseWeekday(name string) (time.Weekday, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sunday":
		return time.Sunday, true
	case "monday":
		return time.Monday, true
	case "tuesday":
		return time.Tuesday, true
	case "wednesday":
		return time.Wednesday, true
	case "thursday":
		return time.Thursday, true
	case "friday":
		return time.Friday, true
	case "saturday":
		return time.Saturday, true
	}
	return time.Sunday, false
}

// ParseNextTarget interprets the target of a next-occurrence search: a
// weekday name, or a day of the month between 1 and 31 (native integer or
// decimal string).
func ParseNextTarget(v any) (Target, error) {
	if s, ok := v.(string); ok {
		if wd, ok := ParseWeekday(s); ok {
			return WeekdayTarget(wd), nil
		}
	}
	day, err := CoerceInt64("target", v)
	if err != nil {
		return Target{}, err
	}
	if day < 1 || day > 31 {
		return Target{}, &InvalidArgumentError{Field: "target", Value: v}
	}
	return DayOfMonthTarget(int(day)), nil
}

// Occurrence is the result of a next-occurrence search.
type Occurrence struct {
	Time      time.Time
	Formatted string
	Remaining int64 // seconds from now, truncated
}

// NextOccurrence finds the first zone-local midnight strictly in the future
// that matches target.
//
// For a weekday, the candidate lies (target - today + 7) mod 7 days ahead at
// 00:00:00; if that midnight has already passed (today's weekday requested
// after midnight) the search moves one week out. For a day of the month,
// months advance until one whose calendar actually contains the day yields a
// midnight after now, so day 31 skips 30-day months and February.
func (c *Clock) NextOccurrence(target Target, loc *time.Location) Occurrence {
	now := c.now().In(loc)

	var candidate time.Time
	if target.relative {
		ahead := (int(target.weekday) - int(now.Weekday()) + 7) % 7
		candidate = time.Date(now.Year(), now.Month(), now.Day()+ahead, 0, 0, 0, 0, loc)
		if candidate.Before(now) {
			candidate = candidate.AddDate(0, 0, 7)
		}
	} else {
		year, month := now.Year(), now.Month()
		for {
			candidate = time.Date(year, month, target.day, 0, 0, 0, 0, loc)
			// time.Date normalizes an invalid day into the next month,
			// which the Day comparison rejects.
			if candidate.Day() == target.day && candidate.After(now) {
				break
			}
			month++
			if month > time.December {
				month = time.January
				year++
			}
		}
	}

	return Occurrence{
		Time:      candidate,
		Formatted: candidate.Format(TimeLayout),
		Remaining: int64(candidate.Sub(now) / time.Second),
	}
}
