package clock

import "strings"

// Mode selects how a duration is decomposed into units.
type Mode string

const (
	// ModeProgressive partitions the duration greedily from the largest
	// unit down to seconds.
	ModeProgressive Mode = "p"
	// ModeSeparate converts the full duration into each unit independently,
	// producing overlapping fractional views rather than a partition.
	ModeSeparate Mode = "s"
)

// ResolveMode maps a caller-supplied mode string onto a Mode, substituting
// progressive for anything unrecognized. The second return reports the
// substitution so the caller can log it; an unknown mode is never an error.
func ResolveMode(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "p", "progressive":
		return ModeProgressive, false
	case "s", "separate":
		return ModeSeparate, false
	}
	return ModeProgressive, true
}

// Breakdown is a duration split into calendar units. The unit values are
// floats: fractional in separate mode, whole-valued in progressive mode.
type Breakdown struct {
	Duration int64
	Years    float64
	Months   float64
	Days     float64
	Hours    float64
	Minutes  float64
	Seconds  float64
}

// Decompose splits a signed duration in seconds according to mode.
//
// Progressive mode consumes the absolute duration from years down to seconds
// with floor division and remainder, then reapplies the input's sign to every
// component, so a negative duration yields all-non-positive components and
// zero components stay zero. Separate mode divides the full signed duration
// by each unit's second count without truncation.
func Decompose(d int64, mode Mode) Breakdown {
	if mode == ModeSeparate {
		return Breakdown{
			Duration: d,
			Years:    float64(d) / float64(SecondsPerYear),
			Months:   float64(d) / float64(SecondsPerMonth),
			Days:     float64(d) / float64(SecondsPerDay),
			Hours:    float64(d) / float64(SecondsPerHour),
			Minutes:  float64(d) / float64(SecondsPerMinute),
			Seconds:  float64(d),
		}
	}

	rem := d
	sign := int64(1)
	if rem < 0 {
		sign = -1
		rem = -rem
	}

	years := rem / SecondsPerYear
	rem %= SecondsPerYear
	months := rem / SecondsPerMonth
	rem %= SecondsPerMonth
	days := rem / SecondsPerDay
	rem %= SecondsPerDay
	hours := rem / SecondsPerHour
	rem %= SecondsPerHour
	minutes := rem / SecondsPerMinute
	seconds := rem % SecondsPerMinute

	return Breakdown{
		Duration: d,
		Years:    float64(sign * years),
		Months:   float64(sign * months),
		Days:     float64(sign * days),
		Hours:    float64(sign * hours),
		Minutes:  float64(sign * minutes),
		Seconds:  float64(sign * seconds),
	}
}
