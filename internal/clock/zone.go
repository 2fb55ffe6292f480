package clock

import "time"

// ResolveZone resolves an IANA timezone name against the system database,
// substituting the default zone for an empty or unknown name. The second
// return reports whether an unknown name was replaced, so the caller can log
// the fallback; an invalid timezone is never an error.
func ResolveZone(name string) (*time.Location, bool) {
	if name == "" {
		return defaultZone(), false
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return defaultZone(), true
	}
	return loc, false
}

func defaultZone() *time.Location {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
