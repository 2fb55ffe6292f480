package mcptools

import (
	"log"
	"time"

	"github.com/chris-regnier/timectl/internal/clock"
)

// resolveZone wraps clock.ResolveZone with the fallback diagnostic. An
// unknown timezone is logged, never surfaced to the caller.
func resolveZone(name string) *time.Location {
	loc, defaulted := clock.ResolveZone(name)
	if defaulted {
		log.Printf("Invalid timezone %q provided. Defaulting to %q.", name, clock.DefaultTimezone)
	}
	return loc
}

// resolveMode wraps clock.ResolveMode with the same downgrade policy.
func resolveMode(s string) clock.Mode {
	mode, defaulted := clock.ResolveMode(s)
	if defaulted {
		log.Printf("Invalid mode %q provided. Defaulting to 'p' (progressive).", s)
	}
	return mode
}
