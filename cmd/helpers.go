package cmd

import (
	"log"
	"time"

	"github.com/chris-regnier/timectl/internal/clock"
)

// resolveZone resolves the active timezone, logging when an unknown name
// falls back to the default. An unknown timezone never fails a command.
func resolveZone() *time.Location {
	loc, defaulted := clock.ResolveZone(timezone)
	if defaulted {
		log.Printf("Invalid timezone %q provided. Defaulting to %q.", timezone, clock.DefaultTimezone)
	}
	return loc
}

// resolveMode resolves a decomposition mode with the same downgrade policy.
func resolveMode(mode string) clock.Mode {
	m, defaulted := clock.ResolveMode(mode)
	if defaulted {
		log.Printf("Invalid mode %q provided. Defaulting to 'p' (progressive).", mode)
	}
	return m
}
