package cmd

import (
	"testing"
	"time"

	"github.com/chris-regnier/timectl/internal/clock"
	"github.com/chris-regnier/timectl/internal/config"
)

// setupTest pins the command globals to a fixed clock (Tuesday
// 2023-11-14 22:13:20 UTC) and restores them afterwards.
func setupTest(t *testing.T) {
	t.Helper()

	prevClk, prevTZ, prevJSON, prevCfg := clk, timezone, jsonOutput, appConfig
	t.Cleanup(func() {
		clk, timezone, jsonOutput, appConfig = prevClk, prevTZ, prevJSON, prevCfg
	})

	clk = clock.NewFrom(func() time.Time { return time.Unix(1700000000, 0) })
	timezone = "UTC"
	jsonOutput = false
	appConfig = &config.Config{DefaultTimezone: "UTC", DefaultMode: "p", Theme: "default-dark"}
}
