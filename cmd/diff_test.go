package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/chris-regnier/timectl/internal/mcptools"
)

func TestDiffProgressive(t *testing.T) {
	setupTest(t)
	jsonOutput = true

	var buf bytes.Buffer
	if err := diffRun(&buf, "1700000000", "1700090061", "p"); err != nil {
		t.Fatalf("diffRun: %v", err)
	}

	var out mcptools.DecomposeOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.TimeDifference != 90061 {
		t.Errorf("time_difference = %d, want 90061", out.TimeDifference)
	}
	if out.Days != 1 || out.Hours != 1 || out.Minutes != 1 || out.Seconds != 1 {
		t.Errorf("breakdown = %+v, want 1d 1h 1m 1s", out)
	}
}

func TestDiffModeFromConfig(t *testing.T) {
	setupTest(t)
	appConfig.DefaultMode = "s"
	jsonOutput = true

	var buf bytes.Buffer
	if err := diffRun(&buf, "0", "86400", ""); err != nil {
		t.Fatalf("diffRun: %v", err)
	}

	var out mcptools.DecomposeOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	// Separate mode: every unit sees the full duration.
	if out.Hours != 24 || out.Seconds != 86400 {
		t.Errorf("breakdown = %+v, want separate mode values", out)
	}
}

func TestDiffPlainOutput(t *testing.T) {
	setupTest(t)

	var buf bytes.Buffer
	if err := diffRun(&buf, "100", "250", "p"); err != nil {
		t.Fatalf("diffRun: %v", err)
	}
	if !strings.Contains(buf.String(), "difference: 150 seconds") {
		t.Errorf("output:\n%s", buf.String())
	}
}

func TestDiffBadInput(t *testing.T) {
	setupTest(t)

	var buf bytes.Buffer
	if err := diffRun(&buf, "bogus", "100", "p"); err == nil {
		t.Fatal("expected error for malformed start timestamp")
	}
}
