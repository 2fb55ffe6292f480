package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/chris-regnier/timectl/internal/mcptools"
)

func TestNowPlain(t *testing.T) {
	setupTest(t)

	var buf bytes.Buffer
	if err := nowRun(&buf, false); err != nil {
		t.Fatalf("nowRun: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "2023-11-14 22:13:20") {
		t.Errorf("expected formatted time in output, got:\n%s", output)
	}
	if !strings.Contains(output, "UTC") {
		t.Errorf("expected zone in output, got:\n%s", output)
	}
}

func TestNowJSON(t *testing.T) {
	setupTest(t)
	jsonOutput = true

	var buf bytes.Buffer
	if err := nowRun(&buf, false); err != nil {
		t.Fatalf("nowRun: %v", err)
	}

	var out mcptools.CurrentTimeOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Timestamp != 1700000000 {
		t.Errorf("timestamp = %d, want 1700000000", out.Timestamp)
	}
	if out.CurrentTime != "2023-11-14 22:13:20" {
		t.Errorf("current_time = %q", out.CurrentTime)
	}
}

func TestNowInvalidTimezoneFallsBack(t *testing.T) {
	setupTest(t)
	timezone = "Mars/Phobos"
	jsonOutput = true

	var buf bytes.Buffer
	if err := nowRun(&buf, false); err != nil {
		t.Fatalf("nowRun: %v", err)
	}

	var out mcptools.CurrentTimeOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Timezone != "Asia/Shanghai" {
		t.Errorf("timezone = %q, want Asia/Shanghai fallback", out.Timezone)
	}
}
