package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DefaultTimezone != "Asia/Shanghai" {
		t.Errorf("expected default timezone 'Asia/Shanghai', got %q", cfg.DefaultTimezone)
	}
	if cfg.DefaultMode != "p" {
		t.Errorf("expected default mode 'p', got %q", cfg.DefaultMode)
	}
	if cfg.Theme != "default-dark" {
		t.Errorf("expected theme 'default-dark', got %q", cfg.Theme)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")

	content := `
default_timezone = "Europe/Berlin"
default_mode = "s"
theme = "default-light"
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DefaultTimezone != "Europe/Berlin" {
		t.Errorf("expected timezone 'Europe/Berlin', got %q", cfg.DefaultTimezone)
	}
	if cfg.DefaultMode != "s" {
		t.Errorf("expected mode 's', got %q", cfg.DefaultMode)
	}
	if cfg.Theme != "default-light" {
		t.Errorf("expected theme 'default-light', got %q", cfg.Theme)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TIMECTL_DEFAULT_TIMEZONE", "America/New_York")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DefaultTimezone != "America/New_York" {
		t.Errorf("expected timezone 'America/New_York', got %q", cfg.DefaultTimezone)
	}
}
