package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Wheel.DurationMs != nil || cfg.UI.Locale != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `log-file = "/tmp/spin.log"

[wheel]
duration-ms = 3000
max-size = 40

[editor]
debounce-ms = 250

[ui]
locale = "en"

[history]
enabled = false

[messages]
"status.selected" = "Winner: %s"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Wheel.DurationMs == nil || *cfg.Wheel.DurationMs != 3000 {
		t.Fatalf("unexpected duration: %+v", cfg.Wheel)
	}
	if cfg.Wheel.FrameMs != nil {
		t.Fatalf("frame-ms should be unset")
	}
	if cfg.Wheel.MaxSize == nil || *cfg.Wheel.MaxSize != 40 {
		t.Fatalf("unexpected max size: %+v", cfg.Wheel)
	}
	if cfg.Editor.DebounceMs == nil || *cfg.Editor.DebounceMs != 250 {
		t.Fatalf("unexpected debounce: %+v", cfg.Editor)
	}
	if cfg.UI.Locale == nil || *cfg.UI.Locale != "en" {
		t.Fatalf("unexpected locale: %+v", cfg.UI)
	}
	if cfg.History.Enabled == nil || *cfg.History.Enabled {
		t.Fatalf("expected history disabled: %+v", cfg.History)
	}
	if cfg.Messages["status.selected"] != "Winner: %s" {
		t.Fatalf("unexpected messages: %+v", cfg.Messages)
	}
	if cfg.LogFile == nil || *cfg.LogFile != "/tmp/spin.log" {
		t.Fatalf("unexpected log file: %v", cfg.LogFile)
	}
}

func TestLoadConfigUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[wheel]\nspeed = 3\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, err := LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "wheel.speed") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestDefaultPathsFollowXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_DATA_HOME", "/data")
	if got := DefaultConfigPath(); got != filepath.Join("/cfg", "tuispin", "config.toml") {
		t.Fatalf("unexpected config path: %s", got)
	}
	if got := DefaultDBPath(); got != filepath.Join("/data", "tuispin", "tuispin.db") {
		t.Fatalf("unexpected db path: %s", got)
	}
	if got := DefaultLogPath(); got != filepath.Join("/data", "tuispin", "tuispin.log") {
		t.Fatalf("unexpected log path: %s", got)
	}
}
