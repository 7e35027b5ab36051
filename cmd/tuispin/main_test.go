package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/tuispin/internal/config"
	"github.com/verte-zerg/tuispin/internal/locale"
	"github.com/verte-zerg/tuispin/internal/model"
	"github.com/verte-zerg/tuispin/internal/names"
	"github.com/verte-zerg/tuispin/internal/wheel"
)

func validConfig() model.Config {
	return model.Config{
		Duration:      4500 * time.Millisecond,
		FrameInterval: 16 * time.Millisecond,
		MaxSize:       60,
		Debounce:      400 * time.Millisecond,
	}
}

func TestValidateConfig(t *testing.T) {
	if err := validateConfig(validConfig()); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
	cases := map[string]func(*model.Config){
		"duration": func(c *model.Config) { c.Duration = 0 },
		"frame":    func(c *model.Config) { c.FrameInterval = 0 },
		"frame>":   func(c *model.Config) { c.FrameInterval = 5 * time.Second },
		"max-size": func(c *model.Config) { c.MaxSize = wheel.MinSize - 1 },
		"debounce": func(c *model.Config) { c.Debounce = 0 },
	}
	for name, mutate := range cases {
		cfg := validConfig()
		mutate(&cfg)
		if err := validateConfig(cfg); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	data := "[wheel]\nduration-ms = 3000\n[ui]\nlocale = \"en\"\n[history]\nenabled = false\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cmd := newRootCmd()
	if err := cmd.ParseFlags([]string{"--locale", "es"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Duration != 3*time.Second {
		t.Fatalf("expected file duration, got %s", cfg.Duration)
	}
	if cfg.Locale != "es" {
		t.Fatalf("expected flag locale, got %s", cfg.Locale)
	}
	if cfg.History {
		t.Fatalf("expected history disabled by config")
	}
	if cfg.Debounce != 400*time.Millisecond {
		t.Fatalf("expected default debounce, got %s", cfg.Debounce)
	}
}

func TestDefaultConfigTemplateDecodes(t *testing.T) {
	var uncommented []string
	for _, line := range strings.Split(defaultConfigTemplate(), "\n") {
		if strings.HasPrefix(line, "# ") && strings.Contains(line, " = ") {
			line = strings.TrimPrefix(line, "# ")
		}
		uncommented = append(uncommented, line)
	}
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(strings.Join(uncommented, "\n")), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("template does not decode: %v", err)
	}
	if cfg.Wheel.DurationMs == nil || *cfg.Wheel.DurationMs != defaultDurationMs {
		t.Fatalf("unexpected duration: %+v", cfg.Wheel)
	}
	if cfg.UI.Locale == nil || *cfg.UI.Locale != locale.DefaultLocale {
		t.Fatalf("unexpected locale: %+v", cfg.UI)
	}
	if cfg.Messages["status.selected"] != "Ganador: %s" {
		t.Fatalf("unexpected messages: %+v", cfg.Messages)
	}
}

func testDrawOptions() drawOptions {
	return drawOptions{
		Width:    80,
		MaxSize:  40,
		Duration: 4500 * time.Millisecond,
		Frame:    16 * time.Millisecond,
		Seed:     42,
		Plain:    true,
	}
}

func TestDrawWheelStatic(t *testing.T) {
	cat, err := locale.New("en", nil)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	var out bytes.Buffer
	if err := drawWheel(&out, cat, []string{"Ana", "Luis"}, testDrawOptions()); err != nil {
		t.Fatalf("draw: %v", err)
	}
	if got, want := strings.Count(out.String(), "\n"), wheel.CanvasRows(40); got != want {
		t.Fatalf("expected %d rows, got %d", want, got)
	}
	if strings.Contains(out.String(), "Selected") {
		t.Fatalf("static draw must not report a winner")
	}
}

func TestDrawWheelSpinReportsWinner(t *testing.T) {
	cat, err := locale.New("en", nil)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	opts := testDrawOptions()
	opts.Spin = true
	var first, second bytes.Buffer
	if err := drawWheel(&first, cat, []string{"X", "Y"}, opts); err != nil {
		t.Fatalf("draw: %v", err)
	}
	if err := drawWheel(&second, cat, []string{"X", "Y"}, opts); err != nil {
		t.Fatalf("draw: %v", err)
	}
	lines := strings.Split(strings.TrimRight(first.String(), "\n"), "\n")
	last := lines[len(lines)-1]
	if last != "Selected: X" && last != "Selected: Y" {
		t.Fatalf("unexpected winner line %q", last)
	}
	if first.String() != second.String() {
		t.Fatalf("same seed should draw the same wheel")
	}
}

func TestDrawWheelRejectsEmptyList(t *testing.T) {
	cat, err := locale.New("en", nil)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	err = drawWheel(&bytes.Buffer{}, cat, nil, testDrawOptions())
	if !errors.Is(err, names.ErrEmptyInput) {
		t.Fatalf("expected empty input error, got %v", err)
	}
}

func TestTerminalWidthFallsBackOffTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	if err != nil {
		t.Fatalf("create file: %v", err)
	}
	defer f.Close()
	if got := terminalWidth(f); got != terminalWidthBackup {
		t.Fatalf("expected fallback width %d, got %d", terminalWidthBackup, got)
	}
}
