// Package main provides the CLI entrypoint for tuispin.
package main

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/tuispin/internal/config"
	"github.com/verte-zerg/tuispin/internal/locale"
	"github.com/verte-zerg/tuispin/internal/model"
	"github.com/verte-zerg/tuispin/internal/spin"
	"github.com/verte-zerg/tuispin/internal/store"
	"github.com/verte-zerg/tuispin/internal/tui"
	"github.com/verte-zerg/tuispin/internal/wheel"
)

const (
	defaultDurationMs = int(spin.DefaultDuration / time.Millisecond)
	defaultFrameMs    = int(tui.DefaultFrameInterval / time.Millisecond)
	defaultDebounceMs = int(tui.DefaultDebounce / time.Millisecond)
	defaultMaxSize    = wheel.DefaultMaxSize
)

var (
	wheelDurationMs int
	wheelFrameMs    int
	wheelMaxSize    int
	editorDebounce  int
	uiLocale        string
	noHistory       bool
	logFile         string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tuispin [names-file]",
		Short:         "Terminal name wheel",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runWheelCmd,
	}

	addWheelFlags(rootCmd)
	rootCmd.Flags().IntVar(&editorDebounce, "debounce-ms", defaultDebounceMs, "quiet period before live edits apply")
	rootCmd.Flags().BoolVar(&noHistory, "no-history", false, "do not record spins")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "log file used while the TUI runs")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLocalesCmd())
	rootCmd.AddCommand(newDrawCmd())
	rootCmd.AddCommand(newHistoryCmd())

	return rootCmd
}

func addWheelFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&wheelDurationMs, "duration-ms", defaultDurationMs, "spin duration in milliseconds")
	cmd.Flags().IntVar(&wheelFrameMs, "frame-ms", defaultFrameMs, "animation frame interval in milliseconds")
	cmd.Flags().IntVar(&wheelMaxSize, "max-size", defaultMaxSize, "maximum wheel width in columns")
	cmd.Flags().StringVar(&uiLocale, "locale", locale.DefaultLocale, "message locale")
}

func runWheelCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cat, err := locale.New(cfg.Locale, cfg.Messages)
	if err != nil {
		return fmt.Errorf("failed to build message catalog: %w", err)
	}

	logPath := cfg.LogFile
	if logPath == "" {
		logPath = config.DefaultLogPath()
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	logOut, err := tea.LogToFile(logPath, "tuispin")
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() {
		if cerr := logOut.Close(); cerr != nil {
			logErrf("failed to close log file: %v\n", cerr)
		}
	}()

	opts := tui.Options{Config: cfg, Catalog: cat}
	if len(args) == 1 {
		opts.InitialPath = args[0]
	}
	if cfg.History {
		st, err := store.Open(config.DefaultDBPath())
		if err != nil {
			return fmt.Errorf("failed to open db: %w", err)
		}
		defer func() {
			if cerr := st.Close(); cerr != nil {
				logErrf("failed to close db: %v\n", cerr)
			}
		}()
		opts.History = st
	}

	log.Printf("starting: locale=%s duration=%s history=%t", cat.Locale(), cfg.Duration, cfg.History)
	program := tea.NewProgram(tui.NewModel(opts), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// loadConfig merges the config file into the flag values; flags set on the
// command line win.
func loadConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "duration-ms", &wheelDurationMs, fileCfg.Wheel.DurationMs)
	applyIntConfig(cmd, "frame-ms", &wheelFrameMs, fileCfg.Wheel.FrameMs)
	applyIntConfig(cmd, "max-size", &wheelMaxSize, fileCfg.Wheel.MaxSize)
	applyIntConfig(cmd, "debounce-ms", &editorDebounce, fileCfg.Editor.DebounceMs)
	applyStringConfig(cmd, "locale", &uiLocale, fileCfg.UI.Locale)
	applyStringConfig(cmd, "log-file", &logFile, fileCfg.LogFile)
	if fileCfg.History.Enabled != nil {
		disabled := !*fileCfg.History.Enabled
		applyBoolConfig(cmd, "no-history", &noHistory, &disabled)
	}

	cfg := model.Config{
		Duration:      time.Duration(wheelDurationMs) * time.Millisecond,
		FrameInterval: time.Duration(wheelFrameMs) * time.Millisecond,
		MaxSize:       wheelMaxSize,
		Debounce:      time.Duration(editorDebounce) * time.Millisecond,
		Locale:        uiLocale,
		Messages:      fileCfg.Messages,
		History:       !noHistory,
		LogFile:       logFile,
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newLocalesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "List message locales",
		Args:  cobra.NoArgs,
		RunE:  runLocalesCmd,
	}
}

func runLocalesCmd(cmd *cobra.Command, _ []string) error {
	for _, id := range locale.Supported() {
		line := id
		if id == locale.DefaultLocale {
			line += " (default)"
		}
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# tuispin configuration
# Uncomment a value to enable it. CLI flags override config values.

# log-file = "/tmp/tuispin.log"   # Log file used while the TUI runs

[wheel]
# duration-ms = %d        # Spin duration in milliseconds
# frame-ms = %d             # Animation frame interval in milliseconds
# max-size = %d             # Maximum wheel width in columns

[editor]
# debounce-ms = %d         # Quiet period before live edits apply

[ui]
# locale = %q             # Message locale (%s)

[history]
# enabled = true            # Record completed spins

[messages]
# "status.selected" = "Ganador: %%s"   # Override any message by key
`,
		defaultDurationMs,
		defaultFrameMs,
		defaultMaxSize,
		defaultDebounceMs,
		locale.DefaultLocale,
		strings.Join(locale.Supported(), ", "),
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Duration <= 0 {
		return fmt.Errorf("--duration-ms must be > 0")
	}
	if cfg.FrameInterval <= 0 {
		return fmt.Errorf("--frame-ms must be > 0")
	}
	if cfg.FrameInterval > cfg.Duration {
		return fmt.Errorf("--frame-ms must not exceed --duration-ms")
	}
	if cfg.MaxSize < wheel.MinSize {
		return fmt.Errorf("--max-size must be >= %d", wheel.MinSize)
	}
	if cfg.Debounce <= 0 {
		return fmt.Errorf("--debounce-ms must be > 0")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
