package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/tuispin/internal/locale"
	"github.com/verte-zerg/tuispin/internal/model"
	"github.com/verte-zerg/tuispin/internal/names"
	"github.com/verte-zerg/tuispin/internal/spin"
	"github.com/verte-zerg/tuispin/internal/wheel"
)

// Rows are not a constraint when printing to a scrolling terminal.
const headlessRows = 1 << 12

var (
	drawSpin  bool
	drawSeed  int64
	drawPlain bool
)

func newDrawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draw FILE",
		Short: "Print the wheel for a names file",
		Args:  cobra.ExactArgs(1),
		RunE:  runDrawCmd,
	}
	addWheelFlags(cmd)
	cmd.Flags().BoolVar(&drawSpin, "spin", false, "spin once and print the final wheel and winner")
	cmd.Flags().Int64Var(&drawSeed, "seed", 0, "random seed for --spin (0 uses the clock)")
	cmd.Flags().BoolVar(&drawPlain, "plain", false, "print without colors")
	return cmd
}

func runDrawCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cat, err := locale.New(cfg.Locale, cfg.Messages)
	if err != nil {
		return fmt.Errorf("failed to build message catalog: %w", err)
	}
	list, err := names.ReadFile(args[0])
	if err != nil {
		return err
	}
	opts := drawOptions{
		Width:    terminalWidth(os.Stdout),
		MaxSize:  cfg.MaxSize,
		Duration: cfg.Duration,
		Frame:    cfg.FrameInterval,
		Spin:     drawSpin,
		Seed:     drawSeed,
		Plain:    drawPlain,
	}
	return drawWheel(cmd.OutOrStdout(), cat, list, opts)
}

type drawOptions struct {
	Width    int
	MaxSize  int
	Duration time.Duration
	Frame    time.Duration
	Spin     bool
	Seed     int64
	Plain    bool
}

// drawWheel renders list once, optionally after a fast-forwarded spin, and
// writes the winner line when a spin ran.
func drawWheel(w io.Writer, cat *locale.Catalog, list []string, opts drawOptions) error {
	var result *model.SpinResult
	sched := &spin.ManualScheduler{}
	ctrl := spin.NewController(sched, spin.Options{
		Duration: opts.Duration,
		Random:   spin.NewRandom(opts.Seed),
		Hooks: spin.Hooks{
			Done: func(res model.SpinResult) { result = &res },
		},
	})
	if err := ctrl.SetList(list, true); err != nil {
		return fmt.Errorf("failed to load names: %w", err)
	}
	if opts.Spin && ctrl.RequestSpin() {
		sched.Run(time.Now(), opts.Frame)
	}

	canvas := wheel.NewWheelCanvas(wheel.SurfaceSize(opts.Width, headlessRows, opts.MaxSize))
	wheel.Render(canvas, ctrl.Names(), ctrl.Rotation())
	out := canvas.Render()
	if opts.Plain {
		out = strings.Join(canvas.Lines(), "\n")
	}
	if _, err := fmt.Fprintln(w, out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if result == nil {
		return nil
	}
	if _, err := fmt.Fprintln(w, cat.T(locale.KeySelected, result.Winner)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
