package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/tuispin/internal/config"
	"github.com/verte-zerg/tuispin/internal/history"
	"github.com/verte-zerg/tuispin/internal/model"
	"github.com/verte-zerg/tuispin/internal/store"
)

const defaultHistoryTop = 10

var (
	historySince string
	historyLast  int
	historyTop   int
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded spins",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().StringVar(&historySince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&historyLast, "last", 0, "limit to last N spins")
	cmd.Flags().IntVar(&historyTop, "top", defaultHistoryTop, "number of winners to list")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	var sinceTime *time.Time
	if historySince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", historySince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}
	if historyLast < 0 {
		return fmt.Errorf("--last must be >= 0")
	}
	if historyTop < 0 {
		return fmt.Errorf("--top must be >= 0")
	}
	cfg := model.HistoryConfig{
		Since: sinceTime,
		Last:  historyLast,
		Top:   historyTop,
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	report, err := history.BuildReport(context.Background(), st, cfg)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}
	out := cmd.OutOrStdout()
	if err := history.RenderSummary(out, report.Spins); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := history.RenderSpins(out, report.Spins, terminalWidth(os.Stdout)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := history.RenderWinners(out, report.Winners, len(report.Spins)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
