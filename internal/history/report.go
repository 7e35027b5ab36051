// Package history builds and prints reports over stored spins.
package history

import (
	"context"

	"github.com/verte-zerg/tuispin/internal/model"
)

// Source lists stored spins.
type Source interface {
	ListSpins(ctx context.Context, cfg model.HistoryConfig) ([]model.SpinRecord, error)
}

// Report contains precomputed data for history rendering.
type Report struct {
	Spins   []model.SpinRecord
	Winners []model.WinnerCount
}

// BuildReport loads spins and tallies winners.
func BuildReport(ctx context.Context, src Source, cfg model.HistoryConfig) (Report, error) {
	spins, err := src.ListSpins(ctx, cfg)
	if err != nil {
		return Report{}, err
	}
	if cfg.Last > 0 && len(spins) > cfg.Last {
		spins = spins[len(spins)-cfg.Last:]
	}
	return Report{
		Spins:   spins,
		Winners: TopWinners(spins, cfg.Top),
	}, nil
}
