package history

import (
	"sort"

	"github.com/verte-zerg/tuispin/internal/model"
)

// TopWinners returns the n most frequent winners, ties broken by name.
// n <= 0 returns every winner.
func TopWinners(spins []model.SpinRecord, n int) []model.WinnerCount {
	if len(spins) == 0 {
		return nil
	}
	counts := map[string]int{}
	for _, s := range spins {
		counts[s.Winner]++
	}
	items := make([]model.WinnerCount, 0, len(counts))
	for winner, wins := range counts {
		items = append(items, model.WinnerCount{Winner: winner, Wins: wins})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Wins == items[j].Wins {
			return items[i].Winner < items[j].Winner
		}
		return items[i].Wins > items[j].Wins
	})
	if n > 0 && n < len(items) {
		items = items[:n]
	}
	return items
}
