package history

import (
	"fmt"
	"io"
	"strconv"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/tuispin/internal/model"
)

const (
	minWinnerWidth = 8
	timeLayout     = "2006-01-02 15:04"
)

// RenderSummary prints spin totals.
func RenderSummary(w io.Writer, spins []model.SpinRecord) error {
	if len(spins) == 0 {
		_, err := fmt.Fprintln(w, "No spins found.")
		return err
	}
	distinct := map[string]struct{}{}
	entrants := 0
	for _, s := range spins {
		distinct[s.Winner] = struct{}{}
		entrants += s.Entrants
	}
	if _, err := fmt.Fprintln(w, "Summary"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Spins: %d\n", len(spins)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Distinct winners: %d\n", len(distinct)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg entrants: %.1f\n", float64(entrants)/float64(len(spins))); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}

// RenderSpins prints one row per spin, truncating winners to fit width.
func RenderSpins(w io.Writer, spins []model.SpinRecord, width int) error {
	if len(spins) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "Spins"); err != nil {
		return err
	}
	headers := []string{"#", "When", "Winner", "Entrants"}
	fixed := runewidth.StringWidth(strconv.FormatInt(spins[len(spins)-1].ID, 10)) + len(timeLayout) + len(headers[3]) + 6
	winnerWidth := width - fixed
	if width <= 0 || winnerWidth < minWinnerWidth {
		winnerWidth = minWinnerWidth
	}
	rows := make([][]string, 0, len(spins))
	for _, s := range spins {
		rows = append(rows, []string{
			strconv.FormatInt(s.ID, 10),
			s.SpunAt.Local().Format(timeLayout),
			runewidth.Truncate(s.Winner, winnerWidth, "…"),
			strconv.Itoa(s.Entrants),
		})
	}
	lines := formatTable(headers, rows, map[int]bool{0: true, 3: true})
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}

// RenderWinners prints win counts and their share of all spins.
func RenderWinners(w io.Writer, winners []model.WinnerCount, total int) error {
	if len(winners) == 0 || total <= 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "Winners"); err != nil {
		return err
	}
	rows := make([][]string, 0, len(winners))
	for _, wc := range winners {
		rows = append(rows, []string{
			wc.Winner,
			strconv.Itoa(wc.Wins),
			fmt.Sprintf("%.1f%%", float64(wc.Wins)/float64(total)*100),
		})
	}
	lines := formatTable([]string{"Winner", "Wins", "Share"}, rows, map[int]bool{1: true, 2: true})
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
