package history

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/tuispin/internal/model"
	"github.com/verte-zerg/tuispin/internal/store"
)

func TestBuildReport(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "tuispin.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})

	ctx := context.Background()
	base := time.Unix(0, 0)
	for i, w := range []string{"Ana", "Luis", "Ana", "Marta"} {
		end := base.Add(time.Duration(i) * time.Minute)
		if _, err := st.InsertSpin(ctx, model.SpinResult{Winner: w, Entrants: 3, StartedAt: end, EndedAt: end}); err != nil {
			t.Fatalf("insert spin: %v", err)
		}
	}

	report, err := BuildReport(ctx, st, model.HistoryConfig{Last: 3, Top: 2})
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	if len(report.Spins) != 3 {
		t.Fatalf("expected 3 spins, got %d", len(report.Spins))
	}
	if report.Spins[0].Winner != "Luis" {
		t.Fatalf("expected window to start at Luis, got %q", report.Spins[0].Winner)
	}
	if len(report.Winners) != 2 {
		t.Fatalf("expected 2 winners, got %+v", report.Winners)
	}

	var buf bytes.Buffer
	if err := RenderSummary(&buf, report.Spins); err != nil {
		t.Fatalf("render summary: %v", err)
	}
	if err := RenderSpins(&buf, report.Spins, 60); err != nil {
		t.Fatalf("render spins: %v", err)
	}
	if err := RenderWinners(&buf, report.Winners, len(report.Spins)); err != nil {
		t.Fatalf("render winners: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Spins: 3", "Distinct winners: 3", "Winner", "Marta", "33.3%"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderSummaryEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderSummary(&buf, nil); err != nil {
		t.Fatalf("render summary: %v", err)
	}
	if !strings.Contains(buf.String(), "No spins found.") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}
