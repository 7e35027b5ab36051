package wheel

import (
	"math"
	"testing"
)

func TestSelectedQuarterExample(t *testing.T) {
	names := []string{"A", "B", "C", "D"}
	if got := Selected(names, 0); got != "B" {
		t.Fatalf("expected B, got %q", got)
	}
}

func TestSelectedFollowsRotation(t *testing.T) {
	names := []string{"A", "B", "C", "D"}
	// Turning the wheel a quarter clockwise brings the previous slice under the pointer.
	if got := Selected(names, math.Pi/2-0.1); got != "A" {
		t.Fatalf("expected A, got %q", got)
	}
	if got := Selected(names, -math.Pi/2-0.1); got != "C" {
		t.Fatalf("expected C, got %q", got)
	}
	if got := Selected(names, 2*math.Pi*7+0.1); got != Selected(names, 0.1) {
		t.Fatalf("full turns changed the winner")
	}
}

func TestSelectedIndexBounds(t *testing.T) {
	for count := 1; count <= 13; count++ {
		for step := -400; step <= 400; step++ {
			rotation := float64(step) * 0.0731
			idx := SelectedIndex(rotation, count)
			if idx < 0 || idx >= count {
				t.Fatalf("index %d out of range for count %d rotation %f", idx, count, rotation)
			}
		}
	}
}

func TestSelectedEmpty(t *testing.T) {
	if got := Selected(nil, 1.2); got != "" {
		t.Fatalf("expected empty winner, got %q", got)
	}
	if idx := SelectedIndex(1.2, 0); idx != -1 {
		t.Fatalf("expected -1, got %d", idx)
	}
}

func TestNormalizeAngle(t *testing.T) {
	for _, angle := range []float64{0, -0.5, 2 * math.Pi, -2 * math.Pi, 13.7, -13.7} {
		got := NormalizeAngle(angle)
		if got < 0 || got >= 2*math.Pi {
			t.Fatalf("angle %f normalized out of range: %f", angle, got)
		}
	}
}

func TestSelectionMatchesRenderedSlice(t *testing.T) {
	names := []string{"A", "B", "C", "D", "E"}
	rec := &recordingSurface{width: 40, height: 60}
	for _, rotation := range []float64{0, 0.3, 1.9, 4.4, 11.2} {
		Render(rec, names, rotation)
		idx := SelectedIndex(rotation, len(names))
		sector := rec.sectors[idx]
		if !angleWithin(PointerDirection, sector.start, sector.end) {
			t.Fatalf("rotation %f: pointer not inside sector %d [%f, %f)", rotation, idx, sector.start, sector.end)
		}
	}
}
