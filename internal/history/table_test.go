package history

import (
	"strings"
	"testing"
)

func TestFormatTableAlignsWideNames(t *testing.T) {
	lines := formatTable([]string{"Winner", "Wins"}, [][]string{{"Ana", "10"}, {"漢字名", "2"}}, map[int]bool{1: true})
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Winner  Wins" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if lines[1] != "Ana       10" {
		t.Fatalf("unexpected row: %q", lines[1])
	}
	if !strings.HasSuffix(lines[2], "   2") {
		t.Fatalf("expected right-aligned count: %q", lines[2])
	}
}
