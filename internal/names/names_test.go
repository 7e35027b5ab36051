package names

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParseLines(t *testing.T) {
	got := ParseLines("  Ana García \r\n\r\nLuis\n   \n\tMarta López\n")
	want := []string{"Ana García", "Luis", "Marta López"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected lines: %q", got)
	}
	if got := ParseLines(""); len(got) != 0 {
		t.Fatalf("expected no lines for empty text, got %q", got)
	}
}

func TestShortenSingleTokenPassesThrough(t *testing.T) {
	for _, kind := range []Kind{KindFirstToken, KindLastToken} {
		if got := Shorten("  Luis ", kind); got != "Luis" {
			t.Fatalf("kind %s: expected Luis, got %q", kind, got)
		}
	}
}

func TestShortenMultiToken(t *testing.T) {
	if got := Shorten("Ana María  García", KindLastToken); got != "García" {
		t.Fatalf("expected last token, got %q", got)
	}
	if got := Shorten("Ana María  García", KindFirstToken); got != "Ana María" {
		t.Fatalf("expected leading tokens, got %q", got)
	}
}

func TestSetRejectsEmpty(t *testing.T) {
	var l List
	if err := l.Set([]string{"A", "B"}, true); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := l.Set(nil, true); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
	if err := l.Set([]string{}, false); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
	if !reflect.DeepEqual(l.Names(), []string{"A", "B"}) {
		t.Fatalf("list changed after rejected set: %q", l.Names())
	}
	if !reflect.DeepEqual(l.Original(), []string{"A", "B"}) {
		t.Fatalf("original changed after rejected set: %q", l.Original())
	}
}

func TestSetCopiesCandidate(t *testing.T) {
	var l List
	candidate := []string{"A", "B"}
	if err := l.Set(candidate, true); err != nil {
		t.Fatalf("set: %v", err)
	}
	candidate[0] = "Z"
	if l.Names()[0] != "A" || l.Original()[0] != "A" {
		t.Fatalf("list aliases caller slice")
	}
}

func TestDeriveRequiresOriginal(t *testing.T) {
	var l List
	if err := l.Set([]string{"Ana García"}, false); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, err := l.Derive(KindLastToken); !errors.Is(err, ErrNoOriginal) {
		t.Fatalf("expected ErrNoOriginal, got %v", err)
	}
}

func TestDeriveRoundTrip(t *testing.T) {
	var l List
	if err := l.Set([]string{"Ana García", "Luis"}, true); err != nil {
		t.Fatalf("set: %v", err)
	}
	last, err := l.Derive(KindLastToken)
	if err != nil {
		t.Fatalf("derive last: %v", err)
	}
	if !reflect.DeepEqual(last, []string{"García", "Luis"}) {
		t.Fatalf("unexpected last tokens: %q", last)
	}
	if err := l.Set(last, false); err != nil {
		t.Fatalf("set derived: %v", err)
	}
	first, err := l.Derive(KindFirstToken)
	if err != nil {
		t.Fatalf("derive first: %v", err)
	}
	if !reflect.DeepEqual(first, []string{"Ana", "Luis"}) {
		t.Fatalf("unexpected first tokens: %q", first)
	}
}

func TestDeriveIdempotent(t *testing.T) {
	var l List
	if err := l.Set([]string{"Ana García", "Luis Pérez"}, true); err != nil {
		t.Fatalf("set: %v", err)
	}
	first, err := l.Derive(KindLastToken)
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if err := l.Set(first, false); err != nil {
		t.Fatalf("set derived: %v", err)
	}
	second, err := l.Derive(KindLastToken)
	if err != nil {
		t.Fatalf("derive again: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("derive not idempotent: %q vs %q", first, second)
	}
	if !reflect.DeepEqual(l.Original(), []string{"Ana García", "Luis Pérez"}) {
		t.Fatalf("derived set clobbered original: %q", l.Original())
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "names.txt")
	if err := os.WriteFile(path, []byte("Ana García\r\n\r\n  Luis  \n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"Ana García", "Luis"}) {
		t.Fatalf("unexpected names: %q", got)
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
