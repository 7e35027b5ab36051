// Package names parses and shapes entrant name lists.
package names

import (
	"errors"
	"strings"
)

// Kind selects which part of a multi-token name is kept.
type Kind int

const (
	// KindFirstToken keeps every token except the last one.
	KindFirstToken Kind = iota
	// KindLastToken keeps only the last token.
	KindLastToken
)

func (k Kind) String() string {
	switch k {
	case KindFirstToken:
		return "first"
	case KindLastToken:
		return "last"
	default:
		return "unknown"
	}
}

var (
	// ErrEmptyInput is returned when a candidate list has no valid entries.
	ErrEmptyInput = errors.New("name list is empty")
	// ErrNoOriginal is returned when a shortening transform runs before any load.
	ErrNoOriginal = errors.New("no name list loaded")
)

// ParseLines splits text into trimmed, non-empty lines.
func ParseLines(text string) []string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// Shorten reduces a space-separated name to the requested portion.
// Single-token names are returned unchanged whatever the kind.
func Shorten(name string, kind Kind) string {
	clean := strings.TrimSpace(name)
	if clean == "" {
		return clean
	}
	parts := strings.Fields(clean)
	if len(parts) == 1 {
		return parts[0]
	}
	if kind == KindLastToken {
		return parts[len(parts)-1]
	}
	head := strings.TrimSpace(strings.Join(parts[:len(parts)-1], " "))
	if head == "" {
		return clean
	}
	return head
}

// List holds the working name list and the snapshot of the last authoritative load.
type List struct {
	names    []string
	original []string
}

// Names returns a copy of the working list.
func (l *List) Names() []string {
	return append([]string(nil), l.names...)
}

// Original returns a copy of the last authoritative load.
func (l *List) Original() []string {
	return append([]string(nil), l.original...)
}

// Len returns the number of names on the wheel.
func (l *List) Len() int {
	return len(l.names)
}

// HasOriginal reports whether an authoritative load has happened.
func (l *List) HasOriginal() bool {
	return len(l.original) > 0
}

// Set replaces the working list. When storeOriginal is true the original
// snapshot is replaced as well. An empty candidate leaves the list untouched.
func (l *List) Set(candidate []string, storeOriginal bool) error {
	if len(candidate) == 0 {
		return ErrEmptyInput
	}
	l.names = append([]string(nil), candidate...)
	if storeOriginal {
		l.original = append([]string(nil), candidate...)
	}
	return nil
}

// Derive shortens every entry of the original snapshot. It never reads the
// working list, so repeated or mixed transforms always start from the load.
func (l *List) Derive(kind Kind) ([]string, error) {
	if len(l.original) == 0 {
		return nil, ErrNoOriginal
	}
	out := make([]string, 0, len(l.original))
	for _, name := range l.original {
		out = append(out, Shorten(name, kind))
	}
	return out, nil
}
