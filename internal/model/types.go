// Package model defines shared data structures.
package model

import "time"

// Config defines wheel and editor settings.
type Config struct {
	Duration      time.Duration
	FrameInterval time.Duration
	MaxSize       int
	Debounce      time.Duration
	Locale        string
	Messages      map[string]string
	History       bool
	LogFile       string
}

// HistoryConfig defines filters for spin history output.
type HistoryConfig struct {
	Since *time.Time
	Last  int
	Top   int
}

// SpinResult captures a completed spin.
type SpinResult struct {
	Winner    string
	Index     int
	Entrants  int
	Rotation  float64
	StartedAt time.Time
	EndedAt   time.Time
}

// SpinRecord is a stored spin.
type SpinRecord struct {
	ID          int64
	SpunAt      time.Time
	Winner      string
	WinnerIndex int
	Entrants    int
	Rotation    float64
	DurationMs  int64
}

// WinnerCount aggregates wins per name.
type WinnerCount struct {
	Winner string
	Wins   int
}

// HistorySummary is the short history shown in the TUI footer.
type HistorySummary struct {
	Spins      int
	LastWinner string
	HasLast    bool
}
