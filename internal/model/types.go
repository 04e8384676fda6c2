// Package model defines shared data structures.
package model

import "time"

// Config defines resolved runtime settings after merging flags and the
// config file.
type Config struct {
	CorpusPath string
	TickMs     int

	// Theme colors as lipgloss-compatible values; empty selects defaults.
	CorrectColor string
	PendingColor string
	ErrorFg      string
	ErrorBg      string
	HeaderFg     string
	HeaderBg     string
}

// RoundResult captures a completed typing round for the in-run summary.
type RoundResult struct {
	Author  string
	Title   string
	Chars   int
	Words   int
	WPM     float64
	CPS     float64
	Ticks   int64
	EndedAt time.Time
}
