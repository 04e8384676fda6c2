// Package stats contains typing statistics calculations.
package stats

import (
	"fmt"
	"strings"
)

// Stats holds the derived metrics for a round, recomputed from the typed
// buffer and the last known elapsed-time snapshot.
type Stats struct {
	WPM float64
	CPS float64
}

// Compute derives WPM and CPS from the typed buffer and elapsed
// centiseconds. Both metrics are 0 at elapsed 0.
func Compute(typed []rune, ticks int64) Stats {
	if ticks <= 0 {
		return Stats{}
	}
	seconds := float64(ticks) / 100.0
	return Stats{
		WPM: float64(Words(typed)) / seconds * 60.0,
		CPS: float64(len(typed)) / seconds,
	}
}

// Words counts whitespace-separated fields in the typed buffer.
func Words(typed []rune) int {
	return len(strings.Fields(string(typed)))
}

// FormatTicks renders a centisecond count as seconds with a two-digit
// fraction, e.g. 1207 -> "12.07s".
func FormatTicks(ticks int64) string {
	if ticks < 0 {
		ticks = 0
	}
	return fmt.Sprintf("%d.%02ds", ticks/100, ticks%100)
}
