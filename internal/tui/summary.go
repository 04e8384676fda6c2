package tui

import (
	"fmt"
	"strings"

	"github.com/typetick/typetick/internal/model"
	"github.com/typetick/typetick/internal/stats"
)

const summaryHint = "esc close · enter new round · ctrl+c quit"

// toggleSummary shows or hides the per-run round list. The summary is only
// reachable from a finished round so the clock never runs behind it.
func (m *Model) toggleSummary() {
	if m.state != stateFinished {
		return
	}
	m.showSummary = !m.showSummary
	if m.showSummary {
		m.resizeSummary()
		m.refreshSummary()
	}
}

func (m *Model) resizeSummary() {
	width := m.width
	if width <= 0 {
		width = 80
	}
	height := m.height - 4
	if height <= 0 {
		height = 10
	}
	m.summary.Width = width
	m.summary.Height = height
}

func (m *Model) refreshSummary() {
	m.summary.SetContent(summaryContent(m.rounds))
}

func summaryContent(rounds []model.RoundResult) string {
	if len(rounds) == 0 {
		return "No rounds completed yet."
	}
	var b strings.Builder
	for i, r := range rounds {
		fmt.Fprintf(&b, "%2d. %7.2f wpm %6.2f cps %9s  %s, %s\n",
			i+1, r.WPM, r.CPS, stats.FormatTicks(r.Ticks), r.Author, r.Title)
	}
	return strings.TrimRight(b.String(), "\n")
}
