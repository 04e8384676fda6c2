// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/typetick/typetick/internal/stats"
)

type styledRune struct {
	s     string
	width int
}

// styleRunes walks the phrase and the typed buffer in lockstep and styles
// each phrase position. Once a typed character mismatches, every later
// typed position renders in the error style even when it matches; the flag
// resets only because the next frame re-renders the whole phrase. Untyped
// positions keep the pending style, with the cursor underlined at the next
// input position while the round is live.
func styleRunes(phrase, typed []rune, theme Theme, showCursor bool) []styledRune {
	out := make([]styledRune, 0, len(phrase))
	errored := false
	for i, r := range phrase {
		style := theme.Pending
		switch {
		case i < len(typed):
			if typed[i] != r {
				errored = true
			}
			if errored {
				style = theme.Error
			} else {
				style = theme.Correct
			}
		case showCursor && i == len(typed):
			style = theme.Cursor
		}
		out = append(out, styledRune{
			s:     style.Render(string(r)),
			width: runewidth.RuneWidth(r),
		})
	}
	return out
}

// hardWrap joins styled runes into lines, breaking at the terminal edge.
// The reference renderer wraps mid-word at the last column, so no word
// awareness here.
func hardWrap(runes []styledRune, width int) string {
	var b strings.Builder
	lineWidth := 0
	for _, item := range runes {
		if width > 0 && lineWidth+item.width > width && lineWidth > 0 {
			b.WriteByte('\n')
			lineWidth = 0
		}
		b.WriteString(item.s)
		lineWidth += item.width
	}
	return b.String()
}

// cursorPosition computes the (row, col) of the next input position for a
// hard-wrapped body of the given width.
func cursorPosition(typedLen, width int) (row, col int) {
	if width <= 0 {
		return 0, typedLen
	}
	return typedLen / width, typedLen % width
}

// renderHeader formats the stats line and paints it over the header
// background across the full row.
func renderHeader(st stats.Stats, ticks int64, width int, theme Theme) string {
	text := fmt.Sprintf("%.2f wpm %.2f cps %s", st.WPM, st.CPS, stats.FormatTicks(ticks))
	style := theme.Header
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(text)
}

// visibleBody trims a wrapped body to the available height, keeping the
// cursor row on screen for phrases longer than the viewport.
func visibleBody(body string, cursorRow, height int) string {
	if height <= 0 {
		return body
	}
	lines := strings.Split(body, "\n")
	if len(lines) <= height {
		return body
	}
	start := 0
	if cursorRow >= height {
		start = cursorRow - height + 1
	}
	if start+height > len(lines) {
		start = len(lines) - height
	}
	return strings.Join(lines[start:start+height], "\n")
}
