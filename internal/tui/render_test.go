package tui

import (
	"strings"
	"testing"

	"github.com/typetick/typetick/internal/model"
	"github.com/typetick/typetick/internal/stats"
)

func testTheme() Theme {
	return NewTheme(model.Config{})
}

func TestStyleRunesCorrectPrefix(t *testing.T) {
	th := testTheme()
	runes := styleRunes([]rune("cat"), []rune("ca"), th, true)
	if len(runes) != 3 {
		t.Fatalf("expected 3 styled runes, got %d", len(runes))
	}
	if runes[0].s != th.Correct.Render("c") {
		t.Fatalf("expected correct style for first rune")
	}
	if runes[1].s != th.Correct.Render("a") {
		t.Fatalf("expected correct style for second rune")
	}
	if runes[2].s != th.Cursor.Render("t") {
		t.Fatalf("expected cursor style at next input position")
	}
}

func TestStyleRunesStickyError(t *testing.T) {
	// Phrase "cat", typed "cxt": c correct, x errored, and the matching
	// t stays errored because the flag is sticky for the rest of the walk.
	th := testTheme()
	runes := styleRunes([]rune("cat"), []rune("cxt"), th, true)
	if runes[0].s != th.Correct.Render("c") {
		t.Fatalf("expected correct style before first mismatch")
	}
	if runes[1].s != th.Error.Render("a") {
		t.Fatalf("expected error style at mismatch")
	}
	if runes[2].s != th.Error.Render("t") {
		t.Fatalf("expected sticky error style after mismatch")
	}
}

func TestStyleRunesUntypedRemainderUnaffected(t *testing.T) {
	th := testTheme()
	runes := styleRunes([]rune("cart"), []rune("cx"), th, false)
	if runes[2].s != th.Pending.Render("r") {
		t.Fatalf("expected pending style for untyped position after error")
	}
	if runes[3].s != th.Pending.Render("t") {
		t.Fatalf("expected pending style for untyped tail")
	}
}

func TestStyleRunesRendersPhraseNotTyped(t *testing.T) {
	th := testTheme()
	runes := styleRunes([]rune("ab"), []rune("ax"), th, false)
	if runes[1].s != th.Error.Render("b") {
		t.Fatalf("mistyped position must render the phrase character")
	}
}

func TestHardWrapBreaksAtEdge(t *testing.T) {
	th := testTheme()
	runes := styleRunes([]rune("abcdef"), nil, th, false)
	wrapped := hardWrap(runes, 4)
	lines := strings.Split(wrapped, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
}

func TestHardWrapZeroWidth(t *testing.T) {
	th := testTheme()
	runes := styleRunes([]rune("abcdef"), nil, th, false)
	if strings.Contains(hardWrap(runes, 0), "\n") {
		t.Fatalf("zero width must not wrap")
	}
}

func TestCursorPositionWraps(t *testing.T) {
	row, col := cursorPosition(10, 4)
	if row != 2 || col != 2 {
		t.Fatalf("cursorPosition(10, 4) = (%d, %d), want (2, 2)", row, col)
	}
	row, col = cursorPosition(4, 4)
	if row != 1 || col != 0 {
		t.Fatalf("expected wrap to next row at right edge, got (%d, %d)", row, col)
	}
}

func TestRenderHeaderFormat(t *testing.T) {
	th := testTheme()
	out := renderHeader(stats.Stats{WPM: 4.0, CPS: 0.33}, 3007, 0, th)
	for _, want := range []string{"4.00 wpm", "0.33 cps", "30.07s"} {
		if !strings.Contains(out, want) {
			t.Fatalf("header missing %q: %s", want, out)
		}
	}
}

func TestVisibleBodyKeepsCursorRow(t *testing.T) {
	body := "r0\nr1\nr2\nr3\nr4"
	out := visibleBody(body, 4, 2)
	if out != "r3\nr4" {
		t.Fatalf("expected last two rows, got %q", out)
	}
	out = visibleBody(body, 0, 2)
	if out != "r0\nr1" {
		t.Fatalf("expected first two rows, got %q", out)
	}
}

func TestVisibleBodyShortBody(t *testing.T) {
	body := "r0\nr1"
	if out := visibleBody(body, 0, 5); out != body {
		t.Fatalf("short body must be unchanged, got %q", out)
	}
}
