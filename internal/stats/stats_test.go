package stats

import (
	"math"
	"testing"
)

func TestComputeTwoWords(t *testing.T) {
	// 10 characters forming 2 words over 30 seconds.
	typed := []rune("hello worl")
	got := Compute(typed, 3000)
	if math.Abs(got.CPS-10.0/30.0) > 1e-9 {
		t.Fatalf("cps = %v, want %v", got.CPS, 10.0/30.0)
	}
	if math.Abs(got.WPM-4.0) > 1e-9 {
		t.Fatalf("wpm = %v, want 4.0", got.WPM)
	}
}

func TestComputeZeroElapsed(t *testing.T) {
	got := Compute([]rune("abc"), 0)
	if got.WPM != 0 || got.CPS != 0 {
		t.Fatalf("expected zero stats at elapsed 0, got %+v", got)
	}
}

func TestComputeEmptyBuffer(t *testing.T) {
	got := Compute(nil, 500)
	if got.WPM != 0 || got.CPS != 0 {
		t.Fatalf("expected zero stats for empty buffer, got %+v", got)
	}
}

func TestWords(t *testing.T) {
	if got := Words([]rune("one two  three ")); got != 3 {
		t.Fatalf("words = %d, want 3", got)
	}
	if got := Words([]rune("   ")); got != 0 {
		t.Fatalf("words = %d, want 0 for blank buffer", got)
	}
}

func TestFormatTicks(t *testing.T) {
	if got := FormatTicks(1207); got != "12.07s" {
		t.Fatalf("FormatTicks(1207) = %q", got)
	}
	if got := FormatTicks(9); got != "0.09s" {
		t.Fatalf("FormatTicks(9) = %q", got)
	}
	if got := FormatTicks(-5); got != "0.00s" {
		t.Fatalf("FormatTicks(-5) = %q", got)
	}
}
