package layout

import (
	"testing"

	"github.com/gogpu/paragraph/text"
)

// TestTabStopsFromFont tests tab width derived from the space advance.
func TestTabStopsFromFont(t *testing.T) {
	src := text.NewMonoSource(text.MonoMetrics{Advance: 1, Advances: map[rune]float64{' ': 0.8}})
	var ts TabStops
	ts.SetFont(src, 10)

	if got := ts.TabWidth(); got != 32 {
		t.Fatalf("TabWidth() = %v, want 32", got)
	}
	tests := []struct {
		x, want float64
	}{
		{0, 32},
		{10, 32},
		{31.9, 32},
		{32, 64},
		{70, 96},
	}
	for _, tt := range tests {
		if got := ts.NextTab(tt.x); got != tt.want {
			t.Errorf("NextTab(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

// TestTabStopsExplicit tests explicit stops before the repeating width.
func TestTabStopsExplicit(t *testing.T) {
	src := text.NewMonoSource(text.MonoMetrics{Advance: 1})
	var ts TabStops
	ts.SetFont(src, 10)
	ts.Set([]float64{15, 50}, 0)

	tests := []struct {
		x, want float64
	}{
		{0, 15},
		{15, 50},
		{49, 50},
		{50, 80},
	}
	for _, tt := range tests {
		if got := ts.NextTab(tt.x); got != tt.want {
			t.Errorf("NextTab(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}

	ts.Set(nil, 25)
	ts.SetFont(src, 20)
	if got := ts.NextTab(30); got != 50 {
		t.Errorf("explicit width: NextTab(30) = %v, want 50", got)
	}
}

// TestTabStopsFontChange tests that the width follows font and size.
func TestTabStopsFontChange(t *testing.T) {
	src := text.NewMonoSource(text.MonoMetrics{Advance: 1})
	var ts TabStops
	ts.SetFont(src, 10)
	if got := ts.TabWidth(); got != 40 {
		t.Fatalf("TabWidth() = %v, want 40", got)
	}
	ts.SetFont(src, 20)
	if got := ts.TabWidth(); got != 80 {
		t.Errorf("TabWidth() after size change = %v, want 80", got)
	}
	ts.SetSpaceCount(2)
	if got := ts.TabWidth(); got != 40 {
		t.Errorf("TabWidth() with 2 spaces = %v, want 40", got)
	}
}

// TestTabStopsNoSpace tests that a source without a space glyph leaves x
// unchanged.
func TestTabStopsNoSpace(t *testing.T) {
	src := text.NewMonoSource(text.MonoMetrics{Advance: 1, Missing: map[rune]bool{' ': true}})
	var ts TabStops
	ts.SetFont(src, 10)
	if got := ts.NextTab(13); got != 13 {
		t.Errorf("NextTab(13) = %v, want 13", got)
	}

	var empty TabStops
	if got := empty.NextTab(7); got != 7 {
		t.Errorf("zero TabStops NextTab(7) = %v, want 7", got)
	}
}
