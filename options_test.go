package paragraph

import (
	"testing"

	"github.com/gogpu/paragraph/layout"
	"github.com/gogpu/paragraph/text"
)

// TestDefaultOptions tests that New uses the Go fonts and 4-space tabs.
func TestDefaultOptions(t *testing.T) {
	p := New()
	if p.opts.tabSpaceCount != layout.DefaultTabSpaceCount {
		t.Errorf("tabSpaceCount = %d, want %d", p.opts.tabSpaceCount, layout.DefaultTabSpaceCount)
	}
	if p.opts.resolverOrDefault() != text.DefaultResolver() {
		t.Error("default resolver is not text.DefaultResolver()")
	}
}

// TestWithTabSpaceCount tests the tab width option.
func TestWithTabSpaceCount(t *testing.T) {
	tests := []struct {
		n    int
		want float64
	}{
		{2, 20},
		{8, 80},
		{0, 40},
		{-1, 40},
	}
	for _, tt := range tests {
		p := New(WithResolver(monoResolver(t)), WithTabSpaceCount(tt.n))
		p.SetParagraphStyle(ParagraphStyle{FontSize: testFontSize})
		p.SetText("\tx", nil)
		p.Layout(ParagraphConstraints{Width: 1000})
		if got := p.GlyphLine(0).Positions[1].X.Start; got != tt.want {
			t.Errorf("WithTabSpaceCount(%d): x after tab = %v, want %v", tt.n, got, tt.want)
		}
	}
}

// TestWithTabStops tests explicit stops and the fallback past them.
func TestWithTabStops(t *testing.T) {
	p := New(WithResolver(monoResolver(t)), WithTabStops(15, 30))
	p.SetParagraphStyle(ParagraphStyle{FontSize: testFontSize})
	p.SetText("\ta\tb\tc", nil)
	p.Layout(ParagraphConstraints{Width: 1000})

	positions := p.GlyphLine(0).Positions
	want := map[int]float64{1: 15, 3: 30, 5: 80}
	for i, x := range want {
		if got := positions[i].X.Start; got != x {
			t.Errorf("glyph %d x = %v, want %v", i, got, x)
		}
	}
}
