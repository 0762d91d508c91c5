package layout

import (
	"math"

	"github.com/gogpu/paragraph/text"
)

// DefaultTabSpaceCount is the default tab width in space advances.
const DefaultTabSpaceCount = 4

// TabStops resolves tab positions. Explicit stops win; past the last one,
// tabs snap to multiples of the tab width, which defaults to
// DefaultTabSpaceCount space advances of the configured font.
//
// The zero value is ready to use.
type TabStops struct {
	stops      []float64
	spaceCount int

	source text.GlyphSource
	size   float64

	tabWidth float64
	resolved bool
	explicit bool
}

// Set replaces the explicit stops. A positive tabWidth fixes the width of
// the repeating stops; 0 derives it from the font again.
func (t *TabStops) Set(stops []float64, tabWidth float64) {
	t.stops = append(t.stops[:0], stops...)
	t.explicit = tabWidth > 0
	t.tabWidth = tabWidth
	t.resolved = t.explicit
}

// SetSpaceCount sets how many space advances make up one tab. Values
// below 1 restore DefaultTabSpaceCount.
func (t *TabStops) SetSpaceCount(n int) {
	if n == t.spaceCount {
		return
	}
	t.spaceCount = n
	if !t.explicit {
		t.resolved = false
	}
}

// SetFont sets the font whose space advance defines the tab width. The
// width is recomputed lazily when the font or size changes.
func (t *TabStops) SetFont(src text.GlyphSource, size float64) {
	if t.explicit {
		t.source, t.size = src, size
		return
	}
	if !sameSource(t.source, src) || t.size != size {
		t.resolved = false
	}
	t.source, t.size = src, size
}

// NextTab returns the x of the first tab stop strictly after x. When no
// tab width can be derived it returns x.
func (t *TabStops) NextTab(x float64) float64 {
	for _, s := range t.stops {
		if s > x {
			return s
		}
	}
	w := t.TabWidth()
	if w <= 0 {
		return x
	}
	return math.Floor(x/w+1) * w
}

// TabWidth returns the width of the repeating stops.
func (t *TabStops) TabWidth() float64 {
	if !t.resolved {
		t.tabWidth = 0
		if t.source != nil && t.size > 0 {
			if g, ok := t.source.Glyph(' ', t.size, text.SlantNormal); ok {
				t.tabWidth = g.Advance * float64(t.spaces())
			}
		}
		t.resolved = true
	}
	return t.tabWidth
}

func (t *TabStops) spaces() int {
	if t.spaceCount < 1 {
		return DefaultTabSpaceCount
	}
	return t.spaceCount
}

func sameSource(a, b text.GlyphSource) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.ID() == b.ID()
}
