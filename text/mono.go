package text

import "unicode"

// MonoMetrics describes a MonoSource as fractions of the em size.
type MonoMetrics struct {
	// Advance is the default advance of every glyph.
	Advance float64
	// Ascent and Descent are magnitudes above and below the baseline.
	Ascent, Descent float64
	// Leading is the line gap.
	Leading float64
	// Advances overrides Advance for individual runes.
	Advances map[rune]float64
	// Missing lists runes the source reports as absent.
	Missing map[rune]bool
}

// DefaultMonoMetrics is a 0.6em wide face with 0.8em ascent and 0.2em descent.
var DefaultMonoMetrics = MonoMetrics{Advance: 0.6, Ascent: 0.8, Descent: 0.2}

// MonoSource is a GlyphSource with fixed, font-file-free metrics.
// It is the last-resort fallback of a Collection and a deterministic
// source for tests: with Advance 1, every glyph at size 10 is 10 wide.
type MonoSource struct {
	id uint64
	m  MonoMetrics
}

// NewMonoSource creates a MonoSource. m is copied; later changes to its
// maps do not affect the source.
func NewMonoSource(m MonoMetrics) *MonoSource {
	cp := m
	if m.Advances != nil {
		cp.Advances = make(map[rune]float64, len(m.Advances))
		for r, a := range m.Advances {
			cp.Advances[r] = a
		}
	}
	if m.Missing != nil {
		cp.Missing = make(map[rune]bool, len(m.Missing))
		for r, v := range m.Missing {
			cp.Missing[r] = v
		}
	}
	return &MonoSource{id: NewSourceID(), m: cp}
}

// ID implements GlyphSource.
func (s *MonoSource) ID() uint64 {
	return s.id
}

// Glyph implements GlyphSource. Whitespace has no ink.
func (s *MonoSource) Glyph(r rune, size float64, slant Slant) (GlyphMetrics, bool) {
	if s.m.Missing[r] {
		return GlyphMetrics{}, false
	}
	adv := s.m.Advance
	if a, ok := s.m.Advances[r]; ok {
		adv = a
	}
	g := GlyphMetrics{Advance: adv * size}
	if !unicode.IsSpace(r) {
		g.Bounds = Rect{MinX: 0, MinY: -s.m.Ascent * size, MaxX: adv * size, MaxY: s.m.Descent * size}
		if slant == SlantItalic {
			g.Bounds = oblique(g.Bounds)
		}
	}
	return g, true
}

// Metrics implements GlyphSource.
func (s *MonoSource) Metrics(size float64) FontMetrics {
	return FontMetrics{
		Ascent:  -s.m.Ascent * size,
		Descent: s.m.Descent * size,
		Leading: s.m.Leading * size,
	}
}
