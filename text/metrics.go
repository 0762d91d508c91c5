package text

// FontMetrics holds size-dependent font metrics in y-down coordinates.
//
// Ascent, Descent and Leading are always populated. The remaining fields
// are optional: 0 means the font does not provide the value and callers
// should derive a default.
type FontMetrics struct {
	// Ascent is the signed distance from the baseline to the top of the
	// font. It is negative.
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font.
	// It is positive.
	Descent float64

	// Leading is the recommended extra gap between lines.
	Leading float64

	// UnderlineThickness is the stroke width of an underline.
	UnderlineThickness float64

	// UnderlinePosition is the distance of the underline below the baseline.
	UnderlinePosition float64

	// StrikeoutPosition is the signed offset of a line-through from the
	// baseline. It is negative (above the baseline).
	StrikeoutPosition float64

	// XHeight is the height of lowercase letters (like 'x').
	XHeight float64
}

// Height returns the distance between the top and bottom of the font,
// descent - ascent.
func (m FontMetrics) Height() float64 {
	return m.Descent - m.Ascent
}

// LineHeight returns the recommended distance between consecutive baselines.
func (m FontMetrics) LineHeight() float64 {
	return m.Descent - m.Ascent + m.Leading
}

// GlyphMetrics describes one character as measured by a GlyphSource.
type GlyphMetrics struct {
	// Advance is the horizontal pen advance.
	Advance float64

	// Bounds is the ink rectangle relative to the glyph origin.
	// It is empty for glyphs without ink, such as spaces.
	Bounds Rect
}
