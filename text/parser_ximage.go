package text

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser implements FontParser using golang.org/x/image/font/opentype.
type ximageParser struct{}

// Parse implements FontParser.Parse.
func (ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	return &ximageParsedFont{font: f}, nil
}

// ximageParsedFont implements ParsedFont using sfnt.Font.
// Layout positions are fractional, so glyphs are measured unhinted.
type ximageParsedFont struct {
	font *opentype.Font
}

func (f *ximageParsedFont) Name() string {
	if name, err := f.font.Name(nil, sfnt.NameIDFamily); err == nil {
		return name
	}
	return ""
}

func (f *ximageParsedFont) UnitsPerEm() int {
	return int(f.font.UnitsPerEm())
}

func (f *ximageParsedFont) GlyphIndex(r rune) (uint32, bool) {
	idx, err := f.font.GlyphIndex(nil, r)
	if err != nil || idx == 0 {
		return 0, false
	}
	return uint32(idx), true
}

func (f *ximageParsedFont) GlyphAdvance(gid uint32, ppem float64) float64 {
	var buf sfnt.Buffer
	// #nosec G115 -- gid came from GlyphIndex, which returns a uint16 index
	advance, err := f.font.GlyphAdvance(&buf, sfnt.GlyphIndex(gid), toFixed(ppem), font.HintingNone)
	if err != nil {
		return 0
	}
	return fixedToFloat64(advance)
}

func (f *ximageParsedFont) GlyphBounds(gid uint32, ppem float64) Rect {
	var buf sfnt.Buffer
	// #nosec G115 -- gid came from GlyphIndex, which returns a uint16 index
	bounds, _, err := f.font.GlyphBounds(&buf, sfnt.GlyphIndex(gid), toFixed(ppem), font.HintingNone)
	if err != nil {
		return Rect{}
	}
	return Rect{
		MinX: fixedToFloat64(bounds.Min.X),
		MinY: fixedToFloat64(bounds.Min.Y),
		MaxX: fixedToFloat64(bounds.Max.X),
		MaxY: fixedToFloat64(bounds.Max.Y),
	}
}

func (f *ximageParsedFont) Metrics(ppem float64) FontMetrics {
	var buf sfnt.Buffer
	m, err := f.font.Metrics(&buf, toFixed(ppem), font.HintingNone)
	if err != nil {
		return FontMetrics{}
	}
	ascent := fixedToFloat64(m.Ascent)
	descent := fixedToFloat64(m.Descent)
	return FontMetrics{
		Ascent:  -ascent,
		Descent: descent,
		Leading: max(fixedToFloat64(m.Height)-ascent-descent, 0),
		XHeight: fixedToFloat64(m.XHeight),
	}
}

// Font returns the parsed x/image font, for renderers that build a
// golang.org/x/image/font.Face from the same data.
func (f *ximageParsedFont) Font() *opentype.Font {
	return f.font
}

func toFixed(x float64) fixed.Int26_6 {
	return fixed.Int26_6(x * 64)
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
