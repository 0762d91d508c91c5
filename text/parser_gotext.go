package text

import (
	"bytes"

	"github.com/go-text/typesetting/font"
)

// gotextParser implements FontParser using github.com/go-text/typesetting.
type gotextParser struct{}

// Parse implements FontParser.Parse.
func (gotextParser) Parse(data []byte) (ParsedFont, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return &gotextParsedFont{
		face: face,
		name: face.Describe().Family,
		upem: float64(face.Upem()),
	}, nil
}

// gotextParsedFont implements ParsedFont on a go-text font.Face.
// go-text reports design units with y pointing up, so every value is
// scaled by ppem/upem and vertical values are negated.
//
// font.Face carries per-instance state and is not safe for concurrent use;
// FontSource serializes access.
type gotextParsedFont struct {
	face *font.Face
	name string
	upem float64
}

func (f *gotextParsedFont) scale(ppem float64) float64 {
	if f.upem == 0 {
		return 0
	}
	return ppem / f.upem
}

func (f *gotextParsedFont) Name() string {
	return f.name
}

func (f *gotextParsedFont) UnitsPerEm() int {
	return int(f.upem)
}

func (f *gotextParsedFont) GlyphIndex(r rune) (uint32, bool) {
	gid, ok := f.face.NominalGlyph(r)
	if !ok || gid == 0 {
		return 0, false
	}
	return uint32(gid), true
}

func (f *gotextParsedFont) GlyphAdvance(gid uint32, ppem float64) float64 {
	return float64(f.face.HorizontalAdvance(font.GID(gid))) * f.scale(ppem)
}

func (f *gotextParsedFont) GlyphBounds(gid uint32, ppem float64) Rect {
	ext, ok := f.face.GlyphExtents(font.GID(gid))
	if !ok {
		return Rect{}
	}
	s := f.scale(ppem)
	// YBearing is the top of the ink, Height is negative (extends down).
	return Rect{
		MinX: float64(ext.XBearing) * s,
		MinY: -float64(ext.YBearing) * s,
		MaxX: float64(ext.XBearing+ext.Width) * s,
		MaxY: -float64(ext.YBearing+ext.Height) * s,
	}
}

func (f *gotextParsedFont) Metrics(ppem float64) FontMetrics {
	s := f.scale(ppem)
	var m FontMetrics
	if ext, ok := f.face.FontHExtents(); ok {
		m.Ascent = -float64(ext.Ascender) * s
		m.Descent = -float64(ext.Descender) * s
		m.Leading = max(float64(ext.LineGap)*s, 0)
	}
	m.UnderlineThickness = float64(f.face.LineMetric(font.UnderlineThickness)) * s
	m.UnderlinePosition = -float64(f.face.LineMetric(font.UnderlinePosition)) * s
	m.StrikeoutPosition = -float64(f.face.LineMetric(font.StrikethroughPosition)) * s
	m.XHeight = float64(f.face.LineMetric(font.XHeight)) * s
	return m
}
