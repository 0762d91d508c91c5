package paragraph

import (
	"image/color"

	"github.com/gogpu/paragraph/text"
)

// PaintStyle selects whether a shape is filled or outlined.
type PaintStyle int

const (
	// PaintFill fills the shape.
	PaintFill PaintStyle = iota
	// PaintStroke outlines the shape with StrokeWidth.
	PaintStroke
)

// Paint is the styling of one canvas call.
type Paint struct {
	Color       color.Color
	Style       PaintStyle
	StrokeWidth float64
}

// Canvas is the drawing surface a Paragraph paints into. Coordinates are
// in pixels with y growing downward. See render/ggcanvas for an
// implementation.
type Canvas interface {
	// DrawRect draws r.
	DrawRect(r text.Rect, paint Paint)
	// DrawTextBlob draws blob with its origin on the baseline at at.
	DrawTextBlob(blob TextBlob, at Offset, paint Paint)
	// DrawLine strokes the segment from..to.
	DrawLine(from, to Offset, paint Paint)
}

// Paint draws the laid out paragraph with its top left corner at offset.
// Records are drawn in order; for each the background goes first, then
// the text, then its decorations.
func (p *Paragraph) Paint(c Canvas, offset Offset) error {
	if c == nil {
		return ErrNilCanvas
	}
	for i := range p.paintRecords {
		r := &p.paintRecords[i]
		at := offset.Add(r.Offset)
		if r.Style.Background != nil {
			paintBackground(c, r, at)
		}
		c.DrawTextBlob(r.Blob, at, Paint{Color: r.Style.TextColor(), Style: PaintFill})
		if r.Style.Decoration != DecorationNone {
			paintDecorations(c, r, at)
		}
	}
	return nil
}

func paintBackground(c Canvas, r *PaintRecord, at Offset) {
	rect := text.Rect{
		MinX: at.X,
		MinY: at.Y + r.Metrics.Ascent,
		MaxX: at.X + r.RunWidth,
		MaxY: at.Y + r.Metrics.Descent,
	}
	c.DrawRect(rect, Paint{Color: r.Style.Background, Style: PaintFill})
}

// paintDecorations draws underline, overline and line-through. A double
// decoration repeats each line three thicknesses further from the text.
func paintDecorations(c Canvas, r *PaintRecord, at Offset) {
	m := r.Metrics
	paint := Paint{Color: r.Style.DecorationColor, Style: PaintStroke}
	if paint.Color == nil {
		paint.Color = r.Style.TextColor()
	}
	thickness := m.UnderlineThickness
	if thickness <= 0 {
		thickness = r.Style.Size() / 14
	}
	paint.StrokeWidth = thickness

	count := 1
	if r.Style.DecorationStyle == DecorationDouble {
		count = 2
	}
	underline := m.UnderlinePosition
	if underline == 0 {
		underline = thickness
	}
	strikeout := m.StrikeoutPosition
	if strikeout == 0 {
		strikeout = -m.XHeight / 2
	}
	spacing := thickness * doubleDecorationSpacing

	x0, x1 := at.X, at.X+r.RunWidth
	line := func(y float64) {
		c.DrawLine(Offset{X: x0, Y: y}, Offset{X: x1, Y: y}, paint)
	}
	for i := 0; i < count; i++ {
		yOff := float64(i) * spacing
		if r.Style.Decoration.Has(DecorationUnderline) {
			line(at.Y + yOff + underline)
		}
		if r.Style.Decoration.Has(DecorationOverline) {
			line(at.Y + m.Ascent - yOff)
		}
		if r.Style.Decoration.Has(DecorationLineThrough) {
			line(at.Y + yOff - float64(count-1)*spacing/2 + strikeout)
		}
	}
}
