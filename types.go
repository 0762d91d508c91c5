package paragraph

import (
	"unicode/utf16"

	"github.com/gogpu/paragraph/text"
)

// Range is a half-open interval [Start, End).
type Range[T ~int | ~float64] struct {
	Start, End T
}

// Len returns End - Start.
func (r Range[T]) Len() T {
	return r.End - r.Start
}

// Contains reports whether Start <= v < End.
func (r Range[T]) Contains(v T) bool {
	return r.Start <= v && v < r.End
}

// Shift returns the range moved by d.
func (r Range[T]) Shift(d T) Range[T] {
	return Range[T]{Start: r.Start + d, End: r.End + d}
}

// Offset is a 2D displacement.
type Offset struct {
	X, Y float64
}

// Add returns o + other.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// ParagraphConstraints bounds a layout. Width may be math.Inf(1).
type ParagraphConstraints struct {
	Width float64
}

// LineRange locates one line in the text.
// Start <= EndExcludingWhitespace <= End <= EndIncludingNewline.
type LineRange struct {
	Start int
	End   int
	// EndExcludingWhitespace drops trailing line-end spaces.
	EndExcludingWhitespace int
	// EndIncludingNewline covers the '\n' that ended the line, if any.
	EndIncludingNewline int
	// HardBreak is set on the last line of each newline-separated block.
	HardBreak bool
}

// GlyphPosition is the horizontal extent of one laid out character. A
// surrogate pair is one GlyphPosition spanning two code units.
type GlyphPosition struct {
	CodeUnits Range[int]
	X         Range[float64]
}

// Shift returns the position moved right by dx.
func (g GlyphPosition) Shift(dx float64) GlyphPosition {
	g.X = g.X.Shift(dx)
	return g
}

// GlyphLine holds the glyph positions of one line.
type GlyphLine struct {
	Positions []GlyphPosition
	// TotalCountUnits is the number of code units from the line start to
	// the next line start, newline included.
	TotalCountUnits int
}

// CodeUnitRun groups the glyph positions of one style run on one line.
type CodeUnitRun struct {
	LineNumber int
	Direction  text.Direction
	CodeUnits  Range[int]
	X          Range[float64]
	// GlyphIndexStart and Count select the run's entries in the
	// paragraph's glyph position storage. See Paragraph.RunPositions.
	GlyphIndexStart int
	Count           int
	Metrics         text.FontMetrics
}

// TextBlob is the text of one paint record with an x position per code
// unit. Positions are relative to the record offset.
type TextBlob struct {
	Text      []uint16
	Positions []float64
	Bounds    text.Rect

	Source text.GlyphSource
	Size   float64
	Slant  text.Slant
}

// String decodes the blob text.
func (b TextBlob) String() string {
	return string(utf16.Decode(b.Text))
}

// PaintRecord is one style run of one line, ready to paint. Offset is the
// position of the run's origin on its baseline.
type PaintRecord struct {
	Style    TextStyle
	Offset   Offset
	Blob     TextBlob
	Metrics  text.FontMetrics
	Line     int
	RunWidth float64
}

// TextBox is a rectangle covering part of the text.
type TextBox struct {
	Left, Top, Right, Bottom float64
	Direction                text.Direction
}

// TextAffinity disambiguates a caret at a line-wrap boundary.
type TextAffinity int

const (
	// Downstream places the caret at the start of the following line.
	Downstream TextAffinity = iota
	// Upstream places the caret at the end of the preceding line.
	Upstream
)

// String returns the string representation of the affinity.
func (a TextAffinity) String() string {
	if a == Upstream {
		return "Upstream"
	}
	return "Downstream"
}

// TextPosition is a caret position.
type TextPosition struct {
	Offset   int
	Affinity TextAffinity
}
