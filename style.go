package paragraph

import (
	"image/color"

	"github.com/gogpu/paragraph/text"
)

// Style defaults used when a field is left at its zero value.
const (
	// DefaultFontSize is the font size in pixels per em.
	DefaultFontSize = 14.0
	// DefaultHeight is the line height multiplier.
	DefaultHeight = 1.0
	// DefaultFontFamily is the family requested from the resolver.
	DefaultFontFamily = text.FamilyGo
)

// doubleDecorationSpacing is the gap between the two strokes of a double
// decoration, in multiples of the stroke thickness.
const doubleDecorationSpacing = 3.0

// TextAlign specifies the horizontal placement of lines.
type TextAlign int

const (
	// TextAlignLeft aligns lines to the left edge.
	TextAlignLeft TextAlign = iota
	// TextAlignRight aligns lines to the right edge, ignoring trailing spaces.
	TextAlignRight
	// TextAlignCenter centers lines, ignoring trailing spaces.
	TextAlignCenter
	// TextAlignJustify stretches soft-wrapped lines to the full width.
	TextAlignJustify
	// TextAlignStart is left for LTR paragraphs and right for RTL ones.
	TextAlignStart
	// TextAlignEnd is right for LTR paragraphs and left for RTL ones.
	TextAlignEnd
)

// String returns the string representation of the alignment.
func (a TextAlign) String() string {
	switch a {
	case TextAlignLeft:
		return "Left"
	case TextAlignRight:
		return "Right"
	case TextAlignCenter:
		return "Center"
	case TextAlignJustify:
		return "Justify"
	case TextAlignStart:
		return "Start"
	case TextAlignEnd:
		return "End"
	default:
		return "Unknown"
	}
}

// resolve maps Start and End to a physical alignment.
func (a TextAlign) resolve(dir text.Direction) TextAlign {
	switch a {
	case TextAlignStart:
		if dir == text.DirectionRTL {
			return TextAlignRight
		}
		return TextAlignLeft
	case TextAlignEnd:
		if dir == text.DirectionRTL {
			return TextAlignLeft
		}
		return TextAlignRight
	}
	return a
}

// TextBaseline selects the baseline a run is aligned on.
type TextBaseline int

const (
	// BaselineAlphabetic is the baseline of Latin text.
	BaselineAlphabetic TextBaseline = iota
	// BaselineIdeographic is the bottom of the ideographic em box.
	BaselineIdeographic
)

// TextDecoration is a set of lines drawn with the text.
type TextDecoration uint8

// Decorations. They can be combined with |.
const (
	DecorationNone        TextDecoration = 0
	DecorationUnderline   TextDecoration = 1 << 0
	DecorationOverline    TextDecoration = 1 << 1
	DecorationLineThrough TextDecoration = 1 << 2
)

// Has reports whether d includes all of other.
func (d TextDecoration) Has(other TextDecoration) bool {
	return other != 0 && d&other == other
}

// TextDecorationStyle is the stroke pattern of decorations.
type TextDecorationStyle int

const (
	// DecorationSolid draws one line.
	DecorationSolid TextDecorationStyle = iota
	// DecorationDouble draws two parallel lines.
	DecorationDouble
)

// TextStyle describes one run of text. Zero fields fall back to the
// Default constants; a nil Color is black.
type TextStyle struct {
	Color         color.Color
	FontSize      float64
	FontWeight    text.Weight
	FontStyle     text.Slant
	FontFamily    string
	LetterSpacing float64
	WordSpacing   float64
	TextBaseline  TextBaseline
	// Height multiplies the font's line spacing.
	Height float64

	Decoration      TextDecoration
	DecorationColor color.Color
	DecorationStyle TextDecorationStyle

	// Background fills the run's advance box when non-nil.
	Background color.Color
}

// Size returns the font size with the default applied.
func (s *TextStyle) Size() float64 {
	if s.FontSize <= 0 {
		return DefaultFontSize
	}
	return s.FontSize
}

// LineHeight returns the height multiplier with the default applied.
func (s *TextStyle) LineHeight() float64 {
	if s.Height <= 0 {
		return DefaultHeight
	}
	return s.Height
}

// Family returns the family with the default applied.
func (s *TextStyle) Family() string {
	if s.FontFamily == "" {
		return DefaultFontFamily
	}
	return s.FontFamily
}

// Weight returns the weight with the default applied.
func (s *TextStyle) Weight() text.Weight {
	if s.FontWeight == 0 {
		return text.WeightNormal
	}
	return s.FontWeight
}

// TextColor returns the text color, black when unset.
func (s *TextStyle) TextColor() color.Color {
	if s.Color == nil {
		return Black
	}
	return s.Color
}

// ParagraphStyle holds the paragraph-wide settings and the defaults for
// text outside any styled run.
type ParagraphStyle struct {
	TextAlign     TextAlign
	TextDirection text.Direction
	FontWeight    text.Weight
	FontStyle     text.Slant
	FontFamily    string
	FontSize      float64
	Height        float64
	Color         color.Color

	// MaxLines caps the number of laid out lines. 0 means unlimited.
	MaxLines int
	// Ellipsis replaces the end of the last line when text is cut off.
	Ellipsis string
}

// TextStyle returns the style of text not covered by any run.
func (p ParagraphStyle) TextStyle() TextStyle {
	return TextStyle{
		Color:      p.Color,
		FontSize:   p.FontSize,
		FontWeight: p.FontWeight,
		FontStyle:  p.FontStyle,
		FontFamily: p.FontFamily,
		Height:     p.Height,
	}
}

// Ellipsized reports whether an ellipsis is configured.
func (p ParagraphStyle) Ellipsized() bool {
	return p.Ellipsis != ""
}

// UnlimitedLines reports whether MaxLines is unset.
func (p ParagraphStyle) UnlimitedLines() bool {
	return p.MaxLines <= 0
}
