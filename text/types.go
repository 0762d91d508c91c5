package text

import "math"

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Direction specifies the primary direction of a run or paragraph.
type Direction int

const (
	// DirectionLTR is left-to-right text (English, French, etc.)
	DirectionLTR Direction = iota
	// DirectionRTL is right-to-left text (Arabic, Hebrew)
	DirectionRTL
	// DirectionAuto resolves to LTR or RTL from the first strong character.
	DirectionAuto
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionLTR:
		return "LTR"
	case DirectionRTL:
		return "RTL"
	case DirectionAuto:
		return "Auto"
	default:
		return unknownStr
	}
}

// Weight is a font weight on the CSS 100..900 scale.
type Weight int

// Common weights.
const (
	WeightThin       Weight = 100
	WeightExtraLight Weight = 200
	WeightLight      Weight = 300
	WeightNormal     Weight = 400
	WeightMedium     Weight = 500
	WeightSemiBold   Weight = 600
	WeightBold       Weight = 700
	WeightExtraBold  Weight = 800
	WeightBlack      Weight = 900
)

// String returns the CSS-like name of the weight.
func (w Weight) String() string {
	switch w {
	case WeightThin:
		return "Thin"
	case WeightExtraLight:
		return "ExtraLight"
	case WeightLight:
		return "Light"
	case WeightNormal:
		return "Normal"
	case WeightMedium:
		return "Medium"
	case WeightSemiBold:
		return "SemiBold"
	case WeightBold:
		return "Bold"
	case WeightExtraBold:
		return "ExtraBold"
	case WeightBlack:
		return "Black"
	default:
		return unknownStr
	}
}

// Slant is the posture of a face.
type Slant int

const (
	// SlantNormal is an upright face.
	SlantNormal Slant = iota
	// SlantItalic is an italic or oblique face.
	SlantItalic
)

// String returns the string representation of the slant.
func (s Slant) String() string {
	switch s {
	case SlantNormal:
		return "Normal"
	case SlantItalic:
		return "Italic"
	default:
		return unknownStr
	}
}

// Rect represents a rectangle for glyph and run bounds.
type Rect struct {
	// Min is the top-left corner
	MinX, MinY float64
	// Max is the bottom-right corner
	MaxX, MaxY float64
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// Empty reports whether the rectangle is empty.
func (r Rect) Empty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{MinX: r.MinX + dx, MinY: r.MinY + dy, MaxX: r.MaxX + dx, MaxY: r.MaxY + dy}
}

// Union returns the smallest rectangle containing r and o.
// An empty operand does not contribute.
func (r Rect) Union(o Rect) Rect {
	if o.Empty() {
		return r
	}
	if r.Empty() {
		return o
	}
	return Rect{
		MinX: math.Min(r.MinX, o.MinX),
		MinY: math.Min(r.MinY, o.MinY),
		MaxX: math.Max(r.MaxX, o.MaxX),
		MaxY: math.Max(r.MaxY, o.MaxY),
	}
}

// syntheticObliqueSkew is the horizontal shear applied when an italic is
// requested from an upright face (about 12 degrees).
const syntheticObliqueSkew = 0.2

// oblique shears glyph bounds the way a synthesized italic is drawn:
// points above the baseline lean right, points below lean left.
func oblique(r Rect) Rect {
	if r.Empty() {
		return r
	}
	return Rect{
		MinX: r.MinX - syntheticObliqueSkew*math.Max(r.MaxY, 0),
		MinY: r.MinY,
		MaxX: r.MaxX - syntheticObliqueSkew*math.Min(r.MinY, 0),
		MaxY: r.MaxY,
	}
}
