package text

import (
	"unicode/utf16"

	"golang.org/x/text/unicode/bidi"
)

// DetectDirection returns the direction of the first strong character in
// units (UTF-16 code units), or def when there is none.
func DetectDirection(units []uint16, def Direction) Direction {
	for i := 0; i < len(units); i++ {
		r := rune(units[i])
		if utf16.IsSurrogate(r) && i+1 < len(units) {
			r = utf16.DecodeRune(r, rune(units[i+1]))
			i++
		}
		if d, ok := RuneDirection(r); ok {
			return d
		}
	}
	return def
}

// RuneDirection returns the strong direction of r. ok is false for
// neutral and weak characters.
func RuneDirection(r rune) (Direction, bool) {
	props, _ := bidi.LookupRune(r)
	switch props.Class() {
	case bidi.L:
		return DirectionLTR, true
	case bidi.R, bidi.AL:
		return DirectionRTL, true
	default:
		return DirectionLTR, false
	}
}
