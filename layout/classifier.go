package layout

import "unicode"

// CharType is the class of a character for word segmentation.
type CharType int

const (
	// LetterLike covers letters, digits, combining marks and the apostrophe.
	LetterLike CharType = iota
	// Symbol is everything that is neither letter-like nor whitespace.
	Symbol
	// WhiteSpace is any Unicode whitespace.
	WhiteSpace
)

// String returns the string representation of the class.
func (t CharType) String() string {
	switch t {
	case LetterLike:
		return "LetterLike"
	case Symbol:
		return "Symbol"
	case WhiteSpace:
		return "WhiteSpace"
	default:
		return "Unknown"
	}
}

// Classify returns the class of r. Combining marks are letter-like so that
// a decomposed accent stays inside its word.
func Classify(r rune) CharType {
	switch {
	case unicode.IsSpace(r):
		return WhiteSpace
	case unicode.IsLetter(r), unicode.IsDigit(r), unicode.IsMark(r), r == '\'':
		return LetterLike
	default:
		return Symbol
	}
}

// FindWordRange returns the half-open range of code units around index
// whose characters share the class of the character at index. A surrogate
// pair is never split. An index at or past the end returns the empty range
// (len, len); a negative index is treated as 0.
func FindWordRange(text []uint16, index int) (start, end int) {
	n := len(text)
	if index >= n {
		return n, n
	}
	if index < 0 {
		index = 0
	}
	if isLowSurrogate(text[index]) && index > 0 && isHighSurrogate(text[index-1]) {
		index--
	}

	r, size := codePointAt(text, index, n)
	class := Classify(r)

	start = index
	for start > 0 {
		p := start - 1
		if isLowSurrogate(text[p]) && p > 0 && isHighSurrogate(text[p-1]) {
			p--
		}
		pr, _ := codePointAt(text, p, n)
		if Classify(pr) != class {
			break
		}
		start = p
	}

	end = index + size
	for end < n {
		nr, nsize := codePointAt(text, end, n)
		if Classify(nr) != class {
			break
		}
		end += nsize
	}
	return start, end
}

// IsWordSpace reports whether c separates words for justification and
// word spacing: a space or a no-break space.
func IsWordSpace(c uint16) bool {
	return c == ' ' || c == 0x00A0
}

// IsLineEndSpace reports whether c is a space that disappears at the end
// of a line: Space_Separator minus the no-break kinds, plus '\n'.
// All such characters are in the BMP.
func IsLineEndSpace(c uint16) bool {
	return c == '\n' || c == ' ' || c == 0x1680 ||
		(c >= 0x2000 && c <= 0x200A && c != 0x2007) ||
		c == 0x205F || c == 0x3000
}

// IsBoundaryChar reports whether a word ends right after r: punctuation,
// CJK unified ideographs and kana.
func IsBoundaryChar(r rune) bool {
	switch {
	case unicode.IsPunct(r):
		return true
	case r >= 0x4E00 && r <= 0x9FFF:
		return true
	case r >= 0x3040 && r <= 0x30FF:
		return true
	}
	return false
}
