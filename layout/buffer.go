package layout

import "unicode/utf16"

// Buffer is a window of size code units starting at offset in text.
// Sub-windows share the underlying array.
type Buffer struct {
	text   []uint16
	offset int
	size   int
}

// NewBuffer returns the window [offset, offset+size) of text.
func NewBuffer(text []uint16, offset, size int) Buffer {
	return Buffer{text: text, offset: offset, size: size}
}

// CharAt returns the code unit at window-relative index i.
func (b Buffer) CharAt(i int) uint16 {
	return b.text[b.offset+i]
}

// Size returns the window length in code units.
func (b Buffer) Size() int {
	return b.size
}

// Offset returns the start of the window in the underlying text.
func (b Buffer) Offset() int {
	return b.offset
}

// Sub returns the window [offset, offset+size) relative to b.
func (b Buffer) Sub(offset, size int) Buffer {
	return Buffer{text: b.text, offset: b.offset + offset, size: size}
}

// Text returns the code units of the window without copying.
func (b Buffer) Text() []uint16 {
	return b.text[b.offset : b.offset+b.size]
}

// String decodes the window. Unpaired surrogates become U+FFFD.
func (b Buffer) String() string {
	return string(utf16.Decode(b.Text()))
}

func isHighSurrogate(c uint16) bool { return c&0xFC00 == 0xD800 }
func isLowSurrogate(c uint16) bool  { return c&0xFC00 == 0xDC00 }

// IsSurrogate reports whether c is half of a surrogate pair.
func IsSurrogate(c uint16) bool { return c&0xF800 == 0xD800 }

// codePointAt decodes the character starting at units[i] and returns it
// with its length in code units. The pair is only joined when both halves
// lie before end.
func codePointAt(units []uint16, i, end int) (rune, int) {
	c := units[i]
	if isHighSurrogate(c) && i+1 < end && isLowSurrogate(units[i+1]) {
		return utf16.DecodeRune(rune(c), rune(units[i+1])), 2
	}
	return rune(c), 1
}

// CharLen returns the length in code units of the character starting at
// units[i]: 2 for a surrogate pair that ends before end, otherwise 1.
func CharLen(units []uint16, i, end int) int {
	if isHighSurrogate(units[i]) && i+1 < end && isLowSurrogate(units[i+1]) {
		return 2
	}
	return 1
}
