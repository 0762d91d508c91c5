package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrUnknownParser is returned when a FontParser name is not registered.
	ErrUnknownParser = errors.New("text: unknown font parser")

	// ErrNilSource is returned when a nil GlyphSource is registered.
	ErrNilSource = errors.New("text: nil glyph source")

	// ErrInvalidSize is returned for non-positive font sizes.
	ErrInvalidSize = errors.New("text: font size must be positive")
)

// ParseError is returned when a FontParser rejects font data.
type ParseError struct {
	// Parser is the registered name of the parser that failed.
	Parser string
	// Err is the underlying parser error.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("text: %s parser: %v", e.Parser, e.Err)
}

// Unwrap returns the underlying parser error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
