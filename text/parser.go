package text

import (
	"fmt"
	"sync"
)

// FontParser is an interface for font parsing backends.
// This abstraction allows swapping the font parsing library
// (golang.org/x/image/font/opentype or github.com/go-text/typesetting).
type FontParser interface {
	// Parse parses font data (TTF or OTF) and returns a ParsedFont.
	Parse(data []byte) (ParsedFont, error)
}

// ParsedFont is the read-only view of a font file used by FontSource.
// Sizes are in pixels per em; results are in pixels, y-down.
type ParsedFont interface {
	// Name returns the font family name, or "" if not available.
	Name() string

	// UnitsPerEm returns the design units per em.
	UnitsPerEm() int

	// GlyphIndex maps a rune to a glyph. ok is false if the font has no
	// glyph for r.
	GlyphIndex(r rune) (gid uint32, ok bool)

	// GlyphAdvance returns the advance width of a glyph.
	GlyphAdvance(gid uint32, ppem float64) float64

	// GlyphBounds returns the ink bounds of a glyph.
	GlyphBounds(gid uint32, ppem float64) Rect

	// Metrics returns the font metrics.
	Metrics(ppem float64) FontMetrics
}

// Registered parser names.
const (
	ParserXImage = "ximage"
	ParserGoText = "gotext"
)

var (
	parsersMu sync.RWMutex
	// parserRegistry holds registered font parsers.
	parserRegistry = map[string]FontParser{
		ParserXImage: ximageParser{},
		ParserGoText: gotextParser{},
	}
)

// defaultParserName is the name of the default parser.
const defaultParserName = ParserXImage

// RegisterParser registers a custom font parser under name,
// replacing any parser already registered with that name.
func RegisterParser(name string, parser FontParser) {
	parsersMu.Lock()
	defer parsersMu.Unlock()
	parserRegistry[name] = parser
}

// getParser returns the parser registered under name.
func getParser(name string) (FontParser, error) {
	parsersMu.RLock()
	defer parsersMu.RUnlock()
	p, ok := parserRegistry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownParser, name)
	}
	return p, nil
}
