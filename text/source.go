package text

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"golang.org/x/image/font/opentype"
)

// lastSourceID hands out GlyphSource identities.
var lastSourceID atomic.Uint64

// NewSourceID returns a process-unique identity for a GlyphSource.
// Custom GlyphSource implementations use it to key shared caches.
func NewSourceID() uint64 {
	return lastSourceID.Add(1)
}

// FontSource is a GlyphSource backed by a TTF or OTF file.
// FontSource is heavyweight and should be shared across the application.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr must point to the FontSource itself.
	addr *FontSource

	id     uint64
	data   []byte
	name   string
	config sourceConfig

	// mu serializes parser access; go-text faces are not concurrent-safe.
	mu     sync.Mutex
	parsed ParsedFont
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	parser, err := getParser(config.parserName)
	if err != nil {
		return nil, err
	}
	parsed, err := parser.Parse(data)
	if err != nil {
		return nil, &ParseError{Parser: config.parserName, Err: err}
	}

	s := &FontSource{
		id:     NewSourceID(),
		data:   append([]byte(nil), data...),
		parsed: parsed,
		config: config,
		name:   parsed.Name(),
	}
	s.addr = s
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFontSource(data, opts...)
}

// ID implements GlyphSource.
func (s *FontSource) ID() uint64 {
	s.copyCheck()
	return s.id
}

// Glyph implements GlyphSource. When slant is italic and the face is
// upright, the bounds are sheared like a synthesized oblique.
func (s *FontSource) Glyph(r rune, size float64, slant Slant) (GlyphMetrics, bool) {
	s.copyCheck()
	s.mu.Lock()
	defer s.mu.Unlock()

	gid, ok := s.parsed.GlyphIndex(r)
	if !ok {
		return GlyphMetrics{}, false
	}
	g := GlyphMetrics{
		Advance: s.parsed.GlyphAdvance(gid, size),
		Bounds:  s.parsed.GlyphBounds(gid, size),
	}
	if slant == SlantItalic && s.config.slant == SlantNormal {
		g.Bounds = oblique(g.Bounds)
	}
	return g, true
}

// Metrics implements GlyphSource.
func (s *FontSource) Metrics(size float64) FontMetrics {
	s.copyCheck()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.parsed.Metrics(size)
}

// Name returns the font family name recorded in the file, or "".
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Style returns the weight and slant declared with WithStyle.
func (s *FontSource) Style() (Weight, Slant) {
	s.copyCheck()
	return s.config.weight, s.config.slant
}

// Parser returns the name of the parser backend in use.
func (s *FontSource) Parser() string {
	s.copyCheck()
	return s.config.parserName
}

// Data returns the raw font bytes. The slice must not be modified.
func (s *FontSource) Data() []byte {
	s.copyCheck()
	return s.data
}

// OpenType returns the x/image font when the source was parsed with the
// "ximage" parser, and parses the data on demand otherwise.
func (s *FontSource) OpenType() (*opentype.Font, error) {
	s.copyCheck()
	if xf, ok := s.parsed.(*ximageParsedFont); ok {
		return xf.Font(), nil
	}
	f, err := opentype.Parse(s.data)
	if err != nil {
		return nil, &ParseError{Parser: ParserXImage, Err: err}
	}
	return f, nil
}

// copyCheck panics if FontSource was copied by value.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}
