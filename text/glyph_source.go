package text

// GlyphSource measures characters of one face.
//
// Implementations must be safe for concurrent use. A source with no glyph
// for a rune reports ok == false; callers treat that as zero advance.
type GlyphSource interface {
	// ID returns an identity that is stable for the life of the process.
	// Caches key on it, so two sources with different metrics must not
	// share an ID. See NewSourceID.
	ID() uint64

	// Glyph returns the advance and bounds of r at size pixels per em.
	// slant is the requested posture; upright faces may synthesize it.
	Glyph(r rune, size float64, slant Slant) (GlyphMetrics, bool)

	// Metrics returns the font metrics at size pixels per em.
	Metrics(size float64) FontMetrics
}

// Resolver maps a style request to a GlyphSource. Resolve never returns
// nil; unknown families resolve to a fallback.
type Resolver interface {
	Resolve(family string, weight Weight, slant Slant) GlyphSource
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(family string, weight Weight, slant Slant) GlyphSource

// Resolve calls f.
func (f ResolverFunc) Resolve(family string, weight Weight, slant Slant) GlyphSource {
	return f(family, weight, slant)
}
