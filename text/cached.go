package text

import "github.com/gogpu/paragraph/internal/cache"

// Default limits of the shared caches.
const (
	DefaultMetricsCacheSize = 256
	DefaultGlyphCacheSize   = 8192
)

type metricsKey struct {
	id   uint64
	size float64
}

type glyphKey struct {
	id    uint64
	size  float64
	slant Slant
	r     rune
}

type glyphEntry struct {
	metrics GlyphMetrics
	ok      bool
}

var (
	sharedMetrics = cache.New[metricsKey, FontMetrics](DefaultMetricsCacheSize)
	sharedGlyphs  = cache.New[glyphKey, glyphEntry](DefaultGlyphCacheSize)
)

// CachedSource memoizes a GlyphSource. Metrics are keyed by
// (source ID, size) and glyphs by (source ID, size, slant, rune), so
// metrics are recomputed only when the font or size changes.
type CachedSource struct {
	src     GlyphSource
	metrics *cache.Cache[metricsKey, FontMetrics]
	glyphs  *cache.Cache[glyphKey, glyphEntry]
}

// Cached wraps src in a CachedSource using the shared caches.
// A source that is already cached is returned unchanged.
func Cached(src GlyphSource) GlyphSource {
	if src == nil {
		return nil
	}
	if _, ok := src.(*CachedSource); ok {
		return src
	}
	return NewCachedSource(src)
}

// NewCachedSource wraps src. Without options the shared, process-wide
// caches are used. A CachedSource is unwrapped first, so caches never nest.
func NewCachedSource(src GlyphSource, opts ...CacheOption) *CachedSource {
	for {
		inner, ok := src.(*CachedSource)
		if !ok {
			break
		}
		src = inner.src
	}
	cfg := cacheConfig{metricsLimit: DefaultMetricsCacheSize, glyphLimit: DefaultGlyphCacheSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	c := &CachedSource{src: src, metrics: sharedMetrics, glyphs: sharedGlyphs}
	if cfg.private {
		c.metrics = cache.New[metricsKey, FontMetrics](cfg.metricsLimit)
		c.glyphs = cache.New[glyphKey, glyphEntry](cfg.glyphLimit)
	}
	return c
}

// ID implements GlyphSource and returns the wrapped source's identity.
func (c *CachedSource) ID() uint64 {
	return c.src.ID()
}

// Glyph implements GlyphSource.
//
// The wrapped source is called outside the cache lock: the caches are
// shared, and a source may itself look glyphs up through another
// CachedSource.
func (c *CachedSource) Glyph(r rune, size float64, slant Slant) (GlyphMetrics, bool) {
	key := glyphKey{id: c.src.ID(), size: size, slant: slant, r: r}
	if e, ok := c.glyphs.Get(key); ok {
		return e.metrics, e.ok
	}
	m, ok := c.src.Glyph(r, size, slant)
	c.glyphs.Set(key, glyphEntry{metrics: m, ok: ok})
	return m, ok
}

// Metrics implements GlyphSource.
func (c *CachedSource) Metrics(size float64) FontMetrics {
	key := metricsKey{id: c.src.ID(), size: size}
	if m, ok := c.metrics.Get(key); ok {
		return m
	}
	m := c.src.Metrics(size)
	c.metrics.Set(key, m)
	return m
}

// Unwrap returns the wrapped source.
func (c *CachedSource) Unwrap() GlyphSource {
	return c.src
}

// CacheStats reports the counters of a CachedSource cache.
type CacheStats = cache.Stats

// Stats returns hit and miss counters of the metrics and glyph caches.
func (c *CachedSource) Stats() (metrics, glyphs CacheStats) {
	return c.metrics.Stats(), c.glyphs.Stats()
}
