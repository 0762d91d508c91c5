package text

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	parserName string
	weight     Weight
	slant      Slant
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		parserName: defaultParserName,
		weight:     WeightNormal,
		slant:      SlantNormal,
	}
}

// WithParser specifies the font parser backend.
// The default is "ximage" which uses golang.org/x/image/font/opentype;
// "gotext" uses github.com/go-text/typesetting/font.
//
// Custom parsers can be registered with RegisterParser.
func WithParser(name string) SourceOption {
	return func(c *sourceConfig) {
		c.parserName = name
	}
}

// WithStyle declares the native weight and slant of the face. Collection
// registers the source under this style, and an italic request against an
// upright face gets synthetically sheared bounds.
func WithStyle(weight Weight, slant Slant) SourceOption {
	return func(c *sourceConfig) {
		c.weight = weight
		c.slant = slant
	}
}

// CacheOption configures a CachedSource.
type CacheOption func(*cacheConfig)

type cacheConfig struct {
	metricsLimit int
	glyphLimit   int
	private      bool
}

// WithMetricsLimit gives the CachedSource a private metrics cache holding
// at most n entries. By default all CachedSources share one cache.
func WithMetricsLimit(n int) CacheOption {
	return func(c *cacheConfig) {
		c.metricsLimit = n
		c.private = true
	}
}

// WithGlyphLimit gives the CachedSource a private glyph cache holding at
// most n entries.
func WithGlyphLimit(n int) CacheOption {
	return func(c *cacheConfig) {
		c.glyphLimit = n
		c.private = true
	}
}
