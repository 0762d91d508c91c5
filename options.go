package paragraph

import (
	"github.com/gogpu/paragraph/layout"
	"github.com/gogpu/paragraph/text"
)

// Option configures a Paragraph during creation.
//
// Example:
//
//	// Go fonts, default tab width
//	p := paragraph.New()
//
//	// Custom faces and 8-space tabs
//	p := paragraph.New(paragraph.WithResolver(fonts), paragraph.WithTabSpaceCount(8))
type Option func(*options)

// options holds optional configuration for Paragraph creation.
type options struct {
	resolver      text.Resolver
	tabSpaceCount int
	tabStops      []float64
}

// defaultOptions returns the default paragraph options.
func defaultOptions() options {
	return options{
		resolver:      nil, // text.DefaultResolver on first use
		tabSpaceCount: layout.DefaultTabSpaceCount,
	}
}

// resolverOrDefault returns the configured resolver or the Go fonts.
func (o *options) resolverOrDefault() text.Resolver {
	if o.resolver == nil {
		return text.DefaultResolver()
	}
	return o.resolver
}

// WithResolver sets the resolver that maps style families to glyph
// sources. Sources are wrapped with text.Cached, so resolvers may return
// uncached sources.
//
// Example:
//
//	fonts := text.NewCollection(nil)
//	fonts.AddFont("Inter", inter)
//	p := paragraph.New(paragraph.WithResolver(fonts))
func WithResolver(r text.Resolver) Option {
	return func(o *options) {
		o.resolver = r
	}
}

// WithTabSpaceCount sets the width of a tab in space advances of the
// paragraph's default font. The default is layout.DefaultTabSpaceCount.
func WithTabSpaceCount(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.tabSpaceCount = n
		}
	}
}

// WithTabStops sets explicit tab stop positions in pixels from the line
// start. Tabs past the last stop fall back to the repeating tab width.
func WithTabStops(stops ...float64) Option {
	return func(o *options) {
		o.tabStops = append(o.tabStops[:0], stops...)
	}
}
