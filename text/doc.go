// Package text is the glyph-source layer of the paragraph engine.
//
// Layout never talks to a font file directly. It asks a Resolver for a
// GlyphSource keyed by family, weight and slant, then asks that source for
// per-character advances and bounds and for size-dependent FontMetrics:
//
//   - GlyphSource: capability interface queried by the layout engine
//   - FontSource: a TTF/OTF file behind a pluggable FontParser
//     (default "ximage" via golang.org/x/image, alternative "gotext" via
//     github.com/go-text/typesetting)
//   - MonoSource: fixed-advance source described by em ratios
//   - CachedSource: memoizes metrics per (source, size) and glyphs per
//     (source, size, slant, rune)
//   - Collection: a Resolver over registered sources with a fallback
//
// # Example usage
//
//	src, err := text.NewFontSourceFromFile("Roboto-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fonts := text.NewCollection(src)
//	fonts.AddFont("Roboto", src)
//
//	g := fonts.Resolve("Roboto", text.WeightNormal, text.SlantNormal)
//	m, ok := g.Glyph('A', 16, text.SlantNormal)
//
// # Coordinates
//
// All metrics use a y-down coordinate system with the baseline at y = 0:
// FontMetrics.Ascent is negative and FontMetrics.Descent is positive.
// Glyph bounds are relative to the glyph origin on the baseline.
package text
