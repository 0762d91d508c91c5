// Package paragraph lays out styled text into lines of positioned glyphs
// and paints them through a small Canvas interface.
//
// # Overview
//
// A Paragraph takes UTF-16 text, a table of styled runs and a
// ParagraphStyle. Layout breaks hard-break blocks into lines with a greedy
// word-boundary breaker, positions every code unit, applies alignment,
// justification and ellipsis truncation, and records everything needed to
// paint and to answer caret and selection queries.
//
// # Quick Start
//
//	b := paragraph.NewBuilder(paragraph.ParagraphStyle{FontSize: 16})
//	b.AddText("Hello, ")
//	b.PushStyle(paragraph.TextStyle{FontSize: 16, FontWeight: text.WeightBold})
//	b.AddText("world")
//	b.Pop()
//
//	p := b.Build()
//	p.Layout(paragraph.ParagraphConstraints{Width: 200})
//	fmt.Println(p.Height(), p.LineCount())
//
// # Offsets
//
// Every text position is an offset in UTF-16 code units, the unit used by
// LineRange, GlyphPosition, CodeUnitRun and TextPosition. A surrogate pair
// is laid out as one character and is never split by a break or a query.
//
// # Fonts
//
// Styles name a family, weight and slant. A text.Resolver turns them into
// a text.GlyphSource; the default resolver serves the Go fonts. Use
// WithResolver to plug in other faces.
//
// # Reuse
//
// Derived buffers grow and are never shrunk, so laying out again at a new
// width or recycling a Paragraph through a Pool does not allocate once the
// buffers are warm. A Paragraph is not safe for concurrent use.
//
// # Logging
//
// The packages log through log/slog and are silent by default. See
// SetLogger.
package paragraph
