// Package layout measures and line-breaks UTF-16 text for the paragraph
// engine.
//
// The pieces are leaves-first:
//
//   - Buffer: a window over UTF-16 code units that sub-slices without copying
//   - Classify / FindWordRange: letter-like, symbol and whitespace classes
//   - WordBreaker: forward-only cursor over word boundaries
//   - TabStops: next tab stop from explicit stops or a multiple of the
//     space advance
//   - LineBreaker: greedy candidate-based breaking of one hard-break block
//   - Layout, MeasureText, ComputeCharWidths, ComputeTruncateCount:
//     per-code-unit advances and positions for one styled run
//
// Offsets are code-unit indices. A surrogate pair is one character: its
// high unit carries the whole advance and its low unit advances by zero.
//
// None of the types here are safe for concurrent use.
package layout
