// Package emoji classifies characters that the paragraph engine measures
// as emoji rather than through the font.
//
// Emoji are drawn from a fixed-size sprite sheet, so layout gives them a
// square cell of the font size instead of the font's advance. A surrogate
// pair always takes that path; a single UTF-16 code unit takes it when
// IsSingleUnit reports true.
package emoji
