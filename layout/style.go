package layout

import (
	"log/slog"

	"github.com/gogpu/paragraph/internal/logger"
	"github.com/gogpu/paragraph/text"
	"github.com/gogpu/paragraph/text/emoji"
)

// Style is the measurement view of a text style: the resolved face and
// the spacing that applies to every character of a run.
type Style struct {
	Source        text.GlyphSource
	Size          float64
	LetterSpacing float64
	WordSpacing   float64
	Slant         text.Slant
}

type charKind uint8

const (
	kindGlyph charKind = iota
	kindEmoji
	kindTab
)

// isEmojiUnit reports whether the code unit takes the emoji path.
func isEmojiUnit(c uint16) bool {
	return isHighSurrogate(c) || emoji.IsSingleUnit(rune(c))
}

// advanceAt measures the character starting at units[at]. x is the
// position of the character relative to the tab origin. It returns the
// advance, the number of code units consumed (2 for a surrogate pair) and
// the kind. For kindGlyph the glyph metrics are returned as well.
func (s *Style) advanceAt(units []uint16, at, end int, x float64, tabs *TabStops) (float64, int, charKind, text.GlyphMetrics) {
	c := units[at]
	if isEmojiUnit(c) {
		n := 1
		if isHighSurrogate(c) && at+1 < end && isLowSurrogate(units[at+1]) {
			n = 2
		}
		return s.Size + s.LetterSpacing, n, kindEmoji, text.GlyphMetrics{}
	}
	if c == '\t' && tabs != nil {
		return tabs.NextTab(x) - x, 1, kindTab, text.GlyphMetrics{}
	}

	g, ok := s.Source.Glyph(rune(c), s.Size, s.Slant)
	if !ok {
		if logger.Enabled(slog.LevelDebug) {
			logger.Get().Debug("layout: glyph missing",
				"rune", rune(c), "source", s.Source.ID(), "size", s.Size)
		}
		g = text.GlyphMetrics{}
	}
	adv := g.Advance + s.LetterSpacing
	if IsWordSpace(c) {
		adv += s.WordSpacing
	}
	return adv, 1, kindGlyph, g
}
