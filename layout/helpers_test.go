package layout

import (
	"testing"
	"unicode/utf16"

	"github.com/gogpu/paragraph/text"
)

// units converts s to UTF-16 code units.
func units(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// monoStyle returns a style where every glyph is 10 wide at size 10 and
// the space is spaceRatio*10 wide.
func monoStyle(t testing.TB, spaceRatio float64) *Style {
	t.Helper()
	m := text.MonoMetrics{Advance: 1, Ascent: 0.8, Descent: 0.2}
	if spaceRatio > 0 {
		m.Advances = map[rune]float64{' ': spaceRatio}
	}
	return &Style{Source: text.NewMonoSource(m), Size: 10}
}

// breakText runs the line breaker over s as a single block and style run.
func breakText(t testing.TB, s string, width float64, style *Style, tabs *TabStops) []LineInfo {
	t.Helper()
	u := units(s)
	var b LineBreaker
	b.SetLineWidth(width)
	b.SetTabStops(tabs)
	b.SetText(u, 0, len(u))
	b.AddStyleRun(style, 0, len(u))
	lines := append([]LineInfo(nil), b.ComputeBreaks()...)
	b.Finish()
	return lines
}

// lineTexts returns the text of each line of s.
func lineTexts(s string, lines []LineInfo) []string {
	u := units(s)
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = string(utf16.Decode(u[l.Start:l.End]))
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
