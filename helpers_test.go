package paragraph

import (
	"testing"

	"github.com/gogpu/paragraph/text"
)

// testFontSize makes every mono glyph 10 wide, with ascent 8 and
// descent 2.
const testFontSize = 10

// monoResolver resolves every family to one fixed-advance source.
func monoResolver(t testing.TB) text.Resolver {
	t.Helper()
	src := text.NewMonoSource(text.MonoMetrics{Advance: 1, Ascent: 0.8, Descent: 0.2})
	return text.ResolverFunc(func(string, text.Weight, text.Slant) text.GlyphSource {
		return src
	})
}

// layoutText lays out s in the default text style at width.
func layoutText(t testing.TB, s string, style ParagraphStyle, width float64) *Paragraph {
	t.Helper()
	if style.FontSize == 0 {
		style.FontSize = testFontSize
	}
	p := New(WithResolver(monoResolver(t)))
	p.SetParagraphStyle(style)
	p.SetText(s, nil)
	p.Layout(ParagraphConstraints{Width: width})
	return p
}

// lineStrings returns the text of each retained line, trailing spaces
// and newline excluded.
func lineStrings(p *Paragraph) []string {
	u := p.text
	out := make([]string, p.LineCount())
	for i := range out {
		l := p.LineRange(i)
		out[i] = string(decode(u[l.Start:l.End]))
	}
	return out
}

func decode(u []uint16) []rune {
	return []rune(TextBlob{Text: u}.String())
}

// recordingCanvas records the calls of Paragraph.Paint.
type recordingCanvas struct {
	calls []string
	rects []canvasRect
	blobs []canvasBlob
	lines []canvasLine
}

type canvasRect struct {
	r     text.Rect
	paint Paint
}

type canvasBlob struct {
	text  string
	at    Offset
	paint Paint
}

type canvasLine struct {
	from, to Offset
	paint    Paint
}

func (c *recordingCanvas) DrawRect(r text.Rect, paint Paint) {
	c.calls = append(c.calls, "rect")
	c.rects = append(c.rects, canvasRect{r, paint})
}

func (c *recordingCanvas) DrawTextBlob(blob TextBlob, at Offset, paint Paint) {
	c.calls = append(c.calls, "blob")
	c.blobs = append(c.blobs, canvasBlob{blob.String(), at, paint})
}

func (c *recordingCanvas) DrawLine(from, to Offset, paint Paint) {
	c.calls = append(c.calls, "line")
	c.lines = append(c.lines, canvasLine{from, to, paint})
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
