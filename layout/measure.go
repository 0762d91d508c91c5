package layout

import (
	"github.com/gogpu/paragraph/internal/buf"
	"github.com/gogpu/paragraph/text"
)

// Layout positions the characters of one styled run. A Layout is reused
// across runs; every DoLayout overwrites the previous result.
type Layout struct {
	tabs  *TabStops
	words WordBreaker

	positions []float64
	advances  []float64
	count     int
	advance   float64
	bounds    text.Rect
}

// SetTabStops sets the stops used for '\t'. Without stops a tab is
// measured like any other character.
func (l *Layout) SetTabStops(tabs *TabStops) {
	l.tabs = tabs
}

// DoLayout lays out count code units of units starting at start. offset is
// the x of the run within its line and only affects tab positions; X
// values are relative to the run. It returns the total advance.
func (l *Layout) DoLayout(offset float64, units []uint16, start, count int, style *Style) float64 {
	l.count = count
	l.positions = buf.Grow(l.positions, count)
	l.advances = buf.Grow(l.advances, count)
	l.advance = 0
	l.bounds = text.Rect{}
	if count <= 0 {
		return 0
	}

	l.words.SetText(NewBuffer(units, start, count))
	wordStart := 0
	for wordEnd := l.words.Next(); wordEnd > 0; wordEnd = l.words.Next() {
		l.layoutWord(offset, units[start:start+count], wordStart, wordEnd, style)
		wordStart = wordEnd
	}
	l.words.Finish()
	return l.advance
}

func (l *Layout) layoutWord(offset float64, units []uint16, from, to int, style *Style) {
	half := style.LetterSpacing / 2
	var m text.FontMetrics
	haveMetrics := false

	for i := from; i < to; {
		adv, n, kind, g := style.advanceAt(units, i, to, offset+l.advance, l.tabs)
		x := l.advance + half
		switch kind {
		case kindEmoji:
			if !haveMetrics {
				m = style.Source.Metrics(style.Size)
				haveMetrics = true
			}
			side := m.Descent - m.Ascent
			l.bounds = l.bounds.Union(text.Rect{MinX: x, MinY: m.Ascent, MaxX: x + side, MaxY: m.Descent})
		case kindTab:
			x = l.advance
		default:
			l.bounds = l.bounds.Union(g.Bounds.Translate(x, 0))
		}
		l.positions[i] = x
		l.advances[i] = adv
		if n == 2 {
			l.positions[i+1] = x
			l.advances[i+1] = 0
		}
		l.advance += adv
		i += n
	}
}

// Count returns the number of code units of the last layout.
func (l *Layout) Count() int { return l.count }

// X returns the x of code unit i relative to the run start.
func (l *Layout) X(i int) float64 { return l.positions[i] }

// Y returns the y of code unit i relative to the baseline. Text is laid
// out on a single baseline, so Y is always 0.
func (l *Layout) Y(int) float64 { return 0 }

// CharAdvance returns the advance of code unit i. The low half of a
// surrogate pair advances by zero.
func (l *Layout) CharAdvance(i int) float64 { return l.advances[i] }

// Advance returns the total advance of the last layout.
func (l *Layout) Advance() float64 { return l.advance }

// Bounds returns the union of the ink bounds of the last layout relative
// to the run origin on the baseline.
func (l *Layout) Bounds() text.Rect { return l.bounds }

// MeasureText returns the advance of count code units of units starting at
// start. Tabs are measured as plain characters.
func MeasureText(units []uint16, start, count int, style *Style) float64 {
	return ComputeCharWidths(0, units, start, count, style, nil, nil)
}

// ComputeCharWidths measures count code units starting at start and, when
// advances is non-nil, stores the advance of code unit start+i in
// advances[i]. offset is the x of units[start] relative to the tab origin.
// It returns the total advance.
func ComputeCharWidths(offset float64, units []uint16, start, count int, style *Style, advances []float64, tabs *TabStops) float64 {
	end := start + count
	total := 0.0
	for i := start; i < end; {
		adv, n, _, _ := style.advanceAt(units, i, end, offset+total, tabs)
		if advances != nil {
			advances[i-start] = adv
			if n == 2 {
				advances[i-start+1] = 0
			}
		}
		total += adv
		i += n
	}
	return total
}

// ComputeTruncateCount returns how many trailing code units of
// [start, start+count) must be dropped so that offset plus the width of
// the rest does not exceed limit. A surrogate pair is dropped whole.
func ComputeTruncateCount(offset float64, units []uint16, start, count int, style *Style, limit float64, tabs *TabStops) int {
	if count <= 0 {
		return 0
	}
	widths := make([]float64, count)
	total := ComputeCharWidths(offset, units, start, count, style, widths, tabs)

	n := count
	for n > 0 && offset+total > limit {
		n--
		total -= widths[n]
		if n > 0 && isLowSurrogate(units[start+n]) && isHighSurrogate(units[start+n-1]) {
			n--
			total -= widths[n]
		}
	}
	return count - n
}
