package layout

import (
	"math"

	"github.com/gogpu/paragraph/internal/buf"
)

const (
	scoreInfinity    = math.MaxFloat64
	scoreDesperate   = 1e10
	initialCandidate = 16
)

// LineInfo is one line produced by ComputeBreaks, relative to the block
// passed to SetText. Width excludes trailing line-end whitespace.
type LineInfo struct {
	Start int
	End   int
	Width float64
}

// candidate is a possible break position. preBreak is the width of the
// text before the break including trailing spaces; postBreak excludes
// them, so postBreak is what the line measures if it ends here.
type candidate struct {
	offset     int
	preBreak   float64
	postBreak  float64
	penalty    float64
	preSpaces  int
	postSpaces int
}

// LineBreaker breaks one hard-break block into lines with a greedy
// candidate scan. Usage per block:
//
//	b.SetText(text, start, length)
//	for each style run { b.AddStyleRun(style, runStart, runEnd) }
//	lines := b.ComputeBreaks()
//	b.Finish()
//
// Run offsets are relative to the block and must be added in order.
// A word wider than the line gets a candidate after every character, so
// every line consumes at least one character.
type LineBreaker struct {
	text       Buffer
	charWidths []float64
	words      WordBreaker
	tabs       *TabStops
	lineWidth  float64

	width      float64
	preBreak   float64
	lastBreak  int
	bestBreak  int
	bestScore  float64
	spaceCount int

	candidates []candidate
	lines      []LineInfo
	lineStart  int
	exhausted  bool
}

// SetLineWidth sets the available width. Use math.Inf(1) for no limit.
func (b *LineBreaker) SetLineWidth(w float64) {
	b.lineWidth = w
}

// SetTabStops sets the stops used for '\t'.
func (b *LineBreaker) SetTabStops(tabs *TabStops) {
	b.tabs = tabs
}

// SetText starts a new block of length code units at offset in text.
func (b *LineBreaker) SetText(text []uint16, offset, length int) {
	b.text = NewBuffer(text, offset, length)
	b.charWidths = buf.Grow(b.charWidths, length)
	b.words.SetText(b.text)
	b.words.Next()

	b.candidates = append(b.candidates[:0], candidate{penalty: 0})
	if cap(b.candidates) < initialCandidate {
		b.candidates = buf.Reserve(b.candidates, initialCandidate)
	}
	b.lines = b.lines[:0]
	b.width = 0
	b.preBreak = 0
	b.lastBreak = 0
	b.bestBreak = 0
	b.bestScore = scoreInfinity
	b.spaceCount = 0
	b.lineStart = 0
	b.exhausted = false
}

// AddStyleRun measures [start, end) of the block with style and adds its
// word boundaries as break candidates. It returns the width of the run.
func (b *LineBreaker) AddStyleRun(style *Style, start, end int) float64 {
	units := b.text.Text()
	width := ComputeCharWidths(b.width-b.preBreak, units, start, end-start, style, b.charWidths[start:end], b.tabs)

	current := b.words.Current()
	postBreak := b.width
	postSpaces := b.spaceCount
	for i := start; i < end; i++ {
		c := units[i]
		if c == '\t' && b.tabs != nil {
			b.placeTab(i, postBreak, postSpaces)
		} else {
			if IsWordSpace(c) {
				b.spaceCount++
			}
			b.width += b.charWidths[i]
			if !IsLineEndSpace(c) {
				postBreak = b.width
				postSpaces = b.spaceCount
			}
		}
		if i+1 == current {
			b.addWordBreak(current, b.width, postBreak, b.spaceCount, postSpaces, 0)
			current = b.words.Next()
		}
	}
	return width
}

// placeTab advances the running width to the next tab stop. When the
// stop lies past the line width and the line already holds text, the line
// is broken before the tab and the tab starts the next line.
func (b *LineBreaker) placeTab(i int, postBreak float64, postSpaces int) {
	before := b.width
	tabX := b.tabs.NextTab(b.width - b.preBreak)
	if tabX > b.lineWidth && b.width > b.preBreak && b.candidates[b.lastBreak].offset != i {
		b.addWordBreak(i, b.width, postBreak, b.spaceCount, postSpaces, 0)
		if last := len(b.candidates) - 1; b.lastBreak != last {
			b.bestBreak = last
			b.pushGreedyBreak()
		}
		tabX = b.tabs.NextTab(b.width - b.preBreak)
	}
	b.width = b.preBreak + tabX
	b.charWidths[i] = b.width - before
}

func (b *LineBreaker) addWordBreak(offset int, preBreak, postBreak float64, preSpaces, postSpaces int, penalty float64) {
	width := b.candidates[len(b.candidates)-1].preBreak
	if postBreak-width > b.lineWidth {
		// The word does not fit on a line of its own: allow a break after
		// every character with ink.
		i := b.candidates[len(b.candidates)-1].offset
		width += b.charWidths[i]
		i++
		for ; i < offset; i++ {
			w := b.charWidths[i]
			if w > 0 {
				b.addCandidate(candidate{
					offset:     i,
					preBreak:   width,
					postBreak:  width,
					penalty:    scoreDesperate,
					preSpaces:  postSpaces,
					postSpaces: postSpaces,
				})
				width += w
			}
		}
	}
	b.addCandidate(candidate{
		offset:     offset,
		preBreak:   preBreak,
		postBreak:  postBreak,
		penalty:    penalty,
		preSpaces:  preSpaces,
		postSpaces: postSpaces,
	})
}

func (b *LineBreaker) addCandidate(cand candidate) {
	b.candidates = append(b.candidates, cand)
	candIndex := len(b.candidates) - 1

	if cand.postBreak-b.preBreak > b.lineWidth {
		if b.bestBreak == b.lastBreak {
			b.bestBreak = candIndex
		}
		b.pushGreedyBreak()
	}

	for b.lastBreak != candIndex && cand.postBreak-b.preBreak > b.lineWidth {
		for i := b.lastBreak + 1; i < candIndex; i++ {
			if p := b.candidates[i].penalty; p <= b.bestScore {
				b.bestBreak = i
				b.bestScore = p
			}
		}
		if b.bestBreak == b.lastBreak {
			b.bestBreak = candIndex
		}
		b.pushGreedyBreak()
	}

	if cand.penalty <= b.bestScore {
		b.bestBreak = candIndex
		b.bestScore = cand.penalty
	}
}

func (b *LineBreaker) pushGreedyBreak() {
	best := b.candidates[b.bestBreak]
	b.pushBreak(best.offset, best.postBreak-b.preBreak)
	b.bestScore = scoreInfinity
	b.lastBreak = b.bestBreak
	b.preBreak = best.preBreak
}

func (b *LineBreaker) pushBreak(offset int, width float64) {
	b.lines = append(b.lines, LineInfo{Start: b.lineStart, End: offset, Width: width})
	b.lineStart = offset
}

// ComputeBreaks closes the block and returns its lines. The slice is owned
// by the breaker and valid until the next SetText. A block that was
// already computed or finished yields nil.
func (b *LineBreaker) ComputeBreaks() []LineInfo {
	if b.exhausted {
		return nil
	}
	b.exhausted = true

	n := len(b.candidates)
	if n > 0 && (n == 1 || b.lastBreak != n-1) {
		last := b.candidates[n-1]
		b.pushBreak(last.offset, last.postBreak-b.preBreak)
	}
	return b.lines
}

// Finish releases the block. Scratch buffers keep their capacity.
func (b *LineBreaker) Finish() {
	b.words.Finish()
	b.text = Buffer{}
	b.candidates = b.candidates[:0]
	b.width = 0
	b.exhausted = true
}
