package paragraph

import (
	"log/slog"
	"math"
	"sync"
	"unicode/utf16"

	"github.com/gogpu/paragraph/internal/buf"
	"github.com/gogpu/paragraph/internal/logger"
	"github.com/gogpu/paragraph/layout"
	"github.com/gogpu/paragraph/text"
)

// fallbackSource stands in when a resolver returns nil.
var fallbackSource = sync.OnceValue(func() text.GlyphSource {
	return text.NewMonoSource(text.DefaultMonoMetrics)
})

// ellipsisKey identifies the cached ellipsized run text.
type ellipsisKey struct {
	start int
	kept  int
	valid bool
}

// Paragraph is styled text laid out into lines.
//
// SetText and SetParagraphStyle invalidate the layout; Layout recomputes it
// when invalid or when the width changes. Slices returned by accessors
// and held by paint records alias internal buffers and stay valid until the
// next SetText, SetParagraphStyle or Layout.
//
// A Paragraph is not safe for concurrent use.
type Paragraph struct {
	opts options

	text         []uint16
	runs         StyledRuns
	style        ParagraphStyle
	defaultStyle TextStyle
	ellipsis     []uint16

	needsLayout bool
	pooled      bool
	width       float64
	direction   text.Direction
	align       TextAlign

	tabs    layout.TabStops
	breaker layout.LineBreaker
	measure layout.Layout

	// styles[0] is the default style; run style ref r is at r+1.
	styles []layout.Style

	lineRanges    []LineRange
	lineWidths    []float64
	lineHeights   []float64
	lineBaselines []float64
	glyphLines    []GlyphLine
	positions     []GlyphPosition
	codeUnitRuns  []CodeUnitRun
	paintRecords  []PaintRecord
	blobPositions []float64
	words         []Range[int]

	ellipsized    []uint16
	ellipsizedKey ellipsisKey

	maxIntrinsicWidth   float64
	minIntrinsicWidth   float64
	alphabeticBaseline  float64
	ideographicBaseline float64
	didExceedMaxLines   bool
}

// New creates an empty Paragraph.
func New(opts ...Option) *Paragraph {
	p := &Paragraph{opts: defaultOptions(), needsLayout: true}
	for _, opt := range opts {
		opt(&p.opts)
	}
	p.tabs.SetSpaceCount(p.opts.tabSpaceCount)
	p.tabs.Set(p.opts.tabStops, 0)
	return p
}

// SetText replaces the text and its styled runs. Code units not covered
// by runs use the default text style; a nil runs styles everything that
// way. runs is copied.
func (p *Paragraph) SetText(s string, runs *StyledRuns) {
	p.text = p.text[:0]
	for _, r := range s {
		p.text = utf16.AppendRune(p.text, r)
	}
	p.setRuns(runs)
	p.invalidate()
}

// setUnits is SetText for text that is already UTF-16.
func (p *Paragraph) setUnits(units []uint16, runs *StyledRuns) {
	p.text = append(p.text[:0], units...)
	p.setRuns(runs)
	p.invalidate()
}

// setRuns copies src and fills the gaps with DefaultStyleRef so that the
// runs cover the whole text.
func (p *Paragraph) setRuns(src *StyledRuns) {
	p.runs.Reset()
	n := len(p.text)
	pos := 0
	if src != nil {
		p.runs.styles = append(p.runs.styles, src.styles...)
		for _, run := range src.runs {
			start := min(max(run.Start, pos), n)
			end := min(run.End, n)
			if start > pos {
				p.runs.appendRun(DefaultStyleRef, pos, start)
			}
			if end > start {
				p.runs.appendRun(run.Style, start, end)
				pos = end
			}
		}
	}
	if pos < n {
		p.runs.appendRun(DefaultStyleRef, pos, n)
	}
}

// SetParagraphStyle replaces the paragraph style.
func (p *Paragraph) SetParagraphStyle(style ParagraphStyle) {
	p.style = style
	p.ellipsis = p.ellipsis[:0]
	for _, r := range style.Ellipsis {
		p.ellipsis = utf16.AppendRune(p.ellipsis, r)
	}
	p.invalidate()
}

func (p *Paragraph) invalidate() {
	p.needsLayout = true
	p.ellipsizedKey = ellipsisKey{}
}

// ParagraphStyle returns the current paragraph style.
func (p *Paragraph) ParagraphStyle() ParagraphStyle {
	return p.style
}

// Text returns the text.
func (p *Paragraph) Text() string {
	return string(utf16.Decode(p.text))
}

// NeedsLayout reports whether Layout has to run before painting or
// querying.
func (p *Paragraph) NeedsLayout() bool {
	return p.needsLayout
}

// Layout breaks the text into lines no wider than c.Width and positions
// every character. The width is floored to whole pixels; NaN and negative
// widths count as 0 and math.Inf(1) disables wrapping. Layout at the
// width of the previous call is a no-op unless the content changed.
func (p *Paragraph) Layout(c ParagraphConstraints) {
	width := c.Width
	if math.IsNaN(width) || width < 0 {
		width = 0
	}
	width = math.Floor(width)
	if !p.needsLayout && width == p.width {
		return
	}
	p.needsLayout = false
	p.width = width

	p.defaultStyle = p.style.TextStyle()
	p.resolveStyles()
	p.tabs.SetFont(p.styles[0].Source, p.styles[0].Size)

	p.direction = p.style.TextDirection
	if p.direction == text.DirectionAuto {
		p.direction = text.DetectDirection(p.text, text.DirectionLTR)
	}
	p.align = p.style.TextAlign.resolve(p.direction)

	p.computeLineBreaks()
	maxWordWidth := p.layoutLines()
	p.computeIntrinsicWidths(maxWordWidth)

	if logger.Enabled(slog.LevelDebug) {
		logger.Get().Debug("paragraph: layout",
			"width", p.width,
			"units", len(p.text),
			"lines", p.LineCount(),
			"height", p.Height(),
			"exceeded", p.didExceedMaxLines)
	}
}

// resolveStyles looks up the glyph source of every style once per layout.
func (p *Paragraph) resolveStyles() {
	n := p.runs.StyleCount() + 1
	clear(p.styles)
	p.styles = buf.Grow(p.styles, n)
	p.styles[0] = p.layoutStyle(&p.defaultStyle)
	for i := 1; i < n; i++ {
		p.styles[i] = p.layoutStyle(p.runs.Style(StyleRef(i - 1)))
	}
}

func (p *Paragraph) layoutStyle(s *TextStyle) layout.Style {
	src := p.opts.resolverOrDefault().Resolve(s.Family(), s.Weight(), s.FontStyle)
	if src == nil {
		logger.Get().Warn("paragraph: resolver returned no source, using fallback",
			"family", s.Family(), "weight", s.Weight(), "slant", s.FontStyle)
		src = fallbackSource()
	}
	return layout.Style{
		Source:        text.Cached(src),
		Size:          s.Size(),
		LetterSpacing: s.LetterSpacing,
		WordSpacing:   s.WordSpacing,
		Slant:         s.FontStyle,
	}
}

// styleFor returns the text style and measurement style of ref.
func (p *Paragraph) styleFor(ref StyleRef) (*TextStyle, *layout.Style) {
	if ts := p.runs.Style(ref); ts != nil {
		return ts, &p.styles[ref+1]
	}
	return &p.defaultStyle, &p.styles[0]
}

// computeLineBreaks splits the text at '\n' and breaks every block.
func (p *Paragraph) computeLineBreaks() {
	p.lineRanges = p.lineRanges[:0]
	p.lineWidths = p.lineWidths[:0]
	p.breaker.SetLineWidth(p.width)
	p.breaker.SetTabStops(&p.tabs)

	n := len(p.text)
	it := p.runs.Iterator()
	blockStart := 0
	for {
		blockEnd := blockStart
		for blockEnd < n && p.text[blockEnd] != '\n' {
			blockEnd++
		}
		p.breakBlock(&it, blockStart, blockEnd)
		if blockEnd >= n {
			break
		}
		blockStart = blockEnd + 1
	}
}

func (p *Paragraph) breakBlock(it *RunIterator, blockStart, blockEnd int) {
	n := len(p.text)
	if blockEnd == blockStart {
		endIncludingNewline := blockEnd
		if blockEnd < n {
			endIncludingNewline++
		}
		p.lineRanges = append(p.lineRanges, LineRange{
			Start:                  blockStart,
			End:                    blockEnd,
			EndExcludingWhitespace: blockEnd,
			EndIncludingNewline:    endIncludingNewline,
			HardBreak:              true,
		})
		p.lineWidths = append(p.lineWidths, 0)
		return
	}

	p.breaker.SetText(p.text, blockStart, blockEnd-blockStart)
	it.NextTo(blockStart)
	for i := it.Index(); i < p.runs.Size(); i++ {
		run := p.runs.Run(i)
		if run.Start >= blockEnd {
			break
		}
		_, st := p.styleFor(run.Style)
		p.breaker.AddStyleRun(st, max(run.Start, blockStart)-blockStart, min(run.End, blockEnd)-blockStart)
	}

	lines := p.breaker.ComputeBreaks()
	for i, l := range lines {
		start := blockStart + l.Start
		end := blockStart + l.End
		hard := i == len(lines)-1
		endIncludingNewline := end
		if hard && end < n {
			endIncludingNewline++
		}
		endExcludingWhitespace := end
		for endExcludingWhitespace > start && layout.IsLineEndSpace(p.text[endExcludingWhitespace-1]) {
			endExcludingWhitespace--
		}
		p.lineRanges = append(p.lineRanges, LineRange{
			Start:                  start,
			End:                    end,
			EndExcludingWhitespace: endExcludingWhitespace,
			EndIncludingNewline:    endIncludingNewline,
			HardBreak:              hard,
		})
		p.lineWidths = append(p.lineWidths, l.Width)
	}
	p.breaker.Finish()
}

// layoutLines positions the retained lines and returns the widest word.
func (p *Paragraph) layoutLines() float64 {
	clear(p.paintRecords)
	clear(p.glyphLines)
	p.paintRecords = p.paintRecords[:0]
	p.glyphLines = p.glyphLines[:0]
	p.lineHeights = p.lineHeights[:0]
	p.lineBaselines = p.lineBaselines[:0]
	p.codeUnitRuns = p.codeUnitRuns[:0]
	// Sub-slices of these two are handed out per line, so they must not
	// reallocate while lines are appended.
	p.positions = buf.Reserve(p.positions[:0], len(p.text))
	p.blobPositions = buf.Reserve(p.blobPositions[:0], len(p.text)+len(p.ellipsis))
	p.alphabeticBaseline = 0
	p.ideographicBaseline = 0
	p.measure.SetTabStops(&p.tabs)

	total := len(p.lineRanges)
	limit := total
	if !p.style.UnlimitedLines() && p.style.MaxLines < total {
		limit = p.style.MaxLines
	}
	p.didExceedMaxLines = total > limit

	maxWordWidth := 0.0
	yOffset := 0.0
	preMaxDescent := 0.0
	it := p.runs.Iterator()

	for li := 0; li < limit; li++ {
		line := p.lineRanges[li]

		ellipsize := p.style.Ellipsized() && !math.IsInf(p.width, 1) && !line.HardBreak &&
			(li == limit-1 || p.style.UnlimitedLines())
		justify := p.align == TextAlignJustify && li != limit-1 && !line.HardBreak && !ellipsize

		p.words = findWords(p.text, line.Start, line.End, p.words[:0])
		gap := 0.0
		if justify && len(p.words) > 1 {
			gap = (p.width - p.lineWidths[li]) / float64(len(p.words)-1)
		}

		// Trailing spaces would keep the last visible glyph off the edge.
		lineEnd := line.End
		if p.align == TextAlignRight || p.align == TextAlignCenter {
			lineEnd = line.EndExcludingWhitespace
		}

		lineGlyphStart := len(p.positions)
		lineRunStart := len(p.codeUnitRuns)
		lineRecordStart := len(p.paintRecords)

		it.NextTo(line.Start)
		firstRun := it.Index()
		lastRun := firstRun - 1
		for i := firstRun; i < p.runs.Size() && p.runs.Run(i).Start < lineEnd; i++ {
			lastRun = i
		}

		runX := 0.0
		justifyX := 0.0
		wordIndex := 0
		wordStartX := math.NaN()
		for i := firstRun; i <= lastRun; i++ {
			run := p.runs.Run(i)
			start := max(run.Start, line.Start)
			end := min(run.End, lineEnd)
			if end <= start {
				continue
			}
			ts, st := p.styleFor(run.Style)

			units, unitStart, count, kept := p.text, start, end-start, end-start
			if ellipsize && i == lastRun {
				units, count, kept = p.ellipsize(start, end, runX, st)
				unitStart = 0
			}

			p.measure.DoLayout(runX, units, unitStart, count, st)
			if count == 0 {
				continue
			}

			blobStart := len(p.blobPositions)
			runGlyphStart := len(p.positions)
			// The record starts at the run's first justified glyph; gaps
			// inside the run widen it up to its last glyph.
			runJustifyX, lastJustifyX := justifyX, justifyX
			for g := 0; g < count; {
				n := layout.CharLen(units, unitStart+g, unitStart+count)
				x := p.measure.X(g) + justifyX
				lastJustifyX = justifyX
				adv := 0.0
				for k := 0; k < n; k++ {
					p.blobPositions = append(p.blobPositions, p.measure.X(g+k)+justifyX-runJustifyX)
					adv += p.measure.CharAdvance(g + k)
				}
				if g < kept {
					cu := start + g
					p.positions = append(p.positions, GlyphPosition{
						CodeUnits: Range[int]{Start: cu, End: cu + n},
						X:         Range[float64]{Start: runX + x, End: runX + x + adv},
					})
					if wordIndex < len(p.words) && p.words[wordIndex].Start == cu {
						wordStartX = runX + x
					}
					if wordIndex < len(p.words) && p.words[wordIndex].End == cu+n {
						if justify {
							justifyX += gap
						}
						wordIndex++
						if !math.IsNaN(wordStartX) {
							maxWordWidth = math.Max(maxWordWidth, runX+x+adv-wordStartX)
							wordStartX = math.NaN()
						}
					}
				}
				g += n
			}

			metrics := st.Source.Metrics(st.Size)
			blobEnd := len(p.blobPositions)
			p.paintRecords = append(p.paintRecords, PaintRecord{
				Style:  *ts,
				Offset: Offset{X: runX + runJustifyX},
				Blob: TextBlob{
					Text:      units[unitStart : unitStart+count : unitStart+count],
					Positions: p.blobPositions[blobStart:blobEnd:blobEnd],
					Bounds:    p.measure.Bounds(),
					Source:    st.Source,
					Size:      st.Size,
					Slant:     st.Slant,
				},
				Metrics:  metrics,
				Line:     li,
				RunWidth: p.measure.Advance() + lastJustifyX - runJustifyX,
			})

			if glyphs := p.positions[runGlyphStart:]; len(glyphs) > 0 {
				p.codeUnitRuns = append(p.codeUnitRuns, CodeUnitRun{
					LineNumber:      li,
					Direction:       text.DetectDirection(p.text[start:end], p.direction),
					CodeUnits:       Range[int]{Start: start, End: end},
					X:               Range[float64]{Start: glyphs[0].X.Start, End: glyphs[len(glyphs)-1].X.End},
					GlyphIndexStart: runGlyphStart,
					Count:           len(glyphs),
					Metrics:         metrics,
				})
			}
			runX += p.measure.Advance()
		}

		lineX := p.lineXOffset(runX)
		if lineX != 0 {
			for i := lineGlyphStart; i < len(p.positions); i++ {
				p.positions[i] = p.positions[i].Shift(lineX)
			}
			for i := lineRunStart; i < len(p.codeUnitRuns); i++ {
				p.codeUnitRuns[i].X = p.codeUnitRuns[i].X.Shift(lineX)
			}
		}

		nextLineStart := len(p.text)
		if li < total-1 {
			nextLineStart = p.lineRanges[li+1].Start
		}
		lineGlyphEnd := len(p.positions)
		p.glyphLines = append(p.glyphLines, GlyphLine{
			Positions:       p.positions[lineGlyphStart:lineGlyphEnd:lineGlyphEnd],
			TotalCountUnits: nextLineStart - line.Start,
		})

		maxSpacing, maxDescent := 0.0, 0.0
		for i := lineRecordStart; i < len(p.paintRecords); i++ {
			r := &p.paintRecords[i]
			p.updateLineMetrics(li == 0, r.Metrics, r.Style.LineHeight(), &maxSpacing, &maxDescent)
		}
		if len(p.paintRecords) == lineRecordStart {
			def := &p.styles[0]
			p.updateLineMetrics(li == 0, def.Source.Metrics(def.Size), p.defaultStyle.LineHeight(), &maxSpacing, &maxDescent)
		}

		prevHeight := 0.0
		if li > 0 {
			prevHeight = p.lineHeights[li-1]
		}
		p.lineHeights = append(p.lineHeights, prevHeight+maxSpacing+maxDescent)
		p.lineBaselines = append(p.lineBaselines, p.lineHeights[li]-maxDescent)
		yOffset += maxSpacing + preMaxDescent
		preMaxDescent = maxDescent

		for i := lineRecordStart; i < len(p.paintRecords); i++ {
			r := &p.paintRecords[i]
			r.Offset = Offset{X: r.Offset.X + lineX, Y: yOffset}
		}

		if ellipsize && p.style.UnlimitedLines() {
			// Nothing follows an ellipsis.
			limit = li + 1
			p.didExceedMaxLines = true
		}
	}
	return maxWordWidth
}

// ellipsize returns the text of the run [start, end) cut to fit the
// ellipsis, with the ellipsis appended, and how many code units of the run
// were kept. The result is cached until the text, style or cut changes.
func (p *Paragraph) ellipsize(start, end int, runX float64, st *layout.Style) (units []uint16, count, kept int) {
	ellipsisWidth := layout.MeasureText(p.ellipsis, 0, len(p.ellipsis), st)
	truncate := layout.ComputeTruncateCount(runX, p.text, start, end-start, st, p.width-ellipsisWidth, &p.tabs)
	kept = end - start - truncate

	key := ellipsisKey{start: start, kept: kept, valid: true}
	if key != p.ellipsizedKey {
		p.ellipsized = append(p.ellipsized[:0], p.text[start:start+kept]...)
		p.ellipsized = append(p.ellipsized, p.ellipsis...)
		p.ellipsizedKey = key
		if logger.Enabled(slog.LevelDebug) {
			logger.Get().Debug("paragraph: ellipsis applied",
				"start", start, "kept", kept, "dropped", truncate)
		}
	}
	return p.ellipsized, len(p.ellipsized), kept
}

// updateLineMetrics folds one run's metrics into the line spacing and
// descent. The first line also fixes the paragraph baselines.
func (p *Paragraph) updateLineMetrics(first bool, m text.FontMetrics, height float64, spacing, descent *float64) {
	s := (-m.Ascent + m.Leading) * height
	if first {
		s = -m.Ascent * height
	}
	if s > *spacing {
		*spacing = s
		if first {
			p.alphabeticBaseline = s
			p.ideographicBaseline = (m.Descent - m.Ascent) * height
		}
	}
	*descent = math.Max(*descent, m.Descent*height)
}

// lineXOffset returns the alignment shift of a line of the given advance.
func (p *Paragraph) lineXOffset(advance float64) float64 {
	if math.IsInf(p.width, 1) {
		return 0
	}
	switch p.align {
	case TextAlignRight:
		return p.width - advance
	case TextAlignCenter:
		return (p.width - advance) / 2
	}
	return 0
}

func (p *Paragraph) computeIntrinsicWidths(maxWordWidth float64) {
	p.maxIntrinsicWidth = 0
	block := 0.0
	for i, w := range p.lineWidths {
		block += w
		if p.lineRanges[i].HardBreak {
			p.maxIntrinsicWidth = math.Max(p.maxIntrinsicWidth, block)
			block = 0
		}
	}
	p.maxIntrinsicWidth = math.Max(p.maxIntrinsicWidth, block)

	if p.style.MaxLines == 1 || (p.style.UnlimitedLines() && p.style.Ellipsized()) {
		p.minIntrinsicWidth = p.maxIntrinsicWidth
	} else {
		p.minIntrinsicWidth = math.Min(maxWordWidth, p.maxIntrinsicWidth)
	}
}

// findWords appends the ranges of [start, end) separated by word spaces.
func findWords(units []uint16, start, end int, words []Range[int]) []Range[int] {
	inWord := false
	wordStart := 0
	for i := start; i < end; i++ {
		space := layout.IsWordSpace(units[i])
		switch {
		case !inWord && !space:
			wordStart = i
			inWord = true
		case inWord && space:
			words = append(words, Range[int]{Start: wordStart, End: i})
			inWord = false
		}
	}
	if inWord {
		words = append(words, Range[int]{Start: wordStart, End: end})
	}
	return words
}

// reset clears all content for reuse by a Pool.
func (p *Paragraph) reset() {
	p.text = p.text[:0]
	p.runs.Reset()
	p.style = ParagraphStyle{}
	p.defaultStyle = TextStyle{}
	p.ellipsis = p.ellipsis[:0]
	p.width = 0
	p.direction = text.DirectionLTR
	p.align = TextAlignLeft
	p.invalidate()

	clear(p.styles)
	clear(p.paintRecords)
	clear(p.glyphLines)
	p.styles = p.styles[:0]
	p.lineRanges = p.lineRanges[:0]
	p.lineWidths = p.lineWidths[:0]
	p.lineHeights = p.lineHeights[:0]
	p.lineBaselines = p.lineBaselines[:0]
	p.glyphLines = p.glyphLines[:0]
	p.positions = p.positions[:0]
	p.codeUnitRuns = p.codeUnitRuns[:0]
	p.paintRecords = p.paintRecords[:0]
	p.blobPositions = p.blobPositions[:0]
	p.words = p.words[:0]
	p.ellipsized = p.ellipsized[:0]

	p.maxIntrinsicWidth = 0
	p.minIntrinsicWidth = 0
	p.alphabeticBaseline = 0
	p.ideographicBaseline = 0
	p.didExceedMaxLines = false
}
