package paragraph

import (
	"github.com/gogpu/paragraph/layout"
	"github.com/gogpu/paragraph/text"
)

// Height returns the total height of the retained lines.
func (p *Paragraph) Height() float64 {
	if len(p.lineHeights) == 0 {
		return 0
	}
	return p.lineHeights[len(p.lineHeights)-1]
}

// Width returns the layout width.
func (p *Paragraph) Width() float64 {
	return p.width
}

// MinIntrinsicWidth returns the width below which the text can not be
// laid out without breaking inside a word.
func (p *Paragraph) MinIntrinsicWidth() float64 {
	return p.minIntrinsicWidth
}

// MaxIntrinsicWidth returns the width of the widest paragraph block when
// laid out without wrapping.
func (p *Paragraph) MaxIntrinsicWidth() float64 {
	return p.maxIntrinsicWidth
}

// AlphabeticBaseline returns the distance from the top to the first line's
// alphabetic baseline.
func (p *Paragraph) AlphabeticBaseline() float64 {
	return p.alphabeticBaseline
}

// IdeographicBaseline returns the distance from the top to the first
// line's ideographic baseline.
func (p *Paragraph) IdeographicBaseline() float64 {
	return p.ideographicBaseline
}

// DidExceedMaxLines reports whether lines were dropped by MaxLines or by
// an ellipsis.
func (p *Paragraph) DidExceedMaxLines() bool {
	return p.didExceedMaxLines
}

// LineCount returns the number of retained lines.
func (p *Paragraph) LineCount() int {
	return len(p.lineHeights)
}

// LineRange returns the code unit range of line i.
func (p *Paragraph) LineRange(i int) LineRange {
	return p.lineRanges[i]
}

// LineRanges returns the ranges of all lines, including the ones dropped
// by MaxLines.
func (p *Paragraph) LineRanges() []LineRange {
	return p.lineRanges
}

// LineWidths returns the unaligned advance of every line, including the
// ones dropped by MaxLines.
func (p *Paragraph) LineWidths() []float64 {
	return p.lineWidths
}

// LineHeights returns the cumulative bottom of each retained line.
func (p *Paragraph) LineHeights() []float64 {
	return p.lineHeights
}

// LineBaselines returns the baseline of each retained line.
func (p *Paragraph) LineBaselines() []float64 {
	return p.lineBaselines
}

// GlyphLine returns the glyph positions of retained line i.
func (p *Paragraph) GlyphLine(i int) GlyphLine {
	return p.glyphLines[i]
}

// CodeUnitRuns returns the positioned runs in line order.
func (p *Paragraph) CodeUnitRuns() []CodeUnitRun {
	return p.codeUnitRuns
}

// RunPositions returns the glyph positions of run.
func (p *Paragraph) RunPositions(run CodeUnitRun) []GlyphPosition {
	return p.positions[run.GlyphIndexStart : run.GlyphIndexStart+run.Count]
}

// PaintRecords returns the draw list in paint order.
func (p *Paragraph) PaintRecords() []PaintRecord {
	return p.paintRecords
}

// GetRectsForRange returns one box per line fragment of the code units
// [start, end). The range is clamped to the text. Lines fully selected up
// to their newline get a zero width box at their end, so a selection
// across empty lines stays visible.
func (p *Paragraph) GetRectsForRange(start, end int) []TextBox {
	start = max(start, 0)
	end = min(end, len(p.text))
	if start >= end {
		return nil
	}

	var boxes []TextBox
	r := 0
	for li := 0; li < p.LineCount(); li++ {
		line := p.lineRanges[li]
		if line.Start >= end {
			break
		}
		top, bottom := p.lineTop(li), p.lineHeights[li]
		found := false
		for ; r < len(p.codeUnitRuns) && p.codeUnitRuns[r].LineNumber == li; r++ {
			run := p.codeUnitRuns[r]
			if run.CodeUnits.End <= start || run.CodeUnits.Start >= end {
				continue
			}
			left, right := run.X.Start, run.X.End
			if run.CodeUnits.Start < start || run.CodeUnits.End > end {
				ok := false
				for _, g := range p.RunPositions(run) {
					if g.CodeUnits.Start < start || g.CodeUnits.End > end {
						continue
					}
					if !ok {
						left, right, ok = g.X.Start, g.X.End, true
						continue
					}
					left = min(left, g.X.Start)
					right = max(right, g.X.End)
				}
				if !ok {
					continue
				}
			}
			boxes = append(boxes, TextBox{
				Left: left, Top: top, Right: right, Bottom: bottom,
				Direction: run.Direction,
			})
			found = true
		}
		if !found && line.End != line.EndIncludingNewline &&
			line.End >= start && line.EndIncludingNewline <= end {
			x := p.lineWidths[li]
			boxes = append(boxes, TextBox{
				Left: x, Top: top, Right: x, Bottom: bottom,
				Direction: text.DirectionLTR,
			})
		}
	}
	return boxes
}

func (p *Paragraph) lineTop(li int) float64 {
	if li == 0 {
		return 0
	}
	return p.lineHeights[li-1]
}

// GetNextLineStartRect returns the caret box at the start of the empty
// line that follows a trailing newline. ok is false when the text does
// not end with '\n' or no line is laid out.
func (p *Paragraph) GetNextLineStartRect() (box TextBox, ok bool) {
	n := len(p.text)
	if n == 0 || p.text[n-1] != '\n' || p.LineCount() == 0 {
		return TextBox{}, false
	}
	li := p.LineCount() - 1
	return TextBox{Top: p.lineTop(li), Bottom: p.lineHeights[li], Direction: text.DirectionLTR}, true
}

// GetGlyphPositionAtCoordinate maps a point relative to the paragraph's
// top left corner to the closest caret position.
func (p *Paragraph) GetGlyphPositionAtCoordinate(dx, dy float64) TextPosition {
	if p.LineCount() == 0 {
		return TextPosition{}
	}
	li := p.LineCount() - 1
	for i, h := range p.lineHeights {
		if dy < h {
			li = i
			break
		}
	}

	positions := p.glyphLines[li].Positions
	if len(positions) == 0 {
		offset := 0
		for i := 0; i < li; i++ {
			offset += p.glyphLines[i].TotalCountUnits
		}
		return TextPosition{Offset: offset}
	}

	g := -1
	for i := range positions {
		limit := positions[len(positions)-1].X.End
		if i+1 < len(positions) {
			limit = positions[i+1].X.Start
		}
		if dx < limit {
			g = i
			break
		}
	}
	if g < 0 {
		return TextPosition{Offset: positions[len(positions)-1].CodeUnits.End, Affinity: Upstream}
	}

	gp := positions[g]
	dir := text.DirectionLTR
	for _, run := range p.codeUnitRuns {
		if run.LineNumber == li && run.CodeUnits.Contains(gp.CodeUnits.Start) {
			dir = run.Direction
			break
		}
	}
	center := (gp.X.Start + gp.X.End) / 2
	if (dir == text.DirectionLTR) == (dx < center) {
		return TextPosition{Offset: gp.CodeUnits.Start, Affinity: Downstream}
	}
	return TextPosition{Offset: gp.CodeUnits.End, Affinity: Upstream}
}

// GetLine returns the retained line holding the caret at offset. An
// upstream caret belongs to the character before it, so a caret at the
// end of a soft-wrapped line reports that line rather than the next.
func (p *Paragraph) GetLine(pos TextPosition) int {
	offset := min(max(pos.Offset, 0), len(p.text))
	if pos.Affinity == Upstream && offset > 0 {
		if layout.IsSurrogate(p.text[offset-1]) && offset > 1 {
			offset -= 2
		} else {
			offset--
		}
	}
	for i := 0; i < p.LineCount(); i++ {
		line := p.lineRanges[i]
		if line.Start <= offset && offset < line.EndIncludingNewline {
			return i
		}
	}
	return max(p.LineCount()-1, 0)
}

// GetWordBoundary returns the run of same-class characters around offset
// as [start, end). Offsets past the text give the empty range at its end.
func (p *Paragraph) GetWordBoundary(offset int) Range[int] {
	start, end := layout.FindWordRange(p.text, offset)
	return Range[int]{Start: start, End: end}
}
