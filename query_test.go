package paragraph

import (
	"testing"

	"github.com/gogpu/paragraph/text"
)

// TestGetRectsForRange tests selection boxes.
func TestGetRectsForRange(t *testing.T) {
	p := layoutText(t, "aa bb cc", ParagraphStyle{}, 55)

	tests := []struct {
		name       string
		start, end int
		want       []TextBox
	}{
		{"all", 0, 8, []TextBox{
			{Left: 0, Top: 0, Right: 60, Bottom: 10},
			{Left: 0, Top: 10, Right: 20, Bottom: 20},
		}},
		{"partial run", 1, 4, []TextBox{
			{Left: 10, Top: 0, Right: 40, Bottom: 10},
		}},
		{"second line", 6, 7, []TextBox{
			{Left: 0, Top: 10, Right: 10, Bottom: 20},
		}},
		{"clamped", -3, 100, []TextBox{
			{Left: 0, Top: 0, Right: 60, Bottom: 10},
			{Left: 0, Top: 10, Right: 20, Bottom: 20},
		}},
		{"empty", 3, 3, nil},
		{"reversed", 5, 2, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.GetRectsForRange(tt.start, tt.end)
			if len(got) != len(tt.want) {
				t.Fatalf("GetRectsForRange(%d, %d) = %+v, want %+v", tt.start, tt.end, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("box %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// TestGetRectsForRangeEmptyLine tests the zero width box of a selected
// empty line.
func TestGetRectsForRangeEmptyLine(t *testing.T) {
	p := layoutText(t, "ab\n\ncd", ParagraphStyle{}, 100)
	boxes := p.GetRectsForRange(0, 6)
	if len(boxes) != 3 {
		t.Fatalf("GetRectsForRange() = %+v, want 3 boxes", boxes)
	}
	want := TextBox{Left: 0, Top: 10, Right: 0, Bottom: 20, Direction: text.DirectionLTR}
	if boxes[1] != want {
		t.Errorf("empty line box = %+v, want %+v", boxes[1], want)
	}
}

// TestGetRectsForRangeMaxLines tests that dropped lines give no boxes.
func TestGetRectsForRangeMaxLines(t *testing.T) {
	p := layoutText(t, "aa bb cc", ParagraphStyle{MaxLines: 1}, 35)
	if boxes := p.GetRectsForRange(3, 8); len(boxes) != 0 {
		t.Errorf("GetRectsForRange() = %+v, want none", boxes)
	}
}

// TestGetNextLineStartRect tests the caret box after a trailing newline.
func TestGetNextLineStartRect(t *testing.T) {
	p := layoutText(t, "ab\n", ParagraphStyle{}, 100)
	box, ok := p.GetNextLineStartRect()
	if !ok {
		t.Fatal("GetNextLineStartRect() ok = false, want true")
	}
	if box.Top != 10 || box.Bottom != 20 || box.Left != 0 || box.Right != 0 {
		t.Errorf("GetNextLineStartRect() = %+v", box)
	}

	p = layoutText(t, "ab", ParagraphStyle{}, 100)
	if _, ok := p.GetNextLineStartRect(); ok {
		t.Error("GetNextLineStartRect() ok = true without trailing newline")
	}
}

// TestGetGlyphPositionAtCoordinate tests hit testing.
func TestGetGlyphPositionAtCoordinate(t *testing.T) {
	p := layoutText(t, "abc\nde", ParagraphStyle{}, 100)

	tests := []struct {
		name   string
		dx, dy float64
		want   TextPosition
	}{
		{"left half", 12, 5, TextPosition{Offset: 1, Affinity: Downstream}},
		{"right half", 17, 5, TextPosition{Offset: 2, Affinity: Upstream}},
		{"before start", -10, 5, TextPosition{Offset: 0, Affinity: Downstream}},
		{"past end", 100, 5, TextPosition{Offset: 3, Affinity: Upstream}},
		{"second line", 1, 15, TextPosition{Offset: 4, Affinity: Downstream}},
		{"below text", 19, 500, TextPosition{Offset: 6, Affinity: Upstream}},
		{"above text", 1, -50, TextPosition{Offset: 0, Affinity: Downstream}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.GetGlyphPositionAtCoordinate(tt.dx, tt.dy); got != tt.want {
				t.Errorf("GetGlyphPositionAtCoordinate(%v, %v) = %+v, want %+v", tt.dx, tt.dy, got, tt.want)
			}
		})
	}
}

// TestGetGlyphPositionAtCoordinateEmptyLine tests hit testing on a line
// with no glyphs.
func TestGetGlyphPositionAtCoordinateEmptyLine(t *testing.T) {
	p := layoutText(t, "ab\n\ncd", ParagraphStyle{}, 100)
	want := TextPosition{Offset: 3, Affinity: Downstream}
	if got := p.GetGlyphPositionAtCoordinate(50, 15); got != want {
		t.Errorf("GetGlyphPositionAtCoordinate() = %+v, want %+v", got, want)
	}

	empty := New(WithResolver(monoResolver(t)))
	if got := empty.GetGlyphPositionAtCoordinate(5, 5); got != (TextPosition{}) {
		t.Errorf("before layout = %+v, want zero", got)
	}
}

// TestGetGlyphPositionAtCoordinateRTL tests affinity in right-to-left
// runs.
func TestGetGlyphPositionAtCoordinateRTL(t *testing.T) {
	p := layoutText(t, "שלום", ParagraphStyle{TextDirection: text.DirectionRTL}, 100)
	if got := p.CodeUnitRuns()[0].Direction; got != text.DirectionRTL {
		t.Fatalf("run direction = %v, want RTL", got)
	}
	x := p.GlyphLine(0).Positions[0].X.Start
	want := TextPosition{Offset: 1, Affinity: Upstream}
	if got := p.GetGlyphPositionAtCoordinate(x+2, 5); got != want {
		t.Errorf("left half of RTL glyph = %+v, want %+v", got, want)
	}
}

// TestGetLine tests line lookup with affinity.
func TestGetLine(t *testing.T) {
	p := layoutText(t, "aa bb cc", ParagraphStyle{}, 55)

	tests := []struct {
		pos  TextPosition
		want int
	}{
		{TextPosition{Offset: 0}, 0},
		{TextPosition{Offset: 6}, 1},
		{TextPosition{Offset: 6, Affinity: Upstream}, 0},
		{TextPosition{Offset: 8}, 1},
		{TextPosition{Offset: -4}, 0},
		{TextPosition{Offset: 99}, 1},
	}
	for _, tt := range tests {
		if got := p.GetLine(tt.pos); got != tt.want {
			t.Errorf("GetLine(%+v) = %d, want %d", tt.pos, got, tt.want)
		}
	}
}

// TestGetLineSurrogate tests that an upstream caret after a surrogate
// pair steps over the whole pair.
func TestGetLineSurrogate(t *testing.T) {
	p := layoutText(t, "ab\n😀", ParagraphStyle{}, 100)
	if got := p.GetLine(TextPosition{Offset: 5, Affinity: Upstream}); got != 1 {
		t.Errorf("GetLine() = %d, want 1", got)
	}
	if got := p.GetLine(TextPosition{Offset: 3, Affinity: Upstream}); got != 0 {
		t.Errorf("GetLine() at line start = %d, want 0", got)
	}
}

// TestGetWordBoundary tests word selection.
func TestGetWordBoundary(t *testing.T) {
	p := layoutText(t, "hello, world", ParagraphStyle{}, 500)
	tests := []struct {
		offset int
		want   Range[int]
	}{
		{0, Range[int]{0, 5}},
		{3, Range[int]{0, 5}},
		{5, Range[int]{5, 6}},
		{6, Range[int]{6, 7}},
		{9, Range[int]{7, 12}},
		{12, Range[int]{12, 12}},
	}
	for _, tt := range tests {
		if got := p.GetWordBoundary(tt.offset); got != tt.want {
			t.Errorf("GetWordBoundary(%d) = %v, want %v", tt.offset, got, tt.want)
		}
	}
}
