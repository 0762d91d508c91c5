package paragraph

import (
	"testing"

	"github.com/gogpu/paragraph/text"
)

// TestTextStyleDefaults tests the zero value fallbacks.
func TestTextStyleDefaults(t *testing.T) {
	var s TextStyle
	if s.Size() != DefaultFontSize {
		t.Errorf("Size() = %v, want %v", s.Size(), DefaultFontSize)
	}
	if s.LineHeight() != DefaultHeight {
		t.Errorf("LineHeight() = %v, want %v", s.LineHeight(), DefaultHeight)
	}
	if s.Family() != DefaultFontFamily {
		t.Errorf("Family() = %q, want %q", s.Family(), DefaultFontFamily)
	}
	if s.Weight() != text.WeightNormal {
		t.Errorf("Weight() = %v, want Normal", s.Weight())
	}
	if s.TextColor() != Black {
		t.Errorf("TextColor() = %v, want Black", s.TextColor())
	}

	s = TextStyle{FontSize: 22, Height: 1.5, FontFamily: text.FamilyGoMono, FontWeight: text.WeightBold, Color: Red}
	if s.Size() != 22 || s.LineHeight() != 1.5 || s.Family() != text.FamilyGoMono ||
		s.Weight() != text.WeightBold || s.TextColor() != Red {
		t.Errorf("explicit fields not returned: %+v", s)
	}
}

// TestParagraphStyleTextStyle tests the default text style derivation.
func TestParagraphStyleTextStyle(t *testing.T) {
	ps := ParagraphStyle{
		FontSize:   18,
		FontWeight: text.WeightLight,
		FontStyle:  text.SlantItalic,
		FontFamily: "Inter",
		Height:     1.2,
		Color:      Blue,
	}
	ts := ps.TextStyle()
	if ts.FontSize != 18 || ts.FontWeight != text.WeightLight || ts.FontStyle != text.SlantItalic ||
		ts.FontFamily != "Inter" || ts.Height != 1.2 || ts.Color != Blue {
		t.Errorf("TextStyle() = %+v", ts)
	}
	if ps.Ellipsized() || !ps.UnlimitedLines() {
		t.Error("zero MaxLines and Ellipsis should be unlimited and not ellipsized")
	}
}

// TestTextAlignResolve tests start and end alignment.
func TestTextAlignResolve(t *testing.T) {
	tests := []struct {
		align TextAlign
		dir   text.Direction
		want  TextAlign
	}{
		{TextAlignStart, text.DirectionLTR, TextAlignLeft},
		{TextAlignStart, text.DirectionRTL, TextAlignRight},
		{TextAlignEnd, text.DirectionLTR, TextAlignRight},
		{TextAlignEnd, text.DirectionRTL, TextAlignLeft},
		{TextAlignCenter, text.DirectionRTL, TextAlignCenter},
		{TextAlignJustify, text.DirectionRTL, TextAlignJustify},
	}
	for _, tt := range tests {
		if got := tt.align.resolve(tt.dir); got != tt.want {
			t.Errorf("%v.resolve(%v) = %v, want %v", tt.align, tt.dir, got, tt.want)
		}
	}
	if got := TextAlign(99).String(); got == "" {
		t.Error("String() of an unknown alignment is empty")
	}
}

// TestTextDecorationHas tests decoration sets.
func TestTextDecorationHas(t *testing.T) {
	d := DecorationUnderline | DecorationLineThrough
	if !d.Has(DecorationUnderline) || !d.Has(DecorationLineThrough) || d.Has(DecorationOverline) {
		t.Errorf("Has() wrong for %b", d)
	}
	if d.Has(DecorationNone) {
		t.Error("Has(DecorationNone) = true")
	}
}

// TestParagraphDirectionAuto tests direction detection from the text.
func TestParagraphDirectionAuto(t *testing.T) {
	style := ParagraphStyle{TextDirection: text.DirectionAuto, TextAlign: TextAlignStart}
	p := layoutText(t, "שלום", style, 100)
	if got := p.GlyphLine(0).Positions[0].X.Start; got != 60 {
		t.Errorf("RTL start alignment x = %v, want 60", got)
	}
	p = layoutText(t, "hello", style, 100)
	if got := p.GlyphLine(0).Positions[0].X.Start; got != 0 {
		t.Errorf("LTR start alignment x = %v, want 0", got)
	}
}
