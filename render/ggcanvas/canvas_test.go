package ggcanvas

import (
	"image/color"
	"path/filepath"
	"testing"

	"github.com/gogpu/paragraph"
	"github.com/gogpu/paragraph/text"
)

func isWhite(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r == 0xffff && g == 0xffff && b == 0xffff
}

// inked reports whether any pixel of the rectangle is not white.
func inked(c *Canvas, x0, y0, x1, y1 int) bool {
	img := c.Image()
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if !isWhite(img.At(x, y)) {
				return true
			}
		}
	}
	return false
}

// TestDrawRect tests filled rectangles.
func TestDrawRect(t *testing.T) {
	c := New(20, 20)
	c.Clear(paragraph.White)
	c.DrawRect(text.Rect{MinX: 5, MinY: 5, MaxX: 15, MaxY: 15}, paragraph.Paint{Color: paragraph.Red})

	r, g, b, _ := c.Image().At(10, 10).RGBA()
	if r != 0xffff || g != 0 || b != 0 {
		t.Errorf("center pixel = %x %x %x, want red", r, g, b)
	}
	if !isWhite(c.Image().At(1, 1)) {
		t.Error("pixel outside the rectangle was painted")
	}
}

// TestDrawLine tests stroked lines.
func TestDrawLine(t *testing.T) {
	c := New(20, 20)
	c.Clear(paragraph.White)
	c.DrawLine(paragraph.Offset{X: 2, Y: 10}, paragraph.Offset{X: 18, Y: 10},
		paragraph.Paint{Color: paragraph.Black, StrokeWidth: 2})
	if !inked(c, 9, 9, 11, 11) {
		t.Error("line not drawn")
	}
	if inked(c, 0, 0, 20, 5) {
		t.Error("line drawn outside its band")
	}
}

// TestPaintParagraph tests painting a laid out paragraph with the Go
// fonts.
func TestPaintParagraph(t *testing.T) {
	b := paragraph.NewBuilder(paragraph.ParagraphStyle{FontSize: 20})
	b.AddText("Hello ")
	b.PushStyle(paragraph.TextStyle{
		FontSize:   20,
		FontWeight: text.WeightBold,
		Color:      paragraph.Blue,
		Decoration: paragraph.DecorationUnderline,
	})
	b.AddText("world")
	b.Pop()
	p := b.Build()
	p.Layout(paragraph.ParagraphConstraints{Width: 300})

	c := New(320, 60)
	c.Clear(paragraph.White)
	if err := p.Paint(c, paragraph.Offset{X: 10, Y: 10}); err != nil {
		t.Fatalf("Paint() error = %v", err)
	}
	if !inked(c, 10, 10, 10+int(p.MaxIntrinsicWidth()), 10+int(p.Height())) {
		t.Error("no text drawn")
	}
	if inked(c, 0, 50, 320, 60) {
		t.Error("ink below the paragraph")
	}
	if c.faces.Len() != 2 {
		t.Errorf("opened %d faces, want 2", c.faces.Len())
	}

	out := filepath.Join(t.TempDir(), "paragraph.png")
	if err := c.SavePNG(out); err != nil {
		t.Errorf("SavePNG() error = %v", err)
	}
}

// TestFallbackFace tests sources without a font file.
func TestFallbackFace(t *testing.T) {
	c := New(10, 10)
	src := text.Cached(text.NewMonoSource(text.DefaultMonoMetrics))
	if got := c.face(src, 12); got != c.fallback {
		t.Error("mono source did not use the fallback face")
	}
	if c.faces.Len() != 0 {
		t.Errorf("fallback was cached: %d faces", c.faces.Len())
	}
}
