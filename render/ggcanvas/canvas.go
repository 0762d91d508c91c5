// Package ggcanvas paints paragraphs with github.com/fogleman/gg.
//
// Usage:
//
//	c := ggcanvas.New(400, 200)
//	c.Clear(paragraph.White)
//	if err := p.Paint(c, paragraph.Offset{X: 10, Y: 10}); err != nil {
//	    return err
//	}
//	return c.SavePNG("out.png")
package ggcanvas

import (
	"image"
	"image/color"
	"unicode"
	"unicode/utf16"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"

	"github.com/gogpu/paragraph"
	"github.com/gogpu/paragraph/internal/cache"
	"github.com/gogpu/paragraph/internal/logger"
	"github.com/gogpu/paragraph/text"
)

// DefaultFaceCacheSize is the number of font faces a Canvas keeps open.
const DefaultFaceCacheSize = 64

type faceKey struct {
	id   uint64
	size float64
}

// Canvas implements paragraph.Canvas on a gg.Context. Glyphs of sources
// backed by a font file are drawn with that font; other sources fall back
// to a fixed bitmap face.
//
// Canvas is not safe for concurrent use.
type Canvas struct {
	dc       *gg.Context
	faces    *cache.Cache[faceKey, font.Face]
	fallback font.Face
}

var _ paragraph.Canvas = (*Canvas)(nil)

// New creates a Canvas backed by a new width x height image.
func New(width, height int) *Canvas {
	return NewFromContext(gg.NewContext(width, height))
}

// NewFromContext creates a Canvas that draws into dc.
func NewFromContext(dc *gg.Context) *Canvas {
	return &Canvas{
		dc:       dc,
		faces:    cache.New[faceKey, font.Face](DefaultFaceCacheSize),
		fallback: basicfont.Face7x13,
	}
}

// Context returns the underlying gg context.
func (c *Canvas) Context() *gg.Context {
	return c.dc
}

// Image returns the canvas image.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// Clear fills the whole canvas with col.
func (c *Canvas) Clear(col color.Color) {
	c.dc.SetColor(col)
	c.dc.Clear()
}

// SavePNG writes the canvas to path as PNG.
func (c *Canvas) SavePNG(path string) error {
	return c.dc.SavePNG(path)
}

// DrawRect implements paragraph.Canvas.
func (c *Canvas) DrawRect(r text.Rect, paint paragraph.Paint) {
	c.dc.DrawRectangle(r.MinX, r.MinY, r.Width(), r.Height())
	c.finish(paint)
}

// DrawLine implements paragraph.Canvas.
func (c *Canvas) DrawLine(from, to paragraph.Offset, paint paragraph.Paint) {
	c.dc.DrawLine(from.X, from.Y, to.X, to.Y)
	paint.Style = paragraph.PaintStroke
	c.finish(paint)
}

// DrawTextBlob implements paragraph.Canvas. Every character is drawn at
// its laid out position, so letter spacing, tabs and justification are
// kept.
func (c *Canvas) DrawTextBlob(blob paragraph.TextBlob, at paragraph.Offset, paint paragraph.Paint) {
	c.dc.SetFontFace(c.face(blob.Source, blob.Size))
	c.dc.SetColor(paint.Color)

	units := blob.Text
	for i := 0; i < len(units); {
		r, n := rune(units[i]), 1
		if utf16.IsSurrogate(r) && i+1 < len(units) {
			r = utf16.DecodeRune(r, rune(units[i+1]))
			n = 2
		}
		if !unicode.IsSpace(r) && i < len(blob.Positions) {
			c.dc.DrawString(string(r), at.X+blob.Positions[i], at.Y)
		}
		i += n
	}
}

func (c *Canvas) finish(paint paragraph.Paint) {
	col := paint.Color
	if col == nil {
		col = paragraph.Black
	}
	c.dc.SetColor(col)
	if paint.Style == paragraph.PaintStroke {
		w := paint.StrokeWidth
		if w <= 0 {
			w = 1
		}
		c.dc.SetLineWidth(w)
		c.dc.Stroke()
		return
	}
	c.dc.Fill()
}

// face returns the gg font face of src at size, opening it on first use.
func (c *Canvas) face(src text.GlyphSource, size float64) font.Face {
	fs := fontSource(src)
	if fs == nil {
		return c.fallback
	}
	return c.faces.GetOrCreate(faceKey{id: fs.ID(), size: size}, func() font.Face {
		f, err := fs.OpenType()
		if err == nil {
			var face font.Face
			face, err = opentype.NewFace(f, &opentype.FaceOptions{
				Size:    size,
				DPI:     72,
				Hinting: font.HintingNone,
			})
			if err == nil {
				return face
			}
		}
		logger.Get().Warn("ggcanvas: font face unavailable, using fallback",
			"font", fs.Name(), "size", size, "err", err)
		return c.fallback
	})
}

// fontSource unwraps src down to the font file it measures with.
func fontSource(src text.GlyphSource) *text.FontSource {
	for src != nil {
		switch s := src.(type) {
		case *text.FontSource:
			return s
		case interface{ Unwrap() text.GlyphSource }:
			src = s.Unwrap()
		default:
			return nil
		}
	}
	return nil
}
