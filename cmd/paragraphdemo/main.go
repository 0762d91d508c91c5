// Command paragraphdemo lays out a paragraph and renders it to a PNG.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/gogpu/paragraph"
	"github.com/gogpu/paragraph/render/ggcanvas"
	"github.com/gogpu/paragraph/text"
)

const sample = "The quick *brown fox* jumps over the lazy dog.\tTabs, " +
	"emoji 😀 and hard\nline breaks are laid out with greedy wrapping."

func main() {
	var (
		input    = flag.String("text", sample, "paragraph text; \\n and \\t are unescaped")
		width    = flag.Float64("width", 360, "layout width in pixels, 0 for unbounded")
		size     = flag.Float64("size", 20, "font size in pixels")
		align    = flag.String("align", "left", "left, right, center, justify, start or end")
		maxLines = flag.Int("maxlines", 0, "maximum number of lines, 0 for unlimited")
		ellipsis = flag.String("ellipsis", "", "text that replaces cut off text")
		fg       = flag.String("color", "#202020", "text color as hex")
		output   = flag.String("output", "paragraph.png", "output file")
		margin   = flag.Int("margin", 16, "margin around the text in pixels")
		verbose  = flag.Bool("v", false, "log layout details")
	)
	flag.Parse()

	if *verbose {
		paragraph.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	textAlign, err := parseAlign(*align)
	if err != nil {
		log.Fatal(err)
	}
	textColor, err := paragraph.ParseHex(*fg)
	if err != nil {
		log.Fatalf("Invalid color: %v", err)
	}

	b := paragraph.NewBuilder(paragraph.ParagraphStyle{
		TextAlign: textAlign,
		FontSize:  *size,
		Color:     textColor,
		MaxLines:  *maxLines,
		Ellipsis:  *ellipsis,
	})
	addMarkedText(b, unescape(*input), *size)
	p := b.Build()

	w := *width
	if w <= 0 {
		w = math.Inf(1)
	}
	p.Layout(paragraph.ParagraphConstraints{Width: w})
	if math.IsInf(w, 1) {
		w = p.MaxIntrinsicWidth()
	}

	m := float64(*margin)
	c := ggcanvas.New(int(math.Ceil(w+2*m)), int(math.Ceil(p.Height()+2*m)))
	c.Clear(paragraph.White)
	if err := p.Paint(c, paragraph.Offset{X: m, Y: m}); err != nil {
		log.Fatalf("Failed to paint: %v", err)
	}
	if err := c.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Paragraph saved to %s: %d lines, %.1fx%.1f, exceeded max lines: %v\n",
		*output, p.LineCount(), p.Width(), p.Height(), p.DidExceedMaxLines())
}

func parseAlign(s string) (paragraph.TextAlign, error) {
	for _, a := range []paragraph.TextAlign{
		paragraph.TextAlignLeft,
		paragraph.TextAlignRight,
		paragraph.TextAlignCenter,
		paragraph.TextAlignJustify,
		paragraph.TextAlignStart,
		paragraph.TextAlignEnd,
	} {
		if strings.EqualFold(a.String(), s) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown alignment %q", s)
}

func unescape(s string) string {
	return strings.NewReplacer(`\n`, "\n", `\t`, "\t").Replace(s)
}

// addMarkedText adds s, rendering *starred* spans bold and underlined.
func addMarkedText(b *paragraph.Builder, s string, size float64) {
	parts := strings.Split(s, "*")
	for i, part := range parts {
		if i%2 == 1 {
			b.PushStyle(paragraph.TextStyle{
				FontSize:   size,
				FontWeight: text.WeightBold,
				Color:      paragraph.Blue,
				Decoration: paragraph.DecorationUnderline,
			})
			b.AddText(part)
			b.Pop()
			continue
		}
		b.AddText(part)
	}
}
