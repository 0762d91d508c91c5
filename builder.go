package paragraph

import "unicode/utf16"

// Builder assembles a Paragraph from text and a stack of styles.
//
// Usage:
//
//	b := paragraph.NewBuilder(paragraph.ParagraphStyle{})
//	b.AddText("plain ")
//	b.PushStyle(paragraph.TextStyle{Decoration: paragraph.DecorationUnderline})
//	b.AddText("underlined")
//	b.Pop()
//	p := b.Build()
//
// Text added before the first PushStyle, or after the last Pop, uses the
// paragraph's default text style.
type Builder struct {
	style ParagraphStyle
	opts  []Option
	text  []uint16
	runs  *StyledRuns
	stack []StyleRef
}

// NewBuilder creates a Builder. opts are passed to New by Build.
func NewBuilder(style ParagraphStyle, opts ...Option) *Builder {
	return &Builder{
		style: style,
		opts:  opts,
		runs:  NewStyledRuns(),
	}
}

// PushStyle makes s the style of text added from now on.
func (b *Builder) PushStyle(s TextStyle) {
	ref := b.runs.AddStyle(s)
	b.stack = append(b.stack, ref)
	b.runs.StartRun(ref, len(b.text))
}

// Pop restores the style that was active before the last PushStyle.
// Popping an empty stack does nothing.
func (b *Builder) Pop() {
	if len(b.stack) == 0 {
		return
	}
	b.stack = b.stack[:len(b.stack)-1]
	ref := DefaultStyleRef
	if n := len(b.stack); n > 0 {
		ref = b.stack[n-1]
	}
	b.runs.StartRun(ref, len(b.text))
}

// PeekStyle returns the style text is currently added with.
func (b *Builder) PeekStyle() TextStyle {
	if n := len(b.stack); n > 0 {
		return *b.runs.Style(b.stack[n-1])
	}
	return b.style.TextStyle()
}

// AddText appends s in the current style.
func (b *Builder) AddText(s string) {
	for _, r := range s {
		b.text = utf16.AppendRune(b.text, r)
	}
}

// Len returns the length of the text added so far in code units.
func (b *Builder) Len() int {
	return len(b.text)
}

// Build returns a new Paragraph holding the built text. It still needs
// Layout before it can be painted or queried.
func (b *Builder) Build() *Paragraph {
	p := New(b.opts...)
	b.BuildInto(p)
	return p
}

// BuildInto loads the built text and style into p, typically a Paragraph
// taken from a Pool.
func (b *Builder) BuildInto(p *Paragraph) {
	b.runs.EndRunIfNeeded(len(b.text))
	p.SetParagraphStyle(b.style)
	p.setUnits(b.text, b.runs)
}
