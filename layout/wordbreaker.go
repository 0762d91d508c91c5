package layout

// WordBreaker walks word boundaries of a Buffer, front to back.
//
// A boundary character (see IsBoundaryChar) is a word by itself. Any other
// word runs until the whitespace class flips. A surrogate pair is consumed
// as one character. Boundaries are window-relative.
type WordBreaker struct {
	text    Buffer
	current int
	last    int
}

// SetText resets the breaker to the start of b.
func (w *WordBreaker) SetText(b Buffer) {
	w.text = b
	w.current = 0
	w.last = 0
}

// Next advances to the next boundary and returns it, or -1 once the text
// is exhausted.
func (w *WordBreaker) Next() int {
	w.last = w.current
	w.current = w.findNextBoundary()
	return w.current
}

// Current returns the last boundary returned by Next, 0 before the first
// call.
func (w *WordBreaker) Current() int {
	return w.current
}

// WordStart returns the start of the current word with leading line-end
// whitespace skipped.
func (w *WordBreaker) WordStart() int {
	if w.current < 0 {
		return w.text.Size()
	}
	result := w.last
	for result < w.current && IsLineEndSpace(w.text.CharAt(result)) {
		result++
	}
	return result
}

// WordEnd returns the end of the current word with trailing line-end
// whitespace trimmed.
func (w *WordBreaker) WordEnd() int {
	if w.current < 0 {
		return w.text.Size()
	}
	result := w.current
	for result > w.last && IsLineEndSpace(w.text.CharAt(result-1)) {
		result--
	}
	return result
}

// BreakBadness scores the current boundary. Every boundary is a clean
// break; email and URL detection is not implemented.
func (w *WordBreaker) BreakBadness() int {
	return 0
}

// Finish releases the text.
func (w *WordBreaker) Finish() {
	w.text = Buffer{}
	w.current = 0
	w.last = 0
}

func (w *WordBreaker) findNextBoundary() int {
	size := w.text.Size()
	if w.current < 0 || w.current >= size {
		return -1
	}
	units := w.text.Text()

	r, n := codePointAt(units, w.current, size)
	preSpace := Classify(r) == WhiteSpace
	pos := w.current + n
	if IsBoundaryChar(r) {
		return pos
	}

	for pos < size {
		r, n = codePointAt(units, pos, size)
		if IsBoundaryChar(r) {
			break
		}
		if (Classify(r) == WhiteSpace) != preSpace {
			break
		}
		pos += n
	}
	return pos
}
