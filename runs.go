package paragraph

// StyleRef is a handle to a style in a StyledRuns arena. Handles stay
// valid for the life of the arena; styles are never removed or changed.
type StyleRef int

// DefaultStyleRef refers to the paragraph's default text style, derived
// from its ParagraphStyle at layout time.
const DefaultStyleRef StyleRef = -1

// StyledRun maps the code units [Start, End) to a style.
type StyledRun struct {
	Style StyleRef
	Start int
	End   int
}

// StyledRuns is an arena of styles plus an ordered table of runs that
// reference them by handle. Runs are contiguous, do not overlap and are
// never empty once closed by EndRunIfNeeded.
//
// StyledRuns is not safe for concurrent use.
type StyledRuns struct {
	styles []TextStyle
	runs   []StyledRun
}

// NewStyledRuns creates an empty table with pre-allocated capacity.
func NewStyledRuns() *StyledRuns {
	return &StyledRuns{
		styles: make([]TextStyle, 0, 8),
		runs:   make([]StyledRun, 0, 8),
	}
}

// AddStyle appends s to the arena and returns its handle.
func (r *StyledRuns) AddStyle(s TextStyle) StyleRef {
	r.styles = append(r.styles, s)
	return StyleRef(len(r.styles) - 1)
}

// Style returns the style for ref, or nil for DefaultStyleRef and
// handles not issued by r.
func (r *StyledRuns) Style(ref StyleRef) *TextStyle {
	if ref < 0 || int(ref) >= len(r.styles) {
		return nil
	}
	return &r.styles[ref]
}

// StyleCount returns the number of styles in the arena.
func (r *StyledRuns) StyleCount() int {
	return len(r.styles)
}

// StartRun closes the open run at start and opens a run of ref at start.
// A run closed with no content is dropped. Starting before the previous
// run panics with a *RunOrderError.
func (r *StyledRuns) StartRun(ref StyleRef, start int) {
	if n := len(r.runs); n > 0 && start < r.runs[n-1].Start {
		panic(&RunOrderError{Previous: r.runs[n-1].Start, Start: start})
	}
	r.EndRunIfNeeded(start)
	r.runs = append(r.runs, StyledRun{Style: ref, Start: start, End: start})
}

// EndRunIfNeeded closes the last run at end, dropping it if empty.
func (r *StyledRuns) EndRunIfNeeded(end int) {
	n := len(r.runs)
	if n == 0 {
		return
	}
	last := &r.runs[n-1]
	if last.Start >= end {
		r.runs = r.runs[:n-1]
		return
	}
	last.End = end
}

// Size returns the number of runs.
func (r *StyledRuns) Size() int {
	return len(r.runs)
}

// Run returns run i.
func (r *StyledRuns) Run(i int) StyledRun {
	return r.runs[i]
}

// Reset clears styles and runs and keeps their capacity.
func (r *StyledRuns) Reset() {
	clear(r.styles)
	r.styles = r.styles[:0]
	r.runs = r.runs[:0]
}

// Iterator returns a forward-only cursor positioned on the first run.
func (r *StyledRuns) Iterator() RunIterator {
	return RunIterator{runs: r}
}

// appendRun adds a closed run, merging it into the previous run when
// both share ref and touch.
func (r *StyledRuns) appendRun(ref StyleRef, start, end int) {
	if end <= start {
		return
	}
	if n := len(r.runs); n > 0 {
		last := &r.runs[n-1]
		if last.Style == ref && last.End == start {
			last.End = end
			return
		}
	}
	r.runs = append(r.runs, StyledRun{Style: ref, Start: start, End: end})
}

// RunIterator walks the runs of a StyledRuns in order. The zero value is
// not usable; see StyledRuns.Iterator.
type RunIterator struct {
	runs    *StyledRuns
	index   int
	last    int
	started bool
}

// NextTo advances to the run containing offset and reports whether one
// exists. When offset lies past every run the iterator stops after the
// last run and NextTo returns false. Asking for an offset before the
// one of the previous call panics with a *BackwardIterationError.
func (it *RunIterator) NextTo(offset int) bool {
	if it.started && offset < it.last {
		panic(&BackwardIterationError{Current: it.last, Requested: offset})
	}
	it.started = true
	it.last = offset

	runs := it.runs.runs
	for it.index < len(runs) && runs[it.index].End <= offset {
		it.index++
	}
	return it.index < len(runs) && runs[it.index].Start <= offset
}

// Index returns the index of the current run. It equals Size() once the
// iterator is exhausted.
func (it *RunIterator) Index() int {
	return it.index
}

// Run returns the current run.
func (it *RunIterator) Run() StyledRun {
	return it.runs.runs[it.index]
}
