package paragraph

import (
	"errors"
	"fmt"
)

// ErrNilCanvas is returned by Paint when the canvas is nil.
var ErrNilCanvas = errors.New("paragraph: nil canvas")

// BackwardIterationError is the panic value of RunIterator.NextTo when
// asked to move before the offset of its previous call.
type BackwardIterationError struct {
	// Current is the offset of the previous NextTo call.
	Current int
	// Requested is the offset passed to NextTo.
	Requested int
}

func (e *BackwardIterationError) Error() string {
	return fmt.Sprintf("paragraph: run iterator moved backward from %d to %d", e.Current, e.Requested)
}

// RunOrderError is the panic value of StyledRuns.StartRun when a run would
// start before the previous one.
type RunOrderError struct {
	// Previous is the start of the last run in the table.
	Previous int
	// Start is the rejected start offset.
	Start int
}

func (e *RunOrderError) Error() string {
	return fmt.Sprintf("paragraph: run start %d precedes previous run start %d", e.Start, e.Previous)
}
