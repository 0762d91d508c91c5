package paragraph

import (
	"log/slog"

	"github.com/gogpu/paragraph/internal/logger"
)

// Pool recycles Paragraphs so that their derived buffers are allocated
// once and reused. Release clears all content; nothing is shared between
// the logical paragraphs that use one instance in turn.
//
// Usage:
//
//	pool := paragraph.NewPool()
//	p := pool.Acquire()
//	defer pool.Release(p)
//	// SetText, Layout, Paint...
//
// Pool is not safe for concurrent use.
type Pool struct {
	free    []*Paragraph
	opts    []Option
	created int
}

// NewPool creates an empty pool. opts configure every Paragraph the pool
// creates.
func NewPool(opts ...Option) *Pool {
	return &Pool{opts: opts}
}

// Acquire returns a cleared Paragraph, reusing a released one when
// available.
func (p *Pool) Acquire() *Paragraph {
	if n := len(p.free); n > 0 {
		para := p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
		para.pooled = false
		return para
	}
	p.created++
	if logger.Enabled(slog.LevelDebug) {
		logger.Get().Debug("paragraph: pool grew", "created", p.created)
	}
	return New(p.opts...)
}

// Release clears para and returns it to the pool. Its buffers keep their
// capacity. Releasing nil or an already released Paragraph does nothing.
func (p *Pool) Release(para *Paragraph) {
	if para == nil || para.pooled {
		return
	}
	para.reset()
	para.pooled = true
	p.free = append(p.free, para)
}

// Warmup makes sure at least n Paragraphs are ready in the pool.
// Call this during initialization if allocation-free operation is required.
func (p *Pool) Warmup(n int) {
	for len(p.free) < n {
		para := New(p.opts...)
		para.pooled = true
		p.created++
		p.free = append(p.free, para)
	}
}

// Len returns the number of idle Paragraphs.
func (p *Pool) Len() int {
	return len(p.free)
}
