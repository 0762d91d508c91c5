// Package logger holds the process-wide logger shared by the paragraph
// packages. The root package exposes it through paragraph.SetLogger so
// that layout and text can log without importing the root.
package logger

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled reports false so callers skip
// attribute formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(slog.New(nopHandler{}))
}

// Set stores l as the active logger. A nil logger restores silence.
func Set(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	current.Store(l)
}

// Get returns the active logger.
func Get() *slog.Logger {
	return current.Load()
}

// Enabled reports whether the active logger emits records at level.
// Hot loops check it before building attributes.
func Enabled(level slog.Level) bool {
	return current.Load().Enabled(context.Background(), level)
}
