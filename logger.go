package paragraph

import (
	"log/slog"

	"github.com/gogpu/paragraph/internal/logger"
)

// SetLogger configures the logger for paragraph and all its sub-packages.
// By default nothing is logged. Pass nil to restore silence.
//
// SetLogger is safe for concurrent use.
//
// Log levels used:
//   - [slog.LevelDebug]: per-layout summaries, missing glyphs, ellipsis
//     substitution, pool growth
//   - [slog.LevelWarn]: non-fatal issues such as a resolver returning nil
//
// Example:
//
//	paragraph.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logger.Set(l)
}

// Logger returns the current logger. Sub-packages share it through
// internal/logger.
func Logger() *slog.Logger {
	return logger.Get()
}
