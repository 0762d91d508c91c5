package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// TestDefaultIsSilent tests that the default logger drops everything.
func TestDefaultIsSilent(t *testing.T) {
	Set(nil)
	if Enabled(slog.LevelError) {
		t.Error("default logger should not be enabled at any level")
	}
}

// TestSetAndRestore tests replacing and restoring the logger.
func TestSetAndRestore(t *testing.T) {
	var buf bytes.Buffer
	Set(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer Set(nil)

	if !Enabled(slog.LevelDebug) {
		t.Fatal("debug should be enabled after Set")
	}
	Get().Debug("layout", "lines", 3)
	if !strings.Contains(buf.String(), "lines=3") {
		t.Errorf("log output = %q, want lines=3", buf.String())
	}

	Set(nil)
	if Enabled(slog.LevelDebug) {
		t.Error("Set(nil) should restore the silent logger")
	}
}
