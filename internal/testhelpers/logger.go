package testhelpers

import (
	"io"
	"log/slog"
	"testing"

	"github.com/myrjola/dharohar/internal/logging"
)

// NewLogger creates a new logger with the given log sink such as io.Discard.
func NewLogger(logSink io.Writer) *slog.Logger {
	return logging.New(logSink, slog.LevelDebug, false)
}

// NewTestLogger creates a logger that writes through t.Log so that output is only shown for failing tests.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()
	return NewLogger(testWriter{t: t})
}

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}
