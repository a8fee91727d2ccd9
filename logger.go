package walltex

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Asset loading logs from worker
// goroutines, so access is atomic.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for walltex and all its sub-packages.
// By default, walltex produces no log output.
//
// Pass nil to restore the default silent behavior.
//
// Log levels used by walltex:
//   - [slog.LevelDebug]: recompute passes, wall and run counts
//   - [slog.LevelInfo]: asset store lifecycle
//   - [slog.LevelWarn]: texture fetch or decode failures
//
// Example:
//
//	walltex.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by walltex.
// Sub-packages call this so that a single SetLogger call configures them all.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
