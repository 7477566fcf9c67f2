package glbatch

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/gogpu/glbatch/transport"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for glbatch and its transports.
// By default, glbatch produces no log output.
//
// SetLogger is safe for concurrent use. Pass nil to restore the default
// silent behavior.
//
// Log levels used by glbatch:
//   - [slog.LevelDebug]: dispatched batches and written frames
//   - [slog.LevelWarn]: batches dropped because no transport is attached
//     or the transport failed
//
// Example:
//
//	glbatch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)

	defaultMu.RLock()
	t := defaultTransport
	defaultMu.RUnlock()
	if t != nil {
		propagateLogger(t, l)
	}
}

// Logger returns the current logger used by glbatch.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// loggerSetter is implemented by transports that accept a logger.
type loggerSetter interface {
	SetLogger(*slog.Logger)
}

func propagateLogger(t transport.Transport, l *slog.Logger) {
	if ls, ok := t.(loggerSetter); ok {
		ls.SetLogger(l)
	}
}

var (
	defaultMu        sync.RWMutex
	defaultTransport transport.Transport
)

// SetDefaultTransport sets the transport used by builders created without
// WithTransport. The current logger is handed to t if it accepts one.
// Pass nil to detach.
func SetDefaultTransport(t transport.Transport) {
	defaultMu.Lock()
	defaultTransport = t
	defaultMu.Unlock()
	if t != nil {
		propagateLogger(t, Logger())
	}
}

// DefaultTransport returns the transport set by SetDefaultTransport.
func DefaultTransport() transport.Transport {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultTransport
}
