package glbatch

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/gogpu/glbatch/transport"
	"github.com/gogpu/glbatch/wire"
)

// loggingTransport records the logger it is handed.
type loggingTransport struct {
	transport.Memory
	logger *slog.Logger
}

func (t *loggingTransport) SetLogger(l *slog.Logger) { t.logger = l }

// Compile-time check that loggingTransport is a transport.
var _ transport.Transport = (*loggingTransport)(nil)

func TestNopHandler(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("nopHandler.Enabled(%v) = true, want false", level)
		}
	}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("nopHandler.Handle() = %v, want nil", err)
	}
	if _, ok := h.WithAttrs([]slog.Attr{slog.String("key", "val")}).(nopHandler); !ok {
		t.Error("WithAttrs did not return a nopHandler")
	}
	if _, ok := h.WithGroup("group").(nopHandler); !ok {
		t.Error("WithGroup did not return a nopHandler")
	}
}

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger should not be enabled for %v", level)
		}
	}
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	custom := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	SetLogger(custom)

	if Logger() != custom {
		t.Error("Logger() did not return the custom logger set via SetLogger")
	}
	Logger().Info("test message", "key", "value")
	if !strings.Contains(buf.String(), "test message") {
		t.Errorf("expected log output to contain 'test message', got: %s", buf.String())
	}
}

func TestSetLoggerNilRestoresSilent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(slog.Default())
	SetLogger(nil)

	l := Logger()
	if l == nil {
		t.Fatal("SetLogger(nil) should set nop logger, not nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should produce a disabled logger")
	}
}

func TestSetLoggerPropagatesToDefaultTransport(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() {
		SetLogger(orig)
		SetDefaultTransport(nil)
	})

	tr := &loggingTransport{}
	SetDefaultTransport(tr)
	if tr.logger != orig {
		t.Error("SetDefaultTransport did not hand over the current logger")
	}

	custom := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	SetLogger(custom)
	if tr.logger != custom {
		t.Error("SetLogger did not propagate to the default transport")
	}
}

func TestNewBuilderPropagatesLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	custom := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	SetLogger(custom)

	tr := &loggingTransport{}
	_ = NewBuilder(WithTransport(tr))
	if tr.logger != custom {
		t.Error("NewBuilder did not propagate the current logger to its transport")
	}
}

func TestDispatchLogsDroppedBatch(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	b := NewBuilder()
	b.Viewport(0, 0, 1, 1)
	b.Dispatch(true, false)

	if !strings.Contains(buf.String(), "no transport") {
		t.Errorf("log output = %q, want a dropped batch warning", buf.String())
	}
	if b.Len() != 0 {
		t.Error("batch not cleared after dropped dispatch")
	}
}

func TestLoggerConcurrentAccess(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var wg sync.WaitGroup
	const goroutines = 100

	for range goroutines {
		wg.Go(func() {
			l := Logger()
			if l == nil {
				t.Error("Logger() returned nil during concurrent access")
				return
			}
			l.Debug("concurrent read")
		})
	}
	for range goroutines {
		wg.Go(func() {
			SetLogger(slog.Default())
			SetLogger(nil)
		})
	}
	wg.Wait()
}

func TestLoggingTransportReceivesMessages(t *testing.T) {
	tr := &loggingTransport{}
	b := NewBuilder(WithTransport(tr))
	b.Viewport(0, 0, 2, 2)
	b.Dispatch(false, false)

	msgs := tr.Messages()
	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1", len(msgs))
	}
	if _, ok := msgs[0].Commands[0].(wire.Viewport); !ok {
		t.Errorf("command = %T, want wire.Viewport", msgs[0].Commands[0])
	}
}

func BenchmarkLoggerLoad(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		l := Logger()
		_ = l
	}
}

func BenchmarkLoggerDisabledLog(b *testing.B) {
	l := Logger()
	b.ReportAllocs()
	for b.Loop() {
		l.Debug("message", "key", "value")
	}
}
