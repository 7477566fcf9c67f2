package transport

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/gogpu/glbatch/arraybuf"
	"github.com/gogpu/glbatch/wire"
)

func sampleMessage(n int) *wire.Message {
	return &wire.Message{
		Commands: []wire.Command{
			wire.Viewport{Width: n, Height: n},
			wire.BufferData{
				Target: "ARRAY_BUFFER", Usage: "STATIC_DRAW",
				Buffer: &wire.BufferMetadata{Shape: []int{2}, DType: arraybuf.Uint16, Index: 0},
			},
		},
		Buffers: [][]byte{{1, 0, 2, 0}},
	}
}

func TestBuiltinsRegistered(t *testing.T) {
	got := Transports()
	for _, name := range []string{"memory", "stream"} {
		if !slices.Contains(got, name) || !IsRegistered(name) {
			t.Errorf("transport %q not registered (have %v)", name, got)
		}
	}
}

func TestRegisterPanics(t *testing.T) {
	t.Run("nil factory", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		Register("nil-factory", nil)
	})
	t.Run("duplicate", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		Register("memory", func(Config) (Transport, error) { return NewMemory(), nil })
	})
}

func TestRegisterCustom(t *testing.T) {
	t.Cleanup(func() { Unregister("custom-test") })

	want := NewMemory()
	Register("custom-test", func(Config) (Transport, error) { return want, nil })

	got, err := Open("custom-test", Config{})
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Error("Open returned a different transport")
	}
}

func TestOpenUnknown(t *testing.T) {
	_, err := Open("carrier-pigeon", Config{})
	if err == nil || !strings.Contains(err.Error(), "forgotten import") {
		t.Errorf("err = %v, want unknown transport error", err)
	}
	if _, err := Open("stream", Config{}); err == nil {
		t.Error("stream without writer should fail")
	}
}

func TestMemoryRecordsInOrder(t *testing.T) {
	m := NewMemory()
	for i := range 3 {
		if err := m.Send(sampleMessage(i)); err != nil {
			t.Fatal(err)
		}
	}
	msgs := m.Messages()
	if len(msgs) != 3 {
		t.Fatalf("recorded %d messages, want 3", len(msgs))
	}
	for i, msg := range msgs {
		if vp := msg.Commands[0].(wire.Viewport); vp.Width != i {
			t.Errorf("message %d has width %d", i, vp.Width)
		}
	}
	last, ok := m.Last()
	if !ok || last.Commands[0].(wire.Viewport).Width != 2 {
		t.Error("Last() did not return the final message")
	}
	m.Reset()
	if m.Len() != 0 {
		t.Error("Reset() left messages behind")
	}
}

func TestMemoryFailWith(t *testing.T) {
	m := NewMemory()
	boom := errors.New("boom")
	m.FailWith(boom)
	if err := m.Send(sampleMessage(1)); !errors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}
	m.FailWith(nil)
	if err := m.Send(sampleMessage(1)); err != nil {
		t.Errorf("err = %v after recovery", err)
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Len())
	}
	_ = m.Close()
	if err := m.Send(sampleMessage(1)); !errors.Is(err, ErrClosed) {
		t.Errorf("err = %v, want ErrClosed", err)
	}
}

func TestMemoryConcurrentSend(t *testing.T) {
	m := NewMemory()
	var wg sync.WaitGroup
	for range 8 {
		wg.Go(func() {
			for range 50 {
				_ = m.Send(sampleMessage(1))
			}
		})
	}
	wg.Wait()
	if m.Len() != 400 {
		t.Errorf("Len() = %d, want 400", m.Len())
	}
}

func TestStreamWritesSequencedFrames(t *testing.T) {
	var buf bytes.Buffer
	id := uuid.New()
	s := NewStream(&buf, WithSession(id))

	for i := range 3 {
		if err := s.Send(sampleMessage(i)); err != nil {
			t.Fatal(err)
		}
	}
	if s.Sent() != 3 {
		t.Errorf("Sent() = %d, want 3", s.Sent())
	}

	for i := range 3 {
		f, err := wire.ReadFrame(&buf)
		if err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
		if f.Session != id || f.Seq != uint64(i) {
			t.Errorf("frame %d header = %v/%d", i, f.Session, f.Seq)
		}
		if !bytes.Equal(f.Message.Buffers[0], []byte{1, 0, 2, 0}) {
			t.Errorf("frame %d buffer = %v", i, f.Message.Buffers[0])
		}
	}
	if _, err := wire.ReadFrame(&buf); err != io.EOF {
		t.Errorf("err = %v, want io.EOF", err)
	}
}

func TestStreamRejectsInvalidMessage(t *testing.T) {
	var buf bytes.Buffer
	s := NewStream(&buf)
	m := sampleMessage(1)
	m.Buffers = nil
	if err := s.Send(m); !errors.Is(err, wire.ErrBadPayloadRef) {
		t.Errorf("err = %v, want ErrBadPayloadRef", err)
	}
	if buf.Len() != 0 || s.Sent() != 0 {
		t.Error("invalid message must not be written")
	}
}

type closeRecorder struct {
	bytes.Buffer
	closed bool
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}

func TestStreamClose(t *testing.T) {
	w := &closeRecorder{}
	s := NewStream(w)
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if !w.closed {
		t.Error("Close did not close the writer")
	}
	if err := s.Send(sampleMessage(1)); !errors.Is(err, ErrClosed) {
		t.Errorf("err = %v, want ErrClosed", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close = %v", err)
	}
}

func TestStreamLogger(t *testing.T) {
	var logBuf bytes.Buffer
	s := NewStream(io.Discard)
	s.SetLogger(slog.New(slog.NewTextHandler(&logBuf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	if err := s.Send(sampleMessage(1)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(logBuf.String(), "frame written") {
		t.Errorf("log output = %q", logBuf.String())
	}
	s.SetLogger(nil)
	logBuf.Reset()
	_ = s.Send(sampleMessage(1))
	if logBuf.Len() != 0 {
		t.Error("SetLogger(nil) should silence the stream")
	}
}
