package transport

import (
	"bufio"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/gogpu/glbatch/wire"
)

// StreamOption configures a Stream.
type StreamOption func(*Stream)

// WithSession sets the session id written in every frame header.
func WithSession(id uuid.UUID) StreamOption {
	return func(s *Stream) {
		s.session = id
	}
}

// Stream writes each message as one frame to an io.Writer. Frames carry a
// session id and a sequence number starting at 0.
//
// Writes are buffered per frame and flushed before Send returns, so a frame
// is never left half-written in the buffer between calls.
type Stream struct {
	mu      sync.Mutex
	w       io.Writer
	bw      *bufio.Writer
	session uuid.UUID
	seq     uint64
	closed  bool

	logger atomic.Pointer[slog.Logger]
}

// NewStream creates a stream transport writing to w with a fresh random
// session id.
func NewStream(w io.Writer, opts ...StreamOption) *Stream {
	s := &Stream{
		w:       w,
		bw:      bufio.NewWriterSize(w, 64<<10),
		session: uuid.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger.Store(slog.New(slog.DiscardHandler))
	return s
}

// Session returns the session id written in frame headers.
func (s *Stream) Session() uuid.UUID {
	return s.session
}

// Sent returns the number of frames written so far.
func (s *Stream) Sent() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq
}

// SetLogger sets the logger used for per-frame diagnostics.
// Pass nil to disable logging.
func (s *Stream) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	s.logger.Store(l)
}

// Send validates m and writes it as the next frame.
func (s *Stream) Send(m *wire.Message) error {
	if err := m.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	f := &wire.Frame{Session: s.session, Seq: s.seq, Message: *m}
	if err := wire.WriteFrame(s.bw, f); err != nil {
		return err
	}
	if err := s.bw.Flush(); err != nil {
		return err
	}
	s.logger.Load().Debug("transport: frame written",
		"session", s.session,
		"seq", s.seq,
		"commands", len(m.Commands),
		"buffers", len(m.Buffers),
		"payload_bytes", m.PayloadBytes())
	s.seq++
	return nil
}

// Close flushes pending output and closes the writer if it is an
// io.Closer.
func (s *Stream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	if err := s.bw.Flush(); err != nil {
		return err
	}
	if c, ok := s.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
