package transport

import (
	"slices"
	"sync"

	"github.com/gogpu/glbatch/wire"
)

// Memory keeps every sent message in order.
//
// It stands in for the executor in tests and lets tools inspect what a
// Builder produced without any I/O.
type Memory struct {
	mu       sync.Mutex
	messages []wire.Message
	err      error
	closed   bool
}

// NewMemory creates an empty in-memory transport.
func NewMemory() *Memory {
	return &Memory{}
}

// Send records m. If an error was set with FailWith, Send returns it and
// records nothing.
func (t *Memory) Send(m *wire.Message) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return ErrClosed
	}
	if t.err != nil {
		return t.err
	}
	t.messages = append(t.messages, wire.Message{
		Commands: slices.Clone(m.Commands),
		OnlyOnce: m.OnlyOnce,
		Clear:    m.Clear,
		Buffers:  slices.Clone(m.Buffers),
	})
	return nil
}

// FailWith makes subsequent sends fail with err. Pass nil to recover.
func (t *Memory) FailWith(err error) {
	t.mu.Lock()
	t.err = err
	t.mu.Unlock()
}

// Messages returns the recorded messages in send order.
func (t *Memory) Messages() []wire.Message {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.messages)
}

// Last returns the most recent message.
func (t *Memory) Last() (wire.Message, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.messages) == 0 {
		return wire.Message{}, false
	}
	return t.messages[len(t.messages)-1], true
}

// Len returns the number of recorded messages.
func (t *Memory) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.messages)
}

// Reset drops all recorded messages.
func (t *Memory) Reset() {
	t.mu.Lock()
	t.messages = nil
	t.mu.Unlock()
}

// Close marks the transport closed. Recorded messages remain readable.
func (t *Memory) Close() error {
	t.mu.Lock()
	t.closed = true
	t.mu.Unlock()
	return nil
}
