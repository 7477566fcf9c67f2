// Package transport moves dispatched batches from a Builder to whatever
// delivers them to the executor.
//
// The channel to a live executor is owned by the host environment (for
// example a notebook comm). This package provides the interface that host
// code implements, a name-keyed registry following the database/sql driver
// pattern, and two built-in transports:
//
//   - "memory" keeps every message in order, for tests and inspection
//   - "stream" writes length-prefixed frames (see wire.WriteFrame) to an
//     io.Writer such as a pipe, socket or file
//
// Transports must deliver messages in the order Send is called and must be
// safe for concurrent use.
package transport

import (
	"errors"
	"io"

	"github.com/google/uuid"

	"github.com/gogpu/glbatch/wire"
)

// ErrClosed is returned by Send after Close.
var ErrClosed = errors.New("transport: closed")

// Transport delivers messages to an executor.
type Transport interface {
	// Send delivers one message. The message and its buffers must not be
	// modified by the caller afterwards.
	Send(m *wire.Message) error

	// Close releases the transport. Further sends fail with ErrClosed.
	Close() error
}

// Config carries the parameters a registered factory may use.
type Config struct {
	// Writer receives frames for byte-stream transports.
	Writer io.Writer

	// Session overrides the generated session id. The zero value means
	// a fresh random id.
	Session uuid.UUID
}
