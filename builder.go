package glbatch

import (
	"slices"

	"github.com/gogpu/glbatch/arraybuf"
	"github.com/gogpu/glbatch/resource"
	"github.com/gogpu/glbatch/transport"
	"github.com/gogpu/glbatch/wire"
)

// Handle identifies a GPU object created by a create call. See
// resource.Handle.
type Handle = resource.Handle

// None is the handle that unbinds.
const None = resource.None

// Builder records GPU commands into a batch.
//
// Every method validates its arguments before touching the batch: a method
// that returns an error has appended nothing. Methods with array arguments
// encode the array and append it to the payload list, storing only its
// index and metadata in the command.
//
// A Builder is not safe for concurrent use. Builders that address the same
// executor session must share one registry (see WithRegistry) and must be
// serialized by the caller.
type Builder struct {
	registry   *resource.Registry
	transport  transport.Transport
	updateInfo bool

	commands []wire.Command
	buffers  [][]byte
}

// NewBuilder creates an empty builder with its own handle registry.
//
// Example:
//
//	b := glbatch.NewBuilder(glbatch.WithTransport(t))
//	vbo, _ := b.CreateBufferExt(glbatch.ArrayBuffer, arraybuf.Of(vertices), glbatch.StaticDraw)
func NewBuilder(opts ...Option) *Builder {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.registry == nil {
		o.registry = resource.NewRegistry()
	}
	if o.transport == nil {
		o.transport = DefaultTransport()
	}
	if o.transport != nil {
		propagateLogger(o.transport, Logger())
	}
	return &Builder{
		registry:   o.registry,
		transport:  o.transport,
		updateInfo: o.updateInfo,
		commands:   make([]wire.Command, 0, o.capacity),
	}
}

// Registry returns the handle registry the builder allocates from.
func (b *Builder) Registry() *resource.Registry {
	return b.registry
}

// Transport returns the transport Dispatch sends to, or nil.
func (b *Builder) Transport() transport.Transport {
	return b.transport
}

// Len returns the number of commands in the batch.
func (b *Builder) Len() int {
	return len(b.commands)
}

// PayloadCount returns the number of payloads in the batch.
func (b *Builder) PayloadCount() int {
	return len(b.buffers)
}

// Commands returns a copy of the batch's command list.
func (b *Builder) Commands() []wire.Command {
	return slices.Clone(b.commands)
}

// Buffers returns a copy of the batch's payload list. The payload bytes
// are shared.
func (b *Builder) Buffers() [][]byte {
	return slices.Clone(b.buffers)
}

// Message returns the batch as a wire message without dispatching it.
// The message shares storage with the builder until the next call that
// modifies the batch.
func (b *Builder) Message(executeOnce, clearPrevious bool) *wire.Message {
	return &wire.Message{
		Commands: b.commands,
		OnlyOnce: executeOnce,
		Clear:    clearPrevious,
		Buffers:  b.buffers,
	}
}

// Discard empties the batch without sending it.
func (b *Builder) Discard() {
	b.reset()
}

func (b *Builder) reset() {
	b.commands = make([]wire.Command, 0, cap(b.commands))
	b.buffers = nil
}

func (b *Builder) push(c wire.Command) {
	b.commands = append(b.commands, c)
}

// attach encodes a into the payload list and returns its reference. The
// index is the payload's position at append time.
func (b *Builder) attach(a *arraybuf.Array) *wire.BufferMetadata {
	meta, data := arraybuf.Encode(a)
	ref := &wire.BufferMetadata{
		Shape: meta.Shape,
		DType: meta.DType,
		Index: len(b.buffers),
	}
	b.buffers = append(b.buffers, data)
	return ref
}

func (b *Builder) allocate(kind resource.Kind) Handle {
	return b.registry.Allocate(kind)
}
