// Package glbatch records WebGL 2 commands into batches for a remote
// executor.
//
// # Overview
//
// glbatch is the producer side of a command-batch protocol. A program
// running away from the GPU, such as a notebook kernel or a server, builds
// an ordered list of WebGL calls with a [Builder] and dispatches it to an
// executor that owns the real context and replays the calls in order.
// Numeric arrays travel beside the command list as raw little-endian
// blobs, referenced by index.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/glbatch"
//	    "github.com/gogpu/glbatch/arraybuf"
//	    "github.com/gogpu/glbatch/transport"
//	)
//
//	t := transport.NewStream(conn)
//	b := glbatch.NewBuilder(glbatch.WithTransport(t))
//
//	prog, _ := b.CreateProgramExt(vertexSrc, fragmentSrc)
//	vbo, _ := b.CreateBufferExt(glbatch.ArrayBuffer, arraybuf.Of(vertices), glbatch.StaticDraw)
//	vao, _ := b.CreateVertexArrayExt(prog, []glbatch.VertexBinding{
//	    {Buffer: vbo, Layout: "3f32 3f32", Attributes: []string{"in_vert", "in_color"}},
//	}, nil)
//
//	b.ClearColor(0, 0, 0, 1)
//	b.Clear(glbatch.ColorBufferBit)
//	b.UseProgram(prog)
//	b.BindVertexArray(vao)
//	b.DrawArrays(glbatch.Triangles, 0, 3)
//	b.Dispatch(false, true) // keep for replay, replacing earlier frames
//
// # Validation
//
// Every enumerated argument is a closed Go type whose String method is the
// WebGL constant name sent on the wire. Builder methods reject values
// outside the set, and other malformed arguments, with an error matching
// [ErrInvalidParameter]; a method that returns an error appends nothing.
// Handles are not checked: a stale or foreign handle is passed through.
//
// # Handles
//
// Create calls return a [Handle] allocated from the builder's registry.
// One counter is shared by all resource kinds and starts at 0. [None]
// (-1) unbinds.
//
// # Composers
//
// CreateProgramExt, CreateBufferExt, CreateVertexArrayExt,
// CreateProgramWGSL and CreateTextureFromImage append fixed sequences of
// primitive commands and, unless [WithoutAutoDispatch] is given, dispatch
// them once.
//
// # Packages
//
//   - arraybuf: numeric arrays and their wire encoding
//   - resource: handle registry
//   - wire: command records, messages and stream frames
//   - transport: delivery of messages to an executor
package glbatch
