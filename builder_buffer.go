package glbatch

import (
	"github.com/gogpu/glbatch/arraybuf"
	"github.com/gogpu/glbatch/resource"
	"github.com/gogpu/glbatch/wire"
)

// CreateBuffer allocates a buffer handle.
func (b *Builder) CreateBuffer() Handle {
	h := b.allocate(resource.Buffer)
	b.push(wire.CreateBuffer{Resource: h})
	return h
}

// BindBuffer binds buf, or None, to target.
func (b *Builder) BindBuffer(target BufferTarget, buf Handle) error {
	if err := validate("BindBuffer", arg{"target", target}); err != nil {
		return err
	}
	b.push(wire.BindBuffer{Target: target.String(), Buffer: buf})
	return nil
}

// BindBufferBase binds buf to an indexed binding point of target, which
// must be UNIFORM_BUFFER or TRANSFORM_FEEDBACK_BUFFER.
func (b *Builder) BindBufferBase(target BufferTarget, index int, buf Handle) error {
	const op = "BindBufferBase"
	if target != UniformBuffer && target != TransformFeedbackBuffer {
		return invalidf(op, "target", target, "want UNIFORM_BUFFER or TRANSFORM_FEEDBACK_BUFFER")
	}
	if index < 0 {
		return invalid(op, "index", index)
	}
	b.push(wire.BindBufferBase{Target: target.String(), Index: index, Buffer: buf})
	return nil
}

// BufferData creates the data store of the buffer bound to target and
// fills it with data. A nil data creates an empty store.
func (b *Builder) BufferData(target BufferTarget, data *arraybuf.Array, usage BufferUsage) error {
	if err := validate("BufferData", arg{"target", target}, arg{"usage", usage}); err != nil {
		return err
	}
	c := wire.BufferData{
		Target:     target.String(),
		Usage:      usage.String(),
		UpdateInfo: b.updateInfo,
	}
	if data != nil {
		c.Buffer = b.attach(data)
	}
	b.push(c)
	return nil
}

// BufferSubData writes data into the buffer bound to target starting at
// dstByteOffset.
func (b *Builder) BufferSubData(target BufferTarget, dstByteOffset int, data *arraybuf.Array) error {
	const op = "BufferSubData"
	if err := validate(op, arg{"target", target}); err != nil {
		return err
	}
	if dstByteOffset < 0 {
		return invalid(op, "dstByteOffset", dstByteOffset)
	}
	if data == nil {
		return invalidf(op, "data", "nil", "array required")
	}
	b.push(wire.BufferSubData{Target: target.String(), DstByteOffset: dstByteOffset, Buffer: b.attach(data)})
	return nil
}

// BufferSubDataUniform writes data at the offset of the named uniform
// inside the uniform block held by the buffer bound to target. The
// executor resolves the offset from the block layout.
func (b *Builder) BufferSubDataUniform(target BufferTarget, uniform string, data *arraybuf.Array) error {
	const op = "BufferSubDataUniform"
	if err := validate(op, arg{"target", target}); err != nil {
		return err
	}
	if uniform == "" {
		return invalidf(op, "uniform", `""`, "empty uniform name")
	}
	if data == nil {
		return invalidf(op, "data", "nil", "array required")
	}
	b.push(wire.BufferSubDataUniform{Target: target.String(), Uniform: uniform, Buffer: b.attach(data)})
	return nil
}

// CreateUniformBuffer allocates a buffer sized by the executor for the
// uniform block blockName of program.
func (b *Builder) CreateUniformBuffer(program Handle, blockName string, usage BufferUsage) (Handle, error) {
	const op = "CreateUniformBuffer"
	if err := validate(op, arg{"usage", usage}); err != nil {
		return None, err
	}
	if blockName == "" {
		return None, invalidf(op, "blockName", `""`, "empty block name")
	}
	h := b.allocate(resource.Buffer)
	b.push(wire.CreateUniformBuffer{Buffer: h, Program: program, BlockName: blockName, Usage: usage.String()})
	return h, nil
}
