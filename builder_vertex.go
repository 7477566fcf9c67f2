package glbatch

import (
	"strconv"

	"github.com/gogpu/glbatch/arraybuf"
	"github.com/gogpu/glbatch/resource"
	"github.com/gogpu/glbatch/wire"
)

// MaxVertexAttribs bounds numeric attribute locations.
const MaxVertexAttribs = 16

// MaxVertexStride is the largest stride WebGL accepts.
const MaxVertexStride = 255

// AttribLocation addresses a vertex attribute either by location or by
// name. The executor resolves names against the current program.
type AttribLocation struct {
	index int
	name  string
	named bool
}

// Loc returns the attribute at location i.
func Loc(i int) AttribLocation { return AttribLocation{index: i} }

// AttribName returns the attribute called name in the current program.
// An empty name is not a valid location.
func AttribName(name string) AttribLocation { return AttribLocation{name: name, named: true} }

func (l AttribLocation) String() string {
	if l.named {
		return strconv.Quote(l.name)
	}
	return strconv.Itoa(l.index)
}

func (l AttribLocation) Valid() bool {
	if l.named {
		return l.name != ""
	}
	return l.index >= 0 && l.index < MaxVertexAttribs
}

func (l AttribLocation) toWire() wire.IntOrName {
	if l.named {
		return wire.IntOrName{Name: l.name}
	}
	return wire.IntOrName{Int: l.index}
}

// CreateVertexArray allocates a vertex array handle.
func (b *Builder) CreateVertexArray() Handle {
	h := b.allocate(resource.VertexArray)
	b.push(wire.CreateVertexArray{Resource: h})
	return h
}

// BindVertexArray binds vao, or None.
func (b *Builder) BindVertexArray(vao Handle) {
	b.push(wire.BindVertexArray{VertexArray: vao})
}

func checkPointer(op string, loc AttribLocation, size, stride, offset int) error {
	switch {
	case !loc.Valid():
		return invalid(op, "index", loc)
	case size < 1 || size > 4:
		return invalidf(op, "size", size, "want 1..4")
	case stride < 0 || stride > MaxVertexStride:
		return invalidf(op, "stride", stride, "want 0..%d", MaxVertexStride)
	case offset < 0:
		return invalid(op, "offset", offset)
	}
	return nil
}

// VertexAttribPointer describes where the float attribute loc reads from
// in the buffer bound to ARRAY_BUFFER. Integer types are converted to
// float, scaled to [0,1] or [-1,1] when normalized is set.
func (b *Builder) VertexAttribPointer(loc AttribLocation, size int, typ AttribType, normalized bool, stride, offset int) error {
	const op = "VertexAttribPointer"
	if err := validate(op, arg{"type", typ}); err != nil {
		return err
	}
	if err := checkPointer(op, loc, size, stride, offset); err != nil {
		return err
	}
	b.push(wire.VertexAttribPointer{
		Index:      loc.toWire(),
		Size:       size,
		Type:       typ.String(),
		Normalized: normalized,
		Stride:     stride,
		Offset:     offset,
	})
	return nil
}

// VertexAttribIPointer describes where the integer attribute loc reads
// from in the buffer bound to ARRAY_BUFFER.
func (b *Builder) VertexAttribIPointer(loc AttribLocation, size int, typ IntAttribType, stride, offset int) error {
	const op = "VertexAttribIPointer"
	if err := validate(op, arg{"type", typ}); err != nil {
		return err
	}
	if err := checkPointer(op, loc, size, stride, offset); err != nil {
		return err
	}
	b.push(wire.VertexAttribIPointer{
		Index:  loc.toWire(),
		Size:   size,
		Type:   typ.String(),
		Stride: stride,
		Offset: offset,
	})
	return nil
}

// EnableVertexAttribArray makes attribute loc read from its pointer.
func (b *Builder) EnableVertexAttribArray(loc AttribLocation) error {
	if !loc.Valid() {
		return invalid("EnableVertexAttribArray", "index", loc)
	}
	b.push(wire.EnableVertexAttribArray{Index: loc.toWire()})
	return nil
}

// DisableVertexAttribArray makes attribute loc use its constant value.
func (b *Builder) DisableVertexAttribArray(loc AttribLocation) error {
	if !loc.Valid() {
		return invalid("DisableVertexAttribArray", "index", loc)
	}
	b.push(wire.DisableVertexAttribArray{Index: loc.toWire()})
	return nil
}

// VertexAttrib sets the constant value of float attribute loc from a
// one-dimensional float32 array of 1 to 4 elements.
func (b *Builder) VertexAttrib(loc AttribLocation, a *arraybuf.Array) error {
	const op = "VertexAttrib"
	if !loc.Valid() {
		return invalid(op, "index", loc)
	}
	if a == nil || a.NDim() != 1 || a.Len() < 1 || a.Len() > 4 {
		return invalidf(op, "data", shapeOf(a), "want a vector of 1..4 elements")
	}
	if d := a.DType(); d != arraybuf.Float32 {
		return invalidf(op, "data", d, "dtype must be float32")
	}
	b.push(wire.VertexAttrib{Index: loc.toWire(), Buffer: b.attach(a)})
	return nil
}

// VertexAttribI sets the constant value of integer attribute loc from a
// four-element int32 or uint32 array.
func (b *Builder) VertexAttribI(loc AttribLocation, a *arraybuf.Array) error {
	const op = "VertexAttribI"
	if !loc.Valid() {
		return invalid(op, "index", loc)
	}
	if a == nil || a.NDim() != 1 || a.Len() != 4 {
		return invalidf(op, "data", shapeOf(a), "want a vector of 4 elements")
	}
	if d := a.DType(); d != arraybuf.Int32 && d != arraybuf.Uint32 {
		return invalidf(op, "data", d, "dtype must be int32 or uint32")
	}
	b.push(wire.VertexAttribI{Index: loc.toWire(), Buffer: b.attach(a)})
	return nil
}

func shapeOf(a *arraybuf.Array) any {
	if a == nil {
		return "nil"
	}
	return a.Shape()
}
