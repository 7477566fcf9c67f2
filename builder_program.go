package glbatch

import (
	"github.com/gogpu/glbatch/arraybuf"
	"github.com/gogpu/glbatch/resource"
	"github.com/gogpu/glbatch/wire"
)

// CreateShader allocates a shader handle of the given stage.
func (b *Builder) CreateShader(typ ShaderType) (Handle, error) {
	if err := validate("CreateShader", arg{"type", typ}); err != nil {
		return None, err
	}
	h := b.allocate(resource.Shader)
	b.push(wire.CreateShader{Resource: h, Type: typ.String()})
	return h, nil
}

// ShaderSource sets the GLSL source of shader.
func (b *Builder) ShaderSource(shader Handle, source string) {
	b.push(wire.ShaderSource{Shader: shader, Source: source})
}

// CompileShader compiles shader. Compile errors are reported by the
// executor, not here.
func (b *Builder) CompileShader(shader Handle) {
	b.push(wire.CompileShader{Shader: shader})
}

// CreateProgram allocates a program handle.
func (b *Builder) CreateProgram() Handle {
	h := b.allocate(resource.Program)
	b.push(wire.CreateProgram{Resource: h})
	return h
}

// AttachShader attaches shader to program.
func (b *Builder) AttachShader(program, shader Handle) {
	b.push(wire.AttachShader{Program: program, Shader: shader})
}

// BindAttribLocation binds the attribute name to location index. It takes
// effect at the next LinkProgram.
func (b *Builder) BindAttribLocation(program Handle, index int, name string) error {
	const op = "BindAttribLocation"
	if index < 0 || index >= MaxVertexAttribs {
		return invalidf(op, "index", index, "want 0..%d", MaxVertexAttribs-1)
	}
	if name == "" {
		return invalidf(op, "name", `""`, "empty attribute name")
	}
	b.push(wire.BindAttribLocation{Program: program, Index: index, Attrib: name})
	return nil
}

// LinkProgram links program. The executor also binds the program's
// ViewBlock uniform block, if any, to binding point 0.
func (b *Builder) LinkProgram(program Handle) {
	b.push(wire.LinkProgram{Program: program})
}

// UseProgram installs program, or None, as the current program.
func (b *Builder) UseProgram(program Handle) {
	b.push(wire.UseProgram{Program: program})
}

// Uniform sets a vector uniform of the current program. The last dimension
// of a is the vector size, 1 to 4; leading dimensions make an array
// uniform. a must hold int32, uint32 or float32 values.
func (b *Builder) Uniform(name string, a *arraybuf.Array) error {
	const op = "Uniform"
	if name == "" {
		return invalidf(op, "name", `""`, "empty uniform name")
	}
	if err := checkUniform(op, a); err != nil {
		return err
	}
	b.push(wire.Uniform{Uniform: name, Buffer: b.attach(a)})
	return nil
}

func checkUniform(op string, a *arraybuf.Array) error {
	if a == nil || a.NDim() == 0 {
		return invalidf(op, "data", "nil", "array required")
	}
	shape := a.Shape()
	if n := shape[len(shape)-1]; n < 1 || n > 4 {
		return invalidf(op, "data", shape, "last dimension must be 1..4")
	}
	switch d := a.DType(); d {
	case arraybuf.Int32, arraybuf.Uint32, arraybuf.Float32:
	default:
		return invalidf(op, "data", d, "dtype must be int32, uint32 or float32")
	}
	return nil
}

// UniformMatrix sets a matrix uniform of the current program. The last two
// dimensions of a give the matrix size, each 2 to 4, and a must hold
// float32 values. The executor reads the data column-major without
// transposing, as GLSL does.
func (b *Builder) UniformMatrix(name string, a *arraybuf.Array) error {
	const op = "UniformMatrix"
	if name == "" {
		return invalidf(op, "name", `""`, "empty uniform name")
	}
	if a == nil || a.NDim() < 2 {
		return invalidf(op, "data", "nil", "array of at least two dimensions required")
	}
	shape := a.Shape()
	for _, n := range shape[len(shape)-2:] {
		if n < 2 || n > 4 {
			return invalidf(op, "data", shape, "matrix dimensions must be 2..4")
		}
	}
	if d := a.DType(); d != arraybuf.Float32 {
		return invalidf(op, "data", d, "dtype must be float32")
	}
	b.push(wire.UniformMatrix{Uniform: name, Buffer: b.attach(a)})
	return nil
}

// UniformBlockBinding assigns the uniform block blockName of program to a
// uniform buffer binding point.
func (b *Builder) UniformBlockBinding(program Handle, blockName string, binding int) error {
	const op = "UniformBlockBinding"
	if blockName == "" {
		return invalidf(op, "blockName", `""`, "empty block name")
	}
	if binding < 0 {
		return invalid(op, "binding", binding)
	}
	b.push(wire.UniformBlockBinding{Program: program, BlockName: blockName, BlockBinding: binding})
	return nil
}
