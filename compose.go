package glbatch

import (
	"maps"
	"slices"
	"strconv"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/glbatch/arraybuf"
	"github.com/gogpu/glbatch/wire"
)

// ComposeOption configures a composer such as CreateProgramExt.
type ComposeOption func(*composeOptions)

type composeOptions struct {
	autoDispatch   bool
	attribLocation map[string]int
	mipmaps        bool
	width, height  int
	scaler         xdraw.Interpolator
	vsEntry        string
	fsEntry        string
}

func newComposeOptions(opts []ComposeOption) composeOptions {
	o := composeOptions{
		autoDispatch: true,
		mipmaps:      true,
		scaler:       xdraw.BiLinear,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithoutAutoDispatch leaves the composed commands in the batch instead of
// dispatching them once.
func WithoutAutoDispatch() ComposeOption {
	return func(o *composeOptions) {
		o.autoDispatch = false
	}
}

// WithAttribLocations binds attribute names to locations before the
// program is linked.
func WithAttribLocations(locs map[string]int) ComposeOption {
	return func(o *composeOptions) {
		o.attribLocation = maps.Clone(locs)
	}
}

// WithoutMipmaps skips mipmap generation in CreateTextureFromImage.
func WithoutMipmaps() ComposeOption {
	return func(o *composeOptions) {
		o.mipmaps = false
	}
}

// WithImageSize scales the image to width x height in
// CreateTextureFromImage.
func WithImageSize(width, height int) ComposeOption {
	return func(o *composeOptions) {
		o.width, o.height = width, height
	}
}

// WithScaler sets the interpolator used by WithImageSize. Default
// draw.BiLinear.
func WithScaler(s xdraw.Interpolator) ComposeOption {
	return func(o *composeOptions) {
		if s != nil {
			o.scaler = s
		}
	}
}

// finish dispatches the composed commands once unless auto dispatch is
// off.
func (b *Builder) finish(o composeOptions) {
	if o.autoDispatch {
		b.Dispatch(true, false)
	}
}

// CreateProgramExt compiles vs and fs, links them into a new program and
// returns its handle. The emitted sequence is
//
//	createShader(VERTEX_SHADER) shaderSource compileShader
//	createShader(FRAGMENT_SHADER) shaderSource compileShader
//	createProgram attachShader attachShader
//	[bindAttribLocation...] linkProgram useProgram(None)
//
// and is dispatched once unless WithoutAutoDispatch is given.
func (b *Builder) CreateProgramExt(vs, fs string, opts ...ComposeOption) (Handle, error) {
	o := newComposeOptions(opts)
	names := slices.Sorted(maps.Keys(o.attribLocation))
	for _, name := range names {
		if i := o.attribLocation[name]; name == "" || i < 0 || i >= MaxVertexAttribs {
			return None, invalid("CreateProgramExt", "attribLocation", name+"="+strconv.Itoa(i))
		}
	}

	vsh, _ := b.CreateShader(VertexShader)
	b.ShaderSource(vsh, vs)
	b.CompileShader(vsh)
	fsh, _ := b.CreateShader(FragmentShader)
	b.ShaderSource(fsh, fs)
	b.CompileShader(fsh)

	prog := b.CreateProgram()
	b.AttachShader(prog, vsh)
	b.AttachShader(prog, fsh)
	for _, name := range names {
		_ = b.BindAttribLocation(prog, o.attribLocation[name], name)
	}
	b.LinkProgram(prog)
	b.UseProgram(None)

	b.finish(o)
	return prog, nil
}

// CreateBufferExt creates a buffer, fills it with data on target and
// unbinds it:
//
//	createBuffer bindBuffer(target) bufferData bindBuffer(target, None)
func (b *Builder) CreateBufferExt(target BufferTarget, data *arraybuf.Array, usage BufferUsage, opts ...ComposeOption) (Handle, error) {
	if err := validate("CreateBufferExt", arg{"target", target}, arg{"usage", usage}); err != nil {
		return None, err
	}
	o := newComposeOptions(opts)

	buf := b.CreateBuffer()
	_ = b.BindBuffer(target, buf)
	_ = b.BufferData(target, data, usage)
	_ = b.BindBuffer(target, None)

	b.finish(o)
	return buf, nil
}

// IndexTypeFor returns the index type matching the dtype of indices.
// int32 arrays map to UNSIGNED_INT.
func IndexTypeFor(indices *arraybuf.Array) (IndexType, bool) {
	if indices == nil {
		return 0, false
	}
	switch indices.DType() {
	case arraybuf.Uint8:
		return IndexUnsignedByte, true
	case arraybuf.Uint16:
		return IndexUnsignedShort, true
	case arraybuf.Uint32, arraybuf.Int32:
		return IndexUnsignedInt, true
	default:
		return 0, false
	}
}

// CreateIndexBuffer creates a buffer on ELEMENT_ARRAY_BUFFER and uploads
// indices to it:
//
//	createBuffer bindBuffer(ELEMENT_ARRAY_BUFFER) bufferData(STATIC_DRAW)
//
// The buffer stays bound, so inside a vertex array it becomes the array's
// index buffer. indices must be uint8, uint16, uint32 or int32.
func (b *Builder) CreateIndexBuffer(indices *arraybuf.Array) (Handle, error) {
	if _, ok := IndexTypeFor(indices); !ok {
		return None, invalidf("CreateIndexBuffer", "indices", dtypeOf(indices), "want uint8, uint16, uint32 or int32")
	}
	buf := b.CreateBuffer()
	_ = b.BindBuffer(ElementArrayBuffer, buf)
	_ = b.BufferData(ElementArrayBuffer, indices, StaticDraw)
	return buf, nil
}

// VertexBinding feeds attributes from one interleaved buffer. Layout is a
// shorthand parsed by ParseBufferLayout and Attributes names its tokens
// in order.
type VertexBinding struct {
	Buffer     Handle
	Layout     string
	Attributes []string
}

// CreateVertexArrayExt creates a vertex array that reads the named
// attributes of program from the given buffers, with an optional index
// buffer. Every layout is parsed before anything is appended, so a bad
// layout leaves the batch unchanged. The emitted sequence is
//
//	createVertexArray useProgram(program) bindVertexArray
//	for each binding:
//	    bindBuffer(ARRAY_BUFFER, buffer)
//	    for each attribute: enableVertexAttribArray vertexAttrib[I]Pointer
//	[createBuffer bindBuffer(ELEMENT_ARRAY_BUFFER) bufferData]
//	bindVertexArray(None) bindBuffer(ARRAY_BUFFER, None) useProgram(None)
//
// Integer attributes are bound with vertexAttribIPointer, float ones with
// vertexAttribPointer without normalization.
func (b *Builder) CreateVertexArrayExt(program Handle, bindings []VertexBinding, indices *arraybuf.Array, opts ...ComposeOption) (Handle, error) {
	const op = "CreateVertexArrayExt"
	layouts := make([]BufferLayout, len(bindings))
	for i, vb := range bindings {
		l, err := ParseBufferLayout(vb.Layout, vb.Attributes...)
		if err != nil {
			return None, err
		}
		layouts[i] = l
	}
	if indices != nil {
		if _, ok := IndexTypeFor(indices); !ok {
			return None, invalidf(op, "indices", dtypeOf(indices), "want uint8, uint16, uint32 or int32")
		}
	}
	o := newComposeOptions(opts)

	vao := b.CreateVertexArray()
	b.UseProgram(program)
	b.BindVertexArray(vao)
	for i, vb := range bindings {
		_ = b.BindBuffer(ArrayBuffer, vb.Buffer)
		b.bindLayout(layouts[i])
	}
	if indices != nil {
		_, _ = b.CreateIndexBuffer(indices)
	}
	b.BindVertexArray(None)
	_ = b.BindBuffer(ArrayBuffer, None)
	b.UseProgram(None)

	b.finish(o)
	return vao, nil
}

// bindLayout enables and points every attribute of l, by name, at the
// buffer bound to ARRAY_BUFFER.
func (b *Builder) bindLayout(l BufferLayout) {
	for _, a := range l.Attributes {
		loc := AttribName(a.Name)
		b.push(wire.EnableVertexAttribArray{Index: loc.toWire()})
		if it, ok := a.Type.IntAttribType(); ok {
			b.push(wire.VertexAttribIPointer{
				Index:  loc.toWire(),
				Size:   a.Count,
				Type:   it.String(),
				Stride: l.Stride,
				Offset: a.Offset,
			})
			continue
		}
		b.push(wire.VertexAttribPointer{
			Index:  loc.toWire(),
			Size:   a.Count,
			Type:   a.Type.AttribType().String(),
			Stride: l.Stride,
			Offset: a.Offset,
		})
	}
}

func dtypeOf(a *arraybuf.Array) any {
	if a == nil {
		return "nil"
	}
	return a.DType()
}
