package glbatch

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/glbatch/arraybuf"
	"github.com/gogpu/glbatch/transport"
	"github.com/gogpu/glbatch/wire"
)

func newTestBuilder(t *testing.T) (*Builder, *transport.Memory) {
	t.Helper()
	mem := transport.NewMemory()
	return NewBuilder(WithTransport(mem)), mem
}

func encode(t *testing.T, c wire.Command) string {
	t.Helper()
	data, err := wire.MarshalCommand(c)
	if err != nil {
		t.Fatalf("MarshalCommand(%s): %v", c.Name(), err)
	}
	return string(data)
}

func last(t *testing.T, b *Builder) wire.Command {
	t.Helper()
	cmds := b.Commands()
	if len(cmds) == 0 {
		t.Fatal("batch is empty")
	}
	return cmds[len(cmds)-1]
}

func TestHandlesIncreaseAcrossKinds(t *testing.T) {
	b := NewBuilder()
	vs, err := b.CreateShader(VertexShader)
	if err != nil {
		t.Fatal(err)
	}
	got := []Handle{
		b.CreateBuffer(),
		b.CreateProgram(),
		vs,
		b.CreateVertexArray(),
		b.CreateTexture(),
		b.CreateFramebuffer(),
	}
	// vs was allocated first.
	want := []Handle{1, 2, 0, 3, 4, 5}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("handle %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestInvalidParameterLeavesBatchUnchanged(t *testing.T) {
	f32 := arraybuf.Of([]float32{1, 2, 3, 4})
	tests := []struct {
		name string
		call func(b *Builder) error
	}{
		{"BlendFunc", func(b *Builder) error { return b.BlendFunc(BlendFactor(99), One) }},
		{"BlendFuncSeparate", func(b *Builder) error { return b.BlendFuncSeparate(One, One, One, BlendFactor(15)) }},
		{"BlendEquation", func(b *Builder) error { return b.BlendEquation(BlendEquation(5)) }},
		{"BindBuffer", func(b *Builder) error { return b.BindBuffer(BufferTarget(8), 0) }},
		{"BufferData target", func(b *Builder) error { return b.BufferData(BufferTarget(42), f32, StaticDraw) }},
		{"BufferData usage", func(b *Builder) error { return b.BufferData(ArrayBuffer, f32, BufferUsage(9)) }},
		{"BufferSubData nil", func(b *Builder) error { return b.BufferSubData(ArrayBuffer, 0, nil) }},
		{"BufferSubData offset", func(b *Builder) error { return b.BufferSubData(ArrayBuffer, -4, f32) }},
		{"BindBufferBase target", func(b *Builder) error { return b.BindBufferBase(ArrayBuffer, 0, 1) }},
		{"BindTexture", func(b *Builder) error { return b.BindTexture(TextureTarget(4), 0) }},
		{"ActiveTexture", func(b *Builder) error { return b.ActiveTexture(MaxTextureUnits) }},
		{"CreateShader", func(b *Builder) error { _, err := b.CreateShader(ShaderType(2)); return err }},
		{"DrawArrays mode", func(b *Builder) error { return b.DrawArrays(DrawMode(7), 0, 3) }},
		{"DrawArrays count", func(b *Builder) error { return b.DrawArrays(Triangles, 0, -1) }},
		{"DrawElements type", func(b *Builder) error { return b.DrawElements(Triangles, 3, IndexType(3), 0) }},
		{"DrawElements offset", func(b *Builder) error { return b.DrawElements(Triangles, 3, IndexUnsignedShort, 3) }},
		{"FramebufferTexture2D", func(b *Builder) error {
			return b.FramebufferTexture2D(Framebuffer, Attachment(19), Image2D, 0, 0)
		}},
		{"DrawBuffers", func(b *Builder) error { return b.DrawBuffers(DrawBack, ColorDrawBuffer(16)) }},
		{"VertexAttribPointer type", func(b *Builder) error {
			return b.VertexAttribPointer(Loc(0), 3, AttribType(8), false, 0, 0)
		}},
		{"VertexAttribPointer size", func(b *Builder) error {
			return b.VertexAttribPointer(Loc(0), 5, AttribFloat, false, 0, 0)
		}},
		{"VertexAttribPointer stride", func(b *Builder) error {
			return b.VertexAttribPointer(Loc(0), 3, AttribFloat, false, 256, 0)
		}},
		{"VertexAttribIPointer type", func(b *Builder) error {
			return b.VertexAttribIPointer(Loc(0), 1, IntAttribType(6), 0, 0)
		}},
		{"EnableVertexAttribArray", func(b *Builder) error { return b.EnableVertexAttribArray(Loc(MaxVertexAttribs)) }},
		{"EnableVertexAttribArray empty name", func(b *Builder) error { return b.EnableVertexAttribArray(AttribName("")) }},
		{"VertexAttribPointer empty name", func(b *Builder) error {
			return b.VertexAttribPointer(AttribName(""), 3, AttribFloat, false, 0, 0)
		}},
		{"Enable empty", func(b *Builder) error { return b.Enable() }},
		{"Enable unknown", func(b *Builder) error { return b.Enable(Blend, Capability(10)) }},
		{"Clear zero", func(b *Builder) error { return b.Clear(0) }},
		{"Clear unknown bit", func(b *Builder) error { return b.Clear(ClearBits(8)) }},
		{"CullFace", func(b *Builder) error { return b.CullFace(CullFaceMode(3)) }},
		{"FrontFace", func(b *Builder) error { return b.FrontFace(FrontFaceMode(2)) }},
		{"DepthFunc", func(b *Builder) error { return b.DepthFunc(CompareFunc(8)) }},
		{"TexImage2D format", func(b *Builder) error {
			return b.TexImage2D(Image2D, 0, RGBA8, 1, 1, PixelFormat(13), TypeUnsignedByte, nil)
		}},
		{"TexImage2D level", func(b *Builder) error {
			return b.TexImage2D(Image2D, -1, RGBA8, 1, 1, PixelRGBA, TypeUnsignedByte, nil)
		}},
		{"TexStorage2D unsized", func(b *Builder) error { return b.TexStorage2D(Texture2D, 1, InternalRGBA, 4, 4) }},
		{"TexStorage2D 3D target", func(b *Builder) error { return b.TexStorage2D(Texture3D, 1, RGBA8, 4, 4) }},
		{"TexStorage3D 2D target", func(b *Builder) error { return b.TexStorage3D(Texture2D, 1, RGBA8, 4, 4, 4) }},
		{"TexParameter mismatch", func(b *Builder) error {
			return b.TexParameter(Texture2D, TextureMagFilter, TexEnum(LinearMipmapLinear))
		}},
		{"TexParameter kind", func(b *Builder) error {
			return b.TexParameter(Texture2D, TextureMaxLevel, TexFloat(1))
		}},
		{"TexParameter NaN", func(b *Builder) error {
			return b.TexParameter(Texture2D, TextureMinLOD, TexFloat(float32(math.NaN())))
		}},
		{"PixelStore colorspace", func(b *Builder) error { return b.PixelStore(UnpackColorspaceConversion, 0) }},
		{"PixelStore alignment", func(b *Builder) error { return b.PixelStore(UnpackAlignment, 3) }},
		{"SetColorspaceConversion", func(b *Builder) error { return b.SetColorspaceConversion(ColorspaceConversion(2)) }},
		{"Uniform dtype", func(b *Builder) error { return b.Uniform("u", arraybuf.Of([]float64{1})) }},
		{"Uniform shape", func(b *Builder) error { return b.Uniform("u", arraybuf.Of([]float32{1, 2, 3, 4, 5})) }},
		{"Uniform name", func(b *Builder) error { return b.Uniform("", f32) }},
		{"UniformMatrix 1-D", func(b *Builder) error { return b.UniformMatrix("m", f32) }},
		{"UniformMatrix 5x5", func(b *Builder) error {
			return b.UniformMatrix("m", arraybuf.MustNew(make([]float32, 25), 5, 5))
		}},
		{"UniformMatrix dtype", func(b *Builder) error {
			return b.UniformMatrix("m", arraybuf.MustNew(make([]int32, 4), 2, 2))
		}},
		{"VertexAttrib dtype", func(b *Builder) error { return b.VertexAttrib(Loc(0), arraybuf.Of([]int32{1})) }},
		{"VertexAttribI length", func(b *Builder) error { return b.VertexAttribI(Loc(0), arraybuf.Of([]int32{1, 2})) }},
		{"BindAttribLocation", func(b *Builder) error { return b.BindAttribLocation(0, -1, "pos") }},
		{"CreateUniformBuffer", func(b *Builder) error {
			_, err := b.CreateUniformBuffer(0, "ViewBlock", BufferUsage(20))
			return err
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder()
			b.Viewport(0, 0, 1, 1)
			handles := b.Registry().Len()

			err := tt.call(b)
			if !errors.Is(err, ErrInvalidParameter) {
				t.Fatalf("err = %v, want ErrInvalidParameter", err)
			}
			var pe *ParameterError
			if !errors.As(err, &pe) || pe.Op == "" || pe.Arg == "" {
				t.Errorf("err = %#v, want a *ParameterError naming the argument", err)
			}
			if b.Len() != 1 || b.PayloadCount() != 0 {
				t.Errorf("batch changed: %d commands, %d payloads", b.Len(), b.PayloadCount())
			}
			if b.Registry().Len() != handles {
				t.Error("a handle was allocated by a failed call")
			}
		})
	}
}

func TestCommandEncoding(t *testing.T) {
	tests := []struct {
		name string
		call func(b *Builder) error
		want string
	}{
		{
			"blend func separate",
			func(b *Builder) error {
				return b.BlendFuncSeparate(SrcAlpha, OneMinusSrcAlpha, One, Zero)
			},
			`{"cmd":"blend_func_separate","src_rgb":"SRC_ALPHA","dst_rgb":"ONE_MINUS_SRC_ALPHA","src_alpha":"ONE","dst_alpha":"ZERO"}`,
		},
		{
			"blend equation",
			func(b *Builder) error { return b.BlendEquation(BlendMax) },
			`{"cmd":"blendEquation","mode":"MAX"}`,
		},
		{
			"bind buffer none",
			func(b *Builder) error { return b.BindBuffer(ElementArrayBuffer, None) },
			`{"cmd":"bindBuffer","target":"ELEMENT_ARRAY_BUFFER","buffer":-1}`,
		},
		{
			"draw elements",
			func(b *Builder) error { return b.DrawElements(Triangles, 6, IndexUnsignedShort, 4) },
			`{"cmd":"drawElements","mode":"TRIANGLES","count":6,"type":"UNSIGNED_SHORT","offset":4}`,
		},
		{
			"framebuffer texture",
			func(b *Builder) error {
				return b.FramebufferTexture2D(DrawFramebuffer, DepthAttachment, CubeMapNegativeZ, 3, 1)
			},
			`{"cmd":"framebufferTexture2D","target":"DRAW_FRAMEBUFFER","attachement":"DEPTH_ATTACHMENT","textarget":"TEXTURE_CUBE_MAP_NEGATIVE_Z","texture":3,"level":1}`,
		},
		{
			"draw buffers",
			func(b *Builder) error { return b.DrawBuffers(ColorDrawBuffer(0), DrawNone, ColorDrawBuffer(2)) },
			`{"cmd":"drawBuffers","buffers":["COLOR_ATTACHMENT0","NONE","COLOR_ATTACHMENT2"]}`,
		},
		{
			"enable",
			func(b *Builder) error { return b.Enable(DepthTest, Blend) },
			`{"cmd":"enable","blend":true,"cull_face":false,"depth_test":true,"dither":false,"polygon_offset_fill":false,"sample_alpha_to_coverage":false,"sample_coverage":false,"scissor_test":false,"stencil_test":false,"rasterizer_discard":false}`,
		},
		{
			"clear",
			func(b *Builder) error { return b.Clear(ColorBufferBit | DepthBufferBit) },
			`{"cmd":"clear","color":true,"depth":true,"stencil":false}`,
		},
		{
			"vertex attrib pointer by name",
			func(b *Builder) error {
				return b.VertexAttribPointer(AttribName("in_vert"), 3, AttribFloat, false, 24, 0)
			},
			`{"cmd":"vertexAttribPointer","index":"in_vert","size":3,"type":"FLOAT","normalized":false,"stride":24,"offset":0}`,
		},
		{
			"enable attrib by location",
			func(b *Builder) error { return b.EnableVertexAttribArray(Loc(2)) },
			`{"cmd":"enableVertexAttribArray","index":2}`,
		},
		{
			"tex parameter enum",
			func(b *Builder) error {
				return b.TexParameter(Texture2D, TextureWrapS, TexEnum(ClampToEdge))
			},
			`{"cmd":"texParameter_str","target":"TEXTURE_2D","pname":"TEXTURE_WRAP_S","param":"CLAMP_TO_EDGE"}`,
		},
		{
			"tex parameter compare func",
			func(b *Builder) error {
				return b.TexParameter(Texture2D, TextureCompareFunc, TexCompare(LEqual))
			},
			`{"cmd":"texParameter_str","target":"TEXTURE_2D","pname":"TEXTURE_COMPARE_FUNC","param":"LEQUAL"}`,
		},
		{
			"tex parameter int",
			func(b *Builder) error { return b.TexParameter(Texture3D, TextureMaxLevel, TexInt(4)) },
			`{"cmd":"texParameteri","target":"TEXTURE_3D","pname":"TEXTURE_MAX_LEVEL","param":4}`,
		},
		{
			"tex parameter float",
			func(b *Builder) error { return b.TexParameter(Texture2D, TextureMaxLOD, TexFloat(2.5)) },
			`{"cmd":"texParameterf","target":"TEXTURE_2D","pname":"TEXTURE_MAX_LOD","param":2.5}`,
		},
		{
			"pixel store",
			func(b *Builder) error { return b.PixelStore(UnpackFlipY, 1) },
			`{"cmd":"pixelStorei","pname":"UNPACK_FLIP_Y_WEBGL","param":1}`,
		},
		{
			"colorspace conversion",
			func(b *Builder) error { return b.SetColorspaceConversion(NoColorspaceConversion) },
			`{"cmd":"pixelStorei","pname":"UNPACK_COLORSPACE_CONVERSION_WEBGL","param":"NONE"}`,
		},
		{
			"active texture",
			func(b *Builder) error { return b.ActiveTexture(3) },
			`{"cmd":"activeTexture","texture":3}`,
		},
		{
			"bind buffer base",
			func(b *Builder) error { return b.BindBufferBase(UniformBuffer, 0, 7) },
			`{"cmd":"bindBufferBase","target":"UNIFORM_BUFFER","index":0,"buffer":7}`,
		},
		{
			"tex storage",
			func(b *Builder) error { return b.TexStorage2D(TextureCubeMap, 3, Depth24Stencil8, 64, 64) },
			`{"cmd":"texStorage2D","target":"TEXTURE_CUBE_MAP","levels":3,"internal_format":"DEPTH24_STENCIL8","width":64,"height":64}`,
		},
		{
			"tex image without data",
			func(b *Builder) error {
				return b.TexImage2D(Image2D, 0, RGBA16F, 8, 8, PixelRGBA, TypeHalfFloat, nil)
			},
			`{"cmd":"texImage2D","target":"TEXTURE_2D","level":0,"internal_format":"RGBA16F","width":8,"height":8,"border":0,"format":"RGBA","data_type":"HALF_FLOAT"}`,
		},
		{
			"buffer data without data",
			func(b *Builder) error { return b.BufferData(UniformBuffer, nil, DynamicDraw) },
			`{"cmd":"bufferData","target":"UNIFORM_BUFFER","usage":"DYNAMIC_DRAW","update_info":true}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder()
			if err := tt.call(b); err != nil {
				t.Fatal(err)
			}
			if b.Len() != 1 {
				t.Fatalf("appended %d commands, want 1", b.Len())
			}
			if got := encode(t, last(t, b)); got != tt.want {
				t.Errorf("encoded\n got  %s\n want %s", got, tt.want)
			}
		})
	}
}

func TestBufferDataPayload(t *testing.T) {
	b := NewBuilder()
	if err := b.BufferData(ArrayBuffer, arraybuf.Of([]float32{1, 2, 3, 4}), StaticDraw); err != nil {
		t.Fatal(err)
	}
	if b.Len() != 1 || b.PayloadCount() != 1 {
		t.Fatalf("got %d commands, %d payloads; want 1, 1", b.Len(), b.PayloadCount())
	}
	c := last(t, b).(wire.BufferData)
	if c.Buffer == nil || c.Buffer.Index != 0 || c.Buffer.DType != arraybuf.Float32 {
		t.Fatalf("buffer_metadata = %+v", c.Buffer)
	}
	if n := len(b.Buffers()[0]); n != 16 {
		t.Errorf("payload is %d bytes, want 16", n)
	}
	want := `{"cmd":"bufferData","target":"ARRAY_BUFFER","usage":"STATIC_DRAW","update_info":true,"buffer_metadata":{"shape":[4],"dtype":"float32","index":0}}`
	if got := encode(t, c); got != want {
		t.Errorf("encoded\n got  %s\n want %s", got, want)
	}
}

func TestPayloadIndicesFollowAppendOrder(t *testing.T) {
	b := NewBuilder()
	_ = b.Uniform("u_color", arraybuf.Of([]float32{1, 0, 0, 1}))
	_ = b.BufferData(ArrayBuffer, nil, StaticDraw)
	_ = b.BufferSubData(ArrayBuffer, 8, arraybuf.Of([]uint16{1, 2}))
	_ = b.VertexAttribI(Loc(1), arraybuf.Of([]uint32{1, 2, 3, 4}))

	var indices []int
	for _, c := range b.Commands() {
		if ref, ok := wire.PayloadOf(c); ok {
			indices = append(indices, ref.Index)
		}
	}
	if len(indices) != 3 || indices[0] != 0 || indices[1] != 1 || indices[2] != 2 {
		t.Errorf("payload indices = %v, want [0 1 2]", indices)
	}
	if err := b.Message(false, false).Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestUniformNormalizesInt64(t *testing.T) {
	b := NewBuilder()
	if err := b.Uniform("u_ids", arraybuf.MustNew([]int64{1, 2, 3, 4, 5, 6}, 2, 3)); err != nil {
		t.Fatal(err)
	}
	c := last(t, b).(wire.Uniform)
	if c.Buffer.DType != arraybuf.Int32 {
		t.Errorf("dtype = %v, want int32", c.Buffer.DType)
	}
	if len(c.Buffer.Shape) != 2 || c.Buffer.Shape[0] != 2 || c.Buffer.Shape[1] != 3 {
		t.Errorf("shape = %v, want [2 3]", c.Buffer.Shape)
	}
	if n := len(b.Buffers()[0]); n != 24 {
		t.Errorf("payload is %d bytes, want 24", n)
	}
}

func TestCreateUniformBuffer(t *testing.T) {
	b := NewBuilder()
	prog := b.CreateProgram()
	buf, err := b.CreateUniformBuffer(prog, "ViewBlock", DynamicDraw)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"cmd":"createUniformBuffer","buffer":1,"program":0,"block_name":"ViewBlock","usage":"DYNAMIC_DRAW"}`
	if got := encode(t, last(t, b)); got != want {
		t.Errorf("encoded\n got  %s\n want %s", got, want)
	}
	if buf != 1 {
		t.Errorf("handle = %d, want 1", buf)
	}
}

func TestDispatch(t *testing.T) {
	b, mem := newTestBuilder(t)
	b.Viewport(0, 0, 640, 480)
	_ = b.BufferData(ArrayBuffer, arraybuf.Of([]float32{1, 2}), StaticDraw)

	b.Dispatch(false, true)
	if b.Len() != 0 || b.PayloadCount() != 0 {
		t.Fatal("batch not cleared after dispatch")
	}

	b.Dispatch(true, false)

	msgs := mem.Messages()
	if len(msgs) != 2 {
		t.Fatalf("sent %d messages, want 2", len(msgs))
	}
	first := msgs[0]
	if len(first.Commands) != 2 || len(first.Buffers) != 1 || first.OnlyOnce || !first.Clear {
		t.Errorf("first message = %d commands, %d buffers, only_once=%v clear=%v",
			len(first.Commands), len(first.Buffers), first.OnlyOnce, first.Clear)
	}
	second := msgs[1]
	if len(second.Commands) != 0 || len(second.Buffers) != 0 || !second.OnlyOnce {
		t.Errorf("second message = %+v, want an empty one-shot message", second)
	}
}

func TestDispatchTransportFailureClearsBatch(t *testing.T) {
	b, mem := newTestBuilder(t)
	mem.FailWith(errors.New("link down"))

	b.Viewport(0, 0, 1, 1)
	b.Dispatch(false, false)

	if b.Len() != 0 {
		t.Error("batch not cleared after a failed dispatch")
	}
	if mem.Len() != 0 {
		t.Error("failed send was recorded")
	}
}

func TestDiscard(t *testing.T) {
	b, mem := newTestBuilder(t)
	_ = b.Uniform("u", arraybuf.Of([]float32{1}))
	b.Discard()
	if b.Len() != 0 || b.PayloadCount() != 0 {
		t.Error("Discard did not empty the batch")
	}
	if mem.Len() != 0 {
		t.Error("Discard sent a message")
	}
}

func TestCommandsReturnsCopy(t *testing.T) {
	b := NewBuilder()
	b.Viewport(0, 0, 1, 1)
	cmds := b.Commands()
	cmds[0] = wire.DepthMask{}
	if _, ok := b.Commands()[0].(wire.Viewport); !ok {
		t.Error("Commands() exposed internal storage")
	}
}

func TestVertexAttribConstants(t *testing.T) {
	b := NewBuilder()
	if err := b.VertexAttrib(AttribName("in_color"), arraybuf.Of([]float32{1, 0.5, 0})); err != nil {
		t.Fatal(err)
	}
	want := `{"cmd":"vertexAttrib[1234]fv","index":"in_color","buffer_metadata":{"shape":[3],"dtype":"float32","index":0}}`
	if got := encode(t, last(t, b)); got != want {
		t.Errorf("encoded\n got  %s\n want %s", got, want)
	}
	if err := b.VertexAttribI(Loc(4), arraybuf.Of([]int32{1, 2, 3, 4})); err != nil {
		t.Fatal(err)
	}
	if c := last(t, b).(wire.VertexAttribI); c.Buffer.Index != 1 {
		t.Errorf("second payload index = %d, want 1", c.Buffer.Index)
	}
}

func TestUniformMatrixShape(t *testing.T) {
	b := NewBuilder()
	// mat3x4 array of two
	if err := b.UniformMatrix("u_bones", arraybuf.MustNew(make([]float32, 24), 2, 3, 4)); err != nil {
		t.Fatal(err)
	}
	c := last(t, b).(wire.UniformMatrix)
	if len(c.Buffer.Shape) != 3 {
		t.Errorf("shape = %v", c.Buffer.Shape)
	}
}

func BenchmarkBufferData(b *testing.B) {
	data := arraybuf.Of(make([]float32, 4096))
	bld := NewBuilder()
	b.ReportAllocs()
	for b.Loop() {
		_ = bld.BufferData(ArrayBuffer, data, StaticDraw)
		bld.Discard()
	}
}
