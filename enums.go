package glbatch

import "strconv"

// Every enumeration below is closed: its values are the constants declared
// here, and String returns the WebGL constant name the executor expects on
// the wire. A value converted from an out-of-range integer is reported by
// Valid and rejected by every Builder method with ErrInvalidParameter.
// Parse functions map wire names back to values for configuration files.

// enumString returns names[v], or "Type(v)" for values outside the table.
func enumString(typ string, names []string, v int) string {
	if v >= 0 && v < len(names) && names[v] != "" {
		return names[v]
	}
	return typ + "(" + strconv.Itoa(v) + ")"
}

// parseEnum returns the value whose wire name is s.
func parseEnum[T ~uint8](typ string, names []string, s string) (T, error) {
	for i, n := range names {
		if n != "" && n == s {
			return T(i), nil
		}
	}
	return 0, invalid("Parse"+typ, typ, strconv.Quote(s))
}

// enumValue is satisfied by every enumeration in this package.
type enumValue interface {
	Valid() bool
	String() string
}

// arg pairs an argument name with its value for validate.
type arg struct {
	name string
	v    enumValue
}

// validate returns a ParameterError for the first invalid argument.
func validate(op string, args ...arg) error {
	for _, a := range args {
		if !a.v.Valid() {
			return invalid(op, a.name, a.v.String())
		}
	}
	return nil
}

// --------------------------------------------------------------------------
// Buffers
// --------------------------------------------------------------------------

// BufferTarget is a buffer binding point.
type BufferTarget uint8

const (
	ArrayBuffer BufferTarget = iota
	ElementArrayBuffer
	CopyReadBuffer
	CopyWriteBuffer
	TransformFeedbackBuffer
	UniformBuffer
	PixelPackBuffer
	PixelUnpackBuffer
)

var bufferTargetNames = [...]string{
	ArrayBuffer:             "ARRAY_BUFFER",
	ElementArrayBuffer:      "ELEMENT_ARRAY_BUFFER",
	CopyReadBuffer:          "COPY_READ_BUFFER",
	CopyWriteBuffer:         "COPY_WRITE_BUFFER",
	TransformFeedbackBuffer: "TRANSFORM_FEEDBACK_BUFFER",
	UniformBuffer:           "UNIFORM_BUFFER",
	PixelPackBuffer:         "PIXEL_PACK_BUFFER",
	PixelUnpackBuffer:       "PIXEL_UNPACK_BUFFER",
}

func (t BufferTarget) String() string {
	return enumString("BufferTarget", bufferTargetNames[:], int(t))
}
func (t BufferTarget) Valid() bool { return int(t) < len(bufferTargetNames) }

// ParseBufferTarget returns the target named s, e.g. "ARRAY_BUFFER".
func ParseBufferTarget(s string) (BufferTarget, error) {
	return parseEnum[BufferTarget]("BufferTarget", bufferTargetNames[:], s)
}

// BufferUsage is the usage hint for a buffer's data store.
type BufferUsage uint8

const (
	StaticDraw BufferUsage = iota
	DynamicDraw
	StreamDraw
	StaticRead
	DynamicRead
	StreamRead
	StaticCopy
	DynamicCopy
	StreamCopy
)

var bufferUsageNames = [...]string{
	StaticDraw:  "STATIC_DRAW",
	DynamicDraw: "DYNAMIC_DRAW",
	StreamDraw:  "STREAM_DRAW",
	StaticRead:  "STATIC_READ",
	DynamicRead: "DYNAMIC_READ",
	StreamRead:  "STREAM_READ",
	StaticCopy:  "STATIC_COPY",
	DynamicCopy: "DYNAMIC_COPY",
	StreamCopy:  "STREAM_COPY",
}

func (u BufferUsage) String() string {
	return enumString("BufferUsage", bufferUsageNames[:], int(u))
}
func (u BufferUsage) Valid() bool { return int(u) < len(bufferUsageNames) }

// ParseBufferUsage returns the usage named s, e.g. "STATIC_DRAW".
func ParseBufferUsage(s string) (BufferUsage, error) {
	return parseEnum[BufferUsage]("BufferUsage", bufferUsageNames[:], s)
}

// --------------------------------------------------------------------------
// Blending
// --------------------------------------------------------------------------

// BlendFactor is a source or destination blend factor.
type BlendFactor uint8

const (
	Zero BlendFactor = iota
	One
	SrcColor
	OneMinusSrcColor
	DstColor
	OneMinusDstColor
	SrcAlpha
	OneMinusSrcAlpha
	DstAlpha
	OneMinusDstAlpha
	ConstantColor
	OneMinusConstantColor
	ConstantAlpha
	OneMinusConstantAlpha
	SrcAlphaSaturate
)

var blendFactorNames = [...]string{
	Zero:                  "ZERO",
	One:                   "ONE",
	SrcColor:              "SRC_COLOR",
	OneMinusSrcColor:      "ONE_MINUS_SRC_COLOR",
	DstColor:              "DST_COLOR",
	OneMinusDstColor:      "ONE_MINUS_DST_COLOR",
	SrcAlpha:              "SRC_ALPHA",
	OneMinusSrcAlpha:      "ONE_MINUS_SRC_ALPHA",
	DstAlpha:              "DST_ALPHA",
	OneMinusDstAlpha:      "ONE_MINUS_DST_ALPHA",
	ConstantColor:         "CONSTANT_COLOR",
	OneMinusConstantColor: "ONE_MINUS_CONSTANT_COLOR",
	ConstantAlpha:         "CONSTANT_ALPHA",
	OneMinusConstantAlpha: "ONE_MINUS_CONSTANT_ALPHA",
	SrcAlphaSaturate:      "SRC_ALPHA_SATURATE",
}

func (f BlendFactor) String() string {
	return enumString("BlendFactor", blendFactorNames[:], int(f))
}
func (f BlendFactor) Valid() bool { return int(f) < len(blendFactorNames) }

// ParseBlendFactor returns the factor named s, e.g. "ONE_MINUS_SRC_ALPHA".
func ParseBlendFactor(s string) (BlendFactor, error) {
	return parseEnum[BlendFactor]("BlendFactor", blendFactorNames[:], s)
}

// BlendEquation combines source and destination colors.
type BlendEquation uint8

const (
	FuncAdd BlendEquation = iota
	FuncSubtract
	FuncReverseSubtract
	BlendMin
	BlendMax
)

var blendEquationNames = [...]string{
	FuncAdd:             "FUNC_ADD",
	FuncSubtract:        "FUNC_SUBTRACT",
	FuncReverseSubtract: "FUNC_REVERSE_SUBTRACT",
	BlendMin:            "MIN",
	BlendMax:            "MAX",
}

func (e BlendEquation) String() string {
	return enumString("BlendEquation", blendEquationNames[:], int(e))
}
func (e BlendEquation) Valid() bool { return int(e) < len(blendEquationNames) }

// ParseBlendEquation returns the equation named s, e.g. "FUNC_ADD".
func ParseBlendEquation(s string) (BlendEquation, error) {
	return parseEnum[BlendEquation]("BlendEquation", blendEquationNames[:], s)
}

// --------------------------------------------------------------------------
// Render state
// --------------------------------------------------------------------------

// Capability is a server-side capability toggled by Enable and Disable.
type Capability uint8

const (
	Blend Capability = iota
	CullFace
	DepthTest
	Dither
	PolygonOffsetFill
	SampleAlphaToCoverage
	SampleCoverage
	ScissorTest
	StencilTest
	RasterizerDiscard
)

var capabilityNames = [...]string{
	Blend:                 "BLEND",
	CullFace:              "CULL_FACE",
	DepthTest:             "DEPTH_TEST",
	Dither:                "DITHER",
	PolygonOffsetFill:     "POLYGON_OFFSET_FILL",
	SampleAlphaToCoverage: "SAMPLE_ALPHA_TO_COVERAGE",
	SampleCoverage:        "SAMPLE_COVERAGE",
	ScissorTest:           "SCISSOR_TEST",
	StencilTest:           "STENCIL_TEST",
	RasterizerDiscard:     "RASTERIZER_DISCARD",
}

func (c Capability) String() string {
	return enumString("Capability", capabilityNames[:], int(c))
}
func (c Capability) Valid() bool { return int(c) < len(capabilityNames) }

// ParseCapability returns the capability named s, e.g. "DEPTH_TEST".
func ParseCapability(s string) (Capability, error) {
	return parseEnum[Capability]("Capability", capabilityNames[:], s)
}

// ClearBits selects the buffers cleared by Clear.
type ClearBits uint8

const (
	ColorBufferBit ClearBits = 1 << iota
	DepthBufferBit
	StencilBufferBit
)

const allClearBits = ColorBufferBit | DepthBufferBit | StencilBufferBit

func (b ClearBits) Valid() bool { return b&^allClearBits == 0 }

func (b ClearBits) String() string {
	if !b.Valid() {
		return "ClearBits(" + strconv.Itoa(int(b)) + ")"
	}
	s := ""
	for _, p := range []struct {
		bit  ClearBits
		name string
	}{
		{ColorBufferBit, "COLOR_BUFFER_BIT"},
		{DepthBufferBit, "DEPTH_BUFFER_BIT"},
		{StencilBufferBit, "STENCIL_BUFFER_BIT"},
	} {
		if b&p.bit != 0 {
			if s != "" {
				s += "|"
			}
			s += p.name
		}
	}
	if s == "" {
		return "0"
	}
	return s
}

// FrontFaceMode is the winding order of front-facing polygons.
type FrontFaceMode uint8

const (
	CCW FrontFaceMode = iota
	CW
)

var frontFaceNames = [...]string{CCW: "CCW", CW: "CW"}

func (m FrontFaceMode) String() string {
	return enumString("FrontFaceMode", frontFaceNames[:], int(m))
}
func (m FrontFaceMode) Valid() bool { return int(m) < len(frontFaceNames) }

// ParseFrontFaceMode returns the mode named s, "CW" or "CCW".
func ParseFrontFaceMode(s string) (FrontFaceMode, error) {
	return parseEnum[FrontFaceMode]("FrontFaceMode", frontFaceNames[:], s)
}

// CullFaceMode selects the faces discarded when culling is enabled.
type CullFaceMode uint8

const (
	CullBack CullFaceMode = iota
	CullFront
	CullFrontAndBack
)

var cullFaceNames = [...]string{
	CullBack:         "BACK",
	CullFront:        "FRONT",
	CullFrontAndBack: "FRONT_AND_BACK",
}

func (m CullFaceMode) String() string {
	return enumString("CullFaceMode", cullFaceNames[:], int(m))
}
func (m CullFaceMode) Valid() bool { return int(m) < len(cullFaceNames) }

// ParseCullFaceMode returns the mode named s, e.g. "BACK".
func ParseCullFaceMode(s string) (CullFaceMode, error) {
	return parseEnum[CullFaceMode]("CullFaceMode", cullFaceNames[:], s)
}

// CompareFunc is a depth or texture comparison function.
type CompareFunc uint8

const (
	Never CompareFunc = iota
	Less
	Equal
	LEqual
	Greater
	NotEqual
	GEqual
	Always
)

var compareFuncNames = [...]string{
	Never:    "NEVER",
	Less:     "LESS",
	Equal:    "EQUAL",
	LEqual:   "LEQUAL",
	Greater:  "GREATER",
	NotEqual: "NOTEQUAL",
	GEqual:   "GEQUAL",
	Always:   "ALWAYS",
}

func (f CompareFunc) String() string {
	return enumString("CompareFunc", compareFuncNames[:], int(f))
}
func (f CompareFunc) Valid() bool { return int(f) < len(compareFuncNames) }

// ParseCompareFunc returns the function named s, e.g. "LEQUAL".
func ParseCompareFunc(s string) (CompareFunc, error) {
	return parseEnum[CompareFunc]("CompareFunc", compareFuncNames[:], s)
}

// --------------------------------------------------------------------------
// Shaders, attributes and draws
// --------------------------------------------------------------------------

// ShaderType is the pipeline stage of a shader object.
type ShaderType uint8

const (
	VertexShader ShaderType = iota
	FragmentShader
)

var shaderTypeNames = [...]string{
	VertexShader:   "VERTEX_SHADER",
	FragmentShader: "FRAGMENT_SHADER",
}

func (t ShaderType) String() string {
	return enumString("ShaderType", shaderTypeNames[:], int(t))
}
func (t ShaderType) Valid() bool { return int(t) < len(shaderTypeNames) }

// ParseShaderType returns the shader type named s.
func ParseShaderType(s string) (ShaderType, error) {
	return parseEnum[ShaderType]("ShaderType", shaderTypeNames[:], s)
}

// AttribType is the element type of a float vertex attribute pointer.
// Integer types are converted to float by the GPU, optionally normalized.
type AttribType uint8

const (
	AttribByte AttribType = iota
	AttribShort
	AttribUnsignedByte
	AttribUnsignedShort
	AttribFloat
	AttribHalfFloat
	AttribInt
	AttribUnsignedInt
)

var attribTypeNames = [...]string{
	AttribByte:          "BYTE",
	AttribShort:         "SHORT",
	AttribUnsignedByte:  "UNSIGNED_BYTE",
	AttribUnsignedShort: "UNSIGNED_SHORT",
	AttribFloat:         "FLOAT",
	AttribHalfFloat:     "HALF_FLOAT",
	AttribInt:           "INT",
	AttribUnsignedInt:   "UNSIGNED_INT",
}

func (t AttribType) String() string {
	return enumString("AttribType", attribTypeNames[:], int(t))
}
func (t AttribType) Valid() bool { return int(t) < len(attribTypeNames) }

// ParseAttribType returns the attribute type named s, e.g. "FLOAT".
func ParseAttribType(s string) (AttribType, error) {
	return parseEnum[AttribType]("AttribType", attribTypeNames[:], s)
}

// IntAttribType is the element type of an integer vertex attribute
// pointer, read by the shader as an integer without conversion.
type IntAttribType uint8

const (
	IAttribByte IntAttribType = iota
	IAttribUnsignedByte
	IAttribShort
	IAttribUnsignedShort
	IAttribInt
	IAttribUnsignedInt
)

var intAttribTypeNames = [...]string{
	IAttribByte:          "BYTE",
	IAttribUnsignedByte:  "UNSIGNED_BYTE",
	IAttribShort:         "SHORT",
	IAttribUnsignedShort: "UNSIGNED_SHORT",
	IAttribInt:           "INT",
	IAttribUnsignedInt:   "UNSIGNED_INT",
}

func (t IntAttribType) String() string {
	return enumString("IntAttribType", intAttribTypeNames[:], int(t))
}
func (t IntAttribType) Valid() bool { return int(t) < len(intAttribTypeNames) }

// ParseIntAttribType returns the integer attribute type named s.
func ParseIntAttribType(s string) (IntAttribType, error) {
	return parseEnum[IntAttribType]("IntAttribType", intAttribTypeNames[:], s)
}

// DrawMode is the primitive assembled by draw calls.
type DrawMode uint8

const (
	Points DrawMode = iota
	LineStrip
	LineLoop
	Lines
	TriangleStrip
	TriangleFan
	Triangles
)

var drawModeNames = [...]string{
	Points:        "POINTS",
	LineStrip:     "LINE_STRIP",
	LineLoop:      "LINE_LOOP",
	Lines:         "LINES",
	TriangleStrip: "TRIANGLE_STRIP",
	TriangleFan:   "TRIANGLE_FAN",
	Triangles:     "TRIANGLES",
}

func (m DrawMode) String() string {
	return enumString("DrawMode", drawModeNames[:], int(m))
}
func (m DrawMode) Valid() bool { return int(m) < len(drawModeNames) }

// ParseDrawMode returns the mode named s, e.g. "TRIANGLES".
func ParseDrawMode(s string) (DrawMode, error) {
	return parseEnum[DrawMode]("DrawMode", drawModeNames[:], s)
}

// IndexType is the element type of an index buffer.
type IndexType uint8

const (
	IndexUnsignedByte IndexType = iota
	IndexUnsignedShort
	IndexUnsignedInt
)

var indexTypeNames = [...]string{
	IndexUnsignedByte:  "UNSIGNED_BYTE",
	IndexUnsignedShort: "UNSIGNED_SHORT",
	IndexUnsignedInt:   "UNSIGNED_INT",
}

func (t IndexType) String() string {
	return enumString("IndexType", indexTypeNames[:], int(t))
}
func (t IndexType) Valid() bool { return int(t) < len(indexTypeNames) }

// Size returns the index size in bytes.
func (t IndexType) Size() int {
	switch t {
	case IndexUnsignedByte:
		return 1
	case IndexUnsignedShort:
		return 2
	case IndexUnsignedInt:
		return 4
	default:
		return 0
	}
}

// ParseIndexType returns the index type named s, e.g. "UNSIGNED_SHORT".
func ParseIndexType(s string) (IndexType, error) {
	return parseEnum[IndexType]("IndexType", indexTypeNames[:], s)
}

// --------------------------------------------------------------------------
// Framebuffers
// --------------------------------------------------------------------------

// FramebufferTarget is a framebuffer binding point.
type FramebufferTarget uint8

const (
	Framebuffer FramebufferTarget = iota
	DrawFramebuffer
	ReadFramebuffer
)

var framebufferTargetNames = [...]string{
	Framebuffer:     "FRAMEBUFFER",
	DrawFramebuffer: "DRAW_FRAMEBUFFER",
	ReadFramebuffer: "READ_FRAMEBUFFER",
}

func (t FramebufferTarget) String() string {
	return enumString("FramebufferTarget", framebufferTargetNames[:], int(t))
}
func (t FramebufferTarget) Valid() bool { return int(t) < len(framebufferTargetNames) }

// ParseFramebufferTarget returns the target named s.
func ParseFramebufferTarget(s string) (FramebufferTarget, error) {
	return parseEnum[FramebufferTarget]("FramebufferTarget", framebufferTargetNames[:], s)
}

// Attachment is a framebuffer attachment point.
type Attachment uint8

const (
	ColorAttachment0 Attachment = iota
	ColorAttachment1
	ColorAttachment2
	ColorAttachment3
	ColorAttachment4
	ColorAttachment5
	ColorAttachment6
	ColorAttachment7
	ColorAttachment8
	ColorAttachment9
	ColorAttachment10
	ColorAttachment11
	ColorAttachment12
	ColorAttachment13
	ColorAttachment14
	ColorAttachment15
	DepthAttachment
	StencilAttachment
	DepthStencilAttachment
)

var attachmentNames = [...]string{
	ColorAttachment0:       "COLOR_ATTACHMENT0",
	ColorAttachment1:       "COLOR_ATTACHMENT1",
	ColorAttachment2:       "COLOR_ATTACHMENT2",
	ColorAttachment3:       "COLOR_ATTACHMENT3",
	ColorAttachment4:       "COLOR_ATTACHMENT4",
	ColorAttachment5:       "COLOR_ATTACHMENT5",
	ColorAttachment6:       "COLOR_ATTACHMENT6",
	ColorAttachment7:       "COLOR_ATTACHMENT7",
	ColorAttachment8:       "COLOR_ATTACHMENT8",
	ColorAttachment9:       "COLOR_ATTACHMENT9",
	ColorAttachment10:      "COLOR_ATTACHMENT10",
	ColorAttachment11:      "COLOR_ATTACHMENT11",
	ColorAttachment12:      "COLOR_ATTACHMENT12",
	ColorAttachment13:      "COLOR_ATTACHMENT13",
	ColorAttachment14:      "COLOR_ATTACHMENT14",
	ColorAttachment15:      "COLOR_ATTACHMENT15",
	DepthAttachment:        "DEPTH_ATTACHMENT",
	StencilAttachment:      "STENCIL_ATTACHMENT",
	DepthStencilAttachment: "DEPTH_STENCIL_ATTACHMENT",
}

func (a Attachment) String() string {
	return enumString("Attachment", attachmentNames[:], int(a))
}
func (a Attachment) Valid() bool { return int(a) < len(attachmentNames) }

// IsColor reports whether a is one of the sixteen color attachments.
func (a Attachment) IsColor() bool { return a <= ColorAttachment15 }

// ParseAttachment returns the attachment named s, e.g. "COLOR_ATTACHMENT0".
func ParseAttachment(s string) (Attachment, error) {
	return parseEnum[Attachment]("Attachment", attachmentNames[:], s)
}

// DrawBuffer is an entry of the DrawBuffers list: NONE, BACK, or a color
// attachment. Use ColorDrawBuffer for the latter.
type DrawBuffer uint8

const (
	DrawNone DrawBuffer = iota
	DrawBack
	drawColor0
)

// ColorDrawBuffer returns the draw buffer for COLOR_ATTACHMENTi.
// Out-of-range indices yield an invalid value.
func ColorDrawBuffer(i int) DrawBuffer {
	if i < 0 || i > 15 {
		return DrawBuffer(255)
	}
	return drawColor0 + DrawBuffer(i)
}

func (d DrawBuffer) String() string {
	switch {
	case d == DrawNone:
		return "NONE"
	case d == DrawBack:
		return "BACK"
	case d.Valid():
		return Attachment(d - drawColor0).String()
	default:
		return "DrawBuffer(" + strconv.Itoa(int(d)) + ")"
	}
}

func (d DrawBuffer) Valid() bool { return d < drawColor0+16 }

// ParseDrawBuffer returns the draw buffer named s.
func ParseDrawBuffer(s string) (DrawBuffer, error) {
	switch s {
	case "NONE":
		return DrawNone, nil
	case "BACK":
		return DrawBack, nil
	}
	a, err := ParseAttachment(s)
	if err != nil || !a.IsColor() {
		return 0, invalid("ParseDrawBuffer", "DrawBuffer", strconv.Quote(s))
	}
	return drawColor0 + DrawBuffer(a), nil
}
