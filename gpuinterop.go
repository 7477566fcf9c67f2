package glbatch

import (
	"math"

	"github.com/gogpu/gputypes"
)

// Conversions from the WebGPU state vocabulary of gputypes, so pipeline
// descriptions written for gogpu renderers can be replayed through a
// WebGL executor. A false ok means the value has no WebGL 2 equivalent.

// BlendFactorFromGPU converts a WebGPU blend factor.
func BlendFactorFromGPU(f gputypes.BlendFactor) (BlendFactor, bool) {
	switch f {
	case gputypes.BlendFactorZero:
		return Zero, true
	case gputypes.BlendFactorOne:
		return One, true
	case gputypes.BlendFactorSrc:
		return SrcColor, true
	case gputypes.BlendFactorOneMinusSrc:
		return OneMinusSrcColor, true
	case gputypes.BlendFactorSrcAlpha:
		return SrcAlpha, true
	case gputypes.BlendFactorOneMinusSrcAlpha:
		return OneMinusSrcAlpha, true
	case gputypes.BlendFactorDst:
		return DstColor, true
	case gputypes.BlendFactorOneMinusDst:
		return OneMinusDstColor, true
	case gputypes.BlendFactorDstAlpha:
		return DstAlpha, true
	case gputypes.BlendFactorOneMinusDstAlpha:
		return OneMinusDstAlpha, true
	case gputypes.BlendFactorSrcAlphaSaturated:
		return SrcAlphaSaturate, true
	case gputypes.BlendFactorConstant:
		return ConstantColor, true
	case gputypes.BlendFactorOneMinusConstant:
		return OneMinusConstantColor, true
	default:
		return 0, false
	}
}

// BlendEquationFromGPU converts a WebGPU blend operation.
func BlendEquationFromGPU(op gputypes.BlendOperation) (BlendEquation, bool) {
	switch op {
	case gputypes.BlendOperationAdd:
		return FuncAdd, true
	case gputypes.BlendOperationSubtract:
		return FuncSubtract, true
	case gputypes.BlendOperationReverseSubtract:
		return FuncReverseSubtract, true
	case gputypes.BlendOperationMin:
		return BlendMin, true
	case gputypes.BlendOperationMax:
		return BlendMax, true
	default:
		return 0, false
	}
}

// DrawModeFromGPU converts a WebGPU primitive topology.
func DrawModeFromGPU(t gputypes.PrimitiveTopology) (DrawMode, bool) {
	switch t {
	case gputypes.PrimitiveTopologyPointList:
		return Points, true
	case gputypes.PrimitiveTopologyLineList:
		return Lines, true
	case gputypes.PrimitiveTopologyLineStrip:
		return LineStrip, true
	case gputypes.PrimitiveTopologyTriangleList:
		return Triangles, true
	case gputypes.PrimitiveTopologyTriangleStrip:
		return TriangleStrip, true
	default:
		return 0, false
	}
}

// IndexTypeFromGPU converts a WebGPU index format.
func IndexTypeFromGPU(f gputypes.IndexFormat) (IndexType, bool) {
	switch f {
	case gputypes.IndexFormatUint16:
		return IndexUnsignedShort, true
	case gputypes.IndexFormatUint32:
		return IndexUnsignedInt, true
	default:
		return 0, false
	}
}

// CompareFuncFromGPU converts a WebGPU compare function.
func CompareFuncFromGPU(f gputypes.CompareFunction) (CompareFunc, bool) {
	switch f {
	case gputypes.CompareFunctionNever:
		return Never, true
	case gputypes.CompareFunctionLess:
		return Less, true
	case gputypes.CompareFunctionEqual:
		return Equal, true
	case gputypes.CompareFunctionLessEqual:
		return LEqual, true
	case gputypes.CompareFunctionGreater:
		return Greater, true
	case gputypes.CompareFunctionNotEqual:
		return NotEqual, true
	case gputypes.CompareFunctionGreaterEqual:
		return GEqual, true
	case gputypes.CompareFunctionAlways:
		return Always, true
	default:
		return 0, false
	}
}

// FrontFaceFromGPU converts a WebGPU front face.
func FrontFaceFromGPU(f gputypes.FrontFace) (FrontFaceMode, bool) {
	switch f {
	case gputypes.FrontFaceCCW:
		return CCW, true
	case gputypes.FrontFaceCW:
		return CW, true
	default:
		return 0, false
	}
}

// CullFaceFromGPU converts a WebGPU cull mode. cull is false for
// CullModeNone, which maps to disabling CULL_FACE.
func CullFaceFromGPU(m gputypes.CullMode) (mode CullFaceMode, cull, ok bool) {
	switch m {
	case gputypes.CullModeNone:
		return 0, false, true
	case gputypes.CullModeFront:
		return CullFront, true, true
	case gputypes.CullModeBack:
		return CullBack, true, true
	default:
		return 0, false, false
	}
}

// VertexFormat describes how a WebGPU vertex format is read in WebGL.
type VertexFormat struct {
	Size       int // components
	Type       AttribType
	Normalized bool
	Integer    bool // bound with vertexAttribIPointer
}

// IntType returns the integer pointer type of an integer format.
func (f VertexFormat) IntType() IntAttribType {
	switch f.Type {
	case AttribByte:
		return IAttribByte
	case AttribUnsignedByte:
		return IAttribUnsignedByte
	case AttribShort:
		return IAttribShort
	case AttribUnsignedShort:
		return IAttribUnsignedShort
	case AttribInt:
		return IAttribInt
	default:
		return IAttribUnsignedInt
	}
}

var vertexFormats = map[gputypes.VertexFormat]VertexFormat{
	gputypes.VertexFormatUint8x2:   {2, AttribUnsignedByte, false, true},
	gputypes.VertexFormatUint8x4:   {4, AttribUnsignedByte, false, true},
	gputypes.VertexFormatSint8x2:   {2, AttribByte, false, true},
	gputypes.VertexFormatSint8x4:   {4, AttribByte, false, true},
	gputypes.VertexFormatUnorm8x2:  {2, AttribUnsignedByte, true, false},
	gputypes.VertexFormatUnorm8x4:  {4, AttribUnsignedByte, true, false},
	gputypes.VertexFormatSnorm8x2:  {2, AttribByte, true, false},
	gputypes.VertexFormatSnorm8x4:  {4, AttribByte, true, false},
	gputypes.VertexFormatUint16x2:  {2, AttribUnsignedShort, false, true},
	gputypes.VertexFormatUint16x4:  {4, AttribUnsignedShort, false, true},
	gputypes.VertexFormatSint16x2:  {2, AttribShort, false, true},
	gputypes.VertexFormatSint16x4:  {4, AttribShort, false, true},
	gputypes.VertexFormatUnorm16x2: {2, AttribUnsignedShort, true, false},
	gputypes.VertexFormatUnorm16x4: {4, AttribUnsignedShort, true, false},
	gputypes.VertexFormatSnorm16x2: {2, AttribShort, true, false},
	gputypes.VertexFormatSnorm16x4: {4, AttribShort, true, false},
	gputypes.VertexFormatFloat16x2: {2, AttribHalfFloat, false, false},
	gputypes.VertexFormatFloat16x4: {4, AttribHalfFloat, false, false},
	gputypes.VertexFormatFloat32:   {1, AttribFloat, false, false},
	gputypes.VertexFormatFloat32x2: {2, AttribFloat, false, false},
	gputypes.VertexFormatFloat32x3: {3, AttribFloat, false, false},
	gputypes.VertexFormatFloat32x4: {4, AttribFloat, false, false},
	gputypes.VertexFormatUint32:    {1, AttribUnsignedInt, false, true},
	gputypes.VertexFormatUint32x2:  {2, AttribUnsignedInt, false, true},
	gputypes.VertexFormatUint32x3:  {3, AttribUnsignedInt, false, true},
	gputypes.VertexFormatUint32x4:  {4, AttribUnsignedInt, false, true},
	gputypes.VertexFormatSint32:    {1, AttribInt, false, true},
	gputypes.VertexFormatSint32x2:  {2, AttribInt, false, true},
	gputypes.VertexFormatSint32x3:  {3, AttribInt, false, true},
	gputypes.VertexFormatSint32x4:  {4, AttribInt, false, true},
}

// VertexFormatFromGPU converts a WebGPU vertex format. Packed formats
// have no equivalent.
func VertexFormatFromGPU(f gputypes.VertexFormat) (VertexFormat, bool) {
	vf, ok := vertexFormats[f]
	return vf, ok
}

// ApplyBlendState configures blending from a WebGPU blend state. A nil
// state disables BLEND; otherwise BLEND is enabled and both components are
// set with BlendFuncSeparate and BlendEquationSeparate.
func (b *Builder) ApplyBlendState(s *gputypes.BlendState) error {
	const op = "ApplyBlendState"
	if s == nil {
		return b.Disable(Blend)
	}
	var (
		f  [4]BlendFactor
		eq [2]BlendEquation
	)
	for i, gf := range []gputypes.BlendFactor{
		s.Color.SrcFactor, s.Color.DstFactor, s.Alpha.SrcFactor, s.Alpha.DstFactor,
	} {
		v, ok := BlendFactorFromGPU(gf)
		if !ok {
			return invalid(op, "factor", gf)
		}
		f[i] = v
	}
	for i, gop := range []gputypes.BlendOperation{s.Color.Operation, s.Alpha.Operation} {
		v, ok := BlendEquationFromGPU(gop)
		if !ok {
			return invalid(op, "operation", gop)
		}
		eq[i] = v
	}
	_ = b.Enable(Blend)
	_ = b.BlendFuncSeparate(f[0], f[1], f[2], f[3])
	_ = b.BlendEquationSeparate(eq[0], eq[1])
	return nil
}

// ApplyPrimitiveState sets culling and winding from a WebGPU primitive
// state and returns the draw mode matching its topology.
func (b *Builder) ApplyPrimitiveState(s gputypes.PrimitiveState) (DrawMode, error) {
	const op = "ApplyPrimitiveState"
	mode, ok := DrawModeFromGPU(s.Topology)
	if !ok {
		return 0, invalid(op, "topology", s.Topology)
	}
	front, ok := FrontFaceFromGPU(s.FrontFace)
	if !ok {
		return 0, invalid(op, "frontFace", s.FrontFace)
	}
	cullMode, cull, ok := CullFaceFromGPU(s.CullMode)
	if !ok {
		return 0, invalid(op, "cullMode", s.CullMode)
	}
	_ = b.FrontFace(front)
	if !cull {
		_ = b.Disable(CullFace)
		return mode, nil
	}
	_ = b.Enable(CullFace)
	_ = b.CullFace(cullMode)
	return mode, nil
}

// ApplyDepthState configures depth testing from a WebGPU depth-stencil
// state. A nil state disables DEPTH_TEST.
func (b *Builder) ApplyDepthState(s *gputypes.DepthStencilState) error {
	if s == nil {
		return b.Disable(DepthTest)
	}
	f, ok := CompareFuncFromGPU(s.DepthCompare)
	if !ok {
		return invalid("ApplyDepthState", "depthCompare", s.DepthCompare)
	}
	_ = b.Enable(DepthTest)
	_ = b.DepthFunc(f)
	b.DepthMask(s.DepthWriteEnabled)
	return nil
}

// BindVertexBufferLayout binds buf to ARRAY_BUFFER and points the
// attributes of a WebGPU vertex buffer layout at it by shader location.
// Per-instance layouts are rejected because the command set has no
// attribute divisor.
func (b *Builder) BindVertexBufferLayout(buf Handle, l gputypes.VertexBufferLayout) error {
	const op = "BindVertexBufferLayout"
	if l.StepMode == gputypes.VertexStepModeInstance {
		return invalidf(op, "stepMode", l.StepMode, "instanced attributes are not supported")
	}
	if l.ArrayStride > MaxVertexStride {
		return invalid(op, "arrayStride", l.ArrayStride)
	}
	formats := make([]VertexFormat, len(l.Attributes))
	for i, a := range l.Attributes {
		vf, ok := VertexFormatFromGPU(a.Format)
		if !ok {
			return invalid(op, "format", a.Format)
		}
		if a.ShaderLocation >= MaxVertexAttribs {
			return invalid(op, "shaderLocation", a.ShaderLocation)
		}
		if a.Offset > math.MaxInt32 || (l.ArrayStride > 0 && a.Offset >= l.ArrayStride) {
			return invalidf(op, "offset", a.Offset, "must lie inside the %d byte stride", l.ArrayStride)
		}
		formats[i] = vf
	}

	if err := b.BindBuffer(ArrayBuffer, buf); err != nil {
		return err
	}
	stride := int(l.ArrayStride) // #nosec G115 -- bounded by MaxVertexStride above
	for i, a := range l.Attributes {
		loc := Loc(int(a.ShaderLocation))
		offset := int(a.Offset) // #nosec G115 -- bounded by MaxInt32 above
		vf := formats[i]
		if err := b.EnableVertexAttribArray(loc); err != nil {
			return err
		}
		var err error
		if vf.Integer {
			err = b.VertexAttribIPointer(loc, vf.Size, vf.IntType(), stride, offset)
		} else {
			err = b.VertexAttribPointer(loc, vf.Size, vf.Type, vf.Normalized, stride, offset)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
