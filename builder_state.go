package glbatch

import "github.com/gogpu/glbatch/wire"

// Viewport sets the viewport rectangle.
func (b *Builder) Viewport(x, y, width, height int) {
	b.push(wire.Viewport{X: x, Y: y, Width: width, Height: height})
}

// Enable turns on the given capabilities in one command.
func (b *Builder) Enable(caps ...Capability) error {
	set, err := capabilitySet("Enable", caps)
	if err != nil {
		return err
	}
	b.push(wire.Enable{Capabilities: set})
	return nil
}

// Disable turns off the given capabilities in one command.
func (b *Builder) Disable(caps ...Capability) error {
	set, err := capabilitySet("Disable", caps)
	if err != nil {
		return err
	}
	b.push(wire.Disable{Capabilities: set})
	return nil
}

func capabilitySet(op string, caps []Capability) (wire.Capabilities, error) {
	var set wire.Capabilities
	if len(caps) == 0 {
		return set, invalidf(op, "caps", "[]", "at least one capability is required")
	}
	for _, c := range caps {
		switch c {
		case Blend:
			set.Blend = true
		case CullFace:
			set.CullFace = true
		case DepthTest:
			set.DepthTest = true
		case Dither:
			set.Dither = true
		case PolygonOffsetFill:
			set.PolygonOffsetFill = true
		case SampleAlphaToCoverage:
			set.SampleAlphaToCoverage = true
		case SampleCoverage:
			set.SampleCoverage = true
		case ScissorTest:
			set.ScissorTest = true
		case StencilTest:
			set.StencilTest = true
		case RasterizerDiscard:
			set.RasterizerDiscard = true
		default:
			return wire.Capabilities{}, invalid(op, "cap", c)
		}
	}
	return set, nil
}

// ClearColor sets the color used when clearing the color buffer.
func (b *Builder) ClearColor(r, g, bl, a float32) {
	b.push(wire.ClearColor{R: r, G: g, B: bl, A: a})
}

// Clear clears the buffers selected by bits.
func (b *Builder) Clear(bits ClearBits) error {
	if bits == 0 || !bits.Valid() {
		return invalid("Clear", "bits", bits)
	}
	b.push(wire.Clear{
		Color:   bits&ColorBufferBit != 0,
		Depth:   bits&DepthBufferBit != 0,
		Stencil: bits&StencilBufferBit != 0,
	})
	return nil
}

// FrontFace sets the winding order of front-facing polygons.
func (b *Builder) FrontFace(mode FrontFaceMode) error {
	if err := validate("FrontFace", arg{"mode", mode}); err != nil {
		return err
	}
	b.push(wire.FrontFace{Mode: mode.String()})
	return nil
}

// CullFace selects which faces are culled when CullFace is enabled.
func (b *Builder) CullFace(mode CullFaceMode) error {
	if err := validate("CullFace", arg{"mode", mode}); err != nil {
		return err
	}
	b.push(wire.CullFace{Mode: mode.String()})
	return nil
}

// DepthFunc sets the depth comparison function.
func (b *Builder) DepthFunc(f CompareFunc) error {
	if err := validate("DepthFunc", arg{"func", f}); err != nil {
		return err
	}
	b.push(wire.DepthFunc{Func: f.String()})
	return nil
}

// DepthMask enables or disables writing to the depth buffer.
func (b *Builder) DepthMask(flag bool) {
	b.push(wire.DepthMask{Flag: flag})
}

// DepthRange maps normalized device depth to window depth.
func (b *Builder) DepthRange(zNear, zFar float32) {
	b.push(wire.DepthRange{ZNear: zNear, ZFar: zFar})
}

// BlendColor sets the constant blend color.
func (b *Builder) BlendColor(r, g, bl, a float32) {
	b.push(wire.BlendColor{R: r, G: g, B: bl, A: a})
}

// BlendEquation sets the RGB and alpha blend equations to mode.
func (b *Builder) BlendEquation(mode BlendEquation) error {
	if err := validate("BlendEquation", arg{"mode", mode}); err != nil {
		return err
	}
	b.push(wire.BlendEquation{Mode: mode.String()})
	return nil
}

// BlendEquationSeparate sets the RGB and alpha blend equations.
func (b *Builder) BlendEquationSeparate(modeRGB, modeAlpha BlendEquation) error {
	if err := validate("BlendEquationSeparate",
		arg{"modeRGB", modeRGB}, arg{"modeAlpha", modeAlpha}); err != nil {
		return err
	}
	b.push(wire.BlendEquationSeparate{ModeRGB: modeRGB.String(), ModeAlpha: modeAlpha.String()})
	return nil
}

// BlendFunc sets the source and destination blend factors.
func (b *Builder) BlendFunc(sfactor, dfactor BlendFactor) error {
	if err := validate("BlendFunc", arg{"sfactor", sfactor}, arg{"dfactor", dfactor}); err != nil {
		return err
	}
	b.push(wire.BlendFunc{SFactor: sfactor.String(), DFactor: dfactor.String()})
	return nil
}

// BlendFuncSeparate sets the blend factors for RGB and alpha separately.
func (b *Builder) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha BlendFactor) error {
	if err := validate("BlendFuncSeparate",
		arg{"srcRGB", srcRGB}, arg{"dstRGB", dstRGB},
		arg{"srcAlpha", srcAlpha}, arg{"dstAlpha", dstAlpha}); err != nil {
		return err
	}
	b.push(wire.BlendFuncSeparate{
		SrcRGB:   srcRGB.String(),
		DstRGB:   dstRGB.String(),
		SrcAlpha: srcAlpha.String(),
		DstAlpha: dstAlpha.String(),
	})
	return nil
}
