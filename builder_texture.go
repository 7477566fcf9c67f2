package glbatch

import (
	"github.com/gogpu/glbatch/arraybuf"
	"github.com/gogpu/glbatch/resource"
	"github.com/gogpu/glbatch/wire"
)

// MaxTextureUnits bounds the unit accepted by ActiveTexture.
const MaxTextureUnits = 32

// CreateTexture allocates a texture handle.
func (b *Builder) CreateTexture() Handle {
	h := b.allocate(resource.Texture)
	b.push(wire.CreateTexture{Resource: h})
	return h
}

// BindTexture binds tex, or None, to target on the active unit.
func (b *Builder) BindTexture(target TextureTarget, tex Handle) error {
	if err := validate("BindTexture", arg{"target", target}); err != nil {
		return err
	}
	b.push(wire.BindTexture{Target: target.String(), Texture: tex})
	return nil
}

// ActiveTexture selects texture unit TEXTURE0+unit.
func (b *Builder) ActiveTexture(unit int) error {
	if unit < 0 || unit >= MaxTextureUnits {
		return invalidf("ActiveTexture", "unit", unit, "want 0..%d", MaxTextureUnits-1)
	}
	b.push(wire.ActiveTexture{Texture: unit})
	return nil
}

// GenerateMipmap generates the mipmap chain of the texture bound to target.
func (b *Builder) GenerateMipmap(target TextureTarget) error {
	if err := validate("GenerateMipmap", arg{"target", target}); err != nil {
		return err
	}
	b.push(wire.GenerateMipmap{Target: target.String()})
	return nil
}

// TexImage2D uploads one level of a 2D texture or cube face. A nil data
// allocates the level without uploading pixels.
func (b *Builder) TexImage2D(target TexImageTarget, level int, internal InternalFormat,
	width, height int, format PixelFormat, typ PixelType, data *arraybuf.Array) error {
	const op = "TexImage2D"
	if err := validate(op,
		arg{"target", target}, arg{"internalformat", internal},
		arg{"format", format}, arg{"type", typ}); err != nil {
		return err
	}
	if err := checkImageDims(op, level, width, height, 1); err != nil {
		return err
	}
	c := wire.TexImage2D{
		Target:         target.String(),
		Level:          level,
		InternalFormat: internal.String(),
		Width:          width,
		Height:         height,
		Format:         format.String(),
		DataType:       typ.String(),
	}
	if data != nil {
		c.Buffer = b.attach(data)
	}
	b.push(c)
	return nil
}

// TexImage3D uploads one level of a 3D or 2D array texture. A nil data
// allocates the level without uploading pixels.
func (b *Builder) TexImage3D(target TexImage3DTarget, level int, internal InternalFormat,
	width, height, depth int, format PixelFormat, typ PixelType, data *arraybuf.Array) error {
	const op = "TexImage3D"
	if err := validate(op,
		arg{"target", target}, arg{"internalformat", internal},
		arg{"format", format}, arg{"type", typ}); err != nil {
		return err
	}
	if err := checkImageDims(op, level, width, height, depth); err != nil {
		return err
	}
	c := wire.TexImage3D{
		Target:         target.String(),
		Level:          level,
		InternalFormat: internal.String(),
		Width:          width,
		Height:         height,
		Depth:          depth,
		Format:         format.String(),
		DataType:       typ.String(),
	}
	if data != nil {
		c.Buffer = b.attach(data)
	}
	b.push(c)
	return nil
}

// TexStorage2D allocates immutable storage for all levels of a 2D or cube
// map texture. internal must be a sized format.
func (b *Builder) TexStorage2D(target TextureTarget, levels int, internal InternalFormat, width, height int) error {
	const op = "TexStorage2D"
	if err := validate(op, arg{"target", target}, arg{"internalformat", internal}); err != nil {
		return err
	}
	if target.Is3D() {
		return invalidf(op, "target", target, "use TexStorage3D")
	}
	if err := checkStorage(op, levels, internal, width, height, 1); err != nil {
		return err
	}
	b.push(wire.TexStorage2D{
		Target:         target.String(),
		Levels:         levels,
		InternalFormat: internal.String(),
		Width:          width,
		Height:         height,
	})
	return nil
}

// TexStorage3D allocates immutable storage for all levels of a 3D or 2D
// array texture. internal must be a sized format.
func (b *Builder) TexStorage3D(target TextureTarget, levels int, internal InternalFormat, width, height, depth int) error {
	const op = "TexStorage3D"
	if err := validate(op, arg{"target", target}, arg{"internalformat", internal}); err != nil {
		return err
	}
	if !target.Is3D() {
		return invalidf(op, "target", target, "use TexStorage2D")
	}
	if err := checkStorage(op, levels, internal, width, height, depth); err != nil {
		return err
	}
	b.push(wire.TexStorage3D{
		Target:         target.String(),
		Levels:         levels,
		InternalFormat: internal.String(),
		Width:          width,
		Height:         height,
		Depth:          depth,
	})
	return nil
}

func checkImageDims(op string, level, width, height, depth int) error {
	switch {
	case level < 0:
		return invalid(op, "level", level)
	case width < 0:
		return invalid(op, "width", width)
	case height < 0:
		return invalid(op, "height", height)
	case depth < 0:
		return invalid(op, "depth", depth)
	}
	return nil
}

func checkStorage(op string, levels int, internal InternalFormat, width, height, depth int) error {
	if !internal.Sized() {
		return invalidf(op, "internalformat", internal, "storage requires a sized format")
	}
	if levels < 1 {
		return invalid(op, "levels", levels)
	}
	switch {
	case width < 1:
		return invalid(op, "width", width)
	case height < 1:
		return invalid(op, "height", height)
	case depth < 1:
		return invalid(op, "depth", depth)
	}
	return nil
}

// TexParameter sets a parameter of the texture bound to target. The value
// kind must match the parameter: filters, wrap and compare modes take
// TexEnum, TEXTURE_COMPARE_FUNC takes TexCompare, levels take TexInt and
// LOD clamps take TexFloat.
//
//	b.TexParameter(glbatch.Texture2D, glbatch.TextureMinFilter, glbatch.TexEnum(glbatch.Linear))
func (b *Builder) TexParameter(target TextureTarget, pname TexParam, value TexParamValue) error {
	const op = "TexParameter"
	if err := validate(op, arg{"target", target}, arg{"pname", pname}); err != nil {
		return err
	}
	if !value.accepts(pname) {
		return invalidf(op, "param", value, "not a value for %s", pname)
	}
	t, p := target.String(), pname.String()
	switch value.kind {
	case texValueInt:
		b.push(wire.TexParameterInt{Target: t, PName: p, Param: value.i})
	case texValueFloat:
		b.push(wire.TexParameterFloat{Target: t, PName: p, Param: value.f})
	case texValueEnum:
		b.push(wire.TexParameterEnum{Target: t, PName: p, Param: value.e.String()})
	case texValueCompare:
		b.push(wire.TexParameterEnum{Target: t, PName: p, Param: value.c.String()})
	}
	return nil
}

// PixelStore sets an integer pixel storage mode. Boolean modes take 0 or
// 1. UNPACK_COLORSPACE_CONVERSION_WEBGL is set with
// SetColorspaceConversion instead.
func (b *Builder) PixelStore(pname PixelStoreParam, value int) error {
	const op = "PixelStore"
	if err := validate(op, arg{"pname", pname}); err != nil {
		return err
	}
	switch pname {
	case UnpackColorspaceConversion:
		return invalidf(op, "pname", pname, "use SetColorspaceConversion")
	case PackAlignment, UnpackAlignment:
		if value != 1 && value != 2 && value != 4 && value != 8 {
			return invalidf(op, "param", value, "alignment must be 1, 2, 4 or 8")
		}
	case UnpackFlipY, UnpackPremultiplyAlpha:
		if value != 0 && value != 1 {
			return invalidf(op, "param", value, "want 0 or 1")
		}
	default:
		if value < 0 {
			return invalid(op, "param", value)
		}
	}
	b.push(wire.PixelStore{PName: pname.String(), Param: wire.IntOrName{Int: value}})
	return nil
}

// SetColorspaceConversion sets UNPACK_COLORSPACE_CONVERSION_WEBGL.
func (b *Builder) SetColorspaceConversion(c ColorspaceConversion) error {
	if err := validate("SetColorspaceConversion", arg{"conversion", c}); err != nil {
		return err
	}
	b.push(wire.PixelStore{
		PName: UnpackColorspaceConversion.String(),
		Param: wire.IntOrName{Name: c.String()},
	})
	return nil
}
