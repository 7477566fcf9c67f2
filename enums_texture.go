package glbatch

import (
	"math"
	"strconv"
)

// TextureTarget is a texture binding point.
type TextureTarget uint8

const (
	Texture2D TextureTarget = iota
	TextureCubeMap
	Texture3D
	Texture2DArray
)

var textureTargetNames = [...]string{
	Texture2D:      "TEXTURE_2D",
	TextureCubeMap: "TEXTURE_CUBE_MAP",
	Texture3D:      "TEXTURE_3D",
	Texture2DArray: "TEXTURE_2D_ARRAY",
}

func (t TextureTarget) String() string {
	return enumString("TextureTarget", textureTargetNames[:], int(t))
}
func (t TextureTarget) Valid() bool { return int(t) < len(textureTargetNames) }

// Is3D reports whether t takes a depth dimension.
func (t TextureTarget) Is3D() bool { return t == Texture3D || t == Texture2DArray }

// ParseTextureTarget returns the target named s, e.g. "TEXTURE_2D".
func ParseTextureTarget(s string) (TextureTarget, error) {
	return parseEnum[TextureTarget]("TextureTarget", textureTargetNames[:], s)
}

// TexImageTarget is the target of a two-dimensional image upload: a 2D
// texture or one face of a cube map.
type TexImageTarget uint8

const (
	Image2D TexImageTarget = iota
	CubeMapPositiveX
	CubeMapNegativeX
	CubeMapPositiveY
	CubeMapNegativeY
	CubeMapPositiveZ
	CubeMapNegativeZ
)

var texImageTargetNames = [...]string{
	Image2D:          "TEXTURE_2D",
	CubeMapPositiveX: "TEXTURE_CUBE_MAP_POSITIVE_X",
	CubeMapNegativeX: "TEXTURE_CUBE_MAP_NEGATIVE_X",
	CubeMapPositiveY: "TEXTURE_CUBE_MAP_POSITIVE_Y",
	CubeMapNegativeY: "TEXTURE_CUBE_MAP_NEGATIVE_Y",
	CubeMapPositiveZ: "TEXTURE_CUBE_MAP_POSITIVE_Z",
	CubeMapNegativeZ: "TEXTURE_CUBE_MAP_NEGATIVE_Z",
}

func (t TexImageTarget) String() string {
	return enumString("TexImageTarget", texImageTargetNames[:], int(t))
}
func (t TexImageTarget) Valid() bool { return int(t) < len(texImageTargetNames) }

// ParseTexImageTarget returns the target named s.
func ParseTexImageTarget(s string) (TexImageTarget, error) {
	return parseEnum[TexImageTarget]("TexImageTarget", texImageTargetNames[:], s)
}

// TexImage3DTarget is the target of a three-dimensional image upload.
type TexImage3DTarget uint8

const (
	Image3D TexImage3DTarget = iota
	Image2DArray
)

var texImage3DTargetNames = [...]string{
	Image3D:      "TEXTURE_3D",
	Image2DArray: "TEXTURE_2D_ARRAY",
}

func (t TexImage3DTarget) String() string {
	return enumString("TexImage3DTarget", texImage3DTargetNames[:], int(t))
}
func (t TexImage3DTarget) Valid() bool { return int(t) < len(texImage3DTargetNames) }

// ParseTexImage3DTarget returns the target named s.
func ParseTexImage3DTarget(s string) (TexImage3DTarget, error) {
	return parseEnum[TexImage3DTarget]("TexImage3DTarget", texImage3DTargetNames[:], s)
}

// InternalFormat is the storage format of a texture. The first five values
// are the unsized WebGL 1 formats; the rest are sized.
type InternalFormat uint8

const (
	InternalRGB InternalFormat = iota
	InternalRGBA
	InternalLuminanceAlpha
	InternalLuminance
	InternalAlpha
	R8
	R16F
	R32F
	R8UI
	RG8
	RG16F
	RG32F
	RG8UI
	RGB8
	SRGB8
	RGB565
	R11FG11FB10F
	RGB9E5
	RGB16F
	RGB32F
	RGB8UI
	RGBA8
	SRGB8Alpha8
	RGB5A1
	RGB10A2
	RGBA4
	RGBA16F
	RGBA32F
	RGBA8UI
	DepthComponent16
	DepthComponent24
	DepthComponent32F
	Depth24Stencil8
	Depth32FStencil8
)

var internalFormatNames = [...]string{
	InternalRGB:            "RGB",
	InternalRGBA:           "RGBA",
	InternalLuminanceAlpha: "LUMINANCE_ALPHA",
	InternalLuminance:      "LUMINANCE",
	InternalAlpha:          "ALPHA",
	R8:                     "R8",
	R16F:                   "R16F",
	R32F:                   "R32F",
	R8UI:                   "R8UI",
	RG8:                    "RG8",
	RG16F:                  "RG16F",
	RG32F:                  "RG32F",
	RG8UI:                  "RG8UI",
	RGB8:                   "RGB8",
	SRGB8:                  "SRGB8",
	RGB565:                 "RGB565",
	R11FG11FB10F:           "R11F_G11F_B10F",
	RGB9E5:                 "RGB9_E5",
	RGB16F:                 "RGB16F",
	RGB32F:                 "RGB32F",
	RGB8UI:                 "RGB8UI",
	RGBA8:                  "RGBA8",
	SRGB8Alpha8:            "SRGB8_ALPHA8",
	RGB5A1:                 "RGB5_A1",
	RGB10A2:                "RGB10_A2",
	RGBA4:                  "RGBA4",
	RGBA16F:                "RGBA16F",
	RGBA32F:                "RGBA32F",
	RGBA8UI:                "RGBA8UI",
	DepthComponent16:       "DEPTH_COMPONENT16",
	DepthComponent24:       "DEPTH_COMPONENT24",
	DepthComponent32F:      "DEPTH_COMPONENT32F",
	Depth24Stencil8:        "DEPTH24_STENCIL8",
	Depth32FStencil8:       "DEPTH32F_STENCIL8",
}

func (f InternalFormat) String() string {
	return enumString("InternalFormat", internalFormatNames[:], int(f))
}
func (f InternalFormat) Valid() bool { return int(f) < len(internalFormatNames) }

// Sized reports whether f is a sized format, as texStorage requires.
func (f InternalFormat) Sized() bool { return f.Valid() && f >= R8 }

// ParseInternalFormat returns the format named s, e.g. "RGBA8".
func ParseInternalFormat(s string) (InternalFormat, error) {
	return parseEnum[InternalFormat]("InternalFormat", internalFormatNames[:], s)
}

// PixelFormat is the layout of the client pixel data in an upload.
type PixelFormat uint8

const (
	PixelRGB PixelFormat = iota
	PixelRGBA
	PixelLuminanceAlpha
	PixelLuminance
	PixelAlpha
	PixelRed
	PixelRedInteger
	PixelRG
	PixelRGInteger
	PixelRGBInteger
	PixelRGBAInteger
	PixelDepthComponent
	PixelDepthStencil
)

var pixelFormatNames = [...]string{
	PixelRGB:            "RGB",
	PixelRGBA:           "RGBA",
	PixelLuminanceAlpha: "LUMINANCE_ALPHA",
	PixelLuminance:      "LUMINANCE",
	PixelAlpha:          "ALPHA",
	PixelRed:            "RED",
	PixelRedInteger:     "RED_INTEGER",
	PixelRG:             "RG",
	PixelRGInteger:      "RG_INTEGER",
	PixelRGBInteger:     "RGB_INTEGER",
	PixelRGBAInteger:    "RGBA_INTEGER",
	PixelDepthComponent: "DEPTH_COMPONENT",
	PixelDepthStencil:   "DEPTH_STENCIL",
}

func (f PixelFormat) String() string {
	return enumString("PixelFormat", pixelFormatNames[:], int(f))
}
func (f PixelFormat) Valid() bool { return int(f) < len(pixelFormatNames) }

// ParsePixelFormat returns the format named s, e.g. "RGBA".
func ParsePixelFormat(s string) (PixelFormat, error) {
	return parseEnum[PixelFormat]("PixelFormat", pixelFormatNames[:], s)
}

// PixelType is the component type of the client pixel data in an upload.
type PixelType uint8

const (
	TypeUnsignedByte PixelType = iota
	TypeByte
	TypeUnsignedShort
	TypeShort
	TypeUnsignedInt
	TypeInt
	TypeHalfFloat
	TypeFloat
	TypeUnsignedShort565
	TypeUnsignedShort4444
	TypeUnsignedShort5551
	TypeUnsignedInt2101010Rev
	TypeUnsignedInt10F11F11FRev
	TypeUnsignedInt5999Rev
	TypeUnsignedInt248
	TypeFloat32UnsignedInt248Rev
)

var pixelTypeNames = [...]string{
	TypeUnsignedByte:             "UNSIGNED_BYTE",
	TypeByte:                     "BYTE",
	TypeUnsignedShort:            "UNSIGNED_SHORT",
	TypeShort:                    "SHORT",
	TypeUnsignedInt:              "UNSIGNED_INT",
	TypeInt:                      "INT",
	TypeHalfFloat:                "HALF_FLOAT",
	TypeFloat:                    "FLOAT",
	TypeUnsignedShort565:         "UNSIGNED_SHORT_5_6_5",
	TypeUnsignedShort4444:        "UNSIGNED_SHORT_4_4_4_4",
	TypeUnsignedShort5551:        "UNSIGNED_SHORT_5_5_5_1",
	TypeUnsignedInt2101010Rev:    "UNSIGNED_INT_2_10_10_10_REV",
	TypeUnsignedInt10F11F11FRev:  "UNSIGNED_INT_10F_11F_11F_REV",
	TypeUnsignedInt5999Rev:       "UNSIGNED_INT_5_9_9_9_REV",
	TypeUnsignedInt248:           "UNSIGNED_INT_24_8",
	TypeFloat32UnsignedInt248Rev: "FLOAT_32_UNSIGNED_INT_24_8_REV",
}

func (t PixelType) String() string {
	return enumString("PixelType", pixelTypeNames[:], int(t))
}
func (t PixelType) Valid() bool { return int(t) < len(pixelTypeNames) }

// ParsePixelType returns the type named s, e.g. "UNSIGNED_BYTE".
func ParsePixelType(s string) (PixelType, error) {
	return parseEnum[PixelType]("PixelType", pixelTypeNames[:], s)
}

// TexParam is a texture parameter name.
type TexParam uint8

const (
	TextureMagFilter TexParam = iota
	TextureMinFilter
	TextureWrapS
	TextureWrapT
	TextureWrapR
	TextureBaseLevel
	TextureMaxLevel
	TextureCompareFunc
	TextureCompareMode
	TextureMinLOD
	TextureMaxLOD
)

var texParamNames = [...]string{
	TextureMagFilter:   "TEXTURE_MAG_FILTER",
	TextureMinFilter:   "TEXTURE_MIN_FILTER",
	TextureWrapS:       "TEXTURE_WRAP_S",
	TextureWrapT:       "TEXTURE_WRAP_T",
	TextureWrapR:       "TEXTURE_WRAP_R",
	TextureBaseLevel:   "TEXTURE_BASE_LEVEL",
	TextureMaxLevel:    "TEXTURE_MAX_LEVEL",
	TextureCompareFunc: "TEXTURE_COMPARE_FUNC",
	TextureCompareMode: "TEXTURE_COMPARE_MODE",
	TextureMinLOD:      "TEXTURE_MIN_LOD",
	TextureMaxLOD:      "TEXTURE_MAX_LOD",
}

func (p TexParam) String() string {
	return enumString("TexParam", texParamNames[:], int(p))
}
func (p TexParam) Valid() bool { return int(p) < len(texParamNames) }

// ParseTexParam returns the parameter named s, e.g. "TEXTURE_MIN_FILTER".
func ParseTexParam(s string) (TexParam, error) {
	return parseEnum[TexParam]("TexParam", texParamNames[:], s)
}

// TexParamEnum is a symbolic texture parameter value.
type TexParamEnum uint8

const (
	Nearest TexParamEnum = iota
	Linear
	NearestMipmapNearest
	LinearMipmapNearest
	NearestMipmapLinear
	LinearMipmapLinear
	Repeat
	ClampToEdge
	MirroredRepeat
	CompareRefToTexture
	CompareNone
)

var texParamEnumNames = [...]string{
	Nearest:              "NEAREST",
	Linear:               "LINEAR",
	NearestMipmapNearest: "NEAREST_MIPMAP_NEAREST",
	LinearMipmapNearest:  "LINEAR_MIPMAP_NEAREST",
	NearestMipmapLinear:  "NEAREST_MIPMAP_LINEAR",
	LinearMipmapLinear:   "LINEAR_MIPMAP_LINEAR",
	Repeat:               "REPEAT",
	ClampToEdge:          "CLAMP_TO_EDGE",
	MirroredRepeat:       "MIRRORED_REPEAT",
	CompareRefToTexture:  "COMPARE_REF_TO_TEXTURE",
	CompareNone:          "NONE",
}

func (e TexParamEnum) String() string {
	return enumString("TexParamEnum", texParamEnumNames[:], int(e))
}
func (e TexParamEnum) Valid() bool { return int(e) < len(texParamEnumNames) }

// ParseTexParamEnum returns the value named s, e.g. "LINEAR".
func ParseTexParamEnum(s string) (TexParamEnum, error) {
	return parseEnum[TexParamEnum]("TexParamEnum", texParamEnumNames[:], s)
}

type texValueKind uint8

const (
	texValueInt texValueKind = iota + 1
	texValueFloat
	texValueEnum
	texValueCompare
)

// TexParamValue is the value of a texture parameter. Build one with
// TexInt, TexFloat, TexEnum or TexCompare.
type TexParamValue struct {
	kind texValueKind
	i    int
	f    float32
	e    TexParamEnum
	c    CompareFunc
}

// TexInt returns an integer parameter value, for levels.
func TexInt(v int) TexParamValue { return TexParamValue{kind: texValueInt, i: v} }

// TexFloat returns a float parameter value, for LOD clamps.
func TexFloat(v float32) TexParamValue { return TexParamValue{kind: texValueFloat, f: v} }

// TexEnum returns a symbolic parameter value, for filters and wrap modes.
func TexEnum(v TexParamEnum) TexParamValue { return TexParamValue{kind: texValueEnum, e: v} }

// TexCompare returns a comparison function value for TEXTURE_COMPARE_FUNC.
func TexCompare(v CompareFunc) TexParamValue { return TexParamValue{kind: texValueCompare, c: v} }

func (v TexParamValue) String() string {
	switch v.kind {
	case texValueInt:
		return strconv.Itoa(v.i)
	case texValueFloat:
		return strconv.FormatFloat(float64(v.f), 'g', -1, 32)
	case texValueEnum:
		return v.e.String()
	case texValueCompare:
		return v.c.String()
	default:
		return "<unset>"
	}
}

// accepts reports whether v is a legal value for p.
func (v TexParamValue) accepts(p TexParam) bool {
	switch p {
	case TextureMagFilter:
		return v.kind == texValueEnum && (v.e == Nearest || v.e == Linear)
	case TextureMinFilter:
		return v.kind == texValueEnum && v.e <= LinearMipmapLinear
	case TextureWrapS, TextureWrapT, TextureWrapR:
		return v.kind == texValueEnum && v.e >= Repeat && v.e <= MirroredRepeat
	case TextureCompareMode:
		return v.kind == texValueEnum && (v.e == CompareRefToTexture || v.e == CompareNone)
	case TextureCompareFunc:
		return v.kind == texValueCompare && v.c.Valid()
	case TextureBaseLevel, TextureMaxLevel:
		return v.kind == texValueInt && v.i >= 0
	case TextureMinLOD, TextureMaxLOD:
		return v.kind == texValueFloat && !math.IsNaN(float64(v.f))
	default:
		return false
	}
}

// PixelStoreParam is a pixel storage mode name.
type PixelStoreParam uint8

const (
	PackAlignment PixelStoreParam = iota
	UnpackAlignment
	UnpackFlipY
	UnpackPremultiplyAlpha
	UnpackColorspaceConversion
	PackRowLength
	PackSkipPixels
	PackSkipRows
	UnpackRowLength
	UnpackImageHeight
	UnpackSkipPixels
	UnpackSkipRows
	UnpackSkipImages
)

var pixelStoreParamNames = [...]string{
	PackAlignment:              "PACK_ALIGNMENT",
	UnpackAlignment:            "UNPACK_ALIGNMENT",
	UnpackFlipY:                "UNPACK_FLIP_Y_WEBGL",
	UnpackPremultiplyAlpha:     "UNPACK_PREMULTIPLY_ALPHA_WEBGL",
	UnpackColorspaceConversion: "UNPACK_COLORSPACE_CONVERSION_WEBGL",
	PackRowLength:              "PACK_ROW_LENGTH",
	PackSkipPixels:             "PACK_SKIP_PIXELS",
	PackSkipRows:               "PACK_SKIP_ROWS",
	UnpackRowLength:            "UNPACK_ROW_LENGTH",
	UnpackImageHeight:          "UNPACK_IMAGE_HEIGHT",
	UnpackSkipPixels:           "UNPACK_SKIP_PIXELS",
	UnpackSkipRows:             "UNPACK_SKIP_ROWS",
	UnpackSkipImages:           "UNPACK_SKIP_IMAGES",
}

func (p PixelStoreParam) String() string {
	return enumString("PixelStoreParam", pixelStoreParamNames[:], int(p))
}
func (p PixelStoreParam) Valid() bool { return int(p) < len(pixelStoreParamNames) }

// ParsePixelStoreParam returns the parameter named s.
func ParsePixelStoreParam(s string) (PixelStoreParam, error) {
	return parseEnum[PixelStoreParam]("PixelStoreParam", pixelStoreParamNames[:], s)
}

// ColorspaceConversion is the value of UNPACK_COLORSPACE_CONVERSION_WEBGL.
type ColorspaceConversion uint8

const (
	BrowserDefaultColorspace ColorspaceConversion = iota
	NoColorspaceConversion
)

var colorspaceNames = [...]string{
	BrowserDefaultColorspace: "BROWSER_DEFAULT_WEBGL",
	NoColorspaceConversion:   "NONE",
}

func (c ColorspaceConversion) String() string {
	return enumString("ColorspaceConversion", colorspaceNames[:], int(c))
}
func (c ColorspaceConversion) Valid() bool { return int(c) < len(colorspaceNames) }
