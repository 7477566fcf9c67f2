package glbatch

import (
	"strconv"
	"strings"
)

// ElementType is the element type of a vertex attribute in the layout
// shorthand.
type ElementType uint8

const (
	I8 ElementType = iota
	I16
	I32
	U8
	U16
	U32
	F16
	F32
)

var elementTags = [...]string{
	I8: "i8", I16: "i16", I32: "i32",
	U8: "u8", U16: "u16", U32: "u32",
	F16: "f16", F32: "f32",
}

var elementSizes = [...]int{
	I8: 1, I16: 2, I32: 4,
	U8: 1, U16: 2, U32: 4,
	F16: 2, F32: 4,
}

func (t ElementType) String() string {
	return enumString("ElementType", elementTags[:], int(t))
}
func (t ElementType) Valid() bool { return int(t) < len(elementTags) }

// Size returns the element size in bytes.
func (t ElementType) Size() int {
	if !t.Valid() {
		return 0
	}
	return elementSizes[t]
}

// IsInteger reports whether attributes of this type are bound with
// VertexAttribIPointer.
func (t ElementType) IsInteger() bool { return t != F16 && t != F32 && t.Valid() }

// AttribType returns the pointer type for a float attribute of this type.
func (t ElementType) AttribType() AttribType {
	switch t {
	case I8:
		return AttribByte
	case I16:
		return AttribShort
	case I32:
		return AttribInt
	case U8:
		return AttribUnsignedByte
	case U16:
		return AttribUnsignedShort
	case U32:
		return AttribUnsignedInt
	case F16:
		return AttribHalfFloat
	default:
		return AttribFloat
	}
}

// IntAttribType returns the pointer type for an integer attribute of this
// type. ok is false for float types.
func (t ElementType) IntAttribType() (typ IntAttribType, ok bool) {
	switch t {
	case I8:
		return IAttribByte, true
	case I16:
		return IAttribShort, true
	case I32:
		return IAttribInt, true
	case U8:
		return IAttribUnsignedByte, true
	case U16:
		return IAttribUnsignedShort, true
	case U32:
		return IAttribUnsignedInt, true
	default:
		return 0, false
	}
}

// Attribute is one field of an interleaved vertex buffer.
type Attribute struct {
	Name   string
	Count  int // components, 1..4
	Type   ElementType
	Offset int // bytes from the start of the vertex
}

// Size returns the attribute size in bytes.
func (a Attribute) Size() int { return a.Count * a.Type.Size() }

// BufferLayout is the layout of one interleaved vertex buffer.
type BufferLayout struct {
	Attributes []Attribute
	Stride     int // bytes per vertex
}

// ParseBufferLayout parses a layout shorthand such as "3f32 2u16" and
// names its attributes positionally. Each whitespace-separated token is a
// component count from 1 to 4 followed by one of the tags i8, i16, i32,
// u8, u16, u32, f16 or f32. Attributes are packed in token order from
// offset 0.
//
//	l, _ := ParseBufferLayout("3f32 2u16", "pos", "uv")
//	// pos at 0, uv at 12, stride 16
func ParseBufferLayout(spec string, names ...string) (BufferLayout, error) {
	tokens := strings.Fields(spec)
	if len(tokens) == 0 {
		return BufferLayout{}, &AttributeSpecError{Spec: spec, Reason: "no attributes"}
	}
	if len(tokens) != len(names) {
		return BufferLayout{}, &AttributeSpecError{
			Spec:   spec,
			Reason: "got " + strconv.Itoa(len(names)) + " names for " + strconv.Itoa(len(tokens)) + " attributes",
		}
	}

	layout := BufferLayout{Attributes: make([]Attribute, 0, len(tokens))}
	for i, tok := range tokens {
		count, typ, err := parseAttributeToken(spec, tok)
		if err != nil {
			return BufferLayout{}, err
		}
		if names[i] == "" {
			return BufferLayout{}, &AttributeSpecError{Spec: spec, Token: tok, Reason: "empty attribute name"}
		}
		a := Attribute{Name: names[i], Count: count, Type: typ, Offset: layout.Stride}
		layout.Attributes = append(layout.Attributes, a)
		layout.Stride += a.Size()
	}
	if layout.Stride > MaxVertexStride {
		return BufferLayout{}, &AttributeSpecError{Spec: spec, Reason: "stride " + strconv.Itoa(layout.Stride) + " exceeds 255"}
	}
	return layout, nil
}

func parseAttributeToken(spec, tok string) (int, ElementType, error) {
	if len(tok) < 2 || tok[0] < '1' || tok[0] > '4' {
		return 0, 0, &AttributeSpecError{Spec: spec, Token: tok, Reason: "count must be 1..4"}
	}
	tag := tok[1:]
	for i, t := range elementTags {
		if t == tag {
			return int(tok[0] - '0'), ElementType(i), nil
		}
	}
	return 0, 0, &AttributeSpecError{Spec: spec, Token: tok, Reason: "unknown type " + tag}
}
