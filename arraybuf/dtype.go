package arraybuf

import "fmt"

// DType identifies the element kind of an encoded payload.
// The set is limited to what the executor can wrap in a JS typed array.
type DType uint8

const (
	Int8 DType = iota
	Uint8
	Int16
	Uint16
	Int32
	Uint32
	Float32
	Float64
)

// dtypeNames maps DType values to their wire names.
var dtypeNames = [...]string{
	Int8:    "int8",
	Uint8:   "uint8",
	Int16:   "int16",
	Uint16:  "uint16",
	Int32:   "int32",
	Uint32:  "uint32",
	Float32: "float32",
	Float64: "float64",
}

var dtypeSizes = [...]int{
	Int8:    1,
	Uint8:   1,
	Int16:   2,
	Uint16:  2,
	Int32:   4,
	Uint32:  4,
	Float32: 4,
	Float64: 8,
}

// String returns the wire name of the dtype ("float32", "uint16", ...).
func (d DType) String() string {
	if int(d) < len(dtypeNames) {
		return dtypeNames[d]
	}
	return "unknown"
}

// Size returns the element size in bytes, or 0 for an unknown dtype.
func (d DType) Size() int {
	if int(d) < len(dtypeSizes) {
		return dtypeSizes[d]
	}
	return 0
}

// Valid reports whether d is one of the defined dtypes.
func (d DType) Valid() bool {
	return int(d) < len(dtypeNames)
}

// IsFloat reports whether d is a floating point dtype.
func (d DType) IsFloat() bool {
	return d == Float32 || d == Float64
}

// ParseDType returns the dtype with the given wire name.
func ParseDType(name string) (DType, error) {
	for i, n := range dtypeNames {
		if n == name {
			return DType(i), nil
		}
	}
	return 0, fmt.Errorf("arraybuf: unknown dtype %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (d DType) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("arraybuf: invalid dtype %d", uint8(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *DType) UnmarshalText(text []byte) error {
	v, err := ParseDType(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Metadata describes an encoded payload: its shape and element kind.
type Metadata struct {
	Shape []int `json:"shape"`
	DType DType `json:"dtype"`
}

// Len returns the number of elements described by the shape.
func (m Metadata) Len() int {
	return product(m.Shape)
}

// ByteLen returns the payload size implied by the metadata.
func (m Metadata) ByteLen() int {
	return m.Len() * m.DType.Size()
}

func product(shape []int) int {
	n := 1
	for _, d := range shape {
		n *= d
	}
	return n
}

