package arraybuf

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/x448/float16"
)

// ErrSizeMismatch is returned by Decode when the byte length does not
// match the metadata.
var ErrSizeMismatch = errors.New("arraybuf: payload size does not match shape")

// Encode normalizes a into its wire form: the metadata and a contiguous
// little-endian row-major byte buffer.
//
// Encode never fails. 64-bit integers are truncated to int32 and half
// floats are widened to float32 without notice; values outside the int32
// range wrap. A nil array encodes as an empty float32 vector.
func Encode(a *Array) (Metadata, []byte) {
	if a == nil {
		return Metadata{Shape: []int{0}, DType: Float32}, []byte{}
	}
	meta := Metadata{Shape: slices.Clone(a.shape), DType: a.DType()}
	buf := make([]byte, 0, a.Len()*meta.DType.Size())

	switch src := a.data.(type) {
	case []int8:
		a.each(func(p int) { buf = append(buf, byte(src[p])) })
	case []uint8:
		a.each(func(p int) { buf = append(buf, src[p]) })
	case []int16:
		a.each(func(p int) { buf = binary.LittleEndian.AppendUint16(buf, uint16(src[p])) })
	case []uint16:
		a.each(func(p int) { buf = binary.LittleEndian.AppendUint16(buf, src[p]) })
	case []int32:
		a.each(func(p int) { buf = binary.LittleEndian.AppendUint32(buf, uint32(src[p])) })
	case []uint32:
		a.each(func(p int) { buf = binary.LittleEndian.AppendUint32(buf, src[p]) })
	case []int64:
		// #nosec G115 -- narrowing to int32 is the documented wire behavior
		a.each(func(p int) { buf = binary.LittleEndian.AppendUint32(buf, uint32(int32(src[p]))) })
	case []uint64:
		// #nosec G115 -- narrowing to int32 is the documented wire behavior
		a.each(func(p int) { buf = binary.LittleEndian.AppendUint32(buf, uint32(int32(src[p]))) })
	case []int:
		// #nosec G115 -- narrowing to int32 is the documented wire behavior
		a.each(func(p int) { buf = binary.LittleEndian.AppendUint32(buf, uint32(int32(src[p]))) })
	case []uint:
		// #nosec G115 -- narrowing to int32 is the documented wire behavior
		a.each(func(p int) { buf = binary.LittleEndian.AppendUint32(buf, uint32(int32(src[p]))) })
	case []float32:
		a.each(func(p int) { buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(src[p])) })
	case []float16.Float16:
		a.each(func(p int) { buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(src[p].Float32())) })
	case []float64:
		a.each(func(p int) { buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(src[p])) })
	}
	return meta, buf
}

// Decode rebuilds a contiguous array from an encoded payload. It is the
// inverse of Encode for every dtype that survives encoding unchanged;
// narrowed values are not restored.
func Decode(meta Metadata, data []byte) (*Array, error) {
	if !meta.DType.Valid() {
		return nil, fmt.Errorf("arraybuf: invalid dtype %d", uint8(meta.DType))
	}
	for _, d := range meta.Shape {
		if d < 0 {
			return nil, fmt.Errorf("arraybuf: negative dimension in shape %v", meta.Shape)
		}
	}
	if want := meta.ByteLen(); len(data) != want {
		return nil, fmt.Errorf("%w: %d bytes for %s%v, want %d", ErrSizeMismatch, len(data), meta.DType, meta.Shape, want)
	}

	n := meta.Len()
	le := binary.LittleEndian
	shape := meta.Shape
	if len(shape) == 0 {
		shape = []int{n}
	}

	switch meta.DType {
	case Int8:
		out := make([]int8, n)
		for i := range out {
			out[i] = int8(data[i])
		}
		return New(out, shape...)
	case Uint8:
		return New(slices.Clone(data), shape...)
	case Int16:
		out := make([]int16, n)
		for i := range out {
			out[i] = int16(le.Uint16(data[2*i:]))
		}
		return New(out, shape...)
	case Uint16:
		out := make([]uint16, n)
		for i := range out {
			out[i] = le.Uint16(data[2*i:])
		}
		return New(out, shape...)
	case Int32:
		out := make([]int32, n)
		for i := range out {
			out[i] = int32(le.Uint32(data[4*i:]))
		}
		return New(out, shape...)
	case Uint32:
		out := make([]uint32, n)
		for i := range out {
			out[i] = le.Uint32(data[4*i:])
		}
		return New(out, shape...)
	case Float32:
		out := make([]float32, n)
		for i := range out {
			out[i] = math.Float32frombits(le.Uint32(data[4*i:]))
		}
		return New(out, shape...)
	default:
		out := make([]float64, n)
		for i := range out {
			out[i] = math.Float64frombits(le.Uint64(data[8*i:]))
		}
		return New(out, shape...)
	}
}
