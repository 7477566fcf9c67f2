package arraybuf

import (
	"fmt"
	"slices"

	"github.com/x448/float16"
)

// Element is the set of Go element types an Array can hold.
//
// 64-bit integers and half floats are accepted here but never reach the
// wire: Encode narrows them to int32 and float32 respectively.
type Element interface {
	int8 | uint8 | int16 | uint16 | int32 | uint32 |
		int64 | uint64 | int | uint |
		float32 | float64 | float16.Float16
}

// Array is an n-dimensional view over a typed element slice.
//
// Strides are counted in elements, may be negative and need not describe
// a contiguous layout. Views produced by Reverse, Slice and Transpose share
// storage with their parent.
type Array struct {
	data    any
	size    int // len(data)
	shape   []int
	strides []int
	offset  int
}

// Of returns a one-dimensional array over data.
func Of[T Element](data []T) *Array {
	return &Array{
		data:    data,
		size:    len(data),
		shape:   []int{len(data)},
		strides: []int{1},
	}
}

// New returns a contiguous row-major array over data with the given shape.
// An empty shape means a one-dimensional array of len(data) elements.
func New[T Element](data []T, shape ...int) (*Array, error) {
	if len(shape) == 0 {
		return Of(data), nil
	}
	for _, d := range shape {
		if d < 0 {
			return nil, fmt.Errorf("arraybuf: negative dimension in shape %v", shape)
		}
	}
	if n := product(shape); n != len(data) {
		return nil, fmt.Errorf("arraybuf: shape %v needs %d elements, have %d", shape, n, len(data))
	}
	return &Array{
		data:    data,
		size:    len(data),
		shape:   slices.Clone(shape),
		strides: rowMajorStrides(shape),
	}, nil
}

// MustNew is like New but panics on error.
func MustNew[T Element](data []T, shape ...int) *Array {
	a, err := New(data, shape...)
	if err != nil {
		panic(err)
	}
	return a
}

func rowMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	s := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = s
		s *= shape[i]
	}
	return strides
}

// Shape returns a copy of the array's dimensions.
func (a *Array) Shape() []int { return slices.Clone(a.shape) }

// NDim returns the number of dimensions.
func (a *Array) NDim() int { return len(a.shape) }

// Len returns the total number of elements.
func (a *Array) Len() int { return product(a.shape) }

// Contiguous reports whether the view walks its storage in row-major
// order without gaps.
func (a *Array) Contiguous() bool {
	want := 1
	for i := len(a.shape) - 1; i >= 0; i-- {
		if a.shape[i] == 1 {
			continue
		}
		if a.strides[i] != want {
			return false
		}
		want *= a.shape[i]
	}
	return true
}

// DType returns the dtype the array will be encoded as.
func (a *Array) DType() DType {
	switch a.data.(type) {
	case []int8:
		return Int8
	case []uint8:
		return Uint8
	case []int16:
		return Int16
	case []uint16:
		return Uint16
	case []uint32:
		return Uint32
	case []float32, []float16.Float16:
		return Float32
	case []float64:
		return Float64
	default:
		// int32 and every 64-bit integer kind.
		return Int32
	}
}

func (a *Array) checkAxis(axis int) {
	if axis < 0 || axis >= len(a.shape) {
		panic(fmt.Sprintf("arraybuf: axis %d out of range for %d dimensions", axis, len(a.shape)))
	}
}

func (a *Array) view() *Array {
	return &Array{
		data:    a.data,
		size:    a.size,
		shape:   slices.Clone(a.shape),
		strides: slices.Clone(a.strides),
		offset:  a.offset,
	}
}

// Reverse returns a view with the elements along axis in reverse order.
// It panics if axis is out of range.
func (a *Array) Reverse(axis int) *Array {
	a.checkAxis(axis)
	v := a.view()
	if v.shape[axis] > 0 {
		v.offset += (v.shape[axis] - 1) * v.strides[axis]
	}
	v.strides[axis] = -v.strides[axis]
	return v
}

// Slice returns a view of the elements start, start+step, ... below stop
// along axis. Bounds are clamped to the axis length. It panics if axis is
// out of range or step is not positive.
func (a *Array) Slice(axis, start, stop, step int) *Array {
	a.checkAxis(axis)
	if step <= 0 {
		panic(fmt.Sprintf("arraybuf: slice step %d must be positive", step))
	}
	n := a.shape[axis]
	start = min(max(start, 0), n)
	stop = min(max(stop, start), n)

	v := a.view()
	v.offset += start * v.strides[axis]
	v.shape[axis] = (stop - start + step - 1) / step
	v.strides[axis] *= step
	return v
}

// Transpose returns a view with the axis order reversed.
func (a *Array) Transpose() *Array {
	v := a.view()
	slices.Reverse(v.shape)
	slices.Reverse(v.strides)
	return v
}

// Reshape returns a view with a new shape over the same elements.
// The array must be contiguous.
func (a *Array) Reshape(shape ...int) (*Array, error) {
	if !a.Contiguous() {
		return nil, fmt.Errorf("arraybuf: cannot reshape a non-contiguous view")
	}
	if len(shape) == 0 || product(shape) != a.Len() {
		return nil, fmt.Errorf("arraybuf: cannot reshape %v into %v", a.shape, shape)
	}
	for _, d := range shape {
		if d < 0 {
			return nil, fmt.Errorf("arraybuf: negative dimension in shape %v", shape)
		}
	}
	return &Array{
		data:    a.data,
		size:    a.size,
		shape:   slices.Clone(shape),
		strides: rowMajorStrides(shape),
		offset:  a.offset,
	}, nil
}

// each calls fn with the storage position of every element in row-major
// order of the view.
func (a *Array) each(fn func(pos int)) {
	n := a.Len()
	if n == 0 {
		return
	}
	if a.Contiguous() {
		for i := range n {
			fn(a.offset + i)
		}
		return
	}
	idx := make([]int, len(a.shape))
	pos := a.offset
	for range n {
		fn(pos)
		for ax := len(idx) - 1; ax >= 0; ax-- {
			idx[ax]++
			pos += a.strides[ax]
			if idx[ax] < a.shape[ax] {
				break
			}
			pos -= a.strides[ax] * a.shape[ax]
			idx[ax] = 0
		}
	}
}

// Values returns the elements of a in row-major order if its element type
// is T. The result is always a fresh slice.
func Values[T Element](a *Array) ([]T, bool) {
	src, ok := a.data.([]T)
	if !ok {
		return nil, false
	}
	out := make([]T, 0, a.Len())
	a.each(func(pos int) { out = append(out, src[pos]) })
	return out, true
}
