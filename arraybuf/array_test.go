package arraybuf

import (
	"slices"
	"testing"
)

func TestNewShapeValidation(t *testing.T) {
	if _, err := New([]float32{1, 2, 3}, 2, 2); err == nil {
		t.Error("expected error for mismatched shape")
	}
	if _, err := New([]float32{}, -1); err == nil {
		t.Error("expected error for negative dimension")
	}
	a, err := New([]float32{1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(a.Shape(), []int{6}) {
		t.Errorf("default shape = %v, want [6]", a.Shape())
	}
}

func TestSliceClamps(t *testing.T) {
	a := Of([]int32{0, 1, 2, 3, 4})
	tests := []struct {
		start, stop, step int
		want              []int32
	}{
		{0, 5, 1, []int32{0, 1, 2, 3, 4}},
		{1, 4, 2, []int32{1, 3}},
		{-3, 100, 3, []int32{0, 3}},
		{4, 2, 1, []int32{}},
	}
	for _, tt := range tests {
		got, _ := Values[int32](a.Slice(0, tt.start, tt.stop, tt.step))
		if !slices.Equal(got, tt.want) {
			t.Errorf("Slice(%d, %d, %d) = %v, want %v", tt.start, tt.stop, tt.step, got, tt.want)
		}
	}
}

func TestReshape(t *testing.T) {
	a := Of([]float32{0, 1, 2, 3, 4, 5})
	r, err := a.Reshape(3, 2)
	if err != nil {
		t.Fatal(err)
	}
	if r.NDim() != 2 || r.Len() != 6 {
		t.Errorf("reshaped to %v", r.Shape())
	}
	if _, err := r.Transpose().Reshape(6); err == nil {
		t.Error("reshape of a transposed view must fail")
	}
	if _, err := a.Reshape(4); err == nil {
		t.Error("reshape to a different element count must fail")
	}
}

func TestViewsShareStorage(t *testing.T) {
	data := []float32{1, 2, 3}
	v := Of(data).Reverse(0)
	data[0] = 9
	got, _ := Values[float32](v)
	if !slices.Equal(got, []float32{3, 2, 9}) {
		t.Errorf("view = %v, want [3 2 9]", got)
	}
}

func TestValuesWrongType(t *testing.T) {
	if _, ok := Values[int32](Of([]float32{1})); ok {
		t.Error("Values[int32] on float32 array should report false")
	}
}

func TestAxisPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range axis")
		}
	}()
	Of([]float32{1}).Reverse(1)
}
