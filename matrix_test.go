package glbatch

import (
	"encoding/binary"
	"math"
	"testing"

	"golang.org/x/image/math/f32"

	"github.com/gogpu/glbatch/wire"
)

func floatsOf(blob []byte) []float32 {
	out := make([]float32, len(blob)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(blob[i*4:]))
	}
	return out
}

func TestUniformMat4Transposes(t *testing.T) {
	// Translation by (1, 2, 3) in row-major form.
	m := f32.Mat4{
		1, 0, 0, 1,
		0, 1, 0, 2,
		0, 0, 1, 3,
		0, 0, 0, 1,
	}
	b := NewBuilder()
	if err := b.UniformMat4("u_model", m); err != nil {
		t.Fatal(err)
	}
	c := b.Commands()[0].(wire.UniformMatrix)
	if len(c.Buffer.Shape) != 2 || c.Buffer.Shape[0] != 4 || c.Buffer.Shape[1] != 4 {
		t.Fatalf("shape = %v", c.Buffer.Shape)
	}
	got := floatsOf(b.Buffers()[0])
	// Column-major puts the translation in the last four elements.
	want := []float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 1, 2, 3, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("payload = %v, want %v", got, want)
		}
	}
}

func TestUniformMat3Transposes(t *testing.T) {
	m := f32.Mat3{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}
	b := NewBuilder()
	if err := b.UniformMat3("u_normal", m); err != nil {
		t.Fatal(err)
	}
	got := floatsOf(b.Buffers()[0])
	want := []float32{1, 4, 7, 2, 5, 8, 3, 6, 9}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("payload = %v, want %v", got, want)
		}
	}
}

func TestUniformVectors(t *testing.T) {
	b := NewBuilder()
	_ = b.UniformVec2("a", f32.Vec2{1, 2})
	_ = b.UniformVec3("b", f32.Vec3{1, 2, 3})
	_ = b.UniformVec4("c", f32.Vec4{1, 2, 3, 4})
	for i, c := range b.Commands() {
		u := c.(wire.Uniform)
		if n := u.Buffer.Shape[0]; n != i+2 {
			t.Errorf("uniform %s has %d components, want %d", u.Uniform, n, i+2)
		}
	}
	if err := b.UniformVec3("", f32.Vec3{}); err == nil {
		t.Error("empty name accepted")
	}
}
