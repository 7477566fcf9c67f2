package glbatch

import (
	"golang.org/x/image/math/f32"

	"github.com/gogpu/glbatch/arraybuf"
)

// f32.Mat3 and f32.Mat4 are row-major. GLSL reads matrix uniforms
// column-major and the executor never transposes, so the helpers below
// transpose on the way in.

// UniformMat4 sets a mat4 uniform from a row-major matrix.
func (b *Builder) UniformMat4(name string, m f32.Mat4) error {
	return b.UniformMatrix(name, arraybuf.MustNew(columnMajor(m[:], 4), 4, 4))
}

// UniformMat3 sets a mat3 uniform from a row-major matrix.
func (b *Builder) UniformMat3(name string, m f32.Mat3) error {
	return b.UniformMatrix(name, arraybuf.MustNew(columnMajor(m[:], 3), 3, 3))
}

// UniformVec2 sets a vec2 uniform.
func (b *Builder) UniformVec2(name string, v f32.Vec2) error {
	return b.Uniform(name, arraybuf.Of(v[:]))
}

// UniformVec3 sets a vec3 uniform.
func (b *Builder) UniformVec3(name string, v f32.Vec3) error {
	return b.Uniform(name, arraybuf.Of(v[:]))
}

// UniformVec4 sets a vec4 uniform.
func (b *Builder) UniformVec4(name string, v f32.Vec4) error {
	return b.Uniform(name, arraybuf.Of(v[:]))
}

func columnMajor(rowMajor []float32, n int) []float32 {
	out := make([]float32, n*n)
	for r := range n {
		for c := range n {
			out[c*n+r] = rowMajor[r*n+c]
		}
	}
	return out
}
