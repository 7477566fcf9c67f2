package main

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/glbatch"
	"github.com/gogpu/glbatch/arraybuf"
)

// Scene is a declarative description of one frame: the resources it needs
// and the draws that render it.
type Scene struct {
	Name         string            `yaml:"name"`
	Width        int               `yaml:"width"`
	Height       int               `yaml:"height"`
	ClearColor   []float32         `yaml:"clear_color"`
	DepthTest    bool              `yaml:"depth_test"`
	CullFace     string            `yaml:"cull_face"`
	Blend        *BlendSpec        `yaml:"blend,omitempty"`
	Programs     []ProgramSpec     `yaml:"programs"`
	Buffers      []BufferSpec      `yaml:"buffers"`
	VertexArrays []VertexArraySpec `yaml:"vertex_arrays"`
	Textures     []TextureSpec     `yaml:"textures"`
	Draws        []DrawSpec        `yaml:"draws"`

	dir string // directory of the scene file, for texture paths
}

// BlendSpec enables blending with one factor pair.
type BlendSpec struct {
	Src      string `yaml:"src"`
	Dst      string `yaml:"dst"`
	Equation string `yaml:"equation"`
}

// ProgramSpec is either a GLSL vertex/fragment pair or a WGSL module.
type ProgramSpec struct {
	Name            string         `yaml:"name"`
	Vertex          string         `yaml:"vertex"`
	Fragment        string         `yaml:"fragment"`
	WGSL            string         `yaml:"wgsl"`
	AttribLocations map[string]int `yaml:"attrib_locations"`
}

// ArraySpec is a numeric array written inline.
type ArraySpec struct {
	DType string    `yaml:"dtype"`
	Shape []int     `yaml:"shape"`
	Data  []float64 `yaml:"data"`
}

type BufferSpec struct {
	Name   string    `yaml:"name"`
	Target string    `yaml:"target"`
	Usage  string    `yaml:"usage"`
	Data   ArraySpec `yaml:"data"`
}

type BindingSpec struct {
	Buffer     string   `yaml:"buffer"`
	Layout     string   `yaml:"layout"`
	Attributes []string `yaml:"attributes"`
}

type VertexArraySpec struct {
	Name     string        `yaml:"name"`
	Program  string        `yaml:"program"`
	Bindings []BindingSpec `yaml:"bindings"`
	Indices  *ArraySpec    `yaml:"indices,omitempty"`
}

// TextureSpec loads an image file, relative to the scene file.
type TextureSpec struct {
	Name    string `yaml:"name"`
	File    string `yaml:"file"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Mipmaps *bool  `yaml:"mipmaps,omitempty"`
}

type UniformSpec struct {
	Name   string    `yaml:"name"`
	Value  []float64 `yaml:"value"`
	Int    bool      `yaml:"int"`
	Matrix []float64 `yaml:"matrix"` // column-major, 4, 9 or 16 values
}

type DrawSpec struct {
	Program     string        `yaml:"program"`
	VertexArray string        `yaml:"vertex_array"`
	Textures    []string      `yaml:"textures"`
	Uniforms    []UniformSpec `yaml:"uniforms"`
	Mode        string        `yaml:"mode"`
	First       int           `yaml:"first"`
	Count       int           `yaml:"count"`
	IndexType   string        `yaml:"index_type"`
	Offset      int           `yaml:"offset"`
	Instances   int           `yaml:"instances"`
}

// LoadScene reads a scene from a YAML file.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene file: %w", err)
	}
	s, err := ParseScene(data)
	if err != nil {
		return nil, err
	}
	s.dir = filepath.Dir(path)
	return s, nil
}

// ParseScene decodes a scene and applies defaults.
func ParseScene(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scene file: %w", err)
	}
	if s.Width == 0 {
		s.Width = 640
	}
	if s.Height == 0 {
		s.Height = 480
	}
	if len(s.ClearColor) == 0 {
		s.ClearColor = []float32{0, 0, 0, 1}
	}
	if len(s.ClearColor) != 4 {
		return nil, fmt.Errorf("scene: clear_color needs 4 components, got %d", len(s.ClearColor))
	}
	return &s, nil
}

// resources maps scene names to handles.
type resources struct {
	programs map[string]glbatch.Handle
	buffers  map[string]glbatch.Handle
	arrays   map[string]glbatch.Handle
	textures map[string]glbatch.Handle
}

func lookup(kind string, m map[string]glbatch.Handle, name string) (glbatch.Handle, error) {
	h, ok := m[name]
	if !ok {
		return glbatch.None, fmt.Errorf("scene: unknown %s %q", kind, name)
	}
	return h, nil
}

// Build records the scene into b as two dispatches: a one-shot setup
// batch that creates every resource, then the frame itself, kept for
// replay and replacing earlier frames.
func (s *Scene) Build(b *glbatch.Builder) error {
	res, err := s.setup(b)
	if err != nil {
		b.Discard()
		return err
	}
	b.Dispatch(true, false)

	if err := s.frame(b, res); err != nil {
		b.Discard()
		return err
	}
	b.Dispatch(false, true)
	return nil
}

func (s *Scene) setup(b *glbatch.Builder) (*resources, error) {
	res := &resources{
		programs: make(map[string]glbatch.Handle),
		buffers:  make(map[string]glbatch.Handle),
		arrays:   make(map[string]glbatch.Handle),
		textures: make(map[string]glbatch.Handle),
	}

	for i, p := range s.Programs {
		opts := []glbatch.ComposeOption{glbatch.WithoutAutoDispatch()}
		if len(p.AttribLocations) > 0 {
			opts = append(opts, glbatch.WithAttribLocations(p.AttribLocations))
		}
		var (
			h   glbatch.Handle
			err error
		)
		if p.WGSL != "" {
			h, err = b.CreateProgramWGSL(p.WGSL, opts...)
		} else {
			h, err = b.CreateProgramExt(p.Vertex, p.Fragment, opts...)
		}
		if err != nil {
			return nil, fmt.Errorf("scene: program %d (%s): %w", i, p.Name, err)
		}
		res.programs[p.Name] = h
	}

	for i, bs := range s.Buffers {
		target := glbatch.ArrayBuffer
		if bs.Target != "" {
			t, err := glbatch.ParseBufferTarget(bs.Target)
			if err != nil {
				return nil, fmt.Errorf("scene: buffer %d (%s): %w", i, bs.Name, err)
			}
			target = t
		}
		usage := glbatch.StaticDraw
		if bs.Usage != "" {
			u, err := glbatch.ParseBufferUsage(bs.Usage)
			if err != nil {
				return nil, fmt.Errorf("scene: buffer %d (%s): %w", i, bs.Name, err)
			}
			usage = u
		}
		data, err := bs.Data.Array("float32")
		if err != nil {
			return nil, fmt.Errorf("scene: buffer %d (%s): %w", i, bs.Name, err)
		}
		h, err := b.CreateBufferExt(target, data, usage, glbatch.WithoutAutoDispatch())
		if err != nil {
			return nil, fmt.Errorf("scene: buffer %d (%s): %w", i, bs.Name, err)
		}
		res.buffers[bs.Name] = h
	}

	for i, va := range s.VertexArrays {
		prog, err := lookup("program", res.programs, va.Program)
		if err != nil {
			return nil, fmt.Errorf("scene: vertex array %d (%s): %w", i, va.Name, err)
		}
		bindings := make([]glbatch.VertexBinding, len(va.Bindings))
		for j, bd := range va.Bindings {
			buf, err := lookup("buffer", res.buffers, bd.Buffer)
			if err != nil {
				return nil, fmt.Errorf("scene: vertex array %d (%s): %w", i, va.Name, err)
			}
			bindings[j] = glbatch.VertexBinding{Buffer: buf, Layout: bd.Layout, Attributes: bd.Attributes}
		}
		var indices *arraybuf.Array
		if va.Indices != nil {
			if indices, err = va.Indices.Array("uint16"); err != nil {
				return nil, fmt.Errorf("scene: vertex array %d (%s) indices: %w", i, va.Name, err)
			}
		}
		h, err := b.CreateVertexArrayExt(prog, bindings, indices, glbatch.WithoutAutoDispatch())
		if err != nil {
			return nil, fmt.Errorf("scene: vertex array %d (%s): %w", i, va.Name, err)
		}
		res.arrays[va.Name] = h
	}

	for i, ts := range s.Textures {
		img, err := s.loadImage(ts.File)
		if err != nil {
			return nil, fmt.Errorf("scene: texture %d (%s): %w", i, ts.Name, err)
		}
		opts := []glbatch.ComposeOption{glbatch.WithoutAutoDispatch()}
		if ts.Width > 0 || ts.Height > 0 {
			opts = append(opts, glbatch.WithImageSize(ts.Width, ts.Height))
		}
		if ts.Mipmaps != nil && !*ts.Mipmaps {
			opts = append(opts, glbatch.WithoutMipmaps())
		}
		h, err := b.CreateTextureFromImage(img, opts...)
		if err != nil {
			return nil, fmt.Errorf("scene: texture %d (%s): %w", i, ts.Name, err)
		}
		res.textures[ts.Name] = h
	}
	return res, nil
}

func (s *Scene) loadImage(file string) (image.Image, error) {
	if !filepath.IsAbs(file) && s.dir != "" {
		file = filepath.Join(s.dir, file)
	}
	f, err := os.Open(file) // #nosec G304 -- path comes from the scene author
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", file, err)
	}
	return img, nil
}

func (s *Scene) frame(b *glbatch.Builder, res *resources) error {
	b.Viewport(0, 0, s.Width, s.Height)
	c := s.ClearColor
	b.ClearColor(c[0], c[1], c[2], c[3])

	bits := glbatch.ColorBufferBit
	if s.DepthTest {
		bits |= glbatch.DepthBufferBit
		_ = b.Enable(glbatch.DepthTest)
	}
	if s.CullFace != "" {
		mode, err := glbatch.ParseCullFaceMode(s.CullFace)
		if err != nil {
			return fmt.Errorf("scene: cull_face: %w", err)
		}
		_ = b.Enable(glbatch.CullFace)
		_ = b.CullFace(mode)
	}
	if s.Blend != nil {
		if err := s.Blend.apply(b); err != nil {
			return err
		}
	}
	_ = b.Clear(bits)

	for i, d := range s.Draws {
		if err := d.record(b, res); err != nil {
			return fmt.Errorf("scene: draw %d: %w", i, err)
		}
	}
	return nil
}

func (bs *BlendSpec) apply(b *glbatch.Builder) error {
	src, err := glbatch.ParseBlendFactor(bs.Src)
	if err != nil {
		return fmt.Errorf("scene: blend: %w", err)
	}
	dst, err := glbatch.ParseBlendFactor(bs.Dst)
	if err != nil {
		return fmt.Errorf("scene: blend: %w", err)
	}
	_ = b.Enable(glbatch.Blend)
	_ = b.BlendFunc(src, dst)
	if bs.Equation != "" {
		eq, err := glbatch.ParseBlendEquation(bs.Equation)
		if err != nil {
			return fmt.Errorf("scene: blend: %w", err)
		}
		_ = b.BlendEquation(eq)
	}
	return nil
}

func (d *DrawSpec) record(b *glbatch.Builder, res *resources) error {
	prog, err := lookup("program", res.programs, d.Program)
	if err != nil {
		return err
	}
	vao, err := lookup("vertex array", res.arrays, d.VertexArray)
	if err != nil {
		return err
	}
	mode := glbatch.Triangles
	if d.Mode != "" {
		if mode, err = glbatch.ParseDrawMode(d.Mode); err != nil {
			return err
		}
	}

	b.UseProgram(prog)
	b.BindVertexArray(vao)
	for unit, name := range d.Textures {
		tex, err := lookup("texture", res.textures, name)
		if err != nil {
			return err
		}
		if err := b.ActiveTexture(unit); err != nil {
			return err
		}
		_ = b.BindTexture(glbatch.Texture2D, tex)
	}
	for _, u := range d.Uniforms {
		if err := u.record(b); err != nil {
			return err
		}
	}

	if d.IndexType != "" {
		typ, err := glbatch.ParseIndexType(d.IndexType)
		if err != nil {
			return err
		}
		if d.Instances > 0 {
			return b.DrawElementsInstanced(mode, d.Count, typ, d.Offset, d.Instances)
		}
		return b.DrawElements(mode, d.Count, typ, d.Offset)
	}
	if d.Instances > 0 {
		return b.DrawArraysInstanced(mode, d.First, d.Count, d.Instances)
	}
	return b.DrawArrays(mode, d.First, d.Count)
}

func (u *UniformSpec) record(b *glbatch.Builder) error {
	if len(u.Matrix) > 0 {
		n := 0
		switch len(u.Matrix) {
		case 4:
			n = 2
		case 9:
			n = 3
		case 16:
			n = 4
		default:
			return fmt.Errorf("uniform %s: matrix needs 4, 9 or 16 values, got %d", u.Name, len(u.Matrix))
		}
		return b.UniformMatrix(u.Name, arraybuf.MustNew(convert[float32](u.Matrix), n, n))
	}
	if u.Int {
		return b.Uniform(u.Name, arraybuf.Of(convert[int32](u.Value)))
	}
	return b.Uniform(u.Name, arraybuf.Of(convert[float32](u.Value)))
}

// number is the subset of arraybuf element types a YAML float converts to.
type number interface {
	int8 | uint8 | int16 | uint16 | int32 | uint32 | float32 | float64
}

func convert[T number](data []float64) []T {
	out := make([]T, len(data))
	for i, v := range data {
		out[i] = T(v)
	}
	return out
}

func shaped[T number](data []float64, shape []int) (*arraybuf.Array, error) {
	return arraybuf.New(convert[T](data), shape...)
}

// Array converts the inline data to an array of its dtype, or def when
// none is given.
func (a *ArraySpec) Array(def string) (*arraybuf.Array, error) {
	name := a.DType
	if name == "" {
		name = def
	}
	dt, err := arraybuf.ParseDType(name)
	if err != nil {
		return nil, err
	}
	switch dt {
	case arraybuf.Int8:
		return shaped[int8](a.Data, a.Shape)
	case arraybuf.Uint8:
		return shaped[uint8](a.Data, a.Shape)
	case arraybuf.Int16:
		return shaped[int16](a.Data, a.Shape)
	case arraybuf.Uint16:
		return shaped[uint16](a.Data, a.Shape)
	case arraybuf.Int32:
		return shaped[int32](a.Data, a.Shape)
	case arraybuf.Uint32:
		return shaped[uint32](a.Data, a.Shape)
	case arraybuf.Float32:
		return shaped[float32](a.Data, a.Shape)
	default:
		return shaped[float64](a.Data, a.Shape)
	}
}
