package glbatch

import (
	"errors"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/glsl"
	"github.com/gogpu/naga/ir"

	"github.com/gogpu/glbatch/internal/shadercache"
)

type translation struct {
	vs, fs string
	err    error
}

// translations memoizes TranslateWGSL. Failures are cached too; the
// translator is deterministic.
var translations = shadercache.New[translation](64)

// ClearTranslationCache drops every memoized TranslateWGSL result, e.g.
// after a long-running process has retired its shader set.
func ClearTranslationCache() {
	translations.Clear()
}

// WithEntryPoints selects the vertex and fragment entry points compiled by
// CreateProgramWGSL. An empty name picks the first entry point of that
// stage.
func WithEntryPoints(vertex, fragment string) ComposeOption {
	return func(o *composeOptions) {
		o.vsEntry, o.fsEntry = vertex, fragment
	}
}

// TranslateWGSL translates one vertex and one fragment entry point of a
// WGSL module to GLSL ES 3.00 for WebGL 2. Empty entry names pick the first
// entry point of each stage. Vertex output is adjusted from WebGPU to GL
// clip space and writes gl_PointSize. Results are cached by source and
// entry names.
func TranslateWGSL(source, vsEntry, fsEntry string) (vs, fs string, err error) {
	key := shadercache.Key(source, vsEntry, fsEntry)
	t := translations.GetOrCreate(key, func() translation {
		vs, fs, err := translateWGSL(source, vsEntry, fsEntry)
		return translation{vs, fs, err}
	})
	return t.vs, t.fs, t.err
}

func translateWGSL(source, vsEntry, fsEntry string) (vs, fs string, err error) {
	ast, err := naga.Parse(source)
	if err != nil {
		return "", "", &ShaderTranslationError{Stage: "parse", Err: err}
	}
	module, err := naga.LowerWithSource(ast, source)
	if err != nil {
		return "", "", &ShaderTranslationError{Stage: "parse", Err: err}
	}

	vsName, err := entryPoint(module, ir.StageVertex, vsEntry)
	if err != nil {
		return "", "", &ShaderTranslationError{Stage: "vertex", Err: err}
	}
	fsName, err := entryPoint(module, ir.StageFragment, fsEntry)
	if err != nil {
		return "", "", &ShaderTranslationError{Stage: "fragment", Err: err}
	}

	if vs, err = compileGLSL(module, vsName); err != nil {
		return "", "", &ShaderTranslationError{Stage: "vertex", Err: err}
	}
	if fs, err = compileGLSL(module, fsName); err != nil {
		return "", "", &ShaderTranslationError{Stage: "fragment", Err: err}
	}
	return vs, fs, nil
}

var errNoEntryPoint = errors.New("no matching entry point")

func entryPoint(m *ir.Module, stage ir.ShaderStage, name string) (string, error) {
	for i := range m.EntryPoints {
		ep := &m.EntryPoints[i]
		if ep.Stage != stage {
			continue
		}
		if name == "" || ep.Name == name {
			return ep.Name, nil
		}
	}
	if name != "" {
		return "", errors.New("entry point " + name + " not found")
	}
	return "", errNoEntryPoint
}

func compileGLSL(m *ir.Module, entry string) (string, error) {
	opts := glsl.DefaultOptions()
	opts.LangVersion = glsl.VersionES300
	opts.EntryPoint = entry
	opts.WriterFlags = glsl.WriterFlagAdjustCoordinateSpace | glsl.WriterFlagForcePointSize
	src, _, err := glsl.Compile(m, opts)
	return src, err
}

// CreateProgramWGSL translates a WGSL module with TranslateWGSL and builds
// a program from it with CreateProgramExt. A module that does not
// translate returns a *ShaderTranslationError and leaves the batch
// unchanged.
func (b *Builder) CreateProgramWGSL(source string, opts ...ComposeOption) (Handle, error) {
	o := newComposeOptions(opts)
	vs, fs, err := TranslateWGSL(source, o.vsEntry, o.fsEntry)
	if err != nil {
		return None, err
	}
	return b.CreateProgramExt(vs, fs, opts...)
}
