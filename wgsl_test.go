package glbatch

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/glbatch/wire"
)

const triangleWGSL = `
@vertex
fn vs_main(@location(0) pos: vec4<f32>) -> @builtin(position) vec4<f32> {
    return pos;
}

@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return vec4<f32>(1.0, 0.0, 0.0, 1.0);
}
`

func TestTranslateWGSL(t *testing.T) {
	vs, fs, err := TranslateWGSL(triangleWGSL, "", "")
	if err != nil {
		t.Fatal(err)
	}
	for stage, src := range map[string]string{"vertex": vs, "fragment": fs} {
		if !strings.Contains(src, "#version 300 es") {
			t.Errorf("%s shader lacks a GLSL ES 3.00 header:\n%s", stage, src)
		}
	}
}

func TestTranslateWGSLCached(t *testing.T) {
	src := triangleWGSL + "// cached\n"
	vs1, fs1, err := TranslateWGSL(src, "vs_main", "fs_main")
	if err != nil {
		t.Fatal(err)
	}
	before := translations.Stats().Hits
	vs2, fs2, err := TranslateWGSL(src, "vs_main", "fs_main")
	if err != nil {
		t.Fatal(err)
	}
	if vs1 != vs2 || fs1 != fs2 {
		t.Error("cached translation differs")
	}
	if translations.Stats().Hits != before+1 {
		t.Error("second translation missed the cache")
	}
}

func TestClearTranslationCache(t *testing.T) {
	if _, _, err := TranslateWGSL(triangleWGSL, "", ""); err != nil {
		t.Fatal(err)
	}
	ClearTranslationCache()
	if n := translations.Len(); n != 0 {
		t.Fatalf("%d translations cached after clear", n)
	}
	misses := translations.Stats().Misses
	if _, _, err := TranslateWGSL(triangleWGSL, "", ""); err != nil {
		t.Fatal(err)
	}
	if translations.Stats().Misses != misses+1 {
		t.Error("translation after clear was served from the cache")
	}
}

func TestTranslateWGSLErrors(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		vs, fs string
		stage  string
	}{
		{"syntax", "fn broken( {", "", "", "parse"},
		{"missing vertex entry", triangleWGSL, "nope", "", "vertex"},
		{"missing fragment entry", triangleWGSL, "", "nope", "fragment"},
		{"no fragment stage", `
@vertex
fn vs_main(@location(0) pos: vec4<f32>) -> @builtin(position) vec4<f32> {
    return pos;
}
`, "", "", "fragment"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := TranslateWGSL(tt.src, tt.vs, tt.fs)
			var te *ShaderTranslationError
			if !errors.As(err, &te) {
				t.Fatalf("err = %v, want *ShaderTranslationError", err)
			}
			if te.Stage != tt.stage {
				t.Errorf("Stage = %q, want %q", te.Stage, tt.stage)
			}
		})
	}
}

func TestCreateProgramWGSL(t *testing.T) {
	b, mem := newTestBuilder(t)
	if _, err := b.CreateProgramWGSL(triangleWGSL, WithEntryPoints("vs_main", "fs_main")); err != nil {
		t.Fatal(err)
	}
	msg, ok := mem.Last()
	if !ok {
		t.Fatal("nothing dispatched")
	}
	src := msg.Commands[1].(wire.ShaderSource)
	if !strings.HasPrefix(strings.TrimSpace(src.Source), "#version 300 es") {
		t.Errorf("vertex source does not start with the version line:\n%s", src.Source)
	}
}

func TestCreateProgramWGSLInvalid(t *testing.T) {
	b, mem := newTestBuilder(t)
	if _, err := b.CreateProgramWGSL("not wgsl at all {"); err == nil {
		t.Fatal("invalid module accepted")
	}
	if b.Len() != 0 || mem.Len() != 0 || b.Registry().Len() != 0 {
		t.Error("failed translation changed the batch")
	}
}
