package resource

import (
	"slices"
	"testing"
)

func TestAllocateSequence(t *testing.T) {
	r := NewRegistry()
	kinds := []Kind{Buffer, Program, Shader, Shader, VertexArray, Texture, Framebuffer, Buffer}
	for i, k := range kinds {
		if got := r.Allocate(k); got != Handle(i) {
			t.Fatalf("allocation %d = %d, want %d", i+1, got, i)
		}
	}
	if r.Len() != len(kinds) {
		t.Errorf("Len() = %d, want %d", r.Len(), len(kinds))
	}
}

func TestRegistriesAreIndependent(t *testing.T) {
	a, b := NewRegistry(), NewRegistry()
	a.Allocate(Buffer)
	a.Allocate(Buffer)
	if got := b.Allocate(Program); got != 0 {
		t.Errorf("fresh registry allocated %d, want 0", got)
	}
}

func TestKindLookup(t *testing.T) {
	r := NewRegistry()
	buf := r.Allocate(Buffer)
	prog := r.Allocate(Program)

	if k, ok := r.Kind(prog); !ok || k != Program {
		t.Errorf("Kind(%d) = %v, %v; want Program, true", prog, k, ok)
	}
	if k, ok := r.Kind(buf); !ok || k != Buffer {
		t.Errorf("Kind(%d) = %v, %v; want Buffer, true", buf, k, ok)
	}
	for _, h := range []Handle{None, 2, 100} {
		if r.Issued(h) {
			t.Errorf("Issued(%d) = true, want false", h)
		}
	}
}

func TestCountAndHandles(t *testing.T) {
	r := NewRegistry()
	r.Allocate(Shader)
	r.Allocate(Program)
	r.Allocate(Shader)

	if got := r.Count(Shader); got != 2 {
		t.Errorf("Count(Shader) = %d, want 2", got)
	}
	if got := r.Handles(Shader); !slices.Equal(got, []Handle{0, 2}) {
		t.Errorf("Handles(Shader) = %v, want [0 2]", got)
	}
	if got := r.Handles(Texture); len(got) != 0 {
		t.Errorf("Handles(Texture) = %v, want empty", got)
	}
}

func TestNone(t *testing.T) {
	if !None.IsNone() || Handle(0).IsNone() {
		t.Error("IsNone mismatch")
	}
	if Kind(42).String() != "Kind(42)" {
		t.Errorf("unknown kind string = %q", Kind(42).String())
	}
}

func BenchmarkAllocate(b *testing.B) {
	for b.Loop() {
		r := NewRegistry()
		for range 64 {
			r.Allocate(Buffer)
		}
	}
}
