// Package resource mints the integer handles that name GPU objects across
// the process boundary.
//
// Handles are allocated from a single counter per Registry, shared by all
// resource kinds, starting at 0. A handle is also the index of its entry in
// the registry's backing slice. Handles are never reused and never freed;
// the executor owns the objects they denote.
package resource

import "fmt"

// Handle identifies a GPU-side object created by an earlier command.
type Handle int32

// None is the sentinel handle meaning "no resource". Binding None unbinds.
const None Handle = -1

// IsNone reports whether h is the None sentinel.
func (h Handle) IsNone() bool { return h == None }

// Kind classifies the object a handle was minted for.
type Kind uint8

const (
	Buffer Kind = iota
	Program
	Shader
	VertexArray
	Texture
	Framebuffer
)

var kindNames = [...]string{
	Buffer:      "Buffer",
	Program:     "Program",
	Shader:      "Shader",
	VertexArray: "VertexArray",
	Texture:     "Texture",
	Framebuffer: "Framebuffer",
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Registry allocates handles for one session.
//
// The registry records which kind each handle was minted for, for
// bookkeeping only. Later commands are not checked against it.
//
// Registry is not safe for concurrent use. If concurrent access is needed,
// external synchronization must be provided.
type Registry struct {
	kinds []Kind
}

// NewRegistry creates an empty registry. The first Allocate returns 0.
func NewRegistry() *Registry {
	return &Registry{kinds: make([]Kind, 0, 32)}
}

// Allocate returns the next handle and records its kind.
func (r *Registry) Allocate(kind Kind) Handle {
	r.kinds = append(r.kinds, kind)
	// #nosec G115 -- handle count is bounded by available memory, well under int32 max
	return Handle(int32(len(r.kinds) - 1))
}

// Len returns the number of handles issued so far.
func (r *Registry) Len() int {
	return len(r.kinds)
}

// Kind returns the kind h was allocated for.
// The second result is false if h was never issued by this registry.
func (r *Registry) Kind(h Handle) (Kind, bool) {
	if h < 0 || int(h) >= len(r.kinds) {
		return 0, false
	}
	return r.kinds[h], true
}

// Issued reports whether h was allocated by this registry.
func (r *Registry) Issued(h Handle) bool {
	_, ok := r.Kind(h)
	return ok
}

// Count returns the number of handles issued for kind.
func (r *Registry) Count(kind Kind) int {
	n := 0
	for _, k := range r.kinds {
		if k == kind {
			n++
		}
	}
	return n
}

// Handles returns the handles issued for kind in allocation order.
func (r *Registry) Handles(kind Kind) []Handle {
	var out []Handle
	for i, k := range r.kinds {
		if k == kind {
			// #nosec G115 -- bounded by Allocate
			out = append(out, Handle(int32(i)))
		}
	}
	return out
}
