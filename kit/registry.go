package kit

import (
	"github.com/lixenwraith/drumkit/scene"
)

// TagPad is the mesh tag holding a pad's key
const TagPad = "pad"

// Registry maps pad keys to pads
// Populated only by Build and read-only afterwards
type Registry struct {
	pads  map[rune]*Pad
	order []*Pad
}

func newRegistry() *Registry {
	return &Registry{pads: make(map[rune]*Pad)}
}

func (r *Registry) insert(p *Pad) {
	r.pads[p.Key] = p
	r.order = append(r.order, p)
}

// Get returns the pad registered under key
func (r *Registry) Get(key rune) (*Pad, bool) {
	p, ok := r.pads[key]
	return p, ok
}

// Len returns the number of pads
func (r *Registry) Len() int {
	return len(r.order)
}

// Pads returns the pads in layout order
func (r *Registry) Pads() []*Pad {
	out := make([]*Pad, len(r.order))
	copy(out, r.order)
	return out
}

// Meshes returns the pad meshes in layout order
func (r *Registry) Meshes() []*scene.Mesh {
	out := make([]*scene.Mesh, len(r.order))
	for i, p := range r.order {
		out[i] = p.Mesh
	}
	return out
}

// ByMesh resolves a mesh to its pad through the mesh's key tag
func (r *Registry) ByMesh(m *scene.Mesh) (*Pad, bool) {
	if m == nil {
		return nil, false
	}
	tag, ok := m.Tag(TagPad)
	if !ok {
		return nil, false
	}
	runes := []rune(tag)
	if len(runes) != 1 {
		return nil, false
	}
	return r.Get(runes[0])
}
