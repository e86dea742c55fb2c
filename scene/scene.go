package scene

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Node is anything that can live in a Scene
type Node interface {
	isNode()
}

// Scene is a flat, ordered scene graph
type Scene struct {
	Background colorful.Color
	nodes      []Node
}

// New creates an empty scene with a black background
func New() *Scene {
	return &Scene{}
}

// Add appends nodes; adding a node twice is a no-op
func (s *Scene) Add(nodes ...Node) {
	for _, n := range nodes {
		if s.index(n) < 0 {
			s.nodes = append(s.nodes, n)
		}
	}
}

// Remove detaches a node, reporting whether it was present
func (s *Scene) Remove(n Node) bool {
	i := s.index(n)
	if i < 0 {
		return false
	}
	s.nodes = append(s.nodes[:i], s.nodes[i+1:]...)
	return true
}

// Len returns the number of nodes
func (s *Scene) Len() int {
	return len(s.nodes)
}

// Meshes returns the meshes in insertion order
func (s *Scene) Meshes() []*Mesh {
	var out []*Mesh
	for _, n := range s.nodes {
		if m, ok := n.(*Mesh); ok {
			out = append(out, m)
		}
	}
	return out
}

// AmbientLights returns the ambient lights in insertion order
func (s *Scene) AmbientLights() []*AmbientLight {
	var out []*AmbientLight
	for _, n := range s.nodes {
		if l, ok := n.(*AmbientLight); ok {
			out = append(out, l)
		}
	}
	return out
}

// PointLights returns the point lights in insertion order
func (s *Scene) PointLights() []*PointLight {
	var out []*PointLight
	for _, n := range s.nodes {
		if l, ok := n.(*PointLight); ok {
			out = append(out, l)
		}
	}
	return out
}

func (s *Scene) index(n Node) int {
	for i, x := range s.nodes {
		if x == n {
			return i
		}
	}
	return -1
}
