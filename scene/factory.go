package scene

import (
	"errors"
	"fmt"
)

// ErrInvalidGeometry is returned when a shape cannot be allocated
var ErrInvalidGeometry = errors.New("invalid geometry")

// Factory allocates visual objects
type Factory interface {
	NewCylinder(g CylinderGeometry, m Material) (*Mesh, error)
}

// DefaultFactory allocates meshes for the software renderer
type DefaultFactory struct{}

// NewCylinder validates the geometry and returns a mesh at the origin with identity rotation
func (DefaultFactory) NewCylinder(g CylinderGeometry, m Material) (*Mesh, error) {
	switch {
	case g.Height <= 0:
		return nil, fmt.Errorf("cylinder height %v: %w", g.Height, ErrInvalidGeometry)
	case g.RadiusTop < 0 || g.RadiusBottom < 0 || g.RadiusTop+g.RadiusBottom == 0:
		return nil, fmt.Errorf("cylinder radii %v/%v: %w", g.RadiusTop, g.RadiusBottom, ErrInvalidGeometry)
	case g.RadialSegments < 3:
		return nil, fmt.Errorf("cylinder segments %d: %w", g.RadialSegments, ErrInvalidGeometry)
	}
	return &Mesh{Geometry: g, Material: m}, nil
}
