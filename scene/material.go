package scene

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Material is a physically-flavoured surface description
type Material struct {
	Color     colorful.Color
	Roughness float64 // 0 = mirror, 1 = fully diffuse
	Metalness float64 // 0 = dielectric, 1 = metal (specular tinted by Color)
}

// NewMaterial parses a "#rrggbb" color and validates the surface parameters
func NewMaterial(hex string, roughness, metalness float64) (Material, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Material{}, fmt.Errorf("material color %q: %w", hex, err)
	}
	if roughness < 0 || roughness > 1 || metalness < 0 || metalness > 1 {
		return Material{}, fmt.Errorf("material %s: roughness %.2f / metalness %.2f out of [0,1]", hex, roughness, metalness)
	}
	return Material{Color: c, Roughness: roughness, Metalness: metalness}, nil
}

// MustMaterial is NewMaterial for compile-time constant inputs
func MustMaterial(hex string, roughness, metalness float64) Material {
	m, err := NewMaterial(hex, roughness, metalness)
	if err != nil {
		panic(err)
	}
	return m
}
