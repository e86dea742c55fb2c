package scene

import (
	"github.com/go-gl/mathgl/mgl64"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// AmbientLight lights every surface uniformly
type AmbientLight struct {
	Color     colorful.Color
	Intensity float64
}

func (*AmbientLight) isNode() {}

// ShadowConfig describes the shadow map of a light
type ShadowConfig struct {
	MapWidth  int
	MapHeight int
	Near      float64
	Far       float64
}

// PointLight emits from a point with linear falloff to zero at Distance (0 = infinite)
type PointLight struct {
	Color      colorful.Color
	Intensity  float64
	Distance   float64
	Position   mgl64.Vec3
	CastShadow bool
	Shadow     ShadowConfig
}

func (*PointLight) isNode() {}

// NewPointLight returns a light with the default 512×512 shadow map
func NewPointLight(c colorful.Color, intensity, distance float64) *PointLight {
	return &PointLight{
		Color:     c,
		Intensity: intensity,
		Distance:  distance,
		Shadow:    ShadowConfig{MapWidth: 512, MapHeight: 512, Near: 0.5, Far: 500},
	}
}

// Attenuation returns the falloff factor at distance d from the light
func (l *PointLight) Attenuation(d float64) float64 {
	if l.Distance <= 0 {
		return 1
	}
	if d >= l.Distance {
		return 0
	}
	return 1 - d/l.Distance
}

// ShadowRange reports whether distance d falls inside the shadow camera's clip range
func (l *PointLight) ShadowRange(d float64) bool {
	return d >= l.Shadow.Near && d <= l.Shadow.Far
}
