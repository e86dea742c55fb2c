package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/drumkit/constant"
	"github.com/lixenwraith/drumkit/scene"
	"github.com/lixenwraith/drumkit/vmath"
)

// dielectricF0 is the specular reflectance of non-metals at normal incidence
const dielectricF0 = 0.04

// lighting is the per-frame snapshot of the scene's lights and shadow casters
type lighting struct {
	ambient []*scene.AmbientLight
	points  []*scene.PointLight
	casters []*scene.Mesh
}

func newLighting(sc *scene.Scene) lighting {
	l := lighting{
		ambient: sc.AmbientLights(),
		points:  sc.PointLights(),
	}
	for _, m := range sc.Meshes() {
		if m.CastShadow {
			l.casters = append(l.casters, m)
		}
	}
	return l
}

// shade computes the color of a surface hit seen from eye
// Ambient term plus, per point light, Lambert diffuse and a Blinn-Phong highlight
// whose sharpness follows roughness and whose tint follows metalness
func (l *lighting) shade(hit scene.Intersection, eye mgl64.Vec3) colorful.Color {
	mat := hit.Mesh.Material
	n := hit.Normal
	v := eye.Sub(hit.Point).Normalize()
	// Back faces seen from inside a cap or a hollow lateral surface
	if n.Dot(v) < 0 {
		n = n.Mul(-1)
	}

	out := colorful.Color{}
	for _, a := range l.ambient {
		out = add(out, scale(modulate(mat.Color, a.Color), a.Intensity))
	}

	diffuseColor := scale(mat.Color, 1-mat.Metalness)
	specColor := add(scale(ColorWhite, dielectricF0*(1-mat.Metalness)), scale(mat.Color, mat.Metalness))
	shininess := 2/math.Max(mat.Roughness*mat.Roughness, 1e-3) - 2

	for _, p := range l.points {
		toLight := p.Position.Sub(hit.Point)
		dist := toLight.Len()
		if dist == 0 {
			continue
		}
		ld := toLight.Mul(1 / dist)
		ndotl := n.Dot(ld)
		if ndotl <= 0 {
			continue
		}
		att := p.Attenuation(dist)
		if att == 0 {
			continue
		}
		if p.CastShadow && hit.Mesh.ReceiveShadow && p.ShadowRange(dist) && l.occluded(hit.Point, n, ld, dist) {
			continue
		}

		radiance := scale(p.Color, p.Intensity*att)
		diffuse := scale(diffuseColor, ndotl)

		h := ld.Add(v).Normalize()
		spec := math.Pow(math.Max(n.Dot(h), 0), math.Max(shininess, 1)) * (1 - mat.Roughness) * ndotl
		out = add(out, modulate(add(diffuse, scale(specColor, spec)), radiance))
	}
	return out.Clamped()
}

// occluded reports whether a caster sits between point and the light
func (l *lighting) occluded(point, n, toLight mgl64.Vec3, dist float64) bool {
	origin := point.Add(n.Mul(constant.ShadowBias))
	r := vmath.NewRay(origin, toLight)
	for _, m := range l.casters {
		if h, ok := m.Intersect(r, constant.ShadowBias); ok && h.T < dist {
			return true
		}
	}
	return false
}
