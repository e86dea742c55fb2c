package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/drumkit/vmath"
)

var (
	axisX = mgl64.Vec3{1, 0, 0}
	axisY = mgl64.Vec3{0, 1, 0}
	axisZ = mgl64.Vec3{0, 0, 1}
)

// CylinderGeometry describes a capped cylinder along local +Y centered on the origin
type CylinderGeometry struct {
	RadiusTop      float64
	RadiusBottom   float64
	Height         float64
	RadialSegments int // Tessellation hint; intersection is analytic
}

// Euler is an intrinsic X-then-Y-then-Z rotation in radians
type Euler struct {
	X, Y, Z float64
}

// Quat converts the rotation to a quaternion
func (e Euler) Quat() mgl64.Quat {
	return mgl64.QuatRotate(e.X, axisX).
		Mul(mgl64.QuatRotate(e.Y, axisY)).
		Mul(mgl64.QuatRotate(e.Z, axisZ))
}

// IsZero reports whether the rotation is the identity
func (e Euler) IsZero() bool {
	return e == Euler{}
}

// Pose is a rigid transform
type Pose struct {
	Position mgl64.Vec3
	Rotation Euler
}

// Mesh is a drawable, ray-testable cylinder
// Transform fields are mutated directly by the owner of the event loop
type Mesh struct {
	Geometry CylinderGeometry
	Material Material

	Position mgl64.Vec3
	Rotation Euler

	CastShadow    bool
	ReceiveShadow bool

	tags map[string]string
}

func (*Mesh) isNode() {}

// Pose returns a copy of the current transform
func (m *Mesh) Pose() Pose {
	return Pose{Position: m.Position, Rotation: m.Rotation}
}

// SetPose overwrites the transform
func (m *Mesh) SetPose(p Pose) {
	m.Position = p.Position
	m.Rotation = p.Rotation
}

// Quaternion returns the current orientation
func (m *Mesh) Quaternion() mgl64.Quat {
	return m.Rotation.Quat()
}

// LocalToWorld rotates a local-frame vector into world space by the current orientation
func (m *Mesh) LocalToWorld(v mgl64.Vec3) mgl64.Vec3 {
	return m.Quaternion().Rotate(v)
}

// SetTag stores an arbitrary string tag
func (m *Mesh) SetTag(name, value string) {
	if m.tags == nil {
		m.tags = make(map[string]string)
	}
	m.tags[name] = value
}

// Tag returns a tag value and whether it was set
func (m *Mesh) Tag(name string) (string, bool) {
	v, ok := m.tags[name]
	return v, ok
}

// Intersect tests a world-space ray against the mesh
// The returned hit is in world space
func (m *Mesh) Intersect(r vmath.Ray, minT float64) (vmath.Hit, bool) {
	q := m.Quaternion()
	f := vmath.Frustum{
		RadiusTop:    m.Geometry.RadiusTop,
		RadiusBottom: m.Geometry.RadiusBottom,
		Height:       m.Geometry.Height,
	}
	h, ok := f.Intersect(r.ToLocal(m.Position, q), minT)
	if !ok {
		return vmath.Hit{}, false
	}
	return vmath.Hit{
		T:      h.T,
		Point:  r.At(h.T),
		Normal: q.Rotate(h.Normal),
	}, true
}
