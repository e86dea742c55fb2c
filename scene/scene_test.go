package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMesh(t *testing.T, g CylinderGeometry, pos mgl64.Vec3) *Mesh {
	t.Helper()
	m, err := DefaultFactory{}.NewCylinder(g, MustMaterial("#ffffff", 0.5, 0.5))
	require.NoError(t, err)
	m.Position = pos
	return m
}

func TestFactoryRejectsInvalidGeometry(t *testing.T) {
	cases := []CylinderGeometry{
		{RadiusTop: 1, RadiusBottom: 1, Height: 0, RadialSegments: 32},
		{RadiusTop: -1, RadiusBottom: 1, Height: 1, RadialSegments: 32},
		{RadiusTop: 0, RadiusBottom: 0, Height: 1, RadialSegments: 32},
		{RadiusTop: 1, RadiusBottom: 1, Height: 1, RadialSegments: 2},
	}
	for _, g := range cases {
		_, err := DefaultFactory{}.NewCylinder(g, Material{})
		assert.ErrorIs(t, err, ErrInvalidGeometry, "geometry %+v", g)
	}
}

func TestNewMaterialValidates(t *testing.T) {
	_, err := NewMaterial("not-a-color", 0.5, 0.5)
	assert.Error(t, err)

	_, err = NewMaterial("#123456", 1.5, 0)
	assert.Error(t, err)

	m, err := NewMaterial("#B8860B", 0.3, 0.9)
	require.NoError(t, err)
	assert.Equal(t, "#b8860b", m.Color.Hex())
}

func TestSceneAddRemove(t *testing.T) {
	s := New()
	m := &Mesh{}
	amb := &AmbientLight{Intensity: 0.5}
	pt := NewPointLight(MustMaterial("#ffffff", 0, 0).Color, 1, 10)

	s.Add(m, amb, pt)
	s.Add(m)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []*Mesh{m}, s.Meshes())
	assert.Len(t, s.AmbientLights(), 1)
	assert.Len(t, s.PointLights(), 1)

	assert.True(t, s.Remove(m))
	assert.False(t, s.Remove(m))
	assert.Empty(t, s.Meshes())
}

func TestMeshTags(t *testing.T) {
	m := &Mesh{}
	_, ok := m.Tag("pad")
	assert.False(t, ok)

	m.SetTag("pad", "a")
	v, ok := m.Tag("pad")
	assert.True(t, ok)
	assert.Equal(t, "a", v)
}

func TestLocalToWorldFollowsRotation(t *testing.T) {
	m := &Mesh{Rotation: Euler{X: math.Pi / 2}}
	w := m.LocalToWorld(mgl64.Vec3{0, -0.05, 0})

	// Rolling +90° about X carries local -Y onto world -Z
	assert.InDelta(t, 0, w.X(), 1e-12)
	assert.InDelta(t, 0, w.Y(), 1e-12)
	assert.InDelta(t, -0.05, w.Z(), 1e-12)
}

func TestEulerQuatComposesXYZ(t *testing.T) {
	e := Euler{X: 0.3, Y: -0.2, Z: 0.7}
	v := mgl64.Vec3{0.1, 0.2, 0.3}

	want := mgl64.QuatRotate(0.3, axisX).Rotate(
		mgl64.QuatRotate(-0.2, axisY).Rotate(
			mgl64.QuatRotate(0.7, axisZ).Rotate(v)))
	got := e.Quat().Rotate(v)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, want[i], got[i], 1e-12)
	}
	assert.True(t, Euler{}.IsZero())
	assert.False(t, e.IsZero())
}

func TestCameraCenterRayHitsTarget(t *testing.T) {
	cam := NewPerspectiveCamera(75, 4.0/3.0, 0.1, 1000)
	cam.SetPosition(mgl64.Vec3{0, 2, 5})
	cam.LookAt(mgl64.Vec3{0, 0, 0})

	r := cam.Ray(0, 0)
	want := mgl64.Vec3{0, -2, -5}.Normalize()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, want[i], r.Direction[i], 1e-9)
	}
	assert.Equal(t, cam.Position, r.Origin)

	// The target projects onto the center of the screen
	p := cam.Project(mgl64.Vec3{0, 0, 0})
	assert.InDelta(t, 0, p.X(), 1e-9)
	assert.InDelta(t, 0, p.Y(), 1e-9)
}

func TestCameraProjectRoundTripsThroughRay(t *testing.T) {
	cam := NewPerspectiveCamera(75, 16.0/9.0, 0.1, 1000)
	cam.SetPosition(mgl64.Vec3{0, 2, 5})
	cam.LookAt(mgl64.Vec3{0, 0, 0})

	point := mgl64.Vec3{-1, 0.9, 0}
	ndc := cam.Project(point)
	r := cam.Ray(ndc.X(), ndc.Y())

	toPoint := point.Sub(r.Origin).Normalize()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, toPoint[i], r.Direction[i], 1e-9)
	}
}

func TestRaycasterNearestFirst(t *testing.T) {
	g := CylinderGeometry{RadiusTop: 0.5, RadiusBottom: 0.5, Height: 1, RadialSegments: 32}
	far := newTestMesh(t, g, mgl64.Vec3{0, 0, -10})
	near := newTestMesh(t, g, mgl64.Vec3{0, 0, -3})
	off := newTestMesh(t, g, mgl64.Vec3{5, 0, -3})

	cam := NewPerspectiveCamera(75, 1, 0.1, 1000)
	var rc Raycaster
	rc.SetFromCamera(0, 0, cam)

	hits := rc.IntersectMeshes([]*Mesh{far, off, near})
	require.Len(t, hits, 2)
	assert.Same(t, near, hits[0].Mesh)
	assert.Same(t, far, hits[1].Mesh)
	assert.InDelta(t, 2.5, hits[0].Distance, 1e-9)
	assert.InDelta(t, 1, hits[0].Normal.Z(), 1e-9)
}

func TestRaycasterTiesKeepInputOrder(t *testing.T) {
	g := CylinderGeometry{RadiusTop: 0.5, RadiusBottom: 0.5, Height: 1, RadialSegments: 32}
	a := newTestMesh(t, g, mgl64.Vec3{0, 0, -3})
	b := newTestMesh(t, g, mgl64.Vec3{0, 0, -3})

	cam := NewPerspectiveCamera(75, 1, 0.1, 1000)
	var rc Raycaster
	rc.SetFromCamera(0, 0, cam)

	hits := rc.IntersectMeshes([]*Mesh{b, a})
	require.Len(t, hits, 2)
	assert.Same(t, b, hits[0].Mesh)
}

func TestPointLightAttenuation(t *testing.T) {
	l := NewPointLight(MustMaterial("#ffffff", 0, 0).Color, 1, 100)
	assert.Equal(t, 1.0, l.Attenuation(0))
	assert.InDelta(t, 0.5, l.Attenuation(50), 1e-12)
	assert.Equal(t, 0.0, l.Attenuation(150))

	l.Distance = 0
	assert.Equal(t, 1.0, l.Attenuation(1e6))

	assert.Equal(t, 512, l.Shadow.MapWidth)
	assert.True(t, l.ShadowRange(1))
	assert.False(t, l.ShadowRange(0.1))
}
