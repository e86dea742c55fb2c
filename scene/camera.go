package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/drumkit/vmath"
)

// Camera is a perspective camera
// Changing FOV, Aspect, Near or Far requires UpdateProjection
type Camera struct {
	FOV    float64 // Vertical field of view, degrees
	Aspect float64
	Near   float64
	Far    float64

	Position mgl64.Vec3
	Up       mgl64.Vec3

	target     mgl64.Vec3
	view       mgl64.Mat4
	projection mgl64.Mat4
	inverse    mgl64.Mat4
}

// NewPerspectiveCamera creates a camera at the origin looking down -Z
func NewPerspectiveCamera(fov, aspect, near, far float64) *Camera {
	c := &Camera{
		FOV:    fov,
		Aspect: aspect,
		Near:   near,
		Far:    far,
		Up:     mgl64.Vec3{0, 1, 0},
		target: mgl64.Vec3{0, 0, -1},
	}
	c.UpdateProjection()
	return c
}

// LookAt orients the camera toward a world point
func (c *Camera) LookAt(target mgl64.Vec3) {
	c.target = target
	c.updateView()
}

// SetPosition moves the camera, keeping its look-at target
func (c *Camera) SetPosition(p mgl64.Vec3) {
	c.Position = p
	c.updateView()
}

// UpdateProjection recomputes the projection matrix from FOV, Aspect, Near and Far
func (c *Camera) UpdateProjection() {
	aspect := c.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	c.projection = mgl64.Perspective(mgl64.DegToRad(c.FOV), aspect, c.Near, c.Far)
	c.updateView()
}

// Projection returns the projection matrix
func (c *Camera) Projection() mgl64.Mat4 {
	return c.projection
}

// View returns the world-to-camera matrix
func (c *Camera) View() mgl64.Mat4 {
	return c.view
}

// Project maps a world point to normalized device coordinates
func (c *Camera) Project(p mgl64.Vec3) mgl64.Vec3 {
	v := c.projection.Mul4(c.view).Mul4x1(p.Vec4(1))
	if v.W() == 0 {
		return mgl64.Vec3{}
	}
	return v.Vec3().Mul(1 / v.W())
}

// Ray returns the world-space ray through normalized device coordinates
func (c *Camera) Ray(ndcX, ndcY float64) vmath.Ray {
	p := c.inverse.Mul4x1(mgl64.Vec4{ndcX, ndcY, 0.5, 1})
	if p.W() == 0 {
		return vmath.Ray{Origin: c.Position}
	}
	return vmath.NewRay(c.Position, p.Vec3().Mul(1/p.W()).Sub(c.Position))
}

func (c *Camera) updateView() {
	c.view = mgl64.LookAtV(c.Position, c.target, c.Up)
	c.inverse = c.projection.Mul4(c.view).Inv()
}
