package vmath

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Ray is a half-line with a unit direction
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// NewRay returns a ray with the direction normalized
// A zero direction yields a degenerate ray that never hits anything
func NewRay(origin, dir mgl64.Vec3) Ray {
	if dir.Len() == 0 {
		return Ray{Origin: origin}
	}
	return Ray{Origin: origin, Direction: dir.Normalize()}
}

// At returns the point at distance t along the ray
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Degenerate reports whether the ray has no direction
func (r Ray) Degenerate() bool {
	return r.Direction == (mgl64.Vec3{})
}

// ToLocal expresses the ray in the frame of a rigid body at pos with orientation rot
// Distances along the ray are preserved (no scale)
func (r Ray) ToLocal(pos mgl64.Vec3, rot mgl64.Quat) Ray {
	inv := rot.Inverse()
	return Ray{
		Origin:    inv.Rotate(r.Origin.Sub(pos)),
		Direction: inv.Rotate(r.Direction),
	}
}

// PointerToNDC converts a surface pixel coordinate into normalized device coordinates
// x and y are in [-1, 1], y points up; ok is false for an empty surface
func PointerToNDC(px, py float64, width, height int) (x, y float64, ok bool) {
	if width <= 0 || height <= 0 {
		return 0, 0, false
	}
	x = px/float64(width)*2 - 1
	y = -(py/float64(height))*2 + 1
	return x, y, true
}
