package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// epsilon guards divisions by near-zero direction components
const epsilon = 1e-12

// Frustum is a capped cylinder (or truncated cone) centered on the origin along +Y
// The top cap sits at +Height/2 with RadiusTop, the bottom cap at -Height/2 with RadiusBottom
type Frustum struct {
	RadiusTop    float64
	RadiusBottom float64
	Height       float64
}

// Hit is a ray/surface intersection in the frame the ray was given in
type Hit struct {
	T      float64    // Distance along the ray
	Point  mgl64.Vec3 // Intersection point
	Normal mgl64.Vec3 // Outward unit normal
}

// radiusAt returns the cone radius at height y
func (f Frustum) radiusAt(y float64) float64 {
	h := f.Height
	if h <= 0 {
		return 0
	}
	return f.RadiusBottom + (f.RadiusTop-f.RadiusBottom)*(y+h/2)/h
}

// Intersect returns the nearest intersection with t > minT, checking the lateral surface and both caps
func (f Frustum) Intersect(r Ray, minT float64) (Hit, bool) {
	if r.Degenerate() || f.Height <= 0 {
		return Hit{}, false
	}

	best := Hit{T: math.Inf(1)}
	found := false
	consider := func(h Hit) {
		if h.T > minT && h.T < best.T {
			best = h
			found = true
		}
	}

	half := f.Height / 2
	o, d := r.Origin, r.Direction

	// Lateral surface: x² + z² = (r0 + k·y)²
	k := (f.RadiusTop - f.RadiusBottom) / f.Height
	r0 := (f.RadiusTop + f.RadiusBottom) / 2
	ro := r0 + k*o.Y()

	a := d.X()*d.X() + d.Z()*d.Z() - k*k*d.Y()*d.Y()
	b := 2 * (o.X()*d.X() + o.Z()*d.Z() - k*d.Y()*ro)
	c := o.X()*o.X() + o.Z()*o.Z() - ro*ro

	for _, t := range solveQuadratic(a, b, c) {
		p := r.At(t)
		if p.Y() < -half || p.Y() > half || f.radiusAt(p.Y()) < 0 {
			continue
		}
		n := mgl64.Vec3{p.X(), -k * f.radiusAt(p.Y()), p.Z()}
		if n.Len() < epsilon {
			continue
		}
		consider(Hit{T: t, Point: p, Normal: n.Normalize()})
	}

	// Caps
	if math.Abs(d.Y()) > epsilon {
		for _, cp := range [2]struct {
			y, radius, ny float64
		}{
			{half, f.RadiusTop, 1},
			{-half, f.RadiusBottom, -1},
		} {
			t := (cp.y - o.Y()) / d.Y()
			p := r.At(t)
			if p.X()*p.X()+p.Z()*p.Z() <= cp.radius*cp.radius {
				consider(Hit{T: t, Point: p, Normal: mgl64.Vec3{0, cp.ny, 0}})
			}
		}
	}

	return best, found
}

// solveQuadratic returns the real roots of a·t² + b·t + c = 0 in ascending order
func solveQuadratic(a, b, c float64) []float64 {
	if math.Abs(a) < epsilon {
		if math.Abs(b) < epsilon {
			return nil
		}
		return []float64{-c / b}
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	t0 := (-b - sq) / (2 * a)
	t1 := (-b + sq) / (2 * a)
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	return []float64{t0, t1}
}
