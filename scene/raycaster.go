package scene

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/drumkit/vmath"
)

// Intersection is a ray hit on a mesh
type Intersection struct {
	Distance float64
	Point    mgl64.Vec3
	Normal   mgl64.Vec3
	Mesh     *Mesh
}

// Raycaster casts one ray against supplied meshes
type Raycaster struct {
	Ray  vmath.Ray
	Near float64
}

// SetFromCamera aims the ray from the camera through normalized device coordinates
func (rc *Raycaster) SetFromCamera(ndcX, ndcY float64, cam *Camera) {
	rc.Ray = cam.Ray(ndcX, ndcY)
}

// IntersectMeshes returns hits on the given meshes, nearest first
// Equal distances keep the order of the input slice
func (rc *Raycaster) IntersectMeshes(meshes []*Mesh) []Intersection {
	var hits []Intersection
	for _, m := range meshes {
		if h, ok := m.Intersect(rc.Ray, rc.Near); ok {
			hits = append(hits, Intersection{Distance: h.T, Point: h.Point, Normal: h.Normal, Mesh: m})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Distance < hits[j].Distance })
	return hits
}
