package input

import (
	"github.com/lixenwraith/drumkit/kit"
	"github.com/lixenwraith/drumkit/scene"
	"github.com/lixenwraith/drumkit/vmath"
)

// HitTester resolves pointer positions to pads by ray casting
// Only pad meshes are tested; lights and decor never resolve
type HitTester struct {
	rc scene.Raycaster
}

// Resolve returns the pad nearest the camera under the pointer, or nil
// px, py are surface pixels from the top-left corner of a width × height surface
// Pads at exactly equal distance resolve to the one listed first in the registry
func (h *HitTester) Resolve(px, py float64, width, height int, cam *scene.Camera, reg *kit.Registry) *kit.Pad {
	x, y, ok := vmath.PointerToNDC(px, py, width, height)
	if !ok {
		return nil
	}
	h.rc.SetFromCamera(x, y, cam)

	hits := h.rc.IntersectMeshes(reg.Meshes())
	for _, hit := range hits {
		if p, ok := reg.ByMesh(hit.Mesh); ok {
			return p
		}
	}
	return nil
}
