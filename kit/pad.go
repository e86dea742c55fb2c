package kit

import (
	"github.com/lixenwraith/drumkit/constant"
	"github.com/lixenwraith/drumkit/scene"
)

// Category selects the strike animation shape
type Category uint8

const (
	CategoryStandard Category = iota
	CategoryCymbal
)

// String returns the category name
func (c Category) String() string {
	switch c {
	case CategoryCymbal:
		return "cymbal"
	default:
		return "standard"
	}
}

// Classify derives a pad's category from its geometry
// The striking axis of a cylinder is its local Y; a piece thinner than
// constant.CymbalThickness along it is a cymbal, anything else is a drum
func Classify(g scene.CylinderGeometry) Category {
	if g.Height < constant.CymbalThickness {
		return CategoryCymbal
	}
	return CategoryStandard
}

// Pad is one playable kit piece
type Pad struct {
	Key      rune
	Name     string
	Category Category
	Rest     scene.Pose  // Transform at creation; the strike revert target
	Mesh     *scene.Mesh // Owned by the scene
}

// Rotated reports whether the rest orientation differs from identity
func (p *Pad) Rotated() bool {
	return !p.Rest.Rotation.IsZero()
}
