package kit

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/drumkit/constant"
	"github.com/lixenwraith/drumkit/scene"
)

// Alphabet is the fixed set of pad keys in layout order
const Alphabet = "wasdjkl"

// MaterialSpec is a named surface in the layout
type MaterialSpec struct {
	Color     string
	Roughness float64
	Metalness float64
}

// PieceSpec places one cylinder in the scene
type PieceSpec struct {
	Name     string
	Geometry scene.CylinderGeometry
	Position mgl64.Vec3
	Rotation scene.Euler
	Material string
}

// PadSpec is a playable piece
type PadSpec struct {
	PieceSpec
	Key  rune
	Hint Category // Expected category; the geometric rule is authoritative
}

// Layout is the full kit description, consumed once by Build
type Layout struct {
	Materials map[string]MaterialSpec
	Pads      []PadSpec
	Decor     []PieceSpec // Non-interactive pieces
}

func cylinder(top, bottom, height float64) scene.CylinderGeometry {
	return scene.CylinderGeometry{
		RadiusTop:      top,
		RadiusBottom:   bottom,
		Height:         height,
		RadialSegments: constant.RadialSegments,
	}
}

// DefaultLayout returns the standard seven-pad kit
func DefaultLayout() Layout {
	return Layout{
		Materials: map[string]MaterialSpec{
			"kick":   {Color: "#8B0000", Roughness: 0.7, Metalness: 0.1},
			"snare":  {Color: "#A9A9A9", Roughness: 0.6, Metalness: 0.2},
			"tom1":   {Color: "#00008B", Roughness: 0.7, Metalness: 0.1},
			"tom2":   {Color: "#006400", Roughness: 0.7, Metalness: 0.1},
			"tom3":   {Color: "#4B0082", Roughness: 0.7, Metalness: 0.1},
			"cymbal": {Color: "#B8860B", Roughness: 0.3, Metalness: 0.9},
		},
		Pads: []PadSpec{
			{
				Key:  'w',
				Hint: CategoryCymbal,
				PieceSpec: PieceSpec{
					Name:     "crash",
					Geometry: cylinder(0.6, 0.6, 0.03),
					Position: mgl64.Vec3{-1.2, 1.8, -0.3},
					Rotation: scene.Euler{X: constant.CymbalTilt},
					Material: "cymbal",
				},
			},
			{
				Key:  'a',
				Hint: CategoryStandard,
				PieceSpec: PieceSpec{
					Name:     "kick",
					Geometry: cylinder(0.7, 0.7, 0.8),
					Position: mgl64.Vec3{0, 0.4, -1},
					Rotation: scene.Euler{X: constant.KickRoll}, // Lying on its side
					Material: "kick",
				},
			},
			{
				Key:  's',
				Hint: CategoryStandard,
				PieceSpec: PieceSpec{
					Name:     "snare",
					Geometry: cylinder(0.4, 0.4, 0.3),
					Position: mgl64.Vec3{-1.0, 0.9, 0},
					Material: "snare",
				},
			},
			{
				Key:  'd',
				Hint: CategoryStandard,
				PieceSpec: PieceSpec{
					Name:     "tom 1",
					Geometry: cylinder(0.3, 0.3, 0.4),
					Position: mgl64.Vec3{-0.5, 1.2, -0.5},
					Material: "tom1",
				},
			},
			{
				Key:  'j',
				Hint: CategoryStandard,
				PieceSpec: PieceSpec{
					Name:     "tom 2",
					Geometry: cylinder(0.35, 0.35, 0.45),
					Position: mgl64.Vec3{0.2, 1.25, -0.6},
					Material: "tom2",
				},
			},
			{
				Key:  'k',
				Hint: CategoryStandard,
				PieceSpec: PieceSpec{
					Name:     "floor tom",
					Geometry: cylinder(0.5, 0.5, 0.6),
					Position: mgl64.Vec3{1.0, 0.9, 0},
					Material: "tom3",
				},
			},
			{
				Key:  'l',
				Hint: CategoryCymbal,
				PieceSpec: PieceSpec{
					Name:     "hi-hat",
					Geometry: cylinder(0.4, 0.4, 0.02),
					Position: mgl64.Vec3{-1.8, 1.5, 0},
					Rotation: scene.Euler{X: constant.CymbalTilt},
					Material: "cymbal",
				},
			},
		},
		Decor: []PieceSpec{
			{
				// Bottom hi-hat cymbal, shown but never struck
				Name:     "hi-hat bottom",
				Geometry: cylinder(0.4, 0.4, 0.02),
				Position: mgl64.Vec3{-1.8, 1.47, 0},
				Material: "cymbal",
			},
		},
	}
}
