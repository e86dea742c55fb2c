package kit

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/drumkit/constant"
	"github.com/lixenwraith/drumkit/scene"
)

var (
	// ErrUnknownKey is returned for a pad key outside Alphabet
	ErrUnknownKey = errors.New("pad key not in alphabet")
	// ErrDuplicateKey is returned when two pads share a key
	ErrDuplicateKey = errors.New("duplicate pad key")
	// ErrIncompleteKit is returned when a key of Alphabet has no pad
	ErrIncompleteKit = errors.New("kit is missing pads")
)

// Build instantiates the layout in sc and returns the pad registry
// Any allocation failure aborts the build; sc may then hold a partial kit and must be discarded
func Build(f scene.Factory, sc *scene.Scene, layout Layout, log *slog.Logger) (*Registry, error) {
	if log == nil {
		log = slog.Default()
	}

	materials := make(map[string]scene.Material, len(layout.Materials))
	for name, ms := range layout.Materials {
		m, err := scene.NewMaterial(ms.Color, ms.Roughness, ms.Metalness)
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", name, err)
		}
		materials[name] = m
	}

	reg := newRegistry()
	for _, spec := range layout.Pads {
		if !strings.ContainsRune(Alphabet, spec.Key) {
			return nil, fmt.Errorf("pad %q (%q): %w", spec.Name, spec.Key, ErrUnknownKey)
		}
		if _, dup := reg.Get(spec.Key); dup {
			return nil, fmt.Errorf("pad %q (%q): %w", spec.Name, spec.Key, ErrDuplicateKey)
		}

		mesh, err := place(f, sc, spec.PieceSpec, materials)
		if err != nil {
			return nil, err
		}
		mesh.SetTag(TagPad, string(spec.Key))

		cat := Classify(spec.Geometry)
		if cat != spec.Hint {
			log.Warn("pad category hint disagrees with geometry",
				"pad", spec.Name, "key", string(spec.Key), "hint", spec.Hint, "derived", cat)
		}

		reg.insert(&Pad{
			Key:      spec.Key,
			Name:     spec.Name,
			Category: cat,
			Rest:     mesh.Pose(),
			Mesh:     mesh,
		})
	}

	for _, spec := range layout.Decor {
		if _, err := place(f, sc, spec, materials); err != nil {
			return nil, err
		}
	}

	if reg.Len() != len(Alphabet) {
		return nil, fmt.Errorf("%d of %d pads: %w", reg.Len(), len(Alphabet), ErrIncompleteKit)
	}

	addLights(sc)

	log.Info("kit built", "pads", reg.Len(), "decor", len(layout.Decor), "nodes", sc.Len())
	return reg, nil
}

func place(f scene.Factory, sc *scene.Scene, spec PieceSpec, materials map[string]scene.Material) (*scene.Mesh, error) {
	mat, ok := materials[spec.Material]
	if !ok {
		return nil, fmt.Errorf("piece %q: unknown material %q", spec.Name, spec.Material)
	}
	mesh, err := f.NewCylinder(spec.Geometry, mat)
	if err != nil {
		return nil, fmt.Errorf("piece %q: %w", spec.Name, err)
	}
	mesh.Position = spec.Position
	mesh.Rotation = spec.Rotation
	mesh.CastShadow = true
	mesh.ReceiveShadow = true
	sc.Add(mesh)
	return mesh, nil
}

func addLights(sc *scene.Scene) {
	ambient, _ := colorful.Hex(constant.AmbientColor)
	sc.Add(&scene.AmbientLight{Color: ambient, Intensity: constant.AmbientIntensity})

	white, _ := colorful.Hex(constant.PointColor)
	pl := scene.NewPointLight(white, constant.PointIntensity, constant.PointDistance)
	pl.Position = mgl64.Vec3(constant.PointPosition)
	pl.CastShadow = true
	pl.Shadow = scene.ShadowConfig{
		MapWidth:  constant.PointShadowMapSize,
		MapHeight: constant.PointShadowMapSize,
		Near:      constant.PointShadowNear,
		Far:       constant.PointShadowFar,
	}
	sc.Add(pl)

	bg, _ := colorful.Hex(constant.BackgroundColor)
	sc.Background = bg
}
