package render

import (
	"io"
	"log/slog"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/drumkit/constant"
	"github.com/lixenwraith/drumkit/kit"
	"github.com/lixenwraith/drumkit/scene"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func kitScene(t *testing.T, aspect float64) (*scene.Scene, *scene.Camera, *kit.Registry) {
	t.Helper()
	sc := scene.New()
	reg, err := kit.Build(scene.DefaultFactory{}, sc, kit.DefaultLayout(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	cam := scene.NewPerspectiveCamera(constant.CameraFOV, aspect, constant.CameraNear, constant.CameraFar)
	cam.SetPosition(constant.CameraPosition)
	cam.LookAt(constant.CameraTarget)
	return sc, cam, reg
}

func TestRendererSize(t *testing.T) {
	s := newSimScreen(t, 40, 21)
	r := NewTerminalRenderer(s)

	w, h := r.Size()
	assert.Zero(t, w)
	assert.Zero(t, h)

	r.SetSize(40, 40)
	w, h = r.Size()
	assert.Equal(t, 40, w)
	assert.Equal(t, 40, h)
}

func TestRendererDrawsPads(t *testing.T) {
	s := newSimScreen(t, 80, 41)
	r := NewTerminalRenderer(s)
	r.SetSize(80, 80)
	sc, cam, reg := kitScene(t, 1)

	r.Render(sc, cam)
	assert.Equal(t, uint64(1), r.Frames())

	for _, p := range reg.Pads() {
		ndc := cam.Project(p.Rest.Position)
		x := int((ndc.X() + 1) / 2 * 80)
		y := int((1 - ndc.Y()) / 2 * 80)
		assert.NotEqual(t, sc.Background, r.Pixel(x, y), "pad %q at (%d,%d)", p.Key, x, y)
	}

	// Above the kit only the background is visible
	assert.Equal(t, sc.Background, r.Pixel(0, 0))

	mainc, _, _, _ := s.GetContent(0, 0)
	assert.Equal(t, halfBlock, mainc)
}

func TestRendererEmptySurfaceIsNoop(t *testing.T) {
	s := newSimScreen(t, 10, 5)
	r := NewTerminalRenderer(s)
	sc, cam, _ := kitScene(t, 1)

	assert.NotPanics(t, func() { r.Render(sc, cam) })
	assert.Equal(t, ColorBlack, r.Pixel(0, 0))
}

func TestRendererDrawsLegendUnderSurface(t *testing.T) {
	s := newSimScreen(t, 60, 11)
	r := NewTerminalRenderer(s)
	r.SetSize(60, 20)
	legend := NewLegend([]LegendItem{{Key: 'a', Label: "kick"}, {Key: 's', Label: "snare"}})
	r.SetLegend(legend)
	sc, cam, _ := kitScene(t, 3)

	r.Render(sc, cam)

	var row []rune
	for x := 0; x < 14; x++ {
		c, _, _, _ := s.GetContent(x, 10)
		row = append(row, c)
	}
	assert.Equal(t, " A kick  S sn", string(row[:13]))
}

func TestLegendPressRelease(t *testing.T) {
	l := NewLegend([]LegendItem{{Key: 'a', Label: "kick"}})

	assert.True(t, l.Press('a'))
	assert.True(t, l.Pressed('a'))
	assert.False(t, l.Press('z'))
	assert.False(t, l.Pressed('z'))

	s := newSimScreen(t, 20, 1)
	l.Draw(s, 0, 20)
	_, _, style, _ := s.GetContent(1, 0)
	_, bg, _ := style.Decompose()
	assert.Equal(t, RgbLegendPressedBg, bg)

	l.Release('a')
	assert.False(t, l.Pressed('a'))
	l.Draw(s, 0, 20)
	_, _, style, _ = s.GetContent(1, 0)
	_, bg, _ = style.Decompose()
	assert.Equal(t, RgbLegendBg, bg)
}

func TestPixelBuffer(t *testing.T) {
	b := NewPixelBuffer(3, 2)
	red := colorful.Color{R: 1}

	b.Set(2, 1, red)
	b.Set(5, 5, red)
	assert.Equal(t, red, b.At(2, 1))
	assert.Equal(t, ColorBlack, b.At(5, 5))

	b.Clear(ColorWhite)
	assert.Equal(t, ColorWhite, b.At(0, 0))
	assert.Equal(t, ColorWhite, b.At(2, 1))

	b.Resize(4, 4)
	w, h := b.Size()
	assert.Equal(t, 4, w)
	assert.Equal(t, 4, h)
	assert.Equal(t, ColorBlack, b.At(3, 3))
}

// floorScene is a wide receiving disk lit from straight above
func floorScene(t *testing.T, withBlocker bool) (lighting, scene.Intersection) {
	t.Helper()
	f := scene.DefaultFactory{}
	mat := scene.MustMaterial("#808080", 1, 0)

	floor, err := f.NewCylinder(scene.CylinderGeometry{RadiusTop: 5, RadiusBottom: 5, Height: 0.1, RadialSegments: 32}, mat)
	require.NoError(t, err)
	floor.ReceiveShadow = true

	sc := scene.New()
	sc.Add(floor, &scene.AmbientLight{Color: ColorWhite, Intensity: 0.5})

	light := scene.NewPointLight(ColorWhite, 0.8, 100)
	light.Position = mgl64.Vec3{0, 5, 0}
	light.CastShadow = true
	sc.Add(light)

	if withBlocker {
		blocker, err := f.NewCylinder(scene.CylinderGeometry{RadiusTop: 1, RadiusBottom: 1, Height: 0.2, RadialSegments: 32}, mat)
		require.NoError(t, err)
		blocker.Position = mgl64.Vec3{0, 2, 0}
		blocker.CastShadow = true
		sc.Add(blocker)
	}

	hit := scene.Intersection{
		Distance: 1,
		Point:    mgl64.Vec3{0, 0.05, 0},
		Normal:   mgl64.Vec3{0, 1, 0},
		Mesh:     floor,
	}
	return newLighting(sc), hit
}

func TestShadeAmbientAndDiffuse(t *testing.T) {
	l, hit := floorScene(t, false)
	c := l.shade(hit, mgl64.Vec3{0, 3, 3})

	gray := scene.MustMaterial("#808080", 1, 0).Color
	ambientOnly := scale(gray, 0.5)
	assert.Greater(t, c.R, ambientOnly.R)
	assert.InDelta(t, c.R, c.G, 1e-12)
	assert.InDelta(t, c.G, c.B, 1e-12)
}

func TestShadeShadowedPointIsAmbientOnly(t *testing.T) {
	l, hit := floorScene(t, true)
	c := l.shade(hit, mgl64.Vec3{0, 3, 3})

	gray := scene.MustMaterial("#808080", 1, 0).Color
	ambientOnly := scale(gray, 0.5)
	assert.InDelta(t, ambientOnly.R, c.R, 1e-12)
}

func TestShadeIgnoresShadowWithoutReceiver(t *testing.T) {
	lit, hit := floorScene(t, false)
	blocked, hit2 := floorScene(t, true)
	hit2.Mesh.ReceiveShadow = false

	assert.Equal(t, lit.shade(hit, mgl64.Vec3{0, 3, 3}), blocked.shade(hit2, mgl64.Vec3{0, 3, 3}))
}
