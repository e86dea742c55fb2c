package input

import (
	"io"
	"log/slog"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/drumkit/kit"
	"github.com/lixenwraith/drumkit/scene"
	"github.com/lixenwraith/drumkit/terminal"
)

const (
	surfaceW = 800
	surfaceH = 600
)

func buildKit(t *testing.T) (*kit.Registry, *scene.Camera) {
	t.Helper()
	reg, err := kit.Build(scene.DefaultFactory{}, scene.New(), kit.DefaultLayout(),
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	cam := scene.NewPerspectiveCamera(75, float64(surfaceW)/surfaceH, 0.1, 1000)
	cam.SetPosition(mgl64.Vec3{0, 2, 5})
	cam.LookAt(mgl64.Vec3{0, 0, 0})
	return reg, cam
}

// toPixels maps a world point to surface pixels
func toPixels(cam *scene.Camera, p mgl64.Vec3) (float64, float64) {
	ndc := cam.Project(p)
	return (ndc.X() + 1) / 2 * surfaceW, (1 - ndc.Y()) / 2 * surfaceH
}

func TestHitTesterResolvesEachPad(t *testing.T) {
	reg, cam := buildKit(t)
	var ht HitTester

	for _, pad := range reg.Pads() {
		px, py := toPixels(cam, pad.Rest.Position)
		got := ht.Resolve(px, py, surfaceW, surfaceH, cam, reg)
		require.NotNil(t, got, "pad %q at (%.1f, %.1f)", pad.Key, px, py)
		assert.Same(t, pad, got, "pad %q resolved to %q", pad.Key, got.Key)
	}
}

func TestHitTesterMissesEmptySpace(t *testing.T) {
	reg, cam := buildKit(t)
	var ht HitTester

	assert.Nil(t, ht.Resolve(0, 0, surfaceW, surfaceH, cam, reg))
	assert.Nil(t, ht.Resolve(surfaceW-1, 0, surfaceW, surfaceH, cam, reg))
}

func TestHitTesterEmptySurface(t *testing.T) {
	reg, cam := buildKit(t)
	var ht HitTester

	assert.Nil(t, ht.Resolve(10, 10, 0, 0, cam, reg))
}

func TestHitTesterFollowsStrikePose(t *testing.T) {
	reg, cam := buildKit(t)
	var ht HitTester

	// A pad moved mid-strike is still tested at its current transform
	snare, _ := reg.Get('s')
	px, py := toPixels(cam, snare.Rest.Position)
	snare.Mesh.Position = snare.Rest.Position.Add(mgl64.Vec3{0, 0, -50})
	defer snare.Mesh.SetPose(snare.Rest)

	got := ht.Resolve(px, py, surfaceW, surfaceH, cam, reg)
	if got != nil {
		assert.NotEqual(t, 's', got.Key)
	}
}

func TestKeyDispatcher(t *testing.T) {
	reg, _ := buildKit(t)
	d := NewKeyDispatcher(reg)

	for _, k := range kit.Alphabet {
		p := d.Resolve(k)
		require.NotNil(t, p)
		assert.Equal(t, k, p.Key)
	}

	// Uppercase folds onto the same pad
	upper := d.Resolve('A')
	require.NotNil(t, upper)
	assert.Equal(t, 'a', upper.Key)

	for _, k := range []rune{'q', 'z', '1', ' ', 'é', 0} {
		assert.Nil(t, d.Resolve(k), "key %q", k)
	}
}

func TestKeyTableLookup(t *testing.T) {
	kt := DefaultKeyTable()

	assert.Equal(t, IntentStrike, kt.Lookup(terminal.Event{Type: terminal.EventKey, Key: terminal.KeyRune, Rune: 'x'}))
	assert.Equal(t, IntentQuit, kt.Lookup(terminal.Event{Type: terminal.EventKey, Key: terminal.KeyEscape}))
	assert.Equal(t, IntentQuit, kt.Lookup(terminal.Event{Type: terminal.EventKey, Key: terminal.KeyCtrlC}))
	assert.Equal(t, IntentToggleMute, kt.Lookup(terminal.Event{Type: terminal.EventKey, Key: terminal.KeyCtrlS}))
	assert.Equal(t, IntentNone, kt.Lookup(terminal.Event{Type: terminal.EventClick}))
	assert.Equal(t, "toggle-mute", IntentToggleMute.String())
}
