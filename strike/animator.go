// Package strike animates struck pads: a short perturbation of the pad's transform that
// reverts to the pad's rest pose after a fixed delay.
package strike

import (
	"log/slog"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/drumkit/constant"
	"github.com/lixenwraith/drumkit/engine"
	"github.com/lixenwraith/drumkit/kit"
)

// localDip is the local-frame displacement of a rotated drum (its local "down")
var localDip = mgl64.Vec3{0, -constant.DrumDip, 0}

// state is the in-flight animation bookkeeping of one pad
type state struct {
	inFlight int
	started  time.Time
}

// Animator runs strike animations on the event loop
// Not safe for concurrent use; all calls and scheduled reverts run on the loop
type Animator struct {
	sched    engine.Scheduler
	clock    engine.Clock
	duration time.Duration
	log      *slog.Logger
	states   map[rune]*state
}

// NewAnimator creates an animator scheduling reverts on sched
func NewAnimator(sched engine.Scheduler, clock engine.Clock, log *slog.Logger) *Animator {
	if log == nil {
		log = slog.Default()
	}
	if clock == nil {
		clock = engine.NewTimeProvider()
	}
	return &Animator{
		sched:    sched,
		clock:    clock,
		duration: constant.StrikeDuration,
		log:      log,
		states:   make(map[rune]*state),
	}
}

// Active reports whether pad has a strike that has not reverted yet
func (a *Animator) Active(pad *kit.Pad) bool {
	st, ok := a.states[pad.Key]
	return ok && st.inFlight > 0
}

// Strike perturbs pad now and schedules the revert
// Striking a pad mid-animation re-runs the sequence; earlier reverts still fire and every
// revert targets the rest pose, so overlapping strikes cannot drift
// pad must not be nil
func (a *Animator) Strike(pad *kit.Pad) engine.Task {
	st := a.states[pad.Key]
	if st == nil {
		st = &state{}
		a.states[pad.Key] = st
	}
	st.inFlight++
	st.started = a.clock.Now()

	var revert func()
	switch {
	case pad.Category == kit.CategoryCymbal:
		a.tilt(pad)
		revert = func() { a.untilt(pad) }
	case pad.Rotated():
		offset := pad.Mesh.LocalToWorld(localDip)
		pad.Mesh.Position = pad.Mesh.Position.Add(offset)
		revert = func() { a.undip(pad, offset) }
	default:
		pad.Mesh.Position[1] = pad.Rest.Position.Y() - constant.DrumDip
		revert = func() { pad.Mesh.Position[1] = pad.Rest.Position.Y() }
	}

	a.log.Debug("strike", "pad", pad.Name, "key", string(pad.Key), "category", pad.Category, "in_flight", st.inFlight)

	return a.sched.After(a.duration, func() {
		revert()
		a.settle(pad, st)
	})
}

// tilt wobbles a cymbal forward and sideways from its rest orientation
func (a *Animator) tilt(pad *kit.Pad) {
	pad.Mesh.Rotation.X = pad.Rest.Rotation.X - constant.CymbalTiltX
	pad.Mesh.Rotation.Z = pad.Rest.Rotation.Z + constant.CymbalTiltZ
}

func (a *Animator) untilt(pad *kit.Pad) {
	pad.Mesh.Rotation.X = pad.Rest.Rotation.X
	pad.Mesh.Rotation.Z = pad.Rest.Rotation.Z
}

// undip removes the world-space offset applied at strike time
func (a *Animator) undip(pad *kit.Pad, offset mgl64.Vec3) {
	pad.Mesh.Position = pad.Mesh.Position.Sub(offset)
}

// settle closes one strike; the last one snaps the transform to the rest pose so
// floating-point residue of add/subtract pairs never accumulates
func (a *Animator) settle(pad *kit.Pad, st *state) {
	st.inFlight--
	if st.inFlight > 0 {
		return
	}
	st.inFlight = 0
	pad.Mesh.SetPose(pad.Rest)
	a.log.Debug("strike settled", "pad", pad.Name, "elapsed", a.clock.Now().Sub(st.started))
}
