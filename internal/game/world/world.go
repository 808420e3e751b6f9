package world

import (
	"go.uber.org/zap"

	"github.com/Faultbox/skydrop/internal/engine/camera"
	"github.com/Faultbox/skydrop/internal/engine/lighting"
	"github.com/Faultbox/skydrop/internal/game/entity"
	"github.com/Faultbox/skydrop/internal/logger"
)

// World is the whole mutable game state. The main loop owns it and passes
// it to the input mapper, the simulation step and the renderer in turn.
type World struct {
	Sim    *Simulation
	Camera *camera.Rig
	Light  lighting.Light
	Cones  lighting.ConePresets

	// Renders left in which the airship is not drawn, armed on each turn.
	airshipMask int

	targets []entity.Target
}

// New assembles a world around an existing simulation.
func New(sim *Simulation, rig *camera.Rig, light lighting.Light, cones lighting.ConePresets) *World {
	w := &World{
		Sim:     sim,
		Camera:  rig,
		Light:   light,
		Cones:   cones,
		targets: make([]entity.Target, 0, sim.Params().Targets),
	}
	w.track()
	return w
}

// Tick advances the simulation once and keeps the follow camera on the airship.
func (w *World) Tick() Events {
	ev := w.Sim.Advance()
	if ev.Turned {
		w.airshipMask = 1
	}
	if w.Camera.Mode() == camera.FollowAirship {
		w.track()
	}
	return ev
}

func (w *World) track() {
	a := w.Sim.Airship()
	w.Camera.Track(a.Position, a.Heading.Sign())
}

// SetActiveCamera switches between the fly and follow cameras.
func (w *World) SetActiveCamera(mode camera.Mode) {
	if mode == w.Camera.Mode() {
		return
	}
	w.Camera.SetMode(mode)
	w.track()
	logger.Debug("camera mode changed", zap.Stringer("mode", w.Camera.Mode()))
}

// AdjustCameraOrientation turns the fly camera; pitch stays within ±89°.
func (w *World) AdjustCameraOrientation(deltaYaw, deltaPitch float32) {
	w.Camera.Fly.Rotate(deltaYaw, deltaPitch)
}

// MoveCamera moves the fly camera. Ignored while following the airship.
func (w *World) MoveCamera(forward, right float32) {
	if w.Camera.Mode() != camera.FreeFly {
		return
	}
	w.Camera.Fly.Move(forward, right)
}

// NudgeLight moves the light along one axis.
func (w *World) NudgeLight(axis lighting.Axis, delta float32) {
	w.Light.Nudge(axis, delta)
}

// ToggleProjectorCone selects the wide or narrow spot cone.
func (w *World) ToggleProjectorCone(cone lighting.Cone) {
	w.Light.SetCone(cone, w.Cones)
	logger.Debug("projector cone set",
		zap.Stringer("cone", cone),
		zap.Float32("cosCutoff", w.Light.SpotCosCutoff))
}

// RequestProjectileDrop drops a projectile if none is falling.
func (w *World) RequestProjectileDrop() bool {
	return w.Sim.Drop()
}

// ToggleFreeze pauses or resumes the simulation.
func (w *World) ToggleFreeze() {
	w.Sim.SetFrozen(!w.Sim.Frozen())
	logger.Info("simulation freeze toggled", zap.Bool("frozen", w.Sim.Frozen()))
}

// Frame is the read-only state one render needs.
type Frame struct {
	View           camera.View
	Light          lighting.Light
	Airship        entity.Airship
	AirshipVisible bool
	Projectile     entity.Projectile
	HasProjectile  bool
	Targets        []entity.Target // valid until the next call to Frame
	Score          int
}

// Frame captures the state for one render. Each call consumes one render of
// the airship mask, so a turn hides the airship for exactly one frame.
func (w *World) Frame() Frame {
	f := Frame{
		View:           w.Camera.Active(),
		Light:          w.Light,
		Airship:        w.Sim.Airship(),
		AirshipVisible: w.airshipMask == 0,
		Score:          w.Sim.Score(),
	}
	if w.airshipMask > 0 {
		w.airshipMask--
	}
	f.Projectile, f.HasProjectile = w.Sim.Projectile()
	w.targets = w.Sim.Targets(w.targets[:0])
	f.Targets = w.targets
	return f
}
