// Package controls turns keyboard state into world intents once per tick.
package controls

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/skydrop/internal/engine/camera"
	"github.com/Faultbox/skydrop/internal/engine/lighting"
	"github.com/Faultbox/skydrop/internal/game/world"
	"github.com/Faultbox/skydrop/internal/logger"
)

// Key is a platform-independent key identifier.
type Key uint8

const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyShift
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyJ
	KeyN
	KeyB
	KeyM
	KeyH
	KeyK
	KeySpace
	Key1
	Key2
	KeyZ
	KeyX
	KeyP
	KeyF12
	KeyEscape

	KeyCount
)

var keyNames = [KeyCount]string{
	"W", "A", "S", "D", "Shift", "Up", "Down", "Left", "Right",
	"J", "N", "B", "M", "H", "K",
	"Space", "1", "2", "Z", "X", "P", "F12", "Escape",
}

func (k Key) String() string {
	if k >= KeyCount {
		return fmt.Sprintf("Key(%d)", uint8(k))
	}
	return keyNames[k]
}

// KeyState reports whether a key is currently held.
type KeyState interface {
	Down(k Key) bool
}

// Action is a discrete, debounced command.
type Action uint8

const (
	ActionDrop Action = iota
	ActionFreeCamera
	ActionFollowCamera
	ActionConeWide
	ActionConeNarrow
	ActionFreeze
	ActionScreenshot

	actionCount
)

var actionKeys = [actionCount]Key{
	ActionDrop:         KeySpace,
	ActionFreeCamera:   Key1,
	ActionFollowCamera: Key2,
	ActionConeWide:     KeyZ,
	ActionConeNarrow:   KeyX,
	ActionFreeze:       KeyP,
	ActionScreenshot:   KeyF12,
}

// Settings are the per-tick speeds and the debounce length.
type Settings struct {
	CameraSpeed   float32 // units per tick before the shift scale
	ShiftScale    float32 // applied to camera speed, doubled while Shift is held
	RotationSpeed float32 // degrees per tick, doubled while Shift is held
	LightSpeed    float32 // units per tick
	Cooldown      int     // ticks an action stays blocked after firing
}

// DefaultSettings returns the stock key speeds.
func DefaultSettings() Settings {
	return Settings{
		CameraSpeed:   0.3,
		ShiftScale:    0.5,
		RotationSpeed: 0.75,
		LightSpeed:    0.2,
		Cooldown:      15,
	}
}

// Intents is everything the player asked for during one tick.
type Intents struct {
	MoveForward, MoveRight float32
	Yaw, Pitch             float32
	Light                  [3]float32 // per-axis light delta

	Fired [actionCount]bool
	Quit  bool
}

// Empty reports whether the intents would change nothing.
func (in Intents) Empty() bool {
	return in == Intents{}
}

// Mapper converts key state to intents. Continuous keys act every tick;
// actions fire on press and then repeat at most once per cooldown while held.
type Mapper struct {
	settings Settings
	cooldown [actionCount]int
}

// NewMapper creates a mapper with the given settings.
func NewMapper(s Settings) *Mapper {
	return &Mapper{settings: s}
}

// Map reads keys once and returns the tick's intents.
func (m *Mapper) Map(keys KeyState) Intents {
	var in Intents
	s := m.settings

	if keys.Down(KeyEscape) {
		in.Quit = true
	}

	move := s.CameraSpeed * s.ShiftScale
	rot := s.RotationSpeed
	if keys.Down(KeyShift) {
		move *= 2
		rot *= 2
	}

	in.MoveForward = axis(keys, KeyW, KeyS) * move
	in.MoveRight = axis(keys, KeyD, KeyA) * move
	in.Pitch = axis(keys, KeyUp, KeyDown) * rot
	in.Yaw = axis(keys, KeyRight, KeyLeft) * rot

	in.Light[lighting.AxisX] = axis(keys, KeyJ, KeyN) * s.LightSpeed
	in.Light[lighting.AxisY] = axis(keys, KeyB, KeyM) * s.LightSpeed
	in.Light[lighting.AxisZ] = axis(keys, KeyH, KeyK) * s.LightSpeed

	for a := Action(0); a < actionCount; a++ {
		if !keys.Down(actionKeys[a]) {
			m.cooldown[a] = 0
			continue
		}
		if m.cooldown[a] > 0 {
			m.cooldown[a]--
			continue
		}
		in.Fired[a] = true
		m.cooldown[a] = s.Cooldown
	}
	return in
}

// axis returns +1, -1 or 0 for a pair of opposing keys.
func axis(keys KeyState, pos, neg Key) float32 {
	var v float32
	if keys.Down(pos) {
		v++
	}
	if keys.Down(neg) {
		v--
	}
	return v
}

// Apply forwards the intents to the world. Screenshots are left to the caller.
func (in Intents) Apply(w *world.World) {
	if in.MoveForward != 0 || in.MoveRight != 0 {
		w.MoveCamera(in.MoveForward, in.MoveRight)
	}
	if in.Yaw != 0 || in.Pitch != 0 {
		w.AdjustCameraOrientation(in.Yaw, in.Pitch)
	}
	for i, d := range in.Light {
		if d != 0 {
			w.NudgeLight(lighting.Axis(i), d)
		}
	}

	if in.Fired[ActionFreeCamera] {
		w.SetActiveCamera(camera.FreeFly)
	}
	if in.Fired[ActionFollowCamera] {
		w.SetActiveCamera(camera.FollowAirship)
	}
	if in.Fired[ActionConeWide] {
		w.ToggleProjectorCone(lighting.ConeWide)
	}
	if in.Fired[ActionConeNarrow] {
		w.ToggleProjectorCone(lighting.ConeNarrow)
	}
	if in.Fired[ActionFreeze] {
		w.ToggleFreeze()
	}
	if in.Fired[ActionDrop] {
		if !w.RequestProjectileDrop() {
			logger.Debug("drop ignored", zap.Bool("frozen", w.Sim.Frozen()))
		}
	}
}
