package lighting

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/skydrop/pkg/math"
)

// Light describes one light source. Which fields are meaningful depends on
// the LightKind compiled into the active program.
type Light struct {
	// Position is homogeneous: w=1 for point/spot, w=0 for a directional
	// light whose xyz is the direction towards the light.
	Position math.Vec4

	// Spot cone, used only by Spot.
	SpotDirection math.Vec3
	SpotCosCutoff float32
	SpotExponent  float32

	// Constant, linear, quadratic. Unused by Directional.
	Attenuation math.Vec3

	Ambient  math.Vec4
	Diffuse  math.Vec4
	Specular math.Vec4
}

// Validation errors.
var (
	ErrCutoffRange   = errors.New("spot cosine cutoff outside [cos 90°, 1]")
	ErrNegativeExp   = errors.New("spot exponent is negative")
	ErrZeroDirection = errors.New("spot direction is zero")
)

// DefaultLight returns the scene's light: a white source above the field.
func DefaultLight() Light {
	return Light{
		Position:      math.Vec4{10, 10, 10, 1},
		SpotDirection: math.Vec3{X: 0, Y: -1, Z: 0},
		SpotCosCutoff: math32.Cos(math.Radians(40)),
		SpotExponent:  1,
		Attenuation:   math.Vec3{X: 0.5, Y: 0.001, Z: 0.0001},
		Ambient:       math.Vec4{0.2, 0.2, 0.2, 1},
		Diffuse:       math.Vec4{2, 2, 2, 2},
		Specular:      math.Vec4{1, 1, 1, 1},
	}
}

// Validate checks the spot cone invariants. The direction only matters
// for a spot light.
func (l Light) Validate(kind LightKind) error {
	if l.SpotCosCutoff < 0 || l.SpotCosCutoff > 1 {
		return fmt.Errorf("%w: %f", ErrCutoffRange, l.SpotCosCutoff)
	}
	if l.SpotExponent < 0 {
		return fmt.Errorf("%w: %f", ErrNegativeExp, l.SpotExponent)
	}
	if kind == Spot && l.SpotDirection.LengthSq() == 0 {
		return ErrZeroDirection
	}
	return nil
}

// ForKind returns a copy with Position.w set to the convention of kind.
func (l Light) ForKind(kind LightKind) Light {
	if kind == Directional {
		l.Position[3] = 0
	} else {
		l.Position[3] = 1
	}
	return l
}

// Axis names a world axis.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return fmt.Sprintf("Axis(%d)", uint8(a))
}

// Nudge moves the light position along one axis. w is left untouched.
func (l *Light) Nudge(axis Axis, delta float32) {
	if axis > AxisZ {
		return
	}
	l.Position[axis] += delta
}

// Cone selects one of the two projector cone presets.
type Cone uint8

const (
	ConeWide Cone = iota
	ConeNarrow
)

func (c Cone) String() string {
	if c == ConeNarrow {
		return "narrow"
	}
	return "wide"
}

// ConePresets holds the half-angles, in degrees, of the projector cones.
type ConePresets struct {
	WideDeg   float32
	NarrowDeg float32
}

// DefaultConePresets returns the wide/narrow half-angles.
func DefaultConePresets() ConePresets {
	return ConePresets{WideDeg: 40, NarrowDeg: 20}
}

// SetCutoffDegrees stores the cosine of the half-angle, clamped to [0°, 90°].
func (l *Light) SetCutoffDegrees(deg float32) {
	deg = math.Clamp(deg, 0, 90)
	l.SpotCosCutoff = math.Clamp(math32.Cos(math.Radians(deg)), 0, 1)
}

// SetCone applies one of the presets to the spot cutoff.
func (l *Light) SetCone(cone Cone, presets ConePresets) {
	if cone == ConeNarrow {
		l.SetCutoffDegrees(presets.NarrowDeg)
		return
	}
	l.SetCutoffDegrees(presets.WideDeg)
}
