package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/skydrop/internal/engine/lighting"
	"github.com/Faultbox/skydrop/internal/logger"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks the settings that would otherwise fail at startup or
// break the simulation invariants.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Graphics.Width, c.Graphics.Height)
	}

	l := c.Lighting
	kind, err := lighting.ParseLightKind(l.LightKind)
	if err != nil {
		return fmt.Errorf("%w: lighting.light_kind: %w", ErrInvalid, err)
	}
	if _, err := lighting.ParseShadingKind(l.ShadingKind); err != nil {
		return fmt.Errorf("%w: lighting.shading_kind: %w", ErrInvalid, err)
	}
	if l.Roughness < 0 || l.Roughness > 1 {
		return fmt.Errorf("%w: roughness %g outside [0, 1]", ErrInvalid, l.Roughness)
	}
	angles := []struct {
		name string
		deg  float32
	}{
		{"light.spot_cutoff_deg", l.Light.SpotCutoffDeg},
		{"cone_wide_deg", l.ConeWideDeg},
		{"cone_narrow_deg", l.ConeNarrowDeg},
	}
	for _, a := range angles {
		if a.deg < 0 || a.deg > 90 {
			return fmt.Errorf("%w: lighting.%s %g outside [0, 90]", ErrInvalid, a.name, a.deg)
		}
	}
	if l.Light.SpotExponent < 0 {
		return fmt.Errorf("%w: negative spot exponent", ErrInvalid)
	}
	if kind == lighting.Spot && l.Light.SpotDirection == [3]float32{} {
		return fmt.Errorf("%w: zero spot direction for a spot light", ErrInvalid)
	}

	g := c.Game
	switch {
	case g.Targets < 0:
		return fmt.Errorf("%w: negative target count", ErrInvalid)
	case g.Border <= 0:
		return fmt.Errorf("%w: border must be positive", ErrInvalid)
	case g.Targets+1 > 2*g.Border:
		return fmt.Errorf("%w: %d targets do not fit border %d", ErrInvalid, g.Targets, g.Border)
	case g.TurnPeriod < 2:
		return fmt.Errorf("%w: turn period must be at least 2", ErrInvalid)
	case g.AirshipSpeed < 0:
		return fmt.Errorf("%w: negative airship speed", ErrInvalid)
	case g.FallSpeed <= 0:
		return fmt.Errorf("%w: fall speed must be positive", ErrInvalid)
	case g.ProjectileRadius < 0 || g.TargetRadius < 0:
		return fmt.Errorf("%w: negative radius", ErrInvalid)
	case g.ActionCooldown < 0:
		return fmt.Errorf("%w: negative action cooldown", ErrInvalid)
	}

	for _, name := range RequiredObjects {
		obj, ok := c.Data.Objects[name]
		if !ok || obj.Mesh == "" {
			return fmt.Errorf("%w: data.objects.%s has no mesh", ErrInvalid, name)
		}
	}

	if c.Logging.Level != "" && !logger.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.Logging.Level)
	}
	return nil
}
