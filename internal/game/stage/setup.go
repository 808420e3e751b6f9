// Package stage turns configuration into the initial world and lays out the
// drawables of each frame. It has no GL dependency.
package stage

import (
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/skydrop/internal/config"
	"github.com/Faultbox/skydrop/internal/engine/camera"
	"github.com/Faultbox/skydrop/internal/engine/lighting"
	"github.com/Faultbox/skydrop/internal/game/controls"
	"github.com/Faultbox/skydrop/internal/game/world"
	"github.com/Faultbox/skydrop/internal/logger"
	"github.com/Faultbox/skydrop/pkg/math"
)

// Pipeline parses the configured light and shading kinds.
func Pipeline(cfg config.LightingConfig) (lighting.Config, error) {
	lk, err := lighting.ParseLightKind(cfg.LightKind)
	if err != nil {
		return lighting.Config{}, err
	}
	sk, err := lighting.ParseShadingKind(cfg.ShadingKind)
	if err != nil {
		return lighting.Config{}, err
	}
	return lighting.Config{Light: lk, Shading: sk}, nil
}

// Light builds the light source for the given kind.
func Light(cfg config.LightConfig, kind lighting.LightKind) lighting.Light {
	p := cfg.Position
	l := lighting.Light{
		Position:      math.Vec4{p[0], p[1], p[2], 1},
		SpotDirection: vec3(cfg.SpotDirection),
		SpotExponent:  cfg.SpotExponent,
		Attenuation:   vec3(cfg.Attenuation),
		Ambient:       math.Vec4(cfg.Ambient),
		Diffuse:       math.Vec4(cfg.Diffuse),
		Specular:      math.Vec4(cfg.Specular),
	}
	l.SetCutoffDegrees(cfg.SpotCutoffDeg)
	return l.ForKind(kind)
}

// Cones returns the projector cone presets.
func Cones(cfg config.LightingConfig) lighting.ConePresets {
	return lighting.ConePresets{WideDeg: cfg.ConeWideDeg, NarrowDeg: cfg.ConeNarrowDeg}
}

// Params converts the game section into simulation constants.
func Params(cfg config.GameConfig) world.Params {
	return world.Params{
		Targets:          cfg.Targets,
		Border:           cfg.Border,
		TurnPeriod:       cfg.TurnPeriod,
		AirshipStart:     math.Vec3{X: 0, Y: cfg.AirshipHeight, Z: 0},
		AirshipSpeed:     cfg.AirshipSpeed,
		FallSpeed:        cfg.FallSpeed,
		ProjectileRadius: cfg.ProjectileRadius,
		TargetRadius:     cfg.TargetRadius,
	}
}

// FollowOffset places the chase camera. Tilt keeps its stock value.
func FollowOffset(cfg config.GameConfig) camera.FollowOffset {
	off := camera.DefaultFollowOffset()
	off.Height = cfg.FollowHeight
	off.Distance = cfg.FollowDistance
	return off
}

// Controls returns the key settings with the configured cooldown.
func Controls(cfg config.GameConfig) controls.Settings {
	s := controls.DefaultSettings()
	s.Cooldown = cfg.ActionCooldown
	return s
}

// Seed returns the configured seed, or a time-based one when it is zero.
func Seed(cfg config.GameConfig) int64 {
	if cfg.Seed != 0 {
		return cfg.Seed
	}
	return time.Now().UnixNano()
}

// NewWorld builds the initial world from a validated config.
func NewWorld(cfg *config.Config, rng *rand.Rand) (*world.World, error) {
	pipeline, err := Pipeline(cfg.Lighting)
	if err != nil {
		return nil, err
	}

	sim, err := world.NewSimulation(Params(cfg.Game), rng)
	if err != nil {
		return nil, fmt.Errorf("creating simulation: %w", err)
	}
	sim.SetFrozen(cfg.Game.StartFrozen)

	light := Light(cfg.Lighting.Light, pipeline.Light)
	if err := light.Validate(pipeline.Light); err != nil {
		return nil, fmt.Errorf("light: %w", err)
	}

	w := world.New(
		sim,
		camera.NewRig(FollowOffset(cfg.Game)),
		light,
		Cones(cfg.Lighting),
	)
	logger.Info("world created",
		zap.Stringer("pipeline", pipeline),
		zap.Int("targets", cfg.Game.Targets),
		zap.Bool("frozen", cfg.Game.StartFrozen))
	return w, nil
}

func vec3(v [3]float32) math.Vec3 {
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}
