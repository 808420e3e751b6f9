// Package world owns the game state: the scene simulation, the cameras and
// the light, advanced once per rendered frame by the main loop.
package world

import (
	"errors"
	"fmt"

	"github.com/Faultbox/skydrop/pkg/math"
)

// Params are the fixed simulation constants.
type Params struct {
	Targets          int       // live targets, constant after every hit
	Border           int       // targets spawn at integer x in [-Border, Border], x != 0
	TurnPeriod       int       // ticks between airship turns
	AirshipStart     math.Vec3 // spawn position
	AirshipSpeed     float32   // units per tick
	FallSpeed        float32   // units per tick
	ProjectileRadius float32
	TargetRadius     float32
}

// DefaultParams returns the stock game constants.
func DefaultParams() Params {
	return Params{
		Targets:          5,
		Border:           20,
		TurnPeriod:       650,
		AirshipStart:     math.Vec3{X: 0, Y: 5, Z: 0},
		AirshipSpeed:     0.1,
		FallSpeed:        0.065,
		ProjectileRadius: 0.25,
		TargetRadius:     0.5,
	}
}

// ErrInvalidParams wraps every Params validation failure.
var ErrInvalidParams = errors.New("invalid world params")

// Validate checks the constants. A respawn needs one free slot beyond the
// live targets, since the hit target still occupies its slot while the
// replacement is drawn.
func (p Params) Validate() error {
	switch {
	case p.Targets < 0:
		return fmt.Errorf("%w: negative target count %d", ErrInvalidParams, p.Targets)
	case p.Border <= 0:
		return fmt.Errorf("%w: border must be positive, got %d", ErrInvalidParams, p.Border)
	case p.Targets+1 > 2*p.Border:
		return fmt.Errorf("%w: %d targets do not fit %d slots", ErrInvalidParams, p.Targets, 2*p.Border)
	case p.TurnPeriod < 2:
		return fmt.Errorf("%w: turn period must be at least 2, got %d", ErrInvalidParams, p.TurnPeriod)
	case p.AirshipSpeed < 0:
		return fmt.Errorf("%w: negative airship speed", ErrInvalidParams)
	case p.FallSpeed <= 0:
		return fmt.Errorf("%w: fall speed must be positive", ErrInvalidParams)
	case p.ProjectileRadius < 0 || p.TargetRadius < 0:
		return fmt.Errorf("%w: negative radius", ErrInvalidParams)
	}
	return nil
}
