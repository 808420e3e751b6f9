package world

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/Faultbox/skydrop/internal/game/entity"
	"github.com/Faultbox/skydrop/internal/logger"
)

// Events reports what happened during one Advance.
type Events struct {
	Turned bool // airship reversed heading
	Hit    bool // projectile struck a target
	Missed bool // projectile reached the ground
	HitX   int  // slot of the struck target when Hit
}

// Simulation owns the airship, the projectile and the target set and moves
// them forward by a fixed step per tick.
type Simulation struct {
	params  Params
	spawner spawner

	tick       int
	airship    entity.Airship
	projectile entity.Projectile
	falling    bool
	targets    []entity.Target
	score      int
	frozen     bool
}

// NewSimulation validates params and places the initial targets.
func NewSimulation(params Params, rng *rand.Rand) (*Simulation, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	s := &Simulation{
		params: params,
		spawner: spawner{
			border: params.Border,
			radius: params.TargetRadius,
			rng:    rng,
		},
		airship: entity.NewAirship(params.AirshipStart, params.AirshipSpeed),
		targets: make([]entity.Target, 0, params.Targets+1),
	}

	for len(s.targets) < params.Targets {
		t, err := s.spawner.spawn(s.targets)
		if err != nil {
			return nil, fmt.Errorf("placing target %d: %w", len(s.targets), err)
		}
		s.targets = append(s.targets, t)
	}

	logger.Debug("simulation created",
		zap.Int("targets", len(s.targets)),
		zap.Int("turnPeriod", params.TurnPeriod))
	return s, nil
}

// Advance runs one tick. It does nothing while frozen.
func (s *Simulation) Advance() Events {
	var ev Events
	if s.frozen {
		return ev
	}

	s.tick++
	period := s.params.TurnPeriod
	if (s.tick+period/2)%period == 0 {
		s.airship.Turn()
		ev.Turned = true
		logger.Debug("airship turned",
			zap.Int("tick", s.tick),
			zap.Stringer("heading", s.airship.Heading))
	}
	s.airship.Step()

	if s.falling {
		s.projectile.Fall(s.params.FallSpeed)
		if i := s.struck(); i >= 0 {
			ev.Hit = true
			ev.HitX = s.targets[i].X
			s.falling = false
			if err := s.replaceTarget(i); err != nil {
				// Unreachable with validated params.
				logger.Error("target respawn failed", zap.Error(err))
			}
		} else if s.projectile.Grounded() {
			ev.Missed = true
			s.falling = false
			logger.Debug("projectile missed", zap.Float32("x", s.projectile.Position.X))
		}
	}

	return ev
}

// struck returns the index of the first target the projectile overlaps, or -1.
func (s *Simulation) struck() int {
	for i, t := range s.targets {
		if entity.Hit(s.projectile, t) {
			return i
		}
	}
	return -1
}

// replaceTarget scores a hit on target i and swaps in a new target. The
// replacement is drawn while i is still live so it never lands on the same slot.
func (s *Simulation) replaceTarget(i int) error {
	hitX := s.targets[i].X
	s.score++

	t, err := s.spawner.spawn(s.targets)
	if err != nil {
		s.targets = append(s.targets[:i], s.targets[i+1:]...)
		return err
	}
	s.targets[i] = t

	logger.Debug("target hit",
		zap.Int("x", hitX),
		zap.Int("respawnX", t.X),
		zap.Int("score", s.score))
	return nil
}

// Drop releases a projectile from the airship. It returns false when one is
// already falling or the simulation is frozen.
func (s *Simulation) Drop() bool {
	if s.falling || s.frozen {
		return false
	}
	s.projectile = entity.Projectile{
		Position: s.airship.Position,
		Radius:   s.params.ProjectileRadius,
	}
	s.falling = true
	logger.Debug("projectile dropped", zap.Float32("x", s.projectile.Position.X))
	return true
}

// SetFrozen pauses or resumes the simulation.
func (s *Simulation) SetFrozen(frozen bool) {
	s.frozen = frozen
}

// Frozen reports whether Advance is currently a no-op.
func (s *Simulation) Frozen() bool { return s.frozen }

// Tick returns the number of ticks advanced so far.
func (s *Simulation) Tick() int { return s.tick }

// Score returns the number of targets hit.
func (s *Simulation) Score() int { return s.score }

// Airship returns the airship state.
func (s *Simulation) Airship() entity.Airship { return s.airship }

// Projectile returns the projectile and whether one is falling.
func (s *Simulation) Projectile() (entity.Projectile, bool) {
	return s.projectile, s.falling
}

// Targets appends the live targets to dst and returns it.
func (s *Simulation) Targets(dst []entity.Target) []entity.Target {
	return append(dst, s.targets...)
}

// Params returns the simulation constants.
func (s *Simulation) Params() Params { return s.params }
