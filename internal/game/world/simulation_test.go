package world

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/skydrop/internal/game/entity"
	"github.com/Faultbox/skydrop/pkg/math"
)

func newTestSim(t *testing.T, seed int64) *Simulation {
	t.Helper()
	s, err := NewSimulation(DefaultParams(), rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	return s
}

func requireValidTargets(t *testing.T, targets []entity.Target, border int) {
	t.Helper()
	seen := make(map[int]bool)
	for _, tg := range targets {
		require.NotZero(t, tg.X)
		require.GreaterOrEqual(t, tg.X, -border)
		require.LessOrEqual(t, tg.X, border)
		require.False(t, seen[tg.X], "duplicate target slot %d", tg.X)
		seen[tg.X] = true
	}
}

func TestAirshipTurnSchedule(t *testing.T) {
	s := newTestSim(t, 1)

	var turns []int
	for i := 0; i < 3000; i++ {
		if ev := s.Advance(); ev.Turned {
			turns = append(turns, s.Tick())
		}
	}
	assert.Equal(t, []int{325, 975, 1625, 2275, 2925}, turns)

	// Exactly one turn inside every full period window.
	for start := 1; start+650 <= 3000; start += 650 {
		n := 0
		for _, tk := range turns {
			if tk >= start && tk < start+650 {
				n++
			}
		}
		assert.Equal(t, 1, n, "window starting at %d", start)
	}
}

func TestAirshipPatrolIsSymmetric(t *testing.T) {
	s := newTestSim(t, 1)
	for i := 0; i < 325; i++ {
		s.Advance()
	}
	// 324 steps right, then the first step left.
	assert.Equal(t, entity.HeadingLeft, s.Airship().Heading)
	assert.InDelta(t, 32.3, s.Airship().Position.X, 1e-2)

	for i := 0; i < 650; i++ {
		s.Advance()
	}
	assert.Equal(t, entity.HeadingRight, s.Airship().Heading)
	assert.Less(t, s.Airship().Position.X, float32(-30))
}

func TestInitialTargetsValid(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		s := newTestSim(t, seed)
		targets := s.Targets(nil)
		require.Len(t, targets, 5)
		requireValidTargets(t, targets, 20)
	}
}

func TestDropIsNoOpWhileFalling(t *testing.T) {
	s := newTestSim(t, 1)

	_, falling := s.Projectile()
	require.False(t, falling)

	require.True(t, s.Drop())
	first, falling := s.Projectile()
	require.True(t, falling)

	s.Advance()
	assert.False(t, s.Drop())
	p, _ := s.Projectile()
	assert.Equal(t, first.Position.X, p.Position.X)
	assert.Less(t, p.Position.Y, first.Position.Y)
}

func TestDropStartsAtAirship(t *testing.T) {
	s := newTestSim(t, 1)
	for i := 0; i < 10; i++ {
		s.Advance()
	}
	require.True(t, s.Drop())
	p, _ := s.Projectile()
	assert.Equal(t, s.Airship().Position, p.Position)
	assert.Equal(t, float32(0.25), p.Radius)
}

func TestMissClearsProjectile(t *testing.T) {
	s := newTestSim(t, 1)
	// Park every target away from x=0 where the projectile falls.
	s.targets = []entity.Target{{X: 10, Radius: 0.5}, {X: 11, Radius: 0.5}, {X: 12, Radius: 0.5}, {X: -10, Radius: 0.5}, {X: -11, Radius: 0.5}}
	s.projectile = entity.Projectile{Position: math.Vec3{X: 0.5, Y: 1}, Radius: 0.25}
	s.falling = true

	var missed bool
	for i := 0; i < 100 && !missed; i++ {
		missed = s.Advance().Missed
	}
	require.True(t, missed)
	_, falling := s.Projectile()
	assert.False(t, falling)
	assert.Equal(t, 0, s.Score())
	assert.Len(t, s.Targets(nil), 5)
	assert.True(t, s.Drop(), "a new drop is allowed after a miss")
}

func TestHitScenarioAboveTarget(t *testing.T) {
	s := newTestSim(t, 7)
	s.targets = []entity.Target{
		{X: 3, Radius: 0.5},
		{X: -5, Radius: 0.5},
		{X: 7, Radius: 0.5},
		{X: 12, Radius: 0.5},
		{X: -15, Radius: 0.5},
	}
	s.projectile = entity.Projectile{Position: math.Vec3{X: 3, Y: 5}, Radius: 0.25}
	s.falling = true

	ticks := 0
	var ev Events
	for ticks < 200 && !ev.Hit {
		ev = s.Advance()
		ticks++
	}

	require.True(t, ev.Hit)
	// 5 - 0.065*n < 0.25 + 0.5 first holds at n = 66.
	assert.Equal(t, 66, ticks)
	assert.Equal(t, 3, ev.HitX)
	assert.Equal(t, 1, s.Score())

	_, falling := s.Projectile()
	assert.False(t, falling)

	targets := s.Targets(nil)
	require.Len(t, targets, 5)
	requireValidTargets(t, targets, 20)
	for _, tg := range targets {
		assert.NotEqual(t, 3, tg.X)
	}
	assert.ElementsMatch(t, []int{-5, 7, 12, -15}, slotsExcept(targets, targets[0].X))
}

func slotsExcept(targets []entity.Target, skip int) []int {
	var out []int
	for _, tg := range targets {
		if tg.X != skip {
			out = append(out, tg.X)
		}
	}
	return out
}

func TestTargetCountInvariantAcrossManyHits(t *testing.T) {
	s := newTestSim(t, 42)
	for round := 0; round < 200; round++ {
		// Drop straight onto the first live target.
		tg := s.targets[round%len(s.targets)]
		s.projectile = entity.Projectile{Position: math.Vec3{X: float32(tg.X), Y: 2}, Radius: 0.25}
		s.falling = true

		hit := false
		for i := 0; i < 100 && !hit; i++ {
			hit = s.Advance().Hit
		}
		require.True(t, hit, "round %d", round)
		targets := s.Targets(nil)
		require.Len(t, targets, 5)
		requireValidTargets(t, targets, 20)
	}
	assert.Equal(t, 200, s.Score())
}

func TestFreezeLeavesStateUntouched(t *testing.T) {
	s := newTestSim(t, 3)
	for i := 0; i < 50; i++ {
		s.Advance()
	}
	require.True(t, s.Drop())
	s.Advance()

	s.SetFrozen(true)
	airship := s.Airship()
	proj, falling := s.Projectile()
	targets := s.Targets(nil)
	tick, score := s.Tick(), s.Score()

	for i := 0; i < 1000; i++ {
		assert.Equal(t, Events{}, s.Advance())
	}
	assert.False(t, s.Drop())

	assert.Equal(t, airship, s.Airship())
	p2, f2 := s.Projectile()
	assert.Equal(t, proj, p2)
	assert.Equal(t, falling, f2)
	assert.Equal(t, targets, s.Targets(nil))
	assert.Equal(t, tick, s.Tick())
	assert.Equal(t, score, s.Score())

	s.SetFrozen(false)
	s.Advance()
	assert.Equal(t, tick+1, s.Tick())
}

func TestSpawnerFallsBackToFreeSlot(t *testing.T) {
	sp := spawner{border: 2, radius: 0.5, rng: rand.New(rand.NewSource(1))}
	used := []entity.Target{{X: -2}, {X: -1}, {X: 2}}

	for i := 0; i < 20; i++ {
		tg, err := sp.spawn(used)
		require.NoError(t, err)
		assert.Equal(t, 1, tg.X)
		assert.Equal(t, float32(0.5), tg.Radius)
	}

	_, err := sp.spawn(append(used, entity.Target{X: 1}))
	assert.ErrorIs(t, err, ErrNoFreeSlot)
}

func TestSpawnerUniformCoverage(t *testing.T) {
	sp := spawner{border: 20, rng: rand.New(rand.NewSource(5))}
	seen := make(map[int]int)
	for i := 0; i < 4000; i++ {
		tg, err := sp.spawn(nil)
		require.NoError(t, err)
		seen[tg.X]++
	}
	assert.Len(t, seen, 40)
	assert.Zero(t, seen[0])
}

func TestParamsValidate(t *testing.T) {
	assert.NoError(t, DefaultParams().Validate())

	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"too many targets", func(p *Params) { p.Targets = 40 }},
		{"zero border", func(p *Params) { p.Border = 0 }},
		{"short period", func(p *Params) { p.TurnPeriod = 1 }},
		{"zero fall speed", func(p *Params) { p.FallSpeed = 0 }},
		{"negative radius", func(p *Params) { p.TargetRadius = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)
			assert.ErrorIs(t, p.Validate(), ErrInvalidParams)

			_, err := NewSimulation(p, rand.New(rand.NewSource(1)))
			assert.Error(t, err)
		})
	}

	p := DefaultParams()
	p.Targets = 39
	assert.NoError(t, p.Validate())
}
