package world

import (
	"errors"
	"math/rand"

	"github.com/Faultbox/skydrop/internal/game/entity"
)

// ErrNoFreeSlot is returned when every target slot is taken.
var ErrNoFreeSlot = errors.New("no free target slot")

// maxSpawnAttempts bounds the rejection sampler before it falls back to
// scanning the free slots.
const maxSpawnAttempts = 64

// spawner draws target slots uniformly from [-border, border] \ {0}.
type spawner struct {
	border int
	radius float32
	rng    *rand.Rand
}

// spawn returns a target whose x is not 0 and not in used.
func (s spawner) spawn(used []entity.Target) (entity.Target, error) {
	for i := 0; i < maxSpawnAttempts; i++ {
		x := s.rng.Intn(2*s.border+1) - s.border
		if x != 0 && !occupied(used, x) {
			return entity.Target{X: x, Radius: s.radius}, nil
		}
	}

	free := make([]int, 0, 2*s.border)
	for x := -s.border; x <= s.border; x++ {
		if x != 0 && !occupied(used, x) {
			free = append(free, x)
		}
	}
	if len(free) == 0 {
		return entity.Target{}, ErrNoFreeSlot
	}
	return entity.Target{X: free[s.rng.Intn(len(free))], Radius: s.radius}, nil
}

func occupied(targets []entity.Target, x int) bool {
	for _, t := range targets {
		if t.X == x {
			return true
		}
	}
	return false
}
