package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/skydrop/pkg/math"
)

func TestAirshipStepAndTurn(t *testing.T) {
	a := NewAirship(math.Vec3{Y: 5}, 0.5)
	a.Step()
	a.Step()
	assert.InDelta(t, 1.0, a.Position.X, 1e-6)

	a.Turn()
	assert.Equal(t, HeadingLeft, a.Heading)
	for i := 0; i < 6; i++ {
		a.Step()
	}
	assert.InDelta(t, -2.0, a.Position.X, 1e-6)
	assert.Equal(t, float32(5), a.Position.Y)
}

func TestHeading(t *testing.T) {
	assert.Equal(t, float32(1), HeadingRight.Sign())
	assert.Equal(t, float32(-1), HeadingLeft.Sign())
	assert.Equal(t, HeadingRight, HeadingLeft.Reverse())
	assert.Equal(t, "left", HeadingLeft.String())
}

func TestProjectileGrounded(t *testing.T) {
	p := Projectile{Position: math.Vec3{Y: 0.05}}
	assert.False(t, p.Grounded())
	p.Fall(0.065)
	assert.True(t, p.Grounded())
}

func TestHitUsesSumOfRadii(t *testing.T) {
	target := Target{X: 3, Radius: 0.5}
	tests := []struct {
		name string
		y    float32
		want bool
	}{
		{"far above", 2, false},
		{"touching", 0.75, false},
		{"inside", 0.7, true},
		// 0.6 < r1+r2 (0.75) but > r1²+r2² (0.3125): counts as a hit here.
		{"between squared and linear sums", 0.6, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Projectile{Position: math.Vec3{X: 3, Y: tt.y}, Radius: 0.25}
			assert.Equal(t, tt.want, Hit(p, target))
		})
	}
}

func TestTargetPositionOnGround(t *testing.T) {
	assert.Equal(t, math.Vec3{X: -7}, Target{X: -7}.Position())
}
