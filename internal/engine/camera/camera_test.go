package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/skydrop/pkg/math"
)

func TestFlyCameraDefaultLooksDownNegativeZ(t *testing.T) {
	c := NewFlyCamera()
	f := c.Forward()
	assert.InDelta(t, 0, f.X, 1e-6)
	assert.InDelta(t, 0, f.Y, 1e-6)
	assert.InDelta(t, -1, f.Z, 1e-6)
}

func TestFlyCameraForwardIsUnit(t *testing.T) {
	c := NewFlyCamera()
	for _, a := range [][2]float32{{0, 0}, {37, 12}, {-200, -80}, {15, 89}} {
		c.Yaw, c.Pitch = a[0], a[1]
		assert.InDelta(t, 1, c.Forward().Length(), 1e-5, "yaw=%v pitch=%v", a[0], a[1])
	}
}

func TestPitchClampsAtLimits(t *testing.T) {
	c := NewFlyCamera()
	for i := 0; i < 200; i++ {
		c.Rotate(0, 0.75)
	}
	assert.Equal(t, float32(89), c.Pitch)

	for i := 0; i < 400; i++ {
		c.Rotate(0, -1.5)
	}
	assert.Equal(t, float32(-89), c.Pitch)
}

func TestPitchClampKeepsForwardOffUp(t *testing.T) {
	c := NewFlyCamera()
	c.Rotate(0, 500)
	cross := c.Forward().Cross(c.Up)
	assert.Greater(t, cross.Length(), float32(0.01))
}

func TestFlyCameraMove(t *testing.T) {
	c := NewFlyCamera()
	c.Move(1, 0)
	assert.InDelta(t, 2, c.Position.Z, 1e-5)

	c.Move(0, 2)
	// forward -Z, up +Y: right is +X
	assert.InDelta(t, 2, c.Position.X, 1e-5)
}

func TestFollowViewSnapsWithHeading(t *testing.T) {
	off := FollowOffset{Height: 2, Distance: 6, Tilt: 0.35}
	ship := math.Vec3{X: 4, Y: 5, Z: 0}

	right := FollowView(ship, 1, off)
	assert.Equal(t, math.Vec3{X: -2, Y: 7, Z: 0}, right.Position)
	assert.Greater(t, right.Forward.X, float32(0))

	left := FollowView(ship, -1, off)
	assert.Equal(t, math.Vec3{X: 10, Y: 7, Z: 0}, left.Position)
	assert.Less(t, left.Forward.X, float32(0))

	assert.InDelta(t, 1, left.Forward.Length(), 1e-5)
	assert.Equal(t, right.Forward.Y, left.Forward.Y)
}

func TestRigActiveFollowsMode(t *testing.T) {
	r := NewRig(DefaultFollowOffset())
	assert.Equal(t, FreeFly, r.Mode())
	assert.Equal(t, r.Fly.View(), r.Active())

	r.Track(math.Vec3{X: 1, Y: 5}, 1)
	r.SetMode(FollowAirship)
	assert.Equal(t, r.Follow, r.Active())

	r.SetMode(Mode(9))
	assert.Equal(t, FollowAirship, r.Mode())
}

func TestViewMatrixMovesEyeToOrigin(t *testing.T) {
	v := NewFlyCamera().View()
	got := v.ViewMatrix().TransformPoint(v.Position)
	assert.InDelta(t, 0, got.Length(), 1e-5)
}
