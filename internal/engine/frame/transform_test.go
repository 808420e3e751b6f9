package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/skydrop/pkg/math"
)

func assertVec3InDelta(t *testing.T, want, got math.Vec3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-4)
	assert.InDelta(t, want.Y, got.Y, 1e-4)
	assert.InDelta(t, want.Z, got.Z, 1e-4)
}

func TestZeroScaleIsUnit(t *testing.T) {
	tr := Transform{Translation: math.Vec3{X: 1, Y: 2, Z: 3}}
	assert.Equal(t, At(math.Vec3{X: 1, Y: 2, Z: 3}).Model(), tr.Model())
}

func TestTransformOrder(t *testing.T) {
	// Scale first, then rotate 90° about Y, then translate.
	tr := At(math.Vec3{X: 10}).
		Rotated(math.Vec3{Y: 1}, math.Radians(90)).
		Scaled(2)

	got := tr.Model().TransformPoint(math.Vec3{X: 1})
	assertVec3InDelta(t, math.Vec3{X: 10, Z: -2}, got)
}

func TestRotatedDoesNotAlias(t *testing.T) {
	base := At(math.Vec3{}).Rotated(math.Vec3{X: 1}, 1)
	a := base.Rotated(math.Vec3{Y: 1}, 1)
	b := base.Rotated(math.Vec3{Z: 1}, 1)
	assert.Len(t, base.Rotations, 1)
	assert.Equal(t, math.Vec3{Y: 1}, a.Rotations[1].Axis)
	assert.Equal(t, math.Vec3{Z: 1}, b.Rotations[1].Axis)
}

func TestTreeTransformStandsUpright(t *testing.T) {
	// A model authored Z-up is stood up by -90° about X.
	tr := At(math.Vec3{}).Rotated(math.Vec3{X: -1}, math.Radians(90)).Scaled(0.01)
	top := tr.Model().TransformPoint(math.Vec3{Z: 100})
	assertVec3InDelta(t, math.Vec3{Y: 1}, top)
}

func TestNormalStaysPerpendicularUnderNonUniformScale(t *testing.T) {
	tr := At(math.Vec3{X: 3}).Rotated(math.Vec3{Z: 1}, 0.4)
	tr.Scale = math.Vec3{X: 4, Y: 1, Z: 0.5}

	// Surface through the origin with normal n and tangent u, n·u = 0.
	n := math.Vec3{X: 1, Y: 1, Z: 0}.Normalize()
	u := math.Vec3{X: 1, Y: -1, Z: 0}.Normalize()

	tu := tr.Model().TransformDirection(u)
	tn := tr.Normal().MulVec3(n)
	assert.InDelta(t, 0, tn.Dot(tu), 1e-4)
}
