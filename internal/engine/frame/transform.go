// Package frame pushes per-frame uniforms and issues draws for a list of
// drawables. It only talks to the UniformSink and Mesh interfaces, so it has
// no GL dependency of its own.
package frame

import (
	"github.com/Faultbox/skydrop/pkg/math"
)

// Rotation is an axis-angle rotation; Angle is in radians.
type Rotation struct {
	Axis  math.Vec3
	Angle float32
}

// Transform places a mesh in the world. The model matrix is
// T * R0 * R1 * ... * S, so scale applies first and translation last.
type Transform struct {
	Translation math.Vec3
	Rotations   []Rotation
	Scale       math.Vec3 // zero means unit scale
}

// At returns a unit-scale transform at pos.
func At(pos math.Vec3) Transform {
	return Transform{Translation: pos, Scale: math.Vec3{X: 1, Y: 1, Z: 1}}
}

// Scaled returns a copy with a uniform scale.
func (t Transform) Scaled(s float32) Transform {
	t.Scale = math.Vec3{X: s, Y: s, Z: s}
	return t
}

// Rotated returns a copy with one more rotation applied after the existing ones.
func (t Transform) Rotated(axis math.Vec3, angle float32) Transform {
	rs := make([]Rotation, len(t.Rotations), len(t.Rotations)+1)
	copy(rs, t.Rotations)
	t.Rotations = append(rs, Rotation{Axis: axis, Angle: angle})
	return t
}

// Model composes translate, rotate, scale.
func (t Transform) Model() math.Mat4 {
	m := math.Translate(t.Translation)
	for _, r := range t.Rotations {
		m = m.Mul(math.RotateAxis(r.Axis, r.Angle))
	}
	s := t.Scale
	if s == (math.Vec3{}) {
		return m
	}
	return m.Mul(math.Scale(s))
}

// Normal returns transpose(inverse(upper-left 3x3 of Model)).
func (t Transform) Normal() math.Mat3 {
	return t.Model().NormalMatrix()
}
