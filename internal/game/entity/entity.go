// Package entity defines the actors of the drop game.
package entity

import (
	"github.com/Faultbox/skydrop/pkg/math"
)

// Heading is the airship's direction of travel along X.
type Heading int8

const (
	HeadingRight Heading = 1
	HeadingLeft  Heading = -1
)

// Sign returns +1 or -1.
func (h Heading) Sign() float32 {
	if h < 0 {
		return -1
	}
	return 1
}

// Reverse returns the opposite heading.
func (h Heading) Reverse() Heading {
	if h < 0 {
		return HeadingRight
	}
	return HeadingLeft
}

func (h Heading) String() string {
	if h < 0 {
		return "left"
	}
	return "right"
}

// Airship patrols along X at a fixed height.
type Airship struct {
	Position math.Vec3
	Heading  Heading
	Speed    float32
}

// NewAirship creates an airship heading right.
func NewAirship(pos math.Vec3, speed float32) Airship {
	return Airship{Position: pos, Heading: HeadingRight, Speed: speed}
}

// Step moves the airship one tick along its heading. There is no world edge.
func (a *Airship) Step() {
	a.Position.X += a.Heading.Sign() * a.Speed
}

// Turn reverses the heading.
func (a *Airship) Turn() {
	a.Heading = a.Heading.Reverse()
}

// Projectile is the dropped object. Only one may be in flight.
type Projectile struct {
	Position math.Vec3
	Radius   float32
}

// Fall moves the projectile down by speed.
func (p *Projectile) Fall(speed float32) {
	p.Position.Y -= speed
}

// Grounded reports whether the projectile has passed below the ground plane.
func (p *Projectile) Grounded() bool {
	return p.Position.Y < 0
}

// Target is a hittable object on the ground plane.
type Target struct {
	X      int // slot in [-border, border], never 0
	Radius float32
}

// Position returns the world position; y and z are always 0.
func (t Target) Position() math.Vec3 {
	return math.Vec3{X: float32(t.X)}
}

// Hit reports whether the projectile overlaps the target. Both are treated as
// spheres: a hit is a center distance below the sum of radii, compared squared.
func Hit(p Projectile, t Target) bool {
	r := p.Radius + t.Radius
	return p.Position.DistanceSq(t.Position()) < r*r
}
