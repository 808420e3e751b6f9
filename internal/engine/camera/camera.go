// Package camera provides the free-fly and airship-follow viewpoints.
package camera

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/skydrop/pkg/math"
)

// Pitch limits in degrees. Keeps forward away from up so LookAt stays defined.
const (
	MinPitch float32 = -89
	MaxPitch float32 = 89
)

// Mode selects the active camera.
type Mode uint8

const (
	FreeFly Mode = iota
	FollowAirship
)

func (m Mode) String() string {
	switch m {
	case FreeFly:
		return "free_fly"
	case FollowAirship:
		return "follow_airship"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// View is the pose a frame is rendered from.
type View struct {
	Position math.Vec3
	Forward  math.Vec3
	Up       math.Vec3
}

// ViewMatrix returns LookAt(pos, pos+forward, up).
func (v View) ViewMatrix() math.Mat4 {
	return math.LookAt(v.Position, v.Position.Add(v.Forward), v.Up)
}

// FlyCamera is steered by yaw/pitch angles in degrees.
type FlyCamera struct {
	Position math.Vec3
	Up       math.Vec3
	Yaw      float32
	Pitch    float32
}

// NewFlyCamera creates a fly camera at (0,0,3) looking down -Z.
func NewFlyCamera() *FlyCamera {
	return &FlyCamera{
		Position: math.Vec3{X: 0, Y: 0, Z: 3},
		Up:       math.Vec3{X: 0, Y: 1, Z: 0},
		Yaw:      -90,
		Pitch:    0,
	}
}

// Forward converts yaw/pitch to a unit direction.
func (c *FlyCamera) Forward() math.Vec3 {
	yaw := math.Radians(c.Yaw)
	pitch := math.Radians(c.Pitch)
	return math.Vec3{
		X: math32.Cos(yaw) * math32.Cos(pitch),
		Y: math32.Sin(pitch),
		Z: math32.Sin(yaw) * math32.Cos(pitch),
	}.Normalize()
}

// Right returns the horizontal strafe direction.
func (c *FlyCamera) Right() math.Vec3 {
	return c.Forward().Cross(c.Up).Normalize()
}

// Rotate adds yaw/pitch deltas in degrees, clamping pitch to [MinPitch, MaxPitch].
func (c *FlyCamera) Rotate(deltaYaw, deltaPitch float32) {
	c.Yaw += deltaYaw
	c.Pitch = math.Clamp(c.Pitch+deltaPitch, MinPitch, MaxPitch)
}

// Move translates along forward and right.
func (c *FlyCamera) Move(forward, right float32) {
	if forward != 0 {
		c.Position = c.Position.Add(c.Forward().Scale(forward))
	}
	if right != 0 {
		c.Position = c.Position.Add(c.Right().Scale(right))
	}
}

// View returns the current pose.
func (c *FlyCamera) View() View {
	return View{Position: c.Position, Forward: c.Forward(), Up: c.Up}
}

// FollowOffset places the follow camera relative to the airship.
type FollowOffset struct {
	Height   float32 // above the airship
	Distance float32 // behind the airship along its heading
	Tilt     float32 // downward component of forward before normalization
}

// DefaultFollowOffset returns a chase position slightly above and behind.
func DefaultFollowOffset() FollowOffset {
	return FollowOffset{Height: 2, Distance: 6, Tilt: 0.35}
}

// FollowView derives the chase pose from the airship position and heading
// sign. It snaps on a heading flip; there is no interpolation.
func FollowView(target math.Vec3, heading float32, off FollowOffset) View {
	h := float32(1)
	if heading < 0 {
		h = -1
	}
	return View{
		Position: target.Add(math.Vec3{X: -h * off.Distance, Y: off.Height}),
		Forward:  math.Vec3{X: h, Y: -off.Tilt}.Normalize(),
		Up:       math.Vec3{X: 0, Y: 1, Z: 0},
	}
}

// Rig holds both cameras and which one is active.
type Rig struct {
	Fly    *FlyCamera
	Follow View
	Offset FollowOffset
	mode   Mode
}

// NewRig creates a rig with the fly camera active.
func NewRig(offset FollowOffset) *Rig {
	return &Rig{
		Fly:    NewFlyCamera(),
		Offset: offset,
		mode:   FreeFly,
	}
}

// Mode returns the active camera mode.
func (r *Rig) Mode() Mode { return r.mode }

// SetMode switches the active camera. Unknown modes are ignored.
func (r *Rig) SetMode(m Mode) {
	if m != FreeFly && m != FollowAirship {
		return
	}
	r.mode = m
}

// Track updates the follow pose from the airship.
func (r *Rig) Track(target math.Vec3, heading float32) {
	r.Follow = FollowView(target, heading, r.Offset)
}

// Active returns the pose of the active camera.
func (r *Rig) Active() View {
	if r.mode == FollowAirship {
		return r.Follow
	}
	return r.Fly.View()
}
