package stage

import (
	"github.com/Faultbox/skydrop/internal/engine/frame"
	"github.com/Faultbox/skydrop/internal/game/world"
	"github.com/Faultbox/skydrop/pkg/math"
)

// Scales and orientations of the decorative and moving objects.
const (
	FloorScale   float32 = 10
	TreeScale    float32 = 0.01
	AirshipScale float32 = 0.3
)

// treeAxis stands a Z-up tree model upright.
var treeAxis = math.Vec3{X: -1}

// Meshes holds one mesh per drawn object.
type Meshes struct {
	Floor      frame.Mesh
	Tree       frame.Mesh
	Airship    frame.Mesh
	Projectile frame.Mesh
	Target     frame.Mesh
}

// Layout appends the drawables for one frame to dst[:0] and returns it.
// Order: floor, tree, airship (unless masked), projectile, targets.
func Layout(dst []frame.Drawable, f world.Frame, m Meshes) []frame.Drawable {
	dst = append(dst[:0],
		frame.Drawable{Mesh: m.Floor, Transform: frame.At(math.Vec3{}).Scaled(FloorScale)},
		frame.Drawable{
			Mesh:      m.Tree,
			Transform: frame.At(math.Vec3{}).Rotated(treeAxis, math.Radians(90)).Scaled(TreeScale),
		},
	)

	if f.AirshipVisible {
		dst = append(dst, frame.Drawable{
			Mesh:      m.Airship,
			Transform: frame.At(f.Airship.Position).Scaled(AirshipScale),
		})
	}

	// Builtin cubes are one unit across, so a diameter scale matches the
	// collision sphere.
	if f.HasProjectile {
		dst = append(dst, frame.Drawable{
			Mesh:      m.Projectile,
			Transform: frame.At(f.Projectile.Position).Scaled(2 * f.Projectile.Radius),
		})
	}
	for _, t := range f.Targets {
		dst = append(dst, frame.Drawable{
			Mesh:      m.Target,
			Transform: frame.At(t.Position()).Scaled(2 * t.Radius),
		})
	}
	return dst
}
