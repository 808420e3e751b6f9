package lighting

import "github.com/Faultbox/skydrop/pkg/math"

// Material holds the surface constants pushed once per frame.
type Material struct {
	Texture   int32 // texture unit
	Ambient   math.Vec4
	Diffuse   math.Vec4
	Specular  math.Vec4
	Emission  math.Vec4
	Shininess float32
}

// DefaultMaterial returns the white material every model is drawn with.
func DefaultMaterial() Material {
	return Material{
		Texture:   0,
		Ambient:   math.Vec4{1, 1, 1, 1},
		Diffuse:   math.Vec4{1, 1, 1, 1},
		Specular:  math.Vec4{1, 1, 1, 1},
		Emission:  math.Vec4{0, 0, 0, 1},
		Shininess: 32,
	}
}

// DefaultRoughness is the Oren-Nayar surface roughness in [0, 1].
const DefaultRoughness float32 = 0.6
