package lighting

import (
	"errors"
	"fmt"
)

// ErrUnknownPipeline is returned for a kind pair outside the closed enums.
var ErrUnknownPipeline = errors.New("no shader pipeline for kind pair")

// Sources names the two shader stages of one compiled program.
type Sources struct {
	Vertex   string
	Fragment string
}

func (s Sources) String() string {
	return s.Vertex + "+" + s.Fragment
}

// The vertex stage depends only on the light kind.
var vertexSources = [lightKindCount]string{
	Point:       "phong_point.vert",
	Spot:        "phong_spot.vert",
	Directional: "phong_dir.vert",
}

// Indexed by [light][shading]; sized by the enum counts so adding a kind
// without a row or column fails to compile.
var fragmentSources = [lightKindCount][shadingKindCount]string{
	Point: {
		Phong:        "phong_point.frag",
		OrenNayar:    "oren_nayar_point.frag",
		Toon:         "toon_point.frag",
		ToonSpecular: "toon_spec_point.frag",
	},
	Spot: {
		Phong:        "phong_spot.frag",
		OrenNayar:    "oren_nayar_spot.frag",
		Toon:         "toon_spot.frag",
		ToonSpecular: "toon_spec_spot.frag",
	},
	Directional: {
		Phong:        "phong_dir.frag",
		OrenNayar:    "oren_nayar_dir.frag",
		Toon:         "toon_dir.frag",
		ToonSpecular: "toon_spec_dir.frag",
	},
}

// Pipeline resolves the shader sources for a light/shading pair.
func Pipeline(light LightKind, shading ShadingKind) (Sources, error) {
	if !light.Valid() || !shading.Valid() {
		return Sources{}, fmt.Errorf("%v/%v: %w", light, shading, ErrUnknownPipeline)
	}
	return Sources{
		Vertex:   vertexSources[light],
		Fragment: fragmentSources[light][shading],
	}, nil
}

// Config is the startup selection of the lighting pipeline.
type Config struct {
	Light   LightKind
	Shading ShadingKind
}

// Sources resolves the shader sources for this configuration.
func (c Config) Sources() (Sources, error) {
	return Pipeline(c.Light, c.Shading)
}

func (c Config) String() string {
	return c.Light.String() + "/" + c.Shading.String()
}
