// Package lighting describes light sources, shading models and the shader
// pipeline selected from them.
package lighting

import (
	"errors"
	"fmt"
	"strings"
)

// LightKind selects the lighting geometry compiled into the program.
type LightKind uint8

const (
	Point LightKind = iota
	Spot
	Directional

	lightKindCount
)

// ShadingKind selects the fragment shading algorithm.
type ShadingKind uint8

const (
	Phong ShadingKind = iota
	OrenNayar
	Toon
	ToonSpecular

	shadingKindCount
)

// ErrUnknownKind is returned when parsing an unrecognized kind name.
var ErrUnknownKind = errors.New("unknown kind")

var lightKindNames = [lightKindCount]string{
	Point:       "point",
	Spot:        "spot",
	Directional: "directional",
}

var shadingKindNames = [shadingKindCount]string{
	Phong:        "phong",
	OrenNayar:    "oren_nayar",
	Toon:         "toon",
	ToonSpecular: "toon_specular",
}

// LightKinds returns every light kind in declaration order.
func LightKinds() []LightKind {
	return []LightKind{Point, Spot, Directional}
}

// ShadingKinds returns every shading kind in declaration order.
func ShadingKinds() []ShadingKind {
	return []ShadingKind{Phong, OrenNayar, Toon, ToonSpecular}
}

// Valid reports whether k is one of the declared light kinds.
func (k LightKind) Valid() bool { return k < lightKindCount }

// Valid reports whether k is one of the declared shading kinds.
func (k ShadingKind) Valid() bool { return k < shadingKindCount }

func (k LightKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("LightKind(%d)", uint8(k))
	}
	return lightKindNames[k]
}

func (k ShadingKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("ShadingKind(%d)", uint8(k))
	}
	return shadingKindNames[k]
}

// ParseLightKind parses a config name such as "spot".
func ParseLightKind(s string) (LightKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range lightKindNames {
		if n == name {
			return LightKind(k), nil
		}
	}
	return 0, fmt.Errorf("light kind %q: %w", s, ErrUnknownKind)
}

// ParseShadingKind parses a config name such as "oren_nayar".
func ParseShadingKind(s string) (ShadingKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.ReplaceAll(name, "-", "_")
	for k, n := range shadingKindNames {
		if n == name {
			return ShadingKind(k), nil
		}
	}
	return 0, fmt.Errorf("shading kind %q: %w", s, ErrUnknownKind)
}
