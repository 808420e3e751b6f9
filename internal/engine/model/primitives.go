package model

import (
	"fmt"
	"strings"
)

// Builtin mesh names usable in place of an OBJ path.
const (
	BuiltinPrefix = "builtin:"
	BuiltinCube   = BuiltinPrefix + "cube"
	BuiltinPlane  = BuiltinPrefix + "plane"
)

// IsBuiltin reports whether name refers to a builtin primitive.
func IsBuiltin(name string) bool {
	return strings.HasPrefix(name, BuiltinPrefix)
}

// Builtin returns the named primitive.
func Builtin(name string) (*Mesh, error) {
	switch name {
	case BuiltinCube:
		return Cube(), nil
	case BuiltinPlane:
		return Plane(), nil
	}
	return nil, fmt.Errorf("unknown builtin mesh %q", name)
}

// Cube returns a unit cube centered on the origin with per-face normals and
// UVs, four vertices per face.
func Cube() *Mesh {
	type face struct {
		normal [3]float32
		u, v   [3]float32 // in-plane axes, u x v = normal
	}
	faces := []face{
		{normal: [3]float32{0, 0, 1}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 1, 0}},
		{normal: [3]float32{0, 0, -1}, u: [3]float32{-1, 0, 0}, v: [3]float32{0, 1, 0}},
		{normal: [3]float32{1, 0, 0}, u: [3]float32{0, 0, -1}, v: [3]float32{0, 1, 0}},
		{normal: [3]float32{-1, 0, 0}, u: [3]float32{0, 0, 1}, v: [3]float32{0, 1, 0}},
		{normal: [3]float32{0, 1, 0}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 0, -1}},
		{normal: [3]float32{0, -1, 0}, u: [3]float32{1, 0, 0}, v: [3]float32{0, 0, 1}},
	}
	corners := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	m := &Mesh{Name: BuiltinCube}
	for _, f := range faces {
		base := uint32(len(m.Vertices))
		for _, c := range corners {
			su, sv := c[0]-0.5, c[1]-0.5
			var pos [3]float32
			for i := 0; i < 3; i++ {
				pos[i] = 0.5*f.normal[i] + su*f.u[i] + sv*f.v[i]
			}
			m.Vertices = append(m.Vertices, Vertex{Position: pos, Normal: f.normal, TexCoord: c})
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	computeBounds(m)
	return m
}

// Plane returns a 2x2 quad in the XZ plane facing +Y, UVs spanning [0,1].
func Plane() *Mesh {
	up := [3]float32{0, 1, 0}
	m := &Mesh{
		Name: BuiltinPlane,
		Vertices: []Vertex{
			{Position: [3]float32{-1, 0, 1}, Normal: up, TexCoord: [2]float32{0, 0}},
			{Position: [3]float32{1, 0, 1}, Normal: up, TexCoord: [2]float32{1, 0}},
			{Position: [3]float32{1, 0, -1}, Normal: up, TexCoord: [2]float32{1, 1}},
			{Position: [3]float32{-1, 0, -1}, Normal: up, TexCoord: [2]float32{0, 1}},
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}
	computeBounds(m)
	return m
}
