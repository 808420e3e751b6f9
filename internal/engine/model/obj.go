package model

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrEmptyMesh is returned when a source defines no faces.
var ErrEmptyMesh = errors.New("mesh has no faces")

// objParser accumulates Wavefront OBJ attribute streams and the merged mesh.
// Groups, objects and materials are ignored: every face lands in one mesh.
// vertexKey holds resolved 0-based position, texcoord and normal indices.
type vertexKey [3]int

type objParser struct {
	positions [][3]float32
	normals   [][3]float32
	uvs       [][2]float32

	mesh          Mesh
	vertexMap     map[vertexKey]uint32
	missingNormal bool
}

// ParseOBJ reads a Wavefront OBJ stream into a single indexed mesh.
// Polygons are fan-triangulated. When the file carries no normals they are
// derived from the faces and smoothed.
func ParseOBJ(name string, r io.Reader) (*Mesh, error) {
	p := &objParser{
		mesh:      Mesh{Name: name},
		vertexMap: make(map[vertexKey]uint32),
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := p.parseLine(strings.Fields(line)); err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	m := &p.mesh
	if len(m.Indices) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptyMesh)
	}
	if p.missingNormal {
		FaceNormals(m)
		SmoothNormals(m.Vertices)
	}
	computeBounds(m)
	return m, nil
}

func (p *objParser) parseLine(parts []string) error {
	switch parts[0] {
	case "v":
		v, err := parseFloats(parts[1:], 3)
		if err != nil {
			return fmt.Errorf("vertex: %w", err)
		}
		p.positions = append(p.positions, [3]float32{v[0], v[1], v[2]})
	case "vn":
		v, err := parseFloats(parts[1:], 3)
		if err != nil {
			return fmt.Errorf("normal: %w", err)
		}
		p.normals = append(p.normals, [3]float32{v[0], v[1], v[2]})
	case "vt":
		v, err := parseFloats(parts[1:], 2)
		if err != nil {
			return fmt.Errorf("texcoord: %w", err)
		}
		p.uvs = append(p.uvs, [2]float32{v[0], v[1]})
	case "f":
		if len(parts) < 4 {
			return fmt.Errorf("face needs at least 3 vertices, got %d", len(parts)-1)
		}
		faceVerts := make([]uint32, 0, len(parts)-1)
		for _, ref := range parts[1:] {
			idx, err := p.vertex(ref)
			if err != nil {
				return fmt.Errorf("face vertex %q: %w", ref, err)
			}
			faceVerts = append(faceVerts, idx)
		}
		// Fan triangulation
		for i := 2; i < len(faceVerts); i++ {
			p.mesh.Indices = append(p.mesh.Indices, faceVerts[0], faceVerts[i-1], faceVerts[i])
		}
	}
	return nil
}

// vertex resolves a "v", "v/vt", "v//vn" or "v/vt/vn" reference, reusing an
// existing vertex when the resolved indices repeat. -1 marks an absent
// component.
func (p *objParser) vertex(ref string) (uint32, error) {
	fields := strings.Split(ref, "/")
	if len(fields) > 3 {
		return 0, errors.New("too many components")
	}

	key := vertexKey{-1, -1, -1}
	pi, err := resolveIndex(fields[0], len(p.positions))
	if err != nil {
		return 0, fmt.Errorf("position: %w", err)
	}
	key[0] = pi
	if len(fields) > 1 && fields[1] != "" {
		if key[1], err = resolveIndex(fields[1], len(p.uvs)); err != nil {
			return 0, fmt.Errorf("texcoord: %w", err)
		}
	}
	if len(fields) > 2 && fields[2] != "" {
		if key[2], err = resolveIndex(fields[2], len(p.normals)); err != nil {
			return 0, fmt.Errorf("normal: %w", err)
		}
	}

	if idx, ok := p.vertexMap[key]; ok {
		return idx, nil
	}

	v := Vertex{Position: p.positions[key[0]]}
	if key[1] >= 0 {
		v.TexCoord = p.uvs[key[1]]
	}
	if key[2] >= 0 {
		v.Normal = p.normals[key[2]]
	} else {
		p.missingNormal = true
	}

	idx := uint32(len(p.mesh.Vertices))
	p.mesh.Vertices = append(p.mesh.Vertices, v)
	p.vertexMap[key] = idx
	return idx, nil
}

// resolveIndex converts a 1-based (or negative, relative) OBJ index to a
// 0-based slice index.
func resolveIndex(s string, n int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	switch {
	case i > 0 && i <= n:
		return i - 1, nil
	case i < 0 && -i <= n:
		return n + i, nil
	}
	return 0, fmt.Errorf("index %d out of range [1, %d]", i, n)
}

func parseFloats(fields []string, n int) ([]float32, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("want %d components, got %d", n, len(fields))
	}
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, err
		}
		out[i] = float32(f)
	}
	return out, nil
}
