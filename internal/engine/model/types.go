// Package model builds CPU-side triangle meshes from OBJ files and builtin
// primitives. Upload to the GPU lives in the scene package.
package model

// Vertex represents a model mesh vertex with position, normal, and texture coordinates.
// The layout matches the shader attributes: location 0, 1 and 2.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Mesh holds the complete model mesh data ready for GPU upload.
type Mesh struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// Bounds holds the axis-aligned bounding box of the model.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Size returns the extent along each axis.
func (b Bounds) Size() [3]float32 {
	return [3]float32{b.Max[0] - b.Min[0], b.Max[1] - b.Min[1], b.Max[2] - b.Min[2]}
}

// Triangles returns the number of indexed triangles.
func (m *Mesh) Triangles() int {
	return len(m.Indices) / 3
}
