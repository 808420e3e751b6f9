// Package scene owns the GPU side of the fixed object set: one uploaded mesh
// and texture per named object.
package scene

import (
	"errors"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/skydrop/internal/engine/model"
	"github.com/Faultbox/skydrop/internal/engine/texture"
)

// ErrEmptyModel is returned when uploading a mesh without triangles.
var ErrEmptyModel = errors.New("model has no triangles")

// Model is an uploaded mesh with its texture. It implements frame.Mesh.
type Model struct {
	Name string

	vao, vbo, ebo uint32
	texture       uint32
	indexCount    int32
}

// Upload creates the GL buffers and texture for mesh and img.
// Must be called with the GL context current.
func Upload(mesh *model.Mesh, img *image.RGBA) (*Model, error) {
	if len(mesh.Indices) == 0 || len(mesh.Vertices) == 0 {
		return nil, ErrEmptyModel
	}
	if err := texture.Check(img); err != nil {
		return nil, err
	}

	m := &Model{Name: mesh.Name}
	m.uploadMesh(mesh.Vertices, mesh.Indices)
	m.texture = uploadTexture(img)
	return m, nil
}

func (m *Model) uploadMesh(vertices []model.Vertex, indices []uint32) {
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	vertexSize := int(unsafe.Sizeof(model.Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*vertexSize, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)
	// Normal
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, int32(vertexSize), 3*4)
	gl.EnableVertexAttribArray(1)
	// TexCoord
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, int32(vertexSize), 6*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	m.indexCount = int32(len(indices))
	gl.BindVertexArray(0)
}

func uploadTexture(img *image.RGBA) uint32 {
	var texID uint32
	gl.GenTextures(1, &texID)
	gl.BindTexture(gl.TEXTURE_2D, texID)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(img.Bounds().Dx()), int32(img.Bounds().Dy()), 0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return texID
}

// Draw binds the texture to unit 0 and draws the indexed triangles.
// The program and its transform uniforms must already be set.
func (m *Model) Draw() {
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, m.texture)
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Release deletes the GL objects. Safe to call twice.
func (m *Model) Release() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
	if m.texture != 0 {
		gl.DeleteTextures(1, &m.texture)
	}
	*m = Model{Name: m.Name}
}
