package openglhelper

import (
	"github.com/go-gl/gl/v4.6-core/gl"
)

// Vertex layout shared by every mesh: position (3 floats), normal (3 floats)
const (
	positionAttrib = 0
	normalAttrib   = 1
	vertexStride   = 6 * 4
)

// Mesh represents an indexed triangle mesh uploaded to the GPU
type Mesh struct {
	vao        *VertexArrayObject
	vbo        *BufferObject
	ebo        *BufferObject
	indexCount int32
}

// NewMesh uploads interleaved position+normal vertices and triangle indices
func NewMesh(vertices []float32, indices []uint32) *Mesh {
	vao := NewVAO()
	vao.Bind()

	vbo := NewVBO(vertices, StaticDraw)
	ebo := NewEBO(indices, StaticDraw)

	// Position attribute (3 floats)
	vao.SetVertexAttribPointer(positionAttrib, 3, gl.FLOAT, false, vertexStride, 0)
	// Normal attribute (3 floats)
	vao.SetVertexAttribPointer(normalAttrib, 3, gl.FLOAT, false, vertexStride, 3*4)

	// Unbind VAO before the buffers so the element binding stays recorded
	vao.Unbind()
	vbo.Unbind()

	return &Mesh{
		vao:        vao,
		vbo:        vbo,
		ebo:        ebo,
		indexCount: int32(len(indices)),
	}
}

// Draw renders the mesh with whatever program is currently bound
func (m *Mesh) Draw() {
	m.vao.Bind()
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	m.vao.Unbind()
}

// Delete releases all resources
func (m *Mesh) Delete() {
	m.vao.Delete()
	m.vbo.Delete()
	m.ebo.Delete()
}
