package graphics

import (
	"gltutor/internal/geometry"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Mesh owns the vertex array and buffers of one uploaded geometry.Mesh
type Mesh struct {
	vao   uint32
	vbo   uint32
	ebo   uint32
	count int32
}

// NewMesh validates m and uploads it as a static VAO/VBO and, when indexed, an EBO
func NewMesh(m geometry.Mesh) (*Mesh, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	gm := &Mesh{count: m.DrawCount()}

	gl.GenVertexArrays(1, &gm.vao)
	gl.BindVertexArray(gm.vao)

	gl.GenBuffers(1, &gm.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, gm.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*4, gl.Ptr(m.Vertices), gl.STATIC_DRAW)

	if m.Indexed() {
		// element buffer binding is recorded in the VAO
		gl.GenBuffers(1, &gm.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gm.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)
	}

	stride := m.Layout.Stride()
	for i, a := range m.Layout {
		gl.EnableVertexAttribArray(a.Location)
		gl.VertexAttribPointerWithOffset(a.Location, a.Size, gl.FLOAT, false, stride, m.Layout.Offset(i))
	}

	// unbind to reduce accidental state changes; VAO first so it keeps its EBO
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	if m.Indexed() {
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
	}
	return gm, nil
}

// Draw binds the VAO and issues one draw call
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	if m.ebo != 0 {
		gl.DrawElementsWithOffset(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, 0)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, m.count)
	}
	gl.BindVertexArray(0)
}

// Delete frees the VAO and buffers
func (m *Mesh) Delete() {
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
}
