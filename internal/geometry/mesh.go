package geometry

import (
	"errors"
	"fmt"
)

const floatSize = 4

// Attribute is one float32 vertex attribute
type Attribute struct {
	Name     string
	Location uint32
	Size     int32 // components
}

// Layout describes how interleaved vertex data is laid out
type Layout []Attribute

// Components returns the number of float32 values per vertex
func (l Layout) Components() int {
	n := 0
	for _, a := range l {
		n += int(a.Size)
	}
	return n
}

// Stride returns the size of one vertex in bytes
func (l Layout) Stride() int32 {
	return int32(l.Components() * floatSize)
}

// Offset returns the byte offset of attribute i inside a vertex
func (l Layout) Offset(i int) uintptr {
	off := 0
	for _, a := range l[:i] {
		off += int(a.Size)
	}
	return uintptr(off * floatSize)
}

// Mesh is CPU-side vertex data ready for upload
type Mesh struct {
	Layout   Layout
	Vertices []float32
	Indices  []uint32
}

// Indexed reports whether the mesh is drawn through an element buffer
func (m Mesh) Indexed() bool {
	return len(m.Indices) > 0
}

// VertexCount returns the number of vertices in the vertex buffer
func (m Mesh) VertexCount() int {
	c := m.Layout.Components()
	if c == 0 {
		return 0
	}
	return len(m.Vertices) / c
}

// DrawCount is the count passed to the draw call
func (m Mesh) DrawCount() int32 {
	if m.Indexed() {
		return int32(len(m.Indices))
	}
	return int32(m.VertexCount())
}

var (
	ErrEmptyLayout = errors.New("geometry: empty layout")
	ErrNoVertices  = errors.New("geometry: no vertices")
)

// Validate checks the vertex data against the layout and the index range
func (m Mesh) Validate() error {
	c := m.Layout.Components()
	if c == 0 {
		return ErrEmptyLayout
	}
	if len(m.Vertices) == 0 {
		return ErrNoVertices
	}
	if len(m.Vertices)%c != 0 {
		return fmt.Errorf("geometry: %d floats is not a multiple of %d components", len(m.Vertices), c)
	}
	seen := make(map[uint32]struct{}, len(m.Layout))
	for _, a := range m.Layout {
		if a.Size < 1 || a.Size > 4 {
			return fmt.Errorf("geometry: attribute %q has %d components", a.Name, a.Size)
		}
		if _, dup := seen[a.Location]; dup {
			return fmt.Errorf("geometry: duplicate attribute location %d", a.Location)
		}
		seen[a.Location] = struct{}{}
	}
	n := uint32(m.VertexCount())
	for i, idx := range m.Indices {
		if idx >= n {
			return fmt.Errorf("geometry: index %d at %d out of range (%d vertices)", idx, i, n)
		}
	}
	return nil
}
