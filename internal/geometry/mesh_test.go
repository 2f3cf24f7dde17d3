package geometry_test

import (
	"testing"

	"gltutor/internal/geometry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinMeshesValidate(t *testing.T) {
	meshes := map[string]geometry.Mesh{
		"triangle":    geometry.Triangle(),
		"vertexcolor": geometry.ColoredTriangle(),
		"texture":     geometry.TexturedQuad(2),
		"indexed":     geometry.IndexedQuad(),
	}
	for name, m := range meshes {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, m.Validate())
		})
	}
}

func TestLayoutStrideAndOffsets(t *testing.T) {
	l := geometry.IndexedQuad().Layout

	assert.Equal(t, 8, l.Components())
	assert.Equal(t, int32(32), l.Stride())
	assert.Equal(t, uintptr(0), l.Offset(0))
	assert.Equal(t, uintptr(12), l.Offset(1))
	assert.Equal(t, uintptr(24), l.Offset(2))
}

func TestDrawCount(t *testing.T) {
	tri := geometry.Triangle()
	assert.False(t, tri.Indexed())
	assert.Equal(t, int32(3), tri.DrawCount())

	quad := geometry.TexturedQuad(1)
	assert.Equal(t, 6, quad.VertexCount())
	assert.Equal(t, int32(6), quad.DrawCount())

	indexed := geometry.IndexedQuad()
	assert.True(t, indexed.Indexed())
	assert.Equal(t, 4, indexed.VertexCount())
	assert.Equal(t, int32(6), indexed.DrawCount())
}

func TestTexturedQuadRepeat(t *testing.T) {
	m := geometry.TexturedQuad(3)
	// third vertex is the top right corner
	assert.Equal(t, []float32{3, 3}, m.Vertices[10:12])

	fallback := geometry.TexturedQuad(0)
	assert.Equal(t, []float32{1, 1}, fallback.Vertices[10:12])
}

func TestValidateRejectsBadMeshes(t *testing.T) {
	assert.ErrorIs(t, geometry.Mesh{}.Validate(), geometry.ErrEmptyLayout)
	assert.ErrorIs(t, geometry.Mesh{Layout: geometry.Layout{geometry.Position2}}.Validate(), geometry.ErrNoVertices)

	ragged := geometry.Mesh{
		Layout:   geometry.Layout{geometry.Position2},
		Vertices: []float32{0, 0, 1},
	}
	assert.Error(t, ragged.Validate())

	outOfRange := geometry.IndexedQuad()
	outOfRange.Indices = append(outOfRange.Indices, 4)
	assert.Error(t, outOfRange.Validate())

	dupLocation := geometry.Mesh{
		Layout:   geometry.Layout{geometry.Position2, {Name: "other", Location: geometry.LocPosition, Size: 2}},
		Vertices: []float32{0, 0, 0, 0},
	}
	assert.Error(t, dupLocation.Validate())
}
