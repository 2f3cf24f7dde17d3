package geometry

// Attribute locations shared by the lesson shaders
const (
	LocPosition uint32 = 0
	LocColor    uint32 = 1
	LocTexCoord uint32 = 2
)

var (
	Position2 = Attribute{Name: "position", Location: LocPosition, Size: 2}
	Position3 = Attribute{Name: "position", Location: LocPosition, Size: 3}
	Color3    = Attribute{Name: "color", Location: LocColor, Size: 3}
	TexCoord2 = Attribute{Name: "texCoord", Location: LocTexCoord, Size: 2}
)

// Triangle is a single triangle in normalized device coordinates
func Triangle() Mesh {
	return Mesh{
		Layout: Layout{Position2},
		Vertices: []float32{
			-0.5, -0.5,
			0.5, -0.5,
			0.0, 0.5,
		},
	}
}

// ColoredTriangle carries a red, green and blue corner
func ColoredTriangle() Mesh {
	return Mesh{
		Layout: Layout{Position2, Color3},
		Vertices: []float32{
			-0.5, -0.5, 1, 0, 0,
			0.5, -0.5, 0, 1, 0,
			0.0, 0.5, 0, 0, 1,
		},
	}
}

// TexturedQuad is a square built from two triangles.
// Texture coordinates span [0, repeat] so values above 1 expose the wrap mode.
func TexturedQuad(repeat float32) Mesh {
	if repeat <= 0 {
		repeat = 1
	}
	r := repeat
	return Mesh{
		Layout: Layout{Position2, TexCoord2},
		Vertices: []float32{
			// first triangle
			-0.5, -0.5, 0, 0,
			0.5, -0.5, r, 0,
			0.5, 0.5, r, r,
			// second triangle
			0.5, 0.5, r, r,
			-0.5, 0.5, 0, r,
			-0.5, -0.5, 0, 0,
		},
	}
}

// IndexedQuad is a square with four shared vertices and six indices
func IndexedQuad() Mesh {
	return Mesh{
		Layout: Layout{Position3, Color3, TexCoord2},
		Vertices: []float32{
			0.5, 0.5, 0, 1, 0, 0, 1, 1, // top right
			0.5, -0.5, 0, 0, 1, 0, 1, 0, // bottom right
			-0.5, -0.5, 0, 0, 0, 1, 0, 0, // bottom left
			-0.5, 0.5, 0, 1, 1, 0, 0, 1, // top left
		},
		Indices: []uint32{
			0, 1, 3,
			1, 2, 3,
		},
	}
}
