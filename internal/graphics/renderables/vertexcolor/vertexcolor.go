package vertexcolor

import (
	"io/fs"

	"gltutor/internal/geometry"
	"gltutor/internal/graphics"
	renderer "gltutor/internal/graphics/renderer"
	"gltutor/internal/profiling"
)

// VertexColor draws a triangle whose corner colors are interpolated
// across its surface
type VertexColor struct {
	asset  graphics.ShaderAsset
	shader *graphics.Shader
	mesh   *graphics.Mesh
}

// NewVertexColor creates the per-vertex color lesson with shaders from fsys
func NewVertexColor(fsys fs.FS) *VertexColor {
	return &VertexColor{asset: graphics.NewShaderAsset(fsys, "vertexcolor")}
}

// Init builds the program and uploads the interleaved position/color buffer
func (v *VertexColor) Init() error {
	var err error
	if v.shader, err = v.asset.Load(); err != nil {
		return err
	}
	v.mesh, err = graphics.NewMesh(geometry.ColoredTriangle())
	return err
}

func (v *VertexColor) Update(ctx renderer.RenderContext) {}

// Render draws the triangle; colors are interpolated across it
func (v *VertexColor) Render(ctx renderer.RenderContext) {
	defer profiling.Track("lesson.vertexcolor")()
	v.shader.Use()
	v.mesh.Draw()
}

func (v *VertexColor) SetViewport(width, height int) {}

func (v *VertexColor) Dispose() {
	if v.mesh != nil {
		v.mesh.Delete()
	}
	if v.shader != nil {
		v.shader.Delete()
	}
}

func (v *VertexColor) UsesShader(name string) bool {
	return v.asset.Uses(name)
}

func (v *VertexColor) ReloadShaders() error {
	s, err := v.asset.Load()
	if err != nil {
		return err
	}
	v.shader.Delete()
	v.shader = s
	return nil
}

func (v *VertexColor) Status() []string {
	return []string{"vertexcolor: position + color attributes"}
}
