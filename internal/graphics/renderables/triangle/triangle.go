package triangle

import (
	"io/fs"
	"math"

	"gltutor/internal/geometry"
	"gltutor/internal/graphics"
	renderer "gltutor/internal/graphics/renderer"
	"gltutor/internal/input"
	"gltutor/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// Triangle draws one triangle in a single color. The green channel pulses
// over time to show a uniform changing per frame.
type Triangle struct {
	asset  graphics.ShaderAsset
	shader *graphics.Shader
	mesh   *graphics.Mesh

	pulse bool
	color mgl32.Vec4
}

// NewTriangle creates the triangle lesson with shaders from fsys
func NewTriangle(fsys fs.FS) *Triangle {
	return &Triangle{
		asset: graphics.NewShaderAsset(fsys, "triangle"),
		pulse: true,
		color: mgl32.Vec4{1.0, 0.5, 0.2, 1.0},
	}
}

// Init builds the program and uploads the vertex buffer
func (t *Triangle) Init() error {
	var err error
	if t.shader, err = t.asset.Load(); err != nil {
		return err
	}
	if t.mesh, err = graphics.NewMesh(geometry.Triangle()); err != nil {
		return err
	}
	return nil
}

func (t *Triangle) Update(ctx renderer.RenderContext) {
	if ctx.Input != nil && ctx.Input.JustPressed(input.ActionTogglePause) {
		t.pulse = !t.pulse
	}
	if t.pulse {
		t.color[1] = float32(math.Sin(ctx.Time)/2 + 0.5)
	}
}

func (t *Triangle) Render(ctx renderer.RenderContext) {
	defer profiling.Track("lesson.triangle")()
	t.shader.Use()
	t.shader.SetVec4("color", t.color)
	t.mesh.Draw()
}

func (t *Triangle) SetViewport(width, height int) {}

// Dispose cleans up OpenGL resources
func (t *Triangle) Dispose() {
	if t.mesh != nil {
		t.mesh.Delete()
	}
	if t.shader != nil {
		t.shader.Delete()
	}
}

func (t *Triangle) UsesShader(name string) bool {
	return t.asset.Uses(name)
}

// ReloadShaders swaps in a freshly built program, keeping the old one on error
func (t *Triangle) ReloadShaders() error {
	s, err := t.asset.Load()
	if err != nil {
		return err
	}
	t.shader.Delete()
	t.shader = s
	return nil
}

func (t *Triangle) Status() []string {
	state := "off"
	if t.pulse {
		state = "on"
	}
	return []string{"triangle: one draw call, color uniform", "pulse: " + state + " [space]"}
}
