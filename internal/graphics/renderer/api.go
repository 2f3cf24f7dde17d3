package renderer

import (
	"gltutor/internal/graphics"
	"gltutor/internal/input"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext provides shared per-frame context for all renderables
type RenderContext struct {
	Camera *graphics.Camera
	Input  *input.InputManager
	DT     float64 // seconds since the previous frame
	Time   float64 // seconds since the renderer started
	View   mgl32.Mat4
	Proj   mgl32.Mat4
}

// Renderable defines the lifecycle of a render-resource owner
type Renderable interface {
	Init() error
	Update(ctx RenderContext)
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}

// ShaderReloader is implemented by renderables that can rebuild their
// program when a shader file changes
type ShaderReloader interface {
	// UsesShader reports whether the named file belongs to the renderable
	UsesShader(name string) bool
	ReloadShaders() error
}

// StatusReporter is implemented by renderables that expose text for the overlay
type StatusReporter interface {
	Status() []string
}

// ScreenSpace marks renderables drawn over the scene, such as text.
// They are always filled, even in wireframe mode.
type ScreenSpace interface {
	ScreenSpace()
}
