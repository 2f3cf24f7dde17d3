package renderer

import (
	"fmt"
	"time"

	"gltutor/internal/graphics"
	"gltutor/internal/input"
	"gltutor/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	camera      *graphics.Camera
	clearColor  [4]float32
	start       time.Time
	wireframe   bool
}

// NewRenderer creates a renderer and initializes the renderables in order.
// If one fails, it and the ones before it are disposed in reverse order, so
// partially initialized handles are released too; Dispose must be nil-safe.
func NewRenderer(width, height int, clearColor [4]float32, rs ...Renderable) (*Renderer, error) {
	r := &Renderer{
		camera:     graphics.NewCamera(width, height),
		clearColor: clearColor,
		start:      time.Now(),
	}

	for i, rr := range rs {
		if err := rr.Init(); err != nil {
			for j := i; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, fmt.Errorf("init renderable %d (%T): %w", i, rr, err)
		}
		rr.SetViewport(width, height)
	}
	r.renderables = rs
	return r, nil
}

// Render clears the screen, then updates and draws every renderable
func (r *Renderer) Render(im *input.InputManager, dt float64) {
	gl.ClearColor(r.clearColor[0], r.clearColor[1], r.clearColor[2], r.clearColor[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	ctx := RenderContext{
		Camera: r.camera,
		Input:  im,
		DT:     dt,
		Time:   time.Since(r.start).Seconds(),
		View:   r.camera.GetViewMatrix(),
		Proj:   r.camera.GetProjectionMatrix(),
	}

	func() {
		defer profiling.Track("renderer.Update")()
		for _, rr := range r.renderables {
			rr.Update(ctx)
		}
	}()

	// camera may change during update
	ctx.View = r.camera.GetViewMatrix()
	ctx.Proj = r.camera.GetProjectionMatrix()

	defer profiling.Track("renderer.Render")()
	for _, rr := range r.renderables {
		mode := uint32(gl.FILL)
		if _, overlay := rr.(ScreenSpace); r.wireframe && !overlay {
			mode = gl.LINE
		}
		gl.PolygonMode(gl.FRONT_AND_BACK, mode)
		rr.Render(ctx)
	}
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
}

// ToggleWireframe switches scene renderables between filled and line polygons
func (r *Renderer) ToggleWireframe() bool {
	r.wireframe = !r.wireframe
	return r.wireframe
}

// ReloadShader rebuilds the programs of renderables using the named file.
// It returns how many were reloaded and the errors of those that failed.
func (r *Renderer) ReloadShader(name string) (int, []error) {
	var errs []error
	n := 0
	for _, rr := range r.renderables {
		sr, ok := rr.(ShaderReloader)
		if !ok || !sr.UsesShader(name) {
			continue
		}
		if err := sr.ReloadShaders(); err != nil {
			errs = append(errs, fmt.Errorf("%T: %w", rr, err))
			continue
		}
		n++
	}
	return n, errs
}

// Status gathers overlay lines from every StatusReporter
func (r *Renderer) Status() []string {
	var lines []string
	for _, rr := range r.renderables {
		if sr, ok := rr.(StatusReporter); ok {
			lines = append(lines, sr.Status()...)
		}
	}
	return lines
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
	r.renderables = nil
}

// GetCamera returns the camera instance
func (r *Renderer) GetCamera() *graphics.Camera {
	return r.camera
}

// UpdateViewport updates the camera and every renderable
func (r *Renderer) UpdateViewport(width, height int) {
	r.camera.SetViewport(width, height)
	for _, rr := range r.renderables {
		rr.SetViewport(width, height)
	}
}
