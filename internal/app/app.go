package app

import (
	"fmt"
	"io/fs"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"gltutor/internal/animation"
	"gltutor/internal/config"
	"gltutor/internal/graphics"
	"gltutor/internal/graphics/renderables/overlay"
	renderer "gltutor/internal/graphics/renderer"
	"gltutor/internal/input"
	"gltutor/internal/lessons"
	"gltutor/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	slowFrame       = 50 * time.Millisecond
	reloadQuietTime = 150 * time.Millisecond
)

// SetupWindow creates a GL 4.1 core window and makes its context current.
// glfw.Init must have been called on the locked main thread.
func SetupWindow(ws config.WindowSettings) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	resizable := glfw.False
	if ws.Resizable {
		resizable = glfw.True
	}
	glfw.WindowHint(glfw.Resizable, resizable)

	window, err := glfw.CreateWindow(ws.Width, ws.Height, ws.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, fmt.Errorf("init gl: %w", err)
	}

	if ws.VSync {
		glfw.SwapInterval(1)
	} else {
		// the FPS limiter paces frames instead
		glfw.SwapInterval(0)
	}
	return window, nil
}

// App runs one lesson in a window
type App struct {
	window   *glfw.Window
	input    *input.InputManager
	renderer *renderer.Renderer
	watcher  *ShaderWatcher
	limiter  *FPSLimiter
	counter  *FPSCounter
	log      *slog.Logger

	lesson   lessons.Lesson
	lastTime time.Time
	fps      int
}

// New builds the lesson renderable and the overlay on the current context.
// A non-empty settings.ShaderDir is watched for hot reload.
func New(window *glfw.Window, settings config.Settings, lesson lessons.Lesson, shaders fs.FS, log *slog.Logger) (*App, error) {
	if log == nil {
		log = slog.Default()
	}
	a := &App{
		window:  window,
		input:   input.NewInputManager(),
		limiter: NewFPSLimiter(),
		log:     log,
		lesson:  lesson,
	}
	config.SetFPSLimit(settings.FPSLimit)

	scene := lesson.New(lessons.Options{
		Shaders:   shaders,
		Texture:   settings.Texture,
		Animation: animationParams(settings.Animation),
		Logger:    log,
	})
	hud := overlay.NewOverlay(shaders, a.overlayLines)

	fbWidth, fbHeight := window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))

	winWidth, winHeight := window.GetSize()
	r, err := func() (*renderer.Renderer, error) {
		defer profiling.Track("lesson.Init")()
		return renderer.NewRenderer(winWidth, winHeight, settings.ClearColor, scene, hud)
	}()
	if err != nil {
		return nil, fmt.Errorf("load lesson %s: %w", lesson.Name, err)
	}
	a.renderer = r
	log.Info("lesson loaded", "lesson", lesson.Name, "concept", lesson.Concept,
		"took", profiling.Snapshot()["lesson.Init"])

	if settings.ShaderDir != "" {
		w, err := NewShaderWatcher(settings.ShaderDir, reloadQuietTime, log)
		if err != nil {
			// hot reload is a convenience; keep running without it
			log.Warn("shader hot reload disabled", "dir", settings.ShaderDir, "error", err)
		} else {
			a.watcher = w
			log.Info("watching shaders", "dir", settings.ShaderDir)
		}
	}

	a.setupCallbacks()
	return a, nil
}

func (a *App) setupCallbacks() {
	a.input.SetKeyCallback(a.window)

	a.window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	})

	// text layout uses window coordinates, not framebuffer pixels
	a.window.SetSizeCallback(func(w *glfw.Window, width, height int) {
		a.renderer.UpdateViewport(width, height)
	})
}

// Run loops until the window is asked to close
func (a *App) Run() {
	now := time.Now()
	a.lastTime = now
	a.counter = NewFPSCounter(time.Second, now)
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	start := time.Now()
	dt := start.Sub(a.lastTime).Seconds()
	a.lastTime = start

	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	a.handleGlobalActions()
	a.reloadChangedShaders(start)

	a.renderer.Render(a.input, dt)

	func() { defer profiling.Track("glfw.SwapBuffers")(); a.window.SwapBuffers() }()

	if fps, ok := a.counter.Frame(time.Now()); ok {
		a.fps = fps
		a.log.Debug("frame rate", "fps", fps)
	}

	if took := time.Since(start); took > slowFrame {
		a.log.Warn("slow frame", "took", took,
			"lesson", profiling.SumWithPrefix("lesson."),
			"glfw", profiling.SumWithPrefix("glfw."),
			"top", profiling.TopN(3))
	}

	// Clear "JustPressed" flags
	a.input.PostUpdate()
	a.limiter.Wait()
}

func (a *App) handleGlobalActions() {
	if a.input.JustPressed(input.ActionQuit) {
		a.window.SetShouldClose(true)
	}
	if a.input.JustPressed(input.ActionToggleWireframe) {
		on := a.renderer.ToggleWireframe()
		a.log.Info("wireframe toggled", "enabled", on)
	}
}

func (a *App) reloadChangedShaders(now time.Time) {
	if a.watcher == nil {
		return
	}
	for _, name := range a.watcher.Drain(now) {
		n, errs := a.renderer.ReloadShader(name)
		for _, err := range errs {
			// the previous program stays bound
			a.log.Error("shader reload failed", "file", name, "error", err)
		}
		if n > 0 {
			a.log.Info("shader reloaded", "file", name, "programs", n)
		}
	}
}

func (a *App) overlayLines() []string {
	lines := []string{
		a.lesson.Name + " - " + a.lesson.Concept,
		"fps " + strconv.Itoa(a.fps),
	}
	if a.renderer != nil {
		lines = append(lines, a.renderer.Status()...)
	}
	return append(lines, keyHelp(a.input))
}

// keyHelp lists the controls every lesson shares, using the live bindings
func keyHelp(im *input.InputManager) string {
	var parts []string
	for _, c := range []struct {
		label  string
		action input.Action
	}{
		{"wireframe", input.ActionToggleWireframe},
		{"overlay", input.ActionToggleOverlay},
		{"quit", input.ActionQuit},
	} {
		if hint := im.Hint(c.action); hint != "" {
			parts = append(parts, c.label+" "+hint)
		}
	}
	return strings.Join(parts, "  ")
}

// Close releases GL resources and stops the watcher. The window itself is
// left to the caller.
func (a *App) Close() {
	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			a.log.Warn("close shader watcher", "error", err)
		}
	}
	if a.renderer != nil {
		a.renderer.Dispose()
	}
	graphics.ReleaseTextures()
}

func animationParams(s config.AnimationSettings) animation.Params {
	return animation.Params{
		RotationSpeed: s.RotationSpeed,
		ScaleMin:      s.ScaleMin,
		ScaleMax:      s.ScaleMax,
		ScaleSpeed:    s.ScaleSpeed,
	}
}
