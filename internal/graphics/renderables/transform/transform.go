package transform

import (
	"fmt"
	"io/fs"
	"log/slog"

	"gltutor/internal/animation"
	"gltutor/internal/geometry"
	"gltutor/internal/graphics"
	renderer "gltutor/internal/graphics/renderer"
	"gltutor/internal/input"
	"gltutor/internal/profiling"
)

const (
	moveSpeed = 1.0 // world units per second
	scaleStep = 1.1
)

// Transform draws the indexed quad through model, view and projection
// matrices, animated and steerable from the keyboard
type Transform struct {
	asset       graphics.ShaderAsset
	texturePath string
	log         *slog.Logger

	shader  *graphics.Shader
	mesh    *graphics.Mesh
	texture *graphics.Texture
	anim    *animation.Transform
}

// NewTransform creates the model-view-projection lesson animated with params
func NewTransform(fsys fs.FS, texturePath string, params animation.Params, log *slog.Logger) *Transform {
	if log == nil {
		log = slog.Default()
	}
	return &Transform{
		asset:       graphics.NewShaderAsset(fsys, "transform"),
		texturePath: texturePath,
		log:         log.With("lesson", "transform"),
		anim:        animation.NewTransform(params),
	}
}

// Init builds the program, uploads the quad and binds the texture
func (t *Transform) Init() error {
	var err error
	if t.shader, err = t.asset.Load(); err != nil {
		return err
	}
	if t.mesh, err = graphics.NewMesh(geometry.IndexedQuad()); err != nil {
		return err
	}
	params := graphics.DefaultTextureParams()
	if t.texture, err = graphics.GetTexture(t.texturePath, params); err != nil {
		return err
	}
	t.texture.Apply(params)
	return nil
}

// ApplyControls maps held and pressed actions onto the animation and camera
func ApplyControls(anim *animation.Transform, cam *graphics.Camera, im *input.InputManager, dt float64) {
	if im == nil {
		return
	}
	if im.JustPressed(input.ActionTogglePause) {
		anim.TogglePause()
	}
	if im.JustPressed(input.ActionScaleUp) {
		anim.ScaleBy(scaleStep)
	}
	if im.JustPressed(input.ActionScaleDown) {
		anim.ScaleBy(1 / scaleStep)
	}
	if im.JustPressed(input.ActionReset) {
		anim.Reset()
	}
	if im.JustPressed(input.ActionToggleProjection) && cam != nil {
		cam.ToggleProjection()
	}

	step := float32(moveSpeed * dt)
	var dx, dy float32
	if im.IsActive(input.ActionMoveLeft) {
		dx -= step
	}
	if im.IsActive(input.ActionMoveRight) {
		dx += step
	}
	if im.IsActive(input.ActionMoveUp) {
		dy += step
	}
	if im.IsActive(input.ActionMoveDown) {
		dy -= step
	}
	if dx != 0 || dy != 0 {
		anim.Nudge(dx, dy)
	}
}

// Update applies the controls and advances the animation
func (t *Transform) Update(ctx renderer.RenderContext) {
	paused, proj := t.anim.Paused, graphics.Perspective
	if ctx.Camera != nil {
		proj = ctx.Camera.Projection
	}

	ApplyControls(t.anim, ctx.Camera, ctx.Input, ctx.DT)
	t.anim.Update(ctx.DT)

	if paused != t.anim.Paused {
		t.log.Info("animation toggled", "paused", t.anim.Paused)
	}
	if ctx.Camera != nil && proj != ctx.Camera.Projection {
		t.log.Info("projection changed", "projection", ctx.Camera.Projection)
	}
}

// Render uploads model, view and projection then draws
func (t *Transform) Render(ctx renderer.RenderContext) {
	defer profiling.Track("lesson.transform")()
	t.shader.Use()
	t.shader.SetInt("tex", 0)
	t.shader.SetFloat("mixFactor", 0.5)
	t.shader.SetMatrix4("model", t.anim.Model())
	t.shader.SetMatrix4("view", ctx.View)
	t.shader.SetMatrix4("projection", ctx.Proj)
	t.texture.Bind(0)
	t.mesh.Draw()
}

func (t *Transform) SetViewport(width, height int) {}

func (t *Transform) Dispose() {
	if t.mesh != nil {
		t.mesh.Delete()
	}
	if t.shader != nil {
		t.shader.Delete()
	}
}

func (t *Transform) UsesShader(name string) bool {
	return t.asset.Uses(name)
}

func (t *Transform) ReloadShaders() error {
	s, err := t.asset.Load()
	if err != nil {
		return err
	}
	t.shader.Delete()
	t.shader = s
	return nil
}

func (t *Transform) Status() []string {
	state := "running"
	if t.anim.Paused {
		state = "paused"
	}
	return []string{
		"transform: model * view * projection",
		fmt.Sprintf("angle %.0f  scale %.2f  %s [space]", t.anim.Angle, t.anim.Scale, state),
		fmt.Sprintf("offset %.2f, %.2f [arrows]  reset [r]", t.anim.Translation.X(), t.anim.Translation.Y()),
		"scale [pgup/pgdn]  projection [p]",
	}
}
