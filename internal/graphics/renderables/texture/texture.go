package texture

import (
	"io/fs"
	"log/slog"

	"gltutor/internal/geometry"
	"gltutor/internal/graphics"
	renderer "gltutor/internal/graphics/renderer"
	"gltutor/internal/input"
	"gltutor/internal/profiling"
)

// uvRepeat stretches texture coordinates past 1 so the wrap mode is visible
const uvRepeat = 2

// Texture draws a textured two-triangle square and lets the user switch the
// texture's wrap and filter modes at runtime
type Texture struct {
	asset       graphics.ShaderAsset
	texturePath string
	log         *slog.Logger

	shader  *graphics.Shader
	mesh    *graphics.Mesh
	texture *graphics.Texture
	params  graphics.TextureParams
}

// NewTexture creates the lesson. An empty texturePath uses the built-in checkerboard.
func NewTexture(fsys fs.FS, texturePath string, log *slog.Logger) *Texture {
	if log == nil {
		log = slog.Default()
	}
	return &Texture{
		asset:       graphics.NewShaderAsset(fsys, "texture"),
		texturePath: texturePath,
		log:         log.With("lesson", "texture"),
		params:      graphics.DefaultTextureParams(),
	}
}

// Init compiles the shader, uploads the quad and fetches the texture
func (t *Texture) Init() error {
	var err error
	if t.shader, err = t.asset.Load(); err != nil {
		return err
	}
	if t.mesh, err = graphics.NewMesh(geometry.TexturedQuad(uvRepeat)); err != nil {
		return err
	}
	if t.texture, err = graphics.GetTexture(t.texturePath, t.params); err != nil {
		return err
	}
	// a cached texture may carry another lesson's sampling state
	t.texture.Apply(t.params)

	t.shader.Use()
	t.shader.SetInt("tex", 0)
	return nil
}

// Update applies wrap/filter changes to the bound texture
func (t *Texture) Update(ctx renderer.RenderContext) {
	next := ApplyControls(t.params, ctx.Input)
	if next.Wrap != t.params.Wrap {
		t.texture.SetWrap(next.Wrap)
		t.log.Info("wrap mode changed", "wrap", next.Wrap)
	}
	if next.Filter != t.params.Filter {
		t.texture.SetFilter(next.Filter)
		t.log.Info("filter mode changed", "filter", next.Filter)
	}
	t.params = next
}

// ApplyControls returns params advanced by this frame's cycle-wrap and
// cycle-filter presses. A nil input manager leaves params unchanged.
func ApplyControls(params graphics.TextureParams, im *input.InputManager) graphics.TextureParams {
	if im == nil {
		return params
	}
	if im.JustPressed(input.ActionCycleWrap) {
		params.Wrap = params.Wrap.Next()
	}
	if im.JustPressed(input.ActionCycleFilter) {
		params.Filter = params.Filter.Next()
	}
	return params
}

// Render draws the quad with the texture on unit 0
func (t *Texture) Render(ctx renderer.RenderContext) {
	defer profiling.Track("lesson.texture")()
	t.shader.Use()
	t.texture.Bind(0)
	t.mesh.Draw()
}

func (t *Texture) SetViewport(width, height int) {}

// Dispose frees the program and buffers; the texture belongs to the cache
func (t *Texture) Dispose() {
	if t.mesh != nil {
		t.mesh.Delete()
	}
	if t.shader != nil {
		t.shader.Delete()
	}
}

func (t *Texture) UsesShader(name string) bool {
	return t.asset.Uses(name)
}

func (t *Texture) ReloadShaders() error {
	s, err := t.asset.Load()
	if err != nil {
		return err
	}
	t.shader.Delete()
	t.shader = s
	t.shader.Use()
	t.shader.SetInt("tex", 0)
	return nil
}

func (t *Texture) Status() []string {
	return []string{
		"texture: sampled quad, uv 0..2",
		"wrap: " + t.params.Wrap.String() + " [w]",
		"filter: " + t.params.Filter.String() + " [f]",
	}
}
