package indexed

import (
	"fmt"
	"io/fs"
	"log/slog"

	"gltutor/internal/geometry"
	"gltutor/internal/graphics"
	renderer "gltutor/internal/graphics/renderer"
	"gltutor/internal/input"
	"gltutor/internal/profiling"
)

const mixStep = 0.1

// Indexed draws a square from four vertices and six indices through an
// element buffer, blending vertex colors with a texture
type Indexed struct {
	asset       graphics.ShaderAsset
	texturePath string
	log         *slog.Logger

	shader    *graphics.Shader
	mesh      *graphics.Mesh
	texture   *graphics.Texture
	mixFactor float32
}

// NewIndexed creates the indexed-drawing lesson. An empty texturePath uses the
// built-in checkerboard.
func NewIndexed(fsys fs.FS, texturePath string, log *slog.Logger) *Indexed {
	if log == nil {
		log = slog.Default()
	}
	return &Indexed{
		asset:       graphics.NewShaderAsset(fsys, "indexed"),
		texturePath: texturePath,
		log:         log.With("lesson", "indexed"),
		mixFactor:   0.5,
	}
}

// Init builds the program, uploads the quad with its element buffer and
// binds the texture sampler
func (ix *Indexed) Init() error {
	var err error
	if ix.shader, err = ix.asset.Load(); err != nil {
		return err
	}
	if ix.mesh, err = graphics.NewMesh(geometry.IndexedQuad()); err != nil {
		return err
	}
	params := graphics.DefaultTextureParams()
	if ix.texture, err = graphics.GetTexture(ix.texturePath, params); err != nil {
		return err
	}
	ix.texture.Apply(params)
	return nil
}

// StepMix moves the texture/vertex color blend by delta, clamped to [0,1]
func StepMix(current, delta float32) float32 {
	v := current + delta
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Update steps the mix factor on mix-up and mix-down presses
func (ix *Indexed) Update(ctx renderer.RenderContext) {
	if ctx.Input == nil {
		return
	}
	before := ix.mixFactor
	if ctx.Input.JustPressed(input.ActionMixUp) {
		ix.mixFactor = StepMix(ix.mixFactor, mixStep)
	}
	if ctx.Input.JustPressed(input.ActionMixDown) {
		ix.mixFactor = StepMix(ix.mixFactor, -mixStep)
	}
	if before != ix.mixFactor {
		ix.log.Debug("mix factor changed", "mix", ix.mixFactor)
	}
}

// Render draws the six indices of the quad
func (ix *Indexed) Render(ctx renderer.RenderContext) {
	defer profiling.Track("lesson.indexed")()
	ix.shader.Use()
	ix.shader.SetInt("tex", 0)
	ix.shader.SetFloat("mixFactor", ix.mixFactor)
	ix.texture.Bind(0)
	ix.mesh.Draw()
}

func (ix *Indexed) SetViewport(width, height int) {}

// Dispose frees the program and buffers; the texture belongs to the cache
func (ix *Indexed) Dispose() {
	if ix.mesh != nil {
		ix.mesh.Delete()
	}
	if ix.shader != nil {
		ix.shader.Delete()
	}
}

func (ix *Indexed) UsesShader(name string) bool {
	return ix.asset.Uses(name)
}

func (ix *Indexed) ReloadShaders() error {
	s, err := ix.asset.Load()
	if err != nil {
		return err
	}
	ix.shader.Delete()
	ix.shader = s
	return nil
}

func (ix *Indexed) Status() []string {
	return []string{
		"indexed: 4 vertices, 6 indices",
		fmt.Sprintf("mix: %.1f [+/-]", ix.mixFactor),
	}
}
