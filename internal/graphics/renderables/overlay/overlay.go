package overlay

import (
	"io/fs"

	"gltutor/internal/graphics"
	renderer "gltutor/internal/graphics/renderer"
	"gltutor/internal/input"
	"gltutor/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	fontPixels = 16
	margin     = 8
)

// Overlay draws status text in the top-left corner of the window
type Overlay struct {
	asset   graphics.ShaderAsset
	text    *graphics.FontRenderer
	lines   func() []string
	visible bool
	color   mgl32.Vec3
}

// NewOverlay creates an overlay showing the lines returned by source each frame
func NewOverlay(fsys fs.FS, source func() []string) *Overlay {
	return &Overlay{
		asset:   graphics.NewShaderAsset(fsys, "text"),
		lines:   source,
		visible: true,
		color:   mgl32.Vec3{1, 1, 1},
	}
}

func (o *Overlay) Init() error {
	atlas, err := graphics.BuildFontAtlas(nil, fontPixels)
	if err != nil {
		return err
	}
	o.text, err = graphics.NewFontRenderer(atlas, o.asset.FS, o.asset.Vertex, o.asset.Fragment)
	return err
}

// Update toggles visibility on the overlay key
func (o *Overlay) Update(ctx renderer.RenderContext) {
	if ctx.Input != nil && ctx.Input.JustPressed(input.ActionToggleOverlay) {
		o.visible = !o.visible
	}
}

func (o *Overlay) Render(ctx renderer.RenderContext) {
	if !o.visible || o.lines == nil {
		return
	}
	defer profiling.Track("overlay.Render")()
	o.text.RenderLines(o.lines(), margin, margin, 1, o.color)
}

// ScreenSpace keeps the overlay filled in wireframe mode
func (o *Overlay) ScreenSpace() {}

func (o *Overlay) SetViewport(width, height int) {
	if o.text != nil {
		o.text.SetViewport(width, height)
	}
}

func (o *Overlay) Dispose() {
	if o.text != nil {
		o.text.Dispose()
	}
}

func (o *Overlay) UsesShader(name string) bool {
	return o.asset.Uses(name)
}

func (o *Overlay) ReloadShaders() error {
	s, err := o.asset.Load()
	if err != nil {
		return err
	}
	o.text.SetShader(s)
	return nil
}
