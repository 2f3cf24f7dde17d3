package graphics

import (
	"fmt"
	"image"
	"io/fs"
	"math"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Glyph describes a single character's placement and metrics within the atlas
type Glyph struct {
	// Pixel coordinates in the atlas (top-left origin)
	AtlasX, AtlasY float32
	Width, Height  float32
	// Offset from the pen position on the baseline
	BearingX, BearingY float32
	Advance            float32
}

// FontAtlas is a baked ASCII glyph sheet
type FontAtlas struct {
	Image      *image.Alpha
	LineHeight float32
	Glyphs     map[rune]Glyph
}

const (
	firstGlyph   = rune(32)
	lastGlyph    = rune(126)
	atlasWidth   = 512
	glyphPadding = 1
)

// BuildFontAtlas bakes printable ASCII of the given TrueType/OpenType font.
// A nil fontData uses Go Mono.
func BuildFontAtlas(fontData []byte, fontPixels float64) (*FontAtlas, error) {
	if fontData == nil {
		fontData = gomono.TTF
	}
	f, err := opentype.Parse(fontData)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: fontPixels, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	defer func() { _ = face.Close() }()

	metrics := face.Metrics()
	rowH := (metrics.Ascent + metrics.Descent).Ceil() + glyphPadding

	// first pass packs rows to find the atlas height
	type placed struct {
		r    rune
		x, y int
	}
	var layout []placed
	x, y := 0, 0
	for r := firstGlyph; r <= lastGlyph; r++ {
		dr, _, _, _, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok {
			continue
		}
		if x+dr.Dx()+glyphPadding > atlasWidth {
			x = 0
			y += rowH
		}
		layout = append(layout, placed{r: r, x: x, y: y})
		x += dr.Dx() + glyphPadding
	}
	atlasH := nextPowerOfTwo(y + rowH)

	atlas := &FontAtlas{
		Image:      image.NewAlpha(image.Rect(0, 0, atlasWidth, atlasH)),
		LineHeight: float32(rowH),
		Glyphs:     make(map[rune]Glyph, len(layout)),
	}

	for _, p := range layout {
		dr, mask, maskp, advance, ok := face.Glyph(fixed.P(0, 0), p.r)
		if !ok {
			continue
		}
		if mask != nil && dr.Dx() > 0 && dr.Dy() > 0 {
			draw.Draw(atlas.Image, image.Rect(p.x, p.y, p.x+dr.Dx(), p.y+dr.Dy()), mask, maskp, draw.Src)
		}
		atlas.Glyphs[p.r] = Glyph{
			AtlasX:   float32(p.x),
			AtlasY:   float32(p.y),
			Width:    float32(dr.Dx()),
			Height:   float32(dr.Dy()),
			BearingX: float32(dr.Min.X),
			BearingY: float32(-dr.Min.Y),
			Advance:  float32(math.Round(float64(advance) / 64.0)),
		}
	}
	return atlas, nil
}

// Measure returns the width and line height of text at the given scale
func (a *FontAtlas) Measure(text string, scale float32) (float32, float32) {
	var w float32
	for _, r := range text {
		w += a.glyph(r).Advance * scale
	}
	return w, a.LineHeight * scale
}

func (a *FontAtlas) glyph(r rune) Glyph {
	if g, ok := a.Glyphs[r]; ok {
		return g
	}
	// missing glyphs advance like a space
	return Glyph{Advance: a.Glyphs[' '].Advance}
}

// TextVertices builds two triangles per glyph as x, y, u, v.
// (x, y) is the pen position on the baseline in pixels, y growing downward.
func (a *FontAtlas) TextVertices(text string, x, y, scale float32) []float32 {
	aw := float32(a.Image.Rect.Dx())
	ah := float32(a.Image.Rect.Dy())
	verts := make([]float32, 0, len(text)*6*4)
	for _, r := range text {
		g := a.glyph(r)
		if g.Width > 0 && g.Height > 0 {
			x0 := x + g.BearingX*scale
			y0 := y - g.BearingY*scale
			x1 := x0 + g.Width*scale
			y1 := y0 + g.Height*scale
			u0, v0 := g.AtlasX/aw, g.AtlasY/ah
			u1, v1 := (g.AtlasX+g.Width)/aw, (g.AtlasY+g.Height)/ah
			verts = append(verts,
				x0, y1, u0, v1,
				x0, y0, u0, v0,
				x1, y0, u1, v0,
				x0, y1, u0, v1,
				x1, y0, u1, v0,
				x1, y1, u1, v1,
			)
		}
		x += g.Advance * scale
	}
	return verts
}

// FontRenderer draws text in window pixel coordinates
type FontRenderer struct {
	atlas      *FontAtlas
	shader     *Shader
	texture    uint32
	projection mgl32.Mat4
	vao        uint32
	vbo        uint32
}

// NewFontRenderer uploads the atlas and loads the text shader from fsys
func NewFontRenderer(atlas *FontAtlas, fsys fs.FS, vertexPath, fragmentPath string) (*FontRenderer, error) {
	if atlas == nil || len(atlas.Glyphs) == 0 {
		return nil, fmt.Errorf("invalid font atlas")
	}
	shader, err := NewShader(fsys, vertexPath, fragmentPath)
	if err != nil {
		return nil, err
	}
	fr := &FontRenderer{atlas: atlas, shader: shader}

	gl.GenTextures(1, &fr.texture)
	gl.BindTexture(gl.TEXTURE_2D, fr.texture)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(atlas.Image.Rect.Dx()), int32(atlas.Image.Rect.Dy()),
		0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(atlas.Image.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.GenVertexArrays(1, &fr.vao)
	gl.GenBuffers(1, &fr.vbo)
	gl.BindVertexArray(fr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.vbo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 4, gl.FLOAT, false, 4*4, 0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return fr, nil
}

// SetViewport sets the pixel projection, origin top-left
func (fr *FontRenderer) SetViewport(width, height int) {
	fr.projection = mgl32.Ortho(0, float32(width), float32(height), 0, -1, 1)
}

// SetShader swaps the text program, deleting the old one
func (fr *FontRenderer) SetShader(s *Shader) {
	fr.shader.Delete()
	fr.shader = s
}

// RenderLines draws lines starting at the top-left corner (x, y)
func (fr *FontRenderer) RenderLines(lines []string, x, y, scale float32, color mgl32.Vec3) {
	if len(lines) == 0 {
		return
	}
	step := fr.atlas.LineHeight * scale
	var verts []float32
	baseline := y + step
	for _, line := range lines {
		verts = append(verts, fr.atlas.TextVertices(line, x, baseline, scale)...)
		baseline += step
	}
	if len(verts) == 0 {
		return
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	fr.shader.Use()
	fr.shader.SetVec3("textColor", color)
	fr.shader.SetMatrix4("projection", fr.projection)
	fr.shader.SetInt("glyphs", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, fr.texture)
	gl.BindVertexArray(fr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.vbo)
	// orphan then fill
	size := len(verts) * 4
	gl.BufferData(gl.ARRAY_BUFFER, size, nil, gl.STREAM_DRAW)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(verts))
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(verts)/4))

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	gl.Disable(gl.BLEND)
}

// Dispose frees GL resources
func (fr *FontRenderer) Dispose() {
	fr.shader.Delete()
	if fr.texture != 0 {
		gl.DeleteTextures(1, &fr.texture)
		fr.texture = 0
	}
	if fr.vbo != 0 {
		gl.DeleteBuffers(1, &fr.vbo)
		fr.vbo = 0
	}
	if fr.vao != 0 {
		gl.DeleteVertexArrays(1, &fr.vao)
		fr.vao = 0
	}
}
