package graphics

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Texture is a 2D texture and the sampling state last applied to it
type Texture struct {
	ID     uint32
	Width  int
	Height int
	Params TextureParams
}

// LoadTexture loads a 2D texture from a file
func LoadTexture(path string, params TextureParams) (*Texture, error) {
	img, err := DecodeImageFile(path)
	if err != nil {
		return nil, err
	}
	return NewTexture(img, params), nil
}

// NewTexture uploads img flipped to GL's bottom-left origin.
// Mipmaps are always generated so the filter mode can change later.
func NewTexture(img image.Image, params TextureParams) *Texture {
	rgba := PrepareImage(img, true, false)

	t := &Texture{
		Width:  rgba.Rect.Size().X,
		Height: rgba.Rect.Size().Y,
	}
	gl.GenTextures(1, &t.ID)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(t.Width),
		int32(t.Height),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(rgba.Pix),
	)
	gl.GenerateMipmap(gl.TEXTURE_2D)

	t.apply(params)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return t
}

// SetWrap changes the S and T wrap mode
func (t *Texture) SetWrap(w WrapMode) {
	p := t.Params
	p.Wrap = w
	t.Apply(p)
}

// SetFilter changes the min/mag filter
func (t *Texture) SetFilter(f FilterMode) {
	p := t.Params
	p.Filter = f
	t.Apply(p)
}

// Apply binds the texture and sets all sampling parameters
func (t *Texture) Apply(p TextureParams) {
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
	t.apply(p)
}

func (t *Texture) apply(p TextureParams) {
	wrap := p.Wrap.GL()
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap)
	if p.Wrap == WrapClampToBorder {
		gl.TexParameterfv(gl.TEXTURE_2D, gl.TEXTURE_BORDER_COLOR, &p.BorderColor[0])
	}

	minFilter, magFilter := p.Filter.GL()
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, minFilter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, magFilter)
	t.Params = p
}

// Bind binds the texture to the given texture unit
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
}

// Delete releases the texture
func (t *Texture) Delete() {
	if t.ID != 0 {
		gl.DeleteTextures(1, &t.ID)
		t.ID = 0
	}
}
