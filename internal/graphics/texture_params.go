package graphics

import "github.com/go-gl/gl/v4.1-core/gl"

// WrapMode selects how texture coordinates outside [0,1] are resolved
type WrapMode int

const (
	WrapRepeat WrapMode = iota
	WrapMirroredRepeat
	WrapClampToEdge
	WrapClampToBorder
	wrapModeCount
)

var wrapNames = [...]string{"repeat", "mirrored-repeat", "clamp-to-edge", "clamp-to-border"}

func (w WrapMode) String() string {
	if w < 0 || w >= wrapModeCount {
		return "unknown"
	}
	return wrapNames[w]
}

// Next cycles to the following wrap mode
func (w WrapMode) Next() WrapMode {
	return (w + 1) % wrapModeCount
}

// GL returns the OpenGL enum for the mode
func (w WrapMode) GL() int32 {
	switch w {
	case WrapMirroredRepeat:
		return gl.MIRRORED_REPEAT
	case WrapClampToEdge:
		return gl.CLAMP_TO_EDGE
	case WrapClampToBorder:
		return gl.CLAMP_TO_BORDER
	}
	return gl.REPEAT
}

// FilterMode selects texture minification/magnification filtering
type FilterMode int

const (
	FilterNearest FilterMode = iota
	FilterLinear
	FilterLinearMipmap
	filterModeCount
)

var filterNames = [...]string{"nearest", "linear", "linear-mipmap"}

func (f FilterMode) String() string {
	if f < 0 || f >= filterModeCount {
		return "unknown"
	}
	return filterNames[f]
}

// Next cycles to the following filter mode
func (f FilterMode) Next() FilterMode {
	return (f + 1) % filterModeCount
}

// Mipmapped reports whether the mode samples mip levels
func (f FilterMode) Mipmapped() bool {
	return f == FilterLinearMipmap
}

// GL returns the min and mag filter enums. Magnification never uses mipmaps.
func (f FilterMode) GL() (minFilter, magFilter int32) {
	switch f {
	case FilterLinear:
		return gl.LINEAR, gl.LINEAR
	case FilterLinearMipmap:
		return gl.LINEAR_MIPMAP_LINEAR, gl.LINEAR
	}
	return gl.NEAREST, gl.NEAREST
}

// TextureParams is the sampling state applied to a texture
type TextureParams struct {
	Wrap        WrapMode
	Filter      FilterMode
	BorderColor [4]float32
}

// DefaultTextureParams repeats and filters linearly with mipmaps
func DefaultTextureParams() TextureParams {
	return TextureParams{
		Wrap:        WrapRepeat,
		Filter:      FilterLinearMipmap,
		BorderColor: [4]float32{1, 0.5, 0, 1},
	}
}
