package graphics

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DecodeImageFile decodes png, jpeg, gif, bmp, tiff or webp
func DecodeImageFile(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture file: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

// PrepareImage converts img to RGBA for upload. flipY puts the first row at the
// bottom, matching GL's texture origin. powerOfTwo resamples to the next
// power-of-two size with bilinear filtering.
func PrepareImage(img image.Image, flipY, powerOfTwo bool) *image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if powerOfTwo {
		w, h = nextPowerOfTwo(w), nextPowerOfTwo(h)
	}

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	} else {
		draw.BiLinear.Scale(rgba, rgba.Bounds(), img, b, draw.Src, nil)
	}

	if flipY {
		flipRows(rgba)
	}
	return rgba
}

func flipRows(img *image.RGBA) {
	h := img.Rect.Dy()
	row := make([]byte, img.Stride)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : (y+1)*img.Stride]
		bottom := img.Pix[(h-1-y)*img.Stride : (h-y)*img.Stride]
		copy(row, top)
		copy(top, bottom)
		copy(bottom, row)
	}
}

func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// Checkerboard draws a size x size image of cells x cells squares alternating a and b
func Checkerboard(size, cells int, a, b color.Color) *image.RGBA {
	if size < 1 {
		size = 1
	}
	if cells < 1 {
		cells = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	cell := size / cells
	if cell < 1 {
		cell = 1
	}
	ua := image.NewUniform(a)
	ub := image.NewUniform(b)
	for y := 0; y < size; y += cell {
		for x := 0; x < size; x += cell {
			src := ua
			if (x/cell+y/cell)%2 == 1 {
				src = ub
			}
			draw.Draw(img, image.Rect(x, y, x+cell, y+cell), src, image.Point{}, draw.Src)
		}
	}
	return img
}
