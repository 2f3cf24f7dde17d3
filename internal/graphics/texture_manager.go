package graphics

import (
	"image"
	"image/color"
	"sync"
)

// DefaultTextureKey names the procedural checkerboard in the cache
const DefaultTextureKey = "builtin:checkerboard"

var (
	textureCache = make(map[string]*Texture)
	cacheMutex   sync.RWMutex
)

// GetTexture returns a cached texture for the given path.
// An empty path or DefaultTextureKey yields the procedural checkerboard.
// Cached textures keep the params of their first load.
func GetTexture(path string, params TextureParams) (*Texture, error) {
	if path == "" {
		path = DefaultTextureKey
	}

	cacheMutex.RLock()
	if tex, ok := textureCache[path]; ok {
		cacheMutex.RUnlock()
		return tex, nil
	}
	cacheMutex.RUnlock()

	cacheMutex.Lock()
	defer cacheMutex.Unlock()

	// Double check locking
	if tex, ok := textureCache[path]; ok {
		return tex, nil
	}

	var tex *Texture
	if path == DefaultTextureKey {
		tex = NewTexture(defaultCheckerboard(), params)
	} else {
		var err error
		tex, err = LoadTexture(path, params)
		if err != nil {
			return nil, err
		}
	}

	textureCache[path] = tex
	return tex, nil
}

// ReleaseTextures deletes every cached texture
func ReleaseTextures() {
	cacheMutex.Lock()
	defer cacheMutex.Unlock()
	for k, tex := range textureCache {
		tex.Delete()
		delete(textureCache, k)
	}
}

func defaultCheckerboard() *image.RGBA {
	return Checkerboard(256, 8,
		color.RGBA{R: 0xe8, G: 0xe8, B: 0xe8, A: 0xff},
		color.RGBA{R: 0x30, G: 0x60, B: 0xa0, A: 0xff})
}
