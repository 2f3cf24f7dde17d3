// Package assets embeds the GLSL sources used by the lessons.
package assets

import (
	"embed"
	"errors"
	"io/fs"
	"os"
)

//go:embed shaders/*.vert shaders/*.frag
var embedded embed.FS

// ShadersDir is the directory shader names are relative to
const ShadersDir = "shaders"

// Shaders returns the embedded shader tree rooted at ShadersDir
func Shaders() fs.FS {
	sub, err := fs.Sub(embedded, ShadersDir)
	if err != nil {
		// the directory is compiled in; this cannot fail
		panic(err)
	}
	return sub
}

// ShadersFrom returns the embedded shaders with dir on disk layered on top.
// Files present in dir win; anything it lacks comes from the embedded tree,
// so dir only needs the shaders being edited.
func ShadersFrom(dir string) fs.FS {
	if dir == "" {
		return Shaders()
	}
	return layered{top: os.DirFS(dir), base: Shaders()}
}

type layered struct {
	top, base fs.FS
}

func (l layered) Open(name string) (fs.File, error) {
	f, err := l.top.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		return l.base.Open(name)
	}
	return f, err
}
