package graphics

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// ErrMissingVersion is returned for sources without a #version directive
var ErrMissingVersion = errors.New("shader source has no #version directive")

// LoadShaderSource reads a GLSL file from fsys and checks it starts with #version
func LoadShaderSource(fsys fs.FS, name string) (string, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return "", fmt.Errorf("could not read shader file %s: %w", name, err)
	}
	// strip a UTF-8 BOM, some editors add one and drivers reject it
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	src := string(data)
	if !hasVersion(src) {
		return "", fmt.Errorf("%s: %w", name, ErrMissingVersion)
	}
	return src, nil
}

func hasVersion(src string) bool {
	for _, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		return strings.HasPrefix(line, "#version")
	}
	return false
}

// terminate appends the NUL the GL C API expects, once
func terminate(src string) string {
	if strings.HasSuffix(src, "\x00") {
		return src
	}
	return src + "\x00"
}

func trimInfoLog(log string) string {
	return strings.TrimSpace(strings.TrimRight(log, "\x00"))
}

// ShaderAsset names a vertex/fragment pair inside a shader tree
type ShaderAsset struct {
	FS       fs.FS
	Vertex   string
	Fragment string
}

// NewShaderAsset pairs "<base>.vert" with "<base>.frag"
func NewShaderAsset(fsys fs.FS, base string) ShaderAsset {
	return ShaderAsset{FS: fsys, Vertex: base + ".vert", Fragment: base + ".frag"}
}

// Uses reports whether name is one of the asset's files
func (a ShaderAsset) Uses(name string) bool {
	return name == a.Vertex || name == a.Fragment
}

// Load compiles and links the pair
func (a ShaderAsset) Load() (*Shader, error) {
	return NewShader(a.FS, a.Vertex, a.Fragment)
}
