package assets_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"gltutor/internal/assets"
	"gltutor/internal/graphics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedShadersHaveVersion(t *testing.T) {
	names, err := fs.Glob(assets.Shaders(), "*.*")
	require.NoError(t, err)
	require.NotEmpty(t, names)

	for _, name := range names {
		_, err := graphics.LoadShaderSource(assets.Shaders(), name)
		assert.NoError(t, err, name)
	}
}

func TestEveryVertexShaderHasFragmentPair(t *testing.T) {
	verts, err := fs.Glob(assets.Shaders(), "*.vert")
	require.NoError(t, err)

	for _, v := range verts {
		frag := v[:len(v)-len(".vert")] + ".frag"
		_, err := fs.Stat(assets.Shaders(), frag)
		assert.NoError(t, err, "missing %s", frag)
	}
}

func TestShadersFromDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "triangle.vert"), []byte("#version 410 core\n"), 0o644))

	fsys := assets.ShadersFrom(dir)
	data, err := fs.ReadFile(fsys, "triangle.vert")
	require.NoError(t, err)
	assert.Equal(t, "#version 410 core\n", string(data))

	_, err = fs.Stat(assets.ShadersFrom(""), "triangle.vert")
	assert.NoError(t, err)
}

func TestShadersFromFallsBackToEmbedded(t *testing.T) {
	dir := t.TempDir()
	src := "#version 410 core\nvoid main() {}\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "transform.vert"), []byte(src), 0o644))

	fsys := assets.ShadersFrom(dir)

	got, err := graphics.LoadShaderSource(fsys, "transform.vert")
	require.NoError(t, err)
	assert.Equal(t, src, got)

	// the overlay's text shaders are not in dir
	for _, name := range []string{"text.vert", "text.frag", "transform.frag"} {
		_, err := graphics.LoadShaderSource(fsys, name)
		assert.NoError(t, err, name)
	}

	_, err = fs.ReadFile(fsys, "missing.frag")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
