package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShaderWatcherDebounce(t *testing.T) {
	sw, err := NewShaderWatcher(t.TempDir(), 100*time.Millisecond, nil)
	require.NoError(t, err)
	defer sw.Close()

	base := time.Now()
	sw.note("/tmp/shaders/texture.frag", base)
	sw.note("/tmp/shaders/texture.frag", base.Add(50*time.Millisecond))
	sw.note("/tmp/shaders/triangle.vert", base)
	sw.note("/tmp/shaders/notes.txt", base)

	// texture.frag was touched again, so only triangle.vert is quiet
	assert.Equal(t, []string{"triangle.vert"}, sw.Drain(base.Add(120*time.Millisecond)))
	assert.Equal(t, []string{"texture.frag"}, sw.Drain(base.Add(200*time.Millisecond)))
	assert.Empty(t, sw.Drain(base.Add(time.Second)))
}

func TestShaderWatcherSeesWrites(t *testing.T) {
	dir := t.TempDir()
	sw, err := NewShaderWatcher(dir, 0, nil)
	require.NoError(t, err)
	defer sw.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "indexed.frag"), []byte("#version 410 core\n"), 0o644))

	assert.Eventually(t, func() bool {
		sw.mu.Lock()
		defer sw.mu.Unlock()
		_, ok := sw.pending["indexed.frag"]
		return ok
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"indexed.frag"}, sw.Drain(time.Now()))
}

func TestShaderWatcherMissingDir(t *testing.T) {
	_, err := NewShaderWatcher(filepath.Join(t.TempDir(), "absent"), time.Millisecond, nil)
	assert.Error(t, err)
}
