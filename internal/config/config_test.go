package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"gltutor/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	s, err := config.Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), s)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gltutor.yml")
	data := `
window:
  width: 1024
  height: 768
  title: lessons
lesson: transform
fps_limit: 5000
clear_color: [0.1, 2.0, -1.0, 1.0]
animation:
  rotation_speed: 45
  scale_min: 0.8
  scale_max: 0.2
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	s, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1024, s.Window.Width)
	assert.Equal(t, 768, s.Window.Height)
	assert.Equal(t, "lessons", s.Window.Title)
	assert.Equal(t, "transform", s.Lesson)
	assert.Equal(t, 1000, s.FPSLimit)
	assert.Equal(t, [4]float32{0.1, 1.0, 0.0, 1.0}, s.ClearColor)
	assert.Equal(t, float32(45), s.Animation.RotationSpeed)
	// max below min collapses onto min
	assert.Equal(t, float32(0.8), s.Animation.ScaleMax)
	// untouched fields keep their defaults
	assert.True(t, s.Window.VSync)
	assert.Equal(t, "info", s.LogLevel)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("window: [unterminated"), 0o644))

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestNormalize(t *testing.T) {
	s := config.Settings{FPSLimit: 3}
	s.Normalize()

	assert.Equal(t, 64, s.Window.Width)
	assert.Equal(t, 64, s.Window.Height)
	assert.Equal(t, "gltutor", s.Window.Title)
	assert.Equal(t, 10, s.FPSLimit)
	assert.Greater(t, s.Animation.ScaleMin, float32(0))
}

func TestFPSLimitAccessors(t *testing.T) {
	defer config.SetFPSLimit(0)

	config.SetFPSLimit(60)
	assert.Equal(t, 60, config.GetFPSLimit())

	config.SetFPSLimit(-1)
	assert.Equal(t, 0, config.GetFPSLimit())

	config.SetFPSLimit(100000)
	assert.Equal(t, 1000, config.GetFPSLimit())
}
