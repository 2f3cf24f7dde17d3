package main

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"gltutor/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlagsPositionalLesson(t *testing.T) {
	o, err := parseFlags([]string{"-fps", "60", "transform"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "transform", o.lesson)
	assert.Equal(t, 60, o.fps)

	_, err = parseFlags([]string{"a", "b"}, io.Discard)
	assert.Error(t, err)

	_, err = parseFlags([]string{"-nope"}, io.Discard)
	assert.Error(t, err)
}

func TestApplyOverrides(t *testing.T) {
	s := config.Default()
	o := options{lesson: "indexed", shaders: "./shaders", fps: 0, vsync: "off", logLevel: "debug"}
	require.NoError(t, o.apply(&s))

	assert.Equal(t, "indexed", s.Lesson)
	assert.Equal(t, "./shaders", s.ShaderDir)
	assert.Equal(t, 0, s.FPSLimit)
	assert.False(t, s.Window.VSync)
	assert.Equal(t, "debug", s.LogLevel)

	// -1 leaves the configured limit alone
	s.FPSLimit = 144
	require.NoError(t, options{fps: -1}.apply(&s))
	assert.Equal(t, 144, s.FPSLimit)

	assert.Error(t, options{fps: -1, vsync: "maybe"}.apply(&s))
}

func TestParseLevel(t *testing.T) {
	level, err := parseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	_, err = parseLevel("loud")
	assert.Error(t, err)
}

func TestListLessons(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-list"}, &out, io.Discard))

	assert.Contains(t, out.String(), "1  triangle")
	assert.Contains(t, out.String(), "5  transform")
}

func TestRunRejectsUnknownLesson(t *testing.T) {
	err := run([]string{"-config", "", "cube"}, io.Discard, io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown lesson")
}
