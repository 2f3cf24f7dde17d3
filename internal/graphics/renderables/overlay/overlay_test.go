package overlay

import (
	"testing"

	renderer "gltutor/internal/graphics/renderer"
	"gltutor/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestToggleVisibility(t *testing.T) {
	o := NewOverlay(nil, func() []string { return nil })
	im := input.NewInputManager()
	ctx := renderer.RenderContext{Input: im}

	assert.True(t, o.visible)

	im.HandleKeyEvent(glfw.KeyH, glfw.Press)
	o.Update(ctx)
	assert.False(t, o.visible)

	// same press, next frame
	im.PostUpdate()
	o.Update(ctx)
	assert.False(t, o.visible)

	im.HandleKeyEvent(glfw.KeyH, glfw.Release)
	im.PostUpdate()
	im.HandleKeyEvent(glfw.KeyH, glfw.Press)
	o.Update(ctx)
	assert.True(t, o.visible)

	o.Update(renderer.RenderContext{})
	assert.True(t, o.visible)
}

func TestUsesTextShaders(t *testing.T) {
	o := NewOverlay(nil, nil)
	assert.True(t, o.UsesShader("text.vert"))
	assert.True(t, o.UsesShader("text.frag"))
	assert.False(t, o.UsesShader("texture.frag"))
}
