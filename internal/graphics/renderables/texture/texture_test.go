package texture_test

import (
	"testing"

	"gltutor/internal/graphics"
	"gltutor/internal/graphics/renderables/texture"
	"gltutor/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func TestApplyControlsCyclesModes(t *testing.T) {
	params := graphics.DefaultTextureParams()
	im := input.NewInputManager()

	im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	params = texture.ApplyControls(params, im)
	assert.Equal(t, graphics.WrapMirroredRepeat, params.Wrap)
	assert.Equal(t, graphics.FilterLinearMipmap, params.Filter)

	// holding the key does not cycle again
	im.PostUpdate()
	params = texture.ApplyControls(params, im)
	assert.Equal(t, graphics.WrapMirroredRepeat, params.Wrap)

	im.HandleKeyEvent(glfw.KeyF, glfw.Press)
	params = texture.ApplyControls(params, im)
	assert.Equal(t, graphics.FilterNearest, params.Filter)
	assert.Equal(t, graphics.WrapMirroredRepeat, params.Wrap)
}

func TestApplyControlsReachesClampToBorder(t *testing.T) {
	params := graphics.DefaultTextureParams()
	im := input.NewInputManager()

	for i := 0; i < 3; i++ {
		im.HandleKeyEvent(glfw.KeyW, glfw.Press)
		params = texture.ApplyControls(params, im)
		im.PostUpdate()
		im.HandleKeyEvent(glfw.KeyW, glfw.Release)
		im.PostUpdate()
	}
	assert.Equal(t, graphics.WrapClampToBorder, params.Wrap)
	assert.Equal(t, graphics.DefaultTextureParams().BorderColor, params.BorderColor)
}

func TestApplyControlsWithoutInput(t *testing.T) {
	params := graphics.DefaultTextureParams()
	assert.Equal(t, params, texture.ApplyControls(params, nil))
}
