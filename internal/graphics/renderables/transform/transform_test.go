package transform_test

import (
	"testing"

	"gltutor/internal/animation"
	"gltutor/internal/graphics"
	"gltutor/internal/graphics/renderables/transform"
	"gltutor/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
)

func press(im *input.InputManager, keys ...glfw.Key) {
	for _, k := range keys {
		im.HandleKeyEvent(k, glfw.Press)
	}
}

func TestApplyControlsPressedActions(t *testing.T) {
	anim := animation.NewTransform(animation.DefaultParams())
	cam := graphics.NewCamera(800, 600)
	im := input.NewInputManager()

	press(im, glfw.KeySpace, glfw.KeyPageUp, glfw.KeyP)
	transform.ApplyControls(anim, cam, im, 0)

	assert.True(t, anim.Paused)
	assert.InDelta(t, 1.1, anim.Scale, 1e-6)
	assert.Equal(t, graphics.Orthographic, cam.Projection)

	// edges are consumed once per frame
	im.PostUpdate()
	transform.ApplyControls(anim, cam, im, 0)
	assert.True(t, anim.Paused)
	assert.Equal(t, graphics.Orthographic, cam.Projection)
}

func TestApplyControlsHeldMovement(t *testing.T) {
	anim := animation.NewTransform(animation.DefaultParams())
	im := input.NewInputManager()

	press(im, glfw.KeyRight, glfw.KeyUp)
	transform.ApplyControls(anim, nil, im, 0.5)
	im.PostUpdate()
	transform.ApplyControls(anim, nil, im, 0.5)

	assert.InDelta(t, 1.0, anim.Translation.X(), 1e-6)
	assert.InDelta(t, 1.0, anim.Translation.Y(), 1e-6)

	// opposite keys cancel out
	press(im, glfw.KeyLeft, glfw.KeyDown)
	transform.ApplyControls(anim, nil, im, 0.5)
	assert.InDelta(t, 1.0, anim.Translation.X(), 1e-6)

	press(im, glfw.KeyR)
	im.HandleKeyEvent(glfw.KeyRight, glfw.Release)
	im.HandleKeyEvent(glfw.KeyUp, glfw.Release)
	im.HandleKeyEvent(glfw.KeyLeft, glfw.Release)
	im.HandleKeyEvent(glfw.KeyDown, glfw.Release)
	transform.ApplyControls(anim, nil, im, 0.5)
	assert.Equal(t, float32(0), anim.Translation.X())
	assert.Equal(t, float32(0), anim.Translation.Y())
}

func TestApplyControlsNilInput(t *testing.T) {
	anim := animation.NewTransform(animation.DefaultParams())
	transform.ApplyControls(anim, nil, nil, 1)
	assert.Equal(t, float32(0), anim.Angle)
}
