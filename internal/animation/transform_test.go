package animation_test

import (
	"testing"

	"gltutor/internal/animation"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestUpdateRotatesAndWraps(t *testing.T) {
	tr := animation.NewTransform(animation.Params{RotationSpeed: 90, ScaleMin: 1, ScaleMax: 1})

	tr.Update(1)
	assert.InDelta(t, 90, tr.Angle, 1e-4)

	tr.Update(3.5)
	assert.InDelta(t, 45, tr.Angle, 1e-3)

	back := animation.NewTransform(animation.Params{RotationSpeed: -90, ScaleMin: 1, ScaleMax: 1})
	back.Update(1)
	assert.InDelta(t, 270, back.Angle, 1e-4)
}

func TestUpdateScalePingPong(t *testing.T) {
	tr := animation.NewTransform(animation.Params{ScaleMin: 0.5, ScaleMax: 1.5, ScaleSpeed: 1})
	assert.Equal(t, float32(1), tr.Scale)

	tr.Update(0.25)
	assert.InDelta(t, 1.25, tr.Scale, 1e-5)

	// overshoots max by 0.25 and reflects
	tr.Update(0.5)
	assert.InDelta(t, 1.25, tr.Scale, 1e-5)

	tr.Update(0.5)
	assert.InDelta(t, 0.75, tr.Scale, 1e-5)

	// a very long frame stays inside the range
	tr.Update(1e6)
	assert.GreaterOrEqual(t, tr.Scale, float32(0.5))
	assert.LessOrEqual(t, tr.Scale, float32(1.5))
}

func TestPausedTransformDoesNotMove(t *testing.T) {
	tr := animation.NewTransform(animation.DefaultParams())
	tr.TogglePause()
	tr.Update(2)

	assert.Equal(t, float32(0), tr.Angle)
	assert.Equal(t, float32(1), tr.Scale)

	tr.TogglePause()
	tr.Update(1)
	assert.NotEqual(t, float32(0), tr.Angle)
}

func TestScaleByClamps(t *testing.T) {
	tr := animation.NewTransform(animation.DefaultParams())

	tr.ScaleBy(10)
	assert.Equal(t, float32(1.5), tr.Scale)

	tr.ScaleBy(0.01)
	assert.Equal(t, float32(0.5), tr.Scale)

	tr.ScaleBy(-1)
	assert.Equal(t, float32(0.5), tr.Scale)
}

func TestResetKeepsPause(t *testing.T) {
	tr := animation.NewTransform(animation.DefaultParams())
	tr.Update(0.3)
	tr.Nudge(0.2, -0.1)
	tr.TogglePause()

	tr.Reset()
	assert.Equal(t, float32(0), tr.Angle)
	assert.Equal(t, float32(1), tr.Scale)
	assert.Equal(t, mgl32.Vec3{}, tr.Translation)
	assert.True(t, tr.Paused)
}

func TestModelMatrix(t *testing.T) {
	tr := animation.NewTransform(animation.Params{ScaleMin: 0.1, ScaleMax: 4})
	tr.Angle = 90
	tr.Scale = 2
	tr.Nudge(1, 0)

	// x axis point: scaled to 2, rotated onto +y, then shifted by +1 in x
	p := tr.Model().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.InDelta(t, 1, p.X(), 1e-5)
	assert.InDelta(t, 2, p.Y(), 1e-5)
	assert.InDelta(t, 0, p.Z(), 1e-5)
}
