package animation

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Params configures how a Transform animates
type Params struct {
	RotationSpeed float32 // degrees per second
	ScaleMin      float32
	ScaleMax      float32
	ScaleSpeed    float32 // scale units per second
}

// DefaultParams matches the config defaults
func DefaultParams() Params {
	return Params{
		RotationSpeed: 90,
		ScaleMin:      0.5,
		ScaleMax:      1.5,
		ScaleSpeed:    0.5,
	}
}

// Transform is the animated model transform of the transform lesson.
// Angle is kept in [0, 360).
type Transform struct {
	Params Params

	Angle       float32 // degrees around Z
	Scale       float32
	Translation mgl32.Vec3
	Paused      bool

	scaleDir float32
}

// NewTransform returns a transform at rest with unit scale
func NewTransform(p Params) *Transform {
	t := &Transform{Params: p}
	t.Reset()
	return t
}

// Reset restores the initial pose, keeping the pause state
func (t *Transform) Reset() {
	t.Angle = 0
	t.Scale = clamp(1, t.Params.ScaleMin, t.Params.ScaleMax)
	t.Translation = mgl32.Vec3{}
	t.scaleDir = 1
}

// Update advances the animation by dt seconds
func (t *Transform) Update(dt float64) {
	if t.Paused || dt <= 0 {
		return
	}
	d := float32(dt)

	t.Angle = wrapDegrees(t.Angle + t.Params.RotationSpeed*d)

	if t.Params.ScaleMax <= t.Params.ScaleMin || t.Params.ScaleSpeed == 0 {
		return
	}
	// ping-pong between min and max, reflecting any overshoot
	step := float32(math.Mod(float64(t.Params.ScaleSpeed*d), float64(2*(t.Params.ScaleMax-t.Params.ScaleMin))))
	s := t.Scale + t.scaleDir*step
	for s > t.Params.ScaleMax || s < t.Params.ScaleMin {
		if s > t.Params.ScaleMax {
			s = 2*t.Params.ScaleMax - s
			t.scaleDir = -1
		} else {
			s = 2*t.Params.ScaleMin - s
			t.scaleDir = 1
		}
	}
	t.Scale = s
}

// TogglePause freezes or resumes the animation
func (t *Transform) TogglePause() {
	t.Paused = !t.Paused
}

// ScaleBy multiplies the current scale, clamped to the configured range
func (t *Transform) ScaleBy(f float32) {
	if f <= 0 {
		return
	}
	t.Scale = clamp(t.Scale*f, t.Params.ScaleMin, t.Params.ScaleMax)
}

// Nudge moves the model in the XY plane
func (t *Transform) Nudge(dx, dy float32) {
	t.Translation = t.Translation.Add(mgl32.Vec3{dx, dy, 0})
}

// Model returns translate * rotate(z) * scale
func (t *Transform) Model() mgl32.Mat4 {
	translate := mgl32.Translate3D(t.Translation.X(), t.Translation.Y(), t.Translation.Z())
	rotate := mgl32.HomogRotate3DZ(mgl32.DegToRad(t.Angle))
	scale := mgl32.Scale3D(t.Scale, t.Scale, t.Scale)
	return translate.Mul4(rotate).Mul4(scale)
}

func wrapDegrees(a float32) float32 {
	a = float32(math.Mod(float64(a), 360))
	if a < 0 {
		a += 360
	}
	return a
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
