package graphics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Projection selects the camera's projection type
type Projection int

const (
	Perspective Projection = iota
	Orthographic
)

func (p Projection) String() string {
	if p == Orthographic {
		return "orthographic"
	}
	return "perspective"
}

// Camera handles the view and projection matrices
type Camera struct {
	AspectRatio float32
	FOV         float32
	NearPlane   float32
	FarPlane    float32
	Distance    float32 // eye distance from the origin along +Z
	Projection  Projection
}

func NewCamera(width, height int) *Camera {
	c := &Camera{
		FOV:       45.0,
		NearPlane: 0.1,
		FarPlane:  100.0,
		Distance:  3.0,
	}
	c.SetViewport(width, height)
	return c
}

// SetViewport updates the aspect ratio; a zero height (minimized window) is ignored
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.AspectRatio = float32(width) / float32(height)
}

// ToggleProjection switches between perspective and orthographic
func (c *Camera) ToggleProjection() {
	if c.Projection == Perspective {
		c.Projection = Orthographic
	} else {
		c.Projection = Perspective
	}
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	if c.Projection == Orthographic {
		// half height matching the perspective frustum at the eye distance
		h := c.Distance * float32(math.Tan(float64(mgl32.DegToRad(c.FOV))/2))
		w := h * c.AspectRatio
		return mgl32.Ortho(-w, w, -h, h, c.NearPlane, c.FarPlane)
	}
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(mgl32.Vec3{0, 0, c.Distance}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
}
