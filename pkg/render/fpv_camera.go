package render

import (
	"github.com/chewxy/math32"
	"github.com/taigrr/glyph/pkg/math3d"
)

// FPVCamera is a first-person camera with an orthographic projection.
type FPVCamera struct {
	Position math3d.Vec3

	// Orientation in degrees
	Yaw   float32 // Rotation around Y; 0 looks down +Z
	Pitch float32 // Rotation around X; positive looks up

	// Visible area in world units
	Width, Height float32
}

// NewFPVCamera creates a first-person camera.
func NewFPVCamera(position math3d.Vec3, yaw, pitch, width, height float32) *FPVCamera {
	return &FPVCamera{
		Position: position,
		Yaw:      yaw,
		Pitch:    pitch,
		Width:    width,
		Height:   height,
	}
}

// Forward returns the viewing direction.
func (c *FPVCamera) Forward() math3d.Direction3 {
	yaw, pitch := toRadians(c.Yaw), toRadians(c.Pitch)
	cp := math32.Cos(pitch)
	// sin²+cos² keeps this unit length
	return math3d.UnitUnchecked(math32.Sin(yaw)*cp, math32.Sin(pitch), math32.Cos(yaw)*cp)
}

// Translate moves the camera by v.
func (c *FPVCamera) Translate(v math3d.Vec3) {
	c.Position = c.Position.Add(v)
}

// RotateYaw turns the camera left or right by degrees.
func (c *FPVCamera) RotateYaw(degrees float32) {
	c.Yaw += degrees
}

// RotatePitch tilts the camera up or down by degrees, clamped to ±89°.
func (c *FPVCamera) RotatePitch(degrees float32) {
	c.Pitch = clampf(c.Pitch+degrees, -maxPitch, maxPitch)
}

// View returns the look-at view matrix along Forward.
func (c *FPVCamera) View() math3d.Mat4 {
	return math3d.LookAt(c.Position, c.Position.Add(c.Forward().Vec3()), math3d.UnitY.Vec3())
}

// Proj returns an orthographic projection covering Width×Height.
func (c *FPVCamera) Proj() math3d.Mat4 {
	hw, hh := c.Width/2, c.Height/2
	return math3d.Orthographic(-hw, hw, -hh, hh, 0.1, 100)
}
