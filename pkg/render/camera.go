package render

import (
	"github.com/chewxy/math32"
	"github.com/taigrr/glyph/pkg/math3d"
)

// Camera produces the view and projection matrices for a frame.
type Camera interface {
	View() math3d.Mat4
	Proj() math3d.Mat4
}

// Projection selects how a LookAtCamera projects the scene.
type Projection int

const (
	// PerspectiveProjection is the default.
	PerspectiveProjection Projection = iota
	// OrthographicProjection keeps parallel lines parallel.
	OrthographicProjection
)

// maxPitch keeps orbiting cameras off the poles, in degrees.
const maxPitch = 89

// LookAtCamera orbits a target point.
type LookAtCamera struct {
	Eye    math3d.Vec3
	Target math3d.Vec3

	// Frustum size; only the Width/Height ratio matters for perspective.
	Width, Height float32

	FOV  float32 // Vertical field of view in radians
	Near float32 // Near clipping plane
	Far  float32 // Far clipping plane

	// MinDistance is the closest Zoom may bring the eye to the target.
	// Near is used when it is larger.
	MinDistance float32

	Projection Projection
}

// NewLookAtCamera creates a perspective camera at eye looking at target.
func NewLookAtCamera(eye, target math3d.Vec3, width, height, fov, near, far float32) *LookAtCamera {
	return &LookAtCamera{
		Eye:    eye,
		Target: target,
		Width:  width,
		Height: height,
		FOV:    fov,
		Near:   near,
		Far:    far,
	}
}

// Distance returns the distance from the eye to the target.
func (c *LookAtCamera) Distance() float32 {
	return c.Eye.Distance(c.Target)
}

// Yaw returns the eye's heading around the target in degrees, measured from
// +Z towards +X.
func (c *LookAtCamera) Yaw() float32 {
	yaw, _ := c.angles()
	return toDegrees(yaw)
}

// Pitch returns the eye's elevation above the target in degrees.
func (c *LookAtCamera) Pitch() float32 {
	_, pitch := c.angles()
	return toDegrees(pitch)
}

func (c *LookAtCamera) angles() (yaw, pitch float32) {
	dir := c.Eye.Sub(c.Target).NormalizeOr(math3d.UnitZ)
	yaw = math32.Atan2(dir.X(), dir.Z())
	pitch = math32.Asin(math32.Max(-1, math32.Min(dir.Y(), 1)))
	return yaw, pitch
}

// OrbitAroundTarget rotates the eye around the target by the given yaw and
// pitch deltas in degrees. The distance to the target is preserved and
// pitch is clamped to ±89°.
func (c *LookAtCamera) OrbitAroundTarget(deltaYaw, deltaPitch float32) {
	dist := c.Distance()
	yaw, pitch := c.angles()

	yaw += toRadians(deltaYaw)
	pitch = clampf(pitch+toRadians(deltaPitch), toRadians(-maxPitch), toRadians(maxPitch))

	cp := math32.Cos(pitch)
	offset := math3d.V3(cp*math32.Sin(yaw), math32.Sin(pitch), cp*math32.Cos(yaw))
	c.Eye = c.Target.Add(offset.Scale(dist))
}

// Zoom moves the eye along the target→eye axis by delta. Negative values
// move closer. The eye never gets closer than max(Near, MinDistance).
func (c *LookAtCamera) Zoom(delta float32) {
	dir := c.Target.Sub(c.Eye).NormalizeOr(math3d.UnitZ)
	dist := max(c.Distance()+delta, c.Near, c.MinDistance)
	c.Eye = c.Target.Sub(dir.Scale(dist))
}

// Pan slides the eye and target together by dx along the view's right axis
// and dy along its up axis.
func (c *LookAtCamera) Pan(dx, dy float32) {
	forward := c.Target.Sub(c.Eye).NormalizeOr(math3d.UnitZ.Negate())
	right := forward.Vec3().Cross(math3d.UnitY.Vec3()).NormalizeOr(math3d.UnitX)
	up := right.Vec3().Cross(forward.Vec3())
	offset := right.Scale(dx).Add(up.Scale(dy))
	c.Eye = c.Eye.Add(offset)
	c.Target = c.Target.Add(offset)
}

// View returns the right-handed look-at view matrix.
func (c *LookAtCamera) View() math3d.Mat4 {
	return math3d.LookAt(c.Eye, c.Target, math3d.UnitY.Vec3())
}

// Proj returns the projection matrix. The orthographic variant frames the
// same area the perspective frustum shows at the target's distance.
func (c *LookAtCamera) Proj() math3d.Mat4 {
	aspect := aspectRatio(c.Width, c.Height)
	if c.Projection == OrthographicProjection {
		halfH := c.Distance() * math32.Tan(c.FOV/2)
		halfW := halfH * aspect
		return math3d.Orthographic(-halfW, halfW, -halfH, halfH, c.Near, c.Far)
	}
	return math3d.Perspective(c.FOV, aspect, c.Near, c.Far)
}

func aspectRatio(w, h float32) float32 {
	if w <= 0 || h <= 0 {
		return 1
	}
	return w / h
}

func toRadians(deg float32) float32 {
	return deg * math32.Pi / 180
}

func toDegrees(rad float32) float32 {
	return rad * 180 / math32.Pi
}

func clampf(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(v, hi))
}
