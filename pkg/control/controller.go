// Package control turns key presses into smooth camera motion.
package control

import (
	"maps"
	"slices"

	"github.com/charmbracelet/harmonica"
	"github.com/taigrr/glyph/pkg/math3d"
	"github.com/taigrr/glyph/pkg/render"
)

// Action is a camera command triggered by input.
type Action int

const (
	OrbitLeft Action = iota
	OrbitRight
	OrbitUp
	OrbitDown
	ZoomIn
	ZoomOut
	PanLeft
	PanRight
	PanUp
	PanDown
)

var actionNames = [...]string{
	OrbitLeft:  "orbit-left",
	OrbitRight: "orbit-right",
	OrbitUp:    "orbit-up",
	OrbitDown:  "orbit-down",
	ZoomIn:     "zoom-in",
	ZoomOut:    "zoom-out",
	PanLeft:    "pan-left",
	PanRight:   "pan-right",
	PanUp:      "pan-up",
	PanDown:    "pan-down",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

var keyActions = map[string]Action{
	"w":     ZoomIn,
	"up":    ZoomIn,
	"s":     ZoomOut,
	"down":  ZoomOut,
	"a":     OrbitLeft,
	"left":  OrbitLeft,
	"d":     OrbitRight,
	"right": OrbitRight,
	"r":     OrbitUp,
	"f":     OrbitDown,
	"j":     PanLeft,
	"l":     PanRight,
	"i":     PanUp,
	"k":     PanDown,
}

// Keys lists every key name bound to an action, in a stable order.
func Keys() []string {
	return slices.Sorted(maps.Keys(keyActions))
}

// ActionForKey maps a key name as reported by the terminal to an action.
func ActionForKey(key string) (Action, bool) {
	a, ok := keyActions[key]
	return a, ok
}

// maxBoost caps how far repeated presses can push an axis past its speed.
const maxBoost = 3

// Frequency 4.0, damping 1.0: critically damped, no overshoot.
const (
	springFrequency = 4.0
	springDamping   = 1.0
)

// axis is one degree of freedom with a spring that pulls its velocity back
// to rest.
type axis struct {
	Velocity float32
	spring   harmonica.Spring
	step     float64 // seconds the spring is tuned for
	accel    float64
}

func newAxis(fps int) axis {
	step := harmonica.FPS(fps)
	return axis{spring: harmonica.NewSpring(step, springFrequency, springDamping), step: step}
}

func (a *axis) push(v, limit float32) {
	a.Velocity = max(-limit, min(a.Velocity+v, limit))
}

// decay advances the spring by dt seconds. The spring is retuned when the
// frame time changes so the settle time does not depend on the frame rate.
func (a *axis) decay(dt float32) {
	if step := float64(dt); step > 0 && step != a.step {
		a.spring = harmonica.NewSpring(step, springFrequency, springDamping)
		a.step = step
	}
	v, accel := a.spring.Update(float64(a.Velocity), a.accel, 0)
	a.Velocity, a.accel = float32(v), accel
}

// Speeds are per-second rates for each kind of motion.
type Speeds struct {
	Rotation float32 // degrees per second
	Zoom     float32 // world units per second
	Pan      float32 // world units per second
}

// Controller drives a LookAtCamera from discrete actions. Each action adds
// velocity to an axis; Update integrates the velocities and lets them
// settle back to zero.
type Controller struct {
	cam    *render.LookAtCamera
	speeds Speeds
	fps    int

	yaw, pitch, zoom axis
	panX, panY       axis

	homeEye, homeTarget math3d.Vec3
}

// NewController wraps cam. fps is the expected update rate used to tune
// the damping springs.
func NewController(cam *render.LookAtCamera, speeds Speeds, fps int) *Controller {
	c := &Controller{
		cam:        cam,
		speeds:     speeds,
		fps:        max(fps, 1),
		homeEye:    cam.Eye,
		homeTarget: cam.Target,
	}
	c.resetAxes()
	return c
}

// Camera returns the controlled camera.
func (c *Controller) Camera() *render.LookAtCamera { return c.cam }

// Apply adds the velocity for a.
func (c *Controller) Apply(a Action) {
	rot, zoom, pan := c.speeds.Rotation, c.speeds.Zoom, c.speeds.Pan
	switch a {
	case OrbitLeft:
		c.yaw.push(-rot, rot*maxBoost)
	case OrbitRight:
		c.yaw.push(rot, rot*maxBoost)
	case OrbitUp:
		c.pitch.push(rot, rot*maxBoost)
	case OrbitDown:
		c.pitch.push(-rot, rot*maxBoost)
	case ZoomIn:
		c.zoom.push(-zoom, zoom*maxBoost)
	case ZoomOut:
		c.zoom.push(zoom, zoom*maxBoost)
	case PanLeft:
		c.panX.push(-pan, pan*maxBoost)
	case PanRight:
		c.panX.push(pan, pan*maxBoost)
	case PanUp:
		c.panY.push(pan, pan*maxBoost)
	case PanDown:
		c.panY.push(-pan, pan*maxBoost)
	}
}

// Update advances the camera by dt seconds and damps all velocities.
func (c *Controller) Update(dt float32) {
	if c.yaw.Velocity != 0 || c.pitch.Velocity != 0 {
		c.cam.OrbitAroundTarget(c.yaw.Velocity*dt, c.pitch.Velocity*dt)
	}
	if c.zoom.Velocity != 0 {
		c.cam.Zoom(c.zoom.Velocity * dt)
	}
	if c.panX.Velocity != 0 || c.panY.Velocity != 0 {
		c.cam.Pan(c.panX.Velocity*dt, c.panY.Velocity*dt)
	}
	for _, a := range c.axes() {
		a.decay(dt)
	}
}

func (c *Controller) axes() [5]*axis {
	return [...]*axis{&c.yaw, &c.pitch, &c.zoom, &c.panX, &c.panY}
}

// Moving reports whether any axis still has noticeable velocity.
func (c *Controller) Moving() bool {
	const rest = 1e-3
	for _, a := range c.axes() {
		if a.Velocity > rest || a.Velocity < -rest {
			return true
		}
	}
	return false
}

// Reset returns the camera to where it started and stops all motion.
func (c *Controller) Reset() {
	c.cam.Eye = c.homeEye
	c.cam.Target = c.homeTarget
	c.resetAxes()
}

func (c *Controller) resetAxes() {
	c.yaw = newAxis(c.fps)
	c.pitch = newAxis(c.fps)
	c.zoom = newAxis(c.fps)
	c.panX = newAxis(c.fps)
	c.panY = newAxis(c.fps)
}
