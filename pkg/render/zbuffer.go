package render

import "github.com/chewxy/math32"

// ZBuffer tracks the nearest depth per pixel. Depths are view-space Z with
// the camera looking down -Z, so a greater value is nearer.
type ZBuffer struct {
	width  int
	height int
	depth  []float32 // Row-major depth data
}

// NewZBuffer creates a cleared depth buffer.
func NewZBuffer(width, height int) *ZBuffer {
	width, height = max(width, 0), max(height, 0)
	zb := &ZBuffer{
		width:  width,
		height: height,
		depth:  make([]float32, width*height),
	}
	zb.Clear()
	return zb
}

// Clear resets every depth to -Inf (call before each frame).
func (zb *ZBuffer) Clear() {
	// Use copy-doubling for faster clearing
	n := len(zb.depth)
	if n == 0 {
		return
	}
	zb.depth[0] = math32.Inf(-1)
	for i := 1; i < n; i *= 2 {
		copy(zb.depth[i:], zb.depth[:i])
	}
}

// TestAndSet stores z at (x, y) and reports true if z is nearer than the
// stored depth. Out-of-bounds coordinates always fail.
func (zb *ZBuffer) TestAndSet(x, y int, z float32) bool {
	if x < 0 || x >= zb.width || y < 0 || y >= zb.height {
		return false
	}
	i := y*zb.width + x
	if z > zb.depth[i] {
		zb.depth[i] = z
		return true
	}
	return false
}

// Depth returns the stored depth at (x, y), or -Inf if out of bounds.
func (zb *ZBuffer) Depth(x, y int) float32 {
	if x < 0 || x >= zb.width || y < 0 || y >= zb.height {
		return math32.Inf(-1)
	}
	return zb.depth[y*zb.width+x]
}
