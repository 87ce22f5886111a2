// Package render implements the glyph software rasterization pipeline:
// cameras, vertex and fragment shaders, depth and frame buffers, and the
// triangle rasterizer that ties them together.
package render

import (
	"github.com/chewxy/math32"
	"github.com/taigrr/glyph/pkg/math3d"
)

// Outcome reports what happened to a triangle handed to the rasterizer.
type Outcome int

const (
	// Drawn means the triangle was scanned; some pixels may still have
	// lost the depth test.
	Drawn Outcome = iota
	// BehindCamera means a vertex had clip w <= 0.
	BehindCamera
	// OutsideFrustum means the NDC bounding box missed [-1,1]².
	OutsideFrustum
	// BackFacing means the triangle winds clockwise on screen.
	BackFacing
	// Degenerate means the triangle has no screen-space area.
	Degenerate
)

func (o Outcome) String() string {
	switch o {
	case Drawn:
		return "drawn"
	case BehindCamera:
		return "behind camera"
	case OutsideFrustum:
		return "outside frustum"
	case BackFacing:
		return "back-facing"
	case Degenerate:
		return "degenerate"
	}
	return "unknown"
}

// Rasterizer scan-converts processed triangles into a frame buffer.
type Rasterizer struct {
	// CullBackfaces skips triangles that wind clockwise in NDC.
	// Counter-clockwise is front-facing.
	CullBackfaces bool
}

// screenVertex is a vertex mapped to pixel coordinates.
type screenVertex struct {
	X, Y float32
}

// RasterizeTriangle draws one triangle. For every covered pixel that passes
// the depth test, the fragment shader's intensity is written to fb.
// Triangles that cannot be drawn are skipped and the reason is returned.
func (r *Rasterizer) RasterizeTriangle(
	pv [3]ProcessedVertex,
	light math3d.Direction3,
	zb *ZBuffer,
	fb *FrameBuffer,
	fs FragmentShader,
) Outcome {
	if pv[0].InvW <= 0 || pv[1].InvW <= 0 || pv[2].InvW <= 0 {
		return BehindCamera
	}
	if outsideFrustum(pv) {
		return OutsideFrustum
	}
	if r.CullBackfaces && isBackFacing(pv) {
		return BackFacing
	}

	w, h := fb.Width(), fb.Height()
	if w == 0 || h == 0 {
		return OutsideFrustum
	}
	var sv [3]screenVertex
	for i := range 3 {
		sv[i] = ndcToScreen(pv[i].NDC, w, h)
	}

	// Bounding box, truncated toward zero and clamped to the buffer
	minX := pixelBound(min3(sv[0].X, sv[1].X, sv[2].X), w)
	maxX := pixelBound(max3(sv[0].X, sv[1].X, sv[2].X), w)
	minY := pixelBound(min3(sv[0].Y, sv[1].Y, sv[2].Y), h)
	maxY := pixelBound(max3(sv[0].Y, sv[1].Y, sv[2].Y), h)

	bary, ok := newBarycentric(sv)
	if !ok {
		return Degenerate
	}

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			bc := bary.at(float32(x), float32(y))
			if bc.X < 0 || bc.Y < 0 || bc.Z < 0 {
				continue
			}

			// Linear view-space depth; only compared, never displayed
			depth := bc.X*pv[0].ViewPos.Z + bc.Y*pv[1].ViewPos.Z + bc.Z*pv[2].ViewPos.Z
			if !zb.TestAndSet(x, y, depth) {
				continue
			}

			fb.Set(x, y, fs.Process(interpolateNormal(bc, pv), light))
		}
	}
	return Drawn
}

func ndcToScreen(ndc math3d.Vec3, width, height int) screenVertex {
	return screenVertex{
		X: (ndc.X + 1) * 0.5 * float32(width-1),
		Y: (1 - ndc.Y) * 0.5 * float32(height-1), // Y flipped
	}
}

func outsideFrustum(pv [3]ProcessedVertex) bool {
	minX := min3(pv[0].NDC.X, pv[1].NDC.X, pv[2].NDC.X)
	maxX := max3(pv[0].NDC.X, pv[1].NDC.X, pv[2].NDC.X)
	minY := min3(pv[0].NDC.Y, pv[1].NDC.Y, pv[2].NDC.Y)
	maxY := max3(pv[0].NDC.Y, pv[1].NDC.Y, pv[2].NDC.Y)
	return minX > 1 || maxX < -1 || minY > 1 || maxY < -1
}

// isBackFacing uses the NDC winding, where y points up.
func isBackFacing(pv [3]ProcessedVertex) bool {
	e1 := math3d.V2(pv[1].NDC.X-pv[0].NDC.X, pv[1].NDC.Y-pv[0].NDC.Y)
	e2 := math3d.V2(pv[2].NDC.X-pv[0].NDC.X, pv[2].NDC.Y-pv[0].NDC.Y)
	return e1.Cross(e2) <= 0
}

// interpolateNormal blends the vertex normals weighted by 1/w, falling back
// to the view axis when the blend cancels out.
func interpolateNormal(bc math3d.Vec3, pv [3]ProcessedVertex) math3d.Normal3 {
	n := pv[0].ViewNormal.Scale(bc.X * pv[0].InvW).
		Add(pv[1].ViewNormal.Scale(bc.Y * pv[1].InvW)).
		Add(pv[2].ViewNormal.Scale(bc.Z * pv[2].InvW))
	return n.NormalizeOr(math3d.UnitZ)
}

// barycentric solves for the weights of a point against a fixed screen
// triangle. Edge dot products depend only on the triangle, so they are
// computed once.
type barycentric struct {
	a             math3d.Vec2
	e0, e1        math3d.Vec2 // b-a, c-a
	d00, d01, d11 float32
	invDenom      float32
}

// newBarycentric returns false when the triangle has no area.
func newBarycentric(sv [3]screenVertex) (barycentric, bool) {
	a := math3d.V2(sv[0].X, sv[0].Y)
	e0 := math3d.V2(sv[1].X, sv[1].Y).Sub(a)
	e1 := math3d.V2(sv[2].X, sv[2].Y).Sub(a)

	d00, d01, d11 := e0.Dot(e0), e0.Dot(e1), e1.Dot(e1)
	denom := d00*d11 - d01*d01
	if math32.Abs(denom) < math3d.Epsilon {
		return barycentric{}, false
	}
	return barycentric{a: a, e0: e0, e1: e1, d00: d00, d01: d01, d11: d11, invDenom: 1 / denom}, true
}

// at returns (u, v, w): the weights of vertices a, b and c at (px, py).
func (b barycentric) at(px, py float32) math3d.Vec3 {
	p := math3d.V2(px, py).Sub(b.a)
	d20, d21 := p.Dot(b.e0), p.Dot(b.e1)

	v := (b.d11*d20 - b.d01*d21) * b.invDenom
	w := (b.d00*d21 - b.d01*d20) * b.invDenom
	return math3d.V3(1-v-w, v, w)
}

func min3(a, b, c float32) float32 {
	return min(a, b, c)
}

func max3(a, b, c float32) float32 {
	return max(a, b, c)
}

// pixelBound truncates a screen coordinate toward zero and clamps it to
// [0, n-1]. The float is limited first so huge coordinates from vertices
// close to the eye plane convert safely.
func pixelBound(v float32, n int) int {
	v = math32.Max(-1, math32.Min(v, float32(n)))
	return max(0, min(int(v), n-1))
}
