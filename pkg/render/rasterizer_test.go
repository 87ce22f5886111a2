package render

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/taigrr/glyph/pkg/math3d"
)

// ndcVertex builds a processed vertex directly in NDC with the given view
// depth, facing the viewer.
func ndcVertex(x, y, viewZ float32) ProcessedVertex {
	return ProcessedVertex{
		NDC:        math3d.V3(x, y, 0),
		ViewPos:    math3d.V3(0, 0, viewZ),
		ViewNormal: math3d.UnitZ,
		InvW:       1,
	}
}

func ccwTriangle(viewZ float32) [3]ProcessedVertex {
	return [3]ProcessedVertex{
		ndcVertex(-0.5, -0.5, viewZ),
		ndcVertex(0.5, -0.5, viewZ),
		ndcVertex(0, 0.5, viewZ),
	}
}

var testShader = FragmentShader{Ambient: 0.1, Diffuse: 0.7, Specular: 0.2, Shininess: 8}

func TestRasterizeOutcomes(t *testing.T) {
	cw := ccwTriangle(-1)
	cw[1], cw[2] = cw[2], cw[1]

	behind := ccwTriangle(-1)
	behind[2].InvW = -0.5

	offscreen := [3]ProcessedVertex{
		ndcVertex(1.5, 0, -1),
		ndcVertex(3, 0, -1),
		ndcVertex(2, 1, -1),
	}

	collinear := [3]ProcessedVertex{
		ndcVertex(-0.5, -0.5, -1),
		ndcVertex(0, 0, -1),
		ndcVertex(0.5, 0.5, -1),
	}

	tests := []struct {
		name string
		tri  [3]ProcessedVertex
		cull bool
		want Outcome
		lit  bool
	}{
		{"front-facing", ccwTriangle(-1), true, Drawn, true},
		{"clockwise culled", cw, true, BackFacing, false},
		{"clockwise without culling", cw, false, Drawn, true},
		{"vertex behind camera", behind, true, BehindCamera, false},
		{"outside frustum", offscreen, true, OutsideFrustum, false},
		{"collinear", collinear, false, Degenerate, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fb := NewFrameBuffer(16, 16)
			zb := NewZBuffer(16, 16)
			r := Rasterizer{CullBackfaces: tc.cull}

			got := r.RasterizeTriangle(tc.tri, math3d.UnitZ, zb, fb, testShader)
			if got != tc.want {
				t.Errorf("outcome = %v, want %v", got, tc.want)
			}
			if lit := fb.Lit() > 0; lit != tc.lit {
				t.Errorf("lit pixels = %d, want any lit: %v", fb.Lit(), tc.lit)
			}
		})
	}
}

func TestRasterizeEmptyBuffer(t *testing.T) {
	r := Rasterizer{}
	got := r.RasterizeTriangle(ccwTriangle(-1), math3d.UnitZ, NewZBuffer(0, 0), NewFrameBuffer(0, 0), testShader)
	if got != OutsideFrustum {
		t.Errorf("outcome = %v, want %v", got, OutsideFrustum)
	}
}

func TestRasterizeEdgeInclusive(t *testing.T) {
	// On a 5×5 buffer NDC -1, 0, 1 land exactly on pixels 0, 2, 4.
	fb := NewFrameBuffer(5, 5)
	zb := NewZBuffer(5, 5)
	tri := [3]ProcessedVertex{
		ndcVertex(-1, -1, -1), // (0, 4)
		ndcVertex(1, -1, -1),  // (4, 4)
		ndcVertex(-1, 1, -1),  // (0, 0)
	}
	r := Rasterizer{CullBackfaces: true}
	if got := r.RasterizeTriangle(tri, math3d.UnitZ, zb, fb, testShader); got != Drawn {
		t.Fatalf("outcome = %v, want drawn", got)
	}

	for _, p := range [][2]int{{0, 0}, {0, 4}, {4, 4}, {2, 2}, {3, 1}} {
		if fb.Get(p[0], p[1]) == 0 {
			t.Errorf("pixel %v on the triangle boundary not drawn", p)
		}
	}
	for _, p := range [][2]int{{4, 0}, {4, 1}, {3, 0}} {
		if fb.Get(p[0], p[1]) != 0 {
			t.Errorf("pixel %v outside the triangle drawn", p)
		}
	}
}

func TestRasterizeDepthOrderIndependent(t *testing.T) {
	near := ccwTriangle(-1)
	far := ccwTriangle(-5)
	tilted := math3d.UnitUnchecked(0.70710677, 0, 0.70710677)
	for i := range far {
		far[i].ViewNormal = tilted
	}
	shader := FragmentShader{Ambient: 0.1, Diffuse: 0.7}

	draw := func(order ...[3]ProcessedVertex) *FrameBuffer {
		fb := NewFrameBuffer(16, 16)
		zb := NewZBuffer(16, 16)
		r := Rasterizer{CullBackfaces: true}
		for _, tri := range order {
			r.RasterizeTriangle(tri, math3d.UnitZ, zb, fb, shader)
		}
		return fb
	}

	a := draw(near, far)
	b := draw(far, near)
	for y := range 16 {
		for x := range 16 {
			if a.Get(x, y) != b.Get(x, y) {
				t.Fatalf("pixel (%d,%d): %v vs %v depending on draw order", x, y, a.Get(x, y), b.Get(x, y))
			}
		}
	}
	if got := a.Get(8, 8); math32.Abs(got-0.8) > 1e-5 {
		t.Errorf("center = %v, want the near triangle's 0.8", got)
	}
}

func TestBarycentric(t *testing.T) {
	sv := [3]screenVertex{{0, 0}, {4, 0}, {0, 4}}
	bary, ok := newBarycentric(sv)
	if !ok {
		t.Fatal("triangle reported degenerate")
	}

	tests := []struct {
		name     string
		px, py   float32
		expected math3d.Vec3
	}{
		{"vertex a", 0, 0, math3d.V3(1, 0, 0)},
		{"vertex b", 4, 0, math3d.V3(0, 1, 0)},
		{"vertex c", 0, 4, math3d.V3(0, 0, 1)},
		{"edge midpoint", 2, 2, math3d.V3(0, 0.5, 0.5)},
		{"outside", 4, 4, math3d.V3(-1, 1, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bc := bary.at(tc.px, tc.py)
			if !bc.ApproxEqual(tc.expected, 1e-6) {
				t.Errorf("at(%v, %v) = %v, want %v", tc.px, tc.py, bc, tc.expected)
			}
		})
	}
}

func TestBarycentricSumsToOne(t *testing.T) {
	sv := [3]screenVertex{{1.5, 2.25}, {30.75, 7}, {12, 28.5}}
	bary, ok := newBarycentric(sv)
	if !ok {
		t.Fatal("triangle reported degenerate")
	}
	for y := range 32 {
		for x := range 32 {
			bc := bary.at(float32(x), float32(y))
			if sum := bc.X + bc.Y + bc.Z; math32.Abs(sum-1) > 1e-5 {
				t.Fatalf("weights at (%d,%d) sum to %v", x, y, sum)
			}
		}
	}
}

func TestBarycentricDegenerate(t *testing.T) {
	if _, ok := newBarycentric([3]screenVertex{{3, 3}, {3, 3}, {3, 3}}); ok {
		t.Error("point triangle should be degenerate")
	}
}

func TestInterpolateNormalFallback(t *testing.T) {
	pv := [3]ProcessedVertex{
		{ViewNormal: math3d.UnitX, InvW: 1},
		{ViewNormal: math3d.UnitX.Negate(), InvW: 1},
		{ViewNormal: math3d.UnitY, InvW: 1},
	}
	n := interpolateNormal(math3d.V3(0.5, 0.5, 0), pv)
	if n != math3d.UnitZ {
		t.Errorf("cancelled normals = %v, want fallback %v", n.Vec3(), math3d.UnitZ.Vec3())
	}
}

func TestInterpolateNormalPerspectiveWeights(t *testing.T) {
	// The nearer vertex (larger 1/w) dominates at equal screen weights.
	pv := [3]ProcessedVertex{
		{ViewNormal: math3d.UnitX, InvW: 1},
		{ViewNormal: math3d.UnitY, InvW: 0.25},
		{ViewNormal: math3d.UnitY, InvW: 0.25},
	}
	n := interpolateNormal(math3d.V3(0.5, 0.25, 0.25), pv)
	if n.X() <= n.Y() {
		t.Errorf("normal = %v, want the near vertex's X to dominate", n.Vec3())
	}
}

func TestPixelBound(t *testing.T) {
	tests := []struct {
		v    float32
		n    int
		want int
	}{
		{3.9, 10, 3},
		{-0.5, 10, 0},
		{-1e30, 10, 0},
		{1e30, 10, 9},
		{10, 10, 9},
	}
	for _, tc := range tests {
		if got := pixelBound(tc.v, tc.n); got != tc.want {
			t.Errorf("pixelBound(%v, %d) = %d, want %d", tc.v, tc.n, got, tc.want)
		}
	}
}

func TestOutcomeString(t *testing.T) {
	if Drawn.String() != "drawn" || BackFacing.String() != "back-facing" || Outcome(99).String() != "unknown" {
		t.Error("unexpected Outcome names")
	}
}

func BenchmarkRasterizeTriangle(b *testing.B) {
	fb := NewFrameBuffer(256, 256)
	zb := NewZBuffer(256, 256)
	r := Rasterizer{CullBackfaces: true}
	tri := ccwTriangle(-1)

	for b.Loop() {
		zb.Clear()
		r.RasterizeTriangle(tri, math3d.UnitZ, zb, fb, testShader)
	}
}
