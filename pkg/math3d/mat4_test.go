package math3d

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func assertMat4(t *testing.T, got Mat4, want mgl32.Mat4) {
	t.Helper()
	for r := range 4 {
		for c := range 4 {
			if math32.Abs(got.At(r, c)-want.At(r, c)) > tol {
				t.Errorf("[%d][%d] = %v, want %v", r, c, got.At(r, c), want.At(r, c))
			}
		}
	}
}

func TestIdentityTransform(t *testing.T) {
	for _, v := range []Vec3{V3(0, 0, 0), V3(1, -2, 3), V3(1e3, 1e-3, -7)} {
		if got := Identity().TransformPoint(v); !got.ApproxEqual(v, tol) {
			t.Errorf("identity(%v) = %v", v, got)
		}
	}
}

func TestTranslateTransform(t *testing.T) {
	d := V3(1, 2, 3)
	m := Translate(d)
	for _, v := range []Vec3{V3(0, 0, 0), V3(-4, 5, 0.5)} {
		want := v.Add(d)
		if got := m.TransformPoint(v); !got.ApproxEqual(want, tol) {
			t.Errorf("translate(%v) = %v, want %v", v, got, want)
		}
	}
	// Directions ignore translation
	if got := m.TransformDir(V3(0, 1, 0)); got != V3(0, 1, 0) {
		t.Errorf("TransformDir = %v, want (0,1,0)", got)
	}
}

func TestMulOrder(t *testing.T) {
	// Scale first, then translate
	m := Translate(V3(1, 0, 0)).Mul(Scale(V3(2, 2, 2)))
	got := m.TransformPoint(V3(1, 1, 1))
	want := V3(3, 2, 2)
	if !got.ApproxEqual(want, tol) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestLookAtRoundTrip(t *testing.T) {
	tests := []struct {
		name        string
		eye, target Vec3
	}{
		{"on +z", V3(0, 0, 5), Zero3()},
		{"on -z", V3(0, 0, -10), Zero3()},
		{"oblique", V3(3, 4, -2), V3(1, 0, 1)},
		{"above", V3(0, 10, 0), Zero3()},
		{"coincident", V3(1, 1, 1), V3(1, 1, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			view := LookAt(tc.eye, tc.target, UnitY.Vec3())

			if got := view.TransformPoint(tc.eye); !got.ApproxEqual(Zero3(), 1e-4) {
				t.Errorf("eye maps to %v, want origin", got)
			}

			forward := tc.target.Sub(tc.eye).NormalizeOr(UnitNegZ).Vec3()
			ahead := view.TransformPoint(tc.eye.Add(forward))
			if ahead.Z >= 0 {
				t.Errorf("point ahead maps to z = %v, want negative", ahead.Z)
			}
		})
	}
}

func TestLookAtMatchesMathgl(t *testing.T) {
	eye, target, up := V3(3, 4, -2), V3(1, 0, 1), V3(0, 1, 0)
	got := LookAt(eye, target, up)
	want := mgl32.LookAtV(
		mgl32.Vec3{eye.X, eye.Y, eye.Z},
		mgl32.Vec3{target.X, target.Y, target.Z},
		mgl32.Vec3{up.X, up.Y, up.Z},
	)
	assertMat4(t, got, want)
}

func TestPerspectiveMatchesMathgl(t *testing.T) {
	fov := mgl32.DegToRad(60)
	got := Perspective(fov, 4.0/3.0, 0.1, 5)
	want := mgl32.Perspective(fov, 4.0/3.0, 0.1, 5)
	assertMat4(t, got, want)
}

func TestOrthographicMatchesMathgl(t *testing.T) {
	got := Orthographic(-2, 2, -1, 1, 0.1, 100)
	want := mgl32.Ortho(-2, 2, -1, 1, 0.1, 100)
	assertMat4(t, got, want)
}

func TestPerspectiveDepthRange(t *testing.T) {
	near, far := float32(0.1), float32(5)
	p := Perspective(mgl32.DegToRad(60), 1, near, far)

	tests := []struct {
		name string
		z    float32
		want float32
	}{
		{"near plane", -near, -1},
		{"far plane", -far, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clip := p.MulVec4(V4(0, 0, tc.z, 1))
			if clip.W <= 0 {
				t.Fatalf("w = %v, want positive in front of the camera", clip.W)
			}
			if got := clip.PerspectiveDivide().Z; math32.Abs(got-tc.want) > 1e-4 {
				t.Errorf("ndc z = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestOrthographicKeepsW(t *testing.T) {
	o := Orthographic(-1, 1, -1, 1, 0.1, 100)
	clip := o.MulVec4(V4(0.3, -0.2, -7, 1))
	if clip.W != 1 {
		t.Errorf("w = %v, want 1", clip.W)
	}
}

func TestMat3Inverse(t *testing.T) {
	m := Mat3{
		2, 0, 1,
		1, 3, 0,
		0, 1, 4,
	}
	inv, ok := m.Inverse()
	if !ok {
		t.Fatal("Inverse reported singular matrix")
	}

	prod := m.Mul(inv)
	id := Identity3()
	for i := range prod {
		if math32.Abs(prod[i]-id[i]) > tol {
			t.Errorf("m * inv [%d] = %v, want %v", i, prod[i], id[i])
		}
	}

	// mathgl stores column-major; converting our row-major array yields
	// the transpose.
	want := mgl32.Mat3(m).Transpose().Inv()
	for r := range 3 {
		for c := range 3 {
			if math32.Abs(inv.At(r, c)-want.At(r, c)) > tol {
				t.Errorf("inv[%d][%d] = %v, want %v", r, c, inv.At(r, c), want.At(r, c))
			}
		}
	}
}

func TestMat3InverseSingular(t *testing.T) {
	m := Mat3{
		1, 2, 3,
		2, 4, 6,
		0, 1, 1,
	}
	if _, ok := m.Inverse(); ok {
		t.Error("expected singular matrix to fail inversion")
	}
}

func TestTransformNormal(t *testing.T) {
	t.Run("non-uniform scale keeps perpendicularity", func(t *testing.T) {
		m := Scale(V3(2, 1, 1))
		n := V3(1, 1, 0).NormalizeOr(UnitY)
		tangent := m.TransformDir(V3(1, -1, 0))

		got := m.TransformNormal(n)
		if d := got.Vec3().Dot(tangent); math32.Abs(d) > tol {
			t.Errorf("normal · tangent = %v, want 0", d)
		}
		if l := got.Vec3().Len(); math32.Abs(l-1) > tol {
			t.Errorf("len = %v, want 1", l)
		}
	})

	t.Run("translation leaves normals alone", func(t *testing.T) {
		got := Translate(V3(5, 5, 5)).TransformNormal(UnitX)
		if !got.Vec3().ApproxEqual(UnitX.Vec3(), tol) {
			t.Errorf("got %v, want %v", got, UnitX)
		}
	})

	t.Run("singular falls back to input", func(t *testing.T) {
		got := Scale(V3(0, 1, 1)).TransformNormal(UnitX)
		if got != UnitX {
			t.Errorf("got %v, want %v", got, UnitX)
		}
	})
}
