package render

import (
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/chewxy/math32"
)

func TestFrameBufferSetClamps(t *testing.T) {
	fb := NewFrameBuffer(4, 2)
	fb.Set(0, 0, 2)
	fb.Set(1, 0, -1)
	fb.Set(2, 0, float32(math.NaN()))
	fb.Set(3, 1, 0.25)
	fb.Set(9, 9, 1) // ignored

	if fb.Get(0, 0) != 1 || fb.Get(1, 0) != 0 || fb.Get(2, 0) != 0 || fb.Get(3, 1) != 0.25 {
		t.Errorf("pixels = %v", fb.pixels)
	}
	if fb.Get(-1, 0) != 0 || fb.Get(4, 0) != 0 {
		t.Error("out-of-bounds Get should return 0")
	}
	if fb.Lit() != 2 {
		t.Errorf("Lit = %d, want 2", fb.Lit())
	}

	fb.Clear()
	if fb.Lit() != 0 {
		t.Error("Clear left lit pixels")
	}
}

func TestZBuffer(t *testing.T) {
	zb := NewZBuffer(3, 3)
	if !math32.IsInf(zb.Depth(2, 2), -1) {
		t.Fatalf("cleared depth = %v, want -Inf", zb.Depth(2, 2))
	}
	if !zb.TestAndSet(1, 1, -5) {
		t.Error("first write should pass")
	}
	if zb.TestAndSet(1, 1, -6) {
		t.Error("farther depth should fail")
	}
	if zb.TestAndSet(1, 1, -5) {
		t.Error("equal depth should fail")
	}
	if !zb.TestAndSet(1, 1, -2) || zb.Depth(1, 1) != -2 {
		t.Errorf("nearer depth should replace, got %v", zb.Depth(1, 1))
	}
	if zb.TestAndSet(3, 0, 0) || zb.TestAndSet(0, -1, 0) {
		t.Error("out-of-bounds TestAndSet should fail")
	}

	zb.Clear()
	for y := range 3 {
		for x := range 3 {
			if !math32.IsInf(zb.Depth(x, y), -1) {
				t.Fatalf("depth (%d,%d) = %v after Clear", x, y, zb.Depth(x, y))
			}
		}
	}
}

func TestSavePNG(t *testing.T) {
	fb := NewFrameBuffer(3, 2)
	fb.Set(1, 1, 1)

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := fb.SavePNG(path, 4); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 8 {
		t.Fatalf("size = %v, want 12x8", b)
	}
	if r, _, _, _ := img.At(5, 5).RGBA(); r != 0xffff {
		t.Errorf("scaled lit pixel = %v, want white", r)
	}
	if r, _, _, _ := img.At(0, 0).RGBA(); r != 0 {
		t.Errorf("unlit pixel = %v, want black", r)
	}
}
