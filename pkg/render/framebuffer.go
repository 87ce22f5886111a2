package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

// FrameBuffer is a 2D grid of light intensities in [0, 1].
// It is the rasterizer's write target and the output formatter's source.
type FrameBuffer struct {
	width  int
	height int
	pixels []float32 // Row-major intensity data
}

// NewFrameBuffer creates a cleared frame buffer with the given dimensions.
func NewFrameBuffer(width, height int) *FrameBuffer {
	width, height = max(width, 0), max(height, 0)
	return &FrameBuffer{
		width:  width,
		height: height,
		pixels: make([]float32, width*height),
	}
}

// Width returns the width in pixels.
func (fb *FrameBuffer) Width() int { return fb.width }

// Height returns the height in pixels.
func (fb *FrameBuffer) Height() int { return fb.height }

// Clear resets every pixel to 0.
func (fb *FrameBuffer) Clear() {
	clear(fb.pixels)
}

// Set stores the intensity at (x, y), clamped to [0, 1].
// Out-of-bounds writes are ignored.
func (fb *FrameBuffer) Set(x, y int, v float32) {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return
	}
	fb.pixels[y*fb.width+x] = clamp01(v)
}

// Get returns the intensity at (x, y).
// Returns 0 if out of bounds.
func (fb *FrameBuffer) Get(x, y int) float32 {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return 0
	}
	return fb.pixels[y*fb.width+x]
}

// Lit returns the number of pixels with a non-zero intensity.
func (fb *FrameBuffer) Lit() int {
	n := 0
	for _, p := range fb.pixels {
		if p > 0 {
			n++
		}
	}
	return n
}

// ToImage converts the frame buffer to a grayscale image.
func (fb *FrameBuffer) ToImage() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, fb.width, fb.height))
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8(fb.pixels[y*fb.width+x]*255 + 0.5)})
		}
	}
	return img
}

// SavePNG saves the frame buffer as a PNG file, upscaled by an integer
// factor with nearest-neighbour sampling so pixels stay crisp.
func (fb *FrameBuffer) SavePNG(path string, scale int) error {
	var img image.Image = fb.ToImage()
	if scale > 1 {
		dst := image.NewGray(image.Rect(0, 0, fb.width*scale, fb.height*scale))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
		img = dst
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}

func clamp01(v float32) float32 {
	switch {
	case v > 1:
		return 1
	case v > 0:
		return v
	default:
		// also maps NaN to 0
		return 0
	}
}
