// Package output turns a raster of light intensities into terminal text.
package output

// Buffer is a read-only view of a frame: per-pixel intensities in [0, 1].
type Buffer interface {
	Width() int
	Height() int
	Get(x, y int) float32
}

// Formatter encodes a whole frame as a printable string.
type Formatter interface {
	Format(buf Buffer) string
}
