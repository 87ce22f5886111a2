package math3d

import "github.com/chewxy/math32"

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min Vec3
	Max Vec3
}

// NewAABB creates an AABB from min and max points.
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// BoundsOf returns the smallest AABB containing every point.
// ok is false for an empty slice.
func BoundsOf(points []Vec3) (box AABB, ok bool) {
	if len(points) == 0 {
		return AABB{}, false
	}
	box = AABB{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		box.Min = box.Min.Min(p)
		box.Max = box.Max.Max(p)
	}
	return box, true
}

// Center returns the center of the AABB.
func (b AABB) Center() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the dimensions of the AABB.
func (b AABB) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// Width returns the extent along X.
func (b AABB) Width() float32 { return b.Max.X - b.Min.X }

// Height returns the extent along Y.
func (b AABB) Height() float32 { return b.Max.Y - b.Min.Y }

// Depth returns the extent along Z.
func (b AABB) Depth() float32 { return b.Max.Z - b.Min.Z }

// MaxExtent returns the largest of width, height and depth.
func (b AABB) MaxExtent() float32 {
	return math32.Max(b.Width(), math32.Max(b.Height(), b.Depth()))
}
