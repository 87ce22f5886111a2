package render

import (
	"github.com/taigrr/glyph/pkg/math3d"
)

// Plane represents a plane in 3D space using the equation: Ax + By + Cz + D = 0
// where (A, B, C) is the normal and D is the distance from origin.
type Plane struct {
	Normal math3d.Vec3
	D      float32
}

// Normalize normalizes the plane equation so the normal has unit length.
func (p *Plane) Normalize() {
	l := p.Normal.Len()
	if l == 0 {
		return
	}
	p.Normal = p.Normal.Scale(1 / l)
	p.D /= l
}

// DistanceToPoint returns the signed distance from the plane to a point.
// Positive = in front (same side as normal), negative = behind.
func (p Plane) DistanceToPoint(point math3d.Vec3) float32 {
	return p.Normal.Dot(point) + p.D
}

// Frustum represents the 6 planes of a view frustum.
// Planes are ordered: Left, Right, Bottom, Top, Near, Far.
// Each plane's normal points inward (toward the center of the frustum).
type Frustum struct {
	Planes [6]Plane
}

// FrustumPlane indices for clarity.
const (
	FrustumLeft = iota
	FrustumRight
	FrustumBottom
	FrustumTop
	FrustumNear
	FrustumFar
)

// NewFrustumFromMatrix extracts frustum planes from a view-projection matrix
// using the Gribb/Hartmann method. The resulting planes have normals
// pointing inward.
func NewFrustumFromMatrix(m math3d.Mat4) Frustum {
	r0, r1, r2, r3 := m.Row(0), m.Row(1), m.Row(2), m.Row(3)

	f := Frustum{Planes: [6]Plane{
		FrustumLeft:   planeFrom(r3, r0, 1),
		FrustumRight:  planeFrom(r3, r0, -1),
		FrustumBottom: planeFrom(r3, r1, 1),
		FrustumTop:    planeFrom(r3, r1, -1),
		FrustumNear:   planeFrom(r3, r2, 1),
		FrustumFar:    planeFrom(r3, r2, -1),
	}}

	for i := range f.Planes {
		f.Planes[i].Normalize()
	}
	return f
}

// planeFrom builds the plane w + sign*row.
func planeFrom(w, row math3d.Vec4, sign float32) Plane {
	return Plane{
		Normal: math3d.V3(w.X+sign*row.X, w.Y+sign*row.Y, w.Z+sign*row.Z),
		D:      w.W + sign*row.W,
	}
}

// IntersectAABB tests if the AABB intersects or is inside the frustum.
// Returns true if any part of the AABB is visible.
// Uses the "positive vertex" optimization for faster rejection.
func (f Frustum) IntersectAABB(box math3d.AABB) bool {
	return intersectPlanes(f.Planes[:], box)
}

// IntersectAABBSides is IntersectAABB against the left, right, bottom and
// top planes only. Depth is left unbounded, matching the rasterizer, which
// rejects on NDC x and y alone. For a perspective projection the four side
// planes still reject anything wholly behind the eye.
func (f Frustum) IntersectAABBSides(box math3d.AABB) bool {
	return intersectPlanes(f.Planes[FrustumLeft:FrustumNear], box)
}

func intersectPlanes(planes []Plane, box math3d.AABB) bool {
	for _, plane := range planes {
		// The corner furthest along the plane normal; if it is outside,
		// the whole box is.
		pVertex := math3d.V3(
			selectComponent(plane.Normal.X >= 0, box.Max.X, box.Min.X),
			selectComponent(plane.Normal.Y >= 0, box.Max.Y, box.Min.Y),
			selectComponent(plane.Normal.Z >= 0, box.Max.Z, box.Min.Z),
		)

		if plane.DistanceToPoint(pVertex) < 0 {
			return false
		}
	}

	return true
}

func selectComponent(cond bool, a, b float32) float32 {
	if cond {
		return a
	}
	return b
}
