package models

import (
	"github.com/taigrr/glyph/pkg/math3d"
)

// RawMesh is triangulated geometry as produced by a mesh source: vertex
// positions and 0-based triangle indices. Normals are derived later by
// Build.
type RawMesh struct {
	Name      string
	Positions []math3d.Vec3
	Faces     [][3]int
}

// TriangleCount returns the number of triangles.
func (r *RawMesh) TriangleCount() int {
	return len(r.Faces)
}

// Bounds returns the bounding box of the positions.
// ok is false for an empty mesh.
func (r *RawMesh) Bounds() (math3d.AABB, bool) {
	return math3d.BoundsOf(r.Positions)
}

// Center returns the average of all vertex positions.
func (r *RawMesh) Center() math3d.Vec3 {
	if len(r.Positions) == 0 {
		return math3d.Zero3()
	}
	var acc math3d.Vec3
	for _, p := range r.Positions {
		acc = acc.Add(p)
	}
	return acc.Scale(1 / float32(len(r.Positions)))
}

// Translate moves every vertex by d.
func (r *RawMesh) Translate(d math3d.Vec3) {
	for i := range r.Positions {
		r.Positions[i] = r.Positions[i].Add(d)
	}
}

// Scale multiplies every vertex by s.
func (r *RawMesh) Scale(s float32) {
	for i := range r.Positions {
		r.Positions[i] = r.Positions[i].Scale(s)
	}
}

// Fit scales the mesh uniformly so its largest bounding-box extent equals
// maxExtent. Flat or empty meshes are left untouched.
func (r *RawMesh) Fit(maxExtent float32) {
	box, ok := r.Bounds()
	if !ok || box.MaxExtent() <= 0 {
		return
	}
	r.Scale(maxExtent / box.MaxExtent())
}

// Centering moves the mesh so its bounding box is centered on the origin.
func (r *RawMesh) Centering() {
	box, ok := r.Bounds()
	if !ok {
		return
	}
	r.Translate(box.Center().Negate())
}

func (r *RawMesh) validate() error {
	for i, f := range r.Faces {
		for _, vi := range f {
			if vi < 0 || vi >= len(r.Positions) {
				return &IndexError{Triangle: i, Index: vi, Len: len(r.Positions), Err: ErrVertexIndexOutOfRange}
			}
		}
	}
	return nil
}

// faceNormal returns the unnormalized normal of f; CCW winding faces the
// viewer.
func (r *RawMesh) faceNormal(f [3]int) math3d.Vec3 {
	v0, v1, v2 := r.Positions[f[0]], r.Positions[f[1]], r.Positions[f[2]]
	return v1.Sub(v0).Cross(v2.Sub(v0))
}

// Cube returns a unit cube centered on the origin: 8 vertices and 12
// triangles wound counter-clockwise when seen from outside.
func Cube() *RawMesh {
	const h = 0.5
	return &RawMesh{
		Name: "cube",
		Positions: []math3d.Vec3{
			{X: -h, Y: -h, Z: -h}, {X: h, Y: -h, Z: -h}, {X: h, Y: h, Z: -h}, {X: -h, Y: h, Z: -h},
			{X: -h, Y: -h, Z: h}, {X: h, Y: -h, Z: h}, {X: h, Y: h, Z: h}, {X: -h, Y: h, Z: h},
		},
		Faces: [][3]int{
			{4, 5, 6}, {4, 6, 7}, // +Z
			{0, 3, 2}, {0, 2, 1}, // -Z
			{1, 2, 6}, {1, 6, 5}, // +X
			{0, 4, 7}, {0, 7, 3}, // -X
			{3, 7, 6}, {3, 6, 2}, // +Y
			{0, 1, 5}, {0, 5, 4}, // -Y
		},
	}
}
