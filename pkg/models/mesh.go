// Package models provides mesh representation and loading for glyph.
package models

import (
	"errors"
	"fmt"
	"iter"

	"github.com/taigrr/glyph/pkg/math3d"
)

var (
	// ErrVertexIndexOutOfRange is returned when a triangle references a
	// vertex that does not exist.
	ErrVertexIndexOutOfRange = errors.New("vertex index out of range")
	// ErrNormalIndexOutOfRange is returned when a triangle references a
	// normal that does not exist.
	ErrNormalIndexOutOfRange = errors.New("normal index out of range")
)

// IndexError reports an invalid index found while building a Mesh.
type IndexError struct {
	Triangle int // triangle number within the mesh
	Index    int // offending index
	Len      int // length of the referenced array
	Err      error
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("triangle %d: %v: %d (have %d)", e.Triangle, e.Err, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error {
	return e.Err
}

// Shading selects how mesh normals are computed.
type Shading int

const (
	// Flat assigns every triangle a single face normal.
	Flat Shading = iota
	// Smooth averages adjacent face normals per vertex.
	Smooth
)

// ParseShading parses "flat" or "smooth".
func ParseShading(s string) (Shading, error) {
	switch s {
	case "flat":
		return Flat, nil
	case "smooth":
		return Smooth, nil
	}
	return Flat, fmt.Errorf("unknown shading mode %q", s)
}

func (s Shading) String() string {
	if s == Smooth {
		return "smooth"
	}
	return "flat"
}

// Vertex is a position with its surface normal.
type Vertex struct {
	Position math3d.Vec3
	Normal   math3d.Normal3
}

// Triangle holds copies of its three vertices.
type Triangle struct {
	V [3]Vertex
}

// TriangleRef references vertices and normals of a Mesh by index.
type TriangleRef struct {
	V [3]int // indices into the vertex array
	N [3]int // indices into the normal array
}

// Mesh owns vertex positions and normals; triangles reference both by
// index. Every index is validated at construction.
type Mesh struct {
	Name string

	vertices  []math3d.Vec3
	normals   []math3d.Normal3
	triangles []TriangleRef
	bounds    math3d.AABB
}

// NewMesh validates the triangle indices against vertices and normals and
// returns the assembled mesh.
func NewMesh(name string, vertices []math3d.Vec3, normals []math3d.Normal3, triangles []TriangleRef) (*Mesh, error) {
	for i, t := range triangles {
		for k := range 3 {
			if t.V[k] < 0 || t.V[k] >= len(vertices) {
				return nil, &IndexError{Triangle: i, Index: t.V[k], Len: len(vertices), Err: ErrVertexIndexOutOfRange}
			}
			if t.N[k] < 0 || t.N[k] >= len(normals) {
				return nil, &IndexError{Triangle: i, Index: t.N[k], Len: len(normals), Err: ErrNormalIndexOutOfRange}
			}
		}
	}
	bounds, _ := math3d.BoundsOf(vertices)
	return &Mesh{
		Name:      name,
		vertices:  vertices,
		normals:   normals,
		triangles: triangles,
		bounds:    bounds,
	}, nil
}

// Build creates a Mesh from raw geometry using the requested shading.
func Build(raw *RawMesh, shading Shading) (*Mesh, error) {
	if shading == Smooth {
		return NewSmoothMesh(raw)
	}
	return NewFlatMesh(raw)
}

// NewFlatMesh computes one normal per face. Faces with no area get (0,0,1).
func NewFlatMesh(raw *RawMesh) (*Mesh, error) {
	if err := raw.validate(); err != nil {
		return nil, err
	}
	normals := make([]math3d.Normal3, len(raw.Faces))
	tris := make([]TriangleRef, len(raw.Faces))
	for i, f := range raw.Faces {
		normals[i] = raw.faceNormal(f).NormalizeOr(math3d.UnitZ)
		tris[i] = TriangleRef{V: f, N: [3]int{i, i, i}}
	}
	return NewMesh(raw.Name, raw.Positions, normals, tris)
}

// NewSmoothMesh computes one normal per vertex by averaging the unit
// normals of adjacent faces. Vertices without a usable face get (0,1,0).
func NewSmoothMesh(raw *RawMesh) (*Mesh, error) {
	if err := raw.validate(); err != nil {
		return nil, err
	}
	acc := make([]math3d.Vec3, len(raw.Positions))
	for _, f := range raw.Faces {
		n, ok := raw.faceNormal(f).Normalize()
		if !ok {
			continue
		}
		for _, vi := range f {
			acc[vi] = acc[vi].Add(n.Vec3())
		}
	}
	normals := make([]math3d.Normal3, len(acc))
	for i, a := range acc {
		normals[i] = a.NormalizeOr(math3d.UnitY)
	}
	tris := make([]TriangleRef, len(raw.Faces))
	for i, f := range raw.Faces {
		tris[i] = TriangleRef{V: f, N: f}
	}
	return NewMesh(raw.Name, raw.Positions, normals, tris)
}

// Len returns the number of triangles.
func (m *Mesh) Len() int {
	return len(m.triangles)
}

// VertexCount returns the number of vertex positions.
func (m *Mesh) VertexCount() int {
	return len(m.vertices)
}

// Triangle returns triangle i with its vertices resolved.
func (m *Mesh) Triangle(i int) Triangle {
	ref := m.triangles[i]
	var t Triangle
	for k := range 3 {
		t.V[k] = Vertex{
			Position: m.vertices[ref.V[k]],
			Normal:   m.normals[ref.N[k]],
		}
	}
	return t
}

// All iterates over every triangle in order.
func (m *Mesh) All() iter.Seq2[int, Triangle] {
	return func(yield func(int, Triangle) bool) {
		for i := range m.triangles {
			if !yield(i, m.Triangle(i)) {
				return
			}
		}
	}
}

// Bounds returns the axis-aligned bounding box of the vertices.
func (m *Mesh) Bounds() math3d.AABB {
	return m.bounds
}
