// Package math3d provides the float32 vector and matrix kernel used by the
// glyph rendering pipeline.
package math3d

import "github.com/chewxy/math32"

// Epsilon is the float32 machine epsilon used for degeneracy checks.
const Epsilon = 1.1920929e-07

// Vec3 represents a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// V3 creates a new Vec3.
func V3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

// Zero3 returns the zero vector.
func Zero3() Vec3 {
	return Vec3{}
}

// Add returns the vector sum a + b.
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns the vector difference a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Scale returns the scalar product a * s.
func (a Vec3) Scale(s float32) Vec3 {
	return Vec3{a.X * s, a.Y * s, a.Z * s}
}

// Dot returns the dot product a · b.
func (a Vec3) Dot(b Vec3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product a × b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Len returns the length (magnitude) of the vector.
func (a Vec3) Len() float32 {
	return math32.Sqrt(a.X*a.X + a.Y*a.Y + a.Z*a.Z)
}

// LenSq returns the squared length (faster, no sqrt).
func (a Vec3) LenSq() float32 {
	return a.X*a.X + a.Y*a.Y + a.Z*a.Z
}

// Normalize returns the unit vector in the same direction.
// ok is false when the vector has no direction: zero length, or a length
// that is not a finite positive number.
func (a Vec3) Normalize() (u Unit3, ok bool) {
	l := a.Len()
	if !(l > 0) || math32.IsInf(l, 0) {
		return Unit3{}, false
	}
	return Unit3{Vec3{a.X / l, a.Y / l, a.Z / l}}, true
}

// NormalizeOr normalizes a, returning fallback when a has no direction.
func (a Vec3) NormalizeOr(fallback Unit3) Unit3 {
	if u, ok := a.Normalize(); ok {
		return u
	}
	return fallback
}

// AssumeUnit converts a to a Unit3 without checking its length.
// The caller guarantees that a already has unit length.
func (a Vec3) AssumeUnit() Unit3 {
	return Unit3{a}
}

// Negate returns the negated vector.
func (a Vec3) Negate() Vec3 {
	return Vec3{-a.X, -a.Y, -a.Z}
}

// Distance returns the distance between two points.
func (a Vec3) Distance(b Vec3) float32 {
	return a.Sub(b).Len()
}

// Reflect returns the reflection of a around normal n.
func (a Vec3) Reflect(n Unit3) Vec3 {
	nv := n.Vec3()
	return a.Sub(nv.Scale(2 * a.Dot(nv)))
}

// Min returns the component-wise minimum.
func (a Vec3) Min(b Vec3) Vec3 {
	return Vec3{
		math32.Min(a.X, b.X),
		math32.Min(a.Y, b.Y),
		math32.Min(a.Z, b.Z),
	}
}

// Max returns the component-wise maximum.
func (a Vec3) Max(b Vec3) Vec3 {
	return Vec3{
		math32.Max(a.X, b.X),
		math32.Max(a.Y, b.Y),
		math32.Max(a.Z, b.Z),
	}
}

// Abs returns the component-wise absolute value.
func (a Vec3) Abs() Vec3 {
	return Vec3{
		math32.Abs(a.X),
		math32.Abs(a.Y),
		math32.Abs(a.Z),
	}
}

// ApproxEqual reports whether a and b differ by at most tol per component.
func (a Vec3) ApproxEqual(b Vec3, tol float32) bool {
	d := a.Sub(b).Abs()
	return d.X <= tol && d.Y <= tol && d.Z <= tol
}
