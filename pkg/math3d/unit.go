package math3d

// Unit3 is a Vec3 known to have unit length.
//
// The only checked way to obtain one is Vec3.Normalize. UnitUnchecked and
// Vec3.AssumeUnit exist for values whose length the caller has already
// established, such as axis constants.
type Unit3 struct {
	v Vec3
}

// Normal3 is a unit surface normal.
type Normal3 = Unit3

// Direction3 is a unit direction, e.g. towards a light.
type Direction3 = Unit3

// UnitUnchecked builds a Unit3 from components without normalizing.
// The caller must guarantee x²+y²+z² == 1.
func UnitUnchecked(x, y, z float32) Unit3 {
	return Unit3{Vec3{x, y, z}}
}

// Common axes.
var (
	UnitX    = UnitUnchecked(1, 0, 0)
	UnitY    = UnitUnchecked(0, 1, 0)
	UnitZ    = UnitUnchecked(0, 0, 1)
	UnitNegZ = UnitUnchecked(0, 0, -1)
)

// Vec3 returns the underlying vector.
func (u Unit3) Vec3() Vec3 {
	return u.v
}

// X returns the x component.
func (u Unit3) X() float32 { return u.v.X }

// Y returns the y component.
func (u Unit3) Y() float32 { return u.v.Y }

// Z returns the z component.
func (u Unit3) Z() float32 { return u.v.Z }

// Dot returns the dot product with another unit vector.
func (u Unit3) Dot(o Unit3) float32 {
	return u.v.Dot(o.v)
}

// Negate returns the opposite direction.
func (u Unit3) Negate() Unit3 {
	return Unit3{u.v.Negate()}
}

// Scale returns the direction scaled by s as a plain vector.
func (u Unit3) Scale(s float32) Vec3 {
	return u.v.Scale(s)
}
