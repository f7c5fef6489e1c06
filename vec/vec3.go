// SPDX-License-Identifier: MIT

package vec

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvmath/scalar"
)

// PolyVec3 is a 3-component vector over any native numeric kind.
// The zero value is the zero vector.
type PolyVec3[T scalar.Number] struct {
	X, Y, Z T
}

// New3 builds a 3-vector from its components.
func New3[T scalar.Number](x, y, z T) PolyVec3[T] {
	return PolyVec3[T]{x, y, z}
}

// Fill3 sets every component to v.
func Fill3[T scalar.Number](v T) PolyVec3[T] {
	return PolyVec3[T]{v, v, v}
}

// Zero3 returns the zero vector.
func Zero3[T scalar.Number]() PolyVec3[T] { return PolyVec3[T]{} }

// One3 sets every component to one.
func One3[T scalar.Number]() PolyVec3[T] { return Fill3[T](1) }

// UnitX3 is the unit vector along X.
func UnitX3[T scalar.Number]() PolyVec3[T] { return PolyVec3[T]{X: 1} }

// UnitY3 is the unit vector along Y.
func UnitY3[T scalar.Number]() PolyVec3[T] { return PolyVec3[T]{Y: 1} }

// UnitZ3 is the unit vector along Z.
func UnitZ3[T scalar.Number]() PolyVec3[T] { return PolyVec3[T]{Z: 1} }

// FromArray3 converts [x, y, z] into a vector.
func FromArray3[T scalar.Number](a [3]T) PolyVec3[T] {
	return PolyVec3[T]{a[0], a[1], a[2]}
}

// Array returns the components in index order.
func (v PolyVec3[T]) Array() [3]T { return [3]T{v.X, v.Y, v.Z} }

// Components returns the components as separate values.
func (v PolyVec3[T]) Components() (T, T, T) { return v.X, v.Y, v.Z }

// IsZero reports whether every component is zero.
func (v PolyVec3[T]) IsZero() bool { return v == PolyVec3[T]{} }

// IsOne reports whether every component is one.
func (v PolyVec3[T]) IsOne() bool { return v == One3[T]() }

// Add returns v + o.
func (v PolyVec3[T]) Add(o PolyVec3[T]) PolyVec3[T] {
	return PolyVec3[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v PolyVec3[T]) Sub(o PolyVec3[T]) PolyVec3[T] {
	return PolyVec3[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Mul is the component-wise (Hadamard) product.
func (v PolyVec3[T]) Mul(o PolyVec3[T]) PolyVec3[T] {
	return PolyVec3[T]{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

// DivVec divides component-wise.
func (v PolyVec3[T]) DivVec(o PolyVec3[T]) PolyVec3[T] {
	return PolyVec3[T]{v.X / o.X, v.Y / o.Y, v.Z / o.Z}
}

// RemVec is the component-wise truncated remainder.
func (v PolyVec3[T]) RemVec(o PolyVec3[T]) PolyVec3[T] {
	return PolyVec3[T]{scalar.Rem(v.X, o.X), scalar.Rem(v.Y, o.Y), scalar.Rem(v.Z, o.Z)}
}

// Scale multiplies every component by s.
func (v PolyVec3[T]) Scale(s T) PolyVec3[T] {
	return PolyVec3[T]{v.X * s, v.Y * s, v.Z * s}
}

// AddScalar adds s to every component.
func (v PolyVec3[T]) AddScalar(s T) PolyVec3[T] {
	return PolyVec3[T]{v.X + s, v.Y + s, v.Z + s}
}

// SubScalar subtracts s from every component.
func (v PolyVec3[T]) SubScalar(s T) PolyVec3[T] {
	return PolyVec3[T]{v.X - s, v.Y - s, v.Z - s}
}

// Div divides every component by s. Integer division by zero panics.
func (v PolyVec3[T]) Div(s T) PolyVec3[T] {
	return PolyVec3[T]{v.X / s, v.Y / s, v.Z / s}
}

// Rem is the truncated remainder of every component by s.
func (v PolyVec3[T]) Rem(s T) PolyVec3[T] {
	return PolyVec3[T]{scalar.Rem(v.X, s), scalar.Rem(v.Y, s), scalar.Rem(v.Z, s)}
}

// Neg negates every component; unsigned kinds wrap.
func (v PolyVec3[T]) Neg() PolyVec3[T] {
	return PolyVec3[T]{-v.X, -v.Y, -v.Z}
}

// AddAssign adds o into v.
func (v *PolyVec3[T]) AddAssign(o PolyVec3[T]) {
	v.X += o.X
	v.Y += o.Y
	v.Z += o.Z
}

// SubAssign subtracts o from v.
func (v *PolyVec3[T]) SubAssign(o PolyVec3[T]) {
	v.X -= o.X
	v.Y -= o.Y
	v.Z -= o.Z
}

// MulAssign multiplies v by o component-wise.
func (v *PolyVec3[T]) MulAssign(o PolyVec3[T]) {
	v.X *= o.X
	v.Y *= o.Y
	v.Z *= o.Z
}

// ScaleAssign multiplies every component of v by s.
func (v *PolyVec3[T]) ScaleAssign(s T) {
	v.X *= s
	v.Y *= s
	v.Z *= s
}

// DivAssign divides every component of v by s. Integer division by zero panics.
func (v *PolyVec3[T]) DivAssign(s T) {
	v.X /= s
	v.Y /= s
	v.Z /= s
}

// RemAssign replaces v with v.Rem(s).
func (v *PolyVec3[T]) RemAssign(s T) { *v = v.Rem(s) }

// Bitwise operators. They follow the native operator of T and panic
// with scalar.ErrNotInteger for float kinds.

// And is v & o per component.
func (v PolyVec3[T]) And(o PolyVec3[T]) PolyVec3[T] {
	return PolyVec3[T]{scalar.And(v.X, o.X), scalar.And(v.Y, o.Y), scalar.And(v.Z, o.Z)}
}

// AndScalar is v & s per component.
func (v PolyVec3[T]) AndScalar(s T) PolyVec3[T] {
	return PolyVec3[T]{scalar.And(v.X, s), scalar.And(v.Y, s), scalar.And(v.Z, s)}
}

// Or is v | o per component.
func (v PolyVec3[T]) Or(o PolyVec3[T]) PolyVec3[T] {
	return PolyVec3[T]{scalar.Or(v.X, o.X), scalar.Or(v.Y, o.Y), scalar.Or(v.Z, o.Z)}
}

// OrScalar is v | s per component.
func (v PolyVec3[T]) OrScalar(s T) PolyVec3[T] {
	return PolyVec3[T]{scalar.Or(v.X, s), scalar.Or(v.Y, s), scalar.Or(v.Z, s)}
}

// Xor is v ^ o per component.
func (v PolyVec3[T]) Xor(o PolyVec3[T]) PolyVec3[T] {
	return PolyVec3[T]{scalar.Xor(v.X, o.X), scalar.Xor(v.Y, o.Y), scalar.Xor(v.Z, o.Z)}
}

// XorScalar is v ^ s per component.
func (v PolyVec3[T]) XorScalar(s T) PolyVec3[T] {
	return PolyVec3[T]{scalar.Xor(v.X, s), scalar.Xor(v.Y, s), scalar.Xor(v.Z, s)}
}

// Shl shifts each component left by the matching component of o.
func (v PolyVec3[T]) Shl(o PolyVec3[T]) PolyVec3[T] {
	return PolyVec3[T]{scalar.Shl(v.X, o.X), scalar.Shl(v.Y, o.Y), scalar.Shl(v.Z, o.Z)}
}

// ShlScalar shifts every component left by s.
func (v PolyVec3[T]) ShlScalar(s T) PolyVec3[T] {
	return PolyVec3[T]{scalar.Shl(v.X, s), scalar.Shl(v.Y, s), scalar.Shl(v.Z, s)}
}

// Shr shifts each component right by the matching component of o.
func (v PolyVec3[T]) Shr(o PolyVec3[T]) PolyVec3[T] {
	return PolyVec3[T]{scalar.Shr(v.X, o.X), scalar.Shr(v.Y, o.Y), scalar.Shr(v.Z, o.Z)}
}

// ShrScalar shifts every component right by s.
func (v PolyVec3[T]) ShrScalar(s T) PolyVec3[T] {
	return PolyVec3[T]{scalar.Shr(v.X, s), scalar.Shr(v.Y, s), scalar.Shr(v.Z, s)}
}

// Dot is the inner product.
func (v PolyVec3[T]) Dot(o PolyVec3[T]) T {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// SquareMagnitude is v·v. It avoids the square root of Magnitude.
func (v PolyVec3[T]) SquareMagnitude() T { return v.Dot(v) }

// Magnitude is the Euclidean length; truncated for integer kinds.
func (v PolyVec3[T]) Magnitude() T { return scalar.Sqrt(v.SquareMagnitude()) }

// Normalized returns v scaled to unit length, or the zero vector when
// the magnitude is zero.
func (v PolyVec3[T]) Normalized() PolyVec3[T] {
	m := v.Magnitude()
	if m == 0 {
		return PolyVec3[T]{}
	}
	return v.Div(m)
}

// Normalize scales v to unit length in place.
func (v *PolyVec3[T]) Normalize() { *v = v.Normalized() }

// Angle returns the angle between v and o in radians.
func (v PolyVec3[T]) Angle(o PolyVec3[T]) T {
	return scalar.Acos(v.Dot(o) / (v.Magnitude() * o.Magnitude()))
}

// AngleNormalized is Angle for operands already of unit length.
// The precondition is not checked.
func (v PolyVec3[T]) AngleNormalized(o PolyVec3[T]) T {
	return scalar.Acos(v.Dot(o))
}

// Lerp interpolates between v and o by t.
func (v PolyVec3[T]) Lerp(o PolyVec3[T], t T) PolyVec3[T] {
	return PolyVec3[T]{scalar.Lerp(v.X, o.X, t), scalar.Lerp(v.Y, o.Y, t), scalar.Lerp(v.Z, o.Z, t)}
}

// Map applies f to every component.
func (v PolyVec3[T]) Map(f func(T) T) PolyVec3[T] {
	return PolyVec3[T]{f(v.X), f(v.Y), f(v.Z)}
}

// Sin is the component-wise sine.
func (v PolyVec3[T]) Sin() PolyVec3[T] { return v.Map(scalar.Sin[T]) }

// Cos is the component-wise cosine.
func (v PolyVec3[T]) Cos() PolyVec3[T] { return v.Map(scalar.Cos[T]) }

// Tan is the component-wise tangent.
func (v PolyVec3[T]) Tan() PolyVec3[T] { return v.Map(scalar.Tan[T]) }

// Asin is the component-wise arcsine.
func (v PolyVec3[T]) Asin() PolyVec3[T] { return v.Map(scalar.Asin[T]) }

// Acos is the component-wise arccosine.
func (v PolyVec3[T]) Acos() PolyVec3[T] { return v.Map(scalar.Acos[T]) }

// Atan is the component-wise arctangent.
func (v PolyVec3[T]) Atan() PolyVec3[T] { return v.Map(scalar.Atan[T]) }

// Sinh is the component-wise hyperbolic sine.
func (v PolyVec3[T]) Sinh() PolyVec3[T] { return v.Map(scalar.Sinh[T]) }

// Cosh is the component-wise hyperbolic cosine.
func (v PolyVec3[T]) Cosh() PolyVec3[T] { return v.Map(scalar.Cosh[T]) }

// Tanh is the component-wise hyperbolic tangent.
func (v PolyVec3[T]) Tanh() PolyVec3[T] { return v.Map(scalar.Tanh[T]) }

// Asinh is the component-wise inverse hyperbolic sine.
func (v PolyVec3[T]) Asinh() PolyVec3[T] { return v.Map(scalar.Asinh[T]) }

// Acosh is the component-wise inverse hyperbolic cosine.
func (v PolyVec3[T]) Acosh() PolyVec3[T] { return v.Map(scalar.Acosh[T]) }

// Atanh is the component-wise inverse hyperbolic tangent.
func (v PolyVec3[T]) Atanh() PolyVec3[T] { return v.Map(scalar.Atanh[T]) }

// Round rounds every component half away from zero.
func (v PolyVec3[T]) Round() PolyVec3[T] { return v.Map(scalar.Round[T]) }

// Floor rounds every component down.
func (v PolyVec3[T]) Floor() PolyVec3[T] { return v.Map(scalar.Floor[T]) }

// Ceil rounds every component up.
func (v PolyVec3[T]) Ceil() PolyVec3[T] { return v.Map(scalar.Ceil[T]) }

// Abs is the component-wise absolute value.
func (v PolyVec3[T]) Abs() PolyVec3[T] { return v.Map(scalar.Abs[T]) }

// ApproxEqual reports whether every component of v is within eps of o.
func (v PolyVec3[T]) ApproxEqual(o PolyVec3[T], eps T) bool {
	return within(v.X, o.X, eps) &&
		within(v.Y, o.Y, eps) &&
		within(v.Z, o.Z, eps)
}

// At returns the component at index i (x=0, y=1, z=2).
// It panics when i is out of range.
func (v PolyVec3[T]) At(i int) T {
	return *v.Ptr(i)
}

// Set writes the component at index i. It panics when i is out of range.
func (v *PolyVec3[T]) Set(i int, x T) {
	*v.Ptr(i) = x
}

// Ptr returns the address of the component at index i.
func (v *PolyVec3[T]) Ptr(i int) *T {
	switch i {
	case 0:
		return &v.X
	case 1:
		return &v.Y
	case 2:
		return &v.Z
	}
	panic(indexPanic(i, "PolyVec3"))
}

// String renders the vector as [x, y, z].
func (v PolyVec3[T]) String() string {
	var b strings.Builder
	b.WriteString(_fmtOpen)
	for i, x := range v.Array() {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		fmt.Fprint(&b, x)
	}
	b.WriteString(_fmtClose)
	return b.String()
}

// Cast3 converts every component with Go's native numeric conversion.
func Cast3[To, From scalar.Number](v PolyVec3[From]) PolyVec3[To] {
	return PolyVec3[To]{To(v.X), To(v.Y), To(v.Z)}
}

// GetX returns the X component.
func (v *PolyVec3[T]) GetX() T { return v.X }

// SetX writes the X component.
func (v *PolyVec3[T]) SetX(x T) { v.X = x }

// GetY returns the Y component.
func (v *PolyVec3[T]) GetY() T { return v.Y }

// SetY writes the Y component.
func (v *PolyVec3[T]) SetY(x T) { v.Y = x }

// GetZ returns the Z component.
func (v *PolyVec3[T]) GetZ() T { return v.Z }

// SetZ writes the Z component.
func (v *PolyVec3[T]) SetZ(x T) { v.Z = x }
