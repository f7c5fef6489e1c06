// SPDX-License-Identifier: MIT

package vec

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvmath/scalar"
)

// PolyVec4 is a 4-component vector over any native numeric kind.
// The zero value is the zero vector.
type PolyVec4[T scalar.Number] struct {
	X, Y, Z, W T
}

// New4 builds a 4-vector from its components.
func New4[T scalar.Number](x, y, z, w T) PolyVec4[T] {
	return PolyVec4[T]{x, y, z, w}
}

// Fill4 sets every component to v.
func Fill4[T scalar.Number](v T) PolyVec4[T] {
	return PolyVec4[T]{v, v, v, v}
}

// Zero4 returns the zero vector.
func Zero4[T scalar.Number]() PolyVec4[T] { return PolyVec4[T]{} }

// One4 sets every component to one.
func One4[T scalar.Number]() PolyVec4[T] { return Fill4[T](1) }

// UnitX4 is the unit vector along X.
func UnitX4[T scalar.Number]() PolyVec4[T] { return PolyVec4[T]{X: 1} }

// UnitY4 is the unit vector along Y.
func UnitY4[T scalar.Number]() PolyVec4[T] { return PolyVec4[T]{Y: 1} }

// UnitZ4 is the unit vector along Z.
func UnitZ4[T scalar.Number]() PolyVec4[T] { return PolyVec4[T]{Z: 1} }

// UnitW4 is the unit vector along W.
func UnitW4[T scalar.Number]() PolyVec4[T] { return PolyVec4[T]{W: 1} }

// FromArray4 converts [x, y, z, w] into a vector.
func FromArray4[T scalar.Number](a [4]T) PolyVec4[T] {
	return PolyVec4[T]{a[0], a[1], a[2], a[3]}
}

// Array returns the components in index order.
func (v PolyVec4[T]) Array() [4]T { return [4]T{v.X, v.Y, v.Z, v.W} }

// Components returns the components as separate values.
func (v PolyVec4[T]) Components() (T, T, T, T) { return v.X, v.Y, v.Z, v.W }

// IsZero reports whether every component is zero.
func (v PolyVec4[T]) IsZero() bool { return v == PolyVec4[T]{} }

// IsOne reports whether every component is one.
func (v PolyVec4[T]) IsOne() bool { return v == One4[T]() }

// Add returns v + o.
func (v PolyVec4[T]) Add(o PolyVec4[T]) PolyVec4[T] {
	return PolyVec4[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

// Sub returns v - o.
func (v PolyVec4[T]) Sub(o PolyVec4[T]) PolyVec4[T] {
	return PolyVec4[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W}
}

// Mul is the component-wise (Hadamard) product.
func (v PolyVec4[T]) Mul(o PolyVec4[T]) PolyVec4[T] {
	return PolyVec4[T]{v.X * o.X, v.Y * o.Y, v.Z * o.Z, v.W * o.W}
}

// DivVec divides component-wise.
func (v PolyVec4[T]) DivVec(o PolyVec4[T]) PolyVec4[T] {
	return PolyVec4[T]{v.X / o.X, v.Y / o.Y, v.Z / o.Z, v.W / o.W}
}

// RemVec is the component-wise truncated remainder.
func (v PolyVec4[T]) RemVec(o PolyVec4[T]) PolyVec4[T] {
	return PolyVec4[T]{scalar.Rem(v.X, o.X), scalar.Rem(v.Y, o.Y), scalar.Rem(v.Z, o.Z), scalar.Rem(v.W, o.W)}
}

// Scale multiplies every component by s.
func (v PolyVec4[T]) Scale(s T) PolyVec4[T] {
	return PolyVec4[T]{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// AddScalar adds s to every component.
func (v PolyVec4[T]) AddScalar(s T) PolyVec4[T] {
	return PolyVec4[T]{v.X + s, v.Y + s, v.Z + s, v.W + s}
}

// SubScalar subtracts s from every component.
func (v PolyVec4[T]) SubScalar(s T) PolyVec4[T] {
	return PolyVec4[T]{v.X - s, v.Y - s, v.Z - s, v.W - s}
}

// Div divides every component by s. Integer division by zero panics.
func (v PolyVec4[T]) Div(s T) PolyVec4[T] {
	return PolyVec4[T]{v.X / s, v.Y / s, v.Z / s, v.W / s}
}

// Rem is the truncated remainder of every component by s.
func (v PolyVec4[T]) Rem(s T) PolyVec4[T] {
	return PolyVec4[T]{scalar.Rem(v.X, s), scalar.Rem(v.Y, s), scalar.Rem(v.Z, s), scalar.Rem(v.W, s)}
}

// Neg negates every component; unsigned kinds wrap.
func (v PolyVec4[T]) Neg() PolyVec4[T] {
	return PolyVec4[T]{-v.X, -v.Y, -v.Z, -v.W}
}

// AddAssign adds o into v.
func (v *PolyVec4[T]) AddAssign(o PolyVec4[T]) {
	v.X += o.X
	v.Y += o.Y
	v.Z += o.Z
	v.W += o.W
}

// SubAssign subtracts o from v.
func (v *PolyVec4[T]) SubAssign(o PolyVec4[T]) {
	v.X -= o.X
	v.Y -= o.Y
	v.Z -= o.Z
	v.W -= o.W
}

// MulAssign multiplies v by o component-wise.
func (v *PolyVec4[T]) MulAssign(o PolyVec4[T]) {
	v.X *= o.X
	v.Y *= o.Y
	v.Z *= o.Z
	v.W *= o.W
}

// ScaleAssign multiplies every component of v by s.
func (v *PolyVec4[T]) ScaleAssign(s T) {
	v.X *= s
	v.Y *= s
	v.Z *= s
	v.W *= s
}

// DivAssign divides every component of v by s. Integer division by zero panics.
func (v *PolyVec4[T]) DivAssign(s T) {
	v.X /= s
	v.Y /= s
	v.Z /= s
	v.W /= s
}

// RemAssign replaces v with v.Rem(s).
func (v *PolyVec4[T]) RemAssign(s T) { *v = v.Rem(s) }

// Bitwise operators. They follow the native operator of T and panic
// with scalar.ErrNotInteger for float kinds.

// And is v & o per component.
func (v PolyVec4[T]) And(o PolyVec4[T]) PolyVec4[T] {
	return PolyVec4[T]{scalar.And(v.X, o.X), scalar.And(v.Y, o.Y), scalar.And(v.Z, o.Z), scalar.And(v.W, o.W)}
}

// AndScalar is v & s per component.
func (v PolyVec4[T]) AndScalar(s T) PolyVec4[T] {
	return PolyVec4[T]{scalar.And(v.X, s), scalar.And(v.Y, s), scalar.And(v.Z, s), scalar.And(v.W, s)}
}

// Or is v | o per component.
func (v PolyVec4[T]) Or(o PolyVec4[T]) PolyVec4[T] {
	return PolyVec4[T]{scalar.Or(v.X, o.X), scalar.Or(v.Y, o.Y), scalar.Or(v.Z, o.Z), scalar.Or(v.W, o.W)}
}

// OrScalar is v | s per component.
func (v PolyVec4[T]) OrScalar(s T) PolyVec4[T] {
	return PolyVec4[T]{scalar.Or(v.X, s), scalar.Or(v.Y, s), scalar.Or(v.Z, s), scalar.Or(v.W, s)}
}

// Xor is v ^ o per component.
func (v PolyVec4[T]) Xor(o PolyVec4[T]) PolyVec4[T] {
	return PolyVec4[T]{scalar.Xor(v.X, o.X), scalar.Xor(v.Y, o.Y), scalar.Xor(v.Z, o.Z), scalar.Xor(v.W, o.W)}
}

// XorScalar is v ^ s per component.
func (v PolyVec4[T]) XorScalar(s T) PolyVec4[T] {
	return PolyVec4[T]{scalar.Xor(v.X, s), scalar.Xor(v.Y, s), scalar.Xor(v.Z, s), scalar.Xor(v.W, s)}
}

// Shl shifts each component left by the matching component of o.
func (v PolyVec4[T]) Shl(o PolyVec4[T]) PolyVec4[T] {
	return PolyVec4[T]{scalar.Shl(v.X, o.X), scalar.Shl(v.Y, o.Y), scalar.Shl(v.Z, o.Z), scalar.Shl(v.W, o.W)}
}

// ShlScalar shifts every component left by s.
func (v PolyVec4[T]) ShlScalar(s T) PolyVec4[T] {
	return PolyVec4[T]{scalar.Shl(v.X, s), scalar.Shl(v.Y, s), scalar.Shl(v.Z, s), scalar.Shl(v.W, s)}
}

// Shr shifts each component right by the matching component of o.
func (v PolyVec4[T]) Shr(o PolyVec4[T]) PolyVec4[T] {
	return PolyVec4[T]{scalar.Shr(v.X, o.X), scalar.Shr(v.Y, o.Y), scalar.Shr(v.Z, o.Z), scalar.Shr(v.W, o.W)}
}

// ShrScalar shifts every component right by s.
func (v PolyVec4[T]) ShrScalar(s T) PolyVec4[T] {
	return PolyVec4[T]{scalar.Shr(v.X, s), scalar.Shr(v.Y, s), scalar.Shr(v.Z, s), scalar.Shr(v.W, s)}
}

// Dot is the inner product.
func (v PolyVec4[T]) Dot(o PolyVec4[T]) T {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W
}

// SquareMagnitude is v·v. It avoids the square root of Magnitude.
func (v PolyVec4[T]) SquareMagnitude() T { return v.Dot(v) }

// Magnitude is the Euclidean length; truncated for integer kinds.
func (v PolyVec4[T]) Magnitude() T { return scalar.Sqrt(v.SquareMagnitude()) }

// Normalized returns v scaled to unit length, or the zero vector when
// the magnitude is zero.
func (v PolyVec4[T]) Normalized() PolyVec4[T] {
	m := v.Magnitude()
	if m == 0 {
		return PolyVec4[T]{}
	}
	return v.Div(m)
}

// Normalize scales v to unit length in place.
func (v *PolyVec4[T]) Normalize() { *v = v.Normalized() }

// Angle returns the angle between v and o in radians.
func (v PolyVec4[T]) Angle(o PolyVec4[T]) T {
	return scalar.Acos(v.Dot(o) / (v.Magnitude() * o.Magnitude()))
}

// AngleNormalized is Angle for operands already of unit length.
// The precondition is not checked.
func (v PolyVec4[T]) AngleNormalized(o PolyVec4[T]) T {
	return scalar.Acos(v.Dot(o))
}

// Lerp interpolates between v and o by t.
func (v PolyVec4[T]) Lerp(o PolyVec4[T], t T) PolyVec4[T] {
	return PolyVec4[T]{scalar.Lerp(v.X, o.X, t), scalar.Lerp(v.Y, o.Y, t), scalar.Lerp(v.Z, o.Z, t), scalar.Lerp(v.W, o.W, t)}
}

// Map applies f to every component.
func (v PolyVec4[T]) Map(f func(T) T) PolyVec4[T] {
	return PolyVec4[T]{f(v.X), f(v.Y), f(v.Z), f(v.W)}
}

// Sin is the component-wise sine.
func (v PolyVec4[T]) Sin() PolyVec4[T] { return v.Map(scalar.Sin[T]) }

// Cos is the component-wise cosine.
func (v PolyVec4[T]) Cos() PolyVec4[T] { return v.Map(scalar.Cos[T]) }

// Tan is the component-wise tangent.
func (v PolyVec4[T]) Tan() PolyVec4[T] { return v.Map(scalar.Tan[T]) }

// Asin is the component-wise arcsine.
func (v PolyVec4[T]) Asin() PolyVec4[T] { return v.Map(scalar.Asin[T]) }

// Acos is the component-wise arccosine.
func (v PolyVec4[T]) Acos() PolyVec4[T] { return v.Map(scalar.Acos[T]) }

// Atan is the component-wise arctangent.
func (v PolyVec4[T]) Atan() PolyVec4[T] { return v.Map(scalar.Atan[T]) }

// Sinh is the component-wise hyperbolic sine.
func (v PolyVec4[T]) Sinh() PolyVec4[T] { return v.Map(scalar.Sinh[T]) }

// Cosh is the component-wise hyperbolic cosine.
func (v PolyVec4[T]) Cosh() PolyVec4[T] { return v.Map(scalar.Cosh[T]) }

// Tanh is the component-wise hyperbolic tangent.
func (v PolyVec4[T]) Tanh() PolyVec4[T] { return v.Map(scalar.Tanh[T]) }

// Asinh is the component-wise inverse hyperbolic sine.
func (v PolyVec4[T]) Asinh() PolyVec4[T] { return v.Map(scalar.Asinh[T]) }

// Acosh is the component-wise inverse hyperbolic cosine.
func (v PolyVec4[T]) Acosh() PolyVec4[T] { return v.Map(scalar.Acosh[T]) }

// Atanh is the component-wise inverse hyperbolic tangent.
func (v PolyVec4[T]) Atanh() PolyVec4[T] { return v.Map(scalar.Atanh[T]) }

// Round rounds every component half away from zero.
func (v PolyVec4[T]) Round() PolyVec4[T] { return v.Map(scalar.Round[T]) }

// Floor rounds every component down.
func (v PolyVec4[T]) Floor() PolyVec4[T] { return v.Map(scalar.Floor[T]) }

// Ceil rounds every component up.
func (v PolyVec4[T]) Ceil() PolyVec4[T] { return v.Map(scalar.Ceil[T]) }

// Abs is the component-wise absolute value.
func (v PolyVec4[T]) Abs() PolyVec4[T] { return v.Map(scalar.Abs[T]) }

// ApproxEqual reports whether every component of v is within eps of o.
func (v PolyVec4[T]) ApproxEqual(o PolyVec4[T], eps T) bool {
	return within(v.X, o.X, eps) &&
		within(v.Y, o.Y, eps) &&
		within(v.Z, o.Z, eps) &&
		within(v.W, o.W, eps)
}

// At returns the component at index i (x=0, y=1, z=2, w=3).
// It panics when i is out of range.
func (v PolyVec4[T]) At(i int) T {
	return *v.Ptr(i)
}

// Set writes the component at index i. It panics when i is out of range.
func (v *PolyVec4[T]) Set(i int, x T) {
	*v.Ptr(i) = x
}

// Ptr returns the address of the component at index i.
func (v *PolyVec4[T]) Ptr(i int) *T {
	switch i {
	case 0:
		return &v.X
	case 1:
		return &v.Y
	case 2:
		return &v.Z
	case 3:
		return &v.W
	}
	panic(indexPanic(i, "PolyVec4"))
}

// String renders the vector as [x, y, z, w].
func (v PolyVec4[T]) String() string {
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

// Cast4 converts every component with Go's native numeric conversion.
func Cast4[To, From scalar.Number](v PolyVec4[From]) PolyVec4[To] {
	return PolyVec4[To]{To(v.X), To(v.Y), To(v.Z), To(v.W)}
}

// GetX returns the X component.
func (v *PolyVec4[T]) GetX() T { return v.X }

// SetX writes the X component.
func (v *PolyVec4[T]) SetX(x T) { v.X = x }

// GetY returns the Y component.
func (v *PolyVec4[T]) GetY() T { return v.Y }

// SetY writes the Y component.
func (v *PolyVec4[T]) SetY(x T) { v.Y = x }

// GetZ returns the Z component.
func (v *PolyVec4[T]) GetZ() T { return v.Z }

// SetZ writes the Z component.
func (v *PolyVec4[T]) SetZ(x T) { v.Z = x }

// GetW returns the W component.
func (v *PolyVec4[T]) GetW() T { return v.W }

// SetW writes the W component.
func (v *PolyVec4[T]) SetW(x T) { v.W = x }
