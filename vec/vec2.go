// SPDX-License-Identifier: MIT

package vec

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvmath/scalar"
)

// PolyVec2 is a 2-component vector over any native numeric kind.
// The zero value is the zero vector.
type PolyVec2[T scalar.Number] struct {
	X, Y T
}

// New2 builds a 2-vector from its components.
func New2[T scalar.Number](x, y T) PolyVec2[T] {
	return PolyVec2[T]{x, y}
}

// Fill2 sets every component to v.
func Fill2[T scalar.Number](v T) PolyVec2[T] {
	return PolyVec2[T]{v, v}
}

// Zero2 returns the zero vector.
func Zero2[T scalar.Number]() PolyVec2[T] { return PolyVec2[T]{} }

// One2 sets every component to one.
func One2[T scalar.Number]() PolyVec2[T] { return Fill2[T](1) }

// UnitX2 is the unit vector along X.
func UnitX2[T scalar.Number]() PolyVec2[T] { return PolyVec2[T]{X: 1} }

// UnitY2 is the unit vector along Y.
func UnitY2[T scalar.Number]() PolyVec2[T] { return PolyVec2[T]{Y: 1} }

// FromArray2 converts [x, y] into a vector.
func FromArray2[T scalar.Number](a [2]T) PolyVec2[T] {
	return PolyVec2[T]{a[0], a[1]}
}

// Array returns the components in index order.
func (v PolyVec2[T]) Array() [2]T { return [2]T{v.X, v.Y} }

// Components returns the components as separate values.
func (v PolyVec2[T]) Components() (T, T) { return v.X, v.Y }

// IsZero reports whether every component is zero.
func (v PolyVec2[T]) IsZero() bool { return v == PolyVec2[T]{} }

// IsOne reports whether every component is one.
func (v PolyVec2[T]) IsOne() bool { return v == One2[T]() }

// Add returns v + o.
func (v PolyVec2[T]) Add(o PolyVec2[T]) PolyVec2[T] {
	return PolyVec2[T]{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v PolyVec2[T]) Sub(o PolyVec2[T]) PolyVec2[T] {
	return PolyVec2[T]{v.X - o.X, v.Y - o.Y}
}

// Mul is the component-wise (Hadamard) product.
func (v PolyVec2[T]) Mul(o PolyVec2[T]) PolyVec2[T] {
	return PolyVec2[T]{v.X * o.X, v.Y * o.Y}
}

// DivVec divides component-wise.
func (v PolyVec2[T]) DivVec(o PolyVec2[T]) PolyVec2[T] {
	return PolyVec2[T]{v.X / o.X, v.Y / o.Y}
}

// RemVec is the component-wise truncated remainder.
func (v PolyVec2[T]) RemVec(o PolyVec2[T]) PolyVec2[T] {
	return PolyVec2[T]{scalar.Rem(v.X, o.X), scalar.Rem(v.Y, o.Y)}
}

// Scale multiplies every component by s.
func (v PolyVec2[T]) Scale(s T) PolyVec2[T] {
	return PolyVec2[T]{v.X * s, v.Y * s}
}

// AddScalar adds s to every component.
func (v PolyVec2[T]) AddScalar(s T) PolyVec2[T] {
	return PolyVec2[T]{v.X + s, v.Y + s}
}

// SubScalar subtracts s from every component.
func (v PolyVec2[T]) SubScalar(s T) PolyVec2[T] {
	return PolyVec2[T]{v.X - s, v.Y - s}
}

// Div divides every component by s. Integer division by zero panics.
func (v PolyVec2[T]) Div(s T) PolyVec2[T] {
	return PolyVec2[T]{v.X / s, v.Y / s}
}

// Rem is the truncated remainder of every component by s.
func (v PolyVec2[T]) Rem(s T) PolyVec2[T] {
	return PolyVec2[T]{scalar.Rem(v.X, s), scalar.Rem(v.Y, s)}
}

// Neg negates every component; unsigned kinds wrap.
func (v PolyVec2[T]) Neg() PolyVec2[T] {
	return PolyVec2[T]{-v.X, -v.Y}
}

// AddAssign adds o into v.
func (v *PolyVec2[T]) AddAssign(o PolyVec2[T]) {
	v.X += o.X
	v.Y += o.Y
}

// SubAssign subtracts o from v.
func (v *PolyVec2[T]) SubAssign(o PolyVec2[T]) {
	v.X -= o.X
	v.Y -= o.Y
}

// MulAssign multiplies v by o component-wise.
func (v *PolyVec2[T]) MulAssign(o PolyVec2[T]) {
	v.X *= o.X
	v.Y *= o.Y
}

// ScaleAssign multiplies every component of v by s.
func (v *PolyVec2[T]) ScaleAssign(s T) {
	v.X *= s
	v.Y *= s
}

// DivAssign divides every component of v by s. Integer division by zero panics.
func (v *PolyVec2[T]) DivAssign(s T) {
	v.X /= s
	v.Y /= s
}

// RemAssign replaces v with v.Rem(s).
func (v *PolyVec2[T]) RemAssign(s T) { *v = v.Rem(s) }

// Bitwise operators. They follow the native operator of T and panic
// with scalar.ErrNotInteger for float kinds.

// And is v & o per component.
func (v PolyVec2[T]) And(o PolyVec2[T]) PolyVec2[T] {
	return PolyVec2[T]{scalar.And(v.X, o.X), scalar.And(v.Y, o.Y)}
}

// AndScalar is v & s per component.
func (v PolyVec2[T]) AndScalar(s T) PolyVec2[T] {
	return PolyVec2[T]{scalar.And(v.X, s), scalar.And(v.Y, s)}
}

// Or is v | o per component.
func (v PolyVec2[T]) Or(o PolyVec2[T]) PolyVec2[T] {
	return PolyVec2[T]{scalar.Or(v.X, o.X), scalar.Or(v.Y, o.Y)}
}

// OrScalar is v | s per component.
func (v PolyVec2[T]) OrScalar(s T) PolyVec2[T] {
	return PolyVec2[T]{scalar.Or(v.X, s), scalar.Or(v.Y, s)}
}

// Xor is v ^ o per component.
func (v PolyVec2[T]) Xor(o PolyVec2[T]) PolyVec2[T] {
	return PolyVec2[T]{scalar.Xor(v.X, o.X), scalar.Xor(v.Y, o.Y)}
}

// XorScalar is v ^ s per component.
func (v PolyVec2[T]) XorScalar(s T) PolyVec2[T] {
	return PolyVec2[T]{scalar.Xor(v.X, s), scalar.Xor(v.Y, s)}
}

// Shl shifts each component left by the matching component of o.
func (v PolyVec2[T]) Shl(o PolyVec2[T]) PolyVec2[T] {
	return PolyVec2[T]{scalar.Shl(v.X, o.X), scalar.Shl(v.Y, o.Y)}
}

// ShlScalar shifts every component left by s.
func (v PolyVec2[T]) ShlScalar(s T) PolyVec2[T] {
	return PolyVec2[T]{scalar.Shl(v.X, s), scalar.Shl(v.Y, s)}
}

// Shr shifts each component right by the matching component of o.
func (v PolyVec2[T]) Shr(o PolyVec2[T]) PolyVec2[T] {
	return PolyVec2[T]{scalar.Shr(v.X, o.X), scalar.Shr(v.Y, o.Y)}
}

// ShrScalar shifts every component right by s.
func (v PolyVec2[T]) ShrScalar(s T) PolyVec2[T] {
	return PolyVec2[T]{scalar.Shr(v.X, s), scalar.Shr(v.Y, s)}
}

// Dot is the inner product.
func (v PolyVec2[T]) Dot(o PolyVec2[T]) T {
	return v.X*o.X + v.Y*o.Y
}

// SquareMagnitude is v·v. It avoids the square root of Magnitude.
func (v PolyVec2[T]) SquareMagnitude() T { return v.Dot(v) }

// Magnitude is the Euclidean length; truncated for integer kinds.
func (v PolyVec2[T]) Magnitude() T { return scalar.Sqrt(v.SquareMagnitude()) }

// Normalized returns v scaled to unit length, or the zero vector when
// the magnitude is zero.
func (v PolyVec2[T]) Normalized() PolyVec2[T] {
	m := v.Magnitude()
	if m == 0 {
		return PolyVec2[T]{}
	}
	return v.Div(m)
}

// Normalize scales v to unit length in place.
func (v *PolyVec2[T]) Normalize() { *v = v.Normalized() }

// Angle returns the angle between v and o in radians.
func (v PolyVec2[T]) Angle(o PolyVec2[T]) T {
	return scalar.Acos(v.Dot(o) / (v.Magnitude() * o.Magnitude()))
}

// AngleNormalized is Angle for operands already of unit length.
// The precondition is not checked.
func (v PolyVec2[T]) AngleNormalized(o PolyVec2[T]) T {
	return scalar.Acos(v.Dot(o))
}

// Lerp interpolates between v and o by t.
func (v PolyVec2[T]) Lerp(o PolyVec2[T], t T) PolyVec2[T] {
	return PolyVec2[T]{scalar.Lerp(v.X, o.X, t), scalar.Lerp(v.Y, o.Y, t)}
}

// Map applies f to every component.
func (v PolyVec2[T]) Map(f func(T) T) PolyVec2[T] {
	return PolyVec2[T]{f(v.X), f(v.Y)}
}

// Sin is the component-wise sine.
func (v PolyVec2[T]) Sin() PolyVec2[T] { return v.Map(scalar.Sin[T]) }

// Cos is the component-wise cosine.
func (v PolyVec2[T]) Cos() PolyVec2[T] { return v.Map(scalar.Cos[T]) }

// Tan is the component-wise tangent.
func (v PolyVec2[T]) Tan() PolyVec2[T] { return v.Map(scalar.Tan[T]) }

// Asin is the component-wise arcsine.
func (v PolyVec2[T]) Asin() PolyVec2[T] { return v.Map(scalar.Asin[T]) }

// Acos is the component-wise arccosine.
func (v PolyVec2[T]) Acos() PolyVec2[T] { return v.Map(scalar.Acos[T]) }

// Atan is the component-wise arctangent.
func (v PolyVec2[T]) Atan() PolyVec2[T] { return v.Map(scalar.Atan[T]) }

// Sinh is the component-wise hyperbolic sine.
func (v PolyVec2[T]) Sinh() PolyVec2[T] { return v.Map(scalar.Sinh[T]) }

// Cosh is the component-wise hyperbolic cosine.
func (v PolyVec2[T]) Cosh() PolyVec2[T] { return v.Map(scalar.Cosh[T]) }

// Tanh is the component-wise hyperbolic tangent.
func (v PolyVec2[T]) Tanh() PolyVec2[T] { return v.Map(scalar.Tanh[T]) }

// Asinh is the component-wise inverse hyperbolic sine.
func (v PolyVec2[T]) Asinh() PolyVec2[T] { return v.Map(scalar.Asinh[T]) }

// Acosh is the component-wise inverse hyperbolic cosine.
func (v PolyVec2[T]) Acosh() PolyVec2[T] { return v.Map(scalar.Acosh[T]) }

// Atanh is the component-wise inverse hyperbolic tangent.
func (v PolyVec2[T]) Atanh() PolyVec2[T] { return v.Map(scalar.Atanh[T]) }

// Round rounds every component half away from zero.
func (v PolyVec2[T]) Round() PolyVec2[T] { return v.Map(scalar.Round[T]) }

// Floor rounds every component down.
func (v PolyVec2[T]) Floor() PolyVec2[T] { return v.Map(scalar.Floor[T]) }

// Ceil rounds every component up.
func (v PolyVec2[T]) Ceil() PolyVec2[T] { return v.Map(scalar.Ceil[T]) }

// Abs is the component-wise absolute value.
func (v PolyVec2[T]) Abs() PolyVec2[T] { return v.Map(scalar.Abs[T]) }

// ApproxEqual reports whether every component of v is within eps of o.
func (v PolyVec2[T]) ApproxEqual(o PolyVec2[T], eps T) bool {
	return within(v.X, o.X, eps) &&
		within(v.Y, o.Y, eps)
}

// At returns the component at index i (x=0, y=1).
// It panics when i is out of range.
func (v PolyVec2[T]) At(i int) T {
	return *v.Ptr(i)
}

// Set writes the component at index i. It panics when i is out of range.
func (v *PolyVec2[T]) Set(i int, x T) {
	*v.Ptr(i) = x
}

// Ptr returns the address of the component at index i.
func (v *PolyVec2[T]) Ptr(i int) *T {
	switch i {
	case 0:
		return &v.X
	case 1:
		return &v.Y
	}
	panic(indexPanic(i, "PolyVec2"))
}

// String renders the vector as [x, y].
func (v PolyVec2[T]) String() string {
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

// Cast2 converts every component with Go's native numeric conversion.
func Cast2[To, From scalar.Number](v PolyVec2[From]) PolyVec2[To] {
	return PolyVec2[To]{To(v.X), To(v.Y)}
}

// GetX returns the X component.
func (v *PolyVec2[T]) GetX() T { return v.X }

// SetX writes the X component.
func (v *PolyVec2[T]) SetX(x T) { v.X = x }

// GetY returns the Y component.
func (v *PolyVec2[T]) GetY() T { return v.Y }

// SetY writes the Y component.
func (v *PolyVec2[T]) SetY(x T) { v.Y = x }
