// SPDX-License-Identifier: MIT

package vec

import "github.com/katalvlaran/lvmath/scalar"

// HasX is implemented by every vector with an x component.
type HasX[T scalar.Number] interface {
	GetX() T
	SetX(T)
}

// HasY is implemented by every vector with a y component.
type HasY[T scalar.Number] interface {
	GetY() T
	SetY(T)
}

// HasZ is implemented by *PolyVec3 and *PolyVec4.
type HasZ[T scalar.Number] interface {
	GetZ() T
	SetZ(T)
}

// HasW is implemented by *PolyVec4 only.
type HasW[T scalar.Number] interface {
	GetW() T
	SetW(T)
}

// HasXY combines the planar capabilities.
type HasXY[T scalar.Number] interface {
	HasX[T]
	HasY[T]
}

// HasXYZ combines the spatial capabilities.
type HasXYZ[T scalar.Number] interface {
	HasXY[T]
	HasZ[T]
}

var (
	_ HasXY[float32] = (*PolyVec2[float32])(nil)
	_ HasXYZ[int64]  = (*PolyVec3[int64])(nil)
	_ HasXYZ[uint8]  = (*PolyVec4[uint8])(nil)
	_ HasW[float64]  = (*PolyVec4[float64])(nil)
)

// SumXY adds the x and y components of any vector that has them.
func SumXY[T scalar.Number](v HasXY[T]) T {
	return v.GetX() + v.GetY()
}

// SwapXY exchanges the x and y components in place.
func SwapXY[T scalar.Number](v HasXY[T]) {
	x := v.GetX()
	v.SetX(v.GetY())
	v.SetY(x)
}

// ScaleAxisX multiplies only the x component by s.
func ScaleAxisX[T scalar.Number](v HasX[T], s T) {
	v.SetX(v.GetX() * s)
}

// ProjectXY drops every component past y.
func ProjectXY[T scalar.Number](v HasXY[T]) PolyVec2[T] {
	return PolyVec2[T]{v.GetX(), v.GetY()}
}

// ProjectXYZ drops the w component, if any.
func ProjectXYZ[T scalar.Number](v HasXYZ[T]) PolyVec3[T] {
	return PolyVec3[T]{v.GetX(), v.GetY(), v.GetZ()}
}
