// SPDX-License-Identifier: MIT

package mat

import (
	"github.com/katalvlaran/lvmath/scalar"
	"github.com/katalvlaran/lvmath/vec"
)

// Mat4 is a 4×4 column-major matrix value: m[c][r] is row r of column c.
// Its 16 elements are contiguous, so &m[0][0] is the graphics-API pointer.
type Mat4[T scalar.Number] [4][4]T

// NewMat4 builds a Mat4 from a row-major literal.
func NewMat4[T scalar.Number](rows [4][4]T) Mat4[T] {
	return Mat4[T](rows).Transpose()
}

// Identity4 returns the 4×4 identity.
func Identity4[T scalar.Number]() Mat4[T] {
	return Mat4[T]{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}}
}

// At returns element (r, c). It panics when either index is outside [0,4).
func (m Mat4[T]) At(r, c int) T { return m[c][r] }

// Ptr returns the address of element (0, 0).
func (m *Mat4[T]) Ptr() *T { return &m[0][0] }

// Transpose swaps rows and columns.
func (m Mat4[T]) Transpose() Mat4[T] {
	var out Mat4[T]
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out[r][c] = m[c][r]
		}
	}
	return out
}

// Mul returns m*b.
func (m Mat4[T]) Mul(b Mat4[T]) Mat4[T] {
	var out Mat4[T]
	for j := 0; j < 4; j++ {
		for p := 0; p < 4; p++ {
			bpj := b[j][p]
			for i := 0; i < 4; i++ {
				out[j][i] += m[p][i] * bpj
			}
		}
	}
	return out
}

// MulVec4 returns m*v with v as a column vector.
func (m Mat4[T]) MulVec4(v vec.PolyVec4[T]) vec.PolyVec4[T] {
	var out [4]T
	in := v.Array()
	for p := 0; p < 4; p++ {
		for i := 0; i < 4; i++ {
			out[i] += m[p][i] * in[p]
		}
	}
	return vec.FromArray4(out)
}

// TransformPoint applies m to (p, 1) and drops w.
func (m Mat4[T]) TransformPoint(p vec.PolyVec3[T]) vec.PolyVec3[T] {
	r := m.MulVec4(p.Extend(1))
	return vec.New3(r.X, r.Y, r.Z)
}

// Add returns m + b.
func (m Mat4[T]) Add(b Mat4[T]) Mat4[T] {
	for c := range m {
		for r := range m[c] {
			m[c][r] += b[c][r]
		}
	}
	return m
}

// AddAssign adds b into m.
func (m *Mat4[T]) AddAssign(b Mat4[T]) { *m = m.Add(b) }

// MulScalar returns m with every element multiplied by s.
func (m Mat4[T]) MulScalar(s T) Mat4[T] {
	for c := range m {
		for r := range m[c] {
			m[c][r] *= s
		}
	}
	return m
}

// Pow returns m multiplied by itself n times; Pow(0) is the identity.
func (m Mat4[T]) Pow(n uint) Mat4[T] {
	res := Identity4[T]()
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			res = m.Mul(res)
		}
		m = m.Mul(m)
	}
	return res
}

// Translate adds t to the translation column (column 3).
func (m *Mat4[T]) Translate(t vec.PolyVec3[T]) {
	m[3][0] += t.X
	m[3][1] += t.Y
	m[3][2] += t.Z
}

// AddBottomRow adds v to the first three elements of row 3, the translation
// slot under the row-vector convention.
func (m *Mat4[T]) AddBottomRow(v vec.PolyVec3[T]) {
	m[0][3] += v.X
	m[1][3] += v.Y
	m[2][3] += v.Z
}

// Scale multiplies the first three diagonal elements by s.
func (m *Mat4[T]) Scale(s vec.PolyVec3[T]) {
	m[0][0] *= s.X
	m[1][1] *= s.Y
	m[2][2] *= s.Z
}

// RotationX is the right-handed rotation by angle radians around the X axis.
func RotationX[T scalar.Float](angle T) Mat4[T] {
	s, c := scalar.Sin(angle), scalar.Cos(angle)
	return NewMat4([4][4]T{
		{1, 0, 0, 0},
		{0, c, -s, 0},
		{0, s, c, 0},
		{0, 0, 0, 1},
	})
}

// RotationY is the right-handed rotation by angle radians around the Y axis.
func RotationY[T scalar.Float](angle T) Mat4[T] {
	s, c := scalar.Sin(angle), scalar.Cos(angle)
	return NewMat4([4][4]T{
		{c, 0, s, 0},
		{0, 1, 0, 0},
		{-s, 0, c, 0},
		{0, 0, 0, 1},
	})
}

// RotationZ is the right-handed rotation by angle radians around the Z axis.
func RotationZ[T scalar.Float](angle T) Mat4[T] {
	s, c := scalar.Sin(angle), scalar.Cos(angle)
	return NewMat4([4][4]T{
		{c, -s, 0, 0},
		{s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	})
}

// Rotate returns Rx(r.X)·Ry(r.Y)·Rz(r.Z)·m: the Z rotation is applied
// first, X last.
func Rotate[T scalar.Float](m Mat4[T], r vec.PolyVec3[T]) Mat4[T] {
	return RotationX(r.X).Mul(RotationY(r.Y)).Mul(RotationZ(r.Z)).Mul(m)
}

// Mat converts m to a runtime-shaped matrix.
func (m Mat4[T]) Mat() *Mat[T] {
	data := make([]T, 0, 16)
	for c := range m {
		data = append(data, m[c][:]...)
	}
	return &Mat[T]{rows: 4, cols: 4, data: data}
}

// Mat4From converts a 4×4 Mat, or fails with ErrDimensionMismatch.
func Mat4From[T scalar.Number](m *Mat[T]) (Mat4[T], error) {
	var out Mat4[T]
	if err := ValidateNotNil(m); err != nil {
		return out, matErrorf("Mat4From", err)
	}
	if m.rows != 4 || m.cols != 4 {
		return out, matErrorf("Mat4From", ErrDimensionMismatch)
	}
	for c := range out {
		copy(out[c][:], m.data[c*4:c*4+4])
	}
	return out, nil
}
