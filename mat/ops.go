// SPDX-License-Identifier: MIT

package mat

import "math"

// Operation tags used in wrapped errors.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opAddAssign = "AddAssign"
	opMul       = "Mul"
	opPow       = "Pow"
)

// Transpose returns the cols×rows matrix with (r, c) and (c, r) swapped.
// Complexity: O(rows*cols).
func (m *Mat[T]) Transpose() *Mat[T] {
	out := &Mat[T]{rows: m.cols, cols: m.rows, data: make([]T, len(m.data))}
	for c := 0; c < m.cols; c++ {
		col := m.data[c*m.rows : (c+1)*m.rows]
		for r, v := range col {
			out.data[r*out.rows+c] = v
		}
	}
	return out
}

// Mul returns the matrix product m*b (rows×k times k×cols).
//
// Implementation:
//   - Stage 1: ValidateMulShape (ErrDimensionMismatch when m.Cols != b.Rows).
//   - Stage 2: for every output column j, accumulate column p of m scaled by
//     b(p, j). All three loops walk contiguous column memory.
//
// Complexity: O(rows*k*cols).
func (m *Mat[T]) Mul(b *Mat[T]) (*Mat[T], error) {
	if err := ValidateMulShape(m, b); err != nil {
		return nil, matErrorf(opMul, err)
	}
	rows, k, cols := m.rows, m.cols, b.cols
	out := &Mat[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}
	for j := 0; j < cols; j++ {
		dst := out.data[j*rows : (j+1)*rows]
		for p := 0; p < k; p++ {
			bpj := b.data[j*k+p]
			src := m.data[p*rows : (p+1)*rows]
			for i, a := range src {
				dst[i] += a * bpj
			}
		}
	}
	return out, nil
}

// Add returns m + b element-wise.
func (m *Mat[T]) Add(b *Mat[T]) (*Mat[T], error) {
	if err := ValidateSameShape(m, b); err != nil {
		return nil, matErrorf(opAdd, err)
	}
	out := m.Clone()
	for i, v := range b.data {
		out.data[i] += v
	}
	return out, nil
}

// Sub returns m - b element-wise.
func (m *Mat[T]) Sub(b *Mat[T]) (*Mat[T], error) {
	if err := ValidateSameShape(m, b); err != nil {
		return nil, matErrorf(opSub, err)
	}
	out := m.Clone()
	for i, v := range b.data {
		out.data[i] -= v
	}
	return out, nil
}

// AddAssign adds b into m in place.
func (m *Mat[T]) AddAssign(b *Mat[T]) error {
	if err := ValidateSameShape(m, b); err != nil {
		return matErrorf(opAddAssign, err)
	}
	for i, v := range b.data {
		m.data[i] += v
	}
	return nil
}

// Scale returns m with every element multiplied by s.
func (m *Mat[T]) Scale(s T) *Mat[T] {
	out := m.Clone()
	for i := range out.data {
		out.data[i] *= s
	}
	return out
}

// Pow returns m multiplied by itself n times; Pow(0) is the identity.
//
// Implementation: binary exponentiation over the square matrix. Powers of
// one matrix commute, so integer results equal repeated multiplication exactly.
//
// Complexity: O(n³ log k) for an n×n matrix and exponent k.
func (m *Mat[T]) Pow(n int) (*Mat[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matErrorf(opPow, err)
	}
	if n < 0 {
		return nil, matErrorf(opPow, ErrNegativeExponent)
	}
	res, _ := Identity[T](m.rows)
	base := m.Clone()
	for n > 0 {
		if n&1 == 1 {
			res, _ = base.Mul(res)
		}
		n >>= 1
		if n > 0 {
			base, _ = base.Mul(base)
		}
	}
	return res, nil
}

// Equal reports identical shape and elements (NaN never equals NaN).
func (m *Mat[T]) Equal(b *Mat[T]) bool {
	if m == nil || b == nil {
		return m == b
	}
	if m.rows != b.rows || m.cols != b.cols {
		return false
	}
	for i, v := range m.data {
		if v != b.data[i] {
			return false
		}
	}
	return true
}

// ApproxEqual reports equal shape and every element within the configured
// epsilon (WithEpsilon, DefaultEpsilon otherwise).
func (m *Mat[T]) ApproxEqual(b *Mat[T], opts ...Option) bool {
	if ValidateSameShape(m, b) != nil {
		return false
	}
	eps := gatherOptions(opts...).eps
	for i, v := range m.data {
		if math.Abs(float64(v)-float64(b.data[i])) > eps {
			return false
		}
	}
	return true
}
