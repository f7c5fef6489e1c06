// SPDX-License-Identifier: MIT

package mat

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmath/scalar"
)

// Mat is a rows×cols matrix stored column-major in one contiguous slice.
//
// Element (r, c) lives at data[c*rows + r], so each column is a contiguous
// run of rows values and Data can be handed to column-major consumers as is.
// A Mat always has at least one row and one column.
type Mat[T scalar.Number] struct {
	rows, cols int
	data       []T
}

// New builds a matrix from a row-major literal: rows[r][c] becomes element (r, c).
//
// Implementation:
//   - Stage 1: validate that the literal is non-empty and rectangular (ErrBadShape).
//   - Stage 2: apply the NaN/Inf policy to float kinds (ErrNaNInf).
//   - Stage 3: transpose into the column-major backing slice.
//
// Complexity: O(rows*cols) time and memory.
func New[T scalar.Number](rows [][]T, opts ...Option) (*Mat[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matErrorf("New", ErrBadShape)
	}
	r, c := len(rows), len(rows[0])
	for i, row := range rows {
		if len(row) != c {
			return nil, matErrorf("New", fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), c, ErrBadShape))
		}
	}
	o := gatherOptions(opts...)
	if o.validateNaNInf {
		for _, row := range rows {
			if err := checkFinite(row); err != nil {
				return nil, matErrorf("New", err)
			}
		}
	}

	m := &Mat[T]{rows: r, cols: c, data: make([]T, r*c)}
	for i, row := range rows {
		for j, v := range row {
			m.data[j*r+i] = v
		}
	}
	return m, nil
}

// MustNew is New that panics on error. Intended for literals in code and tests.
func MustNew[T scalar.Number](rows [][]T, opts ...Option) *Mat[T] {
	m, err := New(rows, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// FromColumnMajor wraps a copy of data, already laid out column-major.
func FromColumnMajor[T scalar.Number](rows, cols int, data []T, opts ...Option) (*Mat[T], error) {
	if rows <= 0 || cols <= 0 || len(data) != rows*cols {
		return nil, matErrorf("FromColumnMajor", ErrBadShape)
	}
	if gatherOptions(opts...).validateNaNInf {
		if err := checkFinite(data); err != nil {
			return nil, matErrorf("FromColumnMajor", err)
		}
	}
	return &Mat[T]{rows: rows, cols: cols, data: append([]T(nil), data...)}, nil
}

// Zero returns the rows×cols zero matrix.
func Zero[T scalar.Number](rows, cols int) (*Mat[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, matErrorf("Zero", ErrBadShape)
	}
	return &Mat[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}, nil
}

// Identity returns the n×n identity matrix.
func Identity[T scalar.Number](n int) (*Mat[T], error) {
	m, err := Zero[T](n, n)
	if err != nil {
		return nil, matErrorf("Identity", ErrBadShape)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m, nil
}

func checkFinite[T scalar.Number](vals []T) error {
	if !scalar.KindOf[T]().IsFloat() {
		return nil
	}
	for _, v := range vals {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return ErrNaNInf
		}
	}
	return nil
}

// Rows returns the number of rows.
func (m *Mat[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Mat[T]) Cols() int { return m.cols }

// Shape returns (rows, cols).
func (m *Mat[T]) Shape() (int, int) { return m.rows, m.cols }

// At returns element (r, c), or ErrOutOfRange.
func (m *Mat[T]) At(r, c int) (T, error) {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		var zero T
		return zero, matErrorf("At", ErrOutOfRange)
	}
	return m.data[c*m.rows+r], nil
}

// Set writes element (r, c), or returns ErrOutOfRange.
func (m *Mat[T]) Set(r, c int, v T) error {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		return matErrorf("Set", ErrOutOfRange)
	}
	m.data[c*m.rows+r] = v
	return nil
}

// Col returns column c as a view into the backing store; writes through it
// modify the matrix. It panics when c is out of range.
func (m *Mat[T]) Col(c int) []T {
	if c < 0 || c >= m.cols {
		panic(fmt.Sprintf("mat: column %d out of range [0,%d)", c, m.cols))
	}
	return m.data[c*m.rows : (c+1)*m.rows : (c+1)*m.rows]
}

// Data returns the column-major backing slice (not a copy).
func (m *Mat[T]) Data() []T { return m.data }

// Ptr returns the address of element (0, 0), the start of the contiguous store.
func (m *Mat[T]) Ptr() *T { return &m.data[0] }

// Row returns a copy of row r. It panics when r is out of range.
func (m *Mat[T]) Row(r int) []T {
	if r < 0 || r >= m.rows {
		panic(fmt.Sprintf("mat: row %d out of range [0,%d)", r, m.rows))
	}
	out := make([]T, m.cols)
	for c := range out {
		out[c] = m.data[c*m.rows+r]
	}
	return out
}

// RowMajor returns a row-major copy, the inverse of New.
func (m *Mat[T]) RowMajor() [][]T {
	out := make([][]T, m.rows)
	for r := range out {
		out[r] = m.Row(r)
	}
	return out
}

// Clone returns a deep copy.
func (m *Mat[T]) Clone() *Mat[T] {
	return &Mat[T]{rows: m.rows, cols: m.cols, data: append([]T(nil), m.data...)}
}

// IsSquare reports rows == cols.
func (m *Mat[T]) IsSquare() bool { return m.rows == m.cols }
