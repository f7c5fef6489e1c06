// SPDX-License-Identifier: MIT

package mat

import "github.com/katalvlaran/lvmath/scalar"

// factorization is P·A = L·U stored in one column-major n×n slice: the
// strict lower triangle holds L's multipliers (unit diagonal implied), the
// upper triangle holds U. perm[i] is the row of A that became row i.
type factorization[T scalar.Float] struct {
	n        int
	lu       []T
	perm     []int
	sign     T
	singular bool
}

func (f *factorization[T]) at(r, c int) T { return f.lu[c*f.n+r] }

// decompose runs Doolittle elimination with partial pivoting.
// A zero pivot column marks the matrix singular and is skipped.
func decompose[T scalar.Float](op string, m *Mat[T]) (*factorization[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matErrorf(op, err)
	}
	n := m.rows
	f := &factorization[T]{n: n, lu: make([]T, n*n), perm: make([]int, n), sign: 1}
	copy(f.lu, m.data)
	for i := range f.perm {
		f.perm[i] = i
	}
	a := f.lu

	for k := 0; k < n; k++ {
		p, best := k, scalar.Abs(a[k*n+k])
		for r := k + 1; r < n; r++ {
			if v := scalar.Abs(a[k*n+r]); v > best {
				p, best = r, v
			}
		}
		if best == 0 {
			f.singular = true
			continue
		}
		if p != k {
			for c := 0; c < n; c++ {
				a[c*n+k], a[c*n+p] = a[c*n+p], a[c*n+k]
			}
			f.perm[k], f.perm[p] = f.perm[p], f.perm[k]
			f.sign = -f.sign
		}

		pivot := a[k*n+k]
		for r := k + 1; r < n; r++ {
			l := a[k*n+r] / pivot
			a[k*n+r] = l
			for c := k + 1; c < n; c++ {
				a[c*n+r] -= l * a[c*n+k]
			}
		}
	}
	return f, nil
}

// LU factors a square float matrix as P·m = L·U with partial pivoting.
// L is unit lower triangular, U upper triangular, and row i of P·m is row
// perm[i] of m. Singular matrices factor too; U then has a zero on its diagonal.
// Complexity: O(n³).
func LU[T scalar.Float](m *Mat[T]) (l, u *Mat[T], perm []int, err error) {
	f, err := decompose("LU", m)
	if err != nil {
		return nil, nil, nil, err
	}
	n := f.n
	l = &Mat[T]{rows: n, cols: n, data: make([]T, n*n)}
	u = &Mat[T]{rows: n, cols: n, data: make([]T, n*n)}
	for c := 0; c < n; c++ {
		for r := 0; r < n; r++ {
			switch {
			case r > c:
				l.data[c*n+r] = f.at(r, c)
			case r == c:
				l.data[c*n+r] = 1
				u.data[c*n+r] = f.at(r, c)
			default:
				u.data[c*n+r] = f.at(r, c)
			}
		}
	}
	return l, u, f.perm, nil
}

// Det returns the determinant of a square float matrix; 0 when singular.
func Det[T scalar.Float](m *Mat[T]) (T, error) {
	f, err := decompose("Det", m)
	if err != nil {
		return 0, err
	}
	if f.singular {
		return 0, nil
	}
	d := f.sign
	for i := 0; i < f.n; i++ {
		d *= f.at(i, i)
	}
	return d, nil
}

// Inverse returns m⁻¹ by solving L·U·x = P·eⱼ for every basis column eⱼ.
// It fails with ErrSingular when a pivot column is zero; nearly singular
// input is not detected and yields large or non-finite entries.
func Inverse[T scalar.Float](m *Mat[T]) (*Mat[T], error) {
	f, err := decompose("Inverse", m)
	if err != nil {
		return nil, err
	}
	if f.singular {
		return nil, matErrorf("Inverse", ErrSingular)
	}
	n := f.n
	inv := &Mat[T]{rows: n, cols: n, data: make([]T, n*n)}
	y := make([]T, n)

	for j := 0; j < n; j++ {
		// forward: L·y = P·eⱼ
		for i := 0; i < n; i++ {
			var sum T
			for k := 0; k < i; k++ {
				sum += f.at(i, k) * y[k]
			}
			if f.perm[i] == j {
				y[i] = 1 - sum
			} else {
				y[i] = -sum
			}
		}
		// backward: U·x = y, written straight into column j
		x := inv.data[j*n : (j+1)*n]
		for i := n - 1; i >= 0; i-- {
			var sum T
			for k := i + 1; k < n; k++ {
				sum += f.at(i, k) * x[k]
			}
			x[i] = (y[i] - sum) / f.at(i, i)
		}
	}
	return inv, nil
}

// Inverse4 inverts a Mat4 through Inverse.
func Inverse4[T scalar.Float](m Mat4[T]) (Mat4[T], error) {
	inv, err := Inverse(m.Mat())
	if err != nil {
		return Mat4[T]{}, err
	}
	return Mat4From(inv)
}
