// SPDX-License-Identifier: MIT

package mat

import "github.com/katalvlaran/lvmath/scalar"

// Facades mirroring the methods for call sites that read better as functions.

// Product returns a*b.
func Product[T scalar.Number](a, b *Mat[T]) (*Mat[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matErrorf("Product", err)
	}
	return a.Mul(b)
}

// Sum returns a+b.
func Sum[T scalar.Number](a, b *Mat[T]) (*Mat[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matErrorf("Sum", err)
	}
	return a.Add(b)
}

// Transpose returns mᵀ.
func Transpose[T scalar.Number](m *Mat[T]) (*Mat[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matErrorf("Transpose", err)
	}
	return m.Transpose(), nil
}

// Chain multiplies left to right: Chain(a, b, c) = (a*b)*c.
func Chain[T scalar.Number](first *Mat[T], rest ...*Mat[T]) (*Mat[T], error) {
	if err := ValidateNotNil(first); err != nil {
		return nil, matErrorf("Chain", err)
	}
	acc := first
	for _, m := range rest {
		next, err := acc.Mul(m)
		if err != nil {
			return nil, matErrorf("Chain", err)
		}
		acc = next
	}
	return acc, nil
}
