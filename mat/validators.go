// SPDX-License-Identifier: MIT
// Package: mat
//
// Purpose:
//   - One source of truth for the shape checks every operation performs.
//   - Kernels stay minimal by delegating nil/shape checks here.
//
// Each validator returns its sentinel tagged with the validator name; the
// operation wraps it once more with its own name, so errors read
// "Mul: ValidateMulShape: mat: dimension mismatch".

package mat

import (
	"fmt"

	"github.com/katalvlaran/lvmath/scalar"
)

func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures m is non-nil.
func ValidateNotNil[T scalar.Number](m *Mat[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	return nil
}

// ValidateSameShape ensures a and b are non-nil and of equal dimensions.
func ValidateSameShape[T scalar.Number](a, b *Mat[T]) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameShape", ErrNilMatrix)
	}
	if a.rows != b.rows || a.cols != b.cols {
		return validatorErrorf("ValidateSameShape", ErrDimensionMismatch)
	}
	return nil
}

// ValidateSquare ensures m is non-nil and square.
func ValidateSquare[T scalar.Number](m *Mat[T]) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.rows != m.cols {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}
	return nil
}

// ValidateMulShape ensures a.Cols == b.Rows so that a*b is defined.
func ValidateMulShape[T scalar.Number](a, b *Mat[T]) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateMulShape", ErrNilMatrix)
	}
	if a.cols != b.rows {
		return validatorErrorf("ValidateMulShape", ErrDimensionMismatch)
	}
	return nil
}
