// SPDX-License-Identifier: MIT
// Package mat: sentinel error set.
// Every message carries the "mat: ..." prefix. Operations wrap the sentinel
// with the failing operation name via matErrorf; callers match with errors.Is.

package mat

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned for empty, ragged or non-positive shapes.
	ErrBadShape = errors.New("mat: invalid shape")

	// ErrOutOfRange indicates a row or column index outside the matrix.
	ErrOutOfRange = errors.New("mat: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes,
	// e.g. Add of different shapes or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("mat: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("mat: matrix is not square")

	// ErrNilMatrix is returned when a nil *Mat is passed to an operation.
	ErrNilMatrix = errors.New("mat: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf where the numeric policy requires finite values.
	ErrNaNInf = errors.New("mat: NaN or Inf encountered")

	// ErrNegativeExponent is returned by Pow for n < 0.
	ErrNegativeExponent = errors.New("mat: negative exponent")

	// ErrSingular is returned by Inverse when a pivot column is entirely zero.
	ErrSingular = errors.New("mat: matrix is singular")
)

// matErrorf tags err with the operation name, keeping it matchable.
func matErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
