// SPDX-License-Identifier: MIT

// Package mat provides column-major matrices generic over every native
// numeric kind.
//
// 🚀 Two shapes of one idea:
//
//	Mat[T]   runtime-shaped rows×cols matrix, flat column-major storage
//	         (element (r, c) lives at data[c*rows + r]);
//	Mat4[T]  [4][4]T value type for the transform-sized case, indexed
//	         m[col][row], contiguous and copyable.
//
// Both are built from a row-major literal, the way matrices are written on
// paper, and transposed into column-major order on construction:
//
//	a, _ := mat.New([][]int{
//		{1, 2, 3},
//		{5, 6, 7},
//	})
//	a.Rows(), a.Cols() // 2, 3
//	a.Col(0)           // [1 5], a mutable view of column 0
//	a.Data()           // [1 5 2 6 3 7], ready for a graphics API upload
//
// ✨ Operations: Transpose, Mul, Add, Sub, Scale, Pow (Pow(0) is the identity),
// Equal/ApproxEqual, Clone, String. Shape mismatches come back as sentinel
// errors (ErrDimensionMismatch, ErrNonSquare, ErrBadShape) matched with
// errors.Is; index misuse on the view accessors (Col) panics.
//
// Float matrices also factor: LU (with partial pivoting), Det, Inverse and
// Inverse4. A zero pivot column reports ErrSingular from Inverse.
//
// ⚙️ Numeric policy is configured with functional options (WithEpsilon,
// WithValidateNaNInf) in the same way across constructors and comparisons.
//
// Encoding: Codec writes the elements in column-major order with package bin;
// the shape is not part of the payload.
package mat
