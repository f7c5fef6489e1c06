// SPDX-License-Identifier: MIT

// Package converters provides two-way adapters between lvmath values and
// gonum (gonum.org/v1/gonum):
//   - *mat.Mat[T] and mat.Mat4[T] <-> gonum mat.Dense (any gonum mat.Matrix on input)
//   - PolyVec2/3/4 <-> gonum mat.VecDense
//   - quat.Quaternion[T] <-> gonum num/quat.Number
//
// gonum works in float64 only. Exporting widens every element to float64;
// importing into an integer T truncates toward zero, as a Go conversion does.
package converters
