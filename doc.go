// SPDX-License-Identifier: MIT

// Package lvmath is a small numeric toolkit for graphics and simulation code:
// generic vectors, column-major matrices and quaternions over every native
// numeric kind, with a fixed big-endian wire format.
//
// 🚀 What is inside?
//
//	scalar/      numeric kinds, constraints, 128-bit integers, float math
//	bin/         fixed-width big-endian codecs, composable into arrays
//	vec/         PolyVec2/3/4[T], traits, packed GPU layouts, codecs
//	mat/         runtime-shaped Mat[T], Mat4[T], LU/Det/Inverse, codecs
//	quat/        float quaternions: axis-angle, Euler, slerp, rotation matrix
//	frame/       MessagePack envelope that tags payloads with kind and shape
//	converters/  adapters to and from gonum
//	cmd/lvmath   command line front end
//
// ✨ Design notes
//
//   - Values, not handles: vectors, Mat4 and quaternions are plain structs
//     and arrays that copy and compare with ==.
//   - Column-major everywhere: Mat.Data and Mat4 are ready for a graphics
//     API upload without transposing.
//   - Errors for runtime shapes, panics for programmer errors.
//
// Quick example:
//
//	q := quat.FromAxisAngle(vec.UnitZ3[float64](), math.Pi/2)
//	q.Rotate(vec.UnitX3[float64]()) // ≈ (0, 1, 0)
//
//	go get github.com/katalvlaran/lvmath
package lvmath
