// SPDX-License-Identifier: MIT

// Package scalar is the numeric capability layer of lvmath.
//
// Every vector, matrix and codec in the module is generic over a scalar type.
// This package names the admissible scalar sets and supplies the operations
// generic code cannot spell directly on a mixed integer/float type set:
//
//   - constraints: Integer, Signed, Unsigned, Float, Number;
//   - identities: Zero, One, IsZero, IsOne;
//   - native-semantics integer ops usable on any Number: Rem, And, Or, Xor, Not, Shl, Shr;
//   - float math (Sqrt, Sin, Acos, Round, ...): float32 stays in float32 via math32,
//     integers are computed in float64 and truncated back;
//   - Kind: a runtime tag for the twelve fixed-width kinds, including the 128-bit ones;
//   - Uint128 / Int128: the 128-bit integer kinds Go does not provide natively.
//
// Usage:
//
//	k := scalar.KindOf[int16]()      // scalar.I16, k.Width() == 2
//	r := scalar.Rem(int8(-7), 3)     // -1, Go's truncated remainder
//	s := scalar.Sqrt(float32(2))     // computed without leaving float32
//
// All functions are pure and allocation-free.
package scalar
