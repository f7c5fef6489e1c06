// SPDX-License-Identifier: MIT

// Package vec provides 2-, 3- and 4-component vectors generic over every
// native numeric kind.
//
// PolyVec2, PolyVec3 and PolyVec4 are plain comparable structs with exported
// components, so `a == b` is exact equality and the zero value is the zero
// vector. Value-receiver methods return new vectors (Add, Scale, Normalized,
// ...); pointer-receiver *Assign methods mutate in place.
//
// Integer and float vectors share one method set. Operations that only make
// sense for one family follow Go's native semantics for T:
//
//   - integer division by zero panics, overflow wraps;
//   - bitwise methods (And, Shl, ...) panic with scalar.ErrNotInteger on floats;
//   - float functions (Magnitude, Sin, Normalized, ...) on integer vectors are
//     computed in float64 and truncated back to T.
//
// Component access by axis name goes through the HasX/HasY/HasZ/HasW
// capabilities, so axis-generic code (SumXY, SwapXY, ScaleAxisX) is written
// once for every arity that has the axis. Index access (At, Set, Ptr) uses
// x=0, y=1, z=2, w=3 and panics out of range.
//
// Aliases name the common instantiations:
//
//	Vec2,  Vec3,  Vec4   float32
//	Vec2d, Vec3d, Vec4d  float64
//	Vec2i, Vec3i, Vec4i  int32
//	Vec2u, Vec3u, Vec4u  uint32
//
// Vectors encode with package bin as their components in x, y, z, w order
// (Codec2/3/4, MarshalBinary). The *Packed types give a tightly packed,
// GPU-uploadable layout for the float32/int32/uint32 aliases.
package vec
