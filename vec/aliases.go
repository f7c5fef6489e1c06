// SPDX-License-Identifier: MIT

package vec

// Canonical aliases: no suffix is float32, d is float64, i is int32 and u
// is uint32. The packed layouts in packed.go mirror them.
type (
	Vec2 = PolyVec2[float32]
	Vec3 = PolyVec3[float32]
	Vec4 = PolyVec4[float32]

	Vec2d = PolyVec2[float64]
	Vec3d = PolyVec3[float64]
	Vec4d = PolyVec4[float64]

	Vec2i = PolyVec2[int32]
	Vec3i = PolyVec3[int32]
	Vec4i = PolyVec4[int32]

	Vec2u = PolyVec2[uint32]
	Vec3u = PolyVec3[uint32]
	Vec4u = PolyVec4[uint32]
)
