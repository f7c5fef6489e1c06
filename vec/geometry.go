// SPDX-License-Identifier: MIT

package vec

// Cross is the right-handed cross product; only defined in three dimensions.
func (v PolyVec3[T]) Cross(o PolyVec3[T]) PolyVec3[T] {
	return PolyVec3[T]{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Extend appends a w component.
func (v PolyVec3[T]) Extend(w T) PolyVec4[T] {
	return PolyVec4[T]{v.X, v.Y, v.Z, w}
}

// Extend appends a z component.
func (v PolyVec2[T]) Extend(z T) PolyVec3[T] {
	return PolyVec3[T]{v.X, v.Y, z}
}
