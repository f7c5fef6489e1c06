// SPDX-License-Identifier: MIT

package vec

import "unsafe"

// Packed layouts hold the same components as the canonical aliases with no
// padding and a fixed field order, so a []Vec3Packed can be handed to a GPU
// buffer or any C-like consumer byte for byte.

type (
	// Vec2Packed is the packed layout of Vec2.
	Vec2Packed struct{ X, Y float32 }
	// Vec3Packed is the packed layout of Vec3.
	Vec3Packed struct{ X, Y, Z float32 }
	// Vec4Packed is the packed layout of Vec4.
	Vec4Packed struct{ X, Y, Z, W float32 }

	// Vec2iPacked is the packed layout of Vec2i.
	Vec2iPacked struct{ X, Y int32 }
	// Vec3iPacked is the packed layout of Vec3i.
	Vec3iPacked struct{ X, Y, Z int32 }
	// Vec4iPacked is the packed layout of Vec4i.
	Vec4iPacked struct{ X, Y, Z, W int32 }

	// Vec2uPacked is the packed layout of Vec2u.
	Vec2uPacked struct{ X, Y uint32 }
	// Vec3uPacked is the packed layout of Vec3u.
	Vec3uPacked struct{ X, Y, Z uint32 }
	// Vec4uPacked is the packed layout of Vec4u.
	Vec4uPacked struct{ X, Y, Z, W uint32 }
)

// Packed is the set of packed layouts.
type Packed interface {
	Vec2Packed | Vec3Packed | Vec4Packed |
		Vec2iPacked | Vec3iPacked | Vec4iPacked |
		Vec2uPacked | Vec3uPacked | Vec4uPacked
}

// Pack2 copies v into its packed layout.
func Pack2(v Vec2) Vec2Packed { return Vec2Packed{v.X, v.Y} }

// Pack3 copies v into its packed layout.
func Pack3(v Vec3) Vec3Packed { return Vec3Packed{v.X, v.Y, v.Z} }

// Pack4 copies v into its packed layout.
func Pack4(v Vec4) Vec4Packed { return Vec4Packed{v.X, v.Y, v.Z, v.W} }

// Pack2i copies v into its packed layout.
func Pack2i(v Vec2i) Vec2iPacked { return Vec2iPacked{v.X, v.Y} }

// Pack3i copies v into its packed layout.
func Pack3i(v Vec3i) Vec3iPacked { return Vec3iPacked{v.X, v.Y, v.Z} }

// Pack4i copies v into its packed layout.
func Pack4i(v Vec4i) Vec4iPacked { return Vec4iPacked{v.X, v.Y, v.Z, v.W} }

// Pack2u copies v into its packed layout.
func Pack2u(v Vec2u) Vec2uPacked { return Vec2uPacked{v.X, v.Y} }

// Pack3u copies v into its packed layout.
func Pack3u(v Vec3u) Vec3uPacked { return Vec3uPacked{v.X, v.Y, v.Z} }

// Pack4u copies v into its packed layout.
func Pack4u(v Vec4u) Vec4uPacked { return Vec4uPacked{v.X, v.Y, v.Z, v.W} }

// Unpack converts p back to Vec2.
func (p Vec2Packed) Unpack() Vec2 { return Vec2{p.X, p.Y} }

// Unpack converts p back to Vec3.
func (p Vec3Packed) Unpack() Vec3 { return Vec3{p.X, p.Y, p.Z} }

// Unpack converts p back to Vec4.
func (p Vec4Packed) Unpack() Vec4 { return Vec4{p.X, p.Y, p.Z, p.W} }

// Unpack converts p back to Vec2i.
func (p Vec2iPacked) Unpack() Vec2i { return Vec2i{p.X, p.Y} }

// Unpack converts p back to Vec3i.
func (p Vec3iPacked) Unpack() Vec3i { return Vec3i{p.X, p.Y, p.Z} }

// Unpack converts p back to Vec4i.
func (p Vec4iPacked) Unpack() Vec4i { return Vec4i{p.X, p.Y, p.Z, p.W} }

// Unpack converts p back to Vec2u.
func (p Vec2uPacked) Unpack() Vec2u { return Vec2u{p.X, p.Y} }

// Unpack converts p back to Vec3u.
func (p Vec3uPacked) Unpack() Vec3u { return Vec3u{p.X, p.Y, p.Z} }

// Unpack converts p back to Vec4u.
func (p Vec4uPacked) Unpack() Vec4u { return Vec4u{p.X, p.Y, p.Z, p.W} }

// PackedBytes views s as its raw bytes in native byte order without copying.
// The view aliases s and is only valid while s is.
func PackedBytes[P Packed](s []P) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero P
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*int(unsafe.Sizeof(zero)))
}
