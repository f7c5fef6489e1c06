// SPDX-License-Identifier: MIT

package vec

import (
	"fmt"

	"github.com/katalvlaran/lvmath/bin"
	"github.com/katalvlaran/lvmath/scalar"
)

// Vector codecs write the components in x, y, z, w order, each with the
// element codec; the width is arity times the element width.

type codec2[T scalar.Number] struct {
	elem bin.Codec[T]
}

// Codec2 builds the codec of PolyVec2 from an element codec.
func Codec2[T scalar.Number](elem bin.Codec[T]) bin.Codec[PolyVec2[T]] {
	return codec2[T]{elem: elem}
}

// Width is the element width times 2.
func (c codec2[T]) Width() int { return 2 * c.elem.Width() }

// Kind is the component kind.
func (c codec2[T]) Kind() scalar.Kind { return scalar.KindOf[T]() }

// Put writes x, y in order.
func (c codec2[T]) Put(dst []byte, v PolyVec2[T]) {
	w := c.elem.Width()
	_ = dst[2*w-1]
	c.elem.Put(dst, v.X)
	c.elem.Put(dst[w:], v.Y)
}

// Get reads x, y in order.
func (c codec2[T]) Get(src []byte) PolyVec2[T] {
	w := c.elem.Width()
	_ = src[2*w-1]
	return PolyVec2[T]{c.elem.Get(src), c.elem.Get(src[w:])}
}

// MarshalBinary implements encoding.BinaryMarshaler with the native codec of T.
func (v PolyVec2[T]) MarshalBinary() ([]byte, error) {
	return bin.Encode(Codec2(bin.For[T]()), v), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler; b must hold exactly one vector.
func (v *PolyVec2[T]) UnmarshalBinary(b []byte) error {
	x, err := bin.DecodeExact(Codec2(bin.For[T]()), b)
	if err != nil {
		return fmt.Errorf("PolyVec2.UnmarshalBinary: %w", err)
	}
	*v = x
	return nil
}

type codec3[T scalar.Number] struct {
	elem bin.Codec[T]
}

// Codec3 builds the codec of PolyVec3 from an element codec.
func Codec3[T scalar.Number](elem bin.Codec[T]) bin.Codec[PolyVec3[T]] {
	return codec3[T]{elem: elem}
}

// Width is the element width times 3.
func (c codec3[T]) Width() int { return 3 * c.elem.Width() }

// Kind is the component kind.
func (c codec3[T]) Kind() scalar.Kind { return scalar.KindOf[T]() }

// Put writes x, y, z in order.
func (c codec3[T]) Put(dst []byte, v PolyVec3[T]) {
	w := c.elem.Width()
	_ = dst[3*w-1]
	c.elem.Put(dst, v.X)
	c.elem.Put(dst[w:], v.Y)
	c.elem.Put(dst[2*w:], v.Z)
}

// Get reads x, y, z in order.
func (c codec3[T]) Get(src []byte) PolyVec3[T] {
	w := c.elem.Width()
	_ = src[3*w-1]
	return PolyVec3[T]{c.elem.Get(src), c.elem.Get(src[w:]), c.elem.Get(src[2*w:])}
}

// MarshalBinary implements encoding.BinaryMarshaler with the native codec of T.
func (v PolyVec3[T]) MarshalBinary() ([]byte, error) {
	return bin.Encode(Codec3(bin.For[T]()), v), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler; b must hold exactly one vector.
func (v *PolyVec3[T]) UnmarshalBinary(b []byte) error {
	x, err := bin.DecodeExact(Codec3(bin.For[T]()), b)
	if err != nil {
		return fmt.Errorf("PolyVec3.UnmarshalBinary: %w", err)
	}
	*v = x
	return nil
}

type codec4[T scalar.Number] struct {
	elem bin.Codec[T]
}

// Codec4 builds the codec of PolyVec4 from an element codec.
func Codec4[T scalar.Number](elem bin.Codec[T]) bin.Codec[PolyVec4[T]] {
	return codec4[T]{elem: elem}
}

// Width is the element width times 4.
func (c codec4[T]) Width() int { return 4 * c.elem.Width() }

// Kind is the component kind.
func (c codec4[T]) Kind() scalar.Kind { return scalar.KindOf[T]() }

// Put writes x, y, z, w in order.
func (c codec4[T]) Put(dst []byte, v PolyVec4[T]) {
	w := c.elem.Width()
	_ = dst[4*w-1]
	c.elem.Put(dst, v.X)
	c.elem.Put(dst[w:], v.Y)
	c.elem.Put(dst[2*w:], v.Z)
	c.elem.Put(dst[3*w:], v.W)
}

// Get reads x, y, z, w in order.
func (c codec4[T]) Get(src []byte) PolyVec4[T] {
	w := c.elem.Width()
	_ = src[4*w-1]
	return PolyVec4[T]{c.elem.Get(src), c.elem.Get(src[w:]), c.elem.Get(src[2*w:]), c.elem.Get(src[3*w:])}
}

// MarshalBinary implements encoding.BinaryMarshaler with the native codec of T.
func (v PolyVec4[T]) MarshalBinary() ([]byte, error) {
	return bin.Encode(Codec4(bin.For[T]()), v), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler; b must hold exactly one vector.
func (v *PolyVec4[T]) UnmarshalBinary(b []byte) error {
	x, err := bin.DecodeExact(Codec4(bin.For[T]()), b)
	if err != nil {
		return fmt.Errorf("PolyVec4.UnmarshalBinary: %w", err)
	}
	*v = x
	return nil
}
