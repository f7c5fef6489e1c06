// SPDX-License-Identifier: MIT

package quat

import (
	"fmt"

	"github.com/katalvlaran/lvmath/bin"
	"github.com/katalvlaran/lvmath/scalar"
)

type codec[T scalar.Float] struct {
	elem bin.Codec[T]
}

// Codec encodes a quaternion as w, x, y, z with the element codec.
func Codec[T scalar.Float](elem bin.Codec[T]) bin.Codec[Quaternion[T]] {
	return codec[T]{elem: elem}
}

// Width is four element widths.
func (c codec[T]) Width() int { return 4 * c.elem.Width() }

// Kind is the component kind.
func (c codec[T]) Kind() scalar.Kind { return scalar.KindOf[T]() }

// Put writes w, x, y, z in order.
func (c codec[T]) Put(dst []byte, q Quaternion[T]) {
	w := c.elem.Width()
	_ = dst[4*w-1]
	c.elem.Put(dst, q.W)
	c.elem.Put(dst[w:], q.X)
	c.elem.Put(dst[2*w:], q.Y)
	c.elem.Put(dst[3*w:], q.Z)
}

// Get reads w, x, y, z in order.
func (c codec[T]) Get(src []byte) Quaternion[T] {
	w := c.elem.Width()
	_ = src[4*w-1]
	return Quaternion[T]{c.elem.Get(src), c.elem.Get(src[w:]), c.elem.Get(src[2*w:]), c.elem.Get(src[3*w:])}
}

// MarshalBinary implements encoding.BinaryMarshaler with the native codec of T.
func (q Quaternion[T]) MarshalBinary() ([]byte, error) {
	return bin.Encode(Codec(bin.For[T]()), q), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler; b must hold exactly one quaternion.
func (q *Quaternion[T]) UnmarshalBinary(b []byte) error {
	x, err := bin.DecodeExact(Codec(bin.For[T]()), b)
	if err != nil {
		return fmt.Errorf("Quaternion.UnmarshalBinary: %w", err)
	}
	*q = x
	return nil
}
