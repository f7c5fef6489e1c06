// SPDX-License-Identifier: MIT

package mat

import (
	"fmt"

	"github.com/katalvlaran/lvmath/bin"
	"github.com/katalvlaran/lvmath/scalar"
)

// matCodec encodes a fixed-shape Mat as its column-major elements.
type matCodec[T scalar.Number] struct {
	elem       bin.Codec[T]
	rows, cols int
}

// Codec returns the codec of rows×cols matrices. The shape is part of the
// codec, not of the payload. Put panics on a matrix of another shape.
func Codec[T scalar.Number](elem bin.Codec[T], rows, cols int) bin.Codec[*Mat[T]] {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("mat: Codec shape %dx%d: %v", rows, cols, ErrBadShape))
	}
	return matCodec[T]{elem: elem, rows: rows, cols: cols}
}

// Width is rows*cols element widths.
func (c matCodec[T]) Width() int { return c.rows * c.cols * c.elem.Width() }

// Kind is the element kind.
func (c matCodec[T]) Kind() scalar.Kind { return scalar.KindOf[T]() }

// Put writes the elements column by column. It panics when m does not
// have the codec's shape.
func (c matCodec[T]) Put(dst []byte, m *Mat[T]) {
	if m.rows != c.rows || m.cols != c.cols {
		panic(fmt.Sprintf("mat: codec for %dx%d given %dx%d", c.rows, c.cols, m.rows, m.cols))
	}
	w := c.elem.Width()
	for i, v := range m.data {
		c.elem.Put(dst[i*w:], v)
	}
}

// Get reads a matrix of the codec's shape.
func (c matCodec[T]) Get(src []byte) *Mat[T] {
	w := c.elem.Width()
	m := &Mat[T]{rows: c.rows, cols: c.cols, data: make([]T, c.rows*c.cols)}
	for i := range m.data {
		m.data[i] = c.elem.Get(src[i*w:])
	}
	return m
}

// MarshalBinary encodes m with the native codec of T; the shape is not written.
func (m *Mat[T]) MarshalBinary() ([]byte, error) {
	return bin.Encode(Codec(bin.For[T](), m.rows, m.cols), m), nil
}

// Decode reads a rows×cols matrix from b, which must hold exactly one.
func Decode[T scalar.Number](b []byte, rows, cols int) (*Mat[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, matErrorf("Decode", ErrBadShape)
	}
	m, err := bin.DecodeExact(Codec(bin.For[T](), rows, cols), b)
	if err != nil {
		return nil, matErrorf("Decode", err)
	}
	return m, nil
}

type mat4Codec[T scalar.Number] struct {
	elem bin.Codec[T]
}

// Codec4 returns the codec of Mat4: 16 elements, column-major.
func Codec4[T scalar.Number](elem bin.Codec[T]) bin.Codec[Mat4[T]] {
	return mat4Codec[T]{elem: elem}
}

// Width is 16 element widths.
func (c mat4Codec[T]) Width() int { return 16 * c.elem.Width() }

// Kind is the element kind.
func (c mat4Codec[T]) Kind() scalar.Kind { return scalar.KindOf[T]() }

// Put writes m[0] through m[3], each column top to bottom.
func (c mat4Codec[T]) Put(dst []byte, m Mat4[T]) {
	w := c.elem.Width()
	_ = dst[16*w-1]
	for col := range m {
		for r, v := range m[col] {
			c.elem.Put(dst[(col*4+r)*w:], v)
		}
	}
}

// Get reads the layout written by Put.
func (c mat4Codec[T]) Get(src []byte) Mat4[T] {
	w := c.elem.Width()
	_ = src[16*w-1]
	var m Mat4[T]
	for col := range m {
		for r := range m[col] {
			m[col][r] = c.elem.Get(src[(col*4+r)*w:])
		}
	}
	return m
}
