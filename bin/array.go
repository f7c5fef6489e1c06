// SPDX-License-Identifier: MIT

package bin

import (
	"fmt"

	"github.com/katalvlaran/lvmath/scalar"
)

type arrayCodec[T any] struct {
	elem Codec[T]
	n    int
}

// Array composes elem into a codec for exactly n values.
// Put panics when given a slice whose length is not n.
func Array[T any](elem Codec[T], n int) Codec[[]T] {
	if n < 0 {
		panic(fmt.Sprintf("bin: negative array length %d", n))
	}
	return arrayCodec[T]{elem: elem, n: n}
}

// Width is n times the element width.
func (c arrayCodec[T]) Width() int { return c.n * c.elem.Width() }

// Len is the fixed element count n.
func (c arrayCodec[T]) Len() int { return c.n }

// Put writes the elements back to back in index order.
//
// Complexity: O(n). Panics when len(v) != n or dst is short.
func (c arrayCodec[T]) Put(dst []byte, v []T) {
	if len(v) != c.n {
		panic(fmt.Sprintf("bin: array codec of %d elements given %d", c.n, len(v)))
	}
	w := c.elem.Width()
	for i, x := range v {
		c.elem.Put(dst[i*w:], x)
	}
}

// Get decodes n elements into a fresh slice.
func (c arrayCodec[T]) Get(src []byte) []T {
	w := c.elem.Width()
	out := make([]T, c.n)
	for i := range out {
		out[i] = c.elem.Get(src[i*w:])
	}
	return out
}

// Kind forwards the element kind when the element codec knows it.
func (c arrayCodec[T]) Kind() scalar.Kind {
	if kc, ok := c.elem.(Kinded); ok {
		return kc.Kind()
	}
	return scalar.Invalid
}
