// SPDX-License-Identifier: MIT

package bin

import (
	"encoding/binary"
	"math"

	"github.com/katalvlaran/lvmath/scalar"
)

// Codec encodes values of T into exactly Width() bytes and back.
//
// Put writes v into dst[:Width()]; Get reads src[:Width()].
// Both panic when the slice is shorter than Width().
type Codec[T any] interface {
	Width() int
	Put(dst []byte, v T)
	Get(src []byte) T
}

var be = binary.BigEndian

// numberCodec covers every native numeric kind; the kind is resolved once.
type numberCodec[T scalar.Number] struct {
	kind scalar.Kind
}

// For returns the codec of the native numeric kind T.
// Platform-sized int and uint are encoded at their in-memory width.
func For[T scalar.Number]() Codec[T] {
	return numberCodec[T]{kind: scalar.KindOf[T]()}
}

// Width is the byte size of the kind: 1, 2, 4 or 8.
func (c numberCodec[T]) Width() int { return c.kind.Width() }

// Kind returns the kind resolved when the codec was built.
func (c numberCodec[T]) Kind() scalar.Kind { return c.kind }

// Put writes v big-endian into dst[:Width()]. Floats are written as their
// IEEE-754 bit pattern and signed kinds as two's complement.
//
// Complexity: O(1). Panics when dst is shorter than Width().
func (c numberCodec[T]) Put(dst []byte, v T) {
	switch c.kind {
	case scalar.F32:
		be.PutUint32(dst, math.Float32bits(float32(v)))
	case scalar.F64:
		be.PutUint64(dst, math.Float64bits(float64(v)))
	case scalar.I8, scalar.U8:
		dst[0] = byte(v)
	case scalar.I16, scalar.U16:
		be.PutUint16(dst, uint16(v))
	case scalar.I32, scalar.U32:
		be.PutUint32(dst, uint32(v))
	default:
		be.PutUint64(dst, uint64(v))
	}
}

// Get reads the value stored by Put from src[:Width()]. Narrow signed
// kinds recover their sign through the conversion back to T.
//
// Complexity: O(1). Panics when src is shorter than Width().
func (c numberCodec[T]) Get(src []byte) T {
	switch c.kind {
	case scalar.F32:
		return T(math.Float32frombits(be.Uint32(src)))
	case scalar.F64:
		return T(math.Float64frombits(be.Uint64(src)))
	case scalar.I8, scalar.U8:
		return T(src[0])
	case scalar.I16, scalar.U16:
		return T(be.Uint16(src))
	case scalar.I32, scalar.U32:
		return T(be.Uint32(src))
	default:
		return T(be.Uint64(src))
	}
}

// Kinded is implemented by codecs that know the scalar kind they encode.
type Kinded interface {
	Kind() scalar.Kind
}

type uint128Codec struct{}

// Uint128Codec encodes scalar.Uint128 in 16 bytes, Hi word first.
var Uint128Codec Codec[scalar.Uint128] = uint128Codec{}

// Width is 16.
func (uint128Codec) Width() int { return 16 }

// Kind is scalar.U128.
func (uint128Codec) Kind() scalar.Kind { return scalar.U128 }

// Put writes Hi then Lo, each big-endian.
func (uint128Codec) Put(dst []byte, v scalar.Uint128) {
	_ = dst[15]
	be.PutUint64(dst[0:8], v.Hi)
	be.PutUint64(dst[8:16], v.Lo)
}

// Get reads Hi then Lo.
func (uint128Codec) Get(src []byte) scalar.Uint128 {
	_ = src[15]
	return scalar.Uint128{Hi: be.Uint64(src[0:8]), Lo: be.Uint64(src[8:16])}
}

type int128Codec struct{}

// Int128Codec encodes scalar.Int128 as the bit pattern of its unsigned reinterpretation.
var Int128Codec Codec[scalar.Int128] = int128Codec{}

// Width is 16.
func (int128Codec) Width() int { return 16 }

// Kind is scalar.I128.
func (int128Codec) Kind() scalar.Kind { return scalar.I128 }

// Put writes the two's-complement bits of v.
func (int128Codec) Put(dst []byte, v scalar.Int128) { uint128Codec{}.Put(dst, v.Uint128()) }

// Get reads the two's-complement bits written by Put.
func (int128Codec) Get(src []byte) scalar.Int128 { return uint128Codec{}.Get(src).Int128() }
