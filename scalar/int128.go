// SPDX-License-Identifier: MIT

package scalar

import (
	"fmt"
	"math/big"
	"math/bits"
)

// Uint128 is an unsigned 128-bit integer split into two 64-bit halves.
type Uint128 struct {
	Hi, Lo uint64
}

// Int128 is a signed 128-bit integer in two's complement.
// Hi carries the sign; the value is Hi*2^64 + Lo.
type Int128 struct {
	Hi int64
	Lo uint64
}

var (
	two64  = new(big.Int).Lsh(big.NewInt(1), 64)
	two128 = new(big.Int).Lsh(big.NewInt(1), 128)
	maxI   = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	minI   = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
)

// MaxUint128 is 2^128 - 1.
var MaxUint128 = Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}

// MaxInt128 and MinInt128 bound the Int128 range.
var (
	MaxInt128 = Int128{Hi: 1<<63 - 1, Lo: ^uint64(0)}
	MinInt128 = Int128{Hi: -1 << 63, Lo: 0}
)

// Uint128From64 widens v.
func Uint128From64(v uint64) Uint128 { return Uint128{Lo: v} }

// Int128From64 sign-extends v.
func Int128From64(v int64) Int128 { return Int128{Hi: v >> 63, Lo: uint64(v)} }

// Uint128FromBig converts b, failing with ErrOverflow outside [0, 2^128).
func Uint128FromBig(b *big.Int) (Uint128, error) {
	if b.Sign() < 0 || b.Cmp(two128) >= 0 {
		return Uint128{}, fmt.Errorf("Uint128FromBig(%s): %w", b, ErrOverflow)
	}
	hi := new(big.Int).Rsh(b, 64)
	lo := new(big.Int).Mod(b, two64)
	return Uint128{Hi: hi.Uint64(), Lo: lo.Uint64()}, nil
}

// Int128FromBig converts b, failing with ErrOverflow outside [-2^127, 2^127).
func Int128FromBig(b *big.Int) (Int128, error) {
	if b.Cmp(minI) < 0 || b.Cmp(maxI) > 0 {
		return Int128{}, fmt.Errorf("Int128FromBig(%s): %w", b, ErrOverflow)
	}
	m := new(big.Int).Set(b)
	if m.Sign() < 0 {
		m.Add(m, two128)
	}
	u, _ := Uint128FromBig(m)
	return u.Int128(), nil
}

// ParseUint128 parses a base-10 string.
func ParseUint128(s string) (Uint128, error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Uint128{}, fmt.Errorf("ParseUint128(%q): invalid syntax", s)
	}
	return Uint128FromBig(b)
}

// ParseInt128 parses a base-10 string with an optional sign.
func ParseInt128(s string) (Int128, error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Int128{}, fmt.Errorf("ParseInt128(%q): invalid syntax", s)
	}
	return Int128FromBig(b)
}

// Big returns u as a big.Int.
func (u Uint128) Big() *big.Int {
	b := new(big.Int).SetUint64(u.Hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(u.Lo))
}

// String renders u in decimal.
func (u Uint128) String() string { return u.Big().String() }

// Int128 reinterprets the bits of u as signed.
func (u Uint128) Int128() Int128 { return Int128{Hi: int64(u.Hi), Lo: u.Lo} }

// Add returns u+v modulo 2^128.
func (u Uint128) Add(v Uint128) Uint128 {
	lo, carry := bits.Add64(u.Lo, v.Lo, 0)
	hi, _ := bits.Add64(u.Hi, v.Hi, carry)
	return Uint128{Hi: hi, Lo: lo}
}

// Sub returns u-v modulo 2^128.
func (u Uint128) Sub(v Uint128) Uint128 {
	lo, borrow := bits.Sub64(u.Lo, v.Lo, 0)
	hi, _ := bits.Sub64(u.Hi, v.Hi, borrow)
	return Uint128{Hi: hi, Lo: lo}
}

// Cmp returns -1, 0 or +1.
func (u Uint128) Cmp(v Uint128) int {
	switch {
	case u.Hi < v.Hi:
		return -1
	case u.Hi > v.Hi:
		return 1
	case u.Lo < v.Lo:
		return -1
	case u.Lo > v.Lo:
		return 1
	}
	return 0
}

// Big returns i as a big.Int.
func (i Int128) Big() *big.Int {
	b := big.NewInt(i.Hi)
	b.Lsh(b, 64)
	return b.Add(b, new(big.Int).SetUint64(i.Lo))
}

// String renders i in decimal with a leading minus when negative.
func (i Int128) String() string { return i.Big().String() }

// Uint128 reinterprets the bits of i as unsigned.
func (i Int128) Uint128() Uint128 { return Uint128{Hi: uint64(i.Hi), Lo: i.Lo} }

// Add returns i+j with two's-complement wraparound.
func (i Int128) Add(j Int128) Int128 { return i.Uint128().Add(j.Uint128()).Int128() }

// Sub returns i-j with two's-complement wraparound.
func (i Int128) Sub(j Int128) Int128 { return i.Uint128().Sub(j.Uint128()).Int128() }

// Neg returns -i; Neg(MinInt128) wraps to itself.
func (i Int128) Neg() Int128 { return Int128{}.Sub(i) }

// Cmp returns -1, 0 or +1.
func (i Int128) Cmp(j Int128) int {
	switch {
	case i.Hi < j.Hi:
		return -1
	case i.Hi > j.Hi:
		return 1
	case i.Lo < j.Lo:
		return -1
	case i.Lo > j.Lo:
		return 1
	}
	return 0
}
