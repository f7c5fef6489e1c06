// SPDX-License-Identifier: MIT

package scalar

import "golang.org/x/exp/constraints"

// Signed is the set of signed native integer kinds.
type Signed interface {
	constraints.Signed
}

// Unsigned is the set of unsigned native integer kinds.
type Unsigned interface {
	constraints.Unsigned
}

// Integer is the set of native integer kinds.
type Integer interface {
	constraints.Integer
}

// Float is the set of native IEEE-754 kinds.
type Float interface {
	constraints.Float
}

// Number is every native numeric kind a vector or matrix may hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// Zero returns the additive identity of T.
func Zero[T Number]() T {
	var z T
	return z
}

// One returns the multiplicative identity of T.
func One[T Number]() T {
	return 1
}

// IsZero reports whether v equals the additive identity.
func IsZero[T Number](v T) bool { return v == 0 }

// IsOne reports whether v equals the multiplicative identity.
func IsOne[T Number](v T) bool { return v == 1 }

// Lerp interpolates linearly: a + (b-a)*t.
func Lerp[T Number](a, b, t T) T {
	return a + (b-a)*t
}

// Cubic returns x*x*x.
func Cubic[T Number](x T) T {
	return x * x * x
}

// Min returns a when a < b, otherwise b.
// Unlike the builtin min, a NaN in a yields b.
func Min[T Number](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns a when a > b, otherwise b.
func Max[T Number](a, b T) T {
	if a > b {
		return a
	}
	return b
}
