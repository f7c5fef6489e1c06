// SPDX-License-Identifier: MIT

package scalar

import "math"

// The helpers below give generic code access to the integer operators
// (%, &, |, ^, <<, >>) that Go only defines on integer type sets.
// Results match the native operator on T bit for bit: the operands are
// widened to 64 bits (sign-extending signed kinds) and truncated back.
// A negative shift count panics with ErrNegativeShift, as the native
// operator panics at run time.

func requireInteger[T Number]() Kind {
	k := KindOf[T]()
	if k.IsFloat() {
		panic(ErrNotInteger)
	}
	return k
}

func requireShift[T Number](n T) {
	if n < 0 {
		panic(ErrNegativeShift)
	}
}

// Rem is the truncated remainder a % b. Float kinds use math.Mod, which
// shares the sign convention. An integer b of zero panics like the native operator.
func Rem[T Number](a, b T) T {
	k := KindOf[T]()
	switch {
	case k.IsFloat():
		return T(math.Mod(float64(a), float64(b)))
	case k.IsSigned():
		return T(int64(a) % int64(b))
	default:
		return T(uint64(a) % uint64(b))
	}
}

// And is a & b.
func And[T Number](a, b T) T {
	requireInteger[T]()
	return T(uint64(a) & uint64(b))
}

// Or is a | b.
func Or[T Number](a, b T) T {
	requireInteger[T]()
	return T(uint64(a) | uint64(b))
}

// Xor is a ^ b.
func Xor[T Number](a, b T) T {
	requireInteger[T]()
	return T(uint64(a) ^ uint64(b))
}

// Not is ^a.
func Not[T Number](a T) T {
	requireInteger[T]()
	return T(^uint64(a))
}

// Shl is a << n. Counts of the bit width or more give 0.
func Shl[T Number](a, n T) T {
	requireInteger[T]()
	requireShift(n)
	return T(uint64(a) << uint64(n))
}

// Shr is a >> n, arithmetic for signed kinds.
func Shr[T Number](a, n T) T {
	k := requireInteger[T]()
	requireShift(n)
	if k.IsSigned() {
		return T(int64(a) >> uint64(n))
	}
	return T(uint64(a) >> uint64(n))
}
