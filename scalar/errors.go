// SPDX-License-Identifier: MIT

package scalar

import "errors"

var (
	// ErrUnknownKind is returned by ParseKind for an unrecognised kind name.
	ErrUnknownKind = errors.New("scalar: unknown kind")

	// ErrOverflow is returned when a value does not fit the target 128-bit kind.
	ErrOverflow = errors.New("scalar: value out of range")

	// ErrNotInteger is the panic value of bitwise helpers instantiated with a float kind.
	ErrNotInteger = errors.New("scalar: bitwise operation on a float kind")

	// ErrNegativeShift is the panic value of Shl and Shr for a negative count.
	ErrNegativeShift = errors.New("scalar: negative shift count")
)
