// SPDX-License-Identifier: MIT

package converters

import (
	"errors"
	"fmt"
)

var (
	// ErrNilInput is returned when a nil gonum value is passed in.
	ErrNilInput = errors.New("converters: nil input")

	// ErrLength reports a gonum vector whose length does not match the target arity.
	ErrLength = errors.New("converters: vector length mismatch")
)

func convErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
