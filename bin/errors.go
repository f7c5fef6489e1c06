// SPDX-License-Identifier: MIT

package bin

import (
	"errors"
	"fmt"
)

var (
	// ErrShortInput is returned when fewer bytes than the codec width are available.
	ErrShortInput = errors.New("bin: input shorter than codec width")

	// ErrTrailingInput is returned by DecodeExact when bytes remain after decoding.
	ErrTrailingInput = errors.New("bin: trailing bytes after value")
)

func lengthErrorf(op string, want, have int, err error) error {
	return fmt.Errorf("%s: want %d bytes, have %d: %w", op, want, have, err)
}
