// SPDX-License-Identifier: MIT

package frame

import (
	"errors"
	"fmt"
)

var (
	// ErrBadFrame reports a frame whose kind, shape or payload length is inconsistent.
	ErrBadFrame = errors.New("frame: malformed frame")

	// ErrVersion reports an envelope written by an unknown format version.
	ErrVersion = errors.New("frame: unsupported version")

	// ErrKindMismatch is returned when a typed decode meets a frame of another kind.
	ErrKindMismatch = errors.New("frame: kind mismatch")

	// ErrShapeMismatch is returned when a typed decode meets a frame of another shape.
	ErrShapeMismatch = errors.New("frame: shape mismatch")
)

func frameErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

func badFramef(op, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", op, ErrBadFrame, fmt.Sprintf(format, args...))
}
