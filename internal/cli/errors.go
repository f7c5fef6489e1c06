// SPDX-License-Identifier: MIT

package cli

import "errors"

var (
	// ErrUsage reports arguments that parse but make no sense together.
	ErrUsage = errors.New("cli: invalid usage")

	// ErrPayload reports a raw payload that does not split into whole values.
	ErrPayload = errors.New("cli: payload length is not a multiple of the kind width")

	// ErrUnsupportedKind is returned by commands restricted to a subset of kinds.
	ErrUnsupportedKind = errors.New("cli: kind not supported by this command")
)
