// SPDX-License-Identifier: MIT

package vec

import (
	"fmt"

	"github.com/katalvlaran/lvmath/scalar"
)

// Formatting tokens shared by every String method.
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

func indexPanic(i int, typ string) string {
	return fmt.Sprintf("vec: index %d out of range for %s", i, typ)
}

// within compares without subtracting the larger operand from the smaller,
// so unsigned kinds do not wrap.
func within[T scalar.Number](a, b, eps T) bool {
	if a > b {
		return a-b <= eps
	}
	return b-a <= eps
}
