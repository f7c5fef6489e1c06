// SPDX-License-Identifier: MIT

package mat

import (
	"fmt"
	"strings"
)

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// String renders one row per line: "[1, 2, 3]\n[4, 5, 6]\n".
func (m *Mat[T]) String() string {
	if m == nil {
		return "<nil>"
	}
	var b strings.Builder
	for r := 0; r < m.rows; r++ {
		b.WriteString(_fmtRowOpen)
		for c := 0; c < m.cols; c++ {
			if c > 0 {
				b.WriteString(_fmtSep)
			}
			fmt.Fprint(&b, m.data[c*m.rows+r])
		}
		b.WriteString(_fmtRowClose)
	}
	return b.String()
}

// String renders the 4×4 matrix in the same row-per-line form as Mat.
func (m Mat4[T]) String() string {
	var b strings.Builder
	for r := 0; r < 4; r++ {
		b.WriteString(_fmtRowOpen)
		for c := 0; c < 4; c++ {
			if c > 0 {
				b.WriteString(_fmtSep)
			}
			fmt.Fprint(&b, m[c][r])
		}
		b.WriteString(_fmtRowClose)
	}
	return b.String()
}
