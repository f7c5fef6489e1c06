// SPDX-License-Identifier: MIT

package quat

import (
	"fmt"

	"github.com/katalvlaran/lvmath/scalar"
)

// Bounds of the unit-length check.
const (
	unitLow  = 0.9
	unitHigh = 1.1
)

func assertUnit[T scalar.Float](q Quaternion[T]) {
	if l := float64(q.Length()); l < unitLow || l > unitHigh {
		panic(fmt.Sprintf("quat: rotation by a non-unit quaternion %v (|q| = %v)", q, l))
	}
}
