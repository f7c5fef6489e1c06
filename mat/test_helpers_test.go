// SPDX-License-Identifier: MIT

package mat_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/mat"
	"github.com/katalvlaran/lvmath/scalar"
)

// MustMat builds a matrix from a row-major literal or fails the test.
func MustMat[T scalar.Number](t *testing.T, rows [][]T) *mat.Mat[T] {
	t.Helper()
	m, err := mat.New(rows)
	require.NoError(t, err)
	return m
}

// requireEqualMat compares shape and elements via the row-major view.
func requireEqualMat[T scalar.Number](t *testing.T, want, got *mat.Mat[T]) {
	t.Helper()
	require.True(t, want.Equal(got), "want:\n%s\ngot:\n%s", want, got)
}
