// SPDX-License-Identifier: MIT

package mat_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gmat "gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvmath/mat"
	"github.com/katalvlaran/lvmath/vec"
)

func randSquare(r *rand.Rand, n int) *mat.Mat[float64] {
	data := make([]float64, n*n)
	for i := range data {
		data[i] = r.NormFloat64()
	}
	m, err := mat.FromColumnMajor(n, n, data)
	if err != nil {
		panic(err)
	}
	return m
}

func toDense(m *mat.Mat[float64]) *gmat.Dense {
	rows, cols := m.Shape()
	d := gmat.NewDense(rows, cols, nil)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v, _ := m.At(r, c)
			d.Set(r, c, v)
		}
	}
	return d
}

func TestLUReconstructs(t *testing.T) {
	t.Parallel()

	// a zero leading pivot needs a row swap
	m := MustMat(t, [][]float64{
		{0, 2, 1},
		{1, 1, 1},
		{4, 0, 2},
	})
	l, u, perm, err := mat.LU(m)
	require.NoError(t, err)

	lu, err := l.Mul(u)
	require.NoError(t, err)
	rows := m.RowMajor()
	permuted := make([][]float64, len(perm))
	for i, p := range perm {
		permuted[i] = rows[p]
	}
	assert.True(t, MustMat(t, permuted).ApproxEqual(lu, mat.WithEpsilon(1e-12)))

	for r := 0; r < 3; r++ {
		d, _ := l.At(r, r)
		assert.Equal(t, 1.0, d)
		for c := r + 1; c < 3; c++ {
			up, _ := l.At(r, c)
			lo, _ := u.At(c, r)
			assert.Zero(t, up)
			assert.Zero(t, lo)
		}
	}
}

func TestDetAndInverseMatchGonum(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(17))
	for _, n := range []int{1, 2, 3, 4, 6} {
		for k := 0; k < 20; k++ {
			m := randSquare(r, n)

			det, err := mat.Det(m)
			require.NoError(t, err)
			assert.InDelta(t, gmat.Det(toDense(m)), det, 1e-9)

			inv, err := mat.Inverse(m)
			require.NoError(t, err)
			var want gmat.Dense
			require.NoError(t, want.Inverse(toDense(m)))
			require.True(t, gmat.EqualApprox(&want, toDense(inv), 1e-8))

			id, err := mat.Identity[float64](n)
			require.NoError(t, err)
			prod, err := m.Mul(inv)
			require.NoError(t, err)
			assert.True(t, id.ApproxEqual(prod, mat.WithEpsilon(1e-9)))
		}
	}
}

func TestSingular(t *testing.T) {
	t.Parallel()

	m := MustMat(t, [][]float64{
		{1, 2},
		{2, 4},
	})
	det, err := mat.Det(m)
	require.NoError(t, err)
	assert.Zero(t, det)

	_, err = mat.Inverse(m)
	require.ErrorIs(t, err, mat.ErrSingular)

	_, _, _, err = mat.LU(m)
	require.NoError(t, err)

	_, err = mat.Det(MustMat(t, [][]float64{{1, 2, 3}}))
	require.ErrorIs(t, err, mat.ErrNonSquare)
	_, err = mat.Inverse[float32](nil)
	require.ErrorIs(t, err, mat.ErrNilMatrix)
}

func TestDetPermutationSign(t *testing.T) {
	t.Parallel()

	swap := MustMat(t, [][]float32{
		{0, 1},
		{1, 0},
	})
	det, err := mat.Det(swap)
	require.NoError(t, err)
	assert.Equal(t, float32(-1), det)

	inv, err := mat.Inverse(swap)
	require.NoError(t, err)
	requireEqualMat(t, swap, inv)
}

func TestInverse4(t *testing.T) {
	t.Parallel()

	m := mat.Identity4[float64]()
	m.Scale(vec.New3(2.0, 4, 8))
	m.Translate(vec.New3(1.0, -2, 3))

	inv, err := mat.Inverse4(m)
	require.NoError(t, err)
	got := m.Mul(inv)
	id := mat.Identity4[float64]()
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			assert.InDelta(t, id[c][r], got[c][r], 1e-12)
		}
	}

	_, err = mat.Inverse4(mat.Mat4[float64]{})
	require.ErrorIs(t, err, mat.ErrSingular)
}
