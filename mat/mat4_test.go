// SPDX-License-Identifier: MIT

package mat_test

import (
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/mat"
	"github.com/katalvlaran/lvmath/vec"
)

var rowsA = [4][4]int{
	{1, 2, 3, 4},
	{5, 6, 7, 8},
	{9, 10, 11, 12},
	{13, 14, 15, 16},
}

func TestMat4LayoutAndPtr(t *testing.T) {
	t.Parallel()

	m := mat.NewMat4(rowsA)
	assert.Equal(t, [4]int{1, 5, 9, 13}, m[0]) // first column
	assert.Equal(t, 7, m.At(1, 2))

	p := m.Ptr()
	flat := unsafe.Slice(p, 16)
	assert.Equal(t, []int{1, 5, 9, 13, 2, 6, 10, 14, 3, 7, 11, 15, 4, 8, 12, 16}, flat)
}

func TestMat4AgreesWithMat(t *testing.T) {
	t.Parallel()

	a := mat.NewMat4(rowsA)
	b := mat.NewMat4([4][4]int{
		{2, 0, 1, 0},
		{0, 3, 0, 1},
		{1, 0, 0, 2},
		{-1, 4, 0, 0},
	})

	dynA, dynB := a.Mat(), b.Mat()
	prod, err := dynA.Mul(dynB)
	require.NoError(t, err)
	assert.True(t, a.Mul(b).Mat().Equal(prod))

	sum, err := dynA.Add(dynB)
	require.NoError(t, err)
	assert.True(t, a.Add(b).Mat().Equal(sum))

	assert.True(t, a.Transpose().Mat().Equal(dynA.Transpose()))

	for k := 0; k <= 4; k++ {
		want, err := dynA.Pow(k)
		require.NoError(t, err)
		assert.True(t, a.Pow(uint(k)).Mat().Equal(want), "k=%d", k)
	}

	back, err := mat.Mat4From(prod)
	require.NoError(t, err)
	assert.Equal(t, a.Mul(b), back)
}

func TestMat4FromErrors(t *testing.T) {
	t.Parallel()

	_, err := mat.Mat4From(MustMat(t, [][]int{{1, 2}, {3, 4}}))
	require.ErrorIs(t, err, mat.ErrDimensionMismatch)
	_, err = mat.Mat4From[int](nil)
	require.ErrorIs(t, err, mat.ErrNilMatrix)
}

func TestMat4Transforms(t *testing.T) {
	t.Parallel()

	m := mat.Identity4[float32]()
	m.Scale(vec.Vec3{X: 2, Y: 3, Z: 4})
	m.Translate(vec.Vec3{X: 10, Y: 20, Z: 30})
	assert.Equal(t, vec.Vec3{X: 12, Y: 23, Z: 34}, m.TransformPoint(vec.Vec3{X: 1, Y: 1, Z: 1}))
	assert.Equal(t, vec.Vec4{X: 2, Y: 3, Z: 4, W: 0}, m.MulVec4(vec.Vec4{X: 1, Y: 1, Z: 1}))

	r := mat.Identity4[int]()
	r.AddBottomRow(vec.New3(7, 8, 9))
	assert.Equal(t, [4]int{1, 0, 0, 7}, r[0])
	assert.Equal(t, [4]int{0, 0, 0, 1}, r[3])
	assert.Equal(t, vec.New4(1, 1, 1, 25), r.MulVec4(vec.New4(1, 1, 1, 1)))
}

func TestMat4Rotations(t *testing.T) {
	t.Parallel()

	const tol = 1e-12
	x, y, z := vec.UnitX3[float64](), vec.UnitY3[float64](), vec.UnitZ3[float64]()

	// a quarter turn about each axis carries the next axis onto the one after
	assert.True(t, mat.RotationX(math.Pi/2).TransformPoint(y).ApproxEqual(z, tol))
	assert.True(t, mat.RotationY(math.Pi/2).TransformPoint(z).ApproxEqual(x, tol))
	assert.True(t, mat.RotationZ(math.Pi/2).TransformPoint(x).ApproxEqual(y, tol))
	assert.True(t, mat.RotationX(0.7).TransformPoint(x).ApproxEqual(x, tol))
	assert.Equal(t, mat.Identity4[float32](), mat.RotationZ[float32](0))

	// Rotate applies Z, then Y, then X on top of m
	m := mat.Identity4[float64]()
	m.Translate(vec.New3(1.0, 0, 0))
	r := mat.Rotate(m, vec.New3(math.Pi/2, 0, math.Pi/2))
	got := r.TransformPoint(vec.Zero3[float64]())
	assert.True(t, got.ApproxEqual(z, tol), "got %v", got)

	want := mat.RotationX(0.3).Mul(mat.RotationY(-1.1)).Mul(mat.RotationZ(2.0))
	assert.Equal(t, want, mat.Rotate(mat.Identity4[float64](), vec.New3(0.3, -1.1, 2.0)))
}

func TestMat4Arithmetic(t *testing.T) {
	t.Parallel()

	id := mat.Identity4[int]()
	a := mat.NewMat4(rowsA)
	assert.Equal(t, a, a.Mul(id))
	assert.Equal(t, a, id.Mul(a))
	assert.Equal(t, id, a.Pow(0))
	assert.Equal(t, a.MulScalar(2), a.Add(a))

	c := a
	c.AddAssign(a)
	assert.Equal(t, a.MulScalar(2), c)
	assert.Equal(t, mat.NewMat4(rowsA), a, "value receivers leave the operand untouched")
}

func TestMat4String(t *testing.T) {
	t.Parallel()

	want := "[1, 0, 0, 0]\n[0, 1, 0, 0]\n[0, 0, 1, 0]\n[0, 0, 0, 1]\n"
	assert.Equal(t, want, mat.Identity4[uint8]().String())
	assert.Equal(t, want, mat.Identity4[uint8]().Mat().String())
}
