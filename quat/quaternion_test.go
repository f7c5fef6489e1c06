// SPDX-License-Identifier: MIT

package quat_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/mat"
	"github.com/katalvlaran/lvmath/quat"
	"github.com/katalvlaran/lvmath/vec"
)

const eps = 1e-12

func TestIdentityLeavesVectorsUnchanged(t *testing.T) {
	t.Parallel()

	id := quat.Identity[float32]()
	for _, v := range []vec.Vec3{{}, {X: 1}, {X: 1, Y: -2, Z: 3.5}, {X: 1e6, Y: -1e-6, Z: 42}} {
		assert.Equal(t, v, id.Rotate(v))
	}
	assert.Equal(t, quat.Quat{W: 1}, id)
	assert.Equal(t, float32(1), id.Length())
}

func TestFromAxisAngleRotates(t *testing.T) {
	t.Parallel()

	q := quat.FromAxisAngle(vec.UnitZ3[float64](), math.Pi/2)
	got := q.Rotate(vec.UnitX3[float64]())
	assert.True(t, got.ApproxEqual(vec.UnitY3[float64](), eps), "got %v", got)

	half := quat.FromAxisAngle(vec.UnitX3[float64](), math.Pi)
	assert.True(t, half.Rotate(vec.New3(0.0, 1, 0)).ApproxEqual(vec.New3(0.0, -1, 0), eps))
}

func TestHamiltonProduct(t *testing.T) {
	t.Parallel()

	i := quat.New(0.0, 1, 0, 0)
	j := quat.New(0.0, 0, 1, 0)
	k := quat.New(0.0, 0, 0, 1)
	minusOne := quat.New(-1.0, 0, 0, 0)

	assert.Equal(t, k, i.Mul(j))
	assert.Equal(t, i, j.Mul(k))
	assert.Equal(t, j, k.Mul(i))
	assert.Equal(t, k.Scale(-1), j.Mul(i))
	assert.Equal(t, minusOne, i.Mul(i))
	assert.Equal(t, minusOne, i.Mul(j).Mul(k))

	// composition: rotating by b then a equals rotating by a*b
	a := quat.FromAxisAngle(vec.UnitZ3[float64](), 0.3)
	b := quat.FromAxisAngle(vec.New3(1.0, 1, 0).Normalized(), 1.1)
	v := vec.New3(0.5, -2, 3)
	assert.True(t, a.Mul(b).Rotate(v).ApproxEqual(a.Rotate(b.Rotate(v)), 1e-9))
}

func TestEulerRoundTrip(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(5))
	for n := 0; n < 500; n++ {
		roll := (r.Float64()*2 - 1) * math.Pi * 0.99
		pitch := (r.Float64()*2 - 1) * math.Pi / 2 * 0.99
		yaw := (r.Float64()*2 - 1) * math.Pi * 0.99
		e := quat.FromEuler(roll, pitch, yaw).Euler()
		require.InDelta(t, roll, e.X, 1e-6)
		require.InDelta(t, pitch, e.Y, 1e-6)
		require.InDelta(t, yaw, e.Z, 1e-6)
	}

	assert.True(t, quat.FromEuler(0.0, 0, 0).ApproxEqual(quat.Identity[float64](), eps))
	yawOnly := quat.FromEuler(0.0, 0, math.Pi/2)
	assert.True(t, yawOnly.ApproxEqual(quat.FromAxisAngle(vec.UnitZ3[float64](), math.Pi/2), eps))
}

func TestLengthNormalizeConjugate(t *testing.T) {
	t.Parallel()

	q := quat.New(1.0, 2, 3, 4)
	assert.InDelta(t, math.Sqrt(30), q.Length(), eps)
	assert.Equal(t, 30.0, q.Dot(q))
	assert.Equal(t, quat.New(1.0, -2, -3, -4), q.Conjugate())
	assert.InDelta(t, 1.0, q.Normalized().Length(), eps)

	q.Normalize()
	assert.InDelta(t, 1.0, q.Length(), eps)
	assert.True(t, q.Mul(q.Inverse()).ApproxEqual(quat.Identity[float64](), eps))
	assert.True(t, q.Inverse().ApproxEqual(q.Conjugate(), eps))

	var zero quat.Quatd
	assert.Equal(t, zero, zero.Normalized())
	assert.Equal(t, vec.New3(2.0, 3, 4), quat.New(1.0, 2, 3, 4).Vector())
}

func TestArithmetic(t *testing.T) {
	t.Parallel()

	a, b := quat.New[float32](1, 2, 3, 4), quat.New[float32](4, 3, 2, 1)
	assert.Equal(t, quat.New[float32](5, 5, 5, 5), a.Add(b))
	assert.Equal(t, quat.New[float32](-3, -1, 1, 3), a.Sub(b))
	assert.Equal(t, quat.New[float32](2, 4, 6, 8), a.Scale(2))

	c := a
	c.AddAssign(b)
	c.SubAssign(b)
	c.ScaleAssign(3)
	assert.Equal(t, a.Scale(3), c)
}

func TestSlerp(t *testing.T) {
	t.Parallel()

	a := quat.Identity[float64]()
	b := quat.FromAxisAngle(vec.UnitZ3[float64](), math.Pi/2)

	assert.True(t, a.Slerp(b, 0).ApproxEqual(a, eps))
	assert.True(t, a.Slerp(b, 1).ApproxEqual(b, eps))
	mid := a.Slerp(b, 0.5)
	assert.True(t, mid.ApproxEqual(quat.FromAxisAngle(vec.UnitZ3[float64](), math.Pi/4), eps), "mid %v", mid)
	assert.InDelta(t, 1.0, mid.Length(), eps)

	// coincident endpoints take the linear path instead of dividing by sin 0
	same := a.Slerp(a, 0.3)
	assert.True(t, same.ApproxEqual(a, eps))
}

func TestMatrixMatchesRotate(t *testing.T) {
	t.Parallel()

	q := quat.FromEuler(0.4, -0.7, 1.9)
	m := q.Matrix()
	v := vec.New3(1.5, -0.25, 2)
	assert.True(t, m.TransformPoint(v).ApproxEqual(q.Rotate(v), 1e-12))
	assert.Equal(t, mat.Identity4[float32](), quat.Identity[float32]().Matrix())

	// rotation matrices are orthonormal: m * mᵀ = I
	prod := m.Mul(m.Transpose())
	id := mat.Identity4[float64]()
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			assert.InDelta(t, id[c][r], prod[c][r], 1e-12)
		}
	}
}

func TestAxisRotationsMatchQuaternions(t *testing.T) {
	t.Parallel()

	for _, angle := range []float64{-2.5, -0.3, 0, 0.9, math.Pi / 2, 3} {
		cases := []struct {
			axis vec.Vec3d
			m    mat.Mat4[float64]
		}{
			{vec.UnitX3[float64](), mat.RotationX(angle)},
			{vec.UnitY3[float64](), mat.RotationY(angle)},
			{vec.UnitZ3[float64](), mat.RotationZ(angle)},
		}
		for _, tc := range cases {
			want := quat.FromAxisAngle(tc.axis, angle).Matrix()
			for c := 0; c < 4; c++ {
				for r := 0; r < 4; r++ {
					assert.InDelta(t, want[c][r], tc.m[c][r], 1e-12, "axis %v angle %v", tc.axis, angle)
				}
			}
		}
	}
}

func TestTransformation(t *testing.T) {
	t.Parallel()

	tr := vec.New3(3.0, -1, 0.5)
	q := quat.FromEuler(0.2, 1.1, -0.6)
	s := vec.New3(2.0, 0.5, 4)
	m := quat.Transformation(tr, q, s)

	for _, p := range []vec.Vec3d{vec.Zero3[float64](), vec.New3(1.0, 2, 3), vec.New3(-0.5, 0, 7)} {
		want := q.Rotate(p.Mul(s)).Add(tr)
		assert.True(t, m.TransformPoint(p).ApproxEqual(want, 1e-12), "point %v", p)
	}
	assert.Equal(t, mat.Identity4[float64](),
		quat.Transformation(vec.Zero3[float64](), quat.Identity[float64](), vec.One3[float64]()))
}

func TestZeroValueIsNotIdentity(t *testing.T) {
	t.Parallel()

	var zero quat.Quatd
	assert.Zero(t, zero.Length())
	assert.NotEqual(t, quat.Identity[float64](), zero)
	assert.Equal(t, 1.0, quat.Identity[float64]().Length())
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "(1; 0, -2, 0.5)", quat.New(1.0, 0, -2, 0.5).String())
}

func TestMatrixInverseIsTranspose(t *testing.T) {
	t.Parallel()

	m := quat.FromAxisAngle(vec.New3(1.0, 2, 2).Normalized(), 0.8).Matrix()
	inv, err := mat.Inverse4(m)
	require.NoError(t, err)
	tr := m.Transpose()
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			assert.InDelta(t, tr[c][r], inv[c][r], 1e-12)
		}
	}
}
