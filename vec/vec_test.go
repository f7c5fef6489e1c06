// SPDX-License-Identifier: MIT

package vec_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/scalar"
	"github.com/katalvlaran/lvmath/vec"
)

func TestConstruction(t *testing.T) {
	t.Parallel()

	assert.Equal(t, vec.New3(12, 12, 12), vec.Fill3(12))
	assert.Equal(t, vec.Vec4{X: 1, Y: 1, Z: 1, W: 1}, vec.One4[float32]())
	assert.True(t, vec.Zero2[int8]().IsZero())
	assert.True(t, vec.One3[uint16]().IsOne())
	assert.False(t, vec.UnitY3[float64]().IsOne())
	assert.Equal(t, vec.New4(0, 0, 0, 1), vec.UnitW4[int]())
	assert.Equal(t, vec.New2(0.0, 1.0), vec.UnitY2[float64]())

	v := vec.FromArray3([3]int32{4, 5, 6})
	assert.Equal(t, vec.Vec3i{X: 4, Y: 5, Z: 6}, v)
	assert.Equal(t, [3]int32{4, 5, 6}, v.Array())
	x, y, z := v.Components()
	assert.Equal(t, []int32{4, 5, 6}, []int32{x, y, z})
}

func TestArithmeticFixture(t *testing.T) {
	t.Parallel()

	v := vec.New3[float32](1, 2, 3)
	assert.InDelta(t, math.Sqrt(14), float64(v.Magnitude()), 1e-6)
	assert.Equal(t, float32(14), v.SquareMagnitude())
	assert.Equal(t, vec.New3[float32](2, 3, 4), v.AddScalar(1))
	assert.Equal(t, vec.New3[float32](-1, 1, 3), v.Sub(vec.New3[float32](2, 1, 0)))
	assert.Equal(t, v.Scale(2), v.Add(v))
	assert.Equal(t, vec.New3[float32](0, 1, 2), v.SubScalar(1))
	assert.Equal(t, vec.New3[float32](1, 4, 9), v.Mul(v))
	assert.Equal(t, vec.New3[float32](0.5, 1, 1.5), v.Div(2))
	assert.Equal(t, vec.One3[float32](), v.DivVec(v))
	assert.Equal(t, vec.New3[float32](-1, -2, -3), v.Neg())
	assert.Equal(t, float32(14), v.Dot(v))
}

func TestAssignForms(t *testing.T) {
	t.Parallel()

	v := vec.New4(1, 2, 3, 4)
	v.AddAssign(vec.Fill4(1))
	assert.Equal(t, vec.New4(2, 3, 4, 5), v)
	v.SubAssign(vec.New4(2, 2, 2, 2))
	assert.Equal(t, vec.New4(0, 1, 2, 3), v)
	v.MulAssign(vec.New4(5, 5, 1, 1))
	assert.Equal(t, vec.New4(0, 5, 2, 3), v)
	v.ScaleAssign(2)
	assert.Equal(t, vec.New4(0, 10, 4, 6), v)
	v.DivAssign(2)
	assert.Equal(t, vec.New4(0, 5, 2, 3), v)
	v.RemAssign(2)
	assert.Equal(t, vec.New4(0, 1, 0, 1), v)
}

func TestRemainder(t *testing.T) {
	t.Parallel()

	assert.Equal(t, vec.New3(1, -1, 2), vec.New3(7, -7, 8).Rem(3))
	assert.Equal(t, vec.New2(1.5, 0.5), vec.New2(7.5, 2.5).RemVec(vec.New2(3.0, 2.0)))
	assert.Panics(t, func() { vec.New2(1, 1).Rem(0) })
	assert.Panics(t, func() { vec.New2(1, 1).Div(0) })
}

func TestBitwise(t *testing.T) {
	t.Parallel()

	v := vec.New2[uint8](0xF0, 0x0F)
	assert.Equal(t, vec.New2[uint8](0x30, 0x0C), v.AndScalar(0x3C))
	assert.Equal(t, vec.New2[uint8](0xFC, 0x3F), v.OrScalar(0x3C))
	assert.Equal(t, vec.New2[uint8](0xCC, 0x33), v.XorScalar(0x3C))
	assert.Equal(t, vec.New2[uint8](0xE0, 0x3C), v.Shl(vec.New2[uint8](1, 2)))
	assert.Equal(t, vec.New2[uint8](0x78, 0x03), v.Shr(vec.New2[uint8](1, 2)))
	assert.Equal(t, vec.New2[uint8](0x00, 0x0F), v.And(vec.New2[uint8](0x0F, 0xFF)))
	assert.Equal(t, vec.New2[uint8](0xFF, 0xFF), v.Or(vec.New2[uint8](0x0F, 0xF0)))
	assert.Equal(t, vec.New2[uint8](0xFF, 0x00), v.Xor(vec.New2[uint8](0x0F, 0x0F)))

	s := vec.New3[int16](-8, 8, -1)
	assert.Equal(t, vec.New3[int16](-4, 4, -1), s.ShrScalar(1)) // arithmetic shift
	assert.Equal(t, vec.New3[int16](-16, 16, -2), s.ShlScalar(1))

	require.PanicsWithError(t, scalar.ErrNotInteger.Error(), func() { vec.Fill3[float32](1).AndScalar(1) })
}

func TestWrappingAndUnsignedNeg(t *testing.T) {
	t.Parallel()

	assert.Equal(t, vec.New2[uint8](255, 0), vec.New2[uint8](1, 0).Neg())
	assert.Equal(t, vec.New2[int8](-128, 0), vec.New2[int8](127, 0).AddScalar(1).Sub(vec.New2[int8](0, 1)))
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, vec.Zero3[float32](), vec.Zero3[float32]().Normalized())
	assert.Equal(t, vec.Zero3[float64](), vec.Zero3[float64]().Normalized())
	assert.Equal(t, vec.Zero2[float64](), vec.Zero2[float64]().Normalized())
	assert.Equal(t, vec.Zero4[float32](), vec.Zero4[float32]().Normalized())

	v := vec.New3(3.0, 0, 4)
	v.Normalize()
	assert.Equal(t, vec.New3(0.6, 0, 0.8), v)
	assert.InDelta(t, 1.0, v.Magnitude(), 1e-12)

	// integer vectors truncate
	assert.Equal(t, 5, vec.New2(3, 4).Magnitude())
	assert.Equal(t, vec.Zero2[int](), vec.New2(3, 4).Normalized())
}

func TestCross(t *testing.T) {
	t.Parallel()

	x, y, z := vec.UnitX3[float32](), vec.UnitY3[float32](), vec.UnitZ3[float32]()
	assert.Equal(t, z, x.Cross(y))
	assert.Equal(t, x, y.Cross(z))
	assert.Equal(t, y, z.Cross(x))
	assert.Equal(t, z.Neg(), y.Cross(x))
	assert.Equal(t, vec.New3(-3, 6, -3), vec.New3(1, 2, 3).Cross(vec.New3(4, 5, 6)))
}

func TestAngle(t *testing.T) {
	t.Parallel()

	x, y := vec.UnitX3[float64](), vec.UnitY3[float64]()
	assert.InDelta(t, math.Pi/2, x.Angle(y), 1e-12)
	assert.InDelta(t, math.Pi/2, x.AngleNormalized(y), 1e-12)
	assert.InDelta(t, math.Pi/4, vec.New2(1.0, 0).Angle(vec.New2(2.0, 2.0)), 1e-12)
	assert.InDelta(t, 0.0, float64(vec.Vec2{X: 5}.Angle(vec.Vec2{X: 1})), 1e-6)
}

func TestCast(t *testing.T) {
	t.Parallel()

	assert.Equal(t, vec.New3[uint8](255, 255, 255), vec.Cast3[uint8](vec.Fill3(int8(-1))))
	assert.Equal(t, vec.New2[int32](1, -2), vec.Cast2[int32](vec.New2(1.9, -2.7)))
	assert.Equal(t, vec.Vec4d{X: 1, Y: 2, Z: 3, W: 4}, vec.Cast4[float64](vec.New4[uint64](1, 2, 3, 4)))
}

func TestIndexing(t *testing.T) {
	t.Parallel()

	v := vec.New4(10, 20, 30, 40)
	for i, want := range []int{10, 20, 30, 40} {
		assert.Equal(t, want, v.At(i))
	}
	v.Set(2, 33)
	*v.Ptr(3)++
	assert.Equal(t, vec.New4(10, 20, 33, 41), v)

	require.PanicsWithValue(t, "vec: index 3 out of range for PolyVec3", func() { vec.Zero3[int]().At(3) })
	require.PanicsWithValue(t, "vec: index -1 out of range for PolyVec2", func() {
		w := vec.Zero2[int]()
		w.Set(-1, 0)
	})
	assert.Panics(t, func() { vec.Zero4[int]().At(4) })
}

func TestTrigAndRounding(t *testing.T) {
	t.Parallel()

	v := vec.New3(0.0, math.Pi/2, math.Pi)
	assert.True(t, v.Sin().ApproxEqual(vec.New3(0.0, 1, 0), 1e-12))
	assert.True(t, v.Cos().ApproxEqual(vec.New3(1.0, 0, -1), 1e-12))
	assert.True(t, v.Cos().Acos().ApproxEqual(v, 1e-12))

	r := vec.New4[float32](1.5, -1.5, 2.4, -0.2)
	assert.Equal(t, vec.New4[float32](2, -2, 2, -0), r.Round())
	assert.Equal(t, vec.New4[float32](1, -2, 2, -1), r.Floor())
	assert.Equal(t, vec.New4[float32](2, -1, 3, -0), r.Ceil())
	assert.Equal(t, vec.New4[float32](1.5, 1.5, 2.4, 0.2), r.Abs())
	assert.Equal(t, vec.New2(2.0, 4.0), vec.New2(1.0, 2.0).Map(func(x float64) float64 { return 2 * x }))
}

func TestLerpAndApprox(t *testing.T) {
	t.Parallel()

	a, b := vec.Zero2[float64](), vec.New2(10.0, -10.0)
	assert.Equal(t, vec.New2(2.5, -2.5), a.Lerp(b, 0.25))
	assert.True(t, vec.New2[uint8](3, 9).ApproxEqual(vec.New2[uint8](5, 8), 2))
	assert.False(t, vec.New2[uint8](3, 9).ApproxEqual(vec.New2[uint8](5, 8), 1))
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "[1, 2.5, -3]", vec.New3[float32](1, 2.5, -3).String())
	assert.Equal(t, "[1, 2]", vec.New2(1, 2).String())
	assert.Equal(t, "[0, 0, 0, 255]", vec.New4[uint8](0, 0, 0, 255).String())
}

func TestExtend(t *testing.T) {
	t.Parallel()

	assert.Equal(t, vec.New4(1, 2, 3, 4), vec.New2(1, 2).Extend(3).Extend(4))
}
