// SPDX-License-Identifier: MIT

package quat_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gquat "gonum.org/v1/gonum/num/quat"

	"github.com/katalvlaran/lvmath/bin"
	"github.com/katalvlaran/lvmath/quat"
	"github.com/katalvlaran/lvmath/scalar"
)

func TestCodecLayout(t *testing.T) {
	t.Parallel()

	c := quat.Codec(bin.For[float32]())
	require.Equal(t, 16, c.Width())
	require.Equal(t, scalar.F32, c.(bin.Kinded).Kind())

	b := bin.Encode(c, quat.New[float32](1, 2, -2, 0.5))
	assert.Equal(t, []byte{
		0x3f, 0x80, 0, 0, // w
		0x40, 0, 0, 0, // x
		0xc0, 0, 0, 0, // y
		0x3f, 0, 0, 0, // z
	}, b)
}

func TestCodecRoundTrip(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(11))
	c := quat.Codec(bin.For[float64]())
	for n := 0; n < 200; n++ {
		q := quat.New(r.NormFloat64(), r.NormFloat64(), r.NormFloat64(), r.NormFloat64())
		assert.Equal(t, q, bin.Decode(c, bin.Encode(c, q)))
	}

	nan := quat.New(math.NaN(), 0, math.Inf(1), math.Inf(-1))
	got := bin.Decode(c, bin.Encode(c, nan))
	assert.Equal(t, math.Float64bits(nan.W), math.Float64bits(got.W))
	assert.True(t, math.IsInf(got.Y, 1))
}

func TestMarshalBinary(t *testing.T) {
	t.Parallel()

	q := quat.FromEuler[float32](0.1, 0.2, 0.3)
	b, err := q.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, b, 16)

	var back quat.Quat
	require.NoError(t, back.UnmarshalBinary(b))
	assert.Equal(t, q, back)

	err = back.UnmarshalBinary(b[:15])
	require.ErrorIs(t, err, bin.ErrShortInput)
	err = back.UnmarshalBinary(append(b, 0))
	require.ErrorIs(t, err, bin.ErrTrailingInput)
}

func TestMulAgainstGonum(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(3))
	for n := 0; n < 200; n++ {
		a := quat.New(r.NormFloat64(), r.NormFloat64(), r.NormFloat64(), r.NormFloat64())
		b := quat.New(r.NormFloat64(), r.NormFloat64(), r.NormFloat64(), r.NormFloat64())
		ga := gquat.Number{Real: a.W, Imag: a.X, Jmag: a.Y, Kmag: a.Z}
		gb := gquat.Number{Real: b.W, Imag: b.X, Jmag: b.Y, Kmag: b.Z}

		want := gquat.Mul(ga, gb)
		got := a.Mul(b)
		require.InDelta(t, want.Real, got.W, 1e-12)
		require.InDelta(t, want.Imag, got.X, 1e-12)
		require.InDelta(t, want.Jmag, got.Y, 1e-12)
		require.InDelta(t, want.Kmag, got.Z, 1e-12)

		wantConj := gquat.Conj(ga)
		assert.Equal(t, quat.New(wantConj.Real, wantConj.Imag, wantConj.Jmag, wantConj.Kmag), a.Conjugate())
		assert.InDelta(t, gquat.Abs(ga), a.Length(), 1e-12)
	}
}
