// SPDX-License-Identifier: MIT

package quat

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmath/mat"
	"github.com/katalvlaran/lvmath/scalar"
	"github.com/katalvlaran/lvmath/vec"
)

// Quaternion is w + xi + yj + zk.
//
// The zero value is the zero quaternion, which is not a rotation; use
// Identity for the default "no rotation" value.
type Quaternion[T scalar.Float] struct {
	W, X, Y, Z T
}

// Quat and Quatd are the single and double precision quaternions.
type (
	Quat  = Quaternion[float32]
	Quatd = Quaternion[float64]
)

// Identity is the rotation that leaves every vector unchanged.
func Identity[T scalar.Float]() Quaternion[T] {
	return Quaternion[T]{W: 1}
}

// New builds a quaternion from its scalar and vector parts.
func New[T scalar.Float](w, x, y, z T) Quaternion[T] {
	return Quaternion[T]{W: w, X: x, Y: y, Z: z}
}

// FromAxisAngle is the rotation by angle radians around axis.
// axis is expected to be of unit length; it is not normalised here.
func FromAxisAngle[T scalar.Float](axis vec.PolyVec3[T], angle T) Quaternion[T] {
	half := angle / 2
	v := axis.Scale(scalar.Sin(half))
	return Quaternion[T]{W: scalar.Cos(half), X: v.X, Y: v.Y, Z: v.Z}
}

// FromEuler converts 3-2-1 Euler angles: roll about x, pitch about y and
// yaw about z, applied yaw first.
func FromEuler[T scalar.Float](roll, pitch, yaw T) Quaternion[T] {
	cr, sr := scalar.Cos(roll/2), scalar.Sin(roll/2)
	cp, sp := scalar.Cos(pitch/2), scalar.Sin(pitch/2)
	cy, sy := scalar.Cos(yaw/2), scalar.Sin(yaw/2)
	return Quaternion[T]{
		W: cr*cp*cy + sr*sp*sy,
		X: sr*cp*cy - cr*sp*sy,
		Y: cr*sp*cy + sr*cp*sy,
		Z: cr*cp*sy - sr*sp*cy,
	}
}

// Euler returns (roll, pitch, yaw) such that FromEuler(roll, pitch, yaw)
// reproduces q for unit q; pitch is within [-π/2, π/2].
func (q Quaternion[T]) Euler() vec.PolyVec3[T] {
	roll := scalar.Atan2(2*(q.W*q.X+q.Y*q.Z), 1-2*(q.X*q.X+q.Y*q.Y))

	s := 2 * (q.W*q.Y - q.X*q.Z)
	sinp := scalar.Sqrt(scalar.Max(0, 1+s))
	cosp := scalar.Sqrt(scalar.Max(0, 1-s))
	pitch := 2*scalar.Atan2(sinp, cosp) - T(math.Pi/2)

	yaw := scalar.Atan2(2*(q.W*q.Z+q.X*q.Y), 1-2*(q.Y*q.Y+q.Z*q.Z))
	return vec.New3(roll, pitch, yaw)
}

// Vector returns the vector part (x, y, z).
func (q Quaternion[T]) Vector() vec.PolyVec3[T] { return vec.New3(q.X, q.Y, q.Z) }

// Dot is the four-component inner product.
func (q Quaternion[T]) Dot(o Quaternion[T]) T {
	return q.W*o.W + q.X*o.X + q.Y*o.Y + q.Z*o.Z
}

// Length is the Euclidean norm.
func (q Quaternion[T]) Length() T { return scalar.Sqrt(q.Dot(q)) }

// Normalized returns q scaled to unit length. The zero quaternion has no
// direction and is returned unchanged.
func (q Quaternion[T]) Normalized() Quaternion[T] {
	l := q.Length()
	if l == 0 {
		return q
	}
	return q.Scale(1 / l)
}

// Normalize scales q to unit length in place.
func (q *Quaternion[T]) Normalize() { *q = q.Normalized() }

// Conjugate negates the vector part; for unit q it is the inverse rotation.
func (q Quaternion[T]) Conjugate() Quaternion[T] {
	return Quaternion[T]{W: q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

// Inverse returns q⁻¹ = conj(q)/|q|²; the zero quaternion yields NaN or Inf.
func (q Quaternion[T]) Inverse() Quaternion[T] {
	return q.Conjugate().Scale(1 / q.Dot(q))
}

// Mul is the Hamilton product q*o: apply o first, then q.
func (q Quaternion[T]) Mul(o Quaternion[T]) Quaternion[T] {
	qv, ov := q.Vector(), o.Vector()
	v := ov.Scale(q.W).Add(qv.Scale(o.W)).Add(qv.Cross(ov))
	return Quaternion[T]{W: q.W*o.W - qv.Dot(ov), X: v.X, Y: v.Y, Z: v.Z}
}

// Add is the component-wise sum.
func (q Quaternion[T]) Add(o Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{q.W + o.W, q.X + o.X, q.Y + o.Y, q.Z + o.Z}
}

// Sub is the component-wise difference.
func (q Quaternion[T]) Sub(o Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{q.W - o.W, q.X - o.X, q.Y - o.Y, q.Z - o.Z}
}

// Scale multiplies every component by s.
func (q Quaternion[T]) Scale(s T) Quaternion[T] {
	return Quaternion[T]{q.W * s, q.X * s, q.Y * s, q.Z * s}
}

// AddAssign adds o into q.
func (q *Quaternion[T]) AddAssign(o Quaternion[T]) { *q = q.Add(o) }

// SubAssign subtracts o from q.
func (q *Quaternion[T]) SubAssign(o Quaternion[T]) { *q = q.Sub(o) }

// ScaleAssign multiplies every component of q by s.
func (q *Quaternion[T]) ScaleAssign(s T) { *q = q.Scale(s) }

// slerpLinearBelow is the angle under which Slerp falls back to a
// normalised linear blend, where sin θ would lose all precision.
const slerpLinearBelow = 1e-6

// Slerp interpolates along the great arc from q (t=0) to o (t=1):
// sin((1-t)θ)/sin θ · q + sin(tθ)/sin θ · o with cos θ = q·o.
// No hemisphere correction is applied; negate o first for the short arc.
func (q Quaternion[T]) Slerp(o Quaternion[T], t T) Quaternion[T] {
	theta := scalar.Acos(scalar.Clamp(q.Dot(o), -1, 1))
	if float64(theta) < slerpLinearBelow {
		return q.Scale(1 - t).Add(o.Scale(t)).Normalized()
	}
	s := scalar.Sin(theta)
	return q.Scale(scalar.Sin((1-t)*theta) / s).Add(o.Scale(scalar.Sin(t*theta) / s))
}

// Rotate applies the rotation to v: the vector part of q·(0, v)·conj(q).
// q must be a unit quaternion; see the package comment for the debug check.
func (q Quaternion[T]) Rotate(v vec.PolyVec3[T]) vec.PolyVec3[T] {
	if debugChecks {
		assertUnit(q)
	}
	p := Quaternion[T]{X: v.X, Y: v.Y, Z: v.Z}
	return q.Mul(p).Mul(q.Conjugate()).Vector()
}

// Matrix returns the equivalent 4×4 rotation matrix.
func (q Quaternion[T]) Matrix() mat.Mat4[T] {
	w, x, y, z := q.W, q.X, q.Y, q.Z
	return mat.NewMat4([4][4]T{
		{1 - 2*y*y - 2*z*z, 2*x*y - 2*w*z, 2*x*z + 2*w*y, 0},
		{2*x*y + 2*w*z, 1 - 2*x*x - 2*z*z, 2*y*z - 2*w*x, 0},
		{2*x*z - 2*w*y, 2*y*z + 2*w*x, 1 - 2*x*x - 2*y*y, 0},
		{0, 0, 0, 1},
	})
}

// Transformation builds the model matrix that scales by s, then rotates by
// q, then translates by t. q must be a unit quaternion.
func Transformation[T scalar.Float](t vec.PolyVec3[T], q Quaternion[T], s vec.PolyVec3[T]) mat.Mat4[T] {
	m := mat.Identity4[T]()
	m.Scale(s)
	m = q.Matrix().Mul(m)
	m.Translate(t)
	return m
}

// ApproxEqual reports every component within eps of o.
func (q Quaternion[T]) ApproxEqual(o Quaternion[T], eps T) bool {
	return scalar.Abs(q.W-o.W) <= eps && scalar.Abs(q.X-o.X) <= eps &&
		scalar.Abs(q.Y-o.Y) <= eps && scalar.Abs(q.Z-o.Z) <= eps
}

// String renders "(w; x, y, z)".
func (q Quaternion[T]) String() string {
	return fmt.Sprintf("(%v; %v, %v, %v)", q.W, q.X, q.Y, q.Z)
}
