// SPDX-License-Identifier: MIT

package scalar

import (
	"math"

	"github.com/chewxy/math32"
)

// RadiansToDegrees converts an angle in radians to degrees when multiplied.
const RadiansToDegrees = 180 / math.Pi

// DegreesToRadians is the inverse factor of RadiansToDegrees.
const DegreesToRadians = math.Pi / 180

// apply runs f32 on float32 values and f64 on everything else.
// Integer results are truncated by the native conversion.
func apply[T Number](v T, f32 func(float32) float32, f64 func(float64) float64) T {
	if x, ok := any(v).(float32); ok {
		return T(f32(x))
	}
	return T(f64(float64(v)))
}

// The elementary functions below run in float32 for float32 arguments and
// in float64 otherwise; integer kinds are converted back by truncation.

// Sqrt returns the square root of v. Negative floats give NaN.
func Sqrt[T Number](v T) T { return apply(v, math32.Sqrt, math.Sqrt) }

// Sin returns the sine of v radians.
func Sin[T Number](v T) T { return apply(v, math32.Sin, math.Sin) }

// Cos returns the cosine of v radians.
func Cos[T Number](v T) T { return apply(v, math32.Cos, math.Cos) }

// Tan returns the tangent of v radians.
func Tan[T Number](v T) T { return apply(v, math32.Tan, math.Tan) }

// Asin returns the arcsine of v in radians.
func Asin[T Number](v T) T { return apply(v, math32.Asin, math.Asin) }

// Acos returns the arccosine of v in radians.
func Acos[T Number](v T) T { return apply(v, math32.Acos, math.Acos) }

// Atan returns the arctangent of v in radians.
func Atan[T Number](v T) T { return apply(v, math32.Atan, math.Atan) }

// Sinh returns the hyperbolic sine of v.
func Sinh[T Number](v T) T { return apply(v, math32.Sinh, math.Sinh) }

// Cosh returns the hyperbolic cosine of v.
func Cosh[T Number](v T) T { return apply(v, math32.Cosh, math.Cosh) }

// Tanh returns the hyperbolic tangent of v.
func Tanh[T Number](v T) T { return apply(v, math32.Tanh, math.Tanh) }

// Floor returns the greatest integer value not above v.
func Floor[T Number](v T) T { return apply(v, math32.Floor, math.Floor) }

// Ceil returns the least integer value not below v.
func Ceil[T Number](v T) T { return apply(v, math32.Ceil, math.Ceil) }

// Abs returns |v|. The result for the most negative signed value is
// out of range and therefore unspecified.
func Abs[T Number](v T) T { return apply(v, math32.Abs, math.Abs) }

// Asinh returns the inverse hyperbolic sine of v.
func Asinh[T Number](v T) T { return apply(v, math32.Asinh, math.Asinh) }

// Acosh returns the inverse hyperbolic cosine of v.
func Acosh[T Number](v T) T { return apply(v, math32.Acosh, math.Acosh) }

// Atanh returns the inverse hyperbolic tangent of v.
func Atanh[T Number](v T) T { return apply(v, math32.Atanh, math.Atanh) }

// Round rounds half away from zero.
func Round[T Number](v T) T { return apply(v, math32.Round, math.Round) }

// Atan2 returns the angle of the point (x, y).
func Atan2[T Number](y, x T) T {
	if fy, ok := any(y).(float32); ok {
		return T(math32.Atan2(fy, any(x).(float32)))
	}
	return T(math.Atan2(float64(y), float64(x)))
}

// Clamp limits v to [lo, hi].
func Clamp[T Number](v, lo, hi T) T {
	return Min(Max(v, lo), hi)
}
