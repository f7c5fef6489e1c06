// SPDX-License-Identifier: MIT

// Package quat implements quaternions over float32 and float64 for 3-D
// rotation: construction from an axis-angle pair or 3-2-1 Euler angles,
// the Hamilton product, conjugation, normalisation, spherical interpolation
// and conversion to a 4×4 rotation matrix.
//
// A Quaternion is the value w + xi + yj + zk with W the scalar part and
// (X, Y, Z) the vector part. The zero value is not a rotation; start from
// Identity.
//
// Rotate assumes a unit quaternion. Builds tagged lvmath_debug check that
// assumption (|q| within [0.9, 1.1]) and panic when it fails; release builds
// skip the check:
//
//	go test -tags lvmath_debug ./quat/...
package quat
