// SPDX-License-Identifier: MIT

//go:build !lvmath_debug

package quat

const debugChecks = false
