// SPDX-License-Identifier: MIT

// Package mat: functional configuration of the numeric policy.
//
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies them in order.
package mat

import (
	"fmt"
	"math"
)

const (
	// DefaultEpsilon is the absolute tolerance of ApproxEqual.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf leaves NaN and ±Inf admissible; the codec and the
	// algebra carry them through like any other value.
	DefaultValidateNaNInf = false
)

// Options holds the resolved numeric policy. Fields are unexported; build
// it with Option values.
type Options struct {
	eps            float64
	validateNaNInf bool
}

// Option mutates Options.
type Option func(*Options)

// WithEpsilon sets the ApproxEqual tolerance.
// Panics if eps is negative, NaN or Inf.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(fmt.Sprintf("mat: WithEpsilon(%v): eps must be finite and >= 0", eps))
	}
	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf makes constructors reject NaN and ±Inf with ErrNaNInf.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf restores the default permissive policy.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

func gatherOptions(opts ...Option) Options {
	o := Options{eps: DefaultEpsilon, validateNaNInf: DefaultValidateNaNInf}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
