// SPDX-License-Identifier: MIT

// Package scalar: functional configuration of the numeric comparison policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithEpsilon constructor with strong validation (panic on nonsensical values),
//   - Close, the tolerant comparison every ApproxEqual method delegates to.
//
// Notes:
//   - Exact float equality is the default semantics of every Equal method in
//     linmath. Tolerance is opt-in and applies only to ApproxEqual.
//   - No global state: each call resolves its own Options.
package scalar

import (
	"github.com/chewxy/math32"
)

// DefaultEpsilon is the tolerance used by Close when no option overrides it.
// It is sized for single-precision results of a few chained operations.
const DefaultEpsilon float32 = 1e-5

const panicEpsilonInvalid = "scalar: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; resolve with NewOptions.
type Options struct {
	eps float32 // >= 0; DefaultEpsilon
}

// WithEpsilon sets the comparison tolerance.
// Panics if eps is negative, NaN or ±Inf (programmer error).
func WithEpsilon(eps float32) Option {
	if !IsFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// NewOptions resolves opts on top of the defaults.
func NewOptions(opts ...Option) Options {
	o := Options{eps: DefaultEpsilon}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Epsilon returns the resolved tolerance.
func (o Options) Epsilon() float32 { return o.eps }

// Close reports whether a and b agree within the configured epsilon, either
// absolutely or relative to the larger magnitude. Equal infinities compare
// close; NaN never does.
func Close(a, b float32, opts ...Option) bool {
	if a == b {
		return true
	}
	if !IsFinite(a) || !IsFinite(b) {
		return false
	}

	eps := NewOptions(opts...).eps
	diff := math32.Abs(a - b)
	if diff <= eps {
		return true
	}

	return diff <= eps*math32.Max(math32.Abs(a), math32.Abs(b))
}

// CloseAll applies Close pairwise. Slices of different length are never close.
func CloseAll(a, b []float32, opts ...Option) bool {
	if len(a) != len(b) {
		return false
	}
	o := NewOptions(opts...)
	for i := range a {
		if !Close(a[i], b[i], WithEpsilon(o.eps)) {
			return false
		}
	}

	return true
}
