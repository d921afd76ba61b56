// SPDX-License-Identifier: MIT

// Package affine: functional numeric options.
// A single epsilon governs every approximate comparison and degeneracy guard
// in the package; there are no other tolerance constants. Options are applied
// per call, so two goroutines may use different tolerances on their own
// matrices without coordination.
package affine

import "math"

// DefaultEpsilon is the tolerance used when no WithEpsilon option is given.
// It is scoped to float32 storage: roughly 80 ulps at 1.0.
const DefaultEpsilon = 1e-5

// DefaultMaxIterations bounds iterative routines such as PolarRotation.
const DefaultMaxIterations = 32

const (
	panicEpsilonInvalid    = "affine: WithEpsilon: eps must be finite, non-negative"
	panicMaxIterationsZero = "affine: WithMaxIterations: n must be > 0"
)

// Option mutates Options. Options compose; the last writer wins.
type Option func(*Options)

// Options holds the effective numeric policy for one call.
// Fields are unexported; use the WithX constructors.
type Options struct {
	eps     float64 // >= 0; DefaultEpsilon
	maxIter int     // > 0; DefaultMaxIterations
}

// WithEpsilon sets the tolerance used by IsAffine, ApproxEqual and every
// degeneracy check.
//
// Panics when eps is NaN, ±Inf or negative.
//
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithMaxIterations bounds the number of steps taken by iterative routines.
// Panics when n <= 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterationsZero)
	}

	return func(o *Options) { o.maxIter = n }
}

// Epsilon returns the resolved tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// MaxIterations returns the resolved iteration budget.
func (o Options) MaxIterations() int { return o.maxIter }

// Resolve applies opts over the defaults and returns the effective policy.
// It lets callers outside the package log or persist the values in use.
func Resolve(opts ...Option) Options { return gatherOptions(opts...) }

// gatherOptions applies user options over the documented defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:     DefaultEpsilon,
		maxIter: DefaultMaxIterations,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins
	}

	return o
}
