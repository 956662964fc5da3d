// SPDX-License-Identifier: MIT

// Package massbalance: functional options for model constructors.
//
// Design goals:
//   - Documented defaults in one place (Default* constants).
//   - Panic only on nonsensical option values (programmer error); values a
//     user can legitimately get wrong at runtime (percentile, constants) are
//     validated by the constructor and reported as ErrInvalidInput.
package massbalance

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultGradient is the mass-balance gradient in mm w.e. yr-1 m-1.
	DefaultGradient = 3.0

	// DefaultPercentile picks the reference ELA from the glacier hypsometry.
	DefaultPercentile = 60.0

	// DefaultSigmaELA is the standard deviation of the yearly ELA in m.
	DefaultSigmaELA = 100.0
)

// ValidBoundsLow and ValidBoundsHigh bound the altitudes (m) at which a host
// driver may search for the ELA of a RandomLinear model.
const (
	ValidBoundsLow  = -1e4
	ValidBoundsHigh = 2e4
)

// ---------- Internal panic messages ----------

const (
	panicGradientInvalid = "massbalance: WithGradient: gradient must be finite"
	panicSigmaInvalid    = "massbalance: WithSigmaELA: sigma must be finite, non-negative"
	panicSourceNil       = "massbalance: WithSource: source must not be nil"
)

// Option configures a model constructor.
type Option func(*options)

type options struct {
	gradient   float64
	percentile float64
	sigmaELA   float64
	constants  Constants

	seed    uint64
	hasSeed bool
	source  NormalSource
}

// WithGradient sets the mass-balance gradient (mm w.e. yr-1 m-1).
// Panics if grad is NaN or ±Inf.
func WithGradient(grad float64) Option {
	if math.IsNaN(grad) || math.IsInf(grad, 0) {
		panic(panicGradientInvalid)
	}

	return func(o *options) { o.gradient = grad }
}

// WithPercentile sets the percentile of the masked topography used as the
// reference ELA. Values outside [0, 100] are rejected by the constructor.
func WithPercentile(p float64) Option {
	return func(o *options) { o.percentile = p }
}

// WithSigmaELA sets the standard deviation of the yearly ELA (m).
// Panics if sigma is negative or non-finite. Zero yields a constant ELA.
func WithSigmaELA(sigma float64) Option {
	if math.IsNaN(sigma) || math.IsInf(sigma, 0) || sigma < 0 {
		panic(panicSigmaInvalid)
	}

	return func(o *options) { o.sigmaELA = sigma }
}

// WithSeed makes the random stream reproducible.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
		o.hasSeed = true
	}
}

// WithSource hands the model its own random stream. The model takes
// ownership: the source must not be shared. Overrides WithSeed.
func WithSource(src NormalSource) Option {
	if src == nil {
		panic(panicSourceNil)
	}

	return func(o *options) { o.source = src }
}

// WithConstants overrides the unit-conversion constants.
func WithConstants(c Constants) Option {
	return func(o *options) { o.constants = c }
}

func gatherOptions(opts ...Option) options {
	o := options{
		gradient:   DefaultGradient,
		percentile: DefaultPercentile,
		sigmaELA:   DefaultSigmaELA,
		constants:  DefaultConstants(),
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
