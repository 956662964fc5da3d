// SPDX-License-Identifier: MIT

// Package raster: functional configuration for grid construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: every switch changes behavior and is covered by tests.
package raster

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set and
	// on row-slice ingestion (NewDenseFrom).
	DefaultValidateNaNInf = true
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public constructors accept `...Option`.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

// WithAllowNaN disables NaN/Inf validation on the created grid.
//
// Notes:
//   - Raw external products often carry NaN outside the glacier outline;
//     use this when ingesting them and rely on Select/Percentile to reject
//     non-finite values that fall under the mask.
func WithAllowNaN() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// defaultOptions returns Options populated with documented defaults.
func defaultOptions() Options {
	return Options{validateNaNInf: DefaultValidateNaNInf}
}

// gatherOptions applies setters in order over the defaults; nil setters are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
