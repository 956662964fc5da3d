// SPDX-License-Identifier: MIT

package massbalance

import "math"

const (
	// DefaultSecondsPerYear is a 365-day year.
	DefaultSecondsPerYear = 365 * 24 * 3600.0

	// DefaultIceDensity is the ice density in kg m-3.
	DefaultIceDensity = 900.0
)

// Constants are the physical scalars used for unit conversion.
// They belong to the host configuration; models only read them.
type Constants struct {
	SecondsPerYear float64 // s yr-1
	IceDensity     float64 // kg m-3
}

// DefaultConstants returns the documented defaults.
func DefaultConstants() Constants {
	return Constants{SecondsPerYear: DefaultSecondsPerYear, IceDensity: DefaultIceDensity}
}

// Validate reports ErrInvalidInput unless both constants are finite and positive.
func (c Constants) Validate() error {
	if !isFinite(c.SecondsPerYear) || c.SecondsPerYear <= 0 {
		return invalidf("Constants", "seconds per year %v", c.SecondsPerYear)
	}
	if !isFinite(c.IceDensity) || c.IceDensity <= 0 {
		return invalidf("Constants", "ice density %v", c.IceDensity)
	}

	return nil
}

// toRate converts mm w.e. yr-1 (kg m-2 yr-1) into m ice s-1.
func (c Constants) toRate(mb float64) float64 {
	return mb / c.SecondsPerYear / c.IceDensity
}

// fromRate converts m ice s-1 back into mm w.e. yr-1.
func (c Constants) fromRate(rate float64) float64 {
	return rate * c.SecondsPerYear * c.IceDensity
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
