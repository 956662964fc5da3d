// SPDX-License-Identifier: MIT

package massbalance

import (
	"maps"
	"math"
	"slices"

	"github.com/katalvlaran/glacmb/raster"
)

const opNewRandomLinear = "NewRandomLinear"

// RandomLinear is a mass balance linear in altitude whose ELA varies
// randomly from year to year.
//
// The reference ELA is a percentile of the topography under the glacier
// mask, computed once at construction. The ELA of a year is
// reference + N(0,1)·σ, drawn from the model's own stream the first time
// that year is requested and returned unchanged afterwards.
//
// A RandomLinear is not safe for concurrent use.
type RandomLinear struct {
	gradient float64
	sigmaELA float64
	refELA   float64
	consts   Constants

	rng       NormalSource
	elaByYear map[int]float64
}

// NewRandomLinear derives the reference ELA from topo under mask and
// prepares an empty per-year cache.
//
// Without WithSeed or WithSource the stream is seeded from runtime entropy:
// two such models produce different ELA series and a run cannot be replayed.
//
// Errors (all match ErrInvalidInput; raster sentinels stay in the chain):
//   - nil topo or mask, or mismatched shapes (raster.ErrNilGrid, raster.ErrDimensionMismatch).
//   - percentile NaN or outside [0, 100].
//   - mask selecting no cells (raster.ErrEmpty).
//   - non-finite topography under the mask (raster.ErrNaNInf).
//   - invalid Constants.
func NewRandomLinear(topo raster.Grid, mask *raster.Mask, opts ...Option) (*RandomLinear, error) {
	o := gatherOptions(opts...)

	if math.IsNaN(o.percentile) || o.percentile < 0 || o.percentile > 100 {
		return nil, invalidWrap(opNewRandomLinear, raster.ErrPercentileRange)
	}
	if err := o.constants.Validate(); err != nil {
		return nil, invalidWrap(opNewRandomLinear, err)
	}
	if err := raster.ValidateCoIndexed(topo, mask); err != nil {
		return nil, invalidWrap(opNewRandomLinear, err)
	}

	ref, err := raster.MaskedPercentile(topo, mask, o.percentile)
	if err != nil {
		return nil, invalidWrap(opNewRandomLinear, err)
	}

	return &RandomLinear{
		gradient:  o.gradient,
		sigmaELA:  o.sigmaELA,
		refELA:    ref,
		consts:    o.constants,
		rng:       o.newSource(),
		elaByYear: make(map[int]float64),
	}, nil
}

// ELA returns the equilibrium line altitude (m) for year.
// The first call for a year consumes one draw from the stream; later calls
// return the cached value without touching the stream. year is an opaque key.
func (m *RandomLinear) ELA(year int) float64 {
	if ela, ok := m.elaByYear[year]; ok {
		return ela
	}

	ela := m.refELA + m.rng.NormFloat64()*m.sigmaELA
	m.elaByYear[year] = ela

	return ela
}

// AnnualMassBalance returns (h - ELA(year))·gradient for every height,
// converted to m ice s-1.
func (m *RandomLinear) AnnualMassBalance(heights []float64, year int) []float64 {
	return linearRates(heights, m.ELA(year), m.gradient, m.consts)
}

// ReferenceELA returns the percentile elevation the yearly ELA varies around.
func (m *RandomLinear) ReferenceELA() float64 { return m.refELA }

// Gradient returns the mass-balance gradient (mm w.e. yr-1 m-1).
func (m *RandomLinear) Gradient() float64 { return m.gradient }

// SigmaELA returns the standard deviation of the yearly ELA (m).
func (m *RandomLinear) SigmaELA() float64 { return m.sigmaELA }

// Constants returns the unit-conversion constants in use.
func (m *RandomLinear) Constants() Constants { return m.consts }

// ValidBounds returns the altitude range (m) in which the ELA is searched.
func (m *RandomLinear) ValidBounds() (low, high float64) {
	return ValidBoundsLow, ValidBoundsHigh
}

// Years returns the years realized so far, ascending.
func (m *RandomLinear) Years() []int {
	return slices.Sorted(maps.Keys(m.elaByYear))
}
