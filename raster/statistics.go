// SPDX-License-Identifier: MIT
// Package: raster
//
// Purpose:
//   - Masked selection over a grid and the hypsometric percentile built on it.
//
// Exposed API:
//   - Select(g, m)          -> values   // masked cells, row-major order
//   - Percentile(values, p) -> float64  // linear interpolation between order statistics
//   - MaskedPercentile(g, m, p)          // Select followed by Percentile
//
// Determinism:
//   - Fixed i→j traversal; Percentile sorts a private copy, inputs are never mutated.

package raster

import (
	"math"
	"sort"
)

const (
	opSelect           = "Select"
	opPercentile       = "Percentile"
	opMaskedPercentile = "MaskedPercentile"
)

// Select returns the values of g at every cell set in m, in row-major order.
// Implementation:
//   - Stage 1: validate co-indexing (nil, shape).
//   - Stage 2: Dense fast-path reads the flat buffer; other grids go through At.
//
// Errors:
//   - ErrNilGrid, ErrDimensionMismatch (wrapped with "Select").
//   - Wrapped At errors from the fallback path.
//
// Complexity:
//   - Time O(r*c), Space O(k) for k selected cells.
func Select(g Grid, m *Mask) ([]float64, error) {
	if err := ValidateCoIndexed(g, m); err != nil {
		return nil, rasterErrorf(opSelect, err)
	}

	out := make([]float64, 0, m.Count())
	if d, ok := g.(*Dense); ok {
		for idx, set := range m.data {
			if set {
				out = append(out, d.data[idx])
			}
		}

		return out, nil
	}

	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if !m.data[i*m.c+j] {
				continue
			}
			v, err := g.At(i, j)
			if err != nil {
				return nil, rasterErrorf(opSelect, err)
			}
			out = append(out, v)
		}
	}

	return out, nil
}

// Percentile returns the p-th percentile of values, p in [0, 100].
//
// The rank is h = (n-1)·p/100 over the ascending order statistics x₀..xₙ₋₁;
// the result is x⌊h⌋ + (h-⌊h⌋)·(x⌊h⌋₊₁ - x⌊h⌋). p=0 gives the minimum,
// p=100 the maximum, p=50 the usual median.
//
// Errors:
//   - ErrEmpty when values is empty.
//   - ErrPercentileRange when p is NaN or outside [0, 100].
//   - ErrNaNInf when any value is non-finite.
//
// Complexity:
//   - Time O(n log n), Space O(n).
func Percentile(values []float64, p float64) (float64, error) {
	if math.IsNaN(p) || p < 0 || p > 100 {
		return 0, rasterErrorf(opPercentile, ErrPercentileRange)
	}
	n := len(values)
	if n == 0 {
		return 0, rasterErrorf(opPercentile, ErrEmpty)
	}

	sorted := make([]float64, n)
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, rasterErrorf(opPercentile, ErrNaNInf)
		}
		sorted[i] = v
	}
	sort.Float64s(sorted)

	h := float64(n-1) * p / 100
	lo := int(math.Floor(h))
	if lo >= n-1 {
		return sorted[n-1], nil
	}
	frac := h - float64(lo)

	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo]), nil
}

// MaskedPercentile is Select followed by Percentile.
// An all-false mask yields ErrEmpty.
func MaskedPercentile(g Grid, m *Mask, p float64) (float64, error) {
	vals, err := Select(g, m)
	if err != nil {
		return 0, rasterErrorf(opMaskedPercentile, err)
	}
	v, err := Percentile(vals, p)
	if err != nil {
		return 0, rasterErrorf(opMaskedPercentile, err)
	}

	return v, nil
}
