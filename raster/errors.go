// SPDX-License-Identifier: MIT
// Package raster: sentinel error set.
// Every exported function returns one of these sentinels (possibly wrapped
// with an operation tag via rasterErrorf); callers match with errors.Is.

package raster

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that requested grid dimensions are non-positive
	// or that a row-slice input is ragged.
	ErrInvalidDimensions = errors.New("raster: dimensions must be > 0 and rectangular")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("raster: index out of range")

	// ErrDimensionMismatch indicates that two grids expected to be co-indexed
	// (e.g. topography and mask) have different shapes.
	ErrDimensionMismatch = errors.New("raster: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("raster: NaN or Inf encountered")

	// ErrNilGrid indicates that a nil grid or mask was passed in.
	ErrNilGrid = errors.New("raster: nil grid")

	// ErrEmpty is returned when a statistic is requested over zero values,
	// e.g. a percentile over a mask that selects no cells.
	ErrEmpty = errors.New("raster: empty selection")

	// ErrPercentileRange is returned when a percentile lies outside [0, 100].
	ErrPercentileRange = errors.New("raster: percentile must be in [0, 100]")
)

// rasterErrorf prefixes err with an operation tag, preserving the sentinel.
func rasterErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
