// SPDX-License-Identifier: MIT

// Package raster: read-only grid contract consumed by statistics and models.
package raster

// Grid is the read-only view of a 2-D elevation field.
// Consumers (Select, mass-balance models) only read through this surface,
// so external products can be adapted without copying into a Dense.
//
// Complexity notes: all methods are expected O(1).
type Grid interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At retrieves the value at (i, j).
	// Returns ErrOutOfRange if the indices are invalid.
	At(i, j int) (float64, error)
}

// Compile-time assertion: *Dense satisfies Grid.
var _ Grid = (*Dense)(nil)
