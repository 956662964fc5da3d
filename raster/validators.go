// SPDX-License-Identifier: MIT
// Package: raster
//
// Purpose:
//   - Provide a single source of truth for the shape checks shared by
//     Select and the mass-balance constructors.
//   - Return sentinel errors tagged with the validator name so call sites
//     can wrap uniformly.

package raster

// ValidateNotNil ensures both the grid and the mask are present.
// A nil *Dense stored in g counts as missing.
// Errors: ErrNilGrid.
func ValidateNotNil(g Grid, m *Mask) error {
	if g == nil || m == nil {
		return rasterErrorf("ValidateNotNil", ErrNilGrid)
	}
	if d, ok := g.(*Dense); ok && d == nil {
		return rasterErrorf("ValidateNotNil", ErrNilGrid)
	}

	return nil
}

// ValidateSameShape ensures g and m are co-indexed.
// Assumes both are non-nil (use ValidateNotNil first).
// Errors: ErrDimensionMismatch.
func ValidateSameShape(g Grid, m *Mask) error {
	if g.Rows() != m.Rows() {
		return rasterErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if g.Cols() != m.Cols() {
		return rasterErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateCoIndexed is the composite NotNil → SameShape check.
func ValidateCoIndexed(g Grid, m *Mask) error {
	if err := ValidateNotNil(g, m); err != nil {
		return err
	}

	return ValidateSameShape(g, m)
}
