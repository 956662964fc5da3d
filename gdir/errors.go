// SPDX-License-Identifier: MIT

package gdir

import "errors"

var (
	// ErrInvalidRGIID is returned for ids that are not RGI v6 glacier ids.
	ErrInvalidRGIID = errors.New("gdir: invalid RGI id")

	// ErrEmptyWorkingDir is returned by NewStore for an empty root path.
	ErrEmptyWorkingDir = errors.New("gdir: working directory is empty")

	// ErrDirectoryNotFound is returned by Store.Open when no directory exists for the id.
	ErrDirectoryNotFound = errors.New("gdir: glacier directory not found")

	// ErrDirectoryExists is returned by Store.Init without reset when the directory exists.
	ErrDirectoryExists = errors.New("gdir: glacier directory already exists")

	// ErrProductNotFound is returned when a product file is missing.
	// The underlying fs.ErrNotExist stays in the chain.
	ErrProductNotFound = errors.New("gdir: product not found")

	// ErrMalformedProduct is returned when a product file cannot be decoded
	// or violates its shape contract.
	ErrMalformedProduct = errors.New("gdir: malformed product")

	// ErrNoFlowlines is returned when a flowline product holds no flowline.
	ErrNoFlowlines = errors.New("gdir: no flowlines")

	// ErrFlowlineShape is returned when a flowline's per-point arrays differ
	// in length or its grid spacing is not positive.
	ErrFlowlineShape = errors.New("gdir: inconsistent flowline")
)
