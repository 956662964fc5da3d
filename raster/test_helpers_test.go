// SPDX-License-Identifier: MIT
// Package raster_test contains shared fixtures.

package raster_test

import (
	"testing"

	"github.com/katalvlaran/glacmb/raster"
	"github.com/stretchr/testify/require"
)

// hide wraps a Grid to mask its concrete type, forcing the At fallback path.
type hide struct{ raster.Grid }

// mustDense builds a grid from rows or fails the test.
func mustDense(t *testing.T, rows [][]float64, opts ...raster.Option) *raster.Dense {
	t.Helper()
	d, err := raster.NewDenseFrom(rows, opts...)
	require.NoError(t, err)

	return d
}

// mustMask builds a mask from rows or fails the test.
func mustMask(t *testing.T, rows [][]bool) *raster.Mask {
	t.Helper()
	m, err := raster.NewMaskFrom(rows)
	require.NoError(t, err)

	return m
}
