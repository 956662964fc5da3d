// SPDX-License-Identifier: MIT

// Package raster holds gridded glacier fields: elevation grids, glacier
// masks and the statistics computed over masked cells.
//
// The raster package provides:
//
//   - Dense, a row-major float64 grid with safe At/Set accessors (errors,
//     never panics) and an optional NaN/Inf rejection policy.
//   - Mask, a same-shaped boolean grid that marks glacierized cells.
//   - Select, which extracts the values of a grid under a mask in
//     deterministic row-major order.
//   - Percentile, the linear-interpolation percentile used to pick a
//     representative elevation from a glacier's hypsometry.
//
// Shapes are (rows, cols) everywhere; index (i, j) maps to offset i*cols+j.
//
// Quick example:
//
//	topo, _ := raster.NewDenseFrom([][]float64{{2100, 2200}, {2300, 2400}})
//	mask, _ := raster.NewMaskFrom([][]bool{{true, false}, {true, true}})
//	vals, _ := raster.Select(topo, mask)   // [2100 2300 2400]
//	ela, _ := raster.Percentile(vals, 60)  // 2320
package raster
