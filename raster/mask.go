// SPDX-License-Identifier: MIT

// Package raster - boolean glacier mask.
//
// A Mask marks which cells of a co-indexed Grid belong to the glacier.
// Layout mirrors Dense: row-major, offset = i*cols + j.

package raster

import "fmt"

const (
	ctxMaskNew       = "NewMask"
	ctxMaskNewFrom   = "NewMaskFrom"
	ctxMaskFromCodes = "MaskFromCodes"
)

// Mask is a row-major boolean grid.
type Mask struct {
	r, c int
	data []bool
}

// NewMask creates an r×c mask with every cell unset.
//
// Errors:
//   - ErrInvalidDimensions when rows or cols are not positive.
func NewMask(rows, cols int) (*Mask, error) {
	if rows <= 0 || cols <= 0 {
		return nil, rasterErrorf(ctxMaskNew, ErrInvalidDimensions)
	}

	return &Mask{r: rows, c: cols, data: make([]bool, rows*cols)}, nil
}

// NewMaskFrom builds a mask from row slices.
// Errors: ErrInvalidDimensions for empty or ragged input.
func NewMaskFrom(rows [][]bool) (*Mask, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, rasterErrorf(ctxMaskNewFrom, ErrInvalidDimensions)
	}
	cols := len(rows[0])
	m, err := NewMask(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if len(rows[i]) != cols {
			return nil, rasterErrorf(ctxMaskNewFrom, ErrInvalidDimensions)
		}
		copy(m.data[i*cols:(i+1)*cols], rows[i])
	}

	return m, nil
}

// MaskFromCodes builds a mask from an integer-coded field: a cell is set
// iff its code equals want. Gridded products store the glacier mask as 0/1
// integers, so MaskFromCodes(codes, 1) is the usual call.
func MaskFromCodes(codes [][]int, want int) (*Mask, error) {
	if len(codes) == 0 || len(codes[0]) == 0 {
		return nil, rasterErrorf(ctxMaskFromCodes, ErrInvalidDimensions)
	}
	cols := len(codes[0])
	m, err := NewMask(len(codes), cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		if len(codes[i]) != cols {
			return nil, rasterErrorf(ctxMaskFromCodes, ErrInvalidDimensions)
		}
		for j = 0; j < cols; j++ {
			m.data[i*cols+j] = codes[i][j] == want
		}
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Mask) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Mask) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Mask) Shape() (rows, cols int) { return m.r, m.c }

// At reports whether (row, col) is set.
func (m *Mask) At(row, col int) (bool, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return false, fmt.Errorf("Mask.At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return m.data[row*m.c+col], nil
}

// Set marks or clears (row, col).
func (m *Mask) Set(row, col int, v bool) error {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return fmt.Errorf("Mask.Set(%d,%d): %w", row, col, ErrOutOfRange)
	}
	m.data[row*m.c+col] = v

	return nil
}

// Count returns the number of set cells.
// Complexity: O(r*c).
func (m *Mask) Count() int {
	n := 0
	for _, v := range m.data {
		if v {
			n++
		}
	}

	return n
}
