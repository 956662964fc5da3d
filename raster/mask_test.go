// SPDX-License-Identifier: MIT

package raster_test

import (
	"testing"

	"github.com/katalvlaran/glacmb/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMask_FromRowsAndCount(t *testing.T) {
	t.Parallel()

	m := mustMask(t, [][]bool{{true, false, true}, {false, false, true}})
	assert.Equal(t, 3, m.Count())

	set, err := m.At(1, 2)
	require.NoError(t, err)
	assert.True(t, set)

	require.NoError(t, m.Set(1, 2, false))
	assert.Equal(t, 2, m.Count())

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, raster.ErrOutOfRange)
}

func TestMaskFromCodes(t *testing.T) {
	t.Parallel()

	m, err := raster.MaskFromCodes([][]int{{0, 1}, {1, 2}}, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Count())

	v, _ := m.At(1, 1)
	assert.False(t, v, "code 2 is not glacier")

	_, err = raster.MaskFromCodes([][]int{{0, 1}, {1}}, 1)
	assert.ErrorIs(t, err, raster.ErrInvalidDimensions)
}

func TestNewMask_InvalidDimensions(t *testing.T) {
	t.Parallel()

	_, err := raster.NewMask(0, 2)
	assert.ErrorIs(t, err, raster.ErrInvalidDimensions)
	_, err = raster.NewMaskFrom([][]bool{})
	assert.ErrorIs(t, err, raster.ErrInvalidDimensions)
}
