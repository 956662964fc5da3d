// SPDX-License-Identifier: MIT

package massbalance_test

import (
	"testing"

	"github.com/katalvlaran/glacmb/massbalance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecificMassBalance_WidthWeighted(t *testing.T) {
	m, err := massbalance.NewLinear(2500, massbalance.WithGradient(2))
	require.NoError(t, err)

	// point balances: +200, -200, -400 mm w.e.; weights 3,1,1 → (600-200-400)/5 = 0
	heights := []float64{2600, 2400, 2300}
	widths := []float64{300, 100, 100}
	got, err := massbalance.SpecificMassBalance(m, heights, widths, 2000, massbalance.DefaultConstants())
	require.NoError(t, err)
	assert.InDelta(t, 0.0, got, 1e-9)

	got, err = massbalance.SpecificMassBalance(m, []float64{2600, 2400}, []float64{1, 1}, 2000, massbalance.DefaultConstants())
	require.NoError(t, err)
	assert.InDelta(t, 0.0, got, 1e-9)

	got, err = massbalance.SpecificMassBalance(m, []float64{2750}, []float64{40}, 2000, massbalance.DefaultConstants())
	require.NoError(t, err)
	assert.InDelta(t, 500.0, got, 1e-9)
}

func TestSpecificMassBalance_Rejects(t *testing.T) {
	m, err := massbalance.NewLinear(2500)
	require.NoError(t, err)
	c := massbalance.DefaultConstants()

	_, err = massbalance.SpecificMassBalance(m, []float64{1, 2}, []float64{1}, 0, c)
	assert.ErrorIs(t, err, massbalance.ErrInvalidInput)

	_, err = massbalance.SpecificMassBalance(m, nil, nil, 0, c)
	assert.ErrorIs(t, err, massbalance.ErrInvalidInput)

	_, err = massbalance.SpecificMassBalance(m, []float64{1, 2}, []float64{0, 0}, 0, c)
	assert.ErrorIs(t, err, massbalance.ErrInvalidInput)

	_, err = massbalance.SpecificMassBalance(m, []float64{1}, []float64{-3}, 0, c)
	assert.ErrorIs(t, err, massbalance.ErrInvalidInput)

	_, err = massbalance.SpecificMassBalance(m, []float64{1}, []float64{1}, 0, massbalance.Constants{})
	assert.ErrorIs(t, err, massbalance.ErrInvalidInput)
}
