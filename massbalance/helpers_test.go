// SPDX-License-Identifier: MIT

package massbalance_test

import (
	"testing"

	"github.com/katalvlaran/glacmb/massbalance"
	"github.com/katalvlaran/glacmb/raster"
	"github.com/stretchr/testify/require"
)

// countingSource records how many samples the model pulls.
type countingSource struct {
	inner massbalance.NormalSource
	calls int
}

func (c *countingSource) NormFloat64() float64 {
	c.calls++
	return c.inner.NormFloat64()
}

// fixedSource replays a scripted sequence of samples.
type fixedSource struct {
	samples []float64
	next    int
}

func (f *fixedSource) NormFloat64() float64 {
	v := f.samples[f.next]
	f.next++
	return v
}

// glacierFixture returns a 3x3 topography whose masked cells are
// 2100 2200 2300 2400 2500 2700 (60th percentile = 2400).
func glacierFixture(t *testing.T) (*raster.Dense, *raster.Mask) {
	t.Helper()

	topo, err := raster.NewDenseFrom([][]float64{
		{2000, 2100, 2200},
		{2300, 2400, 2500},
		{2600, 2700, 2800},
	})
	require.NoError(t, err)
	mask, err := raster.NewMaskFrom([][]bool{
		{false, true, true},
		{true, true, true},
		{false, true, false},
	})
	require.NoError(t, err)

	return topo, mask
}
