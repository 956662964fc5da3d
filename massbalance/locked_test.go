// SPDX-License-Identifier: MIT

package massbalance_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/glacmb/massbalance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLocked_ConcurrentQueriesDrawOncePerYear hammers a shared model.
func TestLocked_ConcurrentQueriesDrawOncePerYear(t *testing.T) {
	topo, mask := glacierFixture(t)
	src := &countingSource{inner: massbalance.NewSource(5)}
	inner, err := massbalance.NewRandomLinear(topo, mask, massbalance.WithSource(src))
	require.NoError(t, err)
	m := massbalance.NewLocked(inner)

	const workers, years = 8, 50
	results := make([][]float64, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			row := make([]float64, years)
			for y := 0; y < years; y++ {
				row[y] = m.ELA(y)
				_ = m.AnnualMassBalance([]float64{2400}, y)
			}
			results[w] = row
		}(w)
	}
	wg.Wait()

	assert.Equal(t, years, src.calls)
	for w := 1; w < workers; w++ {
		assert.Equal(t, results[0], results[w])
	}
}
