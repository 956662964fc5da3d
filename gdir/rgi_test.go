// SPDX-License-Identifier: MIT

package gdir_test

import (
	"testing"

	"github.com/katalvlaran/glacmb/gdir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRGIID(t *testing.T) {
	t.Parallel()

	valid := map[string]string{
		"11.00897":       "RGI60-11.00897",
		"RGI60-11.00897": "RGI60-11.00897",
		"1.00013":        "RGI60-01.00013",
		"1.42":           "RGI60-01.00042",
		"  15.03473  ":   "RGI60-15.03473",
		"RGI60-19.00001": "RGI60-19.00001",
	}
	for in, want := range valid {
		got, err := gdir.NormalizeRGIID(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	invalid := []string{
		"", "11", "11.", ".00897", "RGI60-", "RGI50-11.00897",
		"20.00001", "0.00001", "11.008970", "1a.00897", "11.00-97", "111.00001",
	}
	for _, in := range invalid {
		_, err := gdir.NormalizeRGIID(in)
		assert.ErrorIs(t, err, gdir.ErrInvalidRGIID, "%q", in)
	}
}
