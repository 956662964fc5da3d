// SPDX-License-Identifier: MIT

package raster_test

import (
	"fmt"

	"github.com/katalvlaran/glacmb/raster"
)

// ExampleMaskedPercentile picks a reference elevation from glacier cells only.
func ExampleMaskedPercentile() {
	topo, _ := raster.NewDenseFrom([][]float64{{2100, 2200}, {2300, 2400}})
	mask, _ := raster.NewMaskFrom([][]bool{{true, false}, {true, true}})

	ela, _ := raster.MaskedPercentile(topo, mask, 60)
	fmt.Printf("%.0f\n", ela)
	// Output: 2320
}
