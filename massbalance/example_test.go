// SPDX-License-Identifier: MIT

package massbalance_test

import (
	"fmt"

	"github.com/katalvlaran/glacmb/massbalance"
	"github.com/katalvlaran/glacmb/raster"
)

// ExampleNewRandomLinear shows a seeded model; the same seed and the same
// first-query order reproduce the ELA series.
func ExampleNewRandomLinear() {
	topo, _ := raster.NewDenseFrom([][]float64{{2100, 2200}, {2300, 2400}})
	mask, _ := raster.NewMaskFrom([][]bool{{true, true}, {true, true}})

	a, _ := massbalance.NewRandomLinear(topo, mask, massbalance.WithSeed(42))
	b, _ := massbalance.NewRandomLinear(topo, mask, massbalance.WithSeed(42))

	fmt.Printf("reference ELA: %.0f m\n", a.ReferenceELA())
	fmt.Println(a.ELA(2001) == b.ELA(2001))
	fmt.Println(a.AnnualMassBalance([]float64{a.ELA(2001)}, 2001))
	// Output:
	// reference ELA: 2280 m
	// true
	// [0]
}
