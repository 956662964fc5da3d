// SPDX-License-Identifier: MIT

package massbalance

// Model is the contract a glacier evolution driver calls once per timestep.
//
// AnnualMassBalance returns, for each height (m), the annual mass balance as
// a rate in metres of ice per second. The result has the same length and
// order as heights; empty input yields an empty, non-nil slice.
type Model interface {
	AnnualMassBalance(heights []float64, year int) []float64
}

// ELAModel is a Model whose balance is anchored on a per-year equilibrium
// line altitude.
type ELAModel interface {
	Model

	// ELA returns the equilibrium line altitude (m) for year.
	ELA(year int) float64
}

// Compile-time conformance.
var (
	_ ELAModel = (*RandomLinear)(nil)
	_ ELAModel = (*Linear)(nil)
	_ ELAModel = (*Locked)(nil)
)

// linearRates evaluates (h - ela)·grad for every height and converts to m ice s-1.
func linearRates(heights []float64, ela, grad float64, c Constants) []float64 {
	out := make([]float64, len(heights))
	for i, h := range heights {
		out[i] = c.toRate((h - ela) * grad)
	}

	return out
}
