// SPDX-License-Identifier: MIT

package massbalance

const opNewLinear = "NewLinear"

// Linear is a mass balance linear in altitude around a fixed ELA.
// Only WithGradient and WithConstants apply to it.
type Linear struct {
	ela      float64
	gradient float64
	consts   Constants
}

// NewLinear builds a Linear model. ela must be finite.
func NewLinear(ela float64, opts ...Option) (*Linear, error) {
	o := gatherOptions(opts...)
	if !isFinite(ela) {
		return nil, invalidf(opNewLinear, "ela %v", ela)
	}
	if err := o.constants.Validate(); err != nil {
		return nil, invalidWrap(opNewLinear, err)
	}

	return &Linear{ela: ela, gradient: o.gradient, consts: o.constants}, nil
}

// ELA returns the fixed equilibrium line altitude; year is ignored.
func (m *Linear) ELA(int) float64 { return m.ela }

// AnnualMassBalance returns (h - ELA)·gradient in m ice s-1.
func (m *Linear) AnnualMassBalance(heights []float64, _ int) []float64 {
	return linearRates(heights, m.ela, m.gradient, m.consts)
}
