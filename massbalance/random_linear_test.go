// SPDX-License-Identifier: MIT

package massbalance_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/glacmb/massbalance"
	"github.com/katalvlaran/glacmb/raster"
)

// RandomLinearSuite exercises construction, memoization and unit conversion.
type RandomLinearSuite struct {
	suite.Suite
	topo *raster.Dense
	mask *raster.Mask
}

func (s *RandomLinearSuite) SetupTest() {
	s.topo, s.mask = glacierFixture(s.T())
}

func (s *RandomLinearSuite) newModel(opts ...massbalance.Option) *massbalance.RandomLinear {
	m, err := massbalance.NewRandomLinear(s.topo, s.mask, opts...)
	require.NoError(s.T(), err)
	return m
}

// TestReferenceELAIsMaskedPercentile checks the reference against the raster statistic.
func (s *RandomLinearSuite) TestReferenceELAIsMaskedPercentile() {
	m := s.newModel(massbalance.WithSeed(1))
	require.Equal(s.T(), 2400.0, m.ReferenceELA())

	for _, p := range []float64{0, 12.5, 33, 60, 87.5, 100} {
		vals, err := raster.Select(s.topo, s.mask)
		require.NoError(s.T(), err)
		want, err := raster.Percentile(vals, p)
		require.NoError(s.T(), err)

		got := s.newModel(massbalance.WithPercentile(p), massbalance.WithSeed(1)).ReferenceELA()
		require.InDelta(s.T(), want, got, 1e-9, "p=%v", p)
	}
	require.Equal(s.T(), 2100.0, s.newModel(massbalance.WithPercentile(0)).ReferenceELA())
	require.Equal(s.T(), 2700.0, s.newModel(massbalance.WithPercentile(100)).ReferenceELA())
}

// TestDeterminism: same seed, same ascending years → identical series.
func (s *RandomLinearSuite) TestDeterminism() {
	a := s.newModel(massbalance.WithSeed(2024))
	b := s.newModel(massbalance.WithSeed(2024))

	for y := 1990; y < 2010; y++ {
		require.Equal(s.T(), a.ELA(y), b.ELA(y), "year %d", y)
	}

	c := s.newModel(massbalance.WithSeed(2025))
	require.NotEqual(s.T(), a.ELA(1990), c.ELA(1990), "different seeds must differ")
}

// TestMemoizationDrawsOncePerYear counts draws on the owned stream.
func (s *RandomLinearSuite) TestMemoizationDrawsOncePerYear() {
	src := &countingSource{inner: massbalance.NewSource(7)}
	m := s.newModel(massbalance.WithSource(src))

	first := m.ELA(2000)
	second := m.ELA(2000)
	require.Equal(s.T(), first, second)
	require.Equal(s.T(), 1, src.calls)

	_ = m.AnnualMassBalance([]float64{2500}, 2000)
	require.Equal(s.T(), 1, src.calls, "cached year must not draw")

	_ = m.AnnualMassBalance([]float64{2500}, 2001)
	require.Equal(s.T(), 2, src.calls)
	require.Equal(s.T(), []int{2000, 2001}, m.Years())
}

// TestFirstQueryOrderDecidesDraws: [5, 3] versus [3, 5] swap the draws.
func (s *RandomLinearSuite) TestFirstQueryOrderDecidesDraws() {
	a := s.newModel(massbalance.WithSeed(99))
	b := s.newModel(massbalance.WithSeed(99))

	a5, a3 := a.ELA(5), a.ELA(3)
	b3, b5 := b.ELA(3), b.ELA(5)

	require.NotEqual(s.T(), a3, b3)
	require.Equal(s.T(), a5, b3, "first draw goes to the first year asked")
	require.Equal(s.T(), a3, b5)
}

// TestELAFormula uses scripted samples to pin reference + sample·σ.
func (s *RandomLinearSuite) TestELAFormula() {
	src := &fixedSource{samples: []float64{1.5, -2}}
	m := s.newModel(massbalance.WithSource(src), massbalance.WithSigmaELA(50))

	require.Equal(s.T(), 2475.0, m.ELA(-12))
	require.Equal(s.T(), 2300.0, m.ELA(1_000_000))
	require.Equal(s.T(), 2475.0, m.ELA(-12))
}

// TestZeroBalanceAtELA holds regardless of gradient or constants.
func (s *RandomLinearSuite) TestZeroBalanceAtELA() {
	cases := []massbalance.Option{
		massbalance.WithGradient(3),
		massbalance.WithGradient(-7.25),
		massbalance.WithConstants(massbalance.Constants{SecondsPerYear: 1, IceDensity: 917}),
	}
	for _, opt := range cases {
		m := s.newModel(opt, massbalance.WithSeed(3))
		ela := m.ELA(1850)
		require.Equal(s.T(), []float64{0}, m.AnnualMassBalance([]float64{ela}, 1850))
	}
}

// TestUnitConversion checks mm w.e. yr-1 → m ice s-1.
func (s *RandomLinearSuite) TestUnitConversion() {
	src := &fixedSource{samples: []float64{0}}
	m := s.newModel(massbalance.WithSource(src), massbalance.WithGradient(3))

	got := m.AnnualMassBalance([]float64{2500, 2350, 2400}, 2000)
	require.Len(s.T(), got, 3)
	sec := massbalance.DefaultSecondsPerYear
	rho := massbalance.DefaultIceDensity
	require.InDelta(s.T(), 300/sec/rho, got[0], 1e-18)
	require.InDelta(s.T(), -150/sec/rho, got[1], 1e-18)
	require.Equal(s.T(), 0.0, got[2])
}

// TestShapePreservation: N in, N out; empty in, empty out.
func (s *RandomLinearSuite) TestShapePreservation() {
	m := s.newModel(massbalance.WithSeed(11))

	heights := []float64{3000, 1000, 2400, 2400, 0, -50}
	out := m.AnnualMassBalance(heights, 1)
	require.Len(s.T(), out, len(heights))
	require.Greater(s.T(), out[0], out[2], "higher is more positive for a positive gradient")

	empty := m.AnnualMassBalance(nil, 1)
	require.NotNil(s.T(), empty)
	require.Empty(s.T(), empty)
}

// TestRejection covers the construction errors.
func (s *RandomLinearSuite) TestRejection() {
	none, err := raster.NewMask(3, 3)
	require.NoError(s.T(), err)
	_, err = massbalance.NewRandomLinear(s.topo, none)
	require.ErrorIs(s.T(), err, massbalance.ErrInvalidInput)
	require.ErrorIs(s.T(), err, raster.ErrEmpty)

	_, err = massbalance.NewRandomLinear(s.topo, s.mask, massbalance.WithPercentile(150))
	require.ErrorIs(s.T(), err, massbalance.ErrInvalidInput)
	require.ErrorIs(s.T(), err, raster.ErrPercentileRange)

	_, err = massbalance.NewRandomLinear(s.topo, s.mask, massbalance.WithPercentile(-1))
	require.ErrorIs(s.T(), err, massbalance.ErrInvalidInput)

	wide, err := raster.NewMask(3, 4)
	require.NoError(s.T(), err)
	_, err = massbalance.NewRandomLinear(s.topo, wide)
	require.ErrorIs(s.T(), err, massbalance.ErrInvalidInput)
	require.ErrorIs(s.T(), err, raster.ErrDimensionMismatch)

	_, err = massbalance.NewRandomLinear(nil, s.mask)
	require.ErrorIs(s.T(), err, raster.ErrNilGrid)

	var noTopo *raster.Dense
	_, err = massbalance.NewRandomLinear(noTopo, s.mask)
	require.ErrorIs(s.T(), err, massbalance.ErrInvalidInput)
	require.ErrorIs(s.T(), err, raster.ErrNilGrid)

	_, err = massbalance.NewRandomLinear(s.topo, s.mask,
		massbalance.WithConstants(massbalance.Constants{SecondsPerYear: 0, IceDensity: 900}))
	require.ErrorIs(s.T(), err, massbalance.ErrInvalidInput)
}

// TestAccessors covers the read-only surface.
func (s *RandomLinearSuite) TestAccessors() {
	m := s.newModel(massbalance.WithGradient(4), massbalance.WithSigmaELA(25))
	require.Equal(s.T(), 4.0, m.Gradient())
	require.Equal(s.T(), 25.0, m.SigmaELA())
	require.Equal(s.T(), massbalance.DefaultConstants(), m.Constants())
	lo, hi := m.ValidBounds()
	require.Equal(s.T(), -1e4, lo)
	require.Equal(s.T(), 2e4, hi)
	require.Empty(s.T(), m.Years())
}

func TestRandomLinearSuite(t *testing.T) {
	suite.Run(t, new(RandomLinearSuite))
}
