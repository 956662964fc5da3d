// SPDX-License-Identifier: MIT

// Package massbalance provides surface mass-balance models that a glacier
// evolution driver queries once per simulated year.
//
// Every model satisfies Model:
//
//	AnnualMassBalance(heights []float64, year int) []float64
//
// taking surface elevations in metres and returning ice-equivalent rates in
// metres of ice per second, one per height, in input order. Models that are
// driven by an equilibrium line altitude also expose ELA(year), see ELAModel.
//
// Strategies:
//
//   - RandomLinear: linear in altitude around an ELA that varies randomly
//     from year to year. The reference ELA is a percentile of the glacier's
//     masked topography; each year's ELA is reference + N(0,1)·σ, drawn the
//     first time the year is asked for and memoized afterwards.
//   - Linear: the same gradient law around a fixed ELA.
//   - Locked: a mutex-guarded wrapper for sharing any ELAModel across goroutines.
//
// RandomLinear draws exactly one sample per distinct year, in the order
// years are first queried. Asking for 2005 before 2003 therefore assigns the
// first draw to 2005; two runs reproduce each other only when they query
// years in the same first-time order.
//
// Models are not safe for concurrent use; wrap them with NewLocked.
package massbalance
