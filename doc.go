// Package glacmb turns preprocessed glacier directories into inputs for a
// flowline glacier model: altitude/width/thickness profiles and a
// stochastic linear surface mass balance.
//
// What is in the box?
//
//	• raster/       Dense grids and boolean masks, masked percentiles
//	• massbalance/  RandomLinear (random yearly ELA) and Linear models,
//	                unit conversion, glacier-wide specific balance
//	• gdir/         RGI ids, glacier directory store, YAML products,
//	                flowline altitude/width/thickness tables
//	• cmd/glacmb    command line: rgi-id, zwh, ela, simulate
//
// The mass-balance model in one line:
//
//	ELA(year) = p-th percentile of the glacier topography + σ·N(0,1)
//	mb(h)     = (h − ELA(year)) · gradient   [mm w.e. yr⁻¹]
//
// Each year's ELA is drawn once, on first request, and then remembered;
// with a fixed seed the same request order replays the same series.
//
//	go install github.com/katalvlaran/glacmb/cmd/glacmb@latest
package glacmb
