// SPDX-License-Identifier: MIT

// Package gdir is a file-based store of glacier directories.
//
// A glacier directory holds the products a preprocessing toolkit leaves
// behind for one glacier, one YAML file per product:
//
//	<working_dir>/per_glacier/RGI60-11/RGI60-11.00/RGI60-11.00897/
//	    glacier.yaml              metadata (id, name, tidewater flag, border)
//	    gridded_data.yaml         dx, topo_smoothed, glacier_mask
//	    model_flowlines.yaml      flowlines used by the dynamical model
//	    inversion_flowlines.yaml  flowlines used by the thickness inversion
//
// Ids follow RGI v6 ("RGI60-RR.NNNNN"); NormalizeRGIID accepts the short
// "RR.NNNNN" form as well.
//
// Probing whether a product exists (Directory.IsProcessed) only treats a
// missing file as "not processed". Permission problems and undecodable
// files are reported as errors instead of silently triggering a rebuild.
package gdir
