// SPDX-License-Identifier: MIT

package gdir

import (
	"fmt"

	"github.com/katalvlaran/glacmb/raster"
)

// Product names; each maps to <name>.yaml inside the glacier directory.
const (
	ProductGlacier            = "glacier"
	ProductGriddedData        = "gridded_data"
	ProductModelFlowlines     = "model_flowlines"
	ProductInversionFlowlines = "inversion_flowlines"
)

// glacierMaskCode marks glacier cells in the gridded glacier_mask field.
const glacierMaskCode = 1

// Metadata describes the glacier a directory belongs to.
type Metadata struct {
	RGIID       string `yaml:"rgi_id"`
	Name        string `yaml:"name,omitempty"`
	IsTidewater bool   `yaml:"is_tidewater"`
	Border      int    `yaml:"border"` // map border in grid cells around the outline
}

// GriddedData is the topography product: smoothed elevation and glacier mask
// on the same grid, with cell size DX in metres.
type GriddedData struct {
	DX   float64
	Topo *raster.Dense
	Mask *raster.Mask
}

type griddedFile struct {
	DX   float64     `yaml:"dx"`
	Topo [][]float64 `yaml:"topo_smoothed"`
	Mask [][]int     `yaml:"glacier_mask"`
}

// Flowline is one flowline of a flowline product; point arrays run from the
// head of the flowline downstream and share one length.
type Flowline struct {
	DXMeter  float64   `yaml:"dx_meter"`
	SurfaceH []float64 `yaml:"surface_h"`
	WidthsM  []float64 `yaml:"widths_m"`
	Thick    []float64 `yaml:"thick"`
}

type flowlinesFile struct {
	Flowlines []Flowline `yaml:"flowlines"`
}

// Validate checks the per-point arrays agree in length and DXMeter > 0.
func (f Flowline) Validate() error {
	n := len(f.SurfaceH)
	if len(f.WidthsM) != n || len(f.Thick) != n {
		return fmt.Errorf("%w: %d heights, %d widths, %d thicknesses",
			ErrFlowlineShape, n, len(f.WidthsM), len(f.Thick))
	}
	if !(f.DXMeter > 0) {
		return fmt.Errorf("%w: dx_meter %v", ErrFlowlineShape, f.DXMeter)
	}

	return nil
}

// toFile flattens a GriddedData into its on-disk form.
func (g *GriddedData) toFile() (griddedFile, error) {
	if err := raster.ValidateCoIndexed(g.Topo, g.Mask); err != nil {
		return griddedFile{}, err
	}
	rows, cols := g.Topo.Shape()
	out := griddedFile{
		DX:   g.DX,
		Topo: make([][]float64, rows),
		Mask: make([][]int, rows),
	}
	for i := 0; i < rows; i++ {
		out.Topo[i] = make([]float64, cols)
		out.Mask[i] = make([]int, cols)
	}
	g.Topo.Do(func(i, j int, v float64) bool {
		out.Topo[i][j] = v
		return true
	})
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			set, err := g.Mask.At(i, j)
			if err != nil {
				return griddedFile{}, err
			}
			if set {
				out.Mask[i][j] = glacierMaskCode
			}
		}
	}

	return out, nil
}

// fromFile rebuilds GriddedData; NaN topography is allowed outside the mask.
func (f griddedFile) fromFile() (*GriddedData, error) {
	topo, err := raster.NewDenseFrom(f.Topo, raster.WithAllowNaN())
	if err != nil {
		return nil, err
	}
	mask, err := raster.MaskFromCodes(f.Mask, glacierMaskCode)
	if err != nil {
		return nil, err
	}
	if err = raster.ValidateSameShape(topo, mask); err != nil {
		return nil, err
	}

	return &GriddedData{DX: f.DX, Topo: topo, Mask: mask}, nil
}
