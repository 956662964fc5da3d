// SPDX-License-Identifier: MIT

package gdir

// ZWH is a glacier's altitude (Z, m), width (W, m) and ice thickness (H, m)
// along its model flowlines, concatenated head to terminus and flowline
// after flowline. DX is the grid spacing (m) of the last flowline.
type ZWH struct {
	Z  []float64
	W  []float64
	H  []float64
	DX float64
}

// Len returns the number of points.
func (t *ZWH) Len() int { return len(t.Z) }

// GlacierZWH extracts the altitude/width/thickness table from the model
// flowlines of d.
func GlacierZWH(d *Directory) (*ZWH, error) {
	fls, err := d.ReadFlowlines(ProductModelFlowlines)
	if err != nil {
		return nil, err
	}

	out := &ZWH{}
	for _, fl := range fls {
		out.Z = append(out.Z, fl.SurfaceH...)
		out.W = append(out.W, fl.WidthsM...)
		out.H = append(out.H, fl.Thick...)
		out.DX = fl.DXMeter
	}

	return out, nil
}
