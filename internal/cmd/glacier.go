// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/katalvlaran/glacmb/gdir"
	"github.com/katalvlaran/glacmb/massbalance"
)

// openProcessed opens the directory for id and checks that product exists.
func (a *app) openProcessed(id, product string) (*gdir.Directory, error) {
	d, err := a.store.Open(id)
	if err != nil {
		return nil, err
	}
	ok, err := d.IsProcessed(product)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s has no %s", errNotProcessed, d.RGIID, product)
	}
	return d, nil
}

// buildModel derives a RandomLinear model from the gridded data of d.
func (a *app) buildModel(d *gdir.Directory) (*massbalance.RandomLinear, error) {
	g, err := d.ReadGriddedData()
	if err != nil {
		return nil, err
	}
	m, err := massbalance.NewRandomLinear(g.Topo, g.Mask, a.cfg.ModelOptions()...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", d.RGIID, err)
	}

	a.log.WithGlacier(d.RGIID).Info("mass-balance model ready",
		"reference_ela_m", m.ReferenceELA(),
		"percentile", a.cfg.Model.Percentile,
		"gradient", m.Gradient(),
		"sigma_ela_m", m.SigmaELA(),
		"seeded", a.cfg.Model.Seeded,
	)
	if !a.cfg.Model.Seeded {
		a.log.Warn("model.seeded is false: ELA series will not be reproducible")
	}
	return m, nil
}
