// SPDX-License-Identifier: MIT

package gdir

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/glacmb/internal/logging"
)

const productExt = ".yaml"

// Directory is one glacier's product folder.
type Directory struct {
	RGIID string
	Dir   string
	Meta  Metadata

	log *logging.Logger
}

// FilePath returns the file backing product.
func (d *Directory) FilePath(product string) string {
	return filepath.Join(d.Dir, product+productExt)
}

// IsProcessed reports whether product exists and decodes.
//
// Only a missing file means "not processed" (false, nil). Any other failure,
// such as a permission error or a corrupt file, is returned so the caller
// does not rebuild over a directory it cannot read.
func (d *Directory) IsProcessed(product string) (bool, error) {
	var node yaml.Node
	err := d.readProduct(product, &node)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		d.log.Debug("product not processed", "product", product)
		return false, nil
	default:
		return false, err
	}
}

// ReadGriddedData loads topography and glacier mask.
func (d *Directory) ReadGriddedData() (*GriddedData, error) {
	var f griddedFile
	if err := d.readProduct(ProductGriddedData, &f); err != nil {
		return nil, err
	}
	g, err := f.fromFile()
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", ProductGriddedData, ErrMalformedProduct, err)
	}

	return g, nil
}

// WriteGriddedData stores g, replacing any previous gridded product.
func (d *Directory) WriteGriddedData(g *GriddedData) error {
	if g == nil {
		return fmt.Errorf("%s: %w: nil data", ProductGriddedData, ErrMalformedProduct)
	}
	f, err := g.toFile()
	if err != nil {
		return fmt.Errorf("%s: %w: %w", ProductGriddedData, ErrMalformedProduct, err)
	}

	return d.writeProduct(ProductGriddedData, f)
}

// ReadFlowlines loads a flowline product (ProductModelFlowlines or
// ProductInversionFlowlines) and validates every flowline.
func (d *Directory) ReadFlowlines(product string) ([]Flowline, error) {
	var f flowlinesFile
	if err := d.readProduct(product, &f); err != nil {
		return nil, err
	}
	if len(f.Flowlines) == 0 {
		return nil, fmt.Errorf("%s: %w", product, ErrNoFlowlines)
	}
	for i, fl := range f.Flowlines {
		if err := fl.Validate(); err != nil {
			return nil, fmt.Errorf("%s: flowline %d: %w", product, i, err)
		}
	}

	return f.Flowlines, nil
}

// WriteFlowlines validates and stores fls under product.
func (d *Directory) WriteFlowlines(product string, fls []Flowline) error {
	if len(fls) == 0 {
		return fmt.Errorf("%s: %w", product, ErrNoFlowlines)
	}
	for i, fl := range fls {
		if err := fl.Validate(); err != nil {
			return fmt.Errorf("%s: flowline %d: %w", product, i, err)
		}
	}

	return d.writeProduct(product, flowlinesFile{Flowlines: fls})
}

// readProduct decodes product into v. A missing file yields
// ErrProductNotFound with fs.ErrNotExist kept in the chain.
func (d *Directory) readProduct(product string, v any) error {
	raw, err := os.ReadFile(d.FilePath(product))
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w: %w", product, ErrProductNotFound, err)
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", product, err)
	}
	if err = yaml.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%s: %w: %w", product, ErrMalformedProduct, err)
	}

	return nil
}

// writeProduct encodes v to a temp file and renames it over the product,
// so readers never observe a half-written file.
func (d *Directory) writeProduct(product string, v any) error {
	raw, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", product, err)
	}

	tmp, err := os.CreateTemp(d.Dir, product+".*.tmp")
	if err != nil {
		return fmt.Errorf("write %s: %w", product, err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err = tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", product, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", product, err)
	}
	if err = os.Rename(tmp.Name(), d.FilePath(product)); err != nil {
		return fmt.Errorf("write %s: %w", product, err)
	}
	d.log.Debug("wrote product", "product", product, "bytes", len(raw))

	return nil
}
