package catalog

import (
	"log/slog"

	"github.com/udisondev/opticalglass/internal/buchdahl"
	"github.com/udisondev/opticalglass/internal/medium"
	"github.com/udisondev/opticalglass/internal/spectral"
)

// RobbPrefix starts the name of every Robb and Mercado (1983) sub-catalog.
const RobbPrefix = "Robb1983."

// RobbCatalogs are the vendor sub-catalogs of the 1983 Buchdahl tables.
var RobbCatalogs = []string{"SCHOTT", "OHARA", "HOYA", "CORNING-FRANCE", "CHANCE"}

type robbDef struct {
	catalog string
	name    string
	nd      float64
	nu1     float64
	nu2     float64
}

// RobbCatalog serves the quadratic Buchdahl coefficients published for
// one vendor; every glass is a *buchdahl.Model about the d line.
type RobbCatalog struct {
	table
	defs []*robbDef
}

func newRobbCatalog(vendor string) *RobbCatalog {
	var defs []*robbDef
	var names []string
	for i := range robb1983Defs {
		if d := &robb1983Defs[i]; d.catalog == vendor {
			defs = append(defs, d)
			names = append(names, d.name)
		}
	}
	c := &RobbCatalog{table: newTable(RobbPrefix+vendor, names), defs: defs}
	slog.Info("loaded glass catalog", "catalog", c.name, "glasses", len(names))
	return c
}

func (c *RobbCatalog) CreateGlass(name string) (medium.Medium, error) {
	i, err := c.GlassIndex(name)
	if err != nil {
		return nil, err
	}
	d := c.defs[i]
	wv0, err := buchdahl.WavelengthUM(spectral.Line("d"))
	if err != nil {
		return nil, err
	}
	return &buchdahl.Model{
		WV0:     wv0,
		N0:      d.nd,
		Coefs:   []float64{d.nu1, d.nu2},
		Label:   d.name,
		Catalog: c.name,
	}, nil
}

// Coefficients returns nd, ν1 and ν2 of a glass.
func (c *RobbCatalog) Coefficients(name string) (nd, nu1, nu2 float64, err error) {
	i, err := c.GlassIndex(name)
	if err != nil {
		return 0, 0, 0, err
	}
	d := c.defs[i]
	return d.nd, d.nu1, d.nu2, nil
}
