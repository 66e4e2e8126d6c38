package catalog

import (
	"cmp"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/udisondev/opticalglass/internal/dispersion"
	"github.com/udisondev/opticalglass/internal/glasserr"
	"github.com/udisondev/opticalglass/internal/medium"
)

// catalogDef is a generated vendor table.
type catalogDef struct {
	name    string
	glasses []glassDef
}

// glassDef is one row of a vendor table (generated from data/catalogs).
type glassDef struct {
	name         string
	formula      dispersion.Formula
	coefs        []float64
	indices      map[string]float64
	vd           float64
	ve           float64
	density      float64
	transmission []transmissionDef // 10 mm internal transmittance
}

type transmissionDef struct {
	wvl float64
	tau float64
}

// GlassCatalog is a vendor catalog backed by a generated table.
type GlassCatalog struct {
	table
	defs []glassDef
}

func newGlassCatalog(def *catalogDef) (*GlassCatalog, error) {
	names := make([]string, len(def.glasses))
	for i := range def.glasses {
		g := &def.glasses[i]
		if err := g.formula.Validate(g.coefs); err != nil {
			return nil, fmt.Errorf("%s glass %s: %w", def.name, g.name, err)
		}
		names[i] = g.name
	}
	c := &GlassCatalog{table: newTable(def.name, names), defs: def.glasses}
	slog.Info("loaded glass catalog", "catalog", def.name, "glasses", len(names))
	return c, nil
}

// CreateGlass returns the glass named exactly (ignoring case) name.
func (c *GlassCatalog) CreateGlass(name string) (medium.Medium, error) {
	return c.Glass(name)
}

// Glass is CreateGlass with the concrete type.
func (c *GlassCatalog) Glass(name string) (*Glass, error) {
	i, err := c.GlassIndex(name)
	if err != nil {
		return nil, err
	}
	return &Glass{catalog: c.name, def: &c.defs[i]}, nil
}

// Coefs returns a copy of the dispersion coefficients of a glass.
func (c *GlassCatalog) Coefs(name string) (dispersion.Formula, []float64, error) {
	i, err := c.GlassIndex(name)
	if err != nil {
		return dispersion.Unknown, nil, err
	}
	d := &c.defs[i]
	return d.formula, slices.Clone(d.coefs), nil
}

// GlassData returns a named data item of a glass: "nd", "ne", "vd", "ve",
// "density", "n<line>" for any tabulated line, or a coefficient label
// from CoefLabels.
func (c *GlassCatalog) GlassData(name, item string) (float64, error) {
	i, err := c.GlassIndex(name)
	if err != nil {
		return 0, err
	}
	d := &c.defs[i]
	if v, ok := d.item(item); ok {
		return v, nil
	}
	return 0, &glasserr.DataNotFoundError{Catalog: c.name, Glass: d.name, Item: item}
}

func (d *glassDef) item(item string) (float64, bool) {
	switch item {
	case "vd":
		return d.vd, true
	case "ve":
		return d.ve, true
	case "density":
		return d.density, d.density != 0
	}
	if line, ok := strings.CutPrefix(item, "n"); ok {
		v, ok := d.indices[line]
		return v, ok
	}
	coefs := d.coefs
	if d.formula == dispersion.Hoya12 {
		coefs = dispersion.DecodeHoya(coefs)
	}
	if i := slices.Index(CoefLabels(d.formula), item); i >= 0 && i < len(coefs) {
		return coefs[i], true
	}
	return 0, false
}

// CoefLabels names the coefficients of a formula in storage order. Hoya
// labels refer to the decoded Schott coefficients.
func CoefLabels(f dispersion.Formula) []string {
	switch f {
	case dispersion.Sellmeier3:
		return []string{"K1", "L1", "K2", "L2", "K3", "L3"}
	case dispersion.Schott, dispersion.Hoya12:
		return []string{"A0", "A1", "A2", "A3", "A4", "A5"}
	case dispersion.Hikari9:
		labels := make([]string, 9)
		for i := range labels {
			labels[i] = "A" + strconv.Itoa(i)
		}
		return labels
	}
	return nil
}

// MeasuredIndices returns the tabulated index of every glass at a line,
// in catalog order. Glasses without that line get NaN.
func (c *GlassCatalog) MeasuredIndices(line string) []float64 {
	out := make([]float64, len(c.defs))
	for i := range c.defs {
		v, ok := c.defs[i].indices[line]
		if !ok {
			v = math.NaN()
		}
		out[i] = v
	}
	return out
}

// Glass is a catalog glass: a formula tag plus coefficients, with the
// vendor's measured indices and transmittance alongside.
type Glass struct {
	catalog string
	def     *glassDef
}

func (g *Glass) Name() string { return g.def.name }

func (g *Glass) CatalogName() string { return g.catalog }

func (g *Glass) Formula() dispersion.Formula { return g.def.formula }

func (g *Glass) Coefs() []float64 { return slices.Clone(g.def.coefs) }

func (g *Glass) CalcRindex(wvNM float64) (float64, error) {
	return dispersion.Eval(g.def.formula, wvNM, g.def.coefs)
}

func (g *Glass) CalcRindexAll(wvsNM []float64) ([]float64, error) {
	return dispersion.EvalAll(g.def.formula, wvsNM, g.def.coefs)
}

// MeasRindex returns the vendor's tabulated index at a spectral line.
func (g *Glass) MeasRindex(line string) (float64, error) {
	v, ok := g.def.indices[line]
	if !ok {
		return math.NaN(), &glasserr.DataNotFoundError{Catalog: g.catalog, Glass: g.def.name, Item: "n" + line}
	}
	return v, nil
}

// TransmissionData scales the 10 mm internal transmittance to
// thicknessMM as τ^(t/10), sorted by wavelength.
func (g *Glass) TransmissionData(thicknessMM float64) ([]medium.Transmittance, error) {
	if len(g.def.transmission) == 0 {
		return nil, fmt.Errorf("%s %s: %w", g.catalog, g.def.name, glasserr.ErrNoTransmissionData)
	}
	out := make([]medium.Transmittance, len(g.def.transmission))
	for i, t := range g.def.transmission {
		out[i] = medium.Transmittance{WavelengthNM: t.wvl, Tau: math.Pow(t.tau, thicknessMM/10)}
	}
	slices.SortFunc(out, func(a, b medium.Transmittance) int {
		return cmp.Compare(a.WavelengthNM, b.WavelengthNM)
	})
	return out, nil
}

// GlassCode combines the tabulated nd and vd into the six digit code.
func (g *Glass) GlassCode() string {
	return medium.EncodeGlassCode(g.def.indices["d"], g.def.vd)
}

func (g *Glass) String() string {
	return g.catalog + " " + g.def.name + ": " + g.GlassCode()
}
