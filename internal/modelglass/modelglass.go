// Package modelglass provides a medium defined only by its index and Abbe
// number at the d line.
package modelglass

import (
	"fmt"

	"github.com/udisondev/opticalglass/internal/buchdahl"
	"github.com/udisondev/opticalglass/internal/medium"
)

// DefaultCatalog is reported for model glasses created without a catalog.
const DefaultCatalog = "user"

// Glass is an nd/vd pair turned into a Buchdahl model. The exported
// fields are the persisted state.
type Glass struct {
	Nd      float64
	Vd      float64
	Label   string
	Catalog string
	B       float64
	M       float64

	model *buchdahl.CodeFit
}

// New returns a model glass using the default empirical Buchdahl line.
func New(nd, vd float64, label, catalog string) (*Glass, error) {
	return NewWithModel(nd, vd, label, catalog, buchdahl.DefaultB, buchdahl.DefaultM)
}

// NewWithModel returns a model glass on the line ν1 = b + m·ν2.
func NewWithModel(nd, vd float64, label, catalog string, b, m float64) (*Glass, error) {
	if catalog == "" {
		catalog = DefaultCatalog
	}
	g := &Glass{Nd: nd, Vd: vd, Label: label, Catalog: catalog, B: b, M: m}
	if err := g.SyncToRestore(); err != nil {
		return nil, err
	}
	return g, nil
}

// SyncToRestore rebuilds the Buchdahl model from Nd, Vd, B and M.
func (g *Glass) SyncToRestore() error {
	if g.Vd == 0 {
		return fmt.Errorf("model glass %s: abbe number is zero", g.Name())
	}
	if g.B == 0 && g.M == 0 {
		g.B, g.M = buchdahl.DefaultB, buchdahl.DefaultM
	}
	model, err := buchdahl.FromGlassCode(g.Nd, g.Vd, buchdahl.WithModel(g.B, g.M))
	if err != nil {
		return fmt.Errorf("model glass %s: %w", g.Name(), err)
	}
	g.model = model
	return nil
}

// Update replaces nd and vd and refits the model.
func (g *Glass) Update(nd, vd float64) {
	g.Nd, g.Vd = nd, vd
	g.model.UpdateModel(nd, vd)
}

// GlassCode returns the "nnn.vvv" code of the nd/vd pair.
func (g *Glass) GlassCode() string {
	return medium.EncodeGlassCode(g.Nd, g.Vd)
}

func (g *Glass) Name() string {
	if g.Label == "" {
		return g.GlassCode()
	}
	return g.Label
}

func (g *Glass) CatalogName() string { return g.Catalog }

func (g *Glass) CalcRindex(wvNM float64) (float64, error) {
	return g.model.CalcRindex(wvNM)
}

func (g *Glass) MeasRindex(line string) (float64, error) {
	return g.model.MeasRindex(line)
}

func (g *Glass) TransmissionData(thicknessMM float64) ([]medium.Transmittance, error) {
	return g.model.TransmissionData(thicknessMM)
}

func (g *Glass) String() string {
	return fmt.Sprintf("ModelGlass %s: %s", g.Name(), g.GlassCode())
}
