package buchdahl

import (
	"fmt"

	"github.com/udisondev/opticalglass/internal/medium"
	"github.com/udisondev/opticalglass/internal/spectral"
)

type options struct {
	lines   [3]string
	b, m    float64
	label   string
	catalog string
}

// Option configures FromMedium and FromGlassCode.
type Option func(*options)

// WithLines sets the central, blue and red lines of the fit.
func WithLines(central, blue, red string) Option {
	return func(o *options) { o.lines = [3]string{central, blue, red} }
}

// WithModel replaces the empirical ν1 = b + m·ν2 line.
func WithModel(b, m float64) Option {
	return func(o *options) { o.b, o.m = b, m }
}

// WithLabel sets the name and catalog reported by the model.
func WithLabel(name, catalog string) Option {
	return func(o *options) { o.label, o.catalog = name, catalog }
}

func buildOptions(opts []Option) options {
	o := options{lines: DefaultLines, b: DefaultB, m: DefaultM}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// MediumFit is a quadratic model fitted exactly through a medium's
// indices at three lines.
type MediumFit struct {
	*Model
	Lines [3]string

	omF, omC float64
}

// FromMedium fits a quadratic model through src at the central, blue and
// red lines. The model reproduces those three indices exactly.
func FromMedium(src medium.Medium, opts ...Option) (*MediumFit, error) {
	o := buildOptions(opts)
	if o.label == "" {
		o.label, o.catalog = src.Name(), src.CatalogName()
	}

	var n [3]float64
	for i, l := range o.lines {
		v, err := medium.Rindex(src, spectral.Line(l))
		if err != nil {
			return nil, fmt.Errorf("buchdahl fit of %s: %w", src.Name(), err)
		}
		n[i] = v
	}

	wv0, oms, err := lineOmegas(o.lines[:])
	if err != nil {
		return nil, err
	}
	f := &MediumFit{
		Model: &Model{WV0: wv0, Label: o.label, Catalog: o.catalog},
		Lines: o.lines,
		omF:   oms[1],
		omC:   oms[2],
	}
	if err := f.Update(n[0], n[1], n[2]); err != nil {
		return nil, err
	}
	return f, nil
}

// Update re-solves the model for new central, blue and red indices.
func (f *MediumFit) Update(n0, nBlue, nRed float64) error {
	nu, err := solve2(f.omF, f.omC, nBlue-n0, nRed-n0)
	if err != nil {
		return err
	}
	f.N0 = n0
	f.Coefs = nu[:]
	return nil
}

// CodeFit is a quadratic model derived from an index and Abbe number
// through the empirical line ν1 = B + M·ν2.
type CodeFit struct {
	*Model
	Nd, Vd float64
	B, M   float64
	Lines  [3]string

	dOm, dOm2 float64
}

// FromGlassCode builds a model whose index at the central line is nd and
// whose Abbe number (nd−1)/(nF−nC) is vd.
func FromGlassCode(nd, vd float64, opts ...Option) (*CodeFit, error) {
	o := buildOptions(opts)
	wv0, oms, err := lineOmegas(o.lines[:])
	if err != nil {
		return nil, err
	}
	omF, omC := oms[1], oms[2]
	g := &CodeFit{
		Model: &Model{WV0: wv0, Label: o.label, Catalog: o.catalog},
		B:     o.b,
		M:     o.m,
		Lines: o.lines,
		dOm:   omF - omC,
		dOm2:  omF*omF - omC*omC,
	}
	g.UpdateModel(nd, vd)
	return g, nil
}

// UpdateModel recomputes the coefficients for a new nd, vd pair.
//
// nF−nC = ν1·Δω + ν2·Δω² with ν1 = b + m·ν2 gives
// ν2 = ((nd−1)/vd − b·Δω) / (m·Δω + Δω²).
func (g *CodeFit) UpdateModel(nd, vd float64) {
	dFC := (nd - 1) / vd
	nu2 := (dFC - g.B*g.dOm) / (g.M*g.dOm + g.dOm2)
	nu1 := g.B + g.M*nu2

	g.Nd, g.Vd = nd, vd
	g.N0 = nd
	g.Coefs = []float64{nu1, nu2}
}

// ModelFromGlasses returns the line ν1 = b + m·ν2 through the quadratic
// coefficients of two glasses.
func ModelFromGlasses(g1, g2 medium.Medium) (b, m float64, err error) {
	f1, err := FromMedium(g1)
	if err != nil {
		return 0, 0, err
	}
	f2, err := FromMedium(g2)
	if err != nil {
		return 0, 0, err
	}
	v1a, v2a := f1.Coefs[0], f1.Coefs[1]
	v1b, v2b := f2.Coefs[0], f2.Coefs[1]
	if v2a == v2b {
		return 0, 0, fmt.Errorf("%w: %s and %s share ν2", ErrSingular, g1.Name(), g2.Name())
	}
	m = (v1a - v1b) / (v2a - v2b)
	b = v1a - m*v2a
	return b, m, nil
}
