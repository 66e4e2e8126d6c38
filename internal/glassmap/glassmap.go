// Package glassmap computes the coordinates glasses are plotted at on a
// glass map: index against Abbe number, partial dispersion and the
// Buchdahl dispersion coefficients.
package glassmap

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/udisondev/opticalglass/internal/buchdahl"
	"github.com/udisondev/opticalglass/internal/catalog"
	"github.com/udisondev/opticalglass/internal/glasserr"
	"github.com/udisondev/opticalglass/internal/medium"
	"github.com/udisondev/opticalglass/internal/spectral"
)

// AbbeNumber returns (nd−1)/(nF−nC).
func AbbeNumber(nd, nF, nC float64) float64 {
	return (nd - 1) / (nF - nC)
}

// PartialDispersion returns (nx−ny)/(nF−nC).
func PartialDispersion(nx, ny, nF, nC float64) float64 {
	return (nx - ny) / (nF - nC)
}

// Constants returns the Abbe number and the partial dispersion P_C,d.
func Constants(nd, nF, nC float64) (vd, pCd float64) {
	return AbbeNumber(nd, nF, nC), PartialDispersion(nd, nC, nF, nC)
}

type options struct {
	lines     [3]string
	partials  *[2]string
	dispCoefs bool
}

// Option configures how map coordinates are computed.
type Option func(*options)

// WithLines sets the central, blue and red lines. Defaults to d, F, C.
func WithLines(central, blue, red string) Option {
	return func(o *options) { o.lines = [3]string{central, blue, red} }
}

// WithPartials makes P the partial dispersion between lines a and b
// instead of P_C,d.
func WithPartials(a, b string) Option {
	return func(o *options) { o.partials = &[2]string{a, b} }
}

// WithDispersionCoefs divides the Buchdahl coefficients by nd−1.
func WithDispersionCoefs() Option {
	return func(o *options) { o.dispCoefs = true }
}

// Data holds parallel glass map coordinates.
type Data struct {
	Nd    []float64
	Vd    []float64
	P     []float64
	Nu1   []float64
	Nu2   []float64
	Names []string
}

// Len returns the number of glasses.
func (d *Data) Len() int { return len(d.Names) }

// Extent returns the index and Abbe number ranges covered by the data.
func (d *Data) Extent() (ndMin, ndMax, vdMin, vdMax float64) {
	if d.Len() == 0 {
		return 0, 0, 0, 0
	}
	return floats.Min(d.Nd), floats.Max(d.Nd), floats.Min(d.Vd), floats.Max(d.Vd)
}

// FromCatalog computes map coordinates for every glass of a catalog. The
// catalog's measured indices are used where it has them.
func FromCatalog(cat catalog.Catalog, opts ...Option) (*Data, error) {
	names := cat.GlassNames()
	media := make([]medium.Medium, len(names))
	for i, gn := range names {
		m, err := cat.CreateGlass(gn)
		if err != nil {
			return nil, err
		}
		media[i] = m
	}
	d, err := compute(media, opts)
	if err != nil {
		return nil, fmt.Errorf("glass map of %s: %w", cat.Name(), err)
	}
	d.Names = names
	return d, nil
}

// FromMedia computes map coordinates for arbitrary media, named
// "name/catalog".
func FromMedia(media []medium.Medium, opts ...Option) (*Data, error) {
	d, err := compute(media, opts)
	if err != nil {
		return nil, err
	}
	d.Names = make([]string, len(media))
	for i, m := range media {
		d.Names[i] = m.Name() + "/" + m.CatalogName()
	}
	return d, nil
}

func compute(media []medium.Medium, opts []Option) (*Data, error) {
	o := options{lines: buchdahl.DefaultLines}
	for _, opt := range opts {
		opt(&o)
	}

	n := len(media)
	d := &Data{
		Nd:  make([]float64, n),
		Vd:  make([]float64, n),
		P:   make([]float64, n),
		Nu1: make([]float64, n),
		Nu2: make([]float64, n),
	}
	for i, m := range media {
		var idx [3]float64
		for j, line := range o.lines {
			v, err := index(m, line)
			if err != nil {
				return nil, err
			}
			idx[j] = v
		}
		nd, nF, nC := idx[0], idx[1], idx[2]

		d.Nd[i] = nd
		d.Vd[i], d.P[i] = Constants(nd, nF, nC)
		if o.partials != nil {
			na, err := index(m, o.partials[0])
			if err != nil {
				return nil, err
			}
			nb, err := index(m, o.partials[1])
			if err != nil {
				return nil, err
			}
			d.P[i] = PartialDispersion(na, nb, nF, nC)
		}

		_, nu, err := buchdahl.Coords(nd, nF, nC, o.lines, o.dispCoefs)
		if err != nil {
			return nil, err
		}
		d.Nu1[i], d.Nu2[i] = nu[0], nu[1]
	}
	return d, nil
}

// index prefers the measured value and falls back to the formula.
func index(m medium.Medium, line string) (float64, error) {
	v, err := m.MeasRindex(line)
	if err == nil {
		return v, nil
	}
	if !errors.Is(err, glasserr.ErrDataNotFound) {
		return 0, fmt.Errorf("%s at %s: %w", m.Name(), line, err)
	}
	return medium.Rindex(m, spectral.Line(line))
}
