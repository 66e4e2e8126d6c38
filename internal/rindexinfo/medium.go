package rindexinfo

import (
	"fmt"
	"math"

	"github.com/udisondev/opticalglass/internal/dispersion"
	"github.com/udisondev/opticalglass/internal/glasserr"
	"github.com/udisondev/opticalglass/internal/medium"
	"github.com/udisondev/opticalglass/internal/spectral"
)

// Medium is a material described by one of the RefractiveIndex.INFO
// formulas, valid only inside Range.
type Medium struct {
	Label   string
	Catalog string
	Formula dispersion.Formula
	Coefs   []float64
	Range   dispersion.Range // µm

	// Optional extinction coefficients, wavelengths in nm.
	KWvls []float64
	KVals []float64
}

func (m *Medium) Name() string { return m.Label }

func (m *Medium) CatalogName() string { return m.Catalog }

// CalcRindex returns an *glasserr.OutOfBoundsError outside Range.
func (m *Medium) CalcRindex(wvNM float64) (float64, error) {
	return dispersion.EvalRII(m.Formula, wvNM, m.Coefs, &m.Range)
}

func (m *Medium) CalcRindexAll(wvsNM []float64) ([]float64, error) {
	return dispersion.EvalRIIAll(m.Formula, wvsNM, m.Coefs, &m.Range)
}

// MeasRindex has no tabulated data to return, so it evaluates the formula
// at the line.
func (m *Medium) MeasRindex(line string) (float64, error) {
	wv, err := spectral.Wavelength(line)
	if err != nil {
		return math.NaN(), err
	}
	return m.CalcRindex(wv)
}

// TransmissionData converts the k values to internal transmittance through
// thicknessMM of material.
func (m *Medium) TransmissionData(thicknessMM float64) ([]medium.Transmittance, error) {
	if len(m.KVals) == 0 {
		return nil, fmt.Errorf("%s %s: %w", m.Catalog, m.Label, glasserr.ErrNoTransmissionData)
	}
	if len(m.KWvls) != len(m.KVals) {
		return nil, fmt.Errorf("%s %s: %d k wavelengths for %d k values", m.Catalog, m.Label, len(m.KWvls), len(m.KVals))
	}
	t := thicknessMM * 1e6
	out := make([]medium.Transmittance, len(m.KVals))
	for i, k := range m.KVals {
		out[i] = medium.Transmittance{
			WavelengthNM: m.KWvls[i],
			Tau:          math.Exp(-4 * math.Pi * k * t / m.KWvls[i]),
		}
	}
	return out, nil
}

func (m *Medium) String() string {
	code, err := medium.GlassCode(m)
	if err != nil {
		code = "?"
	}
	return m.Catalog + " " + m.Label + ": " + code
}
