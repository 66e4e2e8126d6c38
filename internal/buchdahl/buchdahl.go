// Package buchdahl implements the Buchdahl chromatic coordinate and the
// low order index models built on it.
//
// Wavelengths are micrometers inside this package; the medium methods take
// nanometers like every other medium.
package buchdahl

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/udisondev/opticalglass/internal/medium"
	"github.com/udisondev/opticalglass/internal/spectral"
)

// Empirical line ν1 = b + m·ν2 through common glasses, used when only nd
// and vd are known.
const (
	DefaultB = -0.064667
	DefaultM = -1.604048
)

// DefaultLines are the central, blue and red lines of a three line fit.
var DefaultLines = [3]string{"d", "F", "C"}

// FitLines are the lines used by Fit when none are given: the central line
// first, then four blue and two red lines.
var FitLines = []string{"d", "h", "g", "F", "e", "C", "r"}

// ErrSingular is returned when the fit lines give a degenerate system.
var ErrSingular = errors.New("buchdahl: singular fit")

// Omega returns the chromatic coordinate for a wavelength offset in µm.
func Omega(dwv float64) float64 {
	return dwv / (1 + 2.5*dwv)
}

// OmegaToWavelength inverts Omega, returning the wavelength offset in µm.
func OmegaToWavelength(om float64) float64 {
	return om / (1 - 2.5*om)
}

// WavelengthUM returns a line label or wavelength in micrometers.
func WavelengthUM(w spectral.Wvl) (float64, error) {
	nm, err := w.NM()
	if err != nil {
		return 0, err
	}
	return nm * 1e-3, nil
}

func lineOmegas(lines []string) (wv0 float64, oms []float64, err error) {
	wv0, err = WavelengthUM(spectral.Line(lines[0]))
	if err != nil {
		return 0, nil, err
	}
	oms = make([]float64, len(lines))
	for i, l := range lines {
		wv, err := WavelengthUM(spectral.Line(l))
		if err != nil {
			return 0, nil, err
		}
		oms[i] = Omega(wv - wv0)
	}
	return wv0, oms, nil
}

// solve2 solves [[omF, omF²], [omC, omC²]]·ν = [dF, dC].
func solve2(omF, omC, dF, dC float64) ([2]float64, error) {
	a := mat.NewDense(2, 2, []float64{omF, omF * omF, omC, omC * omC})
	b := mat.NewVecDense(2, []float64{dF, dC})
	var x mat.VecDense
	if err := x.SolveVec(a, b); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) || math.IsInf(float64(cond), 1) {
			return [2]float64{}, fmt.Errorf("%w: %v", ErrSingular, err)
		}
	}
	return [2]float64{x.AtVec(0), x.AtVec(1)}, nil
}

// Coords computes the quadratic coefficients from the indices at the
// central, blue and red lines. With dispCoefs the coefficients are divided
// by nd−1, giving the dispersion coefficients used on glass maps.
func Coords(nd, nF, nC float64, lines [3]string, dispCoefs bool) (float64, [2]float64, error) {
	_, oms, err := lineOmegas(lines[:])
	if err != nil {
		return 0, [2]float64{}, err
	}
	nu, err := solve2(oms[1], oms[2], nF-nd, nC-nd)
	if err != nil {
		return 0, [2]float64{}, err
	}
	if dispCoefs {
		nu[0] /= nd - 1
		nu[1] /= nd - 1
	}
	return nd, nu, nil
}

// Fit does a least squares fit of a polynomial in ω of the given degree.
// indices[i] is the index at lines[i]; lines[0] is the central line. A nil
// lines uses FitLines and a degree below 1 means 2.
func Fit(indices []float64, degree int, lines []string) (float64, []float64, error) {
	if lines == nil {
		lines = FitLines
	}
	if degree < 1 {
		degree = 2
	}
	if len(indices) != len(lines) {
		return 0, nil, fmt.Errorf("buchdahl fit: %d indices for %d lines", len(indices), len(lines))
	}
	if len(lines) <= degree {
		return 0, nil, fmt.Errorf("buchdahl fit: degree %d needs more than %d lines", degree, len(lines))
	}
	_, oms, err := lineOmegas(lines)
	if err != nil {
		return 0, nil, err
	}

	n0 := indices[0]
	a := mat.NewDense(len(oms), degree, nil)
	b := mat.NewVecDense(len(oms), nil)
	for i, om := range oms {
		p := om
		for j := 0; j < degree; j++ {
			a.Set(i, j, p)
			p *= om
		}
		b.SetVec(i, indices[i]-n0)
	}

	var x mat.VecDense
	if err := x.SolveVec(a, b); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) || math.IsInf(float64(cond), 1) {
			return 0, nil, fmt.Errorf("%w: %v", ErrSingular, err)
		}
	}
	coefs := make([]float64, degree)
	for j := range coefs {
		coefs[j] = x.AtVec(j)
	}
	return n0, coefs, nil
}

// Model is the polynomial index model n(ω) = N0 + Σ Coefs[i]·ω^(i+1)
// about the central wavelength WV0 (µm).
type Model struct {
	WV0     float64
	N0      float64
	Coefs   []float64
	Label   string
	Catalog string
}

// Name returns the label, or the glass code when the model is unlabeled.
func (m *Model) Name() string {
	if m.Label != "" {
		return m.Label
	}
	code, err := medium.GlassCode(m)
	if err != nil {
		return ""
	}
	return code
}

func (m *Model) CatalogName() string { return m.Catalog }

func (m *Model) CalcRindex(wvNM float64) (float64, error) {
	om := Omega(wvNM*1e-3 - m.WV0)
	n := m.N0
	p := om
	for _, c := range m.Coefs {
		n += c * p
		p *= om
	}
	return n, nil
}

// MeasRindex evaluates the model at the line; a model has no measured data.
func (m *Model) MeasRindex(line string) (float64, error) {
	return medium.Rindex(m, spectral.Line(line))
}

// TransmissionData reports a fully transparent visible band.
func (m *Model) TransmissionData(float64) ([]medium.Transmittance, error) {
	return []medium.Transmittance{{WavelengthNM: 400, Tau: 1}, {WavelengthNM: 700, Tau: 1}}, nil
}
