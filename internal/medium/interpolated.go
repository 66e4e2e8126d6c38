package medium

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/interp"

	"github.com/udisondev/opticalglass/internal/glasserr"
	"github.com/udisondev/opticalglass/internal/spectral"
)

// Interpolated is a medium defined by tabulated wavelength/index pairs,
// with optional extinction coefficients for transmittance.
//
// The exported fields are the persisted state; call SyncToRestore after
// filling them directly.
type Interpolated struct {
	Label   string
	Catalog string
	Wvls    []float64 // nm
	Rndx    []float64
	KWvls   []float64 // nm, defaults to Wvls
	KVals   []float64

	rindex curve
	kval   curve
}

// NewInterpolated builds a medium from parallel wavelength and index slices.
func NewInterpolated(label, catalog string, wvls, rndx []float64) (*Interpolated, error) {
	m := &Interpolated{Label: label, Catalog: catalog, Wvls: wvls, Rndx: rndx}
	if err := m.SyncToRestore(); err != nil {
		return nil, err
	}
	return m, nil
}

// SetKValues attaches extinction coefficients sampled at wvls. A nil wvls
// reuses the index wavelengths.
func (m *Interpolated) SetKValues(wvls, kvals []float64) error {
	m.KWvls, m.KVals = wvls, kvals
	return m.SyncToRestore()
}

// SyncToRestore rebuilds the interpolating curves from the exported fields.
func (m *Interpolated) SyncToRestore() error {
	if len(m.Wvls) != len(m.Rndx) {
		return fmt.Errorf("interpolated medium %q: %d wavelengths for %d indices", m.Label, len(m.Wvls), len(m.Rndx))
	}
	c, err := newCurve(m.Wvls, m.Rndx)
	if err != nil {
		return fmt.Errorf("interpolated medium %q: %w", m.Label, err)
	}
	m.rindex = c

	m.kval = curve{}
	if m.KVals == nil {
		return nil
	}
	if m.KWvls == nil {
		m.KWvls = m.Wvls
	}
	if len(m.KWvls) != len(m.KVals) {
		return fmt.Errorf("interpolated medium %q: %d k wavelengths for %d k values", m.Label, len(m.KWvls), len(m.KVals))
	}
	if m.kval, err = newCurve(m.KWvls, m.KVals); err != nil {
		return fmt.Errorf("interpolated medium %q k values: %w", m.Label, err)
	}
	return nil
}

// Name returns the label, or the glass code for an unlabeled medium.
func (m *Interpolated) Name() string {
	if m.Label != "" {
		return m.Label
	}
	code, err := GlassCode(m)
	if err != nil {
		return ""
	}
	return code
}

func (m *Interpolated) CatalogName() string { return m.Catalog }

// CalcRindex interpolates the tabulated indices. Queries outside the
// tabulated wavelengths are an out-of-bounds error.
func (m *Interpolated) CalcRindex(wvNM float64) (float64, error) {
	return m.rindex.at(wvNM)
}

// MeasRindex has no measured data to offer, so it evaluates the curve at
// the line wavelength.
func (m *Interpolated) MeasRindex(line string) (float64, error) {
	return Rindex(m, spectral.Line(line))
}

// TransmissionData converts the k values into internal transmittance
// exp(-4πk·t/λ) for a sample thicknessMM thick.
func (m *Interpolated) TransmissionData(thicknessMM float64) ([]Transmittance, error) {
	if m.KVals == nil {
		return nil, fmt.Errorf("%s: %w", m.Name(), glasserr.ErrNoTransmissionData)
	}
	t := thicknessMM * 1e6 // nm
	out := make([]Transmittance, len(m.KWvls))
	for i, wv := range m.KWvls {
		out[i] = Transmittance{
			WavelengthNM: wv,
			Tau:          math.Exp(-4 * math.Pi * t * m.KVals[i] / wv),
		}
	}
	return out, nil
}

// KValue interpolates the extinction coefficient at wvNM.
func (m *Interpolated) KValue(wvNM float64) (float64, error) {
	if m.KVals == nil {
		return math.NaN(), fmt.Errorf("%s: %w", m.Name(), glasserr.ErrNoTransmissionData)
	}
	return m.kval.at(wvNM)
}

var errNoSamples = errors.New("no samples")

// curve wraps a gonum predictor with the sample bounds. One sample gives
// a constant, two or three a linear fit, four or more a not-a-knot cubic.
type curve struct {
	pred     interp.Predictor
	min, max float64
	constant float64
	single   bool
}

func newCurve(xs, ys []float64) (curve, error) {
	switch len(xs) {
	case 0:
		return curve{}, errNoSamples
	case 1:
		return curve{single: true, constant: ys[0], min: xs[0], max: xs[0]}, nil
	}

	idx := make([]int, len(xs))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return xs[idx[a]] < xs[idx[b]] })
	sx := make([]float64, len(xs))
	sy := make([]float64, len(xs))
	for i, j := range idx {
		sx[i], sy[i] = xs[j], ys[j]
	}

	var fitter interp.FittablePredictor
	if len(sx) < 4 {
		fitter = &interp.PiecewiseLinear{}
	} else {
		fitter = &interp.NotAKnotCubic{}
	}
	if err := fitter.Fit(sx, sy); err != nil {
		return curve{}, err
	}
	return curve{pred: fitter, min: sx[0], max: sx[len(sx)-1]}, nil
}

func (c curve) at(wvNM float64) (float64, error) {
	if c.single {
		return c.constant, nil
	}
	if c.pred == nil {
		return math.NaN(), errNoSamples
	}
	if wvNM < c.min || wvNM > c.max {
		return math.NaN(), &glasserr.OutOfBoundsError{
			Wavelength: wvNM / 1000, Min: c.min / 1000, Max: c.max / 1000,
		}
	}
	return c.pred.Predict(wvNM), nil
}
