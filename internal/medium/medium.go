// Package medium defines the optical medium contract shared by catalog
// glasses, model glasses and user-defined materials.
package medium

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/udisondev/opticalglass/internal/spectral"
)

// Medium is a material with a wavelength dependent refractive index.
//
// CalcRindex must be a pure function of the wavelength: implementations
// never mutate state while answering index queries.
type Medium interface {
	Name() string
	CatalogName() string
	// CalcRindex returns the index at a wavelength in nm.
	CalcRindex(wvNM float64) (float64, error)
	// MeasRindex returns the index tabulated for a spectral line, or the
	// computed one when the medium has no measured data.
	MeasRindex(line string) (float64, error)
	// TransmissionData returns internal transmittance for a sample of the
	// given thickness in mm.
	TransmissionData(thicknessMM float64) ([]Transmittance, error)
}

// BatchRindexer is implemented by media that validate a whole wavelength
// vector before evaluating it.
type BatchRindexer interface {
	CalcRindexAll(wvsNM []float64) ([]float64, error)
}

// Restorer is implemented by media whose derived state must be rebuilt
// after the exported fields were loaded from disk.
type Restorer interface {
	SyncToRestore() error
}

// Transmittance is one sample of an internal transmittance curve.
type Transmittance struct {
	WavelengthNM float64
	Tau          float64
}

// Rindex resolves w to nm and evaluates m there.
func Rindex(m Medium, w spectral.Wvl) (float64, error) {
	wv, err := w.NM()
	if err != nil {
		return math.NaN(), err
	}
	return m.CalcRindex(wv)
}

// RindexAll evaluates m at every wavelength in wvsNM.
func RindexAll(m Medium, wvsNM []float64) ([]float64, error) {
	if b, ok := m.(BatchRindexer); ok {
		return b.CalcRindexAll(wvsNM)
	}
	out := make([]float64, len(wvsNM))
	for i, wv := range wvsNM {
		n, err := m.CalcRindex(wv)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

// LineIndices evaluates m at the d, F and C lines.
func LineIndices(m Medium) (nd, nF, nC float64, err error) {
	if nd, err = Rindex(m, spectral.Line("d")); err != nil {
		return
	}
	if nF, err = Rindex(m, spectral.Line("F")); err != nil {
		return
	}
	nC, err = Rindex(m, spectral.Line("C"))
	return
}

// GlassCode returns the six digit glass code of m computed from its d, F
// and C indices.
func GlassCode(m Medium) (string, error) {
	nd, nF, nC, err := LineIndices(m)
	if err != nil {
		return "", fmt.Errorf("glass code: %w", err)
	}
	return EncodeGlassCode(nd, (nd-1)/(nF-nC)), nil
}

func round3(x float64) float64 { return math.Round(x*1000) / 1000 }

// EncodeGlassCode formats nd and vd as the "nnn.vvv" glass code, e.g.
// 1.5168, 64.17 -> "517.642". Both parts are rounded to the nearest digit.
func EncodeGlassCode(nd, vd float64) string {
	return fmt.Sprintf("%3d.%3d", int(math.Round(1000*(nd-1))), int(math.Round(10*vd)))
}

// DecodeGlassCode inverts EncodeGlassCode for a numeric code such as 517.642.
func DecodeGlassCode(code float64) (nd, vd float64) {
	whole := math.Trunc(code)
	return round3(1 + whole/1000), round3(100 * (code - whole))
}

// ParseGlassCode accepts "517642", "517.642" or "517-642".
func ParseGlassCode(s string) (nd, vd float64, err error) {
	s = strings.TrimSpace(s)
	digits := strings.NewReplacer(".", "", "-", "").Replace(s)
	if len(digits) != 6 {
		return 0, 0, fmt.Errorf("parse glass code %q: want 6 digits", s)
	}
	v, err := strconv.Atoi(digits)
	if err != nil {
		return 0, 0, fmt.Errorf("parse glass code %q: %w", s, err)
	}
	nd, vd = DecodeGlassCode(float64(v) / 1000)
	return nd, vd, nil
}
