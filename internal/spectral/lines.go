// Package spectral maps standard spectral line labels to wavelengths.
package spectral

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownLine is returned for a label missing from the line table.
var ErrUnknownLine = errors.New("unknown spectral line")

// lines holds the Fraunhofer and laser line wavelengths in nm.
var lines = map[string]float64{
	"Nd":    1060.0,
	"t":     1013.98,
	"s":     852.11,
	"r":     706.5188,
	"C":     656.2725,
	"C'":    643.8469,
	"He-Ne": 632.8,
	"D":     589.2938,
	"d":     587.5618,
	"e":     546.074,
	"F":     486.1327,
	"F'":    479.9914,
	"g":     435.8343,
	"h":     404.6561,
	"i":     365.0146,
}

// standard is the set of lines tabulated by the glass vendors, red to blue.
var standard = []string{"t", "s", "r", "C", "C'", "D", "d", "e", "F", "F'", "g", "h", "i"}

// Wavelength returns the wavelength in nm of a spectral line label.
// Labels are case sensitive: "d" and "D" are different lines.
func Wavelength(label string) (float64, error) {
	wv, ok := lines[label]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLine, label)
	}
	return wv, nil
}

// IsLine reports whether label names a known spectral line.
func IsLine(label string) bool {
	_, ok := lines[label]
	return ok
}

// Lines returns the standard vendor line labels ordered red to blue.
func Lines() []string {
	out := make([]string, len(standard))
	copy(out, standard)
	return out
}

// Wvl is a wavelength query: either a raw wavelength or a line label.
type Wvl interface {
	NM() (float64, error)
	String() string
}

// NM is a wavelength in nanometers.
type NM float64

func (w NM) NM() (float64, error) { return float64(w), nil }

func (w NM) String() string { return strconv.FormatFloat(float64(w), 'g', -1, 64) + "nm" }

// Line is a spectral line label such as "d" or "F'".
type Line string

func (l Line) NM() (float64, error) { return Wavelength(string(l)) }

func (l Line) String() string { return string(l) }

// ParseWvl interprets s as a number of nanometers when it parses as a float,
// otherwise as a line label.
func ParseWvl(s string) Wvl {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return NM(v)
	}
	return Line(s)
}
