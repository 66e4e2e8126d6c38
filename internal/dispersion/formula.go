// Package dispersion evaluates closed-form refractive index models.
//
// Every formula takes the wavelength in nanometers and converts it to
// micrometers before evaluating. Nothing here guards against a negative
// radicand or a pole in a Sellmeier term: NaN and Inf propagate as the
// float64 arithmetic produces them.
package dispersion

import (
	"fmt"
	"math"
	"strings"
)

// Formula tags the dispersion model a coefficient vector belongs to.
type Formula int

const (
	Unknown Formula = iota
	Schott
	Sellmeier3
	Hikari9
	Hoya12
	RII1
	RII2
	RII3
	RII4
	RII5
	RII6
	RII7
	RII8
	RII9
)

var formulaNames = map[Formula]string{
	Schott:     "schott",
	Sellmeier3: "sellmeier3",
	Hikari9:    "hikari9",
	Hoya12:     "hoya12",
	RII1:       "formula 1",
	RII2:       "formula 2",
	RII3:       "formula 3",
	RII4:       "formula 4",
	RII5:       "formula 5",
	RII6:       "formula 6",
	RII7:       "formula 7",
	RII8:       "formula 8",
	RII9:       "formula 9",
}

func (f Formula) String() string {
	if s, ok := formulaNames[f]; ok {
		return s
	}
	return fmt.Sprintf("Formula(%d)", int(f))
}

// ParseFormula accepts the String form of a tag, case-insensitively.
// "sellmeier" is accepted as an alias for sellmeier3.
func ParseFormula(s string) (Formula, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "sellmeier" {
		return Sellmeier3, nil
	}
	for f, name := range formulaNames {
		if name == s {
			return f, nil
		}
	}
	return Unknown, fmt.Errorf("unknown dispersion formula %q", s)
}

// NumCoefs returns the fixed coefficient count of a formula, or 0 for the
// RefractiveIndex.INFO formulas whose length varies per material.
func (f Formula) NumCoefs() int {
	switch f {
	case Schott, Sellmeier3:
		return 6
	case Hikari9:
		return 9
	case Hoya12:
		return 12
	default:
		return 0
	}
}

// IsRII reports whether f is one of the RefractiveIndex.INFO formulas.
func (f Formula) IsRII() bool {
	return f >= RII1 && f <= RII9
}

// RIINumber returns 1..9 for RII formulas and 0 otherwise.
func (f Formula) RIINumber() int {
	if !f.IsRII() {
		return 0
	}
	return int(f-RII1) + 1
}

// RIIFormula returns the tag for RefractiveIndex.INFO formula n (1..9).
func RIIFormula(n int) (Formula, error) {
	if n < 1 || n > 9 {
		return Unknown, fmt.Errorf("unknown RefractiveIndex.INFO formula %d", n)
	}
	return RII1 + Formula(n-1), nil
}

// Validate checks the coefficient count for the fixed-length formulas.
func (f Formula) Validate(c []float64) error {
	if f == Unknown {
		return fmt.Errorf("dispersion formula not set")
	}
	if n := f.NumCoefs(); n > 0 && len(c) != n {
		return fmt.Errorf("%s formula needs %d coefficients, got %d", f, n, len(c))
	}
	return nil
}

func toMicrons(wvNM float64) float64 { return 0.001 * wvNM }

// Schott6 evaluates the Schott power series
// n² = a0 + a1·λ² + a2/λ² + a3/λ⁴ + a4/λ⁶ + a5/λ⁸.
func Schott6(wvNM float64, c []float64) float64 {
	wv := toMicrons(wvNM)
	wv2 := wv * wv
	n2 := c[0] + c[1]*wv2
	wvm2 := 1 / wv2
	n2 += wvm2 * (c[2] + wvm2*(c[3]+wvm2*(c[4]+wvm2*c[5])))
	return math.Sqrt(n2)
}

// Sellmeier evaluates the three term Sellmeier equation with coefficients
// stored as (K1, L1, K2, L2, K3, L3): n² = 1 + Σ Ki·λ²/(λ² − Li).
func Sellmeier(wvNM float64, c []float64) float64 {
	wv := toMicrons(wvNM)
	wv2 := wv * wv
	n2 := 1.0
	for i := 0; i < 6; i += 2 {
		n2 += c[i] * wv2 / (wv2 - c[i+1])
	}
	return math.Sqrt(n2)
}

// GroupedToPairs reorders Sellmeier coefficients tabulated as
// (K1, K2, K3, L1, L2, L3), the Schott and Ohara layout, into pairs.
func GroupedToPairs(c []float64) []float64 {
	half := len(c) / 2
	out := make([]float64, 0, len(c))
	for i := 0; i < half; i++ {
		out = append(out, c[i], c[i+half])
	}
	return out
}

// Hikari evaluates the extended Schott series used by Hikari:
// n² = a0 + a1·λ² + a2·λ⁴ + a3/λ² + a4/λ⁴ + a5/λ⁶ + a6/λ⁸ + a7/λ¹⁰ + a8/λ¹².
func Hikari(wvNM float64, c []float64) float64 {
	wv := toMicrons(wvNM)
	wv2 := wv * wv
	n2 := c[0] + wv2*(c[1]+wv2*c[2])
	wvm2 := 1 / wv2
	n2 += wvm2 * (c[3] +
		wvm2*(c[4]+
			wvm2*(c[5]+
				wvm2*(c[6]+
					wvm2*(c[7]+
						wvm2*c[8])))))
	return math.Sqrt(n2)
}

// DecodeHoya unpacks Hoya's six mantissa/exponent pairs into the six
// Schott coefficients: a[i] = c[2i]·10^c[2i+1].
func DecodeHoya(c []float64) []float64 {
	out := make([]float64, len(c)/2)
	for i := range out {
		out[i] = c[2*i] * math.Pow(10, c[2*i+1])
	}
	return out
}

// Hoya evaluates the Schott series from packed Hoya coefficients.
func Hoya(wvNM float64, c []float64) float64 {
	return Schott6(wvNM, DecodeHoya(c))
}

// Eval dispatches a fixed-length formula. RII formulas go through EvalRII
// because they carry a validity range.
func Eval(f Formula, wvNM float64, c []float64) (float64, error) {
	switch f {
	case Schott:
		return Schott6(wvNM, c), nil
	case Sellmeier3:
		return Sellmeier(wvNM, c), nil
	case Hikari9:
		return Hikari(wvNM, c), nil
	case Hoya12:
		return Hoya(wvNM, c), nil
	}
	if f.IsRII() {
		return EvalRII(f, wvNM, c, nil)
	}
	return math.NaN(), fmt.Errorf("evaluate %s: unsupported formula", f)
}

// EvalAll evaluates f elementwise over wvsNM.
func EvalAll(f Formula, wvsNM []float64, c []float64) ([]float64, error) {
	if f.IsRII() {
		return EvalRIIAll(f, wvsNM, c, nil)
	}
	out := make([]float64, len(wvsNM))
	for i, wv := range wvsNM {
		n, err := Eval(f, wv, c)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}
