package dispersion

import (
	"fmt"
	"math"
	"slices"

	"github.com/udisondev/opticalglass/internal/glasserr"
)

// rangeFuzz absorbs round-off when a query sits exactly on a range boundary.
const rangeFuzz = 1e-14

// Range is the validated wavelength interval of a RefractiveIndex.INFO
// dataset, in micrometers.
type Range struct {
	Min float64
	Max float64
}

// CheckRange returns an *glasserr.OutOfBoundsError if wvUM lies outside r.
// A nil range accepts everything.
func CheckRange(wvUM float64, r *Range) error {
	if r == nil {
		return nil
	}
	if wvUM < r.Min-rangeFuzz || wvUM > r.Max+rangeFuzz {
		return &glasserr.OutOfBoundsError{Wavelength: wvUM, Min: r.Min, Max: r.Max}
	}
	return nil
}

// EvalRII evaluates RefractiveIndex.INFO formula f at wvNM after checking
// the wavelength against r.
func EvalRII(f Formula, wvNM float64, c []float64, r *Range) (float64, error) {
	wv := toMicrons(wvNM)
	if err := CheckRange(wv, r); err != nil {
		return math.NaN(), err
	}
	fn, err := riiFunc(f)
	if err != nil {
		return math.NaN(), err
	}
	return fn(wv, c), nil
}

// EvalRIIAll evaluates f over wvsNM. The extreme wavelengths are checked
// first so a bad query fails before any evaluation.
func EvalRIIAll(f Formula, wvsNM []float64, c []float64, r *Range) ([]float64, error) {
	fn, err := riiFunc(f)
	if err != nil {
		return nil, err
	}
	if len(wvsNM) > 0 {
		if err := CheckRange(toMicrons(slices.Min(wvsNM)), r); err != nil {
			return nil, err
		}
		if err := CheckRange(toMicrons(slices.Max(wvsNM)), r); err != nil {
			return nil, err
		}
	}
	out := make([]float64, len(wvsNM))
	for i, wv := range wvsNM {
		out[i] = fn(toMicrons(wv), c)
	}
	return out, nil
}

func riiFunc(f Formula) (func(wv float64, c []float64) float64, error) {
	switch f {
	case RII1:
		return rii1, nil
	case RII2:
		return rii2, nil
	case RII3:
		return rii3, nil
	case RII4:
		return rii4, nil
	case RII5:
		return rii5, nil
	case RII6:
		return rii6, nil
	case RII7:
		return rii7, nil
	case RII8:
		return rii8, nil
	case RII9:
		return rii9, nil
	}
	return nil, fmt.Errorf("evaluate %s: not a RefractiveIndex.INFO formula", f)
}

// at returns c[i], or 0 past the end. Database entries often omit
// trailing zero coefficients.
func at(c []float64, i int) float64 {
	if i < len(c) {
		return c[i]
	}
	return 0
}

// rii1 is Sellmeier: n² = 1 + c0 + Σ c_i·λ²/(λ² − c_{i+1}²).
func rii1(wv float64, c []float64) float64 {
	wv2 := wv * wv
	n2 := 1 + at(c, 0)
	for i := 1; i+1 < len(c); i += 2 {
		n2 += c[i] * wv2 / (wv2 - c[i+1]*c[i+1])
	}
	return math.Sqrt(n2)
}

// rii2 is Sellmeier-2: n² = 1 + c0 + Σ c_i·λ²/(λ² − c_{i+1}).
func rii2(wv float64, c []float64) float64 {
	wv2 := wv * wv
	n2 := 1 + at(c, 0)
	for i := 1; i+1 < len(c); i += 2 {
		n2 += c[i] * wv2 / (wv2 - c[i+1])
	}
	return math.Sqrt(n2)
}

// rii3 is the polynomial: n² = c0 + Σ c_i·λ^c_{i+1}.
func rii3(wv float64, c []float64) float64 {
	n2 := at(c, 0)
	for i := 1; i+1 < len(c); i += 2 {
		n2 += c[i] * math.Pow(wv, c[i+1])
	}
	return math.Sqrt(n2)
}

// rii4 is RefractiveIndex.INFO: two generalized poles then a power series
// starting at c9.
func rii4(wv float64, c []float64) float64 {
	wv2 := wv * wv
	n2 := at(c, 0)
	if at(c, 1) != 0 {
		n2 += c[1] * math.Pow(wv, at(c, 2)) / (wv2 - math.Pow(at(c, 3), at(c, 4)))
	}
	if at(c, 5) != 0 {
		n2 += c[5] * math.Pow(wv, at(c, 6)) / (wv2 - math.Pow(at(c, 7), at(c, 8)))
	}
	for i := 9; i+1 < len(c); i += 2 {
		n2 += c[i] * math.Pow(wv, c[i+1])
	}
	return math.Sqrt(n2)
}

// rii5 is Cauchy: n = c0 + Σ c_i·λ^c_{i+1}.
func rii5(wv float64, c []float64) float64 {
	n := at(c, 0)
	for i := 1; i+1 < len(c); i += 2 {
		n += c[i] * math.Pow(wv, c[i+1])
	}
	return n
}

// rii6 is the gas formula: n = 1 + c0 + Σ c_i/(c_{i+1} − λ⁻²).
func rii6(wv float64, c []float64) float64 {
	wvm2 := 1 / (wv * wv)
	n := 1 + at(c, 0)
	for i := 1; i+1 < len(c); i += 2 {
		n += c[i] / (c[i+1] - wvm2)
	}
	return n
}

// rii7 is Herzberger:
// n = c0 + c1/(λ² − 0.028) + c2/(λ² − 0.028)² + c3·λ² + c4·λ⁴ + c5·λ⁶ + ...
func rii7(wv float64, c []float64) float64 {
	wv2 := wv * wv
	d := wv2 - 0.028
	n := at(c, 0) + at(c, 1)/d + at(c, 2)/(d*d)
	p := wv2
	for i := 3; i < len(c); i++ {
		n += c[i] * p
		p *= wv2
	}
	return n
}

// rii8 is Retro: (n² − 1)/(n² + 2) = c0 + c1·λ²/(λ² − c2) + c3·λ².
func rii8(wv float64, c []float64) float64 {
	wv2 := wv * wv
	r := at(c, 0) + at(c, 1)*wv2/(wv2-at(c, 2)) + at(c, 3)*wv2
	return math.Sqrt((1 + 2*r) / (1 - r))
}

// rii9 is Exotic: n² = c0 + c1/(λ² − c2) + c3·(λ − c4)/((λ − c4)² + c5).
func rii9(wv float64, c []float64) float64 {
	d := wv - at(c, 4)
	n2 := at(c, 0) + at(c, 1)/(wv*wv-at(c, 2)) + at(c, 3)*d/(d*d+at(c, 5))
	return math.Sqrt(n2)
}
