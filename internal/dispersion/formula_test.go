package dispersion

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/opticalglass/internal/glasserr"
)

// N-BK7, Schott 2017 catalog, stored as pairs.
var nbk7 = []float64{
	1.03961212, 0.00600069867,
	0.231792344, 0.0200179144,
	1.01046945, 103.560653,
}

func TestFormulaEvaluators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		formula Formula
		coefs   []float64
		wv      float64
		want    float64
	}{
		{"sellmeier N-BK7 d", Sellmeier3, nbk7, 587.5618, 1.51680},
		{"sellmeier N-BK7 F", Sellmeier3, nbk7, 486.1327, 1.52238},
		{"sellmeier N-BK7 C", Sellmeier3, nbk7, 656.2725, 1.51432},
		{"schott K-BK7 d", Schott, []float64{
			2.27139472, -0.01000332, 0.0107600002, 0.000158598037, -1.32602568e-06, 2.04859954e-07,
		}, 587.5618, 1.51671},
		{"hoya BSC7 d", Hoya12, []float64{
			2.2718929, 0, -1.0108077, -2, 1.0592509, -2, 2.0816965, -4, -7.6472538, -6, 4.9240991, -7,
		}, 587.5618, 1.51680},
		{"hikari J-BK7A d", Hikari9, []float64{
			2.2714108, -0.00976086269, -9.47472165e-05, 0.0108739625, 0.000131896382, 1.78875778e-06, 6.51679444e-08, 0, 0,
		}, 587.5618, 1.51680},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.NoError(t, tt.formula.Validate(tt.coefs))
			got, err := Eval(tt.formula, tt.wv, tt.coefs)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 5e-6)
		})
	}
}

func TestDecodeHoya(t *testing.T) {
	t.Parallel()

	got := DecodeHoya([]float64{2.5, 0, 1.5, -2, -3, 1})
	require.Len(t, got, 3)
	assert.InDelta(t, 2.5, got[0], 1e-15)
	assert.InDelta(t, 0.015, got[1], 1e-15)
	assert.InDelta(t, -30, got[2], 1e-12)
}

func TestGroupedToPairs(t *testing.T) {
	t.Parallel()

	got := GroupedToPairs([]float64{1, 2, 3, 10, 20, 30})
	assert.Equal(t, []float64{1, 10, 2, 20, 3, 30}, got)
}

func TestParseFormula(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Formula
	}{
		{"schott", Schott},
		{"Sellmeier3", Sellmeier3},
		{"sellmeier", Sellmeier3},
		{" HOYA12 ", Hoya12},
		{"hikari9", Hikari9},
		{"formula 4", RII4},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := ParseFormula(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, must(ParseFormula(got.String())))
		})
	}

	_, err := ParseFormula("conrady")
	assert.Error(t, err)
}

func must(f Formula, err error) Formula {
	if err != nil {
		panic(err)
	}
	return f
}

func TestValidate(t *testing.T) {
	t.Parallel()

	assert.Error(t, Unknown.Validate(nil))
	assert.Error(t, Schott.Validate(make([]float64, 5)))
	assert.Error(t, Hoya12.Validate(make([]float64, 6)))
	assert.NoError(t, RII3.Validate(make([]float64, 3)))
	assert.Equal(t, 0, RII3.NumCoefs())
	assert.Equal(t, 3, RII3.RIINumber())
	assert.Equal(t, 0, Schott.RIINumber())
}

func TestNumericDomainPropagates(t *testing.T) {
	t.Parallel()

	// negative radicand
	n := Schott6(587.56, []float64{-1, 0, 0, 0, 0, 0})
	assert.True(t, math.IsNaN(n))

	// pole of the first Sellmeier term at λ² = L1
	wv := toMicrons(100)
	n = Sellmeier(100, []float64{1, wv * wv, 0, 1, 0, 1})
	assert.True(t, math.IsInf(n, 0) || math.IsNaN(n))
}

func TestEvalAll(t *testing.T) {
	t.Parallel()

	wvs := []float64{486.1327, 587.5618, 656.2725}
	got, err := EvalAll(Sellmeier3, wvs, nbk7)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Greater(t, got[0], got[1])
	assert.Greater(t, got[1], got[2])

	_, err = Eval(Unknown, 500, nil)
	assert.Error(t, err)

	var oob *glasserr.OutOfBoundsError
	assert.False(t, errors.As(err, &oob))
}
