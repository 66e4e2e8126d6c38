package spectral

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWavelength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		label string
		want  float64
	}{
		{"d", 587.5618},
		{"D", 589.2938},
		{"F", 486.1327},
		{"C", 656.2725},
		{"C'", 643.8469},
		{"F'", 479.9914},
		{"g", 435.8343},
		{"i", 365.0146},
		{"t", 1013.98},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			t.Parallel()

			got, err := Wavelength(tt.label)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWavelengthUnknown(t *testing.T) {
	t.Parallel()

	_, err := Wavelength("x")
	assert.ErrorIs(t, err, ErrUnknownLine)
	assert.False(t, IsLine("x"))
	assert.True(t, IsLine("He-Ne"))
}

func TestLinesOrderedRedToBlue(t *testing.T) {
	t.Parallel()

	labels := Lines()
	require.Len(t, labels, 13)

	prev := 1e9
	for _, l := range labels {
		wv, err := Wavelength(l)
		require.NoError(t, err)
		assert.Less(t, wv, prev, "line %s", l)
		prev = wv
	}

	labels[0] = "changed"
	assert.Equal(t, "t", Lines()[0])
}

func TestParseWvl(t *testing.T) {
	t.Parallel()

	w := ParseWvl(" 550.5 ")
	nm, err := w.NM()
	require.NoError(t, err)
	assert.Equal(t, 550.5, nm)
	assert.Equal(t, "550.5nm", w.String())

	w = ParseWvl("e")
	nm, err = w.NM()
	require.NoError(t, err)
	assert.Equal(t, 546.074, nm)
	assert.Equal(t, "e", w.String())

	_, err = ParseWvl("zz").NM()
	assert.ErrorIs(t, err, ErrUnknownLine)
}
