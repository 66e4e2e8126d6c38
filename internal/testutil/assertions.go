package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/opticalglass/internal/medium"
	"github.com/udisondev/opticalglass/internal/spectral"
)

// AssertLineIndices checks the index of m at each named spectral line.
func AssertLineIndices(t testing.TB, m medium.Medium, want map[string]float64, delta float64) {
	t.Helper()

	for line, n := range want {
		got, err := medium.Rindex(m, spectral.Line(line))
		require.NoError(t, err, "line %s", line)
		assert.InDelta(t, n, got, delta, "%s at line %s", m.Name(), line)
	}
}

// AssertSameDispersion checks that a and b agree at every wavelength in nm.
func AssertSameDispersion(t testing.TB, a, b medium.Medium, wvsNM []float64, delta float64) {
	t.Helper()

	na, err := medium.RindexAll(a, wvsNM)
	require.NoError(t, err)
	nb, err := medium.RindexAll(b, wvsNM)
	require.NoError(t, err)
	assert.InDeltaSlice(t, na, nb, delta)
}
