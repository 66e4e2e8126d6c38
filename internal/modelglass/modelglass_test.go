package modelglass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/opticalglass/internal/buchdahl"
	"github.com/udisondev/opticalglass/internal/medium"
	"github.com/udisondev/opticalglass/internal/spectral"
)

func TestModelGlass(t *testing.T) {
	t.Parallel()

	g, err := New(1.5168, 64.17, "", "")
	require.NoError(t, err)
	assert.Equal(t, "517.642", g.Name())
	assert.Equal(t, DefaultCatalog, g.CatalogName())
	assert.Equal(t, buchdahl.DefaultB, g.B)
	assert.Equal(t, "ModelGlass 517.642: 517.642", g.String())

	nd, nF, nC, err := medium.LineIndices(g)
	require.NoError(t, err)
	assert.Equal(t, 1.5168, nd)
	assert.InDelta(t, 64.17, (nd-1)/(nF-nC), 1e-9)

	code, err := medium.GlassCode(g)
	require.NoError(t, err)
	assert.Equal(t, g.GlassCode(), code)
}

func TestModelGlassUpdate(t *testing.T) {
	t.Parallel()

	g, err := New(1.5168, 64.17, "crown", "mine")
	require.NoError(t, err)
	assert.Equal(t, "crown", g.Name())

	g.Update(1.62, 36.3)
	n, err := medium.Rindex(g, spectral.Line("d"))
	require.NoError(t, err)
	assert.Equal(t, 1.62, n)

	meas, err := g.MeasRindex("d")
	require.NoError(t, err)
	assert.Equal(t, n, meas)

	data, err := g.TransmissionData(10)
	require.NoError(t, err)
	assert.Len(t, data, 2)
}

func TestModelGlassRestore(t *testing.T) {
	t.Parallel()

	g := &Glass{Nd: 1.7, Vd: 30, Label: "restored", Catalog: "user"}
	require.NoError(t, g.SyncToRestore())
	assert.Equal(t, buchdahl.DefaultM, g.M)

	want, err := New(1.7, 30, "x", "")
	require.NoError(t, err)
	for _, wv := range []float64{450, 550, 650} {
		a, err := g.CalcRindex(wv)
		require.NoError(t, err)
		b, err := want.CalcRindex(wv)
		require.NoError(t, err)
		assert.Equal(t, b, a)
	}

	_, err = New(1.5, 0, "", "")
	assert.Error(t, err)
}
