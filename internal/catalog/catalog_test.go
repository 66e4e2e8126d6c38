package catalog

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/opticalglass/internal/buchdahl"
	"github.com/udisondev/opticalglass/internal/glasserr"
	"github.com/udisondev/opticalglass/internal/glassname"
	"github.com/udisondev/opticalglass/internal/medium"
	"github.com/udisondev/opticalglass/internal/spectral"
)

func getGlassCatalog(t *testing.T, r *Registry, name string) *GlassCatalog {
	t.Helper()
	c, err := r.Get(name)
	require.NoError(t, err)
	gc, ok := c.(*GlassCatalog)
	require.True(t, ok, "%s is %T", name, c)
	return gc
}

// Every formula must reproduce the vendor's own tabulated indices.
func TestCalcRindexMatchesMeasured(t *testing.T) {
	t.Parallel()

	tests := []struct {
		catalog string
		tol     float64
	}{
		{"Schott", 5e-6},
		{"Ohara", 5e-6},
		{"Hoya", 5e-6},
		{"Sumita", 5e-6},
		{"CDGM", 1.1e-5},
		{"Hikari", 1.1e-5},
	}

	r := NewBuiltinRegistry()
	for _, tt := range tests {
		t.Run(tt.catalog, func(t *testing.T) {
			t.Parallel()

			cat := getGlassCatalog(t, r, tt.catalog)
			require.NotEmpty(t, cat.GlassNames())
			for _, gn := range cat.GlassNames() {
				g, err := cat.Glass(gn)
				require.NoError(t, err)
				for _, line := range spectral.Lines() {
					meas, err := g.MeasRindex(line)
					require.NoError(t, err, "%s %s", gn, line)
					calc, err := medium.Rindex(g, spectral.Line(line))
					require.NoError(t, err)
					assert.InDelta(t, meas, calc, tt.tol, "%s %s line %s", tt.catalog, gn, line)
				}
			}
		})
	}
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	r := NewBuiltinRegistry()
	a, err := r.Get("schott")
	require.NoError(t, err)
	b, err := r.Get(" SCHOTT ")
	require.NoError(t, err)
	assert.Same(t, a, b)
	assert.Equal(t, "Schott", a.Name())

	_, err = r.Get("NoSuchCatalog")
	var cnf *glasserr.CatalogNotFoundError
	require.True(t, errors.As(err, &cnf))
	assert.Equal(t, "NoSuchCatalog", cnf.Catalog)

	names := r.Names()
	assert.Contains(t, names, "Hoya")
	assert.Contains(t, names, "Robb1983.CORNING-FRANCE")
	assert.True(t, r.Has("robb1983.schott"))
	assert.False(t, r.Has("Robb1983"))
}

func TestRegistryBuildError(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	calls := 0
	r.Register("Broken", func() (Catalog, error) {
		calls++
		return nil, errors.New("boom")
	})

	_, err := r.Get("broken")
	assert.ErrorContains(t, err, "load catalog Broken: boom")
	_, err = r.Get("broken")
	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestResolve(t *testing.T) {
	t.Parallel()

	r := NewBuiltinRegistry()
	schott, err := r.Get("Schott")
	require.NoError(t, err)
	ohara, err := r.Get("Ohara")
	require.NoError(t, err)

	tests := []struct {
		cat  Catalog
		in   string
		want string
	}{
		{schott, "N-BK7", "N-BK7"},
		{schott, " n-bk7 ", "N-BK7"},
		{schott, "BK7", "N-BK7"},
		{schott, "SF6", "SF6"},
		{schott, "N-SF6", "N-SF6"},
		{schott, "SF57", "N-SF57"},
		{schott, "N-SF57HT", "N-SF57HT"},
		{ohara, "S-TIM2", "S-TIM 2"},
		{ohara, "s-bsl7", "S-BSL 7"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			g, err := Resolve(tt.cat, tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, g.Name())
			assert.Equal(t, tt.cat.Name(), g.CatalogName())
		})
	}

	for _, bad := range []string{"NBK7", "bogus-name", "N-BK8"} {
		_, err := Resolve(schott, bad)
		assert.ErrorIs(t, err, glasserr.ErrGlassNotFound, bad)
	}
}

func TestGlassList(t *testing.T) {
	t.Parallel()

	cat := getGlassCatalog(t, NewBuiltinRegistry(), "Schott")
	list := cat.GlassList()
	require.Len(t, list, len(cat.GlassNames()))

	for i := 1; i < len(list); i++ {
		assert.LessOrEqual(t, list[i-1].Decoded.Group, list[i].Decoded.Group)
	}
	assert.Equal(t, "Schott", list[0].Catalog)

	stats := glassname.Stats(list)
	assert.Contains(t, stats.Prefixes, "N")
	assert.Contains(t, stats.Variants, [2]string{"SF", "57"})
}

func TestGlassData(t *testing.T) {
	t.Parallel()

	cat := getGlassCatalog(t, NewBuiltinRegistry(), "Schott")

	vd, err := cat.GlassData("N-BK7", "vd")
	require.NoError(t, err)
	assert.Equal(t, 64.17, vd)

	nd, err := cat.GlassData("n-bk7", "nd")
	require.NoError(t, err)
	assert.Equal(t, 1.5168, nd)

	k1, err := cat.GlassData("N-BK7", "K1")
	require.NoError(t, err)
	assert.Equal(t, 1.03961212, k1)

	l3, err := cat.GlassData("N-BK7", "L3")
	require.NoError(t, err)
	assert.Equal(t, 103.560653, l3)

	_, err = cat.GlassData("N-BK7", "tg")
	var dnf *glasserr.DataNotFoundError
	require.True(t, errors.As(err, &dnf))
	assert.Equal(t, "tg", dnf.Item)

	_, err = cat.GlassData("NOPE", "vd")
	assert.ErrorIs(t, err, glasserr.ErrGlassNotFound)

	hoya := getGlassCatalog(t, NewBuiltinRegistry(), "Hoya")
	a0, err := hoya.GlassData("BSC7", "A0")
	require.NoError(t, err)
	assert.InDelta(t, 2.2718929, a0, 1e-12)

	f, coefs, err := cat.Coefs("N-BK7")
	require.NoError(t, err)
	assert.Equal(t, "sellmeier3", f.String())
	coefs[0] = 0
	_, again, _ := cat.Coefs("N-BK7")
	assert.NotEqual(t, 0.0, again[0])

	d := cat.MeasuredIndices("d")
	assert.Len(t, d, len(cat.GlassNames()))
	assert.True(t, math.IsNaN(cat.MeasuredIndices("x")[0]))
}

func TestGlassMedium(t *testing.T) {
	t.Parallel()

	cat := getGlassCatalog(t, NewBuiltinRegistry(), "Schott")
	g, err := cat.Glass("N-BK7")
	require.NoError(t, err)

	assert.Equal(t, "517.642", g.GlassCode())
	assert.Equal(t, "Schott N-BK7: 517.642", g.String())

	_, err = g.MeasRindex("He-Ne")
	assert.ErrorIs(t, err, glasserr.ErrDataNotFound)

	all, err := medium.RindexAll(g, []float64{486.1327, 587.5618})
	require.NoError(t, err)
	assert.InDelta(t, 1.52238, all[0], 5e-6)
	assert.InDelta(t, 1.51680, all[1], 5e-6)

	t10, err := g.TransmissionData(10)
	require.NoError(t, err)
	t5, err := g.TransmissionData(5)
	require.NoError(t, err)
	require.Equal(t, len(t10), len(t5))
	for i := range t10 {
		assert.InDelta(t, math.Sqrt(t10[i].Tau), t5[i].Tau, 1e-12)
		if i > 0 {
			assert.Less(t, t10[i-1].WavelengthNM, t10[i].WavelengthNM)
		}
	}
}

func TestRobbCatalog(t *testing.T) {
	t.Parallel()

	r := NewBuiltinRegistry()
	for _, vendor := range RobbCatalogs {
		c, err := r.Get(RobbPrefix + vendor)
		require.NoError(t, err)
		rc, ok := c.(*RobbCatalog)
		require.True(t, ok)

		for _, gn := range rc.GlassNames() {
			m, err := rc.CreateGlass(gn)
			require.NoError(t, err)
			assert.IsType(t, &buchdahl.Model{}, m)
			assert.Equal(t, RobbPrefix+vendor, m.CatalogName())

			nd, _, _, err := rc.Coefficients(gn)
			require.NoError(t, err)
			got, err := medium.Rindex(m, spectral.Line("d"))
			require.NoError(t, err)
			assert.Equal(t, nd, got)
		}
	}

	c, err := r.Get("Robb1983.SCHOTT")
	require.NoError(t, err)
	g, err := Resolve(c, "BK7")
	require.NoError(t, err)
	nF, err := medium.Rindex(g, spectral.Line("F"))
	require.NoError(t, err)
	assert.InDelta(t, 1.52238, nF, 1e-4)
}
