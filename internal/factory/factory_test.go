package factory

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/opticalglass/internal/catalog"
	"github.com/udisondev/opticalglass/internal/glasserr"
	"github.com/udisondev/opticalglass/internal/medium"
	"github.com/udisondev/opticalglass/internal/modelglass"
	"github.com/udisondev/opticalglass/internal/rindexinfo"
	"github.com/udisondev/opticalglass/internal/spectral"
	"github.com/udisondev/opticalglass/internal/testutil"
)

func TestCreateGlassForms(t *testing.T) {
	t.Parallel()

	f := New()
	want, err := f.CreateGlass("N-BK7", "Schott")
	require.NoError(t, err)

	tests := []struct {
		name string
		get  func() (medium.Medium, error)
	}{
		{"spec", func() (medium.Medium, error) { return f.CreateGlassSpec("N-BK7,Schott") }},
		{"spec with spaces", func() (medium.Medium, error) { return f.CreateGlassSpec(" n-bk7 , SCHOTT ") }},
		{"padded", func() (medium.Medium, error) { return f.CreateGlass(" n-bk7 ", " SCHOTT ") }},
		{"lower catalog", func() (medium.Medium, error) { return f.CreateGlass("N-BK7", "schott") }},
		{"no prefix", func() (medium.Medium, error) { return f.CreateGlass("BK7", "Schott") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.get()
			require.NoError(t, err)
			assert.Equal(t, want.Name(), got.Name())
			assert.Equal(t, want.CatalogName(), got.CatalogName())
			for _, line := range spectral.Lines() {
				a, err := medium.Rindex(want, spectral.Line(line))
				require.NoError(t, err)
				b, err := medium.Rindex(got, spectral.Line(line))
				require.NoError(t, err)
				assert.Equal(t, a, b, line)
			}
		})
	}
}

func TestCreateGlassErrors(t *testing.T) {
	t.Parallel()

	f := New()

	_, err := f.CreateGlass("bogus-name", "Schott")
	assert.ErrorIs(t, err, glasserr.ErrGlassNotFound)

	_, err = f.CreateGlass("N-BK7", "NoSuchCatalog")
	assert.ErrorIs(t, err, glasserr.ErrCatalogNotFound)
	var cnf *glasserr.CatalogNotFoundError
	require.True(t, errors.As(err, &cnf))
	assert.Equal(t, "NoSuchCatalog", cnf.Catalog)

	_, err = f.CreateGlass("bogus-name", "Schott", "NoSuchCatalog", " Ohara ")
	var nf *glasserr.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, []string{"Schott", "NoSuchCatalog", "Ohara"}, nf.Catalogs)
	assert.Equal(t, "bogus-name", nf.Name)
	assert.NotErrorIs(t, err, glasserr.ErrCatalogNotFound)
}

func TestCreateGlassCandidates(t *testing.T) {
	t.Parallel()

	f := New()

	g, err := f.CreateGlass("S-TIM2", "NoSuchCatalog", "Schott", "Ohara")
	require.NoError(t, err)
	assert.Equal(t, "Ohara", g.CatalogName())

	g, err = f.CreateGlass("N-SK16")
	require.NoError(t, err)
	assert.Equal(t, "Schott", g.CatalogName())

	g, err = f.CreateGlassSpec("S-BSL7,Schott,Ohara")
	require.NoError(t, err)
	assert.Equal(t, "S-BSL 7", g.Name())

	g, err = f.CreateGlass("BK7", "Robb1983.SCHOTT")
	require.NoError(t, err)
	assert.Equal(t, "Robb1983.SCHOTT", g.CatalogName())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = f.CreateGlassContext(ctx, "bogus-name", "Schott", "Ohara")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCustomGlasses(t *testing.T) {
	t.Parallel()

	f := New(WithDefaultCatalogs("Schott"))
	mg, err := modelglass.New(1.6, 45, "MG-1", "lab")
	require.NoError(t, err)
	require.NoError(t, f.RegisterGlass(mg))

	bk7, err := f.CreateGlass("N-BK7", "Schott")
	require.NoError(t, err)
	require.NoError(t, f.RegisterGlass(bk7))

	got, err := f.CreateGlass(" MG-1 ", "lab")
	require.NoError(t, err)
	assert.Same(t, mg, got)

	_, err = f.CreateGlass("MG-2", "lab")
	assert.ErrorIs(t, err, glasserr.ErrGlassNotFound)

	c, err := f.GetCatalog("lab")
	require.NoError(t, err)
	assert.Equal(t, []string{"MG-1"}, c.GlassNames())
	viaCat, err := catalog.Resolve(c, "mg-1")
	require.NoError(t, err)
	assert.Same(t, mg, viaCat)

	_, err = f.GetCatalog("nowhere")
	assert.ErrorIs(t, err, glasserr.ErrCatalogNotFound)

	before := map[string][2]float64{}
	for _, m := range f.ListCustomGlasses() {
		nF, err := medium.Rindex(m, spectral.Line("F"))
		require.NoError(t, err)
		nC, err := medium.Rindex(m, spectral.Line("C"))
		require.NoError(t, err)
		before[m.Name()+","+m.CatalogName()] = [2]float64{nF, nC}
	}

	dir := filepath.Join(t.TempDir(), "custom")
	require.NoError(t, f.SaveCustomGlasses(dir))

	reloaded := New(WithDefaultCatalogs("Schott"))
	require.NoError(t, reloaded.LoadCustomGlasses(dir))
	require.Len(t, reloaded.ListCustomGlasses(), 2)

	for spec, want := range before {
		m, err := reloaded.CreateGlassSpec(spec)
		require.NoError(t, err, spec)
		nF, err := medium.Rindex(m, spectral.Line("F"))
		require.NoError(t, err)
		nC, err := medium.Rindex(m, spectral.Line("C"))
		require.NoError(t, err)
		assert.Equal(t, want, [2]float64{nF, nC}, spec)
	}
}

func TestRindexInfoCatalog(t *testing.T) {
	t.Parallel()

	srv := testutil.RIIServer(t, nil)

	f := New(WithHTTPClient(srv.Client()))
	m, err := f.CreateGlass(srv.URL+testutil.NBK7Path, "RindexInfo")
	require.NoError(t, err)
	assert.IsType(t, &rindexinfo.Medium{}, m)
	assert.Equal(t, "N-BK7", m.Name())
	assert.Equal(t, "rii-schott", m.CatalogName())
	testutil.AssertLineIndices(t, m, map[string]float64{"d": 1.5168}, 5e-6)

	_, err = f.CreateGlass(srv.URL+"/database/data/glass/schott/missing.yml", "RindexInfo")
	assert.Error(t, err)
}

func TestPreload(t *testing.T) {
	t.Parallel()

	f := New()
	require.NoError(t, f.Preload(context.Background()))
	require.NoError(t, f.Preload(context.Background(), "Schott", "hoya"))

	err := f.Preload(context.Background(), "Schott", "NoSuchCatalog")
	assert.ErrorIs(t, err, glasserr.ErrCatalogNotFound)
}

func TestDefault(t *testing.T) {
	t.Parallel()

	assert.Same(t, Default(), Default())
	assert.NotNil(t, Default().Catalogs())
	assert.NotNil(t, Default().Custom())
}
