package registry

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/opticalglass/internal/buchdahl"
	"github.com/udisondev/opticalglass/internal/catalog"
	"github.com/udisondev/opticalglass/internal/dispersion"
	"github.com/udisondev/opticalglass/internal/medium"
	"github.com/udisondev/opticalglass/internal/modelglass"
	"github.com/udisondev/opticalglass/internal/rindexinfo"
	"github.com/udisondev/opticalglass/internal/testutil"
)

var probeWvls = []float64{450, 486.1327, 546.074, 587.5618, 656.2725}

func catalogResolver(t *testing.T) CatalogResolver {
	t.Helper()
	cats := catalog.NewBuiltinRegistry()
	return func(name, cat string) (medium.Medium, error) {
		c, err := cats.Get(cat)
		if err != nil {
			return nil, err
		}
		return catalog.Resolve(c, name)
	}
}

func sampleMedia(t *testing.T, resolve CatalogResolver) []medium.Medium {
	t.Helper()

	mg, err := modelglass.New(1.6, 45, "MG-1", "lab")
	require.NoError(t, err)

	interp, err := medium.NewInterpolated("melt-42", "lab",
		[]float64{400, 500, 600, 700}, []float64{1.53, 1.522, 1.517, 1.514})
	require.NoError(t, err)
	require.NoError(t, interp.SetKValues(nil, []float64{1e-8, 5e-9, 4e-9, 3e-9}))

	bk7, err := resolve("N-BK7", "Schott")
	require.NoError(t, err)
	fit, err := buchdahl.FromMedium(bk7, buchdahl.WithLabel("BK7-fit", "lab"))
	require.NoError(t, err)

	rii := &rindexinfo.Medium{
		Label:   "N-BK7",
		Catalog: "rii-schott",
		Formula: dispersion.RII2,
		Coefs:   []float64{0, 1.03961212, 0.00600069867, 0.231792344, 0.0200179144, 1.01046945, 103.560653},
		Range:   dispersion.Range{Min: 0.3, Max: 2.5},
	}

	sf6, err := resolve("N-SF6", "Schott")
	require.NoError(t, err)

	return []medium.Medium{mg, interp, fit, rii, sf6, medium.Air{}}
}

func TestRegisterLookup(t *testing.T) {
	t.Parallel()

	r := New()
	mg, err := modelglass.New(1.6, 45, "MG-1", "lab")
	require.NoError(t, err)
	require.NoError(t, r.Register(mg))

	got, ok := r.Lookup(" MG-1 ", " lab ")
	require.True(t, ok)
	assert.Same(t, mg, got)

	_, ok = r.Lookup("mg-1", "lab")
	assert.False(t, ok, "lookup is exact")

	mg2, err := modelglass.New(1.62, 40, "MG-1", "lab")
	require.NoError(t, err)
	require.NoError(t, r.Register(mg2))
	assert.Equal(t, 1, r.Len())
	got, _ = r.Lookup("MG-1", "lab")
	assert.Same(t, mg2, got)

	other, err := modelglass.New(1.7, 30, "MG-2", "")
	require.NoError(t, err)
	require.NoError(t, r.Register(other))
	assert.Equal(t, []string{"lab", modelglass.DefaultCatalog}, r.Catalogs())
	assert.Len(t, r.CatalogList("LAB"), 1)
	assert.Len(t, r.List(), 2)

	assert.ErrorIs(t, r.Register(&medium.Interpolated{}), ErrNoName)

	r.Reset()
	assert.Zero(t, r.Len())
	assert.Empty(t, r.Catalogs())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	resolve := catalogResolver(t)
	src := New()
	media := sampleMedia(t, resolve)
	for _, m := range media {
		require.NoError(t, src.Register(m))
	}

	dir := filepath.Join(t.TempDir(), "glasses")
	require.NoError(t, src.Save(dir))
	assert.FileExists(t, filepath.Join(dir, FileName))

	dst := New(WithCatalogResolver(resolve))
	require.NoError(t, dst.Load(dir))
	require.Equal(t, src.Len(), dst.Len())

	for _, m := range media {
		t.Run(m.Name(), func(t *testing.T) {
			got, ok := dst.Lookup(m.Name(), m.CatalogName())
			require.True(t, ok)
			for _, wv := range probeWvls {
				want, err := m.CalcRindex(wv)
				require.NoError(t, err)
				n, err := got.CalcRindex(wv)
				require.NoError(t, err)
				assert.Equal(t, want, n, "%s at %g", m.Name(), wv)
			}
		})
	}

	got, _ := dst.Lookup("melt-42", "lab")
	tau, err := got.TransmissionData(10)
	require.NoError(t, err)
	want, err := media[1].TransmissionData(10)
	require.NoError(t, err)
	assert.Equal(t, want, tau)
}

func TestLoadSingleFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	files := map[string]string{
		"a.yaml": "kind: model\nname: M1\ncatalog: lab\nnd: 1.5\nvd: 60\n",
		"b.yml":  "kind: buchdahl\nname: B1\ncatalog: lab\nwv0: 0.5875618\nn0: 1.6\ncoefs: [-0.1, 0.01]\n",
		"c.txt":  "not a glass",
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}

	r := New()
	require.NoError(t, r.Load(dir))
	assert.Equal(t, 2, r.Len())

	m, ok := r.Lookup("M1", "lab")
	require.True(t, ok)
	nd, err := m.CalcRindex(587.5618)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, nd, 1e-12)

	b, ok := r.Lookup("B1", "lab")
	require.True(t, ok)
	n0, err := b.CalcRindex(587.5618)
	require.NoError(t, err)
	assert.InDelta(t, 1.6, n0, 1e-12)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	r := New()
	assert.Error(t, r.Load(filepath.Join(t.TempDir(), "missing")))

	bad := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(bad, FileName), []byte("- kind: prism\n  name: X\n"), 0o644))
	assert.ErrorContains(t, r.Load(bad), `unknown kind "prism"`)

	cat := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(cat, FileName), []byte("- kind: catalog\n  name: N-BK7\n  catalog: Schott\n"), 0o644))
	assert.ErrorContains(t, r.Load(cat), "no catalog resolver")
	assert.Zero(t, r.Len())

	failing := New(WithCatalogResolver(func(string, string) (medium.Medium, error) {
		return nil, testutil.ErrSimulated
	}))
	assert.ErrorIs(t, failing.Load(cat), testutil.ErrSimulated)
	assert.Zero(t, failing.Len())
}

type opaque struct{ medium.Air }

func (opaque) Name() string { return "opaque" }

func TestSaveUnsupported(t *testing.T) {
	t.Parallel()

	r := New()
	require.NoError(t, r.Register(opaque{}))
	assert.ErrorIs(t, r.Save(t.TempDir()), ErrUnsupportedMedium)
}

func TestPrint(t *testing.T) {
	t.Parallel()

	r := New()
	mg, err := modelglass.New(1.5168, 64.17, "", "lab")
	require.NoError(t, err)
	require.NoError(t, r.Register(mg))
	require.NoError(t, r.Register(medium.Air{}))

	var buf bytes.Buffer
	require.NoError(t, r.Print(&buf))
	assert.Contains(t, buf.String(), "lab")
	assert.Contains(t, buf.String(), "517.642")
	assert.Contains(t, buf.String(), "air")
}
