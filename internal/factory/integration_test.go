package factory

import (
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/udisondev/opticalglass/internal/buchdahl"
	"github.com/udisondev/opticalglass/internal/glasserr"
	"github.com/udisondev/opticalglass/internal/medium"
	"github.com/udisondev/opticalglass/internal/modelglass"
	"github.com/udisondev/opticalglass/internal/registry"
	"github.com/udisondev/opticalglass/internal/testutil"
)

var visible = []float64{404.6561, 435.8343, 486.1327, 546.0740, 587.5618, 656.2725, 706.5188}

// IntegrationSuite drives a factory through lookup, registration and a
// save/load cycle against a local RefractiveIndex.INFO server.
type IntegrationSuite struct {
	suite.Suite
	srv *httptest.Server
	dir string
	f   *Factory
}

func (s *IntegrationSuite) SetupSuite() {
	s.srv = testutil.RIIServer(s.T(), nil)
}

func (s *IntegrationSuite) SetupTest() {
	s.dir = filepath.Join(s.T().TempDir(), "custom")
	s.f = New(WithHTTPClient(s.srv.Client()))
}

func (s *IntegrationSuite) newFactory() *Factory {
	return New(WithHTTPClient(s.srv.Client()))
}

// TestRoundTrip registers one glass of every persisted kind and checks a
// fresh factory restores identical dispersion from disk.
func (s *IntegrationSuite) TestRoundTrip() {
	ctx := testutil.ContextWithTimeout(s.T(), 10*time.Second)

	cat, err := s.f.CreateGlass("N-SF6", "Schott")
	s.Require().NoError(err)

	rii, err := s.f.CreateGlassContext(ctx, s.srv.URL+testutil.NBK7Path, "rindexinfo")
	s.Require().NoError(err)

	model, err := modelglass.New(1.62, 36.4, "flint", "")
	s.Require().NoError(err)

	fit, err := buchdahl.FromMedium(cat, buchdahl.WithLabel("N-SF6 fit", "fits"))
	s.Require().NoError(err)

	for _, m := range []medium.Medium{cat, rii, model, fit} {
		s.Require().NoError(s.f.RegisterGlass(m))
	}
	s.Require().NoError(s.f.SaveCustomGlasses(s.dir))
	s.FileExists(filepath.Join(s.dir, registry.FileName))

	restored := s.newFactory()
	s.Require().NoError(restored.LoadCustomGlasses(s.dir))
	s.Len(restored.ListCustomGlasses(), 4)

	for _, want := range []medium.Medium{cat, rii, model} {
		got, err := restored.CreateGlass(want.Name(), want.CatalogName())
		s.Require().NoError(err, want.Name())
		testutil.AssertSameDispersion(s.T(), want, got, visible, 1e-12)
	}

	got, ok := restored.Custom().Lookup(fit.Name(), fit.CatalogName())
	s.Require().True(ok)
	testutil.AssertSameDispersion(s.T(), fit, got, visible, 1e-9)
}

// TestCustomShadowsCatalog checks a custom glass wins over the catalog
// entry of the same name.
func (s *IntegrationSuite) TestCustomShadowsCatalog() {
	model, err := modelglass.New(1.5, 60, "N-BK7", "Schott")
	s.Require().NoError(err)
	s.Require().NoError(s.f.RegisterGlass(model))

	got, err := s.f.CreateGlass("N-BK7", "Schott")
	s.Require().NoError(err)
	s.Same(model, got)
}

func (s *IntegrationSuite) TestMissingRemoteGlass() {
	_, err := s.f.CreateGlass(s.srv.URL+"/database/data/glass/schott/N-XX1.yml", "rindexinfo")
	s.Error(err)

	_, err = s.f.CreateGlass("N-XX1", "Schott", "Ohara")
	s.ErrorIs(err, glasserr.ErrGlassNotFound)
}

func (s *IntegrationSuite) TestPreloadCancelled() {
	ctx, cancel := testutil.ContextWithCancel(s.T())
	cancel()
	s.Error(s.newFactory().Preload(ctx))
}

func TestIntegrationSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}

	suite.Run(t, new(IntegrationSuite))
}
