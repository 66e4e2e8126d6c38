package testutil

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// NBK7Path is where RIIServer serves NBK7YAML by default.
const NBK7Path = "/database/data/glass/schott/N-BK7.yml"

// NBK7YAML is the Sellmeier entry of Schott N-BK7 in the
// RefractiveIndex.INFO format, with a short extinction table.
const NBK7YAML = `REFERENCES: "SCHOTT optical glass data sheets"
DATA:
  - type: formula 2
    wavelength_range: 0.3 2.5
    coefficients: 0 1.03961212 0.00600069867 0.231792344 0.0200179144 1.01046945 103.560653
  - type: tabulated k
    data: |
        0.300 2.8607E-06
        0.310 1.3679E-06
        0.320 6.6608E-07
        0.334 2.6415E-07
        0.350 9.2894E-08
        0.365 3.4191E-08
        0.370 2.7405E-08
`

// RIIServer serves docs keyed by URL path and answers 404 for anything
// else. With no docs it serves NBK7YAML at NBK7Path. The server is closed
// when the test ends.
func RIIServer(t testing.TB, docs map[string]string) *httptest.Server {
	t.Helper()

	if docs == nil {
		docs = map[string]string{NBK7Path: NBK7YAML}
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := docs[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}
