// Package rindexinfo loads material files from the RefractiveIndex.INFO
// database (https://refractiveindex.info), either from a local checkout or
// over HTTP.
package rindexinfo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/opticalglass/internal/dispersion"
	"github.com/udisondev/opticalglass/internal/medium"
)

// CatalogName is the pseudo catalog that makes the factory treat a glass
// name as a database path or URL.
const CatalogName = "rindexinfo"

// CatalogPrefix starts the catalog name of every loaded material.
const CatalogPrefix = "rii-"

var (
	ErrNoData        = errors.New("rindexinfo: file has no DATA entries")
	ErrUnsupported   = errors.New("rindexinfo: unsupported data type")
	ErrMalformedData = errors.New("rindexinfo: malformed data")
)

// dataMarkers are the path components preceding the shelf in the known
// database layouts.
var dataMarkers = []string{"database/data-nk/", "database/data/"}

type document struct {
	References string    `yaml:"REFERENCES"`
	Comments   string    `yaml:"COMMENTS"`
	Data       []dataset `yaml:"DATA"`
}

type dataset struct {
	Type            string `yaml:"type"`
	WavelengthRange string `yaml:"wavelength_range"`
	Coefficients    string `yaml:"coefficients"`
	Data            string `yaml:"data"`
}

// NameFromPath derives a glass name and catalog from a database file path
// or URL. "database/data/glass/schott/N-BK7.yml" gives ("N-BK7",
// "rii-schott"); "database/data/main/SiO2/Malitson.yml" gives
// ("SiO2 [Malitson]", "rii-main"). Paths outside a database checkout are
// named after the file.
func NameFromPath(path string) (name, catalog string) {
	path = strings.TrimSuffix(strings.TrimSuffix(path, ".yml"), ".yaml")

	rel := ""
	for _, marker := range dataMarkers {
		if _, after, ok := strings.Cut(path, marker); ok {
			rel = after
			break
		}
	}
	if rel == "" {
		base := path[strings.LastIndexAny(path, `/\`)+1:]
		return base, strings.TrimSuffix(CatalogPrefix, "-")
	}

	parts := strings.Split(rel, "/")
	catalog = CatalogPrefix
	if (parts[0] == "glass" || parts[0] == "other") && len(parts) > 2 {
		catalog += parts[1]
		parts = parts[2:]
	} else if len(parts) > 1 {
		catalog += parts[0]
		parts = parts[1:]
	}

	switch len(parts) {
	case 1:
		name = parts[0]
	case 2:
		name = parts[0] + " [" + parts[1] + "]"
	default:
		name = strings.Join(parts, "-")
	}
	return name, catalog
}

// Parse builds a medium from the YAML text of a database file. A formula
// dataset yields a *Medium; tabulated n or nk data yields a
// *medium.Interpolated. A second dataset only contributes k values.
func Parse(data []byte, label, catalog string) (medium.Medium, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("rindexinfo: parsing %s: %w", label, err)
	}
	if len(doc.Data) == 0 {
		return nil, ErrNoData
	}

	m, err := parseFirst(doc.Data[0], label, catalog)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", label, err)
	}
	if len(doc.Data) < 2 {
		return m, nil
	}

	kind, _ := strings.CutPrefix(doc.Data[1].Type, "tabulated ")
	if kind != "k" && kind != "nk" {
		slog.Warn("ignoring rindexinfo dataset", "glass", label, "type", doc.Data[1].Type)
		return m, nil
	}
	cols, err := parseTable(doc.Data[1].Data, len(kind)+1)
	if err != nil {
		return nil, fmt.Errorf("%s k values: %w", label, err)
	}
	wvls, kvals := cols[0], cols[len(cols)-1]

	switch v := m.(type) {
	case *Medium:
		v.KWvls, v.KVals = wvls, kvals
	case *medium.Interpolated:
		if err := v.SetKValues(wvls, kvals); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func parseFirst(ds dataset, label, catalog string) (medium.Medium, error) {
	if n, ok := strings.CutPrefix(ds.Type, "formula "); ok {
		return parseFormula(ds, n, label, catalog)
	}

	kind, ok := strings.CutPrefix(ds.Type, "tabulated ")
	if !ok || (kind != "n" && kind != "nk") {
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, ds.Type)
	}
	cols, err := parseTable(ds.Data, len(kind)+1)
	if err != nil {
		return nil, err
	}
	m, err := medium.NewInterpolated(label, catalog, cols[0], cols[1])
	if err != nil {
		return nil, err
	}
	if kind == "nk" {
		if err := m.SetKValues(nil, cols[2]); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func parseFormula(ds dataset, num, label, catalog string) (*Medium, error) {
	n, err := strconv.Atoi(strings.TrimSpace(num))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, ds.Type)
	}
	f, err := dispersion.RIIFormula(n)
	if err != nil {
		return nil, err
	}
	rng, err := parseFloats(ds.WavelengthRange)
	if err != nil || len(rng) != 2 {
		return nil, fmt.Errorf("%w: wavelength_range %q", ErrMalformedData, ds.WavelengthRange)
	}
	coefs, err := parseFloats(ds.Coefficients)
	if err != nil || len(coefs) == 0 {
		return nil, fmt.Errorf("%w: coefficients %q", ErrMalformedData, ds.Coefficients)
	}
	return &Medium{
		Label:   label,
		Catalog: catalog,
		Formula: f,
		Coefs:   coefs,
		Range:   dispersion.Range{Min: rng[0], Max: rng[1]},
	}, nil
}

func parseFloats(s string) ([]float64, error) {
	fields := strings.Fields(s)
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// parseTable reads ncol whitespace separated columns, converting the
// wavelength column from micrometers to nanometers. Rows repeating the
// previous wavelength are dropped.
func parseTable(data string, ncol int) ([][]float64, error) {
	cols := make([][]float64, ncol)
	for i, line := range strings.Split(data, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		row, err := parseFloats(line)
		if err != nil || len(row) < ncol {
			return nil, fmt.Errorf("%w: line %d %q", ErrMalformedData, i+1, line)
		}
		wvl := 1000 * row[0]
		if n := len(cols[0]); n > 0 && cols[0][n-1] == wvl {
			continue
		}
		cols[0] = append(cols[0], wvl)
		for c := 1; c < ncol; c++ {
			cols[c] = append(cols[c], row[c])
		}
	}
	if len(cols[0]) == 0 {
		return nil, fmt.Errorf("%w: empty table", ErrMalformedData)
	}
	return cols, nil
}

// ReadFile loads a database file from disk.
func ReadFile(path string) (medium.Medium, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rindexinfo file %s: %w", path, err)
	}
	name, catalog := NameFromPath(path)
	return Parse(data, name, catalog)
}

// Fetch downloads a database file. A nil client uses http.DefaultClient.
func Fetch(ctx context.Context, client *http.Client, rawURL string) (medium.Medium, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("rindexinfo request %s: %w", rawURL, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: unexpected status %s", rawURL, resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", rawURL, err)
	}

	path := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		path = u.Path
	}
	name, catalog := NameFromPath(path)
	slog.Debug("fetched rindexinfo file", "url", rawURL, "glass", name, "catalog", catalog)
	return Parse(data, name, catalog)
}

// Load dispatches to Fetch for http(s) URLs and to ReadFile otherwise.
func Load(ctx context.Context, client *http.Client, pathOrURL string) (medium.Medium, error) {
	if strings.HasPrefix(pathOrURL, "http://") || strings.HasPrefix(pathOrURL, "https://") {
		return Fetch(ctx, client, pathOrURL)
	}
	return ReadFile(pathOrURL)
}
