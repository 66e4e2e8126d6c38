package registry

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/opticalglass/internal/buchdahl"
	"github.com/udisondev/opticalglass/internal/catalog"
	"github.com/udisondev/opticalglass/internal/dispersion"
	"github.com/udisondev/opticalglass/internal/medium"
	"github.com/udisondev/opticalglass/internal/modelglass"
	"github.com/udisondev/opticalglass/internal/rindexinfo"
)

// FileName is the file Save writes inside the registry directory.
const FileName = "custom_glasses.yaml"

// Record kinds.
const (
	KindAir          = "air"
	KindInterpolated = "interpolated"
	KindModel        = "model"
	KindBuchdahl     = "buchdahl"
	KindRII          = "rii"
	KindCatalog      = "catalog"
)

var ErrUnsupportedMedium = errors.New("registry: medium type cannot be saved")

// record is the persisted form of one glass. Kind selects which of the
// remaining fields are meaningful.
type record struct {
	Kind    string `yaml:"kind"`
	Name    string `yaml:"name"`
	Catalog string `yaml:"catalog,omitempty"`

	// interpolated
	Wvls  []float64 `yaml:"wvls,omitempty,flow"`
	Rndx  []float64 `yaml:"rndx,omitempty,flow"`
	KWvls []float64 `yaml:"kwvls,omitempty,flow"`
	KVals []float64 `yaml:"kvals,omitempty,flow"`

	// model
	Nd float64 `yaml:"nd,omitempty"`
	Vd float64 `yaml:"vd,omitempty"`
	B  float64 `yaml:"b,omitempty"`
	M  float64 `yaml:"m,omitempty"`

	// buchdahl
	WV0 float64 `yaml:"wv0,omitempty"`
	N0  float64 `yaml:"n0,omitempty"`

	// buchdahl and rii
	Coefs []float64 `yaml:"coefs,omitempty,flow"`

	// rii
	Formula string    `yaml:"formula,omitempty"`
	Range   []float64 `yaml:"range,omitempty,flow"`
}

func encode(m medium.Medium) (record, error) {
	rec := record{Name: m.Name(), Catalog: m.CatalogName()}
	switch v := m.(type) {
	case medium.Air, *medium.Air:
		rec.Kind = KindAir
	case *medium.Interpolated:
		rec.Kind = KindInterpolated
		rec.Wvls, rec.Rndx = v.Wvls, v.Rndx
		rec.KWvls, rec.KVals = v.KWvls, v.KVals
	case *modelglass.Glass:
		rec.Kind = KindModel
		rec.Nd, rec.Vd, rec.B, rec.M = v.Nd, v.Vd, v.B, v.M
	case *buchdahl.Model:
		rec.Kind = KindBuchdahl
		rec.WV0, rec.N0, rec.Coefs = v.WV0, v.N0, v.Coefs
	case *buchdahl.MediumFit:
		return encode(v.Model)
	case *buchdahl.CodeFit:
		return encode(v.Model)
	case *rindexinfo.Medium:
		rec.Kind = KindRII
		rec.Formula = v.Formula.String()
		rec.Coefs = v.Coefs
		rec.Range = []float64{v.Range.Min, v.Range.Max}
		rec.KWvls, rec.KVals = v.KWvls, v.KVals
	case *catalog.Glass:
		rec.Kind = KindCatalog
	default:
		return record{}, fmt.Errorf("%w: %s is %T", ErrUnsupportedMedium, m.Name(), m)
	}
	return rec, nil
}

func (r *Registry) decode(rec record) (medium.Medium, error) {
	var m medium.Medium
	switch rec.Kind {
	case KindAir:
		m = medium.Air{}
	case KindInterpolated:
		m = &medium.Interpolated{
			Label:   rec.Name,
			Catalog: rec.Catalog,
			Wvls:    rec.Wvls,
			Rndx:    rec.Rndx,
			KWvls:   rec.KWvls,
			KVals:   rec.KVals,
		}
	case KindModel:
		m = &modelglass.Glass{Nd: rec.Nd, Vd: rec.Vd, Label: rec.Name, Catalog: rec.Catalog, B: rec.B, M: rec.M}
	case KindBuchdahl:
		m = &buchdahl.Model{WV0: rec.WV0, N0: rec.N0, Coefs: rec.Coefs, Label: rec.Name, Catalog: rec.Catalog}
	case KindRII:
		f, err := dispersion.ParseFormula(rec.Formula)
		if err != nil {
			return nil, err
		}
		if len(rec.Range) != 2 {
			return nil, fmt.Errorf("rii glass %s: range needs 2 values, got %d", rec.Name, len(rec.Range))
		}
		m = &rindexinfo.Medium{
			Label:   rec.Name,
			Catalog: rec.Catalog,
			Formula: f,
			Coefs:   rec.Coefs,
			Range:   dispersion.Range{Min: rec.Range[0], Max: rec.Range[1]},
			KWvls:   rec.KWvls,
			KVals:   rec.KVals,
		}
	case KindCatalog:
		if r.resolve == nil {
			return nil, fmt.Errorf("catalog glass %s: no catalog resolver", rec.Name)
		}
		return r.resolve(rec.Name, rec.Catalog)
	default:
		return nil, fmt.Errorf("glass %s: unknown kind %q", rec.Name, rec.Kind)
	}

	if rs, ok := m.(medium.Restorer); ok {
		if err := rs.SyncToRestore(); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Save writes every registered glass to dir/custom_glasses.yaml, creating
// dir if needed.
func (r *Registry) Save(dir string) error {
	list := r.List()
	recs := make([]record, 0, len(list))
	for _, m := range list {
		rec, err := encode(m)
		if err != nil {
			return err
		}
		recs = append(recs, rec)
	}

	data, err := yaml.Marshal(recs)
	if err != nil {
		return fmt.Errorf("encoding custom glasses: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	slog.Info("saved custom glasses", "path", path, "count", len(recs))
	return nil
}

// Load registers the glasses saved in dir. Without a custom_glasses.yaml
// every *.yaml and *.yml file in dir is read as a single glass. Glasses
// already registered under the same key are replaced.
func (r *Registry) Load(dir string) error {
	if _, err := os.Stat(dir); err != nil {
		return fmt.Errorf("custom glass directory: %w", err)
	}

	recs, err := readRecords(dir)
	if err != nil {
		return err
	}

	media := make([]medium.Medium, 0, len(recs))
	for _, rec := range recs {
		m, err := r.decode(rec)
		if err != nil {
			return fmt.Errorf("loading custom glasses from %s: %w", dir, err)
		}
		media = append(media, m)
	}
	for _, m := range media {
		if err := r.Register(m); err != nil {
			return err
		}
	}

	slog.Info("loaded custom glasses", "dir", dir, "count", len(media))
	return nil
}

func readRecords(dir string) ([]record, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		var recs []record
		if err := yaml.Unmarshal(data, &recs); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		return recs, nil
	case !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var files []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		files = append(files, matches...)
	}
	slices.Sort(files)

	recs := make([]record, 0, len(files))
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f, err)
		}
		var rec record
		if err := yaml.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", f, err)
		}
		recs = append(recs, rec)
	}
	return recs, nil
}
