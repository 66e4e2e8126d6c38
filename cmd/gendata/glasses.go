package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/opticalglass/internal/dispersion"
	"github.com/udisondev/opticalglass/internal/spectral"
)

// --- YAML structures (vendor catalogs) ---

type yamlCatalog struct {
	Catalog           string      `yaml:"catalog"`
	Formula           string      `yaml:"formula"`
	CoefficientLayout string      `yaml:"coefficient_layout"` // "grouped" lists K1 K2 K3 L1 L2 L3
	Glasses           []yamlGlass `yaml:"glasses"`
}

type yamlGlass struct {
	Name         string             `yaml:"name"`
	Formula      string             `yaml:"formula"`
	Coefs        []float64          `yaml:"coefs"`
	Indices      map[string]float64 `yaml:"indices"`
	Vd           float64            `yaml:"vd"`
	Ve           float64            `yaml:"ve"`
	Density      float64            `yaml:"density"`
	Transmission [][2]float64       `yaml:"transmission"` // nm, 10 mm internal transmittance
}

// --- Parsed structures ---

type parsedGlass struct {
	name    string
	formula dispersion.Formula
	coefs   []float64
	yamlGlass
}

// goFormulas names the dispersion constants the generated code refers to.
var goFormulas = map[dispersion.Formula]string{
	dispersion.Schott:     "dispersion.Schott",
	dispersion.Sellmeier3: "dispersion.Sellmeier3",
	dispersion.Hikari9:    "dispersion.Hikari9",
	dispersion.Hoya12:     "dispersion.Hoya12",
}

func vendorGenerator(key string) func(dataDir, outDir string) error {
	return func(dataDir, outDir string) error {
		src := filepath.Join(dataDir, key+".yaml")
		cat, glasses, err := parseCatalog(src)
		if err != nil {
			return fmt.Errorf("parse %s: %w", key, err)
		}

		outPath := filepath.Join(outDir, key+"_data_generated.go")
		if err := generateCatalogGoFile(key, cat, glasses, outPath); err != nil {
			return fmt.Errorf("generate %s: %w", key, err)
		}

		fmt.Printf("  Generated %s: %d glasses\n", outPath, len(glasses))
		return nil
	}
}

func parseCatalog(path string) (*yamlCatalog, []parsedGlass, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	var cat yamlCatalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	if cat.Catalog == "" {
		return nil, nil, fmt.Errorf("%s: missing catalog name", path)
	}

	glasses := make([]parsedGlass, 0, len(cat.Glasses))
	for _, yg := range cat.Glasses {
		g, err := convertGlass(&cat, yg)
		if err != nil {
			return nil, nil, fmt.Errorf("%s glass %s: %w", cat.Catalog, yg.Name, err)
		}
		glasses = append(glasses, g)
	}
	return &cat, glasses, nil
}

func convertGlass(cat *yamlCatalog, yg yamlGlass) (parsedGlass, error) {
	name := yg.Formula
	if name == "" {
		name = cat.Formula
	}
	f, err := dispersion.ParseFormula(name)
	if err != nil {
		return parsedGlass{}, err
	}
	if _, ok := goFormulas[f]; !ok {
		return parsedGlass{}, fmt.Errorf("formula %s not supported in catalog tables", f)
	}

	coefs := yg.Coefs
	if f == dispersion.Sellmeier3 && cat.CoefficientLayout == "grouped" {
		coefs = dispersion.GroupedToPairs(coefs)
	}
	if err := f.Validate(coefs); err != nil {
		return parsedGlass{}, err
	}
	for line := range yg.Indices {
		if !spectral.IsLine(line) {
			return parsedGlass{}, fmt.Errorf("unknown spectral line %q", line)
		}
	}
	return parsedGlass{name: yg.Name, formula: f, coefs: coefs, yamlGlass: yg}, nil
}

func generateCatalogGoFile(key string, cat *yamlCatalog, glasses []parsedGlass, outPath string) error {
	var buf bytes.Buffer
	writeHeader(&buf, key+".yaml", "internal/dispersion")
	fmt.Fprintf(&buf, "var %sCatalog = catalogDef{name: %q, glasses: %sGlasses}\n\n", key, cat.Catalog, key)
	fmt.Fprintf(&buf, "var %sGlasses = []glassDef{\n", key)

	for i := range glasses {
		writeGlassDef(&buf, &glasses[i])
	}

	buf.WriteString("}\n")
	return writeGoFile(outPath, buf.Bytes())
}

func writeGlassDef(buf *bytes.Buffer, g *parsedGlass) {
	fmt.Fprintf(buf, "{name: %q, formula: %s, coefs: []float64{%s}, indices: map[string]float64{",
		g.name, goFormulas[g.formula], formatFloats(g.coefs))

	// Vendor line order, red to blue.
	first := true
	for _, line := range spectral.Lines() {
		v, ok := g.Indices[line]
		if !ok {
			continue
		}
		if !first {
			buf.WriteString(", ")
		}
		first = false
		fmt.Fprintf(buf, "%q: %s", line, formatFloat(v))
	}

	fmt.Fprintf(buf, "}, vd: %s, ve: %s, density: %s, transmission: []transmissionDef{",
		formatFloat(g.Vd), formatFloat(g.Ve), formatFloat(g.Density))
	for i, t := range g.Transmission {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(buf, "{%s, %s}", formatFloat(t[0]), formatFloat(t[1]))
	}
	buf.WriteString("}},\n")
}
