package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// robbVendors must match catalog.RobbCatalogs.
var robbVendors = []string{"SCHOTT", "OHARA", "HOYA", "CORNING-FRANCE", "CHANCE"}

type yamlRobbFile struct {
	Catalog string        `yaml:"catalog"`
	Glasses []yamlRobbDef `yaml:"glasses"`
}

type yamlRobbDef struct {
	Catalog string  `yaml:"catalog"`
	Name    string  `yaml:"name"`
	Nd      float64 `yaml:"nd"`
	Nu1     float64 `yaml:"nu1"`
	Nu2     float64 `yaml:"nu2"`
}

func generateRobb(dataDir, outDir string) error {
	src := filepath.Join(dataDir, "robb1983.yaml")
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("parse robb1983: %w", err)
	}
	var file yamlRobbFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse robb1983: %w", err)
	}
	for _, g := range file.Glasses {
		if !slices.Contains(robbVendors, g.Catalog) {
			return fmt.Errorf("robb1983 glass %s: unknown vendor %q", g.Name, g.Catalog)
		}
		if g.Nd <= 1 {
			return fmt.Errorf("robb1983 glass %s: nd %g", g.Name, g.Nd)
		}
	}

	var buf bytes.Buffer
	writeHeader(&buf, "robb1983.yaml")
	buf.WriteString("var robb1983Defs = []robbDef{\n")
	for _, g := range file.Glasses {
		fmt.Fprintf(&buf, "{catalog: %q, name: %q, nd: %s, nu1: %s, nu2: %s},\n",
			g.Catalog, g.Name, formatFloat(g.Nd), formatFloat(g.Nu1), formatFloat(g.Nu2))
	}
	buf.WriteString("}\n")

	outPath := filepath.Join(outDir, "robb1983_data_generated.go")
	if err := writeGoFile(outPath, buf.Bytes()); err != nil {
		return fmt.Errorf("generate robb1983: %w", err)
	}

	fmt.Printf("  Generated %s: %d glasses\n", outPath, len(file.Glasses))
	return nil
}
