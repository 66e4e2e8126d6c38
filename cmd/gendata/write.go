package main

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"strconv"
	"strings"
)

const modulePath = "github.com/udisondev/opticalglass"

// writeHeader writes the generated-code banner for a file under
// data/catalogs and the package clause.
func writeHeader(buf *bytes.Buffer, source string, imports ...string) {
	fmt.Fprintf(buf, "// Code generated by cmd/gendata from %s/%s. DO NOT EDIT.\n\n", dataDir, source)
	buf.WriteString("package catalog\n\n")
	for _, imp := range imports {
		fmt.Fprintf(buf, "import %q\n\n", modulePath+"/"+imp)
	}
}

// writeGoFile gofmts src and writes it to path.
func writeGoFile(path string, src []byte) error {
	formatted, err := format.Source(src)
	if err != nil {
		return fmt.Errorf("gofmt %s: %w", path, err)
	}
	if err := os.WriteFile(path, formatted, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// formatFloat prints the shortest literal that round-trips.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatFloats(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = formatFloat(v)
	}
	return strings.Join(parts, ", ")
}
