// Package catalog holds the built-in vendor glass catalogs and the
// registry that resolves catalog names to shared catalog instances.
package catalog

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/udisondev/opticalglass/internal/glasserr"
	"github.com/udisondev/opticalglass/internal/glassname"
	"github.com/udisondev/opticalglass/internal/medium"
)

// Catalog is a named collection of glasses.
type Catalog interface {
	Name() string
	GlassNames() []string
	// GlassList returns every glass with its decoded name, sorted by group.
	GlassList() []glassname.Entry
	// Lookup maps a decoded name to the catalog's own spelling.
	Lookup(d glassname.Decoded) (string, bool)
	// CreateGlass builds the medium for a glass name as spelled by the catalog.
	CreateGlass(name string) (medium.Medium, error)
}

// Resolve decodes name, finds it in c and creates the glass. Names that
// do not decode are matched against the catalog spelling ignoring case.
func Resolve(c Catalog, name string) (medium.Medium, error) {
	name = strings.TrimSpace(name)
	d, err := glassname.Decode(name)
	if err == nil {
		if gn, ok := c.Lookup(d); ok {
			return c.CreateGlass(gn)
		}
		return nil, glasserr.NewNotFound(c.Name(), name)
	}
	if !errors.Is(err, glassname.ErrNoSerial) {
		return nil, err
	}
	for _, gn := range c.GlassNames() {
		if strings.EqualFold(gn, name) {
			return c.CreateGlass(gn)
		}
	}
	return nil, glasserr.NewNotFound(c.Name(), name)
}

// table is the name bookkeeping shared by every catalog: row lookup by
// name and the decoded-name reverse lookup built once at construction.
type table struct {
	name  string
	names []string
	rows  map[string]int // upper-cased name -> row
	exact map[glassname.Decoded]string
	loose map[[3]string][]string // group, serial, suffix -> names
	list  []glassname.Entry
}

func newTable(catalog string, names []string) table {
	t := table{
		name:  catalog,
		names: names,
		rows:  make(map[string]int, len(names)),
		exact: make(map[glassname.Decoded]string, len(names)),
		loose: make(map[[3]string][]string, len(names)),
		list:  make([]glassname.Entry, 0, len(names)),
	}
	for i, gn := range names {
		t.rows[strings.ToUpper(gn)] = i
		d, err := glassname.Decode(gn)
		if err != nil {
			slog.Warn("glass name not decodable", "catalog", catalog, "glass", gn, "error", err)
			continue
		}
		t.exact[d] = gn
		k := [3]string{d.Group, d.Serial, d.Suffix}
		t.loose[k] = append(t.loose[k], gn)
		t.list = append(t.list, glassname.Entry{Decoded: d, Name: gn, Catalog: catalog})
	}
	slices.SortStableFunc(t.list, compareEntries)
	return t
}

func compareEntries(a, b glassname.Entry) int {
	if c := cmp.Compare(a.Decoded.Group, b.Decoded.Group); c != 0 {
		return c
	}
	an, _ := strconv.Atoi(a.Decoded.Serial)
	bn, _ := strconv.Atoi(b.Decoded.Serial)
	if c := cmp.Compare(an, bn); c != 0 {
		return c
	}
	return cmp.Compare(a.Name, b.Name)
}

func (t *table) Name() string { return t.name }

func (t *table) GlassNames() []string { return slices.Clone(t.names) }

func (t *table) GlassList() []glassname.Entry { return slices.Clone(t.list) }

// Lookup tries the exact decoded tuple first, then a match that ignores
// the prefix as long as it is unique.
func (t *table) Lookup(d glassname.Decoded) (string, bool) {
	if gn, ok := t.exact[d]; ok {
		return gn, true
	}
	if names := t.loose[[3]string{d.Group, d.Serial, d.Suffix}]; len(names) == 1 {
		return names[0], true
	}
	return "", false
}

// GlassIndex returns the row of a glass, matching the name without regard
// to case.
func (t *table) GlassIndex(name string) (int, error) {
	i, ok := t.rows[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return -1, glasserr.NewNotFound(t.name, name)
	}
	return i, nil
}

func (t *table) String() string {
	return fmt.Sprintf("%s catalog (%d glasses)", t.name, len(t.names))
}
