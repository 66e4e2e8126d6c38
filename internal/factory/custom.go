package factory

import (
	"strings"

	"github.com/udisondev/opticalglass/internal/glasserr"
	"github.com/udisondev/opticalglass/internal/glassname"
	"github.com/udisondev/opticalglass/internal/medium"
)

// customCatalog presents the custom glasses of one catalog name through
// the catalog.Catalog interface.
type customCatalog struct {
	name  string
	media []medium.Medium
}

func newCustomCatalog(name string, media []medium.Medium) *customCatalog {
	return &customCatalog{name: name, media: media}
}

func (c *customCatalog) Name() string { return c.name }

func (c *customCatalog) GlassNames() []string {
	names := make([]string, len(c.media))
	for i, m := range c.media {
		names[i] = m.Name()
	}
	return names
}

func (c *customCatalog) GlassList() []glassname.Entry {
	var out []glassname.Entry
	for _, m := range c.media {
		if d, err := glassname.Decode(m.Name()); err == nil {
			out = append(out, glassname.Entry{Decoded: d, Name: m.Name(), Catalog: c.name})
		}
	}
	return out
}

func (c *customCatalog) Lookup(d glassname.Decoded) (string, bool) {
	for _, m := range c.media {
		if md, err := glassname.Decode(m.Name()); err == nil && md == d {
			return m.Name(), true
		}
	}
	return "", false
}

func (c *customCatalog) CreateGlass(name string) (medium.Medium, error) {
	for _, m := range c.media {
		if strings.EqualFold(m.Name(), strings.TrimSpace(name)) {
			return m, nil
		}
	}
	return nil, glasserr.NewNotFound(c.name, name)
}
