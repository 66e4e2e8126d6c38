// Package registry keeps user-defined glasses keyed by name and catalog
// and persists them to a directory.
package registry

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/udisondev/opticalglass/internal/medium"
)

// ErrNoName is returned when registering a medium without a name.
var ErrNoName = errors.New("registry: medium has no name")

// Key identifies a registered glass.
type Key struct {
	Name    string
	Catalog string
}

func keyOf(name, catalog string) Key {
	return Key{Name: strings.TrimSpace(name), Catalog: strings.TrimSpace(catalog)}
}

// CatalogResolver recreates a catalog glass when a saved registry is
// loaded.
type CatalogResolver func(name, catalog string) (medium.Medium, error)

// Registry is an in-memory store of custom glasses. It is safe for
// concurrent use. Glasses are listed in registration order.
type Registry struct {
	mu      sync.RWMutex
	glasses map[Key]medium.Medium
	order   []Key

	resolve CatalogResolver
}

// Option configures a Registry.
type Option func(*Registry)

// WithCatalogResolver sets how "catalog" records are restored on Load.
func WithCatalogResolver(fn CatalogResolver) Option {
	return func(r *Registry) { r.resolve = fn }
}

// New returns an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{glasses: make(map[Key]medium.Medium)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register stores m under its name and catalog, replacing any glass with
// the same key.
func (r *Registry) Register(m medium.Medium) error {
	k := keyOf(m.Name(), m.CatalogName())
	if k.Name == "" {
		return ErrNoName
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.glasses[k]; !ok {
		r.order = append(r.order, k)
	}
	r.glasses[k] = m
	return nil
}

// Lookup matches name and catalog exactly after trimming whitespace.
func (r *Registry) Lookup(name, catalog string) (medium.Medium, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.glasses[keyOf(name, catalog)]
	return m, ok
}

// List returns every registered glass.
func (r *Registry) List() []medium.Medium {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]medium.Medium, len(r.order))
	for i, k := range r.order {
		out[i] = r.glasses[k]
	}
	return out
}

// Catalogs returns the distinct catalog names of the registered glasses.
func (r *Registry) Catalogs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []string
	for _, k := range r.order {
		if !slices.Contains(out, k.Catalog) {
			out = append(out, k.Catalog)
		}
	}
	return out
}

// CatalogList returns the glasses registered under catalog, matched
// without regard to case.
func (r *Registry) CatalogList(catalog string) []medium.Medium {
	catalog = strings.TrimSpace(catalog)
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []medium.Medium
	for _, k := range r.order {
		if strings.EqualFold(k.Catalog, catalog) {
			out = append(out, r.glasses[k])
		}
	}
	return out
}

// Len returns the number of registered glasses.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Reset drops every registered glass.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.glasses)
	r.order = nil
}

// Print writes one line per glass: catalog, name and glass code.
func (r *Registry) Print(w io.Writer) error {
	for _, m := range r.List() {
		code, err := medium.GlassCode(m)
		if err != nil {
			slog.Debug("no glass code", "glass", m.Name(), "error", err)
			code = "-"
		}
		if _, err := fmt.Fprintf(w, "%-16s %-20s %s\n", m.CatalogName(), m.Name(), code); err != nil {
			return err
		}
	}
	return nil
}
