// Package factory is the entry point for creating glasses by name. It
// resolves a glass against the RefractiveIndex.INFO adapter, the custom
// glass registry and the built-in catalogs, in that order.
package factory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/opticalglass/internal/catalog"
	"github.com/udisondev/opticalglass/internal/glasserr"
	"github.com/udisondev/opticalglass/internal/medium"
	"github.com/udisondev/opticalglass/internal/registry"
	"github.com/udisondev/opticalglass/internal/rindexinfo"
)

// DefaultCatalogs are searched when no catalog is given.
var DefaultCatalogs = []string{"CDGM", "Hikari", "Hoya", "Ohara", "Schott", "Sumita"}

const (
	defaultHTTPTimeout = 30 * time.Second
	preloadLimit       = 4
)

// Factory creates glasses. It is safe for concurrent use.
type Factory struct {
	catalogs *catalog.Registry
	custom   *registry.Registry
	client   *http.Client
	defaults []string
}

// Option configures a Factory.
type Option func(*Factory)

// WithCatalogRegistry replaces the built-in catalog registry.
func WithCatalogRegistry(r *catalog.Registry) Option {
	return func(f *Factory) { f.catalogs = r }
}

// WithCustomRegistry replaces the custom glass registry.
func WithCustomRegistry(r *registry.Registry) Option {
	return func(f *Factory) { f.custom = r }
}

// WithHTTPClient sets the client used to fetch RefractiveIndex.INFO files.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Factory) { f.client = c }
}

// WithDefaultCatalogs sets the catalogs searched when none is given.
func WithDefaultCatalogs(names ...string) Option {
	return func(f *Factory) { f.defaults = names }
}

// New returns a factory over the built-in catalogs and an empty custom
// registry.
func New(opts ...Option) *Factory {
	f := &Factory{defaults: DefaultCatalogs}
	for _, opt := range opts {
		opt(f)
	}
	if f.catalogs == nil {
		f.catalogs = catalog.NewBuiltinRegistry()
	}
	if f.custom == nil {
		f.custom = registry.New(registry.WithCatalogResolver(f.catalogGlass))
	}
	if f.client == nil {
		f.client = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return f
}

var (
	defaultFactory *Factory
	defaultOnce    sync.Once
)

// Default returns the process-wide factory, created on first use.
func Default() *Factory {
	defaultOnce.Do(func() {
		defaultFactory = New()
	})
	return defaultFactory
}

// Catalogs returns the catalog registry.
func (f *Factory) Catalogs() *catalog.Registry { return f.catalogs }

// Custom returns the custom glass registry.
func (f *Factory) Custom() *registry.Registry { return f.custom }

// CreateGlass resolves name in catalog. With several catalogs the first
// that has the glass wins and a miss names all of them; with none the
// default catalogs are searched.
func (f *Factory) CreateGlass(name string, catalogs ...string) (medium.Medium, error) {
	return f.CreateGlassContext(context.Background(), name, catalogs...)
}

// CreateGlassContext is CreateGlass with a context for remote lookups.
func (f *Factory) CreateGlassContext(ctx context.Context, name string, catalogs ...string) (medium.Medium, error) {
	name = strings.TrimSpace(name)
	switch len(catalogs) {
	case 0:
		catalogs = f.defaults
	case 1:
		return f.createOne(ctx, name, catalogs[0])
	}

	for _, cat := range catalogs {
		m, err := f.createOne(ctx, name, cat)
		if err == nil {
			return m, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		slog.Debug("glass candidate rejected", "glass", name, "catalog", cat, "error", err)
	}

	slog.Info("glass not found", "glass", name, "catalogs", catalogs)
	cats := make([]string, len(catalogs))
	for i, c := range catalogs {
		cats[i] = strings.TrimSpace(c)
	}
	return nil, &glasserr.NotFoundError{Catalogs: cats, Name: name}
}

// CreateGlassSpec accepts the "name,catalog" form. Further comma separated
// fields are more candidate catalogs.
func (f *Factory) CreateGlassSpec(spec string) (medium.Medium, error) {
	name, rest, ok := strings.Cut(spec, ",")
	if !ok {
		return f.CreateGlass(name)
	}
	return f.CreateGlass(name, strings.Split(rest, ",")...)
}

func (f *Factory) createOne(ctx context.Context, name, cat string) (medium.Medium, error) {
	cat = strings.TrimSpace(cat)
	if strings.EqualFold(cat, rindexinfo.CatalogName) {
		return rindexinfo.Load(ctx, f.client, name)
	}

	if m, ok := f.custom.Lookup(name, cat); ok {
		return m, nil
	}

	c, err := f.catalogs.Get(cat)
	if err != nil {
		if errors.Is(err, glasserr.ErrCatalogNotFound) && len(f.custom.CatalogList(cat)) > 0 {
			return nil, glasserr.NewNotFound(cat, name)
		}
		slog.Info("glass catalog not found", "catalog", cat)
		return nil, err
	}
	return catalog.Resolve(c, name)
}

// catalogGlass restores catalog glasses saved in the custom registry.
func (f *Factory) catalogGlass(name, cat string) (medium.Medium, error) {
	c, err := f.catalogs.Get(cat)
	if err != nil {
		return nil, err
	}
	return catalog.Resolve(c, name)
}

// GetCatalog returns a built-in catalog, or a view of the custom glasses
// registered under name.
func (f *Factory) GetCatalog(name string) (catalog.Catalog, error) {
	c, err := f.catalogs.Get(name)
	if err == nil || !errors.Is(err, glasserr.ErrCatalogNotFound) {
		return c, err
	}
	name = strings.TrimSpace(name)
	if media := f.custom.CatalogList(name); len(media) > 0 {
		return newCustomCatalog(name, media), nil
	}
	slog.Info("glass catalog not found", "catalog", name)
	return nil, err
}

// Preload builds the named catalogs concurrently; with no names every
// registered catalog is built.
func (f *Factory) Preload(ctx context.Context, names ...string) error {
	if len(names) == 0 {
		names = f.catalogs.Names()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(preloadLimit)
	for _, name := range names {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if _, err := f.catalogs.Get(name); err != nil {
				return fmt.Errorf("preloading catalog %s: %w", name, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	slog.Info("preloaded glass catalogs", "count", len(names))
	return nil
}

// RegisterGlass adds m to the custom registry under its name and catalog.
func (f *Factory) RegisterGlass(m medium.Medium) error {
	if err := f.custom.Register(m); err != nil {
		return err
	}
	slog.Debug("registered custom glass", "glass", m.Name(), "catalog", m.CatalogName())
	return nil
}

// SaveCustomGlasses writes the custom registry to dir.
func (f *Factory) SaveCustomGlasses(dir string) error {
	return f.custom.Save(dir)
}

// LoadCustomGlasses adds the glasses saved in dir to the custom registry.
func (f *Factory) LoadCustomGlasses(dir string) error {
	return f.custom.Load(dir)
}

// ListCustomGlasses returns the custom glasses in registration order.
func (f *Factory) ListCustomGlasses() []medium.Medium {
	return f.custom.List()
}
