package catalog

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/udisondev/opticalglass/internal/glasserr"
)

// BuildFunc constructs a catalog on first use.
type BuildFunc func() (Catalog, error)

type registryEntry struct {
	name  string
	build BuildFunc
	once  sync.Once
	cat   Catalog
	err   error
}

func (e *registryEntry) get() (Catalog, error) {
	e.once.Do(func() {
		e.cat, e.err = e.build()
		if e.err != nil {
			e.err = fmt.Errorf("load catalog %s: %w", e.name, e.err)
		}
	})
	return e.cat, e.err
}

// Registry maps catalog names, matched without regard to case, to one
// shared instance per catalog. Catalogs are built lazily on first Get.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*registryEntry
	order   []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*registryEntry)}
}

// NewBuiltinRegistry returns a registry with the vendor catalogs and the
// Robb1983 sub-catalogs.
func NewBuiltinRegistry() *Registry {
	r := NewRegistry()
	for _, def := range vendorCatalogs {
		r.Register(def.name, func() (Catalog, error) {
			return newGlassCatalog(def)
		})
	}
	for _, vendor := range RobbCatalogs {
		r.Register(RobbPrefix+vendor, func() (Catalog, error) {
			return newRobbCatalog(vendor), nil
		})
	}
	return r
}

var vendorCatalogs = []*catalogDef{
	&cdgmCatalog,
	&hikariCatalog,
	&hoyaCatalog,
	&oharaCatalog,
	&schottCatalog,
	&sumitaCatalog,
}

// Register adds or replaces a catalog under name.
func (r *Registry) Register(name string, build BuildFunc) {
	key := strings.ToUpper(name)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[key]; !ok {
		r.order = append(r.order, name)
	}
	r.entries[key] = &registryEntry{name: name, build: build}
}

// Get returns the shared catalog instance for name.
func (r *Registry) Get(name string) (Catalog, error) {
	name = strings.TrimSpace(name)
	r.mu.RLock()
	e, ok := r.entries[strings.ToUpper(name)]
	r.mu.RUnlock()
	if !ok {
		return nil, &glasserr.CatalogNotFoundError{Catalog: name}
	}
	return e.get()
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[strings.ToUpper(strings.TrimSpace(name))]
	return ok
}

// Names returns the registered catalog names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.order)
}
