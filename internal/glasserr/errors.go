// Package glasserr defines the error kinds shared by catalogs, the glass
// factory and the dispersion formulas.
//
// Every typed error unwraps to one of the sentinels below, so callers match
// the kind with errors.Is and read the details with errors.As.
package glasserr

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrCatalogNotFound    = errors.New("glass catalog not found")
	ErrGlassNotFound      = errors.New("glass not found")
	ErrDataNotFound       = errors.New("glass data not found")
	ErrOutOfBounds        = errors.New("wavelength out of bounds")
	ErrNoTransmissionData = errors.New("no transmission data")
)

// CatalogNotFoundError reports a catalog name with no registered implementation.
type CatalogNotFoundError struct {
	Catalog string
}

func (e *CatalogNotFoundError) Error() string {
	return fmt.Sprintf("glass catalog %q not found", e.Catalog)
}

func (e *CatalogNotFoundError) Unwrap() error { return ErrCatalogNotFound }

// NotFoundError reports a glass name missing from every catalog tried.
type NotFoundError struct {
	Catalogs []string
	Name     string
}

// NewNotFound is a shorthand for a single-catalog NotFoundError.
func NewNotFound(catalog, name string) *NotFoundError {
	return &NotFoundError{Catalogs: []string{catalog}, Name: name}
}

func (e *NotFoundError) Error() string {
	if len(e.Catalogs) == 1 {
		return fmt.Sprintf("glass %q not found in catalog %q", e.Name, e.Catalogs[0])
	}
	return fmt.Sprintf("glass %q not found in catalogs [%s]", e.Name, strings.Join(e.Catalogs, ", "))
}

func (e *NotFoundError) Unwrap() error { return ErrGlassNotFound }

// DataNotFoundError reports a named data item absent from a glass entry.
type DataNotFoundError struct {
	Catalog string
	Glass   string
	Item    string
}

func (e *DataNotFoundError) Error() string {
	return fmt.Sprintf("%s glass %s: data item %q not found", e.Catalog, e.Glass, e.Item)
}

func (e *DataNotFoundError) Unwrap() error { return ErrDataNotFound }

// OutOfBoundsError reports a wavelength outside a formula's validated range.
// All values are in micrometers.
type OutOfBoundsError struct {
	Wavelength float64
	Min        float64
	Max        float64
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("no data for wavelength %g um, valid range is [%g, %g] um", e.Wavelength, e.Min, e.Max)
}

func (e *OutOfBoundsError) Unwrap() error { return ErrOutOfBounds }
