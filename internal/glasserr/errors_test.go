package glasserr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		sentinel error
		msg      string
	}{
		{"catalog", &CatalogNotFoundError{Catalog: "xSchott"}, ErrCatalogNotFound, `glass catalog "xSchott" not found`},
		{"glass single", NewNotFound("Schott", "NBK7"), ErrGlassNotFound, `glass "NBK7" not found in catalog "Schott"`},
		{"glass list", &NotFoundError{Catalogs: []string{"Schott", "Hoya"}, Name: "X1"}, ErrGlassNotFound, `glass "X1" not found in catalogs [Schott, Hoya]`},
		{"data", &DataNotFoundError{Catalog: "Schott", Glass: "N-BK7", Item: "tg"}, ErrDataNotFound, `Schott glass N-BK7: data item "tg" not found`},
		{"bounds", &OutOfBoundsError{Wavelength: 3, Min: 0.3, Max: 2.5}, ErrOutOfBounds, "no data for wavelength 3 um, valid range is [0.3, 2.5] um"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			wrapped := fmt.Errorf("outer: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.sentinel)
			assert.Equal(t, tt.msg, tt.err.Error())
		})
	}
}

func TestNotFoundErrorAs(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("create: %w", &NotFoundError{Catalogs: []string{"Schott", "Ohara"}, Name: "BK7"})

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, []string{"Schott", "Ohara"}, nf.Catalogs)
	assert.Equal(t, "BK7", nf.Name)
	assert.NotErrorIs(t, err, ErrCatalogNotFound)
}
