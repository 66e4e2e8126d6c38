package medium

import (
	"fmt"

	"github.com/udisondev/opticalglass/internal/glasserr"
)

// Air is a unit index medium.
type Air struct{}

func (Air) Name() string { return "air" }

func (Air) CatalogName() string { return "" }

func (Air) CalcRindex(float64) (float64, error) { return 1, nil }

func (Air) MeasRindex(string) (float64, error) { return 1, nil }

func (Air) TransmissionData(float64) ([]Transmittance, error) {
	return nil, fmt.Errorf("air: %w", glasserr.ErrNoTransmissionData)
}
