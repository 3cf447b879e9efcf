package fee

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"campus-delivery/internal/apperr"
)

// Calculator derives a delivery fee from a routed distance. The distance is
// rounded half-up to the nearest whole kilometre before the per-km rate is
// applied, then the result is quantized to 2 decimal places.
type Calculator struct {
	base  decimal.Decimal
	perKm decimal.Decimal
}

// New creates a Calculator with the given base fee and per-km rate.
func New(baseFee, perKmRate float64) *Calculator {
	return &Calculator{
		base:  decimal.NewFromFloat(baseFee),
		perKm: decimal.NewFromFloat(perKmRate),
	}
}

// Compute returns base + round(distanceKm) * perKm.
func (c *Calculator) Compute(distanceKm float64) (decimal.Decimal, error) {
	if math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) || distanceKm < 0 {
		return decimal.Decimal{}, fmt.Errorf("distance %v: %w", distanceKm, apperr.ErrInvalid)
	}

	km := decimal.NewFromInt(int64(math.Floor(distanceKm + 0.5)))
	return c.base.Add(km.Mul(c.perKm)).Round(2), nil
}
