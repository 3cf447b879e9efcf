package assignment

import (
	"math"
	"time"
)

const (
	// pickupPrep covers vendor preparation before the agent leaves.
	pickupPrep = 10 * time.Minute
	// avgSpeedKmh is the campus-road riding speed used for estimates.
	avgSpeedKmh = 20.0
)

type defaultOfferFactory struct {
	ttl time.Duration
}

// NewOfferFactory creates an OfferFactory with the given offer TTL.
func NewOfferFactory(ttl time.Duration) OfferFactory {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return defaultOfferFactory{ttl: ttl}
}

// Offer returns the delivery estimate and the offer expiry for an
// assignment created at now.
func (f defaultOfferFactory) Offer(now time.Time, distanceKm float64) (time.Time, time.Time) {
	if distanceKm < 0 || math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) {
		distanceKm = 0
	}
	ride := time.Duration(distanceKm / avgSpeedKmh * float64(time.Hour))
	return now.Add(pickupPrep + ride), now.Add(f.ttl)
}
