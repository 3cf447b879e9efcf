package routing

import (
	"math"

	"campus-delivery/internal/domain"
)

const earthRadiusKm = 6371

// Haversine returns the great-circle distance between two points in km.
// Used as the degraded path when the routing provider cannot route the pair.
func Haversine(a, b domain.Coordinate) float64 {
	lat1 := degreesToRadians(a.Lat)
	lon1 := degreesToRadians(a.Lng)
	lat2 := degreesToRadians(b.Lat)
	lon2 := degreesToRadians(b.Lng)

	dlat := lat2 - lat1
	dlon := lon2 - lon1
	h := math.Pow(math.Sin(dlat/2), 2) + math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dlon/2), 2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
