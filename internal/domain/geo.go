package domain

import "math"

// Coordinate is a WGS84 lat/lng pair.
type Coordinate struct {
	Lat float64
	Lng float64
}

// Valid checks that the coordinate is inside the WGS84 envelope.
func (c Coordinate) Valid() bool {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lng) {
		return false
	}
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// Round6 rounds both components to 6 decimal places, the precision the
// geocoding contract promises.
func (c Coordinate) Round6() Coordinate {
	return Coordinate{
		Lat: math.Round(c.Lat*1e6) / 1e6,
		Lng: math.Round(c.Lng*1e6) / 1e6,
	}
}
