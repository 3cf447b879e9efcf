package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCoordinate_Valid(t *testing.T) {
	t.Parallel()

	require.True(t, Coordinate{}.Valid())
	require.True(t, Coordinate{Lat: 6.8921, Lng: 3.7198}.Valid())
	require.True(t, Coordinate{Lat: -90, Lng: 180}.Valid())

	require.False(t, Coordinate{Lat: 90.0001, Lng: 0}.Valid())
	require.False(t, Coordinate{Lat: 0, Lng: -180.5}.Valid())
	require.False(t, Coordinate{Lat: math.NaN(), Lng: 0}.Valid())
	require.False(t, Coordinate{Lat: 0, Lng: math.NaN()}.Valid())
}

func TestCoordinate_Round6(t *testing.T) {
	t.Parallel()

	got := Coordinate{Lat: 6.89214999, Lng: -3.71985001}.Round6()
	require.InDelta(t, 6.892150, got.Lat, 1e-9)
	require.InDelta(t, -3.719850, got.Lng, 1e-9)

	exact := Coordinate{Lat: 1.5, Lng: -2.25}
	require.Equal(t, exact, exact.Round6())
}
