package fee_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"campus-delivery/internal/apperr"
	"campus-delivery/internal/fee"
)

func TestCompute_ZeroDistance(t *testing.T) {
	c := fee.New(20.00, 10.00)

	got, err := c.Compute(0)
	require.NoError(t, err)
	require.Equal(t, "20", got.String())
	require.Equal(t, "20.00", got.StringFixed(2))
}

func TestCompute_RoundsToNearestKm(t *testing.T) {
	c := fee.New(20.00, 10.00)

	cases := []struct {
		name string
		km   float64
		want string
	}{
		{"rounds down", 3.2, "50.00"},
		{"rounds up", 7.6, "100.00"},
		{"half rounds up", 2.5, "50.00"},
		{"exact", 4.0, "60.00"},
		{"sub-km", 0.4, "20.00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := c.Compute(tc.km)
			require.NoError(t, err)
			require.Equal(t, tc.want, got.StringFixed(2))
		})
	}
}

func TestCompute_InvalidDistance(t *testing.T) {
	c := fee.New(20.00, 10.00)

	for _, km := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err := c.Compute(km)
		require.ErrorIs(t, err, apperr.ErrInvalid)
	}
}
