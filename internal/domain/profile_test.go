package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeliveryProfile_IsAvailable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		profile DeliveryProfile
		want    bool
	}{
		{"online idle", DeliveryProfile{Online: true, MaxConcurrentLoad: 3}, true},
		{"online below cap", DeliveryProfile{Online: true, CurrentLoad: 2, MaxConcurrentLoad: 3}, true},
		{"online at cap", DeliveryProfile{Online: true, CurrentLoad: 3, MaxConcurrentLoad: 3}, false},
		{"offline idle", DeliveryProfile{Online: false, MaxConcurrentLoad: 3}, false},
		{"zero cap uses default", DeliveryProfile{Online: true, CurrentLoad: DefaultMaxConcurrentLoad - 1}, true},
		{"zero cap at default", DeliveryProfile{Online: true, CurrentLoad: DefaultMaxConcurrentLoad}, false},
		{"negative cap uses default", DeliveryProfile{Online: true, CurrentLoad: 1, MaxConcurrentLoad: -1}, true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, tt.profile.IsAvailable())
		})
	}
}

func TestValidatePhone(t *testing.T) {
	t.Parallel()

	valid := []string{"+254700000001", "+14155550123", "+123456789"}
	for _, s := range valid {
		require.True(t, ValidatePhone(s), s)
	}

	invalid := []string{
		"",
		"254700000001",
		"+2547000",
		"+254700000001234567",
		"+2547 0000 0001",
		"+254700O00001",
	}
	for _, s := range invalid {
		require.False(t, ValidatePhone(s), s)
	}
}
