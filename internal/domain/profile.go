package domain

import (
	"regexp"

	"github.com/shopspring/decimal"
)

// DefaultMaxConcurrentLoad caps how many active assignments an agent may hold.
const DefaultMaxConcurrentLoad = 5

// DeliveryProfile is the per-agent operational state.
type DeliveryProfile struct {
	UserID            int64
	Phone             string
	Online            bool
	CurrentLoad       int
	MaxConcurrentLoad int
	TotalEarnings     decimal.Decimal
	PendingEarnings   decimal.Decimal
	AvailableBalance  decimal.Decimal
	AverageRating     float64
	TotalDeliveries   int
	Location          *Coordinate
}

// IsAvailable holds iff the agent is online and below the concurrent load cap.
func (p DeliveryProfile) IsAvailable() bool {
	max := p.MaxConcurrentLoad
	if max <= 0 {
		max = DefaultMaxConcurrentLoad
	}
	return p.Online && p.CurrentLoad < max
}

// rePhone is a regex to validate phone numbers
var rePhone = regexp.MustCompile(`^\+[0-9]{9,14}$`)

// ValidatePhone validates the phone number format
func ValidatePhone(s string) bool {
	return rePhone.MatchString(s)
}
