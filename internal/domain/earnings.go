package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type (
	// EarningsType classifies a ledger entry.
	EarningsType string
	// EarningsStatus is the settlement state of a ledger entry.
	EarningsStatus string
)

// List of earnings transaction types
const (
	EarningsDelivery   EarningsType = "delivery"
	EarningsBonus      EarningsType = "bonus"
	EarningsWithdrawal EarningsType = "withdrawal"
	EarningsAdjustment EarningsType = "adjustment"
)

// List of earnings transaction statuses
const (
	EarningsPending   EarningsStatus = "pending"
	EarningsCompleted EarningsStatus = "completed"
	EarningsCancelled EarningsStatus = "cancelled"
)

// Valid checks if the EarningsType is valid
func (t EarningsType) Valid() bool {
	switch t {
	case EarningsDelivery, EarningsBonus, EarningsWithdrawal, EarningsAdjustment:
		return true
	default:
		return false
	}
}

// Valid checks if the EarningsStatus is valid
func (s EarningsStatus) Valid() bool {
	switch s {
	case EarningsPending, EarningsCompleted, EarningsCancelled:
		return true
	default:
		return false
	}
}

// EarningsTransaction is a ledger entry tied to a delivery. Created pending at
// assignment time, completed exactly once at delivery settlement.
type EarningsTransaction struct {
	ID            int64
	Reference     string
	DeliveryAgent int64
	Type          EarningsType
	Amount        decimal.Decimal
	Status        EarningsStatus
	Description   string
	OrderID       *int64
	CreatedAt     time.Time
}
