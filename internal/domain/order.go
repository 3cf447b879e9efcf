package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type (
	// OrderStatus represents the lifecycle status of an order.
	OrderStatus string
	// AssignmentStatus represents the lifecycle status of an assignment offer.
	AssignmentStatus string
	// Role is a closed enumeration of marketplace participant roles.
	Role string
)

// List of participant roles
const (
	RoleCustomer      Role = "customer"
	RoleVendor        Role = "vendor"
	RoleDeliveryAgent Role = "delivery_person"
	RoleAdmin         Role = "admin"
)

// Valid checks if the Role is valid
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleVendor, RoleDeliveryAgent, RoleAdmin:
		return true
	default:
		return false
	}
}

// Order is the delivery subsystem's view of a purchase request. The row is
// owned by the ordering subsystem; this service reads it and mutates only
// delivery_person_id, status, distance and fee.
type Order struct {
	ID            int64
	Reference     string
	CustomerID    int64
	DeliveryAgent *int64
	TotalPrice    decimal.Decimal
	Status        OrderStatus
	DeliveryAddr  string
	DropOff       *Coordinate
	DistanceKm    float64
	DeliveryFee   decimal.Decimal
	CreatedAt     time.Time
	DeliveredAt   *time.Time
}

// Assignment is the offer of an order to the delivery pool. One row per order,
// never deleted; only the arbiter and the expiry sweep mutate it.
type Assignment struct {
	ID            int64
	OrderID       int64
	DeliveryAgent *int64
	Score         float64
	DistanceKm    float64
	EstimatedAt   time.Time
	CreatedAt     time.Time
	ExpiresAt     time.Time
	Status        AssignmentStatus
}

// Expired reports whether the offer has passed its deadline without being accepted.
func (a Assignment) Expired(now time.Time) bool {
	if a.Status == AssignmentAccepted {
		return false
	}
	return now.After(a.ExpiresAt)
}

// AcceptResult - struct representing the outcome of a winning accept call.
type AcceptResult struct {
	OrderID       int64
	DeliveryAgent int64
	DistanceKm    float64
	DeliveryFee   decimal.Decimal
	EstimatedAt   time.Time
}
