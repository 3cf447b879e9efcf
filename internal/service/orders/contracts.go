package orders

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"campus-delivery/internal/domain"
	order "campus-delivery/internal/gateway/orders"
	"campus-delivery/internal/ports/assigntx"
)

// TxRunner abstracts running a function within an assignment transaction
type TxRunner interface {
	WithTx(ctx context.Context, fn func(tx assigntx.Repository) error) error
}

// OrdersGateway fetches order details from the ordering service.
type OrdersGateway interface {
	GetByID(ctx context.Context, id int64) (*order.Order, error)
}

// GeoResolver resolves addresses and road distances.
type GeoResolver interface {
	Geocode(ctx context.Context, address string) (domain.Coordinate, error)
	Distance(ctx context.Context, origin, dest domain.Coordinate) (float64, error)
}

// FeePricer computes the delivery fee for a distance.
type FeePricer interface {
	Compute(distanceKm float64) (decimal.Decimal, error)
}

// OfferWindows computes the estimate and expiry for a new offer.
type OfferWindows interface {
	Offer(now time.Time, distanceKm float64) (estimatedAt, expiresAt time.Time)
}

// BroadcastPort fans a new offer out to available agents.
type BroadcastPort interface {
	NewOrder(ctx context.Context, ord *domain.Order) (int, error)
}

// SettlementPort settles earnings for a delivered order.
type SettlementPort interface {
	CompleteDelivery(ctx context.Context, orderID int64) (bool, error)
}
