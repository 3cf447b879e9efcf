//go:generate mockgen -source=contracts.go -destination=assignment_mocks_test.go -package=assignment

package assignment

import (
	"context"
	"time"

	"campus-delivery/internal/domain"
	"campus-delivery/internal/ports/assigntx"
)

type assignmentRepository interface {
	WithTx(ctx context.Context, fn func(tx assigntx.Repository) error) error
	ExpireStale(ctx context.Context, now time.Time) (int64, error)
}

// OfferFactory computes the offer window and delivery estimate for a new
// assignment offer.
type OfferFactory interface {
	Offer(now time.Time, distanceKm float64) (estimatedAt, expiresAt time.Time)
}

// NotificationSender delivers side effects after a transaction commits.
// Implementations must not assume the transaction is still open.
type NotificationSender interface {
	OrderAccepted(ctx context.Context, res domain.AcceptResult)
}

type counter interface {
	Inc()
}

type adder interface {
	Add(delta float64)
}
