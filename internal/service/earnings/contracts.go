package earnings

import (
	"context"

	"github.com/shopspring/decimal"

	"campus-delivery/internal/domain"
	"campus-delivery/internal/ports/assigntx"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx assigntx.Repository) error) error
}

// Notifier receives the settlement result after the transaction commits.
type Notifier interface {
	EarningsUpdate(ctx context.Context, agent *domain.DeliveryProfile, amount decimal.Decimal, kind domain.EarningsType)
}
