package earnings

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"campus-delivery/internal/apperr"
	"campus-delivery/internal/domain"
	"campus-delivery/internal/logx"
	"campus-delivery/internal/ports/assigntx"
)

// Poster settles the earnings ledger when a delivery completes. Settlement
// is idempotent: the delivered_at guard on the order row makes repeated
// events for the same order no-ops.
type Poster struct {
	repo             txRunner
	notifier         Notifier
	operationTimeout time.Duration
	logger           logx.Logger
	now              func() time.Time
}

// NewPoster creates an earnings Poster.
func NewPoster(r txRunner, n Notifier, timeout time.Duration, logger logx.Logger) *Poster {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Poster{
		repo:             r,
		notifier:         n,
		operationTimeout: timeout,
		logger:           logger,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

// CompleteDelivery marks the order delivered and settles the pending
// earnings entry. Returns false when the order was already settled.
func (p *Poster) CompleteDelivery(ctx context.Context, orderID int64) (bool, error) {
	if orderID <= 0 {
		return false, apperr.ErrInvalid
	}

	ctx, cancel := context.WithTimeout(ctx, p.operationTimeout)
	defer cancel()

	var (
		settled bool
		agent   *domain.DeliveryProfile
		amount  decimal.Decimal
	)

	err := p.repo.WithTx(ctx, func(tx assigntx.Repository) error {
		ok, err := tx.MarkOrderDelivered(ctx, orderID, p.now())
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		etx, err := tx.GetPendingEarningsForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if etx == nil {
			// Delivered without a pending ledger entry. The order stays
			// delivered; there is nothing to settle.
			p.logger.Warn("no pending earnings for delivered order",
				logx.Int64("order_id", orderID),
			)
			settled = true
			return nil
		}

		if err := tx.CompleteEarnings(ctx, etx.ID); err != nil {
			return err
		}
		if err := tx.ApplyEarnings(ctx, etx.DeliveryAgent, etx.Amount); err != nil {
			return err
		}

		agent, err = tx.GetProfile(ctx, etx.DeliveryAgent)
		if err != nil {
			return err
		}

		amount = etx.Amount
		settled = true
		return nil
	})
	if err != nil {
		return false, err
	}
	if !settled {
		return false, nil
	}

	if agent != nil {
		p.logger.Info("earnings settled",
			logx.String("event", "earnings_settled"),
			logx.Int64("order_id", orderID),
			logx.Int64("agent_id", agent.UserID),
			logx.String("amount", amount.StringFixed(2)),
		)
		if p.notifier != nil {
			p.notifier.EarningsUpdate(ctx, agent, amount, domain.EarningsDelivery)
		}
	}

	return true, nil
}
