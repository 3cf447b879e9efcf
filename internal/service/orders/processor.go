package orders

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"campus-delivery/internal/apperr"
	"campus-delivery/internal/domain"
	"campus-delivery/internal/logx"
	"campus-delivery/internal/ports/assigntx"
)

// Processor reacts to order lifecycle events. order_placed opens a delivery
// offer, cancelled withdraws it, delivered settles the earnings ledger.
type Processor struct {
	gateway   OrdersGateway
	geo       GeoResolver
	pricer    FeePricer
	offers    OfferWindows
	repo      TxRunner
	broadcast BroadcastPort
	settler   SettlementPort
	shop      domain.Coordinate
	factory   *actionFactory
	logger    logx.Logger
	now       func() time.Time
}

// NewProcessor creates an orders event Processor.
func NewProcessor(
	gw OrdersGateway,
	geo GeoResolver,
	pricer FeePricer,
	offers OfferWindows,
	repo TxRunner,
	broadcast BroadcastPort,
	settler SettlementPort,
	shop domain.Coordinate,
	logger logx.Logger,
) *Processor {
	p := &Processor{
		gateway:   gw,
		geo:       geo,
		pricer:    pricer,
		offers:    offers,
		repo:      repo,
		broadcast: broadcast,
		settler:   settler,
		shop:      shop,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
	p.factory = newActionFactory(p.onPlaced, p.onCancelled, p.onDelivered)
	return p
}

// Handle processes a single order event. Unknown statuses are skipped.
func (p *Processor) Handle(ctx context.Context, e Event) error {
	if e.OrderID <= 0 {
		return apperr.ErrInvalid
	}
	fn, ok := p.factory.get(e.Status)
	if !ok {
		return nil
	}
	return fn(ctx, e)
}

func (p *Processor) onPlaced(ctx context.Context, e Event) error {
	ord, err := p.gateway.GetByID(ctx, e.OrderID)
	if err != nil {
		return err
	}
	if ord == nil {
		p.logger.Warn("event for unknown order", logx.Int64("order_id", e.OrderID))
		return nil
	}

	dropOff, distance, err := p.resolve(ctx, ord.DeliveryAddr)
	if err != nil {
		return err
	}

	fee, err := p.pricer.Compute(distance)
	if err != nil {
		return err
	}

	total, err := decimal.NewFromString(ord.TotalPrice)
	if err != nil {
		p.logger.Warn("unparseable order total",
			logx.Int64("order_id", ord.ID),
			logx.String("total", ord.TotalPrice),
		)
		total = decimal.Zero
	}

	now := p.now()
	view := &domain.Order{
		ID:           ord.ID,
		Reference:    ord.Reference,
		CustomerID:   ord.CustomerID,
		TotalPrice:   total,
		Status:       domain.OrderPlaced,
		DeliveryAddr: ord.DeliveryAddr,
		DropOff:      &dropOff,
		DistanceKm:   distance,
		DeliveryFee:  fee,
		CreatedAt:    ord.CreatedAt,
	}

	opened := false
	err = p.repo.WithTx(ctx, func(tx assigntx.Repository) error {
		existing, err := tx.GetAssignmentByOrderID(ctx, e.OrderID)
		if err != nil {
			return err
		}
		if existing != nil {
			// Redelivered event, the offer is already open.
			return nil
		}

		if err := tx.UpsertOrder(ctx, view); err != nil {
			return err
		}

		estimatedAt, expiresAt := p.offers.Offer(now, distance)
		asg := &domain.Assignment{
			OrderID:     e.OrderID,
			DistanceKm:  distance,
			EstimatedAt: estimatedAt,
			CreatedAt:   now,
			ExpiresAt:   expiresAt,
			Status:      domain.AssignmentPending,
		}
		if err := tx.InsertAssignment(ctx, asg); err != nil {
			return err
		}

		opened = true
		return nil
	})
	if err != nil {
		return err
	}
	if !opened {
		return nil
	}

	p.logger.Info("delivery offer opened",
		logx.String("event", "offer_opened"),
		logx.Int64("order_id", view.ID),
		logx.Float64("distance_km", view.DistanceKm),
		logx.String("delivery_fee", view.DeliveryFee.StringFixed(2)),
	)

	if _, err := p.broadcast.NewOrder(ctx, view); err != nil {
		// Agents can still find the offer in the app.
		p.logger.Warn("offer broadcast failed",
			logx.Int64("order_id", view.ID),
			logx.Any("err", err),
		)
	}
	return nil
}

func (p *Processor) onCancelled(ctx context.Context, e Event) error {
	return p.repo.WithTx(ctx, func(tx assigntx.Repository) error {
		ord, err := tx.GetOrderForUpdate(ctx, e.OrderID)
		if err != nil {
			return err
		}
		if ord == nil {
			return nil
		}
		if err := tx.SetOrderStatus(ctx, e.OrderID, domain.OrderCancelled); err != nil {
			return err
		}

		asg, err := tx.GetAssignmentByOrderID(ctx, e.OrderID)
		if err != nil {
			return err
		}
		if asg != nil && !asg.Status.Terminal() {
			if err := tx.SetAssignmentStatus(ctx, asg.ID, domain.AssignmentExpired); err != nil {
				return err
			}
		}

		etx, err := tx.GetPendingEarningsForUpdate(ctx, e.OrderID)
		if err != nil {
			return err
		}
		if etx != nil {
			if err := tx.CancelEarnings(ctx, etx.ID); err != nil {
				return err
			}
			if err := tx.AddPendingEarnings(ctx, etx.DeliveryAgent, etx.Amount.Neg()); err != nil {
				return err
			}
		}
		return nil
	})
}

func (p *Processor) onDelivered(ctx context.Context, e Event) error {
	_, err := p.settler.CompleteDelivery(ctx, e.OrderID)
	return err
}

// resolve geocodes the drop-off and measures the road distance from the
// pickup point. A failed geocode falls back to the pickup itself so the
// offer can still go out.
func (p *Processor) resolve(ctx context.Context, address string) (domain.Coordinate, float64, error) {
	dropOff, err := p.geo.Geocode(ctx, address)
	if err != nil {
		p.logger.Warn("geocode failed, using pickup point",
			logx.String("address", address),
			logx.Any("err", err),
		)
		return p.shop, 0, nil
	}

	distance, err := p.geo.Distance(ctx, p.shop, dropOff)
	if err != nil {
		return domain.Coordinate{}, 0, err
	}
	return dropOff, distance, nil
}
