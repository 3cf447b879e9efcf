package assignment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"campus-delivery/internal/apperr"
	"campus-delivery/internal/domain"
	"campus-delivery/internal/logx"
	"campus-delivery/internal/ports/assigntx"
)

// Service arbitrates concurrent accept attempts for delivery offers.
type Service struct {
	repo             assignmentRepository
	factory          OfferFactory
	notifier         NotificationSender
	conflicts        counter
	expired          adder
	operationTimeout time.Duration
	logger           logx.Logger
	now              func() time.Time
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// NewService creates an assignment Service.
func NewService(r assignmentRepository, f OfferFactory, n NotificationSender, conflicts counter, expired adder, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{
		repo:             r,
		factory:          f,
		notifier:         n,
		conflicts:        conflicts,
		expired:          expired,
		operationTimeout: timeout,
		logger:           logger,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

// Accept atomically claims an order for a delivery agent. The row lock on
// the order guarantees at most one winner; every loser gets ErrConflict.
func (s *Service) Accept(ctx context.Context, orderID, agentID int64) (domain.AcceptResult, error) {
	if orderID <= 0 || agentID <= 0 {
		return domain.AcceptResult{}, apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var result domain.AcceptResult

	err := s.repo.WithTx(ctx, func(tx assigntx.Repository) error {
		ord, err := tx.GetOrderForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if ord == nil {
			return apperr.ErrNotFound
		}
		if ord.DeliveryAgent != nil || !ord.Status.Accepting() {
			return apperr.ErrConflict
		}

		profile, err := tx.GetProfile(ctx, agentID)
		if err != nil {
			return err
		}
		if profile == nil {
			return apperr.ErrNotFound
		}
		if !profile.IsAvailable() {
			return apperr.ErrConflict
		}

		now := s.now()

		asg, err := tx.GetAssignmentByOrderID(ctx, orderID)
		if err != nil {
			return err
		}

		estimatedAt := now
		switch {
		case asg == nil:
			estimatedAt, _ = s.factory.Offer(now, ord.DistanceKm)
		case asg.Expired(now):
			if err := tx.SetAssignmentStatus(ctx, asg.ID, domain.AssignmentExpired); err != nil {
				return err
			}
			return apperr.ErrConflict
		case asg.Status.Terminal():
			return apperr.ErrConflict
		default:
			estimatedAt = asg.EstimatedAt
			if err := tx.SetAssignmentAgent(ctx, asg.ID, agentID, domain.AssignmentAccepted); err != nil {
				return err
			}
		}

		if err := tx.AssignOrder(ctx, orderID, agentID); err != nil {
			return err
		}

		entry := &domain.EarningsTransaction{
			Reference:     "ETX-" + uuid.NewString(),
			DeliveryAgent: agentID,
			Type:          domain.EarningsDelivery,
			Amount:        ord.DeliveryFee,
			Status:        domain.EarningsPending,
			Description:   fmt.Sprintf("Delivery fee for order #%d", orderID),
			OrderID:       &orderID,
			CreatedAt:     now,
		}
		if err := tx.InsertEarnings(ctx, entry); err != nil {
			return err
		}
		if err := tx.AddPendingEarnings(ctx, agentID, ord.DeliveryFee); err != nil {
			return err
		}

		result = domain.AcceptResult{
			OrderID:       orderID,
			DeliveryAgent: agentID,
			DistanceKm:    ord.DistanceKm,
			DeliveryFee:   ord.DeliveryFee,
			EstimatedAt:   estimatedAt,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, apperr.ErrConflict) && s.conflicts != nil {
			s.conflicts.Inc()
		}
		return domain.AcceptResult{}, err
	}

	s.logger.Info("order accepted",
		logx.String("event", "order_accepted"),
		logx.Int64("order_id", result.OrderID),
		logx.Int64("agent_id", result.DeliveryAgent),
		logx.Float64("distance_km", result.DistanceKm),
		logx.String("delivery_fee", result.DeliveryFee.StringFixed(2)),
		logx.Time("estimated_at", result.EstimatedAt),
	)

	if s.notifier != nil {
		s.notifier.OrderAccepted(ctx, result)
	}

	return result, nil
}

// Claim moves a pending assignment to an agent without accepting the order
// yet. Only pending, unexpired offers can be claimed.
func (s *Service) Claim(ctx context.Context, deliveryID, agentID int64) (*domain.Assignment, error) {
	if deliveryID <= 0 || agentID <= 0 {
		return nil, apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var claimed *domain.Assignment

	err := s.repo.WithTx(ctx, func(tx assigntx.Repository) error {
		asg, err := tx.GetAssignmentForUpdate(ctx, deliveryID)
		if err != nil {
			return err
		}
		if asg == nil {
			return apperr.ErrNotFound
		}
		if !asg.Status.CanTransition(domain.AssignmentAssigned) {
			return apperr.ErrInvalid
		}
		if asg.Expired(s.now()) {
			if err := tx.SetAssignmentStatus(ctx, asg.ID, domain.AssignmentExpired); err != nil {
				return err
			}
			return apperr.ErrConflict
		}

		if err := tx.SetAssignmentAgent(ctx, asg.ID, agentID, domain.AssignmentAssigned); err != nil {
			return err
		}

		asg.DeliveryAgent = &agentID
		asg.Status = domain.AssignmentAssigned
		claimed = asg
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("delivery claimed",
		logx.Int64("assignment_id", claimed.ID),
		logx.Int64("agent_id", agentID),
	)

	return claimed, nil
}

// ExpireStale closes out offers whose window has passed. It is run
// periodically by the sweep loop.
func (s *Service) ExpireStale(ctx context.Context) (int64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	n, err := s.repo.ExpireStale(ctx, s.now())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		if s.expired != nil {
			s.expired.Add(float64(n))
		}
		s.logger.Info("assignments expired", logx.Int64("count", n))
	}
	return n, nil
}
