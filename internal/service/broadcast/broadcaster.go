package broadcast

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"campus-delivery/internal/domain"
	"campus-delivery/internal/logx"
)

// Broadcaster fans delivery offers and status updates out to agents over
// SMS and WhatsApp. Send failures are logged per recipient and never fail
// the caller.
type Broadcaster struct {
	profiles         profileDirectory
	sender           Sender
	failures         counter
	operationTimeout time.Duration
	logger           logx.Logger
}

// New creates a Broadcaster.
func New(profiles profileDirectory, sender Sender, failures counter, timeout time.Duration, logger logx.Logger) *Broadcaster {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Broadcaster{
		profiles:         profiles,
		sender:           sender,
		failures:         failures,
		operationTimeout: timeout,
		logger:           logger,
	}
}

// NewOrder notifies every available agent that an order is up for grabs.
// Returns the number of agents reached.
func (b *Broadcaster) NewOrder(ctx context.Context, ord *domain.Order) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, b.operationTimeout)
	defer cancel()

	agents, err := b.profiles.ListAvailable(ctx)
	if err != nil {
		return 0, fmt.Errorf("broadcast: list agents: %w", err)
	}

	body := newOrderBody(ord)
	sent := 0
	for _, agent := range agents {
		if !domain.ValidatePhone(agent.Phone) {
			b.logger.Warn("agent has no usable phone", logx.Int64("agent_id", agent.UserID))
			continue
		}
		if err := b.sender.SendSMS(ctx, agent.Phone, body); err != nil {
			b.fail("sms", agent.UserID, err)
			continue
		}
		sent++
	}

	b.logger.Info("order broadcast",
		logx.Int64("order_id", ord.ID),
		logx.Int("agents", len(agents)),
		logx.Int("sent", sent),
	)
	return sent, nil
}

// OrderAccepted confirms the assignment to the accepting agent. It is
// called after the accept transaction commits.
func (b *Broadcaster) OrderAccepted(ctx context.Context, res domain.AcceptResult) {
	ctx, cancel := context.WithTimeout(ctx, b.operationTimeout)
	defer cancel()

	agent, err := b.profiles.Get(ctx, res.DeliveryAgent)
	if err != nil || agent == nil || agent.Phone == "" {
		b.fail("lookup", res.DeliveryAgent, err)
		return
	}

	body := strings.Join([]string{
		fmt.Sprintf("ORDER ASSIGNED #%d", res.OrderID),
		"",
		fmt.Sprintf("Distance: %.1fkm", res.DistanceKm),
		fmt.Sprintf("Earnings: KES %s", res.DeliveryFee.StringFixed(2)),
		fmt.Sprintf("Deliver by: %s", res.EstimatedAt.Format("15:04")),
	}, "\n")

	if err := b.sender.SendWhatsApp(ctx, agent.Phone, body); err != nil {
		b.fail("whatsapp", res.DeliveryAgent, err)
	}
}

// EarningsUpdate tells an agent their balance changed.
func (b *Broadcaster) EarningsUpdate(ctx context.Context, agent *domain.DeliveryProfile, amount decimal.Decimal, kind domain.EarningsType) {
	if agent == nil || agent.Phone == "" {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, b.operationTimeout)
	defer cancel()

	body := strings.Join([]string{
		"EARNINGS UPDATE",
		"",
		fmt.Sprintf("%s: KES %s", kind, amount.StringFixed(2)),
		fmt.Sprintf("New balance: KES %s", agent.AvailableBalance.StringFixed(2)),
	}, "\n")

	if err := b.sender.SendSMS(ctx, agent.Phone, body); err != nil {
		b.fail("sms", agent.UserID, err)
	}
}

func (b *Broadcaster) fail(channel string, agentID int64, err error) {
	if b.failures != nil {
		b.failures.Inc()
	}
	b.logger.Warn("broadcast failed",
		logx.String("channel", channel),
		logx.Int64("agent_id", agentID),
		logx.Any("err", err),
	)
}

func newOrderBody(ord *domain.Order) string {
	lines := []string{
		fmt.Sprintf("NEW DELIVERY ORDER #%d", ord.ID),
		"",
		fmt.Sprintf("Address: %s", ord.DeliveryAddr),
		fmt.Sprintf("Total: KES %s", ord.TotalPrice.StringFixed(2)),
		fmt.Sprintf("Distance: %.1fkm", ord.DistanceKm),
		fmt.Sprintf("Fee: KES %s", ord.DeliveryFee.StringFixed(2)),
		"",
		"Open the app to accept this order.",
	}
	return strings.Join(lines, "\n")
}
