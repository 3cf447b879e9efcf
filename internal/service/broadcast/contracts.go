package broadcast

import (
	"context"

	"campus-delivery/internal/domain"
)

type profileDirectory interface {
	Get(ctx context.Context, agentID int64) (*domain.DeliveryProfile, error)
	ListAvailable(ctx context.Context) ([]domain.DeliveryProfile, error)
}

// Sender delivers a text message to a single phone number.
type Sender interface {
	SendSMS(ctx context.Context, to, body string) error
	SendWhatsApp(ctx context.Context, to, body string) error
}

type counter interface {
	Inc()
}
