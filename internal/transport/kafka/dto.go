package kafka

import (
	"strings"
	"time"

	"campus-delivery/internal/service/orders"
)

// EventDTO is the wire form of an order lifecycle event.
type EventDTO struct {
	OrderID   int64     `json:"order_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// ToDomain converts EventDTO to orders.Event.
func ToDomain(dto EventDTO) orders.Event {
	return orders.Event{
		OrderID:   dto.OrderID,
		Status:    strings.TrimSpace(dto.Status),
		CreatedAt: dto.CreatedAt,
	}
}
