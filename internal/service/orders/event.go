package orders

import (
	"time"
)

// Event is a single order lifecycle event from the ordering service.
type Event struct {
	OrderID   int64     `json:"order_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
