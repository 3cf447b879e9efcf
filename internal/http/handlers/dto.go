package handlers

import (
	"time"
)

type acceptOrderResponse struct {
	Message     string    `json:"message"`
	OrderID     int64     `json:"order_id"`
	AgentID     int64     `json:"agent_id"`
	DistanceKm  float64   `json:"distance_km"`
	DeliveryFee string    `json:"delivery_fee"`
	EstimatedAt time.Time `json:"estimated_delivery"`
}

type claimDeliveryRequest struct {
	AgentID int64 `json:"agent_id"`
}

type claimDeliveryResponse struct {
	DeliveryID int64  `json:"delivery_id"`
	OrderID    int64  `json:"order_id"`
	AgentID    int64  `json:"agent_id"`
	Status     string `json:"status"`
}

type availableOrderDTO struct {
	OrderID      int64     `json:"order_id"`
	Reference    string    `json:"reference"`
	Status       string    `json:"status"`
	DeliveryAddr string    `json:"delivery_address"`
	DistanceKm   float64   `json:"distance_km"`
	DeliveryFee  string    `json:"delivery_fee"`
	TotalPrice   string    `json:"total_price"`
	CreatedAt    time.Time `json:"created_at"`
}

type calculateFeeRequest struct {
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	CartID *int64  `json:"cart_id,omitempty"`
}

type calculateFeeResponse struct {
	DeliveryFee string  `json:"delivery_fee"`
	DistanceKm  float64 `json:"distance_km"`
}

type geocodeRequest struct {
	Address string `json:"address"`
}

type geocodeResponse struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

type toggleStatusResponse struct {
	Online bool `json:"online"`
}

type dashboardResponse struct {
	AgentID           int64   `json:"agent_id"`
	Online            bool    `json:"online"`
	CurrentLoad       int     `json:"current_load"`
	MaxConcurrentLoad int     `json:"max_concurrent_load"`
	AverageRating     float64 `json:"average_rating"`
	TotalDeliveries   int     `json:"total_deliveries"`
	TodayDeliveries   int     `json:"today_deliveries"`
	PendingDeliveries int     `json:"pending_deliveries"`
	WeekDeliveries    int     `json:"week_deliveries"`
	TotalEarnings     string  `json:"total_earnings"`
	PendingEarnings   string  `json:"pending_earnings"`
	AvailableBalance  string  `json:"available_balance"`
	CompletedEarnings string  `json:"completed_earnings"`
}

type earningsEntryDTO struct {
	ID          int64     `json:"id"`
	Reference   string    `json:"reference"`
	Type        string    `json:"type"`
	Amount      string    `json:"amount"`
	Status      string    `json:"status"`
	Description string    `json:"description,omitempty"`
	OrderID     *int64    `json:"order_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
