package kafka_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"campus-delivery/internal/service/orders"
	"campus-delivery/internal/transport/kafka"
)

func TestToDomain_TrimsStatusAndCopiesFields(t *testing.T) {
	t.Parallel()

	ts := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	dto := kafka.EventDTO{
		OrderID:   101,
		Status:    "  order_placed  ",
		CreatedAt: ts,
	}

	got := kafka.ToDomain(dto)

	require.Equal(t, orders.Event{
		OrderID:   101,
		Status:    "order_placed",
		CreatedAt: ts,
	}, got)
}
