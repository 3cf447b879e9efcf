package app

import (
	"context"
	"errors"

	"go.uber.org/dig"

	"campus-delivery/internal/apperr"
	"campus-delivery/internal/config"
	"campus-delivery/internal/logx"
	"campus-delivery/internal/service/orders"
	"campus-delivery/internal/transport/kafka"
)

type ordersHandler interface {
	Handle(ctx context.Context, e orders.Event) error
}

// makeOrdersKafka adapts the orders Processor to the consumer's handler
// shape. Invalid events are marked permanent so they are not redelivered.
func makeOrdersKafka(h ordersHandler) kafka.HandleFunc {
	return func(ctx context.Context, event orders.Event) error {
		err := h.Handle(ctx, event)
		if errors.Is(err, apperr.ErrInvalid) {
			return kafka.Permanent(err)
		}
		return err
	}
}

func registerWorker(container *dig.Container) error {
	return provideAll(container,
		func(logger logx.Logger, cfg *config.Config, p *orders.Processor) (*kafka.Consumer, error) {
			return kafka.NewConsumer(logger, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topic, makeOrdersKafka(p))
		},
	)
}
