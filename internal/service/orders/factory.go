package orders

import (
	"context"
	"strings"
)

type actionFunc func(context.Context, Event) error

type actionFactory struct {
	byStatus map[string]actionFunc
}

func newActionFactory(onPlaced, onCancelled, onDelivered actionFunc) *actionFactory {
	return &actionFactory{
		byStatus: map[string]actionFunc{
			"order_placed": onPlaced,
			"cancelled":    onCancelled,
			"delivered":    onDelivered,
		},
	}
}

func (f *actionFactory) get(status string) (actionFunc, bool) {
	status = strings.ToLower(strings.TrimSpace(status))
	fn, ok := f.byStatus[status]
	return fn, ok
}
