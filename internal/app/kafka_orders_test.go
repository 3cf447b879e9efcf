package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"campus-delivery/internal/apperr"
	"campus-delivery/internal/service/orders"
	"campus-delivery/internal/transport/kafka"
)

type ctxKey struct{}

type spyHandler struct {
	called int
	ctx    context.Context
	event  orders.Event
	err    error
}

func (s *spyHandler) Handle(ctx context.Context, e orders.Event) error {
	s.called++
	s.ctx = ctx
	s.event = e
	return s.err
}

func TestMakeOrdersKafka_DelegatesToHandler(t *testing.T) {
	t.Parallel()

	hSpy := &spyHandler{}
	h := makeOrdersKafka(hSpy)

	ctx := context.WithValue(context.Background(), ctxKey{}, "v")
	in := orders.Event{OrderID: 1, Status: "order_placed"}

	err := h(ctx, in)
	require.NoError(t, err)

	require.Equal(t, 1, hSpy.called)
	require.Equal(t, "v", hSpy.ctx.Value(ctxKey{}))
	require.Equal(t, in, hSpy.event)
}

func TestMakeOrdersKafka_InvalidEvent_BecomesPermanent(t *testing.T) {
	t.Parallel()

	hSpy := &spyHandler{err: apperr.ErrInvalid}
	h := makeOrdersKafka(hSpy)

	err := h(context.Background(), orders.Event{OrderID: -1, Status: "order_placed"})
	require.Error(t, err)

	var perm kafka.PermanentError
	require.ErrorAs(t, err, &perm)
	require.ErrorIs(t, err, apperr.ErrInvalid)
}

func TestMakeOrdersKafka_TransientError_PassesThrough(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("db down")
	hSpy := &spyHandler{err: sentinel}
	h := makeOrdersKafka(hSpy)

	err := h(context.Background(), orders.Event{OrderID: 2, Status: "order_placed"})
	require.ErrorIs(t, err, sentinel)

	var perm kafka.PermanentError
	require.False(t, errors.As(err, &perm), "transient errors must stay retryable")
}
