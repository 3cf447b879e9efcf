package earnings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"campus-delivery/internal/apperr"
	"campus-delivery/internal/domain"
	"campus-delivery/internal/logx"
	"campus-delivery/internal/ports/assigntx"
	testlog "campus-delivery/internal/testutil"
)

type stubTx struct {
	assigntx.Repository

	markFn       func(context.Context, int64, time.Time) (bool, error)
	pendingFn    func(context.Context, int64) (*domain.EarningsTransaction, error)
	completeFn   func(context.Context, int64) error
	applyFn      func(context.Context, int64, decimal.Decimal) error
	getProfileFn func(context.Context, int64) (*domain.DeliveryProfile, error)
}

func (s *stubTx) MarkOrderDelivered(ctx context.Context, orderID int64, now time.Time) (bool, error) {
	return s.markFn(ctx, orderID, now)
}
func (s *stubTx) GetPendingEarningsForUpdate(ctx context.Context, orderID int64) (*domain.EarningsTransaction, error) {
	if s.pendingFn == nil {
		return nil, nil
	}
	return s.pendingFn(ctx, orderID)
}
func (s *stubTx) CompleteEarnings(ctx context.Context, id int64) error {
	if s.completeFn == nil {
		return nil
	}
	return s.completeFn(ctx, id)
}
func (s *stubTx) ApplyEarnings(ctx context.Context, agentID int64, amount decimal.Decimal) error {
	if s.applyFn == nil {
		return nil
	}
	return s.applyFn(ctx, agentID, amount)
}
func (s *stubTx) GetProfile(ctx context.Context, agentID int64) (*domain.DeliveryProfile, error) {
	if s.getProfileFn == nil {
		return nil, nil
	}
	return s.getProfileFn(ctx, agentID)
}

type stubRunner struct{ tx *stubTx }

func (r *stubRunner) WithTx(ctx context.Context, fn func(assigntx.Repository) error) error {
	return fn(r.tx)
}

type notifierRecorder struct {
	agent  *domain.DeliveryProfile
	amount decimal.Decimal
	kind   domain.EarningsType
	calls  int
}

func (n *notifierRecorder) EarningsUpdate(_ context.Context, agent *domain.DeliveryProfile, amount decimal.Decimal, kind domain.EarningsType) {
	n.agent, n.amount, n.kind = agent, amount, kind
	n.calls++
}

func TestPoster_CompleteDelivery(t *testing.T) {
	t.Parallel()

	fee := decimal.RequireFromString("50.00")
	var completed int64
	var appliedAgent int64
	var appliedAmount decimal.Decimal

	tx := &stubTx{
		markFn: func(_ context.Context, orderID int64, _ time.Time) (bool, error) {
			require.Equal(t, int64(42), orderID)
			return true, nil
		},
		pendingFn: func(context.Context, int64) (*domain.EarningsTransaction, error) {
			return &domain.EarningsTransaction{ID: 11, DeliveryAgent: 9, Amount: fee, Status: domain.EarningsPending}, nil
		},
		completeFn: func(_ context.Context, id int64) error {
			completed = id
			return nil
		},
		applyFn: func(_ context.Context, agentID int64, amount decimal.Decimal) error {
			appliedAgent, appliedAmount = agentID, amount
			return nil
		},
		getProfileFn: func(context.Context, int64) (*domain.DeliveryProfile, error) {
			return &domain.DeliveryProfile{UserID: 9, Phone: "+254700000009", AvailableBalance: fee}, nil
		},
	}

	notifier := &notifierRecorder{}
	poster := NewPoster(&stubRunner{tx: tx}, notifier, 3*time.Second, logx.Nop())

	ok, err := poster.CompleteDelivery(context.Background(), 42)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(11), completed)
	require.Equal(t, int64(9), appliedAgent)
	require.True(t, appliedAmount.Equal(fee))
	require.Equal(t, 1, notifier.calls)
	require.Equal(t, domain.EarningsDelivery, notifier.kind)
}

func TestPoster_CompleteDelivery_AlreadySettled(t *testing.T) {
	t.Parallel()

	tx := &stubTx{
		markFn: func(context.Context, int64, time.Time) (bool, error) {
			return false, nil
		},
		pendingFn: func(context.Context, int64) (*domain.EarningsTransaction, error) {
			t.Fatal("must not look up earnings when already settled")
			return nil, nil
		},
	}

	notifier := &notifierRecorder{}
	poster := NewPoster(&stubRunner{tx: tx}, notifier, 3*time.Second, logx.Nop())

	ok, err := poster.CompleteDelivery(context.Background(), 42)
	require.NoError(t, err)
	require.False(t, ok)
	require.Zero(t, notifier.calls)
}

func TestPoster_CompleteDelivery_NoPendingEntry(t *testing.T) {
	t.Parallel()

	rec := testlog.New()
	tx := &stubTx{
		markFn: func(context.Context, int64, time.Time) (bool, error) {
			return true, nil
		},
	}

	notifier := &notifierRecorder{}
	poster := NewPoster(&stubRunner{tx: tx}, notifier, 3*time.Second, rec.Logger())

	ok, err := poster.CompleteDelivery(context.Background(), 42)
	require.NoError(t, err)
	require.True(t, ok)
	require.Zero(t, notifier.calls)

	entries := rec.Entries()
	require.NotEmpty(t, entries)
	require.Equal(t, "warn", entries[0].Level)
}

func TestPoster_CompleteDelivery_InvalidID(t *testing.T) {
	t.Parallel()

	poster := NewPoster(&stubRunner{tx: &stubTx{}}, nil, 3*time.Second, logx.Nop())

	_, err := poster.CompleteDelivery(context.Background(), 0)
	require.ErrorIs(t, err, apperr.ErrInvalid)
}

func TestPoster_CompleteDelivery_RepoError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	tx := &stubTx{
		markFn: func(context.Context, int64, time.Time) (bool, error) {
			return false, boom
		},
	}

	poster := NewPoster(&stubRunner{tx: tx}, nil, 3*time.Second, logx.Nop())

	_, err := poster.CompleteDelivery(context.Background(), 42)
	require.ErrorIs(t, err, boom)
}
