package order

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	testlog "campus-delivery/internal/testutil"
)

type fakeGateway struct {
	getByIDFn func(context.Context, int64) (*Order, error)
	listFn    func(context.Context, time.Time) ([]Order, error)
}

func (f *fakeGateway) GetByID(ctx context.Context, id int64) (*Order, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeGateway) ListFrom(ctx context.Context, from time.Time) ([]Order, error) {
	return f.listFn(ctx, from)
}

type counterStub struct{ n int64 }

func (c *counterStub) Inc() { atomic.AddInt64(&c.n, 1) }
func (c *counterStub) Count() int64 {
	return atomic.LoadInt64(&c.n)
}

func TestRetryingGateway_GetByID_RetriesThenSucceeds(t *testing.T) {
	t.Parallel()

	rec := testlog.New()

	var calls int32
	next := &fakeGateway{
		getByIDFn: func(context.Context, int64) (*Order, error) {
			switch atomic.AddInt32(&calls, 1) {
			case 1, 2:
				return nil, statusError(http.StatusServiceUnavailable)
			default:
				return &Order{ID: 42}, nil
			}
		},
	}
	ctr := &counterStub{}
	cfg := RetryConfig{
		MaxAttempts: 5,
		BaseDelay:   0,
		MaxDelay:    0,
	}
	g := NewRetryingGateway(next, rec.Logger(), ctr, cfg)
	if g == nil {
		t.Fatalf("expected non-nil gw")
	}
	got, err := g.GetByID(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got == nil || got.ID != 42 {
		t.Fatalf("unexpected order: %#v", got)
	}
	if atomic.LoadInt32(&calls) != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
	if ctr.Count() != 2 {
		t.Fatalf("expected 2 retries, got %d", ctr.Count())
	}
}

func TestRetryingGateway_GetByID_NoRetryOnNonRetryable(t *testing.T) {
	t.Parallel()

	rec := testlog.New()

	var calls int32
	next := &fakeGateway{
		getByIDFn: func(context.Context, int64) (*Order, error) {
			atomic.AddInt32(&calls, 1)
			return nil, errors.New("bad request")
		},
	}

	ctr := &counterStub{}
	cfg := RetryConfig{MaxAttempts: 5, BaseDelay: 0, MaxDelay: 0}

	g := NewRetryingGateway(next, rec.Logger(), ctr, cfg)

	_, err := g.GetByID(context.Background(), 42)
	if err == nil {
		t.Fatal("expected error")
	}

	if atomic.LoadInt32(&calls) != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
	if ctr.Count() != 0 {
		t.Fatalf("expected 0 retries, got %d", ctr.Count())
	}
}

func TestRetryingGateway_ListFrom_RetriesThenSucceeds(t *testing.T) {
	t.Parallel()

	rec := testlog.New()

	var calls int32
	next := &fakeGateway{
		listFn: func(context.Context, time.Time) ([]Order, error) {
			switch atomic.AddInt32(&calls, 1) {
			case 1:
				return nil, statusError(http.StatusTooManyRequests)
			default:
				return []Order{{ID: 1}}, nil
			}
		},
	}

	ctr := &counterStub{}
	cfg := RetryConfig{MaxAttempts: 3, BaseDelay: 0, MaxDelay: 0}

	g := NewRetryingGateway(next, rec.Logger(), ctr, cfg)

	got, err := g.ListFrom(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("unexpected result: %#v", got)
	}

	if atomic.LoadInt32(&calls) != 2 {
		t.Fatalf("expected 2 calls, got %d", calls)
	}
	if ctr.Count() != 1 {
		t.Fatalf("expected 1 retry, got %d", ctr.Count())
	}
}

func TestRetryingGateway_StopsOnCancelledContext(t *testing.T) {
	t.Parallel()

	rec := testlog.New()

	ctx, cancel := context.WithCancel(context.Background())
	var calls int32
	next := &fakeGateway{
		getByIDFn: func(context.Context, int64) (*Order, error) {
			atomic.AddInt32(&calls, 1)
			cancel()
			return nil, statusError(http.StatusBadGateway)
		},
	}

	g := NewRetryingGateway(next, rec.Logger(), nil, RetryConfig{MaxAttempts: 5})

	_, err := g.GetByID(ctx, 7)
	if err == nil {
		t.Fatal("expected error")
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"too many requests", statusError(http.StatusTooManyRequests), true},
		{"bad gateway", statusError(http.StatusBadGateway), true},
		{"not found", statusError(http.StatusNotFound), false},
		{"deadline", context.DeadlineExceeded, true},
		{"plain", errors.New("boom"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := isRetryable(tc.err); got != tc.want {
				t.Fatalf("isRetryable(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}

func TestBackoff(t *testing.T) {
	t.Parallel()

	base := 100 * time.Millisecond
	max := 350 * time.Millisecond
	if got := backoff(base, max, 1); got != base {
		t.Fatalf("attempt 1: %v", got)
	}
	if got := backoff(base, max, 2); got != 200*time.Millisecond {
		t.Fatalf("attempt 2: %v", got)
	}
	if got := backoff(base, max, 3); got != max {
		t.Fatalf("attempt 3: %v", got)
	}
}
