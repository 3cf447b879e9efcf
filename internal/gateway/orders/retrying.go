package order

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"campus-delivery/internal/logx"
)

type gateway interface {
	GetByID(context.Context, int64) (*Order, error)
	ListFrom(context.Context, time.Time) ([]Order, error)
}

type counter interface {
	Inc()
}

// RetryConfig controls the retry behaviour of RetryingGateway.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// RetryingGateway wraps an orders gateway with bounded retries on
// transient failures.
type RetryingGateway struct {
	next    gateway
	logger  logx.Logger
	retries counter
	cfg     RetryConfig
	sleep   func(time.Duration)
}

// NewRetryingGateway returns nil when next is nil.
func NewRetryingGateway(next gateway, logger logx.Logger, retries counter, cfg RetryConfig) *RetryingGateway {
	if next == nil {
		return nil
	}
	return &RetryingGateway{next: next, logger: logger, retries: retries, cfg: cfg, sleep: time.Sleep}
}

// GetByID fetches an order, retrying transient upstream failures.
func (g *RetryingGateway) GetByID(ctx context.Context, id int64) (*Order, error) {
	var lastErr error
	for attempt := 1; attempt <= g.cfg.MaxAttempts; attempt++ {
		ord, err := g.next.GetByID(ctx, id)
		if err == nil {
			return ord, nil
		}
		lastErr = err

		if ctx.Err() != nil || attempt == g.cfg.MaxAttempts || !isRetryable(err) {
			break
		}

		delay := backoff(g.cfg.BaseDelay, g.cfg.MaxDelay, attempt)
		if g.retries != nil {
			g.retries.Inc()
		}
		g.logger.Warn("orders gateway retry",
			logx.String("method", "GetByID"),
			logx.Int("attempt", attempt),
			logx.Duration("delay", delay),
			logx.Any("err", err),
		)
		if !sleepWithContext(ctx, g.sleep, delay) {
			break
		}
	}
	return nil, lastErr
}

// ListFrom fetches orders, retrying transient upstream failures.
func (g *RetryingGateway) ListFrom(ctx context.Context, from time.Time) ([]Order, error) {
	var lastErr error
	for attempt := 1; attempt <= g.cfg.MaxAttempts; attempt++ {
		orders, err := g.next.ListFrom(ctx, from)
		if err == nil {
			return orders, nil
		}
		lastErr = err

		if ctx.Err() != nil || attempt == g.cfg.MaxAttempts || !isRetryable(err) {
			break
		}

		delay := backoff(g.cfg.BaseDelay, g.cfg.MaxDelay, attempt)
		if g.retries != nil {
			g.retries.Inc()
		}
		g.logger.Warn("orders gateway retry",
			logx.String("method", "ListFrom"),
			logx.Int("attempt", attempt),
			logx.Duration("delay", delay),
			logx.Any("err", err),
		)
		if !sleepWithContext(ctx, g.sleep, delay) {
			break
		}
	}
	return nil, lastErr
}

// isRetryable reports whether the call may succeed on a retry.
// Timeouts and throttling or server-side statuses qualify.
func isRetryable(err error) bool {
	var st statusError
	if errors.As(err, &st) {
		code := int(st)
		return code == http.StatusTooManyRequests || code >= 500
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}

func backoff(base, max time.Duration, attempt int) time.Duration {
	d := base << (attempt - 1)
	if d > max {
		return max
	}
	return d
}

func sleepWithContext(ctx context.Context, sleep func(time.Duration), d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
