package app

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"campus-delivery/internal/metrics"
)

type metricsOut struct {
	dig.Out

	AcceptConflicts    prometheus.Counter `name:"accept_conflicts_total"`
	AssignmentsExpired prometheus.Counter `name:"assignments_expired_total"`
	BroadcastFailures  prometheus.Counter `name:"broadcast_failures_total"`
	RateLimitExceeded  prometheus.Counter `name:"rate_limit_exceeded_total"`
	GatewayRetries     prometheus.Counter `name:"gateway_retries_total"`
}

func newMetrics() metricsOut {
	return metricsOut{
		AcceptConflicts:    registerCounter(metrics.NewAcceptConflictsTotal()),
		AssignmentsExpired: registerCounter(metrics.NewAssignmentsExpiredTotal()),
		BroadcastFailures:  registerCounter(metrics.NewBroadcastFailuresTotal()),
		RateLimitExceeded:  registerCounter(metrics.NewRateLimitExceededTotal()),
		GatewayRetries:     registerCounter(metrics.NewGatewayRetriesTotal()),
	}
}

// registerCounter registers c with the default registry, reusing the existing
// collector when the container is built more than once in a process.
func registerCounter(c prometheus.Counter) prometheus.Counter {
	if err := prometheus.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing
			}
		}
	}
	return c
}
