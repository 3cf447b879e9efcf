package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewAcceptConflictsTotal returns a Prometheus counter for accept attempts that
// lost the race or arrived after the offer expired
func NewAcceptConflictsTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "assignment_accept_conflicts_total",
		Help: "Total number of accept attempts rejected because the order was already taken or the offer expired",
	})
}

// NewAssignmentsExpiredTotal returns a Prometheus counter for offers expired by the sweep
func NewAssignmentsExpiredTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "assignments_expired_total",
		Help: "Total number of assignment offers expired by the sweeper",
	})
}

// NewBroadcastFailuresTotal returns a Prometheus counter for per-recipient notification failures
func NewBroadcastFailuresTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "broadcast_send_failures_total",
		Help: "Total number of per-recipient notification failures during order broadcast",
	})
}

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewGatewayRetriesTotal returns a Prometheus counter for the number of retry attempts performed by gateways
func NewGatewayRetriesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gateway_retries_total",
		Help: "Total number of retry attempts performed by gateways",
	})
}
