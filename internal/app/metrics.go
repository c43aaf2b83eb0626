package app

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"courier-agent/internal/metrics"
)

// Metrics bundles the agent's prometheus counters.
type Metrics struct {
	RateLimitExceeded    prometheus.Counter
	GatewayRetries       prometheus.Counter
	TransitionsConfirmed prometheus.Counter
	TransitionsRejected  prometheus.Counter
	LocationSent         prometheus.Counter
	LocationDropped      prometheus.Counter
}

// NewMetrics creates and registers all counters. Re-registration (e.g.
// a second container in tests) reuses the existing collectors.
func NewMetrics() *Metrics {
	return &Metrics{
		RateLimitExceeded:    registerCounter(metrics.NewRateLimitExceededTotal()),
		GatewayRetries:       registerCounter(metrics.NewGatewayRetriesTotal()),
		TransitionsConfirmed: registerCounter(metrics.NewTransitionsConfirmedTotal()),
		TransitionsRejected:  registerCounter(metrics.NewTransitionsRejectedTotal()),
		LocationSent:         registerCounter(metrics.NewLocationUpdatesSentTotal()),
		LocationDropped:      registerCounter(metrics.NewLocationUpdatesDroppedTotal()),
	}
}

func registerCounter(c prometheus.Counter) prometheus.Counter {
	err := prometheus.Register(c)
	if err == nil {
		return c
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
			return existing
		}
	}
	return c
}
