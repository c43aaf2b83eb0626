package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewGatewayRetriesTotal returns a Prometheus counter for the number of retry attempts performed by the API client
func NewGatewayRetriesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gateway_retries_total",
		Help: "Total number of retry attempts performed by the API client",
	})
}

// NewTransitionsConfirmedTotal returns a Prometheus counter for status transitions confirmed by the server
func NewTransitionsConfirmedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "transitions_confirmed_total",
		Help: "Total number of delivery status transitions confirmed by the server",
	})
}

// NewTransitionsRejectedTotal returns a Prometheus counter for status transitions rejected locally or by the server
func NewTransitionsRejectedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "transitions_rejected_total",
		Help: "Total number of delivery status transitions rejected locally or by the server",
	})
}

// NewLocationUpdatesSentTotal returns a Prometheus counter for location samples delivered to the server
func NewLocationUpdatesSentTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "location_updates_sent_total",
		Help: "Total number of location samples delivered to the server",
	})
}

// NewLocationUpdatesDroppedTotal returns a Prometheus counter for location samples throttled or lost in transit
func NewLocationUpdatesDroppedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "location_updates_dropped_total",
		Help: "Total number of location samples throttled or lost in transit",
	})
}
