package config

import "time"

const (
	defaultPort      = 8090
	defaultPprofPort = 6060
)

var defaultAPI = API{
	BaseURL: "http://localhost:3000/api",
	Timeout: 10 * time.Second,
}

var defaultSession = Session{
	DBPath: "courier-agent.db",
}

var defaultRefresh = Refresh{
	Schedule: "@every 30s",
}

var defaultLocation = Location{
	MinInterval: 5 * time.Second,
}

var defaultRateLimit = RateLimit{
	Enabled:    true,
	Rate:       1,
	Burst:      5,
	TTL:        10 * time.Minute,
	MaxBuckets: 1024,
}

// DefaultPort returns the default local API port.
func DefaultPort() int {
	return defaultPort
}

// DefaultAPI returns the default upstream API settings.
func DefaultAPI() API {
	return defaultAPI
}

// DefaultSession returns the default session persistence settings.
func DefaultSession() Session {
	return defaultSession
}

// DefaultRefresh returns the default refresh job settings.
func DefaultRefresh() Refresh {
	return defaultRefresh
}

// DefaultLocation returns the default location throttle settings.
func DefaultLocation() Location {
	return defaultLocation
}

// DefaultRateLimit returns the default login rate limiter settings.
func DefaultRateLimit() RateLimit {
	return defaultRateLimit
}
