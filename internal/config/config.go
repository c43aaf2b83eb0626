package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// API stores upstream delivery API settings.
type API struct {
	BaseURL string
	Timeout time.Duration
}

// Session stores local session persistence settings.
type Session struct {
	DBPath string
}

// Refresh stores the delivery refresh job settings.
type Refresh struct {
	Schedule string // cron spec, e.g. "@every 30s"
}

// Location stores position sync throttle settings.
type Location struct {
	MinInterval time.Duration
}

// RateLimit stores login rate limiter settings.
type RateLimit struct {
	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// Config stores courier agent settings.
type Config struct {
	Port      int
	PprofPort int
	API       API
	Session   Session
	Refresh   Refresh
	Location  Location
	RateLimit RateLimit
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:      defaultPort,
		PprofPort: defaultPprofPort,
		API:       DefaultAPI(),
		Session:   DefaultSession(),
		Refresh:   DefaultRefresh(),
		Location:  DefaultLocation(),
		RateLimit: DefaultRateLimit(),
	}

	cfg.Port = envInt("PORT", cfg.Port)
	cfg.PprofPort = envInt("PPROF_PORT", cfg.PprofPort)
	cfg.API.BaseURL = envString("API_BASE_URL", cfg.API.BaseURL)
	cfg.API.Timeout = envDuration("API_TIMEOUT", cfg.API.Timeout)
	cfg.Session.DBPath = envString("SESSION_DB_PATH", cfg.Session.DBPath)
	cfg.Refresh.Schedule = envString("REFRESH_SCHEDULE", cfg.Refresh.Schedule)
	cfg.Location.MinInterval = envDuration("LOCATION_MIN_INTERVAL", cfg.Location.MinInterval)
	cfg.RateLimit.Enabled = envBool("RATE_LIMIT_ENABLED", cfg.RateLimit.Enabled)
	cfg.RateLimit.Rate = envFloat("RATE_LIMIT_RATE", cfg.RateLimit.Rate)
	cfg.RateLimit.Burst = envInt("RATE_LIMIT_BURST", cfg.RateLimit.Burst)
	cfg.RateLimit.TTL = envDuration("RATE_LIMIT_TTL", cfg.RateLimit.TTL)
	cfg.RateLimit.MaxBuckets = envInt("RATE_LIMIT_MAX_BUCKETS", cfg.RateLimit.MaxBuckets)

	pflag.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port for the local agent API")
	pflag.StringVar(&cfg.API.BaseURL, "api-base-url", cfg.API.BaseURL, "delivery API base URL")
	pflag.StringVar(&cfg.Session.DBPath, "session-db", cfg.Session.DBPath, "path to the local session database")
	pflag.Parse()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.PprofPort < 0 || c.PprofPort > 65535 {
		return fmt.Errorf("invalid pprof port: %d", c.PprofPort)
	}
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid API base URL: %q", c.API.BaseURL)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("invalid API timeout: %s", c.API.Timeout)
	}
	if c.Location.MinInterval < 0 {
		return fmt.Errorf("invalid location min interval: %s", c.Location.MinInterval)
	}
	return nil
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
