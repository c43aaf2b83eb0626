package seeucafe

import (
	"context"
	"errors"
	"time"

	"courier-agent/internal/apperr"
	"courier-agent/internal/domain"
	"courier-agent/internal/logx"
)

type lister interface {
	FetchDeliveries(ctx context.Context, courierID int64, status *domain.Status) ([]domain.Delivery, *Pagination, error)
}

type counter interface {
	Inc()
}

// RetryConfig describes RetryingClient behavior.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// RetryingClient retries the read-only delivery listing on transport
// failures. Status and location writes are never retried here: the caller
// owns that decision.
type RetryingClient struct {
	next    lister
	logger  logx.Logger
	retries counter
	cfg     RetryConfig
}

// NewRetryingClient wraps next with transport-failure retries.
func NewRetryingClient(next lister, logger logx.Logger, retries counter, cfg RetryConfig) *RetryingClient {
	if next == nil {
		return nil
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	return &RetryingClient{next: next, logger: logger, retries: retries, cfg: cfg}
}

// FetchDeliveries lists deliveries, retrying transport errors with capped
// exponential backoff.
func (c *RetryingClient) FetchDeliveries(ctx context.Context, courierID int64, status *domain.Status) ([]domain.Delivery, *Pagination, error) {
	var lastErr error
	for attempt := 1; attempt <= c.cfg.MaxAttempts; attempt++ {
		list, page, err := c.next.FetchDeliveries(ctx, courierID, status)
		if err == nil {
			return list, page, nil
		}
		lastErr = err

		if ctx.Err() != nil || attempt == c.cfg.MaxAttempts || !isRetryable(err) {
			break
		}

		delay := backoff(c.cfg.BaseDelay, c.cfg.MaxDelay, attempt)
		if c.retries != nil {
			c.retries.Inc()
		}
		c.logger.Warn("delivery list retry",
			logx.Int("attempt", attempt),
			logx.Duration("delay", delay),
			logx.Err(err),
		)
		if !sleepWithContext(ctx, delay) {
			break
		}
	}
	return nil, nil, lastErr
}

// isRetryable: only connectivity failures are worth another attempt; the
// server rejecting the request or a shape mismatch will not improve.
func isRetryable(err error) bool {
	return errors.Is(err, apperr.ErrTransport)
}

func backoff(base, max time.Duration, attempt int) time.Duration {
	if base <= 0 {
		return 0
	}
	d := base << (attempt - 1)
	if max > 0 && d > max {
		return max
	}
	return d
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
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
