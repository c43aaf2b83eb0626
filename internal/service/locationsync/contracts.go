package locationsync

import (
	"context"
	"time"

	"courier-agent/internal/domain"
)

// PositionObserver is a source of device positions. Start registers the
// callback and begins delivery; Stop halts it. Both are idempotent.
type PositionObserver interface {
	Start(fn func(domain.Position)) error
	Stop()
}

type locationAPI interface {
	UpdateLocation(ctx context.Context, deliveryID int64, sample domain.LocationSample) error
}

// Clock abstracts time for throttle tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

type counter interface {
	Inc()
}

type nopCounter struct{}

func (nopCounter) Inc() {}
