// Package transition drives delivery status changes. Every change is
// validated against the state machine before it goes to the server, and
// the local collection is only updated with the server's confirmed view.
package transition

import (
	"context"
	"fmt"
	"sync"

	"courier-agent/internal/apperr"
	"courier-agent/internal/domain"
	"courier-agent/internal/logx"
)

// deliveredNote is attached when a delivery is marked delivered and the
// caller supplied no note of their own.
const deliveredNote = "ສົ່ງສຳເລັດແລ້ວ"

// Engine serializes status transitions per delivery.
type Engine struct {
	api       statusAPI
	registry  deliveryRegistry
	tracker   locationTracker
	logger    logx.Logger
	confirmed counter
	rejected  counter

	mu       sync.Mutex
	inFlight map[int64]struct{}
}

// NewEngine wires the engine to its collaborators. Counters may be nil.
func NewEngine(api statusAPI, reg deliveryRegistry, tracker locationTracker, logger logx.Logger, confirmed, rejected counter) *Engine {
	return &Engine{
		api:       api,
		registry:  reg,
		tracker:   tracker,
		logger:    logger,
		confirmed: orNop(confirmed),
		rejected:  orNop(rejected),
		inFlight:  make(map[int64]struct{}),
	}
}

// RequestTransition moves the delivery to target. The change is rejected
// locally, without a network call, when the delivery is unknown, the state
// machine forbids the move, or another transition for the same delivery is
// still unresolved. On success the registry holds the server's confirmed
// delivery and the location tracker is signaled.
func (e *Engine) RequestTransition(ctx context.Context, deliveryID int64, target domain.Status, notes string) (domain.Delivery, error) {
	if !target.Valid() {
		return domain.Delivery{}, fmt.Errorf("status %q: %w", target, apperr.ErrInvalidTransition)
	}

	current, ok := e.registry.Get(deliveryID)
	if !ok {
		return domain.Delivery{}, fmt.Errorf("delivery %d: %w", deliveryID, apperr.ErrNotFound)
	}
	if !current.Status.CanTransitionTo(target) {
		e.rejected.Inc()
		return domain.Delivery{}, fmt.Errorf("%s -> %s: %w", current.Status, target, apperr.ErrInvalidTransition)
	}

	if !e.acquire(deliveryID) {
		return domain.Delivery{}, fmt.Errorf("delivery %d: %w", deliveryID, apperr.ErrTransitionInFlight)
	}
	defer e.release(deliveryID)

	if target == domain.StatusDelivered && notes == "" {
		notes = deliveredNote
	}

	updated, err := e.api.UpdateStatus(ctx, deliveryID, target, notes)
	if err != nil {
		e.rejected.Inc()
		e.logger.Warn("status transition failed",
			logx.Int64("delivery_id", deliveryID),
			logx.String("target", string(target)),
			logx.Err(err),
		)
		return domain.Delivery{}, fmt.Errorf("update status: %w", err)
	}

	e.registry.ApplyStatusUpdate(updated)
	e.signalTracker(updated)
	e.confirmed.Inc()
	e.logger.Info("status transition confirmed",
		logx.Int64("delivery_id", deliveryID),
		logx.String("from", string(current.Status)),
		logx.String("to", string(updated.Status)),
	)
	return updated, nil
}

// signalTracker follows the confirmed status, not the requested one, in
// case the server settles on something else.
func (e *Engine) signalTracker(d domain.Delivery) {
	switch d.Status {
	case domain.StatusOutForDelivery:
		e.tracker.SetActiveDelivery(d.ID)
	case domain.StatusDelivered, domain.StatusCancelled:
		e.tracker.ClearActiveDelivery()
	}
}

func (e *Engine) acquire(deliveryID int64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, busy := e.inFlight[deliveryID]; busy {
		return false
	}
	e.inFlight[deliveryID] = struct{}{}
	return true
}

func (e *Engine) release(deliveryID int64) {
	e.mu.Lock()
	delete(e.inFlight, deliveryID)
	e.mu.Unlock()
}

type nopCounter struct{}

func (nopCounter) Inc() {}

func orNop(c counter) counter {
	if c == nil {
		return nopCounter{}
	}
	return c
}
