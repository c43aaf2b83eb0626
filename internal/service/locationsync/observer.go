package locationsync

import (
	"sync"

	"courier-agent/internal/domain"
)

// PushObserver adapts externally pushed positions to the PositionObserver
// contract. The local HTTP surface feeds it; access is always granted.
type PushObserver struct {
	mu sync.RWMutex
	fn func(domain.Position)
}

// NewPushObserver creates an observer with no registered callback.
func NewPushObserver() *PushObserver {
	return &PushObserver{}
}

// Start registers the callback. Idempotent; a second Start replaces it.
func (o *PushObserver) Start(fn func(domain.Position)) error {
	o.mu.Lock()
	o.fn = fn
	o.mu.Unlock()
	return nil
}

// Stop unregisters the callback. Pushes while stopped are discarded.
func (o *PushObserver) Stop() {
	o.mu.Lock()
	o.fn = nil
	o.mu.Unlock()
}

// Push hands a position to the registered callback without blocking the
// caller on the upstream send.
func (o *PushObserver) Push(p domain.Position) {
	o.mu.RLock()
	fn := o.fn
	o.mu.RUnlock()
	if fn == nil {
		return
	}
	go fn(p)
}
