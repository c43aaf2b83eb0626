// Package registry keeps the in-memory set of deliveries for the current
// courier. Entries reflect confirmed server state only; consumers read
// derived views and subscribe to change events instead of mutating.
package registry

import (
	"sort"
	"strings"
	"sync"

	"courier-agent/internal/domain"
	"courier-agent/internal/logx"
)

// EventKind classifies a registry change.
type EventKind string

// Registry change kinds.
const (
	EventReplaced EventKind = "replaced"
	EventUpdated  EventKind = "updated"
)

// Event notifies subscribers of a registry change. DeliveryID is zero for
// whole-collection replacements.
type Event struct {
	Kind       EventKind
	DeliveryID int64
}

// StatusCounts summarizes the collection for the dashboard cards.
// Preparing includes pending deliveries, matching the app's grouping.
type StatusCounts struct {
	Preparing      int
	OutForDelivery int
	Delivered      int
}

// Registry is the delivery collection keyed by delivery id.
type Registry struct {
	logger logx.Logger

	mu      sync.RWMutex
	byID    map[int64]domain.Delivery
	subs    map[int]func(Event)
	nextSub int
}

// New creates an empty registry.
func New(logger logx.Logger) *Registry {
	return &Registry{
		logger: logger,
		byID:   make(map[int64]domain.Delivery),
		subs:   make(map[int]func(Event)),
	}
}

// Replace atomically swaps the entire collection. Consumers never observe
// a half-updated list.
func (r *Registry) Replace(deliveries []domain.Delivery) {
	next := make(map[int64]domain.Delivery, len(deliveries))
	for _, d := range deliveries {
		if _, dup := next[d.ID]; dup {
			r.logger.Warn("duplicate delivery id in fetch result", logx.Int64("delivery_id", d.ID))
		}
		next[d.ID] = d
	}

	r.mu.Lock()
	r.byID = next
	r.mu.Unlock()

	r.emit(Event{Kind: EventReplaced})
}

// ApplyStatusUpdate replaces the single matching entry with the server's
// confirmed view. An unknown id is logged as an inconsistency and ignored.
func (r *Registry) ApplyStatusUpdate(updated domain.Delivery) {
	r.mu.Lock()
	_, known := r.byID[updated.ID]
	if known {
		r.byID[updated.ID] = updated
	}
	r.mu.Unlock()

	if !known {
		r.logger.Warn("status update for unknown delivery",
			logx.Int64("delivery_id", updated.ID),
			logx.String("status", string(updated.Status)),
		)
		return
	}
	r.emit(Event{Kind: EventUpdated, DeliveryID: updated.ID})
}

// Get returns the delivery with the given id.
func (r *Registry) Get(id int64) (domain.Delivery, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.byID[id]
	return d, ok
}

// All returns every delivery, ordered by id for stable listing.
func (r *Registry) All() []domain.Delivery {
	return r.Filter(func(domain.Delivery) bool { return true })
}

// Filter returns a derived, read-only view of deliveries matching pred,
// ordered by id. The backing collection is not touched.
func (r *Registry) Filter(pred func(domain.Delivery) bool) []domain.Delivery {
	r.mu.RLock()
	out := make([]domain.Delivery, 0, len(r.byID))
	for _, d := range r.byID {
		if pred(d) {
			out = append(out, d)
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Search matches the order code or the customer name, case-insensitively.
func (r *Registry) Search(query string) []domain.Delivery {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return r.All()
	}
	return r.Filter(func(d domain.Delivery) bool {
		if strings.Contains(strings.ToLower(d.Order.OrderCode), q) {
			return true
		}
		return d.Order.Customer != nil &&
			strings.Contains(strings.ToLower(d.Order.Customer.FullName()), q)
	})
}

// CountsByStatus tallies the summary buckets in one pass.
func (r *Registry) CountsByStatus() StatusCounts {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var c StatusCounts
	for _, d := range r.byID {
		switch d.Status {
		case domain.StatusPending, domain.StatusPreparing:
			c.Preparing++
		case domain.StatusOutForDelivery:
			c.OutForDelivery++
		case domain.StatusDelivered:
			c.Delivered++
		}
	}
	return c
}

// Subscribe registers fn for change events and returns an unsubscribe func.
// Events are delivered synchronously after the mutation is visible.
func (r *Registry) Subscribe(fn func(Event)) func() {
	r.mu.Lock()
	id := r.nextSub
	r.nextSub++
	r.subs[id] = fn
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		delete(r.subs, id)
		r.mu.Unlock()
	}
}

func (r *Registry) emit(ev Event) {
	r.mu.RLock()
	fns := make([]func(Event), 0, len(r.subs))
	for _, fn := range r.subs {
		fns = append(fns, fn)
	}
	r.mu.RUnlock()

	for _, fn := range fns {
		fn(ev)
	}
}
