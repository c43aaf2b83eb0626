package domain

// Status represents the lifecycle state of a delivery.
type Status string

// List of possible delivery statuses
const (
	StatusPending        Status = "pending"
	StatusPreparing      Status = "preparing"
	StatusOutForDelivery Status = "out_for_delivery"
	StatusDelivered      Status = "delivered"
	StatusCancelled      Status = "cancelled"
)

// List of allowed statuses
var allowedStatuses = [...]Status{
	StatusPending, StatusPreparing, StatusOutForDelivery, StatusDelivered, StatusCancelled,
}

// allowedTransitions is the authoritative state machine definition.
// Transitions are monotonic forward; cancelled is reachable from any
// non-terminal state; delivered and cancelled are terminal.
var allowedTransitions = map[Status][]Status{
	StatusPending:        {StatusOutForDelivery, StatusCancelled},
	StatusPreparing:      {StatusOutForDelivery, StatusCancelled},
	StatusOutForDelivery: {StatusDelivered, StatusCancelled},
	StatusDelivered:      {},
	StatusCancelled:      {},
}

// Valid checks if the Status is a known delivery status.
func (s Status) Valid() bool {
	for _, v := range allowedStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transitions are possible.
func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo reports whether the state machine allows moving to target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range allowedTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// NextStatuses returns all statuses reachable from s.
func (s Status) NextStatuses() []Status {
	next := allowedTransitions[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}
