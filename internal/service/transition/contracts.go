//go:generate mockgen -source=contracts.go -destination=transition_mocks_test.go -package=transition_test

package transition

import (
	"context"

	"courier-agent/internal/domain"
	"courier-agent/internal/registry"
)

type statusAPI interface {
	UpdateStatus(ctx context.Context, deliveryID int64, status domain.Status, notes string) (domain.Delivery, error)
}

type deliveryRegistry interface {
	Get(id int64) (domain.Delivery, bool)
	ApplyStatusUpdate(updated domain.Delivery)
}

var _ deliveryRegistry = (*registry.Registry)(nil)

// locationTracker is signaled when a delivery enters or leaves the
// actively-tracked phase of its lifecycle.
type locationTracker interface {
	SetActiveDelivery(id int64)
	ClearActiveDelivery()
}

type counter interface {
	Inc()
}
