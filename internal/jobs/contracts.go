package jobs

import (
	"context"

	"courier-agent/internal/domain"
	"courier-agent/internal/gateway/seeucafe"
)

type sessionState interface {
	IsAuthenticated() bool
	CourierID() int64
}

type deliveryFetcher interface {
	FetchDeliveries(ctx context.Context, courierID int64, status *domain.Status) ([]domain.Delivery, *seeucafe.Pagination, error)
}

type deliveryReplacer interface {
	Replace(deliveries []domain.Delivery)
}
