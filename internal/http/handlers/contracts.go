package handlers

import (
	"context"

	"courier-agent/internal/domain"
	"courier-agent/internal/registry"
	"courier-agent/internal/session"
)

type sessionService interface {
	Login(ctx context.Context, employeeCode string) (*domain.Courier, error)
	Logout()
	Current() session.Snapshot
}

type deliveryView interface {
	Search(query string) []domain.Delivery
	CountsByStatus() registry.StatusCounts
}

type transitionEngine interface {
	RequestTransition(ctx context.Context, deliveryID int64, target domain.Status, notes string) (domain.Delivery, error)
}

type positionSink interface {
	Push(p domain.Position)
}

type trackingStopper interface {
	ClearActiveDelivery()
}
