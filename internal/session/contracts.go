package session

import (
	"context"

	"courier-agent/internal/domain"
)

// KV is the durable local key-value storage the session persists into.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Remove(key string) error
}

type loginAPI interface {
	Login(ctx context.Context, employeeCode string) (*domain.Courier, string, error)
}
