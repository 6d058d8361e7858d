package ports

import (
	"context"

	"dispatch-service/internal/domain"
)

// Port: a boundary for storing and retrieving delivery orders.
//
// ListOrders must return orders in insertion order; the optimization
// engine relies on a stable input order for deterministic tie-breaking.
type OrderRepository interface {
	// Persist a batch of orders. Fails with ErrDuplicateID if any order's
	// identifier is already stored; on failure nothing is persisted.
	SaveOrders(ctx context.Context, orders []*domain.Order) error

	// Retrieve all stored orders in insertion order.
	ListOrders(ctx context.Context) ([]*domain.Order, error)

	// Remove all stored orders and return how many were removed.
	DeleteAllOrders(ctx context.Context) (int64, error)
}
