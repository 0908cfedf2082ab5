package ports

import (
	"context"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates
// together with their items.
type OrderRepository interface {
	// Add persists a new order and all of its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the mutable state of an existing order
	// (status and delivery crew). Items and total are never rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items. Inside a transaction the row is
	// locked for update on stores that support it.
	// Returns errs.ObjectNotFoundError if the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order and cascades to its items.
	// Returns errs.ObjectNotFoundError if the order does not exist.
	Delete(ctx context.Context, id kernel.UUID) error
}
