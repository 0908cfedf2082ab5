// Package ports defines the contracts between the domain layer and the
// infrastructure of the ordering backend: repositories, the user directory
// and the unit of work binding them to one transaction.
package ports

import (
	"context"
	"time"

	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for per-user carts.
type CartRepository interface {
	// Get returns the cart of owner. A user without lines gets an empty cart,
	// never an error. Lines are locked for update inside a transaction on
	// stores that support it.
	Get(ctx context.Context, owner kernel.UUID) (*cart.Cart, error)

	// Save upserts every line of the cart.
	Save(ctx context.Context, c *cart.Cart) error

	// RemoveLines deletes the given lines of owner's cart and nothing else.
	RemoveLines(ctx context.Context, owner kernel.UUID, lineIDs []kernel.UUID) error

	// Clear deletes every line of owner's cart.
	Clear(ctx context.Context, owner kernel.UUID) error

	// RemoveAddedBefore deletes lines of all carts added before cutoff and
	// returns how many were removed.
	RemoveAddedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
