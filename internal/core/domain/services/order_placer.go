package services

import (
	"time"

	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"
)

// OrderPlacer converts a cart snapshot into a new order.
//
// Business rules:
//   - an empty cart yields cart.ErrEmptyCart
//   - every line becomes one order item with quantity, unit price and line price copied verbatim
//   - the total comes from the frozen unit prices, never from the current menu price
//   - the order starts Pending without delivery crew
//
// The cart itself is not modified; removing the placed lines is up to the caller.
type OrderPlacer struct{}

func NewOrderPlacer() OrderPlacer {
	return OrderPlacer{}
}

func (OrderPlacer) Place(c *cart.Cart, orderID kernel.UUID, placedAt time.Time) (*order.Order, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, cart.ErrEmptyCart
	}

	lines := c.Lines()
	items := make([]*order.Item, 0, len(lines))
	for _, l := range lines {
		item, err := order.NewItem(kernel.NewUUID(), l.MenuItemID(), l.Quantity(), l.UnitPrice(), l.Price())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return order.NewOrder(orderID, c.Owner(), items, placedAt)
}
