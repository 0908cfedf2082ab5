// Package queries contains read-only operations. Handlers read straight from
// the database with SQL and return flat views instead of aggregates.
package queries

import (
	"time"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CategoryView struct {
	ID    kernel.UUID
	Slug  string
	Title string
}

type MenuItemView struct {
	ID         kernel.UUID
	Title      string
	Price      kernel.Money
	Featured   bool
	CategoryID kernel.UUID
}

// CartLineView is one cart line. Title is empty when the menu item was
// deleted after the line was added.
type CartLineView struct {
	ID         kernel.UUID
	MenuItemID kernel.UUID
	Title      string
	Quantity   int
	UnitPrice  kernel.Money
	Price      kernel.Money
}

type CartView struct {
	Lines []CartLineView
	Total kernel.Money
}

type OrderView struct {
	ID           kernel.UUID
	UserID       kernel.UUID
	DeliveryCrew *kernel.UUID
	Status       order.Status
	Total        kernel.Money
	Date         time.Time
}

type OrderItemView struct {
	ID         kernel.UUID
	MenuItemID kernel.UUID
	Quantity   int
	UnitPrice  kernel.Money
	Price      kernel.Money
}

// OrderDetailView is an order together with its items in cart order.
type OrderDetailView struct {
	OrderView
	Items []OrderItemView
}

type MemberView struct {
	ID       kernel.UUID
	Username string
}

func toUUID(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toOptionalUUID(id uuid.NullUUID) (*kernel.UUID, error) {
	if !id.Valid {
		return nil, nil //nolint:nilnil // unassigned
	}
	v, err := toUUID(id.UUID)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func toMoney(d decimal.Decimal) (kernel.Money, error) {
	return kernel.NewMoney(d.Round(2))
}
