package order

import (
	"errors"
	"fmt"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a frozen copy of a cart line inside an order.
type Item struct {
	id         kernel.UUID
	menuItemID kernel.UUID
	quantity   int
	unitPrice  kernel.Money
	linePrice  kernel.Money

	isConstructed bool
}

// NewItem builds an item and checks that linePrice == unitPrice × quantity.
func NewItem(id, menuItemID kernel.UUID, quantity int, unitPrice, linePrice kernel.Money) (*Item, error) {
	if err := errors.Join(
		id.Validate(),
		menuItemID.Validate(),
		unitPrice.Validate(),
		linePrice.Validate(),
	); err != nil {
		return nil, err
	}
	if quantity < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if !unitPrice.Mul(quantity).IsEqual(linePrice) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%s is not %s × %d", linePrice, unitPrice, quantity),
		)
	}
	return &Item{
		id:            id,
		menuItemID:    menuItemID,
		quantity:      quantity,
		unitPrice:     unitPrice,
		linePrice:     linePrice,
		isConstructed: true,
	}, nil
}

func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i *Item) ID() kernel.UUID { return i.id }
func (i *Item) MenuItemID() kernel.UUID { return i.menuItemID }
func (i *Item) Quantity() int { return i.quantity }
func (i *Item) UnitPrice() kernel.Money { return i.unitPrice }
func (i *Item) LinePrice() kernel.Money { return i.linePrice }
