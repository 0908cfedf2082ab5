package cart

import (
	"errors"
	"fmt"
	"time"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
)

var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine or RestoreLine constructor")

// MaxQuantity bounds the quantity of one line, merged adds included, so that
// the line price of the most expensive menu item fits the stored precision.
const MaxQuantity = 99

// Line is a pending cart entry.
type Line struct {
	id         kernel.UUID
	menuItemID kernel.UUID
	quantity   int
	unitPrice  kernel.Money
	addedAt    time.Time

	isConstructed bool
}

// NewLine captures unitPrice as the frozen price of the line.
func NewLine(id, menuItemID kernel.UUID, quantity int, unitPrice kernel.Money, addedAt time.Time) (*Line, error) {
	return RestoreLine(id, menuItemID, quantity, unitPrice, addedAt)
}

// RestoreLine rebuilds a stored line.
func RestoreLine(id, menuItemID kernel.UUID, quantity int, unitPrice kernel.Money, addedAt time.Time) (*Line, error) {
	l := &Line{addedAt: addedAt, isConstructed: true}
	if err := errors.Join(
		l.setID(id),
		l.setMenuItem(menuItemID),
		ValidateQuantity(quantity),
		l.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}
	l.quantity = quantity
	return l, nil
}

func (l *Line) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

func (l *Line) ID() kernel.UUID { return l.id }
func (l *Line) MenuItemID() kernel.UUID { return l.menuItemID }
func (l *Line) Quantity() int { return l.quantity }
func (l *Line) UnitPrice() kernel.Money { return l.unitPrice }
func (l *Line) AddedAt() time.Time { return l.addedAt }

// Price is unit price × quantity.
func (l *Line) Price() kernel.Money {
	return l.unitPrice.Mul(l.quantity)
}

func (l *Line) increase(quantity int) error {
	if err := ValidateQuantity(quantity); err != nil {
		return err
	}
	if l.quantity > MaxQuantity-quantity {
		return errs.NewValueIsOutOfRangeError("quantity", l.quantity+quantity, 1, MaxQuantity)
	}
	l.quantity += quantity
	return nil
}

func (l *Line) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Line) setMenuItem(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("menuitem", err)
	}
	l.menuItemID = id
	return nil
}

func (l *Line) setUnitPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("unit_price", err)
	}
	l.unitPrice = price
	return nil
}

// ValidateQuantity checks a quantity to add or store against 1..MaxQuantity.
func ValidateQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if quantity > MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, MaxQuantity)
	}
	return nil
}
