package cart

import (
	"errors"
	"slices"
	"time"

	"littlelemon/internal/core/domain/model/kernel"
)

var (
	// ErrEmptyCart is returned when checking out a cart without lines.
	ErrEmptyCart = errors.New("cart is empty")

	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart or RestoreCart constructor")
)

// Cart is the aggregate of all pending lines of one owner.
//
// Example:
//
//	c, _ := cart.NewCart(userID)
//	line, err := c.AddItem(kernel.NewUUID(), item.ID(), 2, item.Price(), time.Now())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(c.Total()) // 2 × the price item had at this moment
type Cart struct {
	owner kernel.UUID
	lines []*Line

	isConstructed bool
}

// NewCart returns an empty cart for owner.
func NewCart(owner kernel.UUID) (*Cart, error) {
	return RestoreCart(owner, nil)
}

// RestoreCart rebuilds a cart from its stored lines.
func RestoreCart(owner kernel.UUID, lines []*Line) (*Cart, error) {
	if err := owner.Validate(); err != nil {
		return nil, err
	}
	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return nil, err
		}
	}
	return &Cart{owner: owner, lines: slices.Clone(lines), isConstructed: true}, nil
}

func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

func (c *Cart) Owner() kernel.UUID { return c.owner }

// Lines returns the lines in insertion order.
func (c *Cart) Lines() []*Line { return slices.Clone(c.lines) }

func (c *Cart) IsEmpty() bool { return len(c.lines) == 0 }

// LineIDs returns the identifiers of every line currently held.
func (c *Cart) LineIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(c.lines))
	for _, l := range c.lines {
		ids = append(ids, l.ID())
	}
	return ids
}

// Total sums the frozen line prices.
func (c *Cart) Total() kernel.Money {
	total := kernel.ZeroMoney()
	for _, l := range c.lines {
		total = total.Add(l.Price())
	}
	return total
}

// AddItem adds quantity units of menuItemID. A new line freezes unitPrice; if
// the item is already in the cart its line keeps the price it was created with
// and only the quantity grows. lineID is used only when a new line is created.
func (c *Cart) AddItem(
	lineID, menuItemID kernel.UUID,
	quantity int,
	unitPrice kernel.Money,
	addedAt time.Time,
) (*Line, error) {
	for _, l := range c.lines {
		if l.MenuItemID().IsEqual(menuItemID) {
			if err := l.increase(quantity); err != nil {
				return nil, err
			}
			return l, nil
		}
	}

	l, err := NewLine(lineID, menuItemID, quantity, unitPrice, addedAt)
	if err != nil {
		return nil, err
	}
	c.lines = append(c.lines, l)
	return l, nil
}
