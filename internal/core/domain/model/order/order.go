package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoItems is returned when an order is built without any item.
	ErrOrderHasNoItems = errs.NewValueIsRequiredError("order items")
)

// MaxTotal is the largest order total the ledger stores (ten digits, two decimals).
var MaxTotal = kernel.MustMoneyFromString("99999999.99")

// Order represents a placed customer order. It is the aggregate root owning the
// items copied from the cart at checkout.
//
// Order follows these invariants:
//   - owner, total, creation time and items never change after creation
//   - total equals the sum of the item line prices
//   - status is Pending or Delivered and follows Status.TransitionTo
//   - the delivery crew reference is optional and independent of status
type Order struct {
	id kernel.UUID

	// owner is the customer who placed the order
	owner kernel.UUID

	// deliveryCrew is the assigned crew member (nil if unassigned)
	deliveryCrew *kernel.UUID

	status    Status
	total     kernel.Money
	createdAt time.Time
	items     []*Item

	isConstructed bool
}

// NewOrder creates a Pending order without delivery crew. The total is
// computed from the items' frozen line prices.
//
// Example:
//
//	item, _ := order.NewItem(kernel.NewUUID(), menuItemID, 2, unit, line)
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, []*order.Item{item}, time.Now())
func NewOrder(id, owner kernel.UUID, items []*Item, createdAt time.Time) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOwner(owner),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.total = sumItems(o.items)
	if o.total.GreaterThan(MaxTotal) {
		return nil, errs.NewValueIsOutOfRangeError("total", o.total.String(), "0.00", MaxTotal.String())
	}
	o.createdAt = createdAt.UTC()
	return o, nil
}

// RestoreOrder rebuilds an order from storage. The stored total must still
// match the items.
func RestoreOrder(
	id, owner kernel.UUID,
	deliveryCrew *kernel.UUID,
	status Status,
	total kernel.Money,
	createdAt time.Time,
	items []*Item,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setOwner(owner),
		o.setDeliveryCrew(deliveryCrew),
		status.Validate(),
		total.Validate(),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	if sum := sumItems(o.items); !sum.IsEqual(total) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"total",
			fmt.Errorf("%s does not match the sum of items %s", total, sum),
		)
	}

	o.status = status
	o.total = total
	o.createdAt = createdAt.UTC()
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

// Owner returns the customer who placed the order.
func (o *Order) Owner() kernel.UUID {
	return o.owner
}

// DeliveryCrew returns the assigned crew member or nil.
func (o *Order) DeliveryCrew() *kernel.UUID {
	if o.deliveryCrew == nil {
		return nil
	}
	id := *o.deliveryCrew
	return &id
}

// IsAssignedTo reports whether userID is the order's delivery crew.
func (o *Order) IsAssignedTo(userID kernel.UUID) bool {
	return o.deliveryCrew != nil && o.deliveryCrew.IsEqual(userID)
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) Total() kernel.Money {
	return o.total
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Items returns a copy of the order items.
func (o *Order) Items() []*Item {
	return slices.Clone(o.items)
}

// ChangeStatus moves the order to next following the Status state machine.
// Re-setting the current status leaves the order unchanged.
func (o *Order) ChangeStatus(next Status) error {
	status, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}
	o.status = status
	return nil
}

// AssignDeliveryCrew sets or clears (nil) the delivery crew. The status is
// left untouched whatever its value.
func (o *Order) AssignDeliveryCrew(crew *kernel.UUID) error {
	return o.setDeliveryCrew(crew)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOwner(owner kernel.UUID) error {
	if err := owner.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("owner", err)
	}
	o.owner = owner
	return nil
}

func (o *Order) setDeliveryCrew(crew *kernel.UUID) error {
	if crew == nil {
		o.deliveryCrew = nil
		return nil
	}
	if err := crew.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("delivery_crew", err)
	}
	id := *crew
	o.deliveryCrew = &id
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = slices.Clone(items)
	return nil
}

func sumItems(items []*Item) kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range items {
		total = total.Add(item.LinePrice())
	}
	return total
}
