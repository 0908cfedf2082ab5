package commands

import (
	"errors"
	"fmt"
	"slices"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// OrderPatch is the set of order fields a request carries.
//
// Fields lists every field name present in the request, including read-only
// ones, so the gate can reject them. A "delivery_crew" entry with a nil
// DeliveryCrew unassigns the order.
type OrderPatch struct {
	Fields       []string
	Status       *int
	DeliveryCrew *kernel.UUID
}

// UpdateOrderCommand applies a partial or full update to one order.
//
// Example:
//
//	status := 1
//	cmd, err := NewUpdateOrderCommand(principal, orderID, OrderPatch{
//	    Fields: []string{"status"},
//	    Status: &status,
//	})
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	principal identity.Principal
	orderID   kernel.UUID
	fields    []string
	status    *order.Status
	crew      *kernel.UUID

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand validates the patch values. A status outside
// {0, 1} is rejected here, before any authorization, so it fails the same
// way for every role.
func NewUpdateOrderCommand(principal identity.Principal, orderID kernel.UUID, patch OrderPatch) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		fields: slices.Compact(slices.Sorted(slices.Values(patch.Fields))),
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPrincipal(principal),
		cmd.setOrderID(orderID),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	if len(cmd.fields) == 0 {
		return UpdateOrderCommand{}, errs.NewValueIsRequiredErrorWithCause("fields", errors.New("no field to update"))
	}

	if err := errors.Join(
		cmd.setStatus(patch.Status),
		cmd.setCrew(patch.DeliveryCrew),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) Principal() identity.Principal {
	return c.principal
}

func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Fields returns the sorted, deduplicated field names of the request.
func (c UpdateOrderCommand) Fields() []string {
	return slices.Clone(c.fields)
}

func (c UpdateOrderCommand) Touches(field string) bool {
	return slices.Contains(c.fields, field)
}

// Status returns the requested status when "status" is touched.
func (c UpdateOrderCommand) Status() (order.Status, bool) {
	if c.status == nil {
		return 0, false
	}
	return *c.status, true
}

// DeliveryCrew returns the requested assignee; nil means unassign.
func (c UpdateOrderCommand) DeliveryCrew() *kernel.UUID {
	return c.crew
}

func (c *UpdateOrderCommand) setPrincipal(p identity.Principal) error {
	if err := p.Validate(); err != nil {
		return err
	}
	c.principal = p
	return nil
}

func (c *UpdateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *UpdateOrderCommand) setStatus(v *int) error {
	if !c.Touches(services.FieldStatus) {
		return nil
	}
	if v == nil {
		return errs.NewValueIsRequiredError(services.FieldStatus)
	}
	s, err := order.ParseStatus(*v)
	if err != nil {
		return err
	}
	c.status = &s
	return nil
}

func (c *UpdateOrderCommand) setCrew(crew *kernel.UUID) error {
	if !c.Touches(services.FieldDeliveryCrew) || crew == nil {
		return nil
	}
	if err := crew.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(services.FieldDeliveryCrew, fmt.Errorf("not a user id: %w", err))
	}
	id := *crew
	c.crew = &id
	return nil
}
