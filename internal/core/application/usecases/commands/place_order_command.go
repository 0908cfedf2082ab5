package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand checks out the principal's cart into a new order.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(principal, kernel.NewUUID())
//	if err != nil {
//	    return err
//	}
//	o, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, cart.ErrEmptyCart) {
//	    // nothing to check out
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	principal identity.Principal
	orderID   kernel.UUID

	guard guard.ConstructorGuard
}

func NewPlaceOrderCommand(principal identity.Principal, orderID kernel.UUID) (PlaceOrderCommand, error) {
	if err := errors.Join(principal.Validate(), orderID.Validate()); err != nil {
		return PlaceOrderCommand{}, err
	}

	return PlaceOrderCommand{
		principal: principal,
		orderID:   orderID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) Principal() identity.Principal {
	return c.principal
}

func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
