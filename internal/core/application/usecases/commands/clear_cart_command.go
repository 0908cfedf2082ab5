package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/pkg/guard"
)

var ErrClearCartCommandIsNotConstructed = errors.New(
	"ClearCartCommand must be created via NewClearCartCommand constructor",
)

// ClearCartCommand empties the principal's own cart.
type ClearCartCommand struct { //nolint:recvcheck //using for validation
	principal identity.Principal

	guard guard.ConstructorGuard
}

func NewClearCartCommand(principal identity.Principal) (ClearCartCommand, error) {
	if err := principal.Validate(); err != nil {
		return ClearCartCommand{}, err
	}
	return ClearCartCommand{principal: principal, guard: guard.NewConstructorGuard()}, nil
}

func (c ClearCartCommand) Validate() error {
	return c.guard.Validate(ErrClearCartCommandIsNotConstructed)
}

func (c ClearCartCommand) Principal() identity.Principal {
	return c.principal
}
