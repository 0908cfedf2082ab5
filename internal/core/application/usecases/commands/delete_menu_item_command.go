package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/guard"
)

var ErrDeleteMenuItemCommandIsNotConstructed = errors.New(
	"DeleteMenuItemCommand must be created via NewDeleteMenuItemCommand constructor",
)

type DeleteMenuItemCommand struct { //nolint:recvcheck //using for validation
	principal  identity.Principal
	menuItemID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteMenuItemCommand(principal identity.Principal, menuItemID kernel.UUID) (DeleteMenuItemCommand, error) {
	if err := errors.Join(principal.Validate(), menuItemID.Validate()); err != nil {
		return DeleteMenuItemCommand{}, err
	}
	return DeleteMenuItemCommand{
		principal:  principal,
		menuItemID: menuItemID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteMenuItemCommandIsNotConstructed)
}

func (c DeleteMenuItemCommand) Principal() identity.Principal { return c.principal }
func (c DeleteMenuItemCommand) MenuItemID() kernel.UUID { return c.menuItemID }
