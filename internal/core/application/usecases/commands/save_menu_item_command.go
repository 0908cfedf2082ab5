package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/menu"
	"littlelemon/internal/pkg/guard"
)

var ErrSaveMenuItemCommandIsNotConstructed = errors.New(
	"SaveMenuItemCommand must be created via NewSaveMenuItemCommand constructor",
)

// SaveMenuItemCommand carries the full state of a menu item. It is used both
// to create an item and to replace an existing one.
type SaveMenuItemCommand struct { //nolint:recvcheck //using for validation
	principal  identity.Principal
	menuItemID kernel.UUID
	title      string
	price      kernel.Money
	featured   bool
	categoryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSaveMenuItemCommand validates the item fields with the same rules as
// the MenuItem aggregate.
func NewSaveMenuItemCommand(
	principal identity.Principal,
	menuItemID kernel.UUID,
	title string,
	price kernel.Money,
	featured bool,
	categoryID kernel.UUID,
) (SaveMenuItemCommand, error) {
	if err := principal.Validate(); err != nil {
		return SaveMenuItemCommand{}, err
	}
	item, err := menu.NewMenuItem(menuItemID, title, price, featured, categoryID)
	if err != nil {
		return SaveMenuItemCommand{}, err
	}

	return SaveMenuItemCommand{
		principal:  principal,
		menuItemID: item.ID(),
		title:      item.Title(),
		price:      item.Price(),
		featured:   item.Featured(),
		categoryID: item.CategoryID(),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c SaveMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrSaveMenuItemCommandIsNotConstructed)
}

func (c SaveMenuItemCommand) Principal() identity.Principal { return c.principal }
func (c SaveMenuItemCommand) MenuItemID() kernel.UUID { return c.menuItemID }
func (c SaveMenuItemCommand) Title() string { return c.title }
func (c SaveMenuItemCommand) Price() kernel.Money { return c.price }
func (c SaveMenuItemCommand) Featured() bool { return c.featured }
func (c SaveMenuItemCommand) CategoryID() kernel.UUID { return c.categoryID }
