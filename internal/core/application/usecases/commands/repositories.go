// Package commands contains business operations that modify system state.
// Every command is built by its constructor, authorized through the
// AccessGate and executed inside one unit of work.
package commands

import (
	"context"

	"littlelemon/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	MenuRepoFactory interface {
		MenuRepository() ports.MenuRepository
	}

	UserDirectoryFactory interface {
		UserDirectory() ports.UserDirectory
	}

	// CartUoW is used by cart mutations. Adding an item reads the menu to
	// freeze the current price.
	CartUoW interface {
		TxManager
		CartRepoFactory
		MenuRepoFactory
	}

	CartUoWFactory interface {
		Create() CartUoW
	}

	// CheckoutUoW spans the cart and the order ledger so that placing an
	// order and draining the cart commit together.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   c, err := uow.CartRepository().Get(ctx, owner)
	//   // ... place the order
	//   err = uow.OrderRepository().Add(ctx, o)
	//   err = uow.CartRepository().RemoveLines(ctx, owner, c.LineIDs())
	//
	//   err = uow.Commit(ctx)
	CheckoutUoW interface {
		TxManager
		CartRepoFactory
		OrderRepoFactory
	}

	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// OrderUoW is used by order updates and deletes. The user directory
	// resolves delivery crew assignees.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		UserDirectoryFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	MenuUoW interface {
		TxManager
		MenuRepoFactory
	}

	MenuUoWFactory interface {
		Create() MenuUoW
	}

	DirectoryUoW interface {
		TxManager
		UserDirectoryFactory
	}

	DirectoryUoWFactory interface {
		Create() DirectoryUoW
	}
)
