package commands

import (
	"context"

	"littlelemon/internal/core/domain/model/menu"
	"littlelemon/internal/core/domain/services"
)

type CreateMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
	gate       *services.AccessGate
}

func NewCreateMenuItemCommandHandler(uowFactory MenuUoWFactory, gate *services.AccessGate) CreateMenuItemCommandHandler {
	return CreateMenuItemCommandHandler{uowFactory: uowFactory, gate: gate}
}

// Handle stores a new menu item. The referenced category must exist.
func (h *CreateMenuItemCommandHandler) Handle(ctx context.Context, cmd SaveMenuItemCommand) (*menu.MenuItem, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if _, err := h.gate.Authorize(cmd.Principal(), services.WriteMenu); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuRepo := uow.MenuRepository()
	if _, err := menuRepo.GetCategory(ctx, cmd.CategoryID()); err != nil {
		return nil, err
	}

	item, err := menu.NewMenuItem(cmd.MenuItemID(), cmd.Title(), cmd.Price(), cmd.Featured(), cmd.CategoryID())
	if err != nil {
		return nil, err
	}

	if err = menuRepo.Add(ctx, item); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return item, nil
}
