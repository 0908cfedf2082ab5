package commands

import (
	"context"

	"littlelemon/internal/core/domain/model/menu"
	"littlelemon/internal/core/domain/services"
)

type UpdateMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
	gate       *services.AccessGate
}

func NewUpdateMenuItemCommandHandler(uowFactory MenuUoWFactory, gate *services.AccessGate) UpdateMenuItemCommandHandler {
	return UpdateMenuItemCommandHandler{uowFactory: uowFactory, gate: gate}
}

// Handle replaces an existing menu item. Cart lines and order items keep the
// price they captured earlier.
func (h *UpdateMenuItemCommandHandler) Handle(ctx context.Context, cmd SaveMenuItemCommand) (*menu.MenuItem, error) {
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
	item, err := menuRepo.Get(ctx, cmd.MenuItemID())
	if err != nil {
		return nil, err
	}

	if _, err = menuRepo.GetCategory(ctx, cmd.CategoryID()); err != nil {
		return nil, err
	}

	if err = item.Update(cmd.Title(), cmd.Price(), cmd.Featured(), cmd.CategoryID()); err != nil {
		return nil, err
	}

	if err = menuRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return item, nil
}
