package commands

import (
	"context"

	"littlelemon/internal/core/domain/services"
)

// DeleteMenuItemCommandHandler is restricted to superusers.
type DeleteMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
	gate       *services.AccessGate
}

func NewDeleteMenuItemCommandHandler(uowFactory MenuUoWFactory, gate *services.AccessGate) DeleteMenuItemCommandHandler {
	return DeleteMenuItemCommandHandler{uowFactory: uowFactory, gate: gate}
}

func (h *DeleteMenuItemCommandHandler) Handle(ctx context.Context, cmd DeleteMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if _, err := h.gate.Authorize(cmd.Principal(), services.DeleteMenu); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.MenuRepository().Delete(ctx, cmd.MenuItemID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
