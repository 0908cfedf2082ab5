package commands

import (
	"context"

	"littlelemon/internal/core/domain/services"
)

// DeleteOrderCommandHandler removes an order in any status together with
// its items. Only managers and superusers pass the gate.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	gate       *services.AccessGate
}

func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory, gate *services.AccessGate) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{uowFactory: uowFactory, gate: gate}
}

func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if _, err := h.gate.Authorize(cmd.Principal(), services.DeleteOrder); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
