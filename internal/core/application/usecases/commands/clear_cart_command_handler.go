package commands

import (
	"context"

	"littlelemon/internal/core/domain/services"
)

type ClearCartCommandHandler struct {
	uowFactory CartUoWFactory
	gate       *services.AccessGate
}

func NewClearCartCommandHandler(uowFactory CartUoWFactory, gate *services.AccessGate) ClearCartCommandHandler {
	return ClearCartCommandHandler{uowFactory: uowFactory, gate: gate}
}

// Handle deletes every line of the principal's cart. Clearing an empty cart
// succeeds.
func (h *ClearCartCommandHandler) Handle(ctx context.Context, cmd ClearCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if _, err := h.gate.Authorize(cmd.Principal(), services.UseCart); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.CartRepository().Clear(ctx, cmd.Principal().UserID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
