package commands

import (
	"context"
	"time"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/services"
)

// AddCartItemCommandHandler freezes the menu item's current price into a
// cart line. Adding an item already in the cart merges the quantity into the
// existing line.
type AddCartItemCommandHandler struct {
	uowFactory CartUoWFactory
	gate       *services.AccessGate
	now        func() time.Time
}

func NewAddCartItemCommandHandler(uowFactory CartUoWFactory, gate *services.AccessGate) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		uowFactory: uowFactory,
		gate:       gate,
		now:        time.Now,
	}
}

func (h *AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) error {
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

	menuRepo := uow.MenuRepository()
	cartRepo := uow.CartRepository()

	item, err := menuRepo.Get(ctx, cmd.MenuItemID())
	if err != nil {
		return err
	}

	c, err := cartRepo.Get(ctx, cmd.Principal().UserID())
	if err != nil {
		return err
	}

	if _, err = c.AddItem(kernel.NewUUID(), item.ID(), cmd.Quantity(), item.Price(), h.now().UTC()); err != nil {
		return err
	}

	if err = cartRepo.Save(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
