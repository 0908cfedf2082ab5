package commands

import (
	"context"
	"time"

	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/core/domain/services"
)

// PlaceOrderCommandHandler turns the principal's cart into an order in one
// transaction:
//
//  1. lock and snapshot the cart lines
//  2. build a Pending order whose total is the sum of the frozen line prices
//  3. persist the order with one item per line
//  4. remove exactly the snapshotted lines
//
// Any failure rolls everything back, so no order without items and no
// drained cart without an order is ever committed.
type PlaceOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
	gate       *services.AccessGate
	placer     services.OrderPlacer
	now        func() time.Time
}

func NewPlaceOrderCommandHandler(uowFactory CheckoutUoWFactory, gate *services.AccessGate) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		gate:       gate,
		placer:     services.NewOrderPlacer(),
		now:        time.Now,
	}
}

func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if _, err := h.gate.Authorize(cmd.Principal(), services.PlaceOrder); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()
	orderRepo := uow.OrderRepository()

	owner := cmd.Principal().UserID()
	c, err := cartRepo.Get(ctx, owner)
	if err != nil {
		return nil, err
	}

	o, err := h.placer.Place(c, cmd.OrderID(), h.now())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, o); err != nil {
		return nil, err
	}

	if err = cartRepo.RemoveLines(ctx, owner, c.LineIDs()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
