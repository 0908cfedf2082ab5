package commands

import (
	"context"
)

type ExpireCartLinesCommandHandler struct {
	uowFactory CartUoWFactory
}

func NewExpireCartLinesCommandHandler(uowFactory CartUoWFactory) ExpireCartLinesCommandHandler {
	return ExpireCartLinesCommandHandler{uowFactory: uowFactory}
}

// Handle returns the number of removed lines.
func (h *ExpireCartLinesCommandHandler) Handle(ctx context.Context, cmd ExpireCartLinesCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	removed, err := uow.CartRepository().RemoveAddedBefore(ctx, cmd.Cutoff())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return removed, nil
}
