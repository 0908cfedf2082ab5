package commands

import (
	"context"

	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/core/ports"
)

// ChangeGroupMembershipCommandHandler serves both directions; the
// constructor picks the user directory operation.
type ChangeGroupMembershipCommandHandler struct {
	uowFactory DirectoryUoWFactory
	gate       *services.AccessGate
	apply      func(ctx context.Context, users ports.UserDirectory, cmd ChangeGroupMembershipCommand) error
}

// NewAddGroupMemberCommandHandler adds the user to the group. Adding an
// existing member succeeds.
func NewAddGroupMemberCommandHandler(uowFactory DirectoryUoWFactory, gate *services.AccessGate) ChangeGroupMembershipCommandHandler {
	return ChangeGroupMembershipCommandHandler{
		uowFactory: uowFactory,
		gate:       gate,
		apply: func(ctx context.Context, users ports.UserDirectory, cmd ChangeGroupMembershipCommand) error {
			return users.AddToGroup(ctx, cmd.UserID(), cmd.Group())
		},
	}
}

func NewRemoveGroupMemberCommandHandler(uowFactory DirectoryUoWFactory, gate *services.AccessGate) ChangeGroupMembershipCommandHandler {
	return ChangeGroupMembershipCommandHandler{
		uowFactory: uowFactory,
		gate:       gate,
		apply: func(ctx context.Context, users ports.UserDirectory, cmd ChangeGroupMembershipCommand) error {
			return users.RemoveFromGroup(ctx, cmd.UserID(), cmd.Group())
		},
	}
}

func (h *ChangeGroupMembershipCommandHandler) Handle(ctx context.Context, cmd ChangeGroupMembershipCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if _, err := h.gate.Authorize(cmd.Principal(), services.ManageGroups); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := h.apply(ctx, uow.UserDirectory(), cmd); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
