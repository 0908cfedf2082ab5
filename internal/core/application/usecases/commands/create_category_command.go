package commands

import (
	"context"
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/menu"
	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/pkg/guard"
)

var ErrCreateCategoryCommandIsNotConstructed = errors.New(
	"CreateCategoryCommand must be created via NewCreateCategoryCommand constructor",
)

type CreateCategoryCommand struct { //nolint:recvcheck //using for validation
	principal identity.Principal
	category  *menu.Category

	guard guard.ConstructorGuard
}

func NewCreateCategoryCommand(principal identity.Principal, id kernel.UUID, slug, title string) (CreateCategoryCommand, error) {
	if err := principal.Validate(); err != nil {
		return CreateCategoryCommand{}, err
	}
	category, err := menu.NewCategory(id, slug, title)
	if err != nil {
		return CreateCategoryCommand{}, err
	}
	return CreateCategoryCommand{principal: principal, category: category, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateCategoryCommand) Validate() error {
	return c.guard.Validate(ErrCreateCategoryCommandIsNotConstructed)
}

type CreateCategoryCommandHandler struct {
	uowFactory MenuUoWFactory
	gate       *services.AccessGate
}

func NewCreateCategoryCommandHandler(uowFactory MenuUoWFactory, gate *services.AccessGate) CreateCategoryCommandHandler {
	return CreateCategoryCommandHandler{uowFactory: uowFactory, gate: gate}
}

func (h *CreateCategoryCommandHandler) Handle(ctx context.Context, cmd CreateCategoryCommand) (*menu.Category, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if _, err := h.gate.Authorize(cmd.principal, services.WriteMenu); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.MenuRepository().AddCategory(ctx, cmd.category); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}
	return cmd.category, nil
}
