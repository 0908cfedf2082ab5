package commands

import (
	"context"
	"errors"
	"fmt"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/core/ports"
	"littlelemon/internal/pkg/errs"
)

// UpdateOrderCommandHandler changes the status and/or delivery crew of an
// order. Either every requested change is applied or none is.
//
// Checks run in this order:
//   - status range (in the command constructor)
//   - role and field permissions
//   - read-only fields, which only a superuser can get this far with
//   - order visibility under the granted scope
//   - delivery crew eligibility
//   - status transition
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	gate       *services.AccessGate
	assignees  services.CrewAssigneeValidator
}

func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory, gate *services.AccessGate) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		gate:       gate,
		assignees:  services.NewCrewAssigneeValidator(),
	}
}

func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	perm, err := h.gate.Authorize(cmd.Principal(), services.UpdateOrder, cmd.Fields()...)
	if err != nil {
		return nil, err
	}

	for _, f := range cmd.Fields() {
		if f != services.FieldStatus && f != services.FieldDeliveryCrew {
			return nil, errs.NewValueIsInvalidErrorWithCause(f, errors.New("field is read-only"))
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	users := uow.UserDirectory()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	inCrew, err := assigneeInCrew(ctx, users, perm, o)
	if err != nil {
		return nil, err
	}
	if err = h.gate.AuthorizeOrder(cmd.Principal(), perm, o, inCrew); err != nil {
		return nil, err
	}

	if cmd.Touches(services.FieldDeliveryCrew) {
		var assignee *identity.User
		if id := cmd.DeliveryCrew(); id != nil {
			if assignee, err = users.Get(ctx, *id); err != nil {
				return nil, err
			}
		}
		if err = h.assignees.Validate(assignee); err != nil {
			return nil, err
		}
		if err = o.AssignDeliveryCrew(cmd.DeliveryCrew()); err != nil {
			return nil, err
		}
	}

	if status, ok := cmd.Status(); ok {
		if err = o.ChangeStatus(status); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

// assigneeInCrew reports whether the order's current delivery crew is still a
// member of the Delivery crew group. Only crew-scoped permissions need it.
func assigneeInCrew(ctx context.Context, users ports.UserDirectory, perm services.Permission, o *order.Order) (bool, error) {
	crew := o.DeliveryCrew()
	if perm.Scope != services.ScopeCrewAssigned || crew == nil {
		return false, nil
	}

	u, err := users.Get(ctx, *crew)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("resolve delivery crew of order %s: %w", o.ID(), err)
	}
	return u.InGroup(identity.GroupDeliveryCrew), nil
}
