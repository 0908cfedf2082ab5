package queries

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New("ListOrdersQuery must be created via NewListOrdersQuery constructor")

// ListOrdersQuery lists the orders visible to the principal:
//   - customers see their own orders
//   - delivery crew see orders assigned to a delivery crew member
//   - managers and superusers see every order
//
// Example:
//
//	query, err := NewListOrdersQuery(principal)
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	principal identity.Principal

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(principal identity.Principal) (ListOrdersQuery, error) {
	if err := principal.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}
	return ListOrdersQuery{principal: principal, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Principal() identity.Principal {
	return q.principal
}
