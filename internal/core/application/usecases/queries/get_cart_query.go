package queries

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New("GetCartQuery must be created via NewGetCartQuery constructor")

// GetCartQuery reads the principal's own cart.
type GetCartQuery struct {
	principal identity.Principal

	guard guard.ConstructorGuard
}

func NewGetCartQuery(principal identity.Principal) (GetCartQuery, error) {
	if err := principal.Validate(); err != nil {
		return GetCartQuery{}, err
	}
	return GetCartQuery{principal: principal, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

func (q GetCartQuery) Principal() identity.Principal {
	return q.principal
}
