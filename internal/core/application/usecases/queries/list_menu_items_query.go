package queries

import (
	"errors"
	"strings"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"
)

var ErrListMenuItemsQueryIsNotConstructed = errors.New(
	"ListMenuItemsQuery must be created via NewListMenuItemsQuery constructor",
)

// Orderings accepted by ListMenuItemsQuery.
const (
	OrderByDefault   = ""
	OrderByPrice     = "price"
	OrderByPriceDesc = "-price"
)

// ListMenuItemsQuery lists menu items, optionally restricted to one category
// (matched on its title, case-insensitively) and ordered by price.
//
// Example:
//
//	query, err := NewListMenuItemsQuery(principal, "desserts", OrderByPriceDesc)
type ListMenuItemsQuery struct {
	principal identity.Principal
	category  string
	ordering  string

	guard guard.ConstructorGuard
}

func NewListMenuItemsQuery(principal identity.Principal, category, ordering string) (ListMenuItemsQuery, error) {
	if err := principal.Validate(); err != nil {
		return ListMenuItemsQuery{}, err
	}

	ordering = strings.TrimSpace(ordering)
	switch ordering {
	case OrderByDefault, OrderByPrice, OrderByPriceDesc:
	default:
		return ListMenuItemsQuery{}, errs.NewValueIsInvalidError("ordering")
	}

	return ListMenuItemsQuery{
		principal: principal,
		category:  strings.TrimSpace(category),
		ordering:  ordering,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q ListMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrListMenuItemsQueryIsNotConstructed)
}

func (q ListMenuItemsQuery) Principal() identity.Principal { return q.principal }
func (q ListMenuItemsQuery) Category() string { return q.category }
func (q ListMenuItemsQuery) Ordering() string { return q.ordering }
