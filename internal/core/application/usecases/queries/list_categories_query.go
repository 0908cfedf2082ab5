package queries

import (
	"context"
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrListCategoriesQueryIsNotConstructed = errors.New(
	"ListCategoriesQuery must be created via NewListCategoriesQuery constructor",
)

type ListCategoriesQuery struct {
	principal identity.Principal

	guard guard.ConstructorGuard
}

func NewListCategoriesQuery(principal identity.Principal) (ListCategoriesQuery, error) {
	if err := principal.Validate(); err != nil {
		return ListCategoriesQuery{}, err
	}
	return ListCategoriesQuery{principal: principal, guard: guard.NewConstructorGuard()}, nil
}

func (q ListCategoriesQuery) Validate() error {
	return q.guard.Validate(ErrListCategoriesQueryIsNotConstructed)
}

type ListCategoriesQueryHandler struct {
	db   *gorm.DB
	gate *services.AccessGate
}

func NewListCategoriesQueryHandler(db *gorm.DB, gate *services.AccessGate) ListCategoriesQueryHandler {
	return ListCategoriesQueryHandler{db: db, gate: gate}
}

// Handle returns every category ordered by title.
func (h ListCategoriesQueryHandler) Handle(ctx context.Context, query ListCategoriesQuery) ([]CategoryView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if _, err := h.gate.Authorize(query.principal, services.ReadMenu); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw("SELECT id, slug, title FROM categories ORDER BY title, id").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]CategoryView, 0)
	for rows.Next() {
		var c CategoryView
		var id uuid.UUID
		if err = rows.Scan(&id, &c.Slug, &c.Title); err != nil {
			return nil, err
		}
		if c.ID, err = toUUID(id); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}
