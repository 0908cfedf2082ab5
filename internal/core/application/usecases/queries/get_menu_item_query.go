package queries

import (
	"context"
	"database/sql"
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetMenuItemQueryIsNotConstructed = errors.New(
	"GetMenuItemQuery must be created via NewGetMenuItemQuery constructor",
)

type GetMenuItemQuery struct {
	principal  identity.Principal
	menuItemID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetMenuItemQuery(principal identity.Principal, menuItemID kernel.UUID) (GetMenuItemQuery, error) {
	if err := errors.Join(principal.Validate(), menuItemID.Validate()); err != nil {
		return GetMenuItemQuery{}, err
	}
	return GetMenuItemQuery{principal: principal, menuItemID: menuItemID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetMenuItemQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuItemQueryIsNotConstructed)
}

type GetMenuItemQueryHandler struct {
	db   *gorm.DB
	gate *services.AccessGate
}

func NewGetMenuItemQueryHandler(db *gorm.DB, gate *services.AccessGate) GetMenuItemQueryHandler {
	return GetMenuItemQueryHandler{db: db, gate: gate}
}

func (h GetMenuItemQueryHandler) Handle(ctx context.Context, query GetMenuItemQuery) (MenuItemView, error) {
	if err := query.Validate(); err != nil {
		return MenuItemView{}, err
	}

	if _, err := h.gate.Authorize(query.principal, services.ReadMenu); err != nil {
		return MenuItemView{}, err
	}

	row := h.db.WithContext(ctx).Raw(
		"SELECT id, title, price, featured, category_id FROM menu_items WHERE id = ?",
		query.menuItemID.Bytes(),
	).Row()

	item, err := scanMenuItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return MenuItemView{}, errs.NewObjectNotFoundError("menuitem", query.menuItemID.String())
	}
	return item, err
}
