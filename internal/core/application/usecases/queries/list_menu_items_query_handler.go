package queries

import (
	"context"

	"littlelemon/internal/core/domain/services"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ListMenuItemsQueryHandler struct {
	db   *gorm.DB
	gate *services.AccessGate
}

func NewListMenuItemsQueryHandler(db *gorm.DB, gate *services.AccessGate) ListMenuItemsQueryHandler {
	return ListMenuItemsQueryHandler{db: db, gate: gate}
}

// Handle orders by title unless a price ordering was requested; ties are
// broken by id so pages are stable.
func (h ListMenuItemsQueryHandler) Handle(ctx context.Context, query ListMenuItemsQuery) ([]MenuItemView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if _, err := h.gate.Authorize(query.Principal(), services.ReadMenu); err != nil {
		return nil, err
	}

	stmt := `
		SELECT m.id, m.title, m.price, m.featured, m.category_id
		FROM menu_items m`
	var args []any
	if query.Category() != "" {
		stmt += `
		JOIN categories c ON c.id = m.category_id
		WHERE LOWER(c.title) = LOWER(?)`
		args = append(args, query.Category())
	}

	switch query.Ordering() {
	case OrderByPrice:
		stmt += " ORDER BY m.price, m.id"
	case OrderByPriceDesc:
		stmt += " ORDER BY m.price DESC, m.id"
	default:
		stmt += " ORDER BY m.title, m.id"
	}

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]MenuItemView, 0)
	for rows.Next() {
		item, scanErr := scanMenuItem(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func scanMenuItem(row rowScanner) (MenuItemView, error) {
	var item MenuItemView
	var id, categoryID uuid.UUID
	var price decimal.Decimal

	if err := row.Scan(&id, &item.Title, &price, &item.Featured, &categoryID); err != nil {
		return MenuItemView{}, err
	}

	var err error
	if item.ID, err = toUUID(id); err != nil {
		return MenuItemView{}, err
	}
	if item.CategoryID, err = toUUID(categoryID); err != nil {
		return MenuItemView{}, err
	}
	if item.Price, err = toMoney(price); err != nil {
		return MenuItemView{}, err
	}

	return item, nil
}
