package queries

import (
	"context"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/services"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetCartQueryHandler lists the cart lines of the principal, oldest first,
// with the frozen prices and the current title of each menu item.
type GetCartQueryHandler struct {
	db   *gorm.DB
	gate *services.AccessGate
}

func NewGetCartQueryHandler(db *gorm.DB, gate *services.AccessGate) GetCartQueryHandler {
	return GetCartQueryHandler{db: db, gate: gate}
}

func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (CartView, error) {
	if err := query.Validate(); err != nil {
		return CartView{}, err
	}

	if _, err := h.gate.Authorize(query.Principal(), services.UseCart); err != nil {
		return CartView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			l.id,
			l.menu_item_id,
			COALESCE(m.title, ''),
			l.quantity,
			l.unit_price,
			l.price
		FROM cart_lines l
		LEFT JOIN menu_items m ON m.id = l.menu_item_id
		WHERE l.user_id = ?
		ORDER BY l.added_at, l.id
	`, query.Principal().UserID().Bytes()).Rows()
	if err != nil {
		return CartView{}, err
	}
	defer rows.Close()

	view := CartView{Lines: make([]CartLineView, 0), Total: kernel.ZeroMoney()}
	for rows.Next() {
		var line CartLineView
		var id, menuItemID uuid.UUID
		var unitPrice, price decimal.Decimal

		if err = rows.Scan(&id, &menuItemID, &line.Title, &line.Quantity, &unitPrice, &price); err != nil {
			return CartView{}, err
		}

		if line.ID, err = toUUID(id); err != nil {
			return CartView{}, err
		}
		if line.MenuItemID, err = toUUID(menuItemID); err != nil {
			return CartView{}, err
		}
		if line.UnitPrice, err = toMoney(unitPrice); err != nil {
			return CartView{}, err
		}
		if line.Price, err = toMoney(price); err != nil {
			return CartView{}, err
		}

		view.Total = view.Total.Add(line.Price)
		view.Lines = append(view.Lines, line)
	}

	if err = rows.Err(); err != nil {
		return CartView{}, err
	}

	return view, nil
}
