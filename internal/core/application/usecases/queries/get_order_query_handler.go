package queries

import (
	"context"
	"database/sql"
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler loads an order with its items and checks it against
// the ReadOrders scope of the principal. An order outside the scope is
// Forbidden, a missing one is NotFound.
type GetOrderQueryHandler struct {
	db   *gorm.DB
	gate *services.AccessGate
}

func NewGetOrderQueryHandler(db *gorm.DB, gate *services.AccessGate) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, gate: gate}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderDetailView, error) {
	if err := query.Validate(); err != nil {
		return OrderDetailView{}, err
	}

	perm, err := h.gate.Authorize(query.Principal(), services.ReadOrders)
	if err != nil {
		return OrderDetailView{}, err
	}

	db := h.db.WithContext(ctx)
	id := query.OrderID()

	view, err := scanOrder(db.Raw("SELECT"+orderColumns+" FROM orders o WHERE o.id = ?", id.Bytes()).Row())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderDetailView{}, errs.NewObjectNotFoundError("order", id.String())
		}
		return OrderDetailView{}, err
	}

	detail := OrderDetailView{OrderView: view}
	if detail.Items, err = h.items(db, id.Bytes()); err != nil {
		return OrderDetailView{}, err
	}

	if err = h.authorize(db, query.Principal(), perm, detail); err != nil {
		return OrderDetailView{}, err
	}

	return detail, nil
}

func (h GetOrderQueryHandler) items(db *gorm.DB, orderID uuid.UUID) ([]OrderItemView, error) {
	rows, err := db.Raw(`
		SELECT id, menu_item_id, quantity, unit_price, price
		FROM order_items
		WHERE order_id = ?
		ORDER BY position
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemView, 0)
	for rows.Next() {
		var item OrderItemView
		var id, menuItemID uuid.UUID
		var unitPrice, price decimal.Decimal

		if err = rows.Scan(&id, &menuItemID, &item.Quantity, &unitPrice, &price); err != nil {
			return nil, err
		}
		if item.ID, err = toUUID(id); err != nil {
			return nil, err
		}
		if item.MenuItemID, err = toUUID(menuItemID); err != nil {
			return nil, err
		}
		if item.UnitPrice, err = toMoney(unitPrice); err != nil {
			return nil, err
		}
		if item.Price, err = toMoney(price); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// authorize rebuilds the order aggregate so that record scope is decided by
// the same gate rule the commands use.
func (h GetOrderQueryHandler) authorize(
	db *gorm.DB,
	p identity.Principal,
	perm services.Permission,
	detail OrderDetailView,
) error {
	items := make([]*order.Item, 0, len(detail.Items))
	for _, it := range detail.Items {
		item, err := order.NewItem(it.ID, it.MenuItemID, it.Quantity, it.UnitPrice, it.Price)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	o, err := order.RestoreOrder(
		detail.ID, detail.UserID, detail.DeliveryCrew, detail.Status, detail.Total, detail.Date, items,
	)
	if err != nil {
		return err
	}

	inCrew := false
	if perm.Scope == services.ScopeCrewAssigned && detail.DeliveryCrew != nil {
		var count int64
		if err = db.Raw(
			"SELECT COUNT(*) FROM user_groups WHERE user_id = ? AND group_name = ?",
			detail.DeliveryCrew.Bytes(), identity.GroupDeliveryCrew,
		).Scan(&count).Error; err != nil {
			return err
		}
		inCrew = count > 0
	}

	return h.gate.AuthorizeOrder(p, perm, o, inCrew)
}
