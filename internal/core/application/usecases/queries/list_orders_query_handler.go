package queries

import (
	"context"
	"fmt"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/core/domain/services"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const orderColumns = `
	o.id,
	o.user_id,
	o.delivery_crew_id,
	o.status,
	o.total,
	o.created_at`

// crewAssignedFilter keeps orders whose delivery crew is currently a member
// of the delivery crew group.
const crewAssignedFilter = `o.delivery_crew_id IN (
	SELECT g.user_id FROM user_groups g WHERE g.group_name = ?
)`

// ListOrdersQueryHandler applies the ReadOrders scope of the principal as a
// SQL filter, so orders outside the scope are never loaded.
type ListOrdersQueryHandler struct {
	db   *gorm.DB
	gate *services.AccessGate
}

func NewListOrdersQueryHandler(db *gorm.DB, gate *services.AccessGate) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db, gate: gate}
}

// Handle returns the visible orders, newest first.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	perm, err := h.gate.Authorize(query.Principal(), services.ReadOrders)
	if err != nil {
		return nil, err
	}

	stmt := "SELECT" + orderColumns + " FROM orders o"
	var args []any
	switch perm.Scope {
	case services.ScopeOwn:
		stmt += " WHERE o.user_id = ?"
		args = append(args, query.Principal().UserID().Bytes())
	case services.ScopeCrewAssigned:
		stmt += " WHERE " + crewAssignedFilter
		args = append(args, identity.GroupDeliveryCrew)
	case services.ScopeAll:
	default:
		return nil, fmt.Errorf("unsupported order scope %d", perm.Scope)
	}
	stmt += " ORDER BY o.created_at DESC, o.id"

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderView, 0)
	for rows.Next() {
		view, scanErr := scanOrder(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (OrderView, error) {
	var view OrderView
	var id, userID uuid.UUID
	var crew uuid.NullUUID
	var status int
	var total decimal.Decimal

	if err := row.Scan(&id, &userID, &crew, &status, &total, &view.Date); err != nil {
		return OrderView{}, err
	}

	var err error
	if view.ID, err = toUUID(id); err != nil {
		return OrderView{}, err
	}
	if view.UserID, err = toUUID(userID); err != nil {
		return OrderView{}, err
	}
	if view.DeliveryCrew, err = toOptionalUUID(crew); err != nil {
		return OrderView{}, err
	}
	if view.Status, err = order.ParseStatus(status); err != nil {
		return OrderView{}, err
	}
	if view.Total, err = toMoney(total); err != nil {
		return OrderView{}, err
	}
	view.Date = view.Date.UTC()

	return view, nil
}
