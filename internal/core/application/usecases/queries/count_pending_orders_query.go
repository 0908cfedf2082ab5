package queries

import (
	"context"
	"errors"

	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrCountPendingOrdersQueryIsNotConstructed = errors.New(
	"CountPendingOrdersQuery must be created via NewCountPendingOrdersQuery constructor",
)

// CountPendingOrdersQuery counts Pending orders, in total and without a
// delivery crew. It is an operational query and runs without a principal.
type CountPendingOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewCountPendingOrdersQuery() CountPendingOrdersQuery {
	return CountPendingOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q CountPendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrCountPendingOrdersQueryIsNotConstructed)
}

type CountPendingOrdersQueryResponse struct {
	Pending    int64
	Unassigned int64
}

type CountPendingOrdersQueryHandler struct {
	db *gorm.DB
}

func NewCountPendingOrdersQueryHandler(db *gorm.DB) CountPendingOrdersQueryHandler {
	return CountPendingOrdersQueryHandler{db: db}
}

func (h CountPendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query CountPendingOrdersQuery,
) (CountPendingOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CountPendingOrdersQueryResponse{}, err
	}

	var resp CountPendingOrdersQueryResponse
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS pending,
			COALESCE(SUM(CASE WHEN delivery_crew_id IS NULL THEN 1 ELSE 0 END), 0) AS unassigned
		FROM orders
		WHERE status = ?
	`, int(order.Pending)).Scan(&resp).Error
	if err != nil {
		return CountPendingOrdersQueryResponse{}, err
	}

	return resp, nil
}
