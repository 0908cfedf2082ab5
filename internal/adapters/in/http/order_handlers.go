package http

import (
	"encoding/json"
	"net/http"
	"slices"

	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ListOrders handles GET /api/orders.
func (s *Server) ListOrders(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}

	query, err := queries.NewListOrdersQuery(p)
	if err != nil {
		return err
	}
	orders, err := s.h.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]Order, 0, len(orders))
	for _, o := range orders {
		response = append(response, orderFromView(o))
	}
	return c.JSON(http.StatusOK, response)
}

// PlaceOrder handles POST /api/orders: the caller's cart becomes an order.
func (s *Server) PlaceOrder(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewPlaceOrderCommand(p, kernel.NewUUID())
	if err != nil {
		return err
	}
	o, err := s.h.PlaceOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, orderDetailFromDomain(o))
}

// GetOrder handles GET /api/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(p, id)
	if err != nil {
		return err
	}
	detail, err := s.h.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orderDetailFromView(detail))
}

// UpdateOrder handles PUT and PATCH /api/orders/:id. Every key of the body
// counts as a touched field.
func (s *Server) UpdateOrder(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var body map[string]json.RawMessage
	if err = json.NewDecoder(c.Request().Body).Decode(&body); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	patch, err := orderPatchFromBody(body)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderCommand(p, id, patch)
	if err != nil {
		return err
	}
	o, err := s.h.UpdateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orderFromDomain(o))
}

// DeleteOrder handles DELETE /api/orders/:id.
func (s *Server) DeleteOrder(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteOrderCommand(p, id)
	if err != nil {
		return err
	}
	if err = s.h.DeleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func orderPatchFromBody(body map[string]json.RawMessage) (commands.OrderPatch, error) {
	patch := commands.OrderPatch{Fields: make([]string, 0, len(body))}
	for field := range body {
		patch.Fields = append(patch.Fields, field)
	}
	slices.Sort(patch.Fields)

	if raw, ok := body[services.FieldStatus]; ok {
		if err := json.Unmarshal(raw, &patch.Status); err != nil {
			return commands.OrderPatch{}, errs.NewValueIsInvalidErrorWithCause(services.FieldStatus, err)
		}
	}

	if raw, ok := body[services.FieldDeliveryCrew]; ok {
		var crew *uuid.UUID
		if err := json.Unmarshal(raw, &crew); err != nil {
			return commands.OrderPatch{}, errs.NewValueIsInvalidErrorWithCause(services.FieldDeliveryCrew, err)
		}
		if crew != nil {
			id, err := kernel.UUIDFromBytes(crew[:])
			if err != nil {
				return commands.OrderPatch{}, errs.NewValueIsInvalidErrorWithCause(services.FieldDeliveryCrew, err)
			}
			patch.DeliveryCrew = &id
		}
	}

	return patch, nil
}
