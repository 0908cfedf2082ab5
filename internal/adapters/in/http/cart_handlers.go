package http

import (
	"net/http"

	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/core/domain/model/identity"

	"github.com/labstack/echo/v4"
)

// GetCart handles GET /api/cart/menu-items.
func (s *Server) GetCart(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}
	return s.writeCart(c, p, http.StatusOK)
}

// AddCartItem handles POST /api/cart/menu-items. The price of the menu item
// is frozen into the cart line.
func (s *Server) AddCartItem(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}

	var input CartItemInput
	if err = c.Bind(&input); err != nil {
		return err
	}
	menuItemID, err := bodyUUID("menuitem", input.MenuItem)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAddCartItemCommand(p, menuItemID, input.Quantity)
	if err != nil {
		return err
	}
	if err = s.h.AddCartItem.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return s.writeCart(c, p, http.StatusCreated)
}

// ClearCart handles DELETE /api/cart/menu-items.
func (s *Server) ClearCart(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewClearCartCommand(p)
	if err != nil {
		return err
	}
	if err = s.h.ClearCart.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) writeCart(c echo.Context, p identity.Principal, status int) error {
	query, err := queries.NewGetCartQuery(p)
	if err != nil {
		return err
	}
	view, err := s.h.GetCart.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(status, cartFromView(view))
}
