// Package http exposes the ordering backend over HTTP with echo. Requests are
// validated against the embedded OpenAPI document, the caller is resolved
// from the X-User-ID header and domain errors are mapped to status codes by
// NewErrorHandler.
package http

import (
	"context"
	"log/slog"
	"net/http"

	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/oapi-codegen/runtime"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	// Command handlers
	AddCartItem       commands.AddCartItemCommandHandler
	ClearCart         commands.ClearCartCommandHandler
	PlaceOrder        commands.PlaceOrderCommandHandler
	UpdateOrder       commands.UpdateOrderCommandHandler
	DeleteOrder       commands.DeleteOrderCommandHandler
	CreateMenuItem    commands.CreateMenuItemCommandHandler
	UpdateMenuItem    commands.UpdateMenuItemCommandHandler
	DeleteMenuItem    commands.DeleteMenuItemCommandHandler
	CreateCategory    commands.CreateCategoryCommandHandler
	AddGroupMember    commands.ChangeGroupMembershipCommandHandler
	RemoveGroupMember commands.ChangeGroupMembershipCommandHandler

	// Query handlers
	GetCart          queries.GetCartQueryHandler
	ListOrders       queries.ListOrdersQueryHandler
	GetOrder         queries.GetOrderQueryHandler
	ListMenuItems    queries.ListMenuItemsQueryHandler
	GetMenuItem      queries.GetMenuItemQueryHandler
	ListCategories   queries.ListCategoriesQueryHandler
	ListGroupMembers queries.ListGroupMembersQueryHandler
	GetPrincipal     queries.GetPrincipalQueryHandler
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	h Handlers
}

func NewServer(h Handlers) *Server {
	return &Server{h: h}
}

// NewEcho builds the echo instance with middleware, error handling, the
// swagger UI and every route registered.
func NewEcho(s *Server, logger *slog.Logger) (*echo.Echo, error) {
	doc, err := LoadSwagger(context.Background())
	if err != nil {
		return nil, err
	}
	validator, err := RequestValidator(doc)
	if err != nil {
		return nil, err
	}
	if err = RegisterSwagger(doc); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewErrorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(RequestLogger(logger))
	e.Use(validator)
	e.Use(PrincipalMiddleware(s.h.GetPrincipal))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	s.RegisterRoutes(e)
	return e, nil
}

// RegisterRoutes mounts the /api routes on e.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.GET("/menu-items", s.ListMenuItems)
	api.POST("/menu-items", s.CreateMenuItem)
	api.GET("/menu-items/:id", s.GetMenuItem)
	api.PUT("/menu-items/:id", s.UpdateMenuItem)
	api.PATCH("/menu-items/:id", s.PatchMenuItem)
	api.DELETE("/menu-items/:id", s.DeleteMenuItem)

	api.GET("/categories", s.ListCategories)
	api.POST("/categories", s.CreateCategory)

	api.GET("/cart/menu-items", s.GetCart)
	api.POST("/cart/menu-items", s.AddCartItem)
	api.DELETE("/cart/menu-items", s.ClearCart)

	api.GET("/orders", s.ListOrders)
	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id", s.UpdateOrder)
	api.PATCH("/orders/:id", s.UpdateOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)

	for path, group := range map[string]string{
		"manager":       identity.GroupManager,
		"delivery-crew": identity.GroupDeliveryCrew,
	} {
		api.GET("/groups/"+path+"/users", s.ListGroupMembers(group))
		api.POST("/groups/"+path+"/users", s.AddGroupMember(group))
		api.DELETE("/groups/"+path+"/users/:userId", s.RemoveGroupMember(group))
	}
}

// pathUUID binds the path parameter name as a UUID.
func pathUUID(c echo.Context, name string) (kernel.UUID, error) {
	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return kernel.UUIDFromBytes(id[:])
}

// queryString binds an optional form-style query parameter.
func queryString(c echo.Context, name string) (string, error) {
	var value *string
	if err := runtime.BindQueryParameter("form", true, false, name, c.QueryParams(), &value); err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	if value == nil {
		return "", nil
	}
	return *value, nil
}

func bodyUUID(name string, id uuid.UUID) (kernel.UUID, error) {
	v, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	return v, nil
}
