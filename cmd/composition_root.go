package cmd

import (
	"log/slog"

	"littlelemon/internal/adapters/in/http"
	"littlelemon/internal/adapters/out/postgres"
	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	gate       *services.AccessGate
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		gate:       services.NewAccessGate(),
	}
}

func (c *CompositionRoot) cartUoWFactory() commands.CartUoWFactory {
	return FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) checkoutUoWFactory() commands.CheckoutUoWFactory {
	return FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) menuUoWFactory() commands.MenuUoWFactory {
	return FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) directoryUoWFactory() commands.DirectoryUoWFactory {
	return FuncDirectoryUoWFactory(func() commands.DirectoryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateAddCartItemCommandHandler() commands.AddCartItemCommandHandler {
	return commands.NewAddCartItemCommandHandler(c.cartUoWFactory(), c.gate)
}

func (c *CompositionRoot) CreateClearCartCommandHandler() commands.ClearCartCommandHandler {
	return commands.NewClearCartCommandHandler(c.cartUoWFactory(), c.gate)
}

func (c *CompositionRoot) CreateExpireCartLinesCommandHandler() commands.ExpireCartLinesCommandHandler {
	return commands.NewExpireCartLinesCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.checkoutUoWFactory(), c.gate)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory(), c.gate)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory(), c.gate)
}

func (c *CompositionRoot) CreateCreateMenuItemCommandHandler() commands.CreateMenuItemCommandHandler {
	return commands.NewCreateMenuItemCommandHandler(c.menuUoWFactory(), c.gate)
}

func (c *CompositionRoot) CreateUpdateMenuItemCommandHandler() commands.UpdateMenuItemCommandHandler {
	return commands.NewUpdateMenuItemCommandHandler(c.menuUoWFactory(), c.gate)
}

func (c *CompositionRoot) CreateDeleteMenuItemCommandHandler() commands.DeleteMenuItemCommandHandler {
	return commands.NewDeleteMenuItemCommandHandler(c.menuUoWFactory(), c.gate)
}

func (c *CompositionRoot) CreateCreateCategoryCommandHandler() commands.CreateCategoryCommandHandler {
	return commands.NewCreateCategoryCommandHandler(c.menuUoWFactory(), c.gate)
}

func (c *CompositionRoot) CreateAddGroupMemberCommandHandler() commands.ChangeGroupMembershipCommandHandler {
	return commands.NewAddGroupMemberCommandHandler(c.directoryUoWFactory(), c.gate)
}

func (c *CompositionRoot) CreateRemoveGroupMemberCommandHandler() commands.ChangeGroupMembershipCommandHandler {
	return commands.NewRemoveGroupMemberCommandHandler(c.directoryUoWFactory(), c.gate)
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.gormDB, c.gate)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB, c.gate)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB, c.gate)
}

func (c *CompositionRoot) CreateListMenuItemsQueryHandler() queries.ListMenuItemsQueryHandler {
	return queries.NewListMenuItemsQueryHandler(c.gormDB, c.gate)
}

func (c *CompositionRoot) CreateGetMenuItemQueryHandler() queries.GetMenuItemQueryHandler {
	return queries.NewGetMenuItemQueryHandler(c.gormDB, c.gate)
}

func (c *CompositionRoot) CreateListCategoriesQueryHandler() queries.ListCategoriesQueryHandler {
	return queries.NewListCategoriesQueryHandler(c.gormDB, c.gate)
}

func (c *CompositionRoot) CreateListGroupMembersQueryHandler() queries.ListGroupMembersQueryHandler {
	return queries.NewListGroupMembersQueryHandler(c.gormDB, c.gate)
}

func (c *CompositionRoot) CreateGetPrincipalQueryHandler() queries.GetPrincipalQueryHandler {
	return queries.NewGetPrincipalQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCountPendingOrdersQueryHandler() queries.CountPendingOrdersQueryHandler {
	return queries.NewCountPendingOrdersQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every use case into the HTTP server.
func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(http.Handlers{
		AddCartItem:       c.CreateAddCartItemCommandHandler(),
		ClearCart:         c.CreateClearCartCommandHandler(),
		PlaceOrder:        c.CreatePlaceOrderCommandHandler(),
		UpdateOrder:       c.CreateUpdateOrderCommandHandler(),
		DeleteOrder:       c.CreateDeleteOrderCommandHandler(),
		CreateMenuItem:    c.CreateCreateMenuItemCommandHandler(),
		UpdateMenuItem:    c.CreateUpdateMenuItemCommandHandler(),
		DeleteMenuItem:    c.CreateDeleteMenuItemCommandHandler(),
		CreateCategory:    c.CreateCreateCategoryCommandHandler(),
		AddGroupMember:    c.CreateAddGroupMemberCommandHandler(),
		RemoveGroupMember: c.CreateRemoveGroupMemberCommandHandler(),

		GetCart:          c.CreateGetCartQueryHandler(),
		ListOrders:       c.CreateListOrdersQueryHandler(),
		GetOrder:         c.CreateGetOrderQueryHandler(),
		ListMenuItems:    c.CreateListMenuItemsQueryHandler(),
		GetMenuItem:      c.CreateGetMenuItemQueryHandler(),
		ListCategories:   c.CreateListCategoriesQueryHandler(),
		ListGroupMembers: c.CreateListGroupMembersQueryHandler(),
		GetPrincipal:     c.CreateGetPrincipalQueryHandler(),
	})
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateExpireCartLinesCommandHandler(),
		c.CreateCountPendingOrdersQueryHandler(),
		c.config.CartLineTTL,
		logger,
	)
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncDirectoryUoWFactory func() commands.DirectoryUoW

func (f FuncDirectoryUoWFactory) Create() commands.DirectoryUoW {
	return f()
}
