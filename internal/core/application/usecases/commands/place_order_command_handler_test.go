package commands_test

import (
	"errors"
	"testing"
	"time"

	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customer := newUser(t, false)
	owner := customer.ID()

	c, err := cart.NewCart(owner)
	require.NoError(t, err)
	_, err = c.AddItem(kernel.NewUUID(), kernel.NewUUID(), 2, money(t, "10.00"), time.Now())
	require.NoError(t, err)
	_, err = c.AddItem(kernel.NewUUID(), kernel.NewUUID(), 1, money(t, "5.50"), time.Now())
	require.NoError(t, err)

	cmd, err := commands.NewPlaceOrderCommand(principalOf(t, customer), kernel.NewUUID())
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	var placed *order.Order
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		cartRepo.On("Get", ctx, owner).Return(c, nil).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) { placed = args.Get(1).(*order.Order) }).
			Return(nil).Once(),
		cartRepo.On("RemoveLines", ctx, owner, c.LineIDs()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPlaceOrderCommandHandler(factory, services.NewAccessGate())
	o, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Same(t, placed, o)
	assert.Equal(t, cmd.OrderID(), o.ID())
	assert.Equal(t, "25.50", o.Total().String())
	assert.Equal(t, order.Pending, o.Status())
	assert.Nil(t, o.DeliveryCrew())
	assert.Len(t, o.Items(), 2)

	cartRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_EmptyCart(t *testing.T) {
	ctx := t.Context()
	customer := newUser(t, false)

	empty, err := cart.NewCart(customer.ID())
	require.NoError(t, err)

	cmd, err := commands.NewPlaceOrderCommand(principalOf(t, customer), kernel.NewUUID())
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		cartRepo.On("Get", ctx, customer.ID()).Return(empty, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPlaceOrderCommandHandler(factory, services.NewAccessGate())
	o, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, cart.ErrEmptyCart)
	assert.Nil(t, o)
	orderRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	cartRepo.AssertNotCalled(t, "RemoveLines", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_AddFailsRollsBack(t *testing.T) {
	ctx := t.Context()
	customer := newUser(t, false)

	c, err := cart.NewCart(customer.ID())
	require.NoError(t, err)
	_, err = c.AddItem(kernel.NewUUID(), kernel.NewUUID(), 1, money(t, "3.00"), time.Now())
	require.NoError(t, err)

	cmd, err := commands.NewPlaceOrderCommand(principalOf(t, customer), kernel.NewUUID())
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		cartRepo.On("Get", ctx, customer.ID()).Return(c, nil).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(errors.New("insert failed")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewPlaceOrderCommandHandler(factory, services.NewAccessGate())
	_, err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "insert failed")
	cartRepo.AssertNotCalled(t, "RemoveLines", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestPlaceOrderCommandHandler_Handle_StaffIsForbidden(t *testing.T) {
	for _, group := range []string{identity.GroupManager, identity.GroupDeliveryCrew} {
		t.Run(group, func(t *testing.T) {
			cmd, err := commands.NewPlaceOrderCommand(principalOf(t, newUser(t, false, group)), kernel.NewUUID())
			require.NoError(t, err)

			factory := new(MockCheckoutUoWFactory)
			handler := commands.NewPlaceOrderCommandHandler(factory, services.NewAccessGate())
			_, err = handler.Handle(t.Context(), cmd)

			require.ErrorIs(t, err, errs.ErrForbidden)
			factory.AssertNotCalled(t, "Create")
		})
	}
}

func TestPlaceOrderCommandHandler_Handle_NotConstructed(t *testing.T) {
	factory := new(MockCheckoutUoWFactory)
	handler := commands.NewPlaceOrderCommandHandler(factory, services.NewAccessGate())

	_, err := handler.Handle(t.Context(), commands.PlaceOrderCommand{})

	require.ErrorIs(t, err, commands.ErrPlaceOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestNewPlaceOrderCommand_Unauthenticated(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(identity.Principal{}, kernel.NewUUID())
	assert.ErrorIs(t, err, errs.ErrUnauthenticated)
}
