package order_test

import (
	"testing"
	"time"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func item(t *testing.T, qty int, unit, line string) *order.Item {
	t.Helper()
	it, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), qty, money(t, unit), money(t, line))
	require.NoError(t, err)
	return it
}

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		[]*order.Item{item(t, 2, "10.00", "20.00"), item(t, 1, "5.50", "5.50")},
		time.Now(),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	owner := kernel.NewUUID()
	created := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		owner,
		[]*order.Item{item(t, 2, "10.00", "20.00"), item(t, 1, "5.50", "5.50")},
		created,
	)
	require.NoError(t, err)

	assert.NoError(t, o.Validate())
	assert.Equal(t, owner, o.Owner())
	assert.Equal(t, order.Pending, o.Status())
	assert.Nil(t, o.DeliveryCrew())
	assert.Equal(t, "25.50", o.Total().String())
	assert.Equal(t, created, o.CreatedAt())
	assert.Len(t, o.Items(), 2)
}

func TestNewOrder_Invalid(t *testing.T) {
	_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), nil, time.Now())
	assert.ErrorIs(t, err, order.ErrOrderHasNoItems)

	_, err = order.NewOrder(kernel.NewUUID(), kernel.UUID{}, []*order.Item{item(t, 1, "1.00", "1.00")}, time.Now())
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewOrder_TotalAboveMaximum(t *testing.T) {
	items := make([]*order.Item, 0, 102)
	for range 102 {
		items = append(items, item(t, 99, "9999.99", "989999.01"))
	}

	_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), items, time.Now())
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), items[:101], time.Now())
	require.NoError(t, err)
	assert.Equal(t, "99989900.01", o.Total().String())
}

func TestNewItem_LinePriceMustMatch(t *testing.T) {
	_, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 3, money(t, "2.00"), money(t, "5.00"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 0, money(t, "2.00"), money(t, "0.00"))
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestRestoreOrder(t *testing.T) {
	crew := kernel.NewUUID()
	items := []*order.Item{item(t, 3, "4.00", "12.00")}

	o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), &crew, order.Delivered,
		money(t, "12.00"), time.Now(), items)
	require.NoError(t, err)
	assert.True(t, o.IsAssignedTo(crew))
	assert.Equal(t, order.Delivered, o.Status())

	_, err = order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), nil, order.Pending,
		money(t, "11.00"), time.Now(), items)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), nil, order.Status(5),
		money(t, "12.00"), time.Now(), items)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestOrder_ChangeStatus(t *testing.T) {
	o := newOrder(t)

	require.NoError(t, o.ChangeStatus(order.Pending))
	assert.Equal(t, order.Pending, o.Status())

	require.NoError(t, o.ChangeStatus(order.Delivered))
	assert.Equal(t, order.Delivered, o.Status())

	require.NoError(t, o.ChangeStatus(order.Delivered))

	err := o.ChangeStatus(order.Pending)
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
	assert.Equal(t, order.Delivered, o.Status())
}

func TestOrder_AssignDeliveryCrew_KeepsStatus(t *testing.T) {
	o := newOrder(t)
	crew := kernel.NewUUID()

	require.NoError(t, o.AssignDeliveryCrew(&crew))
	assert.Equal(t, order.Pending, o.Status())
	assert.True(t, o.IsAssignedTo(crew))

	require.NoError(t, o.ChangeStatus(order.Delivered))
	require.NoError(t, o.AssignDeliveryCrew(nil))
	assert.Nil(t, o.DeliveryCrew())
	assert.Equal(t, order.Delivered, o.Status())
	assert.Equal(t, "25.50", o.Total().String())
}

func TestOrder_DeliveryCrewIsCopied(t *testing.T) {
	o := newOrder(t)
	crew := kernel.NewUUID()
	require.NoError(t, o.AssignDeliveryCrew(&crew))

	got := o.DeliveryCrew()
	*got = kernel.NewUUID()
	assert.True(t, o.IsAssignedTo(crew))
}
