package cart_test

import (
	"math"
	"testing"
	"time"

	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/model/kernel"
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

func TestCart_AddItem(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	owner := kernel.NewUUID()
	lemonade, salad := kernel.NewUUID(), kernel.NewUUID()

	c, err := cart.NewCart(owner)
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())

	first, err := c.AddItem(kernel.NewUUID(), lemonade, 2, money(t, "10.00"), now)
	require.NoError(t, err)
	_, err = c.AddItem(kernel.NewUUID(), salad, 1, money(t, "5.50"), now)
	require.NoError(t, err)

	assert.False(t, c.IsEmpty())
	assert.Len(t, c.Lines(), 2)
	assert.Equal(t, "20.00", first.Price().String())
	assert.Equal(t, "25.50", c.Total().String())
	assert.Equal(t, now, first.AddedAt())
	assert.ElementsMatch(t, []kernel.UUID{first.ID(), c.Lines()[1].ID()}, c.LineIDs())
}

func TestCart_AddItem_SameItemKeepsFrozenPrice(t *testing.T) {
	c, err := cart.NewCart(kernel.NewUUID())
	require.NoError(t, err)
	item := kernel.NewUUID()

	line, err := c.AddItem(kernel.NewUUID(), item, 1, money(t, "4.00"), time.Now())
	require.NoError(t, err)

	again, err := c.AddItem(kernel.NewUUID(), item, 2, money(t, "6.00"), time.Now())
	require.NoError(t, err)

	assert.Same(t, line, again)
	assert.Len(t, c.Lines(), 1)
	assert.Equal(t, 3, line.Quantity())
	assert.Equal(t, "4.00", line.UnitPrice().String())
	assert.Equal(t, "12.00", c.Total().String())
}

func TestCart_AddItem_InvalidQuantity(t *testing.T) {
	c, err := cart.NewCart(kernel.NewUUID())
	require.NoError(t, err)
	item := kernel.NewUUID()

	for _, qty := range []int{0, -3} {
		_, err = c.AddItem(kernel.NewUUID(), item, qty, money(t, "1.00"), time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	}
	assert.True(t, c.IsEmpty())

	_, err = c.AddItem(kernel.NewUUID(), item, 1, money(t, "1.00"), time.Now())
	require.NoError(t, err)
	_, err = c.AddItem(kernel.NewUUID(), item, 0, money(t, "1.00"), time.Now())
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, 1, c.Lines()[0].Quantity())
}

func TestCart_AddItem_QuantityAboveMaximum(t *testing.T) {
	c, err := cart.NewCart(kernel.NewUUID())
	require.NoError(t, err)
	item := kernel.NewUUID()

	_, err = c.AddItem(kernel.NewUUID(), item, cart.MaxQuantity+1, money(t, "1.00"), time.Now())
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.True(t, c.IsEmpty())

	_, err = c.AddItem(kernel.NewUUID(), item, cart.MaxQuantity, money(t, "9999.99"), time.Now())
	require.NoError(t, err)
	assert.Equal(t, "989999.01", c.Total().String())
}

func TestCart_AddItem_MergeCannotExceedMaximum(t *testing.T) {
	c, err := cart.NewCart(kernel.NewUUID())
	require.NoError(t, err)
	item := kernel.NewUUID()

	line, err := c.AddItem(kernel.NewUUID(), item, 1, money(t, "2.00"), time.Now())
	require.NoError(t, err)

	for _, qty := range []int{cart.MaxQuantity, math.MaxInt} {
		_, err = c.AddItem(kernel.NewUUID(), item, qty, money(t, "2.00"), time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	}
	assert.Equal(t, 1, line.Quantity())
	assert.Equal(t, "2.00", c.Total().String())

	_, err = c.AddItem(kernel.NewUUID(), item, cart.MaxQuantity-1, money(t, "2.00"), time.Now())
	require.NoError(t, err)
	assert.Equal(t, cart.MaxQuantity, line.Quantity())
}

func TestRestoreLine_Validation(t *testing.T) {
	_, err := cart.RestoreLine(kernel.UUID{}, kernel.UUID{}, 0, kernel.Money{}, time.Now())

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestRestoreCart(t *testing.T) {
	line, err := cart.RestoreLine(kernel.NewUUID(), kernel.NewUUID(), 3, money(t, "2.10"), time.Now())
	require.NoError(t, err)

	c, err := cart.RestoreCart(kernel.NewUUID(), []*cart.Line{line})
	require.NoError(t, err)
	assert.Equal(t, "6.30", c.Total().String())

	_, err = cart.RestoreCart(kernel.NewUUID(), []*cart.Line{{}})
	require.ErrorIs(t, err, cart.ErrLineIsNotConstructed)

	_, err = cart.RestoreCart(kernel.UUID{}, nil)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	var zero cart.Cart
	require.ErrorIs(t, zero.Validate(), cart.ErrCartIsNotConstructed)
}
