package order_test

import (
	"testing"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func mustHumanID(t *testing.T, s string) order.HumanID {
	t.Helper()
	id, err := order.ParseHumanID(s)
	require.NoError(t, err)
	return id
}

func mustLine(t *testing.T, quantity int, unitPrice string) order.Line {
	t.Helper()
	line, err := order.NewLine(kernel.NewUUID(), quantity, mustMoney(t, unitPrice))
	require.NoError(t, err)
	return line
}

func TestNewLine(t *testing.T) {
	t.Run("should total unit price times quantity", func(t *testing.T) {
		line := mustLine(t, 3, "19.90")

		assert.True(t, mustMoney(t, "59.70").IsEqual(line.Total()))
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		_, err := order.NewLine(kernel.NewUUID(), 0, mustMoney(t, "10.00"))
		require.Error(t, err)

		_, err = order.NewLine(kernel.NewUUID(), -1, mustMoney(t, "10.00"))
		require.Error(t, err)
	})

	t.Run("should reject unconstructed unit price", func(t *testing.T) {
		_, err := order.NewLine(kernel.NewUUID(), 1, kernel.Money{})
		require.Error(t, err)
	})
}

func TestNewOrder(t *testing.T) {
	now := time.Now()

	t.Run("should create order and snapshot the total", func(t *testing.T) {
		lines := []order.Line{
			mustLine(t, 2, "80.00"),
			mustLine(t, 1, "50.00"),
		}

		o, err := order.NewOrder(kernel.NewUUID(), mustHumanID(t, "20250731-000001"), kernel.NewUUID(), lines, now)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, mustMoney(t, "210.00").IsEqual(o.TotalPrice()))
		assert.Equal(t, order.New, o.Status())
		assert.Equal(t, 3, o.ItemCount())
		assert.Len(t, o.Lines(), 2)
		assert.Equal(t, now, o.CreatedAt())
		assert.Equal(t, now, o.UpdatedAt())
	})

	t.Run("should reject empty lines", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), mustHumanID(t, "20250731-000001"), kernel.NewUUID(), nil, now)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderHasNoLines)
	})

	t.Run("should reject the same catalog item twice", func(t *testing.T) {
		productID := kernel.NewUUID()
		first, err := order.NewLine(productID, 1, mustMoney(t, "10.00"))
		require.NoError(t, err)
		second, err := order.NewLine(productID, 2, mustMoney(t, "10.00"))
		require.NoError(t, err)

		_, err = order.NewOrder(
			kernel.NewUUID(),
			mustHumanID(t, "20250731-000001"),
			kernel.NewUUID(),
			[]order.Line{first, second},
			now,
		)

		require.Error(t, err)
	})

	t.Run("should reject invalid identifiers", func(t *testing.T) {
		lines := []order.Line{mustLine(t, 1, "10.00")}

		_, err := order.NewOrder(kernel.UUID{}, mustHumanID(t, "20250731-000001"), kernel.NewUUID(), lines, now)
		require.Error(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), order.HumanID{}, kernel.NewUUID(), lines, now)
		require.Error(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), mustHumanID(t, "20250731-000001"), kernel.UUID{}, lines, now)
		require.Error(t, err)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should keep the stored total even when lines disagree", func(t *testing.T) {
		createdAt := time.Now().Add(-time.Hour)
		updatedAt := time.Now().Add(-time.Minute)
		lines := []order.Line{mustLine(t, 1, "10.00")}

		o, err := order.RestoreOrder(
			kernel.NewUUID(),
			mustHumanID(t, "20250731-000042"),
			kernel.NewUUID(),
			lines,
			mustMoney(t, "99.00"),
			order.Pending,
			createdAt,
			updatedAt,
		)

		require.NoError(t, err)
		assert.True(t, mustMoney(t, "99.00").IsEqual(o.TotalPrice()))
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Equal(t, updatedAt, o.UpdatedAt())
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(),
			mustHumanID(t, "20250731-000042"),
			kernel.NewUUID(),
			[]order.Line{mustLine(t, 1, "10.00")},
			mustMoney(t, "10.00"),
			order.Unknown,
			time.Now(),
			time.Now(),
		)

		require.Error(t, err)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	createOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(
			kernel.NewUUID(),
			mustHumanID(t, "20250731-000001"),
			kernel.NewUUID(),
			[]order.Line{mustLine(t, 1, "10.00")},
			time.Now().Add(-time.Minute),
		)
		require.NoError(t, err)
		return o
	}

	t.Run("should move to the target and bump updatedAt", func(t *testing.T) {
		o := createOrder(t)
		before := o.UpdatedAt()
		now := before.Add(time.Minute)

		err := o.ChangeStatus(order.Pending, now)

		require.NoError(t, err)
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, now, o.UpdatedAt())
	})

	t.Run("should leave the order untouched on a forbidden transition", func(t *testing.T) {
		o := createOrder(t)
		before := o.UpdatedAt()

		err := o.ChangeStatus(order.Completed, before.Add(time.Minute))

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.New, o.Status())
		assert.Equal(t, before, o.UpdatedAt())
	})
}

func TestOrder_Confirm(t *testing.T) {
	ownerID := kernel.NewUUID()

	createOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(
			kernel.NewUUID(),
			mustHumanID(t, "20250731-000001"),
			ownerID,
			[]order.Line{mustLine(t, 1, "10.00")},
			time.Now().Add(-time.Minute),
		)
		require.NoError(t, err)
		return o
	}

	t.Run("owner confirms a new order", func(t *testing.T) {
		o := createOrder(t)

		err := o.Confirm(ownerID, time.Now())

		require.NoError(t, err)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("another user cannot confirm", func(t *testing.T) {
		o := createOrder(t)

		err := o.Confirm(kernel.NewUUID(), time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrNotOwner)
		assert.Equal(t, order.New, o.Status())
	})

	t.Run("cannot confirm twice", func(t *testing.T) {
		o := createOrder(t)
		require.NoError(t, o.Confirm(ownerID, time.Now()))

		err := o.Confirm(ownerID, time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrInvalidTransition)
	})
}

func TestOrder_IsOwnedBy(t *testing.T) {
	ownerID := kernel.NewUUID()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		mustHumanID(t, "20250731-000001"),
		ownerID,
		[]order.Line{mustLine(t, 1, "10.00")},
		time.Now(),
	)
	require.NoError(t, err)

	assert.True(t, o.IsOwnedBy(ownerID))
	assert.False(t, o.IsOwnedBy(kernel.NewUUID()))
}
