package commands_test

import (
	"testing"
	"time"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewChangeOrderStatusCommand(t *testing.T) {
	humanID, err := order.ParseHumanID("20250731-000007")
	require.NoError(t, err)

	t.Run("valid input", func(t *testing.T) {
		cmd, err := commands.NewChangeOrderStatusCommand(humanID, order.Completed)
		require.NoError(t, err)
		assert.Equal(t, humanID, cmd.HumanID())
		assert.Equal(t, order.Completed, cmd.Target())
	})

	t.Run("unknown target status", func(t *testing.T) {
		_, err := commands.NewChangeOrderStatusCommand(humanID, order.Unknown)
		require.Error(t, err)
	})

	t.Run("unconstructed human id", func(t *testing.T) {
		_, err := commands.NewChangeOrderStatusCommand(order.HumanID{}, order.Completed)
		require.Error(t, err)
	})
}

func TestChangeOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t, kernel.NewUUID())
	require.NoError(t, stored.ChangeStatus(order.Pending, time.Now()))
	cmd, _ := commands.NewChangeOrderStatusCommand(stored.HumanID(), order.Completed)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByHumanID", ctx, stored.HumanID()).Return(stored, nil).Once(),
		repo.On("Update", ctx, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Completed, stored.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_ForbiddenTransition(t *testing.T) {
	ctx := t.Context()
	stored := newStoredOrder(t, kernel.NewUUID())
	cmd, _ := commands.NewChangeOrderStatusCommand(stored.HumanID(), order.Completed)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByHumanID", ctx, stored.HumanID()).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, order.ErrInvalidTransition)
	assert.Equal(t, order.New, stored.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
