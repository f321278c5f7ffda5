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

func TestNewCancelStaleOrdersCommand(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		cmd, err := commands.NewCancelStaleOrdersCommand(30 * time.Minute)
		require.NoError(t, err)
		assert.Equal(t, 30*time.Minute, cmd.MaxAge())
	})

	t.Run("non-positive max age", func(t *testing.T) {
		_, err := commands.NewCancelStaleOrdersCommand(0)
		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrMaxAgeIsInvalid)
	})
}

func TestCancelStaleOrdersCommandHandler_Handle(t *testing.T) {
	t.Run("cancels every stale order", func(t *testing.T) {
		ctx := t.Context()
		first := newStoredOrder(t, kernel.NewUUID())
		second := newStoredOrder(t, kernel.NewUUID())
		cmd, _ := commands.NewCancelStaleOrdersCommand(30 * time.Minute)

		repo := new(MockOrderRepository)
		uow := new(MockOrderUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(repo).Once(),
			repo.On("GetAllInNewStatusOlderThan", ctx, mock.AnythingOfType("time.Time")).
				Return([]*order.Order{first, second}, nil).Once(),
			repo.On("Update", ctx, first).Return(nil).Once(),
			repo.On("Update", ctx, second).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewCancelStaleOrdersCommandHandler(factory)
		cancelled, err := h.Handle(ctx, cmd)
		require.NoError(t, err)
		assert.Equal(t, 2, cancelled)
		assert.Equal(t, order.Cancelled, first.Status())
		assert.Equal(t, order.Cancelled, second.Status())
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
		factory.AssertExpectations(t)
	})

	t.Run("nothing to cancel", func(t *testing.T) {
		ctx := t.Context()
		cmd, _ := commands.NewCancelStaleOrdersCommand(30 * time.Minute)

		repo := new(MockOrderRepository)
		uow := new(MockOrderUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(repo).Once(),
			repo.On("GetAllInNewStatusOlderThan", ctx, mock.AnythingOfType("time.Time")).
				Return([]*order.Order{}, nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewCancelStaleOrdersCommandHandler(factory)
		cancelled, err := h.Handle(ctx, cmd)
		require.NoError(t, err)
		assert.Equal(t, 0, cancelled)
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})
}
