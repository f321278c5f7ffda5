package commands_test

import (
	"context"
	"errors"
	"testing"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/cart"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/product"
	"shop/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) GetOrCreateByUser(ctx context.Context, userID kernel.UUID) (*cart.Cart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}
func (m *MockCartRepository) Update(ctx context.Context, c *cart.Cart) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCartRepository) LockForCheckout(_ context.Context, _ kernel.UUID) error {
	return errors.New("not implemented in mock")
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(_ context.Context, _ *product.Product) error {
	return errors.New("not implemented in mock")
}
func (m *MockProductRepository) Update(_ context.Context, _ *product.Product) error {
	return errors.New("not implemented in mock")
}
func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}
func (m *MockProductRepository) GetBatch(_ context.Context, _ []kernel.UUID) ([]*product.Product, error) {
	return nil, errors.New("not implemented in mock")
}

type MockCartUoW struct{ mock.Mock }

func (m *MockCartUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCartUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCartUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCartUoW) CartRepository() ports.CartRepository {
	args := m.Called()
	return args.Get(0).(ports.CartRepository)
}

func (m *MockCartUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

type MockCartUoWFactory struct{ mock.Mock }

func (m *MockCartUoWFactory) Create() commands.CartUoW {
	args := m.Called()
	return args.Get(0).(commands.CartUoW)
}

func TestNewAddCartLineCommand(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		userID := kernel.NewUUID()
		productID := kernel.NewUUID()
		cmd, err := commands.NewAddCartLineCommand(userID, productID, 3)
		require.NoError(t, err)
		assert.Equal(t, userID, cmd.UserID())
		assert.Equal(t, productID, cmd.ProductID())
		assert.Equal(t, 3, cmd.Quantity())
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		_, err := commands.NewAddCartLineCommand(kernel.NewUUID(), kernel.NewUUID(), 0)
		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
	})

	t.Run("unconstructed identifiers", func(t *testing.T) {
		_, err := commands.NewAddCartLineCommand(kernel.UUID{}, kernel.NewUUID(), 1)
		require.Error(t, err)

		_, err = commands.NewAddCartLineCommand(kernel.NewUUID(), kernel.UUID{}, 1)
		require.Error(t, err)
	})
}

func TestAddCartLineCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	p, err := product.NewProduct(kernel.NewUUID(), "Keyboard", mustMoney(t, "80.00"), nil, product.Available)
	require.NoError(t, err)
	userCart, err := cart.NewCart(kernel.NewUUID(), userID)
	require.NoError(t, err)
	cmd, _ := commands.NewAddCartLineCommand(userID, p.ID(), 2)

	cartRepo := new(MockCartRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockCartUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, p.ID()).Return(p, nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetOrCreateByUser", ctx, userID).Return(userCart, nil).Once(),
		cartRepo.On("Update", ctx, userCart).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddCartLineCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Len(t, userCart.Lines(), 1)
	assert.Equal(t, 2, userCart.Lines()[0].Quantity())
	cartRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAddCartLineCommandHandler_Handle_ProductNotOrderable(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	p, err := product.NewProduct(kernel.NewUUID(), "Old stock", mustMoney(t, "80.00"), nil, product.OutOfStock)
	require.NoError(t, err)
	cmd, _ := commands.NewAddCartLineCommand(userID, p.ID(), 1)

	productRepo := new(MockProductRepository)
	uow := new(MockCartUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", ctx, p.ID()).Return(p, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddCartLineCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrItemUnavailable)
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
