package postgres_test

import (
	"context"
	"testing"
	"time"

	"shop/internal/adapters/out/postgres"
	"shop/internal/adapters/out/postgres/cartrepo"
	"shop/internal/adapters/out/postgres/orderrepo"
	"shop/internal/adapters/out/postgres/productrepo"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/product"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type UnitOfWorkTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&productrepo.ProductDTO{},
		&cartrepo.CartDTO{},
		&cartrepo.CartLineDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkTestSuite) SetupTest() {
	for _, table := range []string{"orders", "carts", "products"} {
		err := suite.db.Exec("TRUNCATE TABLE " + table + " CASCADE").Error
		suite.Require().NoError(err)
	}
}

// seedCheckout prepares a product and a cart holding it, outside any
// transaction under test.
func (suite *UnitOfWorkTestSuite) seedCheckout(ctx context.Context) (kernel.UUID, *product.Product) {
	price, err := kernel.MoneyFromString("80.00")
	suite.Require().NoError(err)
	p, err := product.NewProduct(kernel.NewUUID(), "Keyboard", price, nil, product.Available)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ProductRepository().Add(ctx, p))

	userID := kernel.NewUUID()
	userCart, err := uow.CartRepository().GetOrCreateByUser(ctx, userID)
	suite.Require().NoError(err)
	suite.Require().NoError(userCart.AddLine(p.ID(), 2))
	suite.Require().NoError(uow.CartRepository().Update(ctx, userCart))
	suite.Require().NoError(uow.Commit(ctx))

	return userID, p
}

// checkoutOnce runs the order-plus-cart write phase of a checkout inside one
// unit of work and either commits or rolls back. Returns the allocated order
// number.
func (suite *UnitOfWorkTestSuite) checkoutOnce(ctx context.Context, userID kernel.UUID, p *product.Product, commit bool) order.HumanID {
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userCart, err := uow.CartRepository().GetOrCreateByUser(ctx, userID)
	suite.Require().NoError(err)

	humanID, err := uow.OrderRepository().NextHumanID(ctx, time.Now())
	suite.Require().NoError(err)

	line, err := order.NewLine(p.ID(), 2, p.EffectivePrice())
	suite.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), humanID, userID, []order.Line{line}, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	userCart.Clear()
	suite.Require().NoError(uow.CartRepository().Update(ctx, userCart))

	if commit {
		suite.Require().NoError(uow.Commit(ctx))
	}

	return humanID
}

func (suite *UnitOfWorkTestSuite) TestCommit_PersistsOrderAndClearsCart() {
	ctx := context.Background()
	userID, p := suite.seedCheckout(ctx)

	suite.checkoutOnce(ctx, userID, p, true)

	var orderCount, lineCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&orderCount).Error)
	suite.Require().NoError(suite.db.Model(&cartrepo.CartLineDTO{}).Count(&lineCount).Error)
	suite.Equal(int64(1), orderCount)
	suite.Equal(int64(0), lineCount)
}

func (suite *UnitOfWorkTestSuite) TestRollback_LeavesOrderUnwrittenAndCartIntact() {
	ctx := context.Background()
	userID, p := suite.seedCheckout(ctx)

	suite.checkoutOnce(ctx, userID, p, false)

	var orderCount, lineCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&orderCount).Error)
	suite.Require().NoError(suite.db.Model(&cartrepo.CartLineDTO{}).Count(&lineCount).Error)
	suite.Equal(int64(0), orderCount)
	suite.Equal(int64(1), lineCount)
}

func (suite *UnitOfWorkTestSuite) TestCatalogRepricing_LeavesOrderSnapshotsUntouched() {
	ctx := context.Background()
	userID, p := suite.seedCheckout(ctx)

	humanID := suite.checkoutOnce(ctx, userID, p, true)

	// Reprice the catalog item after the order exists.
	newPrice, err := kernel.MoneyFromString("120.00")
	suite.Require().NoError(err)
	repriced, err := product.NewProduct(p.ID(), p.Name(), newPrice, nil, product.Available)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ProductRepository().Update(ctx, repriced))
	suite.Require().NoError(uow.Commit(ctx))

	readUow := suite.factory.Create()
	suite.Require().NoError(readUow.Begin(ctx))
	defer func() {
		_ = readUow.Rollback(ctx)
	}()

	stored, err := readUow.OrderRepository().GetByHumanID(ctx, humanID)
	suite.Require().NoError(err)

	snapshotPrice, err := kernel.MoneyFromString("80.00")
	suite.Require().NoError(err)
	snapshotTotal, err := kernel.MoneyFromString("160.00")
	suite.Require().NoError(err)

	suite.Require().Len(stored.Lines(), 1)
	suite.True(snapshotPrice.IsEqual(stored.Lines()[0].UnitPrice()), "unit price %s", stored.Lines()[0].UnitPrice())
	suite.True(snapshotTotal.IsEqual(stored.TotalPrice()), "total %s", stored.TotalPrice())
}

func (suite *UnitOfWorkTestSuite) TestCommitWithoutBegin_Fails() {
	uow := suite.factory.Create()
	err := uow.Commit(context.Background())
	suite.Require().Error(err)
	suite.ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkTestSuite) TestRollbackWithoutBegin_Fails() {
	uow := suite.factory.Create()
	err := uow.Rollback(context.Background())
	suite.Require().Error(err)
	suite.ErrorIs(err, gorm.ErrInvalidTransaction)
}

func TestUnitOfWorkTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkTestSuite))
}
