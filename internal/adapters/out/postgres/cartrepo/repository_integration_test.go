package cartrepo_test

import (
	"context"
	"testing"
	"time"

	"shop/internal/adapters/out/postgres/cartrepo"
	"shop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (t *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type CartRepositoryTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	repo      *cartrepo.GormCartRepository
}

func (suite *CartRepositoryTestSuite) SetupSuite() {
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

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&cartrepo.CartDTO{}, &cartrepo.CartLineDTO{})
	suite.Require().NoError(err)

	suite.repo = cartrepo.NewGormCartRepository(db, &mockAggregateTracker{})
}

func (suite *CartRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *CartRepositoryTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE carts CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *CartRepositoryTestSuite) TestGetOrCreateByUser_CreatesOnce() {
	ctx := context.Background()
	userID := kernel.NewUUID()

	created, err := suite.repo.GetOrCreateByUser(ctx, userID)
	suite.Require().NoError(err)
	suite.True(created.IsEmpty())

	loaded, err := suite.repo.GetOrCreateByUser(ctx, userID)
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(created.ID()))

	var count int64
	err = suite.db.Model(&cartrepo.CartDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)
}

func (suite *CartRepositoryTestSuite) TestUpdate_ReplacesLines() {
	ctx := context.Background()
	userID := kernel.NewUUID()
	productID := kernel.NewUUID()

	userCart, err := suite.repo.GetOrCreateByUser(ctx, userID)
	suite.Require().NoError(err)

	suite.Require().NoError(userCart.AddLine(productID, 2))
	suite.Require().NoError(userCart.AddLine(kernel.NewUUID(), 1))
	suite.Require().NoError(suite.repo.Update(ctx, userCart))

	loaded, err := suite.repo.GetOrCreateByUser(ctx, userID)
	suite.Require().NoError(err)
	suite.Len(loaded.Lines(), 2)

	// Merging quantities and removing a line both round-trip through Update.
	suite.Require().NoError(loaded.AddLine(productID, 3))
	suite.Require().NoError(suite.repo.Update(ctx, loaded))

	reloaded, err := suite.repo.GetOrCreateByUser(ctx, userID)
	suite.Require().NoError(err)
	suite.Len(reloaded.Lines(), 2)
	for _, line := range reloaded.Lines() {
		if line.ProductID().IsEqual(productID) {
			suite.Equal(5, line.Quantity())
		}
	}

	suite.Require().NoError(reloaded.RemoveLine(productID))
	suite.Require().NoError(suite.repo.Update(ctx, reloaded))

	final, err := suite.repo.GetOrCreateByUser(ctx, userID)
	suite.Require().NoError(err)
	suite.Len(final.Lines(), 1)
}

func (suite *CartRepositoryTestSuite) TestUpdate_ClearedCartHasNoLines() {
	ctx := context.Background()
	userID := kernel.NewUUID()

	userCart, err := suite.repo.GetOrCreateByUser(ctx, userID)
	suite.Require().NoError(err)
	suite.Require().NoError(userCart.AddLine(kernel.NewUUID(), 4))
	suite.Require().NoError(suite.repo.Update(ctx, userCart))

	userCart.Clear()
	suite.Require().NoError(suite.repo.Update(ctx, userCart))

	loaded, err := suite.repo.GetOrCreateByUser(ctx, userID)
	suite.Require().NoError(err)
	suite.True(loaded.IsEmpty())

	var count int64
	err = suite.db.Model(&cartrepo.CartLineDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(0), count)
}

func TestCartRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CartRepositoryTestSuite))
}
