package queries_test

import (
	"context"
	"testing"

	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
)

type GetOrdersQueryHandlerTestSuite struct {
	queryTestSuite
	handler queries.GetOrdersQueryHandler
}

func (suite *GetOrdersQueryHandlerTestSuite) SetupSuite() {
	suite.queryTestSuite.SetupSuite()
	suite.handler = queries.NewGetOrdersQueryHandler(suite.db)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_EmptyHistory() {
	query, err := queries.NewGetOrdersQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_ListsOnlyOwnOrdersMostRecentFirst() {
	userID := kernel.NewUUID()
	suite.seedOrder("20250730-000001", userID, 1, "10.00", order.Completed)
	suite.seedOrder("20250731-000001", userID, 3, "20.00", order.New)
	suite.seedOrder("20250731-000002", kernel.NewUUID(), 1, "99.00", order.New)

	query, err := queries.NewGetOrdersQuery(userID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.Equal("20250731-000001", result[0].HumanID)
	suite.Equal("new", result[0].Status)
	suite.Equal(3, result[0].ItemCount)

	suite.Equal("20250730-000001", result[1].HumanID)
	suite.Equal("completed", result[1].Status)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery() {
	invalidQuery := queries.GetOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)
	suite.Require().Error(err)
	suite.Nil(result)
}

func TestGetOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrdersQueryHandlerTestSuite))
}
