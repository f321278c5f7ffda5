package queries

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var ErrGetOrderStatisticsQueryIsNotConstructed = errors.New(
	"GetOrderStatisticsQuery must be created via NewGetOrderStatisticsQuery constructor",
)

// GetOrderStatisticsQuery aggregates a single user's order history:
// totals per status and how much the user has spent on completed orders.
type GetOrderStatisticsQuery struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderStatisticsQuery creates a statistics query for the given user.
func NewGetOrderStatisticsQuery(userID kernel.UUID) (GetOrderStatisticsQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetOrderStatisticsQuery{}, err
	}

	return GetOrderStatisticsQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderStatisticsQueryIsNotConstructed if validation fails.
func (q GetOrderStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatisticsQueryIsNotConstructed)
}

// UserID returns the identifier of the user the statistics cover.
func (q GetOrderStatisticsQuery) UserID() kernel.UUID {
	return q.userID
}

// GetOrderStatisticsQueryResponse summarizes one user's orders.
// TotalSpent covers every order regardless of status, and AverageOrderValue
// is TotalSpent over TotalOrders, zero when the user has no orders.
type GetOrderStatisticsQueryResponse struct {
	TotalOrders       int
	OrdersByStatus    map[string]int
	TotalSpent        kernel.Money
	AverageOrderValue kernel.Money
}
