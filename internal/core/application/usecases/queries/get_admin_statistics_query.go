package queries

import (
	"errors"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var ErrGetAdminStatisticsQueryIsNotConstructed = errors.New(
	"GetAdminStatisticsQuery must be created via NewGetAdminStatisticsQuery constructor",
)

// GetAdminStatisticsQuery aggregates storewide order figures for operators:
// order counts per status, revenue from completed orders, and today's volume.
type GetAdminStatisticsQuery struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

// NewGetAdminStatisticsQuery creates a storewide statistics query.
// The reference time decides which orders count as today's.
func NewGetAdminStatisticsQuery(now time.Time) (GetAdminStatisticsQuery, error) {
	if now.IsZero() {
		return GetAdminStatisticsQuery{}, errors.New("reference time is required")
	}

	return GetAdminStatisticsQuery{
		now:   now,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAdminStatisticsQueryIsNotConstructed if validation fails.
func (q GetAdminStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetAdminStatisticsQueryIsNotConstructed)
}

// Now returns the reference time for the day boundary.
func (q GetAdminStatisticsQuery) Now() time.Time {
	return q.now
}

// GetAdminStatisticsQueryResponse summarizes the whole store's orders.
type GetAdminStatisticsQueryResponse struct {
	TotalOrders    int
	OrdersByStatus map[string]int
	OrdersToday    int
	Revenue        kernel.Money
}
