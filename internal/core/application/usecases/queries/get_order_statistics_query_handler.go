package queries

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderStatisticsQueryHandler computes per-user order statistics in the
// database, one grouped scan over the user's orders.
type GetOrderStatisticsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatisticsQueryHandler creates a handler for user statistics queries.
// Requires a GORM database connection for query execution.
func NewGetOrderStatisticsQueryHandler(db *gorm.DB) GetOrderStatisticsQueryHandler {
	return GetOrderStatisticsQueryHandler{db: db}
}

// Handle executes the query. Every status the user has orders in appears in
// OrdersByStatus; statuses with no orders are absent.
func (h GetOrderStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatisticsQuery,
) (GetOrderStatisticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatisticsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*) AS order_count,
			COALESCE(SUM(total_price), 0) AS spent
		FROM orders
		WHERE user_id = ?
		GROUP BY status
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return GetOrderStatisticsQueryResponse{}, err
	}
	defer rows.Close()

	response := GetOrderStatisticsQueryResponse{
		OrdersByStatus:    make(map[string]int),
		TotalSpent:        kernel.ZeroMoney(),
		AverageOrderValue: kernel.ZeroMoney(),
	}

	for rows.Next() {
		var status, orderCount int
		var spent decimal.Decimal

		if err = rows.Scan(&status, &orderCount, &spent); err != nil {
			return GetOrderStatisticsQueryResponse{}, err
		}

		response.TotalOrders += orderCount
		response.OrdersByStatus[order.Status(status).String()] = orderCount

		spentMoney, moneyErr := kernel.NewMoney(spent)
		if moneyErr != nil {
			return GetOrderStatisticsQueryResponse{}, moneyErr
		}
		response.TotalSpent = response.TotalSpent.Add(spentMoney)
	}

	if err = rows.Err(); err != nil {
		return GetOrderStatisticsQueryResponse{}, err
	}

	if response.TotalOrders > 0 {
		average := response.TotalSpent.Decimal().
			Div(decimal.NewFromInt(int64(response.TotalOrders))).
			Round(2)

		averageMoney, moneyErr := kernel.NewMoney(average)
		if moneyErr != nil {
			return GetOrderStatisticsQueryResponse{}, moneyErr
		}
		response.AverageOrderValue = averageMoney
	}

	return response, nil
}
